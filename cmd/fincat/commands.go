// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fincat/fincat"
	"github.com/katalvlaran/fincat/presentation"
)

// errNotFunctorial makes `check` exit non-zero when any functor fails.
var errNotFunctorial = errors.New("not every functor is functorial")

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	logLevel string
	noColor  bool
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}

	root := &cobra.Command{
		Use:   "fincat",
		Short: "Finitely presented categories and functors",
		Long: `fincat reads categories (generating graphs) and functors between them
from a YAML document, checks functoriality, lists hom-sets and maps paths.

Path expressions compose generators left to right: "f ; g" is f then g,
"id(A)" is the identity at A.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(gf.logLevel)); err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			gf.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			if gf.noColor {
				color.NoColor = true
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&gf.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&gf.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(
		checkCmd(gf),
		pathsCmd(gf),
		applyCmd(gf),
	)

	return root
}

func checkCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Check that every functor in FILE is functorial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := presentation.LoadFile(args[0], presentation.WithLogger(gf.logger))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range p.Check() {
				if r.Functorial {
					fmt.Fprintf(out, "%s %s: %s -> %s functorial\n",
						color.GreenString("✓"), r.Functor, r.Domain, r.Codomain)
					continue
				}
				failed++
				fmt.Fprintf(out, "%s %s: %s -> %s not functorial\n",
					color.RedString("✗"), r.Functor, r.Domain, r.Codomain)
				for _, line := range r.Failures {
					fmt.Fprintf(out, "    %s\n", line)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d failed", errNotFunctorial, failed)
			}
			return nil
		},
	}
}

func pathsCmd(gf *globalFlags) *cobra.Command {
	var categoryName, from, to string
	var maxLen int

	cmd := &cobra.Command{
		Use:   "paths FILE",
		Short: "List the morphisms between two objects",
		Long: `List the paths FROM -> TO of a category, shortest first.

Without --max-len every path is listed, which requires an acyclic graph.

Examples:
  fincat paths cats.yaml --category C --from A --to C
  fincat paths cats.yaml --category Monoid --from M --to M --max-len 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := presentation.LoadFile(args[0], presentation.WithLogger(gf.logger))
			if err != nil {
				return err
			}
			paths, err := p.Paths(categoryName, from, to, maxLen)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %d path(s) %s -> %s\n", color.CyanString("#"), len(paths), from, to)
			if len(paths) > 0 {
				fmt.Fprintln(out, strings.Join(paths, "\n"))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&categoryName, "category", "", "category name")
	cmd.Flags().StringVar(&from, "from", "", "source object")
	cmd.Flags().StringVar(&to, "to", "", "target object")
	cmd.Flags().IntVar(&maxLen, "max-len", fincat.Unbounded, "maximum path length (negative: unbounded)")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func applyCmd(gf *globalFlags) *cobra.Command {
	var functorName, expr string

	cmd := &cobra.Command{
		Use:   "apply FILE",
		Short: "Map a path expression through a functor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := presentation.LoadFile(args[0], presentation.WithLogger(gf.logger))
			if err != nil {
				return err
			}
			img, err := p.Apply(functorName, expr)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), img)
			return nil
		},
	}
	cmd.Flags().StringVar(&functorName, "functor", "", "functor name")
	cmd.Flags().StringVar(&expr, "path", "", `path expression in the domain, e.g. "f ; g"`)
	_ = cmd.MarkFlagRequired("functor")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}
