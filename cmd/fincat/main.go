// SPDX-License-Identifier: MIT

// Command fincat checks functors between finitely presented categories
// declared in YAML documents, enumerates hom-sets and applies functors to
// path expressions.
//
//	fincat check FILE
//	fincat paths FILE --category C --from A --to B [--max-len N]
//	fincat apply FILE --functor F --path "f ; g"
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}
