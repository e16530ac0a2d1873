// SPDX-License-Identifier: MIT

// File: expr.go
// Role: Textual morphisms. Grammar:
//
//	expr := term (";" term)*
//	term := "id" "(" Ident ")" | Ident
//
// Terms are composed diagrammatically ("f ; g" is f then g). Ident is a
// letter or underscore followed by letters, digits, underscores or primes.

package fincat

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var pathLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_']*`},
	{Name: "Punct", Pattern: `[();]`},
	{Name: "whitespace", Pattern: `\s+`},
})

type pathExpr struct {
	Terms []*pathTerm `parser:"@@ ( ';' @@ )*"`
}

type pathTerm struct {
	Identity *string `parser:"  'id' '(' @Ident ')'"`
	Edge     *string `parser:"| @Ident"`
}

var pathParser = participle.MustBuild[pathExpr](
	participle.Lexer(pathLexer),
	participle.Elide("whitespace"),
	participle.UseLookahead(2),
)

// ParsePath reads a path expression such as "f ; g" or "id(A)" against the
// graph's names.
//
// Errors:
//   - ErrUnnamedGraph: the graph does not implement NamedGraph.
//   - ErrSyntax: the expression does not match the grammar.
//   - ErrUnknownName: a term names no edge/vertex.
//   - ErrBoundaryMismatch: consecutive terms do not compose.
//
// Complexity: O(len(expr) + L²) for L terms (each composition copies).
func (c *FreeCategory) ParsePath(expr string) (Path, error) {
	if _, ok := c.graph.(NamedGraph); !ok {
		return Path{}, ErrUnnamedGraph
	}
	if strings.TrimSpace(expr) == "" {
		return Path{}, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	ast, err := pathParser.ParseString("", expr)
	if err != nil {
		return Path{}, fmt.Errorf("%w: %q: %v", ErrSyntax, expr, err)
	}
	if len(ast.Terms) == 0 {
		return Path{}, fmt.Errorf("%w: %q: no terms", ErrSyntax, expr)
	}

	var acc Path
	for i, term := range ast.Terms {
		p, err := c.termPath(term)
		if err != nil {
			return Path{}, err
		}
		if i == 0 {
			acc = p
			continue
		}
		if acc, err = Concatenate(acc, p); err != nil {
			return Path{}, fmt.Errorf("term #%d in %q: %w", i, expr, err)
		}
	}

	return acc, nil
}

// FormatPath renders p in the syntax ParsePath accepts when the graph is named;
// otherwise indices are used ("id(0)", "0 ; 1").
func (c *FreeCategory) FormatPath(p Path) string {
	named, ok := c.graph.(NamedGraph)
	if p.IsIdentity() {
		if ok {
			return "id(" + named.VertexName(int(p.src)) + ")"
		}
		return fmt.Sprintf("id(%d)", p.src)
	}
	parts := make([]string, len(p.edges))
	for i, e := range p.edges {
		if ok {
			parts[i] = named.EdgeName(int(e))
		} else {
			parts[i] = fmt.Sprintf("%d", e)
		}
	}

	return strings.Join(parts, " ; ")
}

// termPath resolves a single term.
func (c *FreeCategory) termPath(term *pathTerm) (Path, error) {
	if term.Identity != nil {
		v, err := c.vertexByName(*term.Identity)
		if err != nil {
			return Path{}, err
		}
		return IdentityPath(v), nil
	}
	e, err := c.edgeByName(*term.Edge)
	if err != nil {
		return Path{}, err
	}

	return c.Generator(e), nil
}
