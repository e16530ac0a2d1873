// SPDX-License-Identifier: MIT
// Package: fincat/builder
//
// id_fn.go - naming schemes. Every scheme yields path-expression identifiers
// and is injective on non-negative indices.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a graph-wide index to a name.
type IDFn func(idx int) string

// SymbolNumberIDFn returns idx ↦ prefix+idx, e.g. "v0", "v1".
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// ExcelColumnIDFn returns A, B, …, Z, AA, AB, … (bijective base 26).
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	var i, j int
	for i = idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j = 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// lowerEdgeLetters are the conventional morphism letters, in order.
const lowerEdgeLetters = "fghklmnpqrstuvwxyz"

// LowerEdgeIDFn returns f, g, h, k, …, z, then f0, g0, …, z0, f1, ….
func LowerEdgeIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("LowerEdgeIDFn: idx must be ≥ 0, got %d", idx))
	}
	n := len(lowerEdgeLetters)
	letter := string(lowerEdgeLetters[idx%n])
	if idx < n {
		return letter
	}

	return letter + strconv.Itoa(idx/n-1)
}
