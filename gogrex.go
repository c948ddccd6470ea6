// Package gogrex provides the rendering core of a regular-expression
// synthesizer: given an expression tree assembled from example strings,
// it serializes the tree into a syntactically correct, minimally
// parenthesized regular expression, optionally annotated with ANSI
// color.
//
// The package is library-shaped and purely in-process. An upstream
// builder constructs the tree from the five grammar variants in
// [github.com/sandrolain/gogrex/pkg/ast], merges quantified literal runs
// with the overlap-split algebra in
// [github.com/sandrolain/gogrex/pkg/char], and renders the finished tree
// through fmt.Stringer.
//
// # Quick Start
//
//	cfg := gogrex.NewRenderConfig()
//	cluster := char.NewCluster(char.NewGraphemeRange([]string{"a"}, 1, 3, cfg))
//	expr := ast.NewLiteral(cluster, cfg)
//	fmt.Println(expr) // a{1,3}
//
// # Rendering options
//
//	cfg := gogrex.NewRenderConfig(
//	    gogrex.WithCapturingGroups(true),  // "(" instead of "(?:"
//	    gogrex.WithColorizedOutput(true),  // ANSI-styled tokens
//	    gogrex.WithNonASCIIEscaping(true), // \u{...} escapes
//	    gogrex.WithSurrogatePairs(true),   // UTF-16 pairs for astral chars
//	)
//
// Rendering is a pure projection: trees and graphemes are never mutated,
// re-rendering always produces the same string, and a finished tree may
// be rendered concurrently from multiple goroutines.
//
// # More Information
//
// For detailed documentation, see:
//   - Expression grammar and renderer: github.com/sandrolain/gogrex/pkg/ast
//   - Quantified literals and merging: github.com/sandrolain/gogrex/pkg/char
//   - Render configuration: github.com/sandrolain/gogrex/pkg/types
package gogrex

import (
	"github.com/sandrolain/gogrex/pkg/types"
)

// Version returns the current version of gogrex.
func Version() string {
	return "v0.1.0-dev"
}

// RenderConfig is re-exported for convenience; see [types.RenderConfig].
type RenderConfig = types.RenderConfig

// RenderOption configures a RenderConfig; see [types.RenderOption].
type RenderOption = types.RenderOption

// NewRenderConfig creates the render configuration carried by every
// expression node and grapheme.
func NewRenderConfig(opts ...RenderOption) *RenderConfig {
	return types.NewRenderConfig(opts...)
}

// WithCapturingGroups selects capturing "(" groups over non-capturing
// "(?:" groups.
func WithCapturingGroups(enable bool) RenderOption {
	return types.WithCapturingGroups(enable)
}

// WithColorizedOutput enables ANSI styling of structural tokens.
func WithColorizedOutput(enable bool) RenderOption {
	return types.WithColorizedOutput(enable)
}

// WithNonASCIIEscaping enables \u{...} escaping of non-ASCII characters.
func WithNonASCIIEscaping(enable bool) RenderOption {
	return types.WithNonASCIIEscaping(enable)
}

// WithSurrogatePairs enables UTF-16 surrogate-pair escapes for
// astral-plane characters.
func WithSurrogatePairs(enable bool) RenderOption {
	return types.WithSurrogatePairs(enable)
}
