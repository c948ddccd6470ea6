// Package types defines the shared render-time types for gogrex.
//
// This package contains:
//   - RenderConfig: the option bundle consulted by every rendering and
//     escaping operation
//   - The ANSI token palette used when colorized output is enabled
//
// A RenderConfig is built once by the caller and carried by reference
// through every expression node and grapheme, so a finished tree renders
// itself without any ambient state.
package types

// RenderConfig holds the rendering options for a synthesized regular
// expression. The zero value renders plain, non-capturing, unescaped
// output.
//
// A RenderConfig is read-only after construction and safe for concurrent
// use by multiple goroutines.
type RenderConfig struct {
	// CapturingGroups selects "(" over "(?:" for every group the
	// renderer emits.
	CapturingGroups bool
	// ColorizedOutput wraps every structural token in an ANSI style.
	ColorizedOutput bool
	// EscapeNonASCII expands every non-ASCII literal character into a
	// \u{...} escape sequence.
	EscapeNonASCII bool
	// SurrogatePairs encodes astral-plane characters (U+10000 and above)
	// as two UTF-16 surrogate escapes instead of a single escape.
	// Consulted only when EscapeNonASCII is set.
	SurrogatePairs bool
}

// RenderOption configures rendering behavior.
type RenderOption func(*RenderConfig)

// NewRenderConfig creates a RenderConfig from the given options.
//
// Example:
//
//	cfg := types.NewRenderConfig(
//	    types.WithCapturingGroups(true),
//	    types.WithColorizedOutput(true),
//	)
func NewRenderConfig(opts ...RenderOption) *RenderConfig {
	cfg := &RenderConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithCapturingGroups selects capturing "(" groups over non-capturing
// "(?:" groups.
func WithCapturingGroups(enable bool) RenderOption {
	return func(cfg *RenderConfig) {
		cfg.CapturingGroups = enable
	}
}

// WithColorizedOutput enables ANSI styling of structural tokens.
func WithColorizedOutput(enable bool) RenderOption {
	return func(cfg *RenderConfig) {
		cfg.ColorizedOutput = enable
	}
}

// WithNonASCIIEscaping enables \u{...} escaping of non-ASCII characters.
func WithNonASCIIEscaping(enable bool) RenderOption {
	return func(cfg *RenderConfig) {
		cfg.EscapeNonASCII = enable
	}
}

// WithSurrogatePairs enables UTF-16 surrogate-pair escapes for
// astral-plane characters. It has no effect unless non-ASCII escaping is
// also enabled.
func WithSurrogatePairs(enable bool) RenderOption {
	return func(cfg *RenderConfig) {
		cfg.SurrogatePairs = enable
	}
}
