package types

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// ANSI styles for the structural tokens of a rendered expression.
// Bold is listed first so the emitted sequences take the ESC[1;3Xm form.
// The styles are force-enabled: colorization is controlled exclusively by
// RenderConfig.ColorizedOutput, never by TTY detection.
//
//nolint:gochecknoglobals
var (
	groupStyle  = color.New(color.Bold, color.FgGreen)   // ( (?: )
	pipeStyle   = color.New(color.Bold, color.FgRed)     // |
	classStyle  = color.New(color.Bold, color.FgCyan)    // [ ] -
	quantStyle  = color.New(color.Bold, color.FgMagenta) // { } , ? * +
	numberStyle = color.New(color.Bold, color.FgWhite)   // repetition bounds
)

func init() {
	for _, s := range []*color.Color{groupStyle, pipeStyle, classStyle, quantStyle, numberStyle} {
		s.EnableColor()
	}
}

// ansiReset closes every styled token. The rendered format is
// ESC[1;3Xm…ESC[0m; fatih/color may close bold styles with an
// attribute-specific reset instead, so the close sequence is normalized
// here rather than taken from Sprint.
const ansiReset = "\x1b[0m"

func (cfg *RenderConfig) token(style *color.Color, s string) string {
	if !cfg.ColorizedOutput {
		return s
	}
	out := style.Sprint(s)
	if i := strings.LastIndex(out, "\x1b["); i >= 0 {
		out = out[:i] + ansiReset
	}
	return out
}

// OpeningGroup returns the opening group marker, "(" or "(?:" depending
// on the capturing-groups toggle.
func (cfg *RenderConfig) OpeningGroup() string {
	if cfg.CapturingGroups {
		return cfg.token(groupStyle, "(")
	}
	return cfg.token(groupStyle, "(?:")
}

// ClosingGroup returns the closing group marker ")".
func (cfg *RenderConfig) ClosingGroup() string {
	return cfg.token(groupStyle, ")")
}

// Pipe returns the alternation separator "|".
func (cfg *RenderConfig) Pipe() string {
	return cfg.token(pipeStyle, "|")
}

// OpeningBracket returns the character-class opener "[".
func (cfg *RenderConfig) OpeningBracket() string {
	return cfg.token(classStyle, "[")
}

// ClosingBracket returns the character-class closer "]".
func (cfg *RenderConfig) ClosingBracket() string {
	return cfg.token(classStyle, "]")
}

// Hyphen returns the character-class range separator "-".
func (cfg *RenderConfig) Hyphen() string {
	return cfg.token(classStyle, "-")
}

// OpeningBrace returns the repetition opener "{".
func (cfg *RenderConfig) OpeningBrace() string {
	return cfg.token(quantStyle, "{")
}

// ClosingBrace returns the repetition closer "}".
func (cfg *RenderConfig) ClosingBrace() string {
	return cfg.token(quantStyle, "}")
}

// Comma returns the repetition bound separator ",".
func (cfg *RenderConfig) Comma() string {
	return cfg.token(quantStyle, ",")
}

// Number renders a repetition bound.
func (cfg *RenderConfig) Number(n uint32) string {
	return cfg.token(numberStyle, strconv.FormatUint(uint64(n), 10))
}

// Quantifier renders a quantifier symbol such as "?" or "{2,5}".
func (cfg *RenderConfig) Quantifier(symbol string) string {
	return cfg.token(quantStyle, symbol)
}
