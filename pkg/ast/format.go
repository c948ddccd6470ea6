package ast

import (
	"strings"

	"github.com/sandrolain/gogrex/pkg/char"
	"github.com/sandrolain/gogrex/pkg/types"
)

// renderGrouped renders a child expression for embedding in a parent,
// wrapping it in a group when its precedence is strictly lower than the
// parent's and it is not a single codepoint.
func renderGrouped(child Expression, parent Expression, cfg *types.RenderConfig) string {
	rendered := child.String()
	if child.precedence() < parent.precedence() && !child.isSingleCodepoint() {
		return cfg.OpeningGroup() + rendered + cfg.ClosingGroup()
	}
	return rendered
}

// String renders the alternation, its options joined by "|".
func (a *Alternation) String() string {
	rendered := make([]string, len(a.options))
	for i, option := range a.options {
		rendered[i] = renderGrouped(option, a, a.config)
	}
	return strings.Join(rendered, a.config.Pipe())
}

// String renders the two operands back to back.
func (c *Concatenation) String() string {
	return renderGrouped(c.left, c, c.config) + renderGrouped(c.right, c, c.config)
}

// String renders the bracketed class, collapsing every maximal run of
// three or more ordinal-consecutive characters into a first-last range.
// Runs of two stay individual; a range saves nothing there.
func (c *CharacterClass) String() string {
	cfg := c.config

	escaped := make([]string, len(c.runes))
	for i, r := range c.runes {
		escaped[i] = char.EscapeClassChar(r)
	}

	var runs [][]string
	var run []string
	for i, s := range escaped {
		if i > 0 && char.CodepointOrdinal(c.runes[i]) != char.CodepointOrdinal(c.runes[i-1])+1 {
			runs = append(runs, run)
			run = nil
		}
		run = append(run, s)
	}
	runs = append(runs, run)

	var b strings.Builder
	b.WriteString(cfg.OpeningBracket())
	for _, run := range runs {
		if len(run) <= 2 {
			for _, s := range run {
				b.WriteString(s)
			}
		} else {
			b.WriteString(run[0])
			b.WriteString(cfg.Hyphen())
			b.WriteString(run[len(run)-1])
		}
	}
	b.WriteString(cfg.ClosingBracket())
	return b.String()
}

// String renders the cluster's graphemes back to back. Each grapheme is
// escaped on a private copy; the tree itself stays untouched so repeated
// renders never double-escape.
func (l *Literal) String() string {
	cfg := l.config
	var b strings.Builder
	for _, g := range l.cluster.Graphemes() {
		b.WriteString(g.Escaped(cfg.EscapeNonASCII, cfg.SurrogatePairs).String())
	}
	return b.String()
}

// String renders the inner expression followed by the quantifier.
func (r *Repetition) String() string {
	return renderGrouped(r.inner, r, r.config) + r.config.Quantifier(r.quantifier.String())
}
