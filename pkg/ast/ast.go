// Package ast defines the expression grammar of gogrex and its
// precedence-aware renderer.
//
// The grammar has exactly five variants: alternation, concatenation,
// character class, literal and repetition. The set is closed; every
// variant implements the sealed Expression interface and fmt.Stringer.
// Rendering walks the tree once, bottom-up, and never mutates it.
package ast

import (
	"fmt"
	"slices"

	"github.com/sandrolain/gogrex/pkg/char"
	"github.com/sandrolain/gogrex/pkg/types"
)

// precedence orders the grammar variants for parenthesization decisions
// only. A child is grouped when its precedence is strictly lower than
// its parent's and it is not a single codepoint.
type precedence int

const (
	precAlternation precedence = iota
	precConcatenation
	precRepetition
	precAtom
)

// Expression is a node of the regular-expression tree. The variant set
// is fixed: Alternation, Concatenation, CharacterClass, Literal and
// Repetition. Nodes are immutable after construction and safe for
// concurrent rendering.
type Expression interface {
	fmt.Stringer

	precedence() precedence
	// isSingleCodepoint reports whether the rendered form is atomic
	// regardless of context: a single character, a single escape
	// sequence, or a bracketed character class.
	isSingleCodepoint() bool
}

// Alternation matches any one of its options.
type Alternation struct {
	options []Expression
	config  *types.RenderConfig
}

// NewAlternation creates an alternation over the given options, in
// order.
func NewAlternation(options []Expression, cfg *types.RenderConfig) *Alternation {
	return &Alternation{options: options, config: cfg}
}

// Options returns the ordered branches of the alternation.
func (a *Alternation) Options() []Expression {
	return a.options
}

func (a *Alternation) precedence() precedence  { return precAlternation }
func (a *Alternation) isSingleCodepoint() bool { return false }

// Concatenation sequences exactly two expressions; longer sequences are
// represented as left/right chains built by the caller.
type Concatenation struct {
	left   Expression
	right  Expression
	config *types.RenderConfig
}

// NewConcatenation creates the sequence left followed by right.
func NewConcatenation(left, right Expression, cfg *types.RenderConfig) *Concatenation {
	return &Concatenation{left: left, right: right, config: cfg}
}

// Left returns the first operand.
func (c *Concatenation) Left() Expression { return c.left }

// Right returns the second operand.
func (c *Concatenation) Right() Expression { return c.right }

func (c *Concatenation) precedence() precedence  { return precConcatenation }
func (c *Concatenation) isSingleCodepoint() bool { return false }

// CharacterClass matches exactly one character from its set.
type CharacterClass struct {
	runes  []rune
	config *types.RenderConfig
}

// NewCharacterClass creates a character class from the given characters.
// Duplicates are removed and the set is kept ordered by scalar value.
func NewCharacterClass(runes []rune, cfg *types.RenderConfig) *CharacterClass {
	sorted := slices.Clone(runes)
	slices.Sort(sorted)
	return &CharacterClass{runes: slices.Compact(sorted), config: cfg}
}

// Runes returns the class members ordered by scalar value.
func (c *CharacterClass) Runes() []rune {
	return c.runes
}

func (c *CharacterClass) precedence() precedence  { return precAtom }
func (c *CharacterClass) isSingleCodepoint() bool { return true }

// Literal matches a fixed sequence of quantified character runs.
type Literal struct {
	cluster *char.Cluster
	config  *types.RenderConfig
}

// NewLiteral creates a literal from a grapheme cluster.
func NewLiteral(cluster *char.Cluster, cfg *types.RenderConfig) *Literal {
	return &Literal{cluster: cluster, config: cfg}
}

// Cluster returns the literal's grapheme cluster.
func (l *Literal) Cluster() *char.Cluster {
	return l.cluster
}

func (l *Literal) precedence() precedence { return precConcatenation }

// The character count ignores the graphemes' own occurrence bounds:
// the builder never places a quantified single-character literal
// directly under a Repetition, so "a{2}" is never asked whether it
// needs a group.
func (l *Literal) isSingleCodepoint() bool {
	return l.cluster.CharCount(false) == 1
}

// Repetition repeats its inner expression per its quantifier.
type Repetition struct {
	inner      Expression
	quantifier Quantifier
	config     *types.RenderConfig
}

// NewRepetition creates a repetition of inner by the given quantifier.
func NewRepetition(inner Expression, quantifier Quantifier, cfg *types.RenderConfig) *Repetition {
	return &Repetition{inner: inner, quantifier: quantifier, config: cfg}
}

// Inner returns the repeated expression.
func (r *Repetition) Inner() Expression { return r.inner }

// Quantifier returns the repetition's quantifier.
func (r *Repetition) Quantifier() Quantifier { return r.quantifier }

func (r *Repetition) precedence() precedence  { return precRepetition }
func (r *Repetition) isSingleCodepoint() bool { return false }
