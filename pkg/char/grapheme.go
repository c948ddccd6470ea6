package char

import (
	"strings"

	"github.com/sandrolain/gogrex/pkg/types"
)

// Grapheme represents one run of identical, possibly multi-character,
// literal text repeated between Minimum and Maximum times (inclusive).
//
// The text is kept as an ordered list of fragments rather than a single
// string so that escaping can transform each fragment independently
// without losing alignment with the source characters. A grapheme with
// sub-repetitions is a composite: its rendered value is the
// concatenation of the sub-graphemes' renderings instead of its own
// fragments.
//
// Graphemes are immutable from the renderer's point of view: rendering
// escapes a private copy and never touches the original, so a finished
// tree can be rendered repeatedly and concurrently.
type Grapheme struct {
	chars       []string
	repetitions []*Grapheme
	min         uint32
	max         uint32
	config      *types.RenderConfig
}

// NewGrapheme creates a plain grapheme from a single fragment, occurring
// exactly once.
func NewGrapheme(s string, cfg *types.RenderConfig) *Grapheme {
	return &Grapheme{
		chars:  []string{s},
		min:    1,
		max:    1,
		config: cfg,
	}
}

// NewGraphemeRange creates a grapheme from the given fragments with an
// inclusive occurrence range [min, max].
func NewGraphemeRange(chars []string, min, max uint32, cfg *types.RenderConfig) *Grapheme {
	return &Grapheme{
		chars:  chars,
		min:    min,
		max:    max,
		config: cfg,
	}
}

// Value returns the literal text of a single occurrence, the fragments
// joined in order.
func (g *Grapheme) Value() string {
	return strings.Join(g.chars, "")
}

// Chars returns the ordered fragments of a single occurrence.
func (g *Grapheme) Chars() []string {
	return g.chars
}

// Minimum returns the inclusive lower occurrence bound.
func (g *Grapheme) Minimum() uint32 {
	return g.min
}

// Maximum returns the inclusive upper occurrence bound.
func (g *Grapheme) Maximum() uint32 {
	return g.max
}

// HasRepetitions reports whether the grapheme is a composite of
// sub-repetitions.
func (g *Grapheme) HasRepetitions() bool {
	return len(g.repetitions) > 0
}

// Repetitions returns the ordered sub-repetitions of a composite
// grapheme, nil for a plain one.
func (g *Grapheme) Repetitions() []*Grapheme {
	return g.repetitions
}

// AppendRepetition appends a sub-repetition, turning the grapheme into a
// composite. Used by the tree builder when a literal is assembled from
// several distinct repeated sub-runs.
func (g *Grapheme) AppendRepetition(rep *Grapheme) {
	g.repetitions = append(g.repetitions, rep)
}

// CharCount returns the number of characters in a single rendered
// occurrence. With isNonASCIIEscaped set, non-ASCII characters are
// counted at the width of their \u{...} expansion.
func (g *Grapheme) CharCount(isNonASCIIEscaped bool) int {
	count := 0
	for _, fragment := range g.chars {
		if isNonASCIIEscaped {
			count += len([]rune(escapeNonASCIIString(fragment, false)))
		} else {
			count += len([]rune(fragment))
		}
	}
	return count
}

// clone returns a deep copy sharing only the config reference.
func (g *Grapheme) clone() *Grapheme {
	out := &Grapheme{
		chars:  append([]string(nil), g.chars...),
		min:    g.min,
		max:    g.max,
		config: g.config,
	}
	for _, rep := range g.repetitions {
		out.repetitions = append(out.repetitions, rep.clone())
	}
	return out
}

// Escaped returns a copy of the grapheme with regex metacharacters
// escaped in every fragment. For a composite grapheme the escaping is
// applied to each sub-repetition's fragments instead; escaping always
// targets leaf fragments, never a synthesized value. The receiver is
// left untouched.
//
// Escaping is applied exactly once per render; re-escaping an already
// escaped grapheme is a caller error.
func (g *Grapheme) Escaped(isNonASCIIEscaped, isAstralConvertedToSurrogate bool) *Grapheme {
	out := g.clone()
	out.escapeInPlace(isNonASCIIEscaped, isAstralConvertedToSurrogate)
	return out
}

func (g *Grapheme) escapeInPlace(isNonASCIIEscaped, isAstralConvertedToSurrogate bool) {
	if g.HasRepetitions() {
		for _, rep := range g.repetitions {
			rep.escapeInPlace(isNonASCIIEscaped, isAstralConvertedToSurrogate)
		}
		return
	}
	for i, fragment := range g.chars {
		g.chars[i] = escapeFragment(fragment)
	}
	if isNonASCIIEscaped {
		for i, fragment := range g.chars {
			g.chars[i] = escapeNonASCIIString(fragment, isAstralConvertedToSurrogate)
		}
	}
}

// String renders the grapheme with its quantifier.
//
// A value spanning more than one character is wrapped in a group before
// the quantifier is attached; a single-character value (including a
// two-character escape such as \n) binds the quantifier directly. An
// occurrence count of exactly one renders the bare value.
func (g *Grapheme) String() string {
	isSingleChar := g.CharCount(false) == 1 ||
		(len(g.chars) == 1 && strings.Count(g.chars[0], `\`) == 1)
	isRange := g.min < g.max
	isRepetition := g.min > 1

	var value string
	if g.HasRepetitions() {
		var b strings.Builder
		for _, rep := range g.repetitions {
			b.WriteString(rep.String())
		}
		value = b.String()
	} else {
		value = g.Value()
	}

	cfg := g.config
	switch {
	case !isRange && isRepetition && isSingleChar:
		return value + cfg.OpeningBrace() + cfg.Number(g.min) + cfg.ClosingBrace()
	case !isRange && isRepetition:
		return cfg.OpeningGroup() + value + cfg.ClosingGroup() +
			cfg.OpeningBrace() + cfg.Number(g.min) + cfg.ClosingBrace()
	case isRange && isSingleChar:
		return value + cfg.OpeningBrace() + cfg.Number(g.min) + cfg.Comma() +
			cfg.Number(g.max) + cfg.ClosingBrace()
	case isRange:
		return cfg.OpeningGroup() + value + cfg.ClosingGroup() +
			cfg.OpeningBrace() + cfg.Number(g.min) + cfg.Comma() +
			cfg.Number(g.max) + cfg.ClosingBrace()
	default:
		return value
	}
}
