package char

import "slices"

// OverlapSide tags a piece produced by the overlap split: whether the
// occurrence range belongs to the lower operand (Left), the higher
// operand (Right), or both (Overlap).
type OverlapSide int

// Overlap split tags.
const (
	SideLeft OverlapSide = iota
	SideRight
	SideOverlap
)

func (s OverlapSide) flip() OverlapSide {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideOverlap
	}
}

// String returns the tag name.
func (s OverlapSide) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "overlap"
	}
}

// OverlapPart is one piece of an overlap split: a fresh grapheme
// covering a sub-range of the inputs' occurrence counts, tagged with the
// side it belongs to.
type OverlapPart struct {
	Grapheme *Grapheme
	Side     OverlapSide
}

// OverlapWith partitions the occurrence ranges of two graphemes with
// identical text into disjoint, range-ordered pieces. The returned
// pieces cover exactly the union of the two input ranges; sub-ranges
// covered by only one input are tagged with that input's side, the
// intersection is tagged Overlap.
//
// When the texts differ no range reasoning applies and ok is false: the
// two literals cannot be merged, a normal outcome for the caller, not a
// fault.
//
// Split pieces carry the shared text and the computed bounds only;
// composite structure is never propagated into them.
func (g *Grapheme) OverlapWith(other *Grapheme) (parts []OverlapPart, ok bool) {
	if !slices.Equal(g.chars, other.chars) {
		return nil, false
	}

	// Canonicalize so the receiver is the lower operand, flipping the
	// tags of the swapped result.
	if g.min > other.min || (g.min == other.min && g.max > other.max) {
		swapped, _ := other.OverlapWith(g)
		for _, part := range swapped {
			parts = append(parts, OverlapPart{part.Grapheme, part.Side.flip()})
		}
		return parts, true
	}

	piece := func(lo, hi uint32) *Grapheme {
		return NewGraphemeRange(slices.Clone(g.chars), lo, hi, g.config)
	}

	if g.min < other.min {
		parts = append(parts, OverlapPart{piece(g.min, min(g.max, other.min-1)), SideLeft})
	}
	if g.max >= other.min {
		parts = append(parts, OverlapPart{piece(other.min, min(g.max, other.max)), SideOverlap})
	}
	switch {
	case g.max < other.max:
		parts = append(parts, OverlapPart{piece(max(g.max+1, other.min), other.max), SideRight})
	case g.max > other.max:
		parts = append(parts, OverlapPart{piece(max(other.max+1, g.min), g.max), SideLeft})
	}

	return parts, true
}
