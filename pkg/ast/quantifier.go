package ast

import "fmt"

type quantifierKind int

const (
	quantQuestionMark quantifierKind = iota
	quantStar
	quantPlus
	quantFixed
	quantRange
)

// Quantifier describes how often a repetition's inner expression
// occurs. It always binds to the immediately preceding atom or group
// and never needs parenthesization of its own.
type Quantifier struct {
	kind quantifierKind
	min  uint32
	max  uint32
}

// QuestionMark is the zero-or-one quantifier "?".
func QuestionMark() Quantifier {
	return Quantifier{kind: quantQuestionMark}
}

// Star is the zero-or-more quantifier "*".
func Star() Quantifier {
	return Quantifier{kind: quantStar}
}

// Plus is the one-or-more quantifier "+".
func Plus() Quantifier {
	return Quantifier{kind: quantPlus}
}

// Fixed is the exact-count quantifier "{n}".
func Fixed(n uint32) Quantifier {
	return Quantifier{kind: quantFixed, min: n, max: n}
}

// Range is the bounded quantifier "{min,max}".
func Range(min, max uint32) Quantifier {
	return Quantifier{kind: quantRange, min: min, max: max}
}

// String returns the quantifier's regex syntax.
func (q Quantifier) String() string {
	switch q.kind {
	case quantQuestionMark:
		return "?"
	case quantStar:
		return "*"
	case quantPlus:
		return "+"
	case quantFixed:
		return fmt.Sprintf("{%d}", q.min)
	default:
		return fmt.Sprintf("{%d,%d}", q.min, q.max)
	}
}
