// Package char implements the quantified-literal model of gogrex.
//
// This package contains:
//   - Grapheme: one run of literal text repeated between a minimum and a
//     maximum number of times
//   - Cluster: the ordered grapheme sequence carried by a literal node
//   - The overlap-split algorithm used to merge literal branches that
//     share identical text but different repeat counts
//   - Escaping and codepoint utilities shared with the renderer
package char

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// Metacharacters escaped in literal context, in replacement order.
var literalMetachars = []string{
	"(", ")", "[", "]", "{", "}", "+", "*", "-", ".", "?", "|", "^", "$",
}

// Metacharacters escaped in character-class context. The class set is
// deliberately distinct from the literal set: "." or "$" need no escape
// between brackets, while "^" and "-" do.
var classMetachars = map[rune]bool{
	'[':  true,
	']':  true,
	'\\': true,
	'-':  true,
	'^':  true,
}

// escapeFragment applies the literal-context escape rules to a single
// fragment: metacharacters get a backslash prefix, the three common
// control characters become their two-character escapes, and a fragment
// that is a lone backslash becomes "\\".
func escapeFragment(fragment string) string {
	for _, meta := range literalMetachars {
		fragment = strings.ReplaceAll(fragment, meta, `\`+meta)
	}
	fragment = strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`).Replace(fragment)
	if fragment == `\` {
		fragment = `\\`
	}
	return fragment
}

// EscapeClassChar escapes a single character for character-class context.
func EscapeClassChar(r rune) string {
	switch r {
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	}
	if classMetachars[r] {
		return `\` + string(r)
	}
	return string(r)
}

// escapeNonASCII expands a non-ASCII character into a \u{...} escape.
// With useSurrogatePairs set, astral-plane characters are encoded as
// their two UTF-16 surrogate halves. ASCII characters pass through.
func escapeNonASCII(r rune, useSurrogatePairs bool) string {
	if r < 0x80 {
		return string(r)
	}
	if useSurrogatePairs && r >= 0x10000 {
		hi, lo := utf16.EncodeRune(r)
		return fmt.Sprintf(`\u{%x}\u{%x}`, hi, lo)
	}
	return fmt.Sprintf(`\u{%x}`, r)
}

// escapeNonASCIIString expands every non-ASCII character of a fragment.
func escapeNonASCIIString(fragment string, useSurrogatePairs bool) string {
	var b strings.Builder
	for _, r := range fragment {
		b.WriteString(escapeNonASCII(r, useSurrogatePairs))
	}
	return b.String()
}

// The UTF-16 surrogate block U+D800..U+DFFF contains no valid scalar
// values.
const (
	surrogateMin  = 0xD800
	surrogateMax  = 0xDFFF
	surrogateSize = surrogateMax - surrogateMin + 1
)

// CodepointOrdinal returns the zero-based rank of r among all valid
// Unicode scalar values in ascending order. The enumeration skips the
// surrogate block, so U+D7FF and U+E000 are ordinal-adjacent even though
// their scalar values are not. Computed arithmetically rather than by
// scanning the scalar-value space.
func CodepointOrdinal(r rune) int {
	if r < surrogateMin {
		return int(r)
	}
	return int(r) - surrogateSize
}
