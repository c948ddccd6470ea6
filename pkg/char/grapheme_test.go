package char

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandrolain/gogrex/pkg/types"
)

func TestGraphemeRendering(t *testing.T) {
	cfg := types.NewRenderConfig()

	tests := []struct {
		name     string
		chars    []string
		min, max uint32
		expected string
	}{
		{"plain single char", []string{"a"}, 1, 1, "a"},
		{"plain multi char", []string{"ab"}, 1, 1, "ab"},
		{"fixed count single char", []string{"a"}, 3, 3, "a{3}"},
		{"fixed count multi char", []string{"ab"}, 4, 4, "(?:ab){4}"},
		{"range single char", []string{"a"}, 2, 5, "a{2,5}"},
		{"range multi char", []string{"ab"}, 2, 5, "(?:ab){2,5}"},
		{"range from one", []string{"a"}, 1, 3, "a{1,3}"},
		{"optional", []string{"a"}, 0, 1, "a{0,1}"},
		{"zero occurrences", []string{"a"}, 0, 0, "a"},
		{"multiple fragments", []string{"a", "b"}, 2, 2, "(?:ab){2}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGraphemeRange(tt.chars, tt.min, tt.max, cfg)
			assert.Equal(t, tt.expected, g.String())
		})
	}
}

func TestGraphemeRenderingEscapedSingleChar(t *testing.T) {
	cfg := types.NewRenderConfig()

	// A two-character escape sequence still counts as a single
	// character, so the quantifier binds without a group.
	g := NewGraphemeRange([]string{"\n"}, 2, 2, cfg).Escaped(false, false)
	assert.Equal(t, `\n{2}`, g.String())

	dot := NewGraphemeRange([]string{"."}, 2, 4, cfg).Escaped(false, false)
	assert.Equal(t, `\.{2,4}`, dot.String())
}

func TestGraphemeRenderingCapturingGroups(t *testing.T) {
	cfg := types.NewRenderConfig(types.WithCapturingGroups(true))

	g := NewGraphemeRange([]string{"ab"}, 4, 4, cfg)
	assert.Equal(t, "(ab){4}", g.String())
}

func TestGraphemeRenderingColorized(t *testing.T) {
	cfg := types.NewRenderConfig(types.WithColorizedOutput(true))

	g := NewGraphemeRange([]string{"a"}, 2, 5, cfg)
	assert.Equal(t,
		"a\x1b[1;35m{\x1b[0m\x1b[1;37m2\x1b[0m\x1b[1;35m,\x1b[0m\x1b[1;37m5\x1b[0m\x1b[1;35m}\x1b[0m",
		g.String())

	grouped := NewGraphemeRange([]string{"ab"}, 3, 3, cfg)
	assert.Equal(t,
		"\x1b[1;32m(?:\x1b[0mab\x1b[1;32m)\x1b[0m\x1b[1;35m{\x1b[0m\x1b[1;37m3\x1b[0m\x1b[1;35m}\x1b[0m",
		grouped.String())
}

func TestGraphemeComposite(t *testing.T) {
	cfg := types.NewRenderConfig()

	g := NewGrapheme("ab", cfg)
	g.AppendRepetition(NewGraphemeRange([]string{"a"}, 2, 2, cfg))
	g.AppendRepetition(NewGrapheme("b", cfg))
	require.True(t, g.HasRepetitions())

	// The composite renders its sub-repetitions, not its own fragments.
	assert.Equal(t, "a{2}b", g.String())
}

func TestGraphemeEscapedIsPure(t *testing.T) {
	cfg := types.NewRenderConfig()

	g := NewGrapheme("a.b", cfg)
	escaped := g.Escaped(false, false)

	assert.Equal(t, []string{`a\.b`}, escaped.Chars())
	assert.Equal(t, []string{"a.b"}, g.Chars(), "the original must stay untouched")

	// Repeated renders of the same literal never double-escape.
	assert.Equal(t, g.Escaped(false, false).String(), escaped.String())
}

func TestGraphemeEscapedComposite(t *testing.T) {
	cfg := types.NewRenderConfig()

	g := NewGrapheme("a.", cfg)
	g.AppendRepetition(NewGraphemeRange([]string{"a."}, 2, 2, cfg))

	escaped := g.Escaped(false, false)
	// Escaping targets the leaf fragments of the sub-repetitions.
	assert.Equal(t, []string{`a\.`}, escaped.Repetitions()[0].Chars())
	assert.Equal(t, []string{"a."}, g.Repetitions()[0].Chars())
}

func TestGraphemeEscapedNonASCII(t *testing.T) {
	cfg := types.NewRenderConfig()

	tests := []struct {
		name       string
		input      string
		surrogates bool
		expected   string
	}{
		{"bmp char", "ä", false, `\u{e4}`},
		{"astral single escape", "\U0001F600", false, `\u{1f600}`},
		{"astral surrogate pair", "\U0001F600", true, `\u{d83d}\u{de00}`},
		{"mixed ascii and non-ascii", "aä", false, `a\u{e4}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrapheme(tt.input, cfg).Escaped(true, tt.surrogates)
			assert.Equal(t, tt.expected, g.Value())
		})
	}
}

func TestGraphemeCharCount(t *testing.T) {
	cfg := types.NewRenderConfig()

	g := NewGraphemeRange([]string{"aä"}, 1, 1, cfg)
	assert.Equal(t, 2, g.CharCount(false))
	// "ä" expands to \u{e4}, six characters, plus the plain "a".
	assert.Equal(t, 7, g.CharCount(true))
}

func TestGraphemeValue(t *testing.T) {
	cfg := types.NewRenderConfig()

	g := NewGraphemeRange([]string{"a", "b", "c"}, 1, 1, cfg)
	assert.Equal(t, "abc", g.Value())
	assert.Equal(t, uint32(1), g.Minimum())
	assert.Equal(t, uint32(1), g.Maximum())
}
