package annohelper

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		text string
		want CountResult
	}{
		{"empty", "", CountResult{}},
		{"words and number", "Hello World 123", CountResult{
			EnglishWords: 2, EnglishChars: 10, Numbers: 1, NumberDigits: 3,
			Punctuation: 2, Meaningful: 3, Total: 15,
		}},
		{"chinese then latin then digits", "你好abc123", CountResult{
			Chinese: 2, EnglishWords: 1, EnglishChars: 3, Numbers: 1, NumberDigits: 3,
			Meaningful: 4, Total: 8,
		}},
		{"hyphen breaks word", "abc-def", CountResult{
			EnglishWords: 2, EnglishChars: 6, Punctuation: 1, Meaningful: 2, Total: 7,
		}},
		{"letters then digits", "hello123", CountResult{
			EnglishWords: 1, EnglishChars: 5, Numbers: 1, NumberDigits: 3, Meaningful: 2, Total: 8,
		}},
		{"double space", "hello  world", CountResult{
			EnglishWords: 2, EnglishChars: 10, Punctuation: 2, Meaningful: 2, Total: 12,
		}},
		{"digits letters digits", "1a2", CountResult{
			EnglishWords: 1, EnglishChars: 1, Numbers: 2, NumberDigits: 2, Meaningful: 3, Total: 3,
		}},
		{"chinese breaks number run", "12中34", CountResult{
			Chinese: 1, Numbers: 2, NumberDigits: 4, Meaningful: 3, Total: 5,
		}},
		{"decimal is two groups", "3.14", CountResult{
			Numbers: 2, NumberDigits: 3, Punctuation: 1, Meaningful: 2, Total: 4,
		}},
		{"chinese punctuation", "你好，世界！", CountResult{
			Chinese: 4, Punctuation: 2, Meaningful: 4, Total: 6,
		}},
		{"accented latin is other", "café", CountResult{
			EnglishWords: 1, EnglishChars: 3, Punctuation: 1, Meaningful: 1, Total: 4,
		}},
		{"fullwidth digits are other", "１２", CountResult{Punctuation: 2, Total: 2}},
		{"emoji", "ok👍", CountResult{
			EnglishWords: 1, EnglishChars: 2, Punctuation: 1, Meaningful: 1, Total: 3,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Count(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Count(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
			require.NoError(t, got.Validate())
		})
	}
}

func TestCount_Invariants(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"",
		" ",
		"a",
		"Go 1.26 发布了！",
		"䷿一龥龦",
		"\xff\xfeabc",
		strings.Repeat("ab12中. ", 200),
		"line1\nline2\r\n\ttab",
		"𠀀𠀁", // CJK extension B
	}
	for _, in := range inputs {
		res := Count(in)
		assert.Equal(t, utf8.RuneCountInString(in), res.Total, "total for %q", in)
		assert.Equal(t, res.Total, res.Chinese+res.EnglishChars+res.NumberDigits+res.Punctuation, "partition for %q", in)
		assert.Equal(t, res.Chinese+res.EnglishWords+res.Numbers, res.Meaningful, "meaningful for %q", in)
		assert.Equal(t, res, Count(in), "idempotent for %q", in)
	}
}

func TestCount_InvalidUTF8(t *testing.T) {
	t.Parallel()
	res := Count("a\xffb")
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 1, res.Punctuation)
	assert.Equal(t, 2, res.EnglishWords)
}

func TestCount_EmptyIsZero(t *testing.T) {
	t.Parallel()
	assert.True(t, Count("").IsZero())
	assert.False(t, Count("x").IsZero())
}

func TestCountResult_Validate(t *testing.T) {
	t.Parallel()
	bad := CountResult{Chinese: 1, Total: 2, Meaningful: 1}
	err := bad.Validate()
	require.ErrorIs(t, err, ErrInvalidCount)
	var ce *CountError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "total", ce.Field)
	assert.Equal(t, 2, ce.Got)
	assert.Equal(t, 1, ce.Want)

	bad = CountResult{EnglishWords: 1, EnglishChars: 1, Total: 1}
	err = bad.Validate()
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "meaningful", ce.Field)
}

func TestSelectionCounter_CountSelection(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		raw    bool
		text   string
		wantOK bool
		want   int // Total
	}{
		{"empty", false, "", false, 0},
		{"only spaces", false, "  \n\t ", false, 0},
		{"trimmed", false, "  abc  ", true, 3},
		{"raw keeps spaces", true, "  abc  ", true, 7},
		{"raw whitespace only", true, "  ", true, 2},
		{"ideographic space trimmed", false, "　你好　", true, 2},
		{"byte order mark trimmed", false, "\uFEFFab\uFEFF", true, 2},
		{"line separators trimmed", false, "\u2028ab\u2029", true, 2},
		{"no-break space trimmed", false, "\u00a0ab\u00a0", true, 2},
		{"next line kept", false, "\u0085ab\u0085", true, 4},
		{"next line alone is a selection", false, "\u0085", true, 1},
		{"bom only", false, "\uFEFF\uFEFF", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := SelectionCounter{Raw: tt.raw}
			got, ok := c.CountSelection(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got.Total)
		})
	}
}

func TestSelectionCounter_ZeroValue(t *testing.T) {
	t.Parallel()
	var c Counter = SelectionCounter{}
	assert.Equal(t, Count("hi"), c.Count("  hi  "))
}

func TestIsSelectionSpace(t *testing.T) {
	t.Parallel()
	for _, r := range []rune{' ', '\t', '\n', '\v', '\f', '\r', '\u00a0', '\u1680', '\u2000', '\u200a', '\u202f', '\u205f', '\u3000', '\uFEFF', '\u2028', '\u2029'} {
		assert.True(t, isSelectionSpace(r), "%U", r)
	}
	for _, r := range []rune{'\u0085', '\u200b', 'a', '_', '\u180e'} {
		assert.False(t, isSelectionSpace(r), "%U", r)
	}
}
