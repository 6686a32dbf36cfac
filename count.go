package annohelper

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CountResult is the breakdown of one text selection.
// Immutable by convention; a new value is computed for every selection.
type CountResult struct {
	Chinese      int `json:"chinese" yaml:"chinese"`
	EnglishWords int `json:"english_words" yaml:"english_words"`
	EnglishChars int `json:"english_chars" yaml:"english_chars"`
	Numbers      int `json:"numbers" yaml:"numbers"`             // digit groups
	NumberDigits int `json:"number_digits" yaml:"number_digits"` // digits across all groups
	Punctuation  int `json:"punctuation" yaml:"punctuation"`     // everything else, whitespace included
	Meaningful   int `json:"meaningful" yaml:"meaningful"`       // Chinese + EnglishWords + Numbers
	Total        int `json:"total" yaml:"total"`                 // code points
}

// Validate checks the arithmetic invariants between the fields.
// Returns a *CountError wrapping ErrInvalidCount on the first mismatch.
func (r CountResult) Validate() error {
	if want := r.Chinese + r.EnglishChars + r.NumberDigits + r.Punctuation; r.Total != want {
		return &CountError{Field: "total", Got: r.Total, Want: want}
	}
	if want := r.Chinese + r.EnglishWords + r.Numbers; r.Meaningful != want {
		return &CountError{Field: "meaningful", Got: r.Meaningful, Want: want}
	}
	return nil
}

// IsZero reports whether nothing was counted.
func (r CountResult) IsZero() bool { return r == CountResult{} }

// runState tracks whether the scan is inside a letter run or a digit run.
type runState struct {
	inWord   bool
	inNumber bool
}

// Count classifies every code point of text in a single pass.
// Runs of ASCII letters form one word, runs of ASCII digits one number group;
// any character of another class ends the run. Invalid UTF-8 bytes count as
// one U+FFFD each.
func Count(text string) CountResult {
	var (
		res   CountResult
		state runState
	)
	for _, r := range text {
		switch Classify(r) {
		case ClassChinese:
			res.Chinese++
			state = runState{}
		case ClassLatin:
			res.EnglishChars++
			if !state.inWord {
				res.EnglishWords++
				state.inWord = true
			}
			state.inNumber = false
		case ClassDigit:
			res.NumberDigits++
			if !state.inNumber {
				res.Numbers++
				state.inNumber = true
			}
			state.inWord = false
		default:
			res.Punctuation++
			state = runState{}
		}
	}
	res.Meaningful = res.Chinese + res.EnglishWords + res.Numbers
	res.Total = utf8.RuneCountInString(text)
	return res
}

// Counter produces a CountResult for a string.
// SelectionCounter is the default; callers can plug in their own breakdown.
type Counter interface {
	Count(text string) CountResult
}

// SelectionCounter counts text the way a page selection is counted:
// surrounding whitespace (the set String.prototype.trim removes: Zs, tab,
// VT, FF, BOM and the line terminators) is dropped first unless Raw is set.
// Zero value trims.
type SelectionCounter struct {
	Raw bool
}

// Ensures SelectionCounter implements Counter.
var _ Counter = SelectionCounter{}

// Count returns the breakdown of text after optional trimming.
func (c SelectionCounter) Count(text string) CountResult {
	res, _ := c.CountSelection(text)
	return res
}

// CountSelection returns the breakdown and false when the selection is empty
// after trimming (the tooltip should be hidden).
func (c SelectionCounter) CountSelection(text string) (CountResult, bool) {
	if !c.Raw {
		text = strings.TrimFunc(text, isSelectionSpace)
	}
	if text == "" {
		return CountResult{}, false
	}
	return Count(text), true
}

// isSelectionSpace reports whether r is whitespace to a browser's trim.
// U+FEFF counts; U+0085 does not.
func isSelectionSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\uFEFF', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}
