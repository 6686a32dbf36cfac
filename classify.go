package annohelper

// CharClass is the lexical class of a single code point.
type CharClass int

// Character classes recognised by Classify.
const (
	ClassOther CharClass = iota
	ClassChinese
	ClassLatin
	ClassDigit
)

// Chinese range is deliberately U+4E00..U+9FA5; extension blocks and the
// tail of the unified block classify as ClassOther.
const (
	chineseFirst rune = 0x4E00
	chineseLast  rune = 0x9FA5
)

// String returns the class name used in panel templates and logs.
func (c CharClass) String() string {
	switch c {
	case ClassChinese:
		return "chinese"
	case ClassLatin:
		return "english"
	case ClassDigit:
		return "number"
	default:
		return "punctuation"
	}
}

// Classify returns the class of r. It is total: every rune maps to exactly one class.
func Classify(r rune) CharClass {
	switch {
	case r >= chineseFirst && r <= chineseLast:
		return ClassChinese
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return ClassLatin
	case r >= '0' && r <= '9':
		return ClassDigit
	default:
		return ClassOther
	}
}
