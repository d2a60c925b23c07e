package str

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/collate"

	"github.com/iw2rmb/jstext/internal/grapheme"
)

// At returns the character at index. Negative indices count back from the
// end, so -1 is the last character.
func (v *Value) At(index int) (string, bool) {
	rs := v.runes()
	if index < 0 {
		index += len(rs)
	}
	if index < 0 || index >= len(rs) {
		return "", false
	}
	return string(rs[index]), true
}

// CharAt returns the character at a non-negative index, or "" when index is
// negative or out of range.
func (v *Value) CharAt(index int) string {
	if index < 0 {
		return ""
	}
	ch, _ := v.At(index)
	return ch
}

// CharCodeAt returns the code point at a non-negative index.
//
// Characters outside the Basic Multilingual Plane report their scalar value,
// not a UTF-16 surrogate.
func (v *Value) CharCodeAt(index int) (rune, bool) {
	ch := v.CharAt(index)
	if ch == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(ch)
	return r, true
}

// CodePointAt returns the code point at index; negative indices are allowed.
func (v *Value) CodePointAt(index int) (rune, bool) {
	ch, ok := v.At(index)
	if !ok {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(ch)
	return r, true
}

// IsWellFormed reports whether the text is valid UTF-8.
func (v *Value) IsWellFormed() bool { return utf8.ValidString(v.s) }

// LocaleCompare compares byte-wise and returns -1, 0 or +1.
func (v *Value) LocaleCompare(other string) int {
	return strings.Compare(v.s, other)
}

// Collate compares using the collation rules of locale. An empty locale uses
// Options.Locale.
func (v *Value) Collate(other, locale string) int {
	if locale == "" {
		locale = v.opt.Locale
	}
	c := collate.New(parseLocale(locale))
	return c.CompareString(v.s, other)
}

// GraphemeLen returns the number of user-perceived characters.
func (v *Value) GraphemeLen() int { return grapheme.Count(v.s) }

// Width returns the number of terminal cells needed to display the text.
func (v *Value) Width() int { return grapheme.Width(v.s) }
