package str

import "strings"

// Includes reports whether search occurs anywhere in the text.
func (v *Value) Includes(search string) bool {
	return v.IncludesFrom(search, 0)
}

// IncludesFrom reports whether search occurs at or after position. It is
// false for any position outside [0, Len()).
func (v *Value) IncludesFrom(search string, position int) bool {
	return v.IndexOfFrom(search, position) >= 0
}

// IndexOf returns the first code point offset of search, or -1.
func (v *Value) IndexOf(search string) int {
	return v.IndexOfFrom(search, 0)
}

// IndexOfFrom returns the first offset of search at or after position, or -1.
// A position outside [0, Len()) never matches.
func (v *Value) IndexOfFrom(search string, position int) int {
	rs := v.runes()
	if position < 0 || position >= len(rs) {
		return -1
	}
	tail := string(rs[position:])
	i := strings.Index(tail, search)
	if i < 0 {
		return -1
	}
	return position + runeIndex(tail, i)
}

// LastIndexOf returns the offset of the last occurrence of search, or -1.
func (v *Value) LastIndexOf(search string) int {
	s := string(v.runes())
	i := strings.LastIndex(s, search)
	if i < 0 {
		return -1
	}
	return runeIndex(s, i)
}

// LastIndexOfFrom looks for the last occurrence of search that lies entirely
// within the code points [0, position]. Position is clamped to [0, Len()].
func (v *Value) LastIndexOfFrom(search string, position int) int {
	rs := v.runes()
	end := clampInt(position, 0, len(rs)) + 1
	if end > len(rs) {
		end = len(rs)
	}
	head := string(rs[:end])
	i := strings.LastIndex(head, search)
	if i < 0 {
		return -1
	}
	return runeIndex(head, i)
}

// StartsWith reports whether the text begins with search.
func (v *Value) StartsWith(search string) bool {
	return v.StartsWithAt(search, 0)
}

// StartsWithAt reports whether search appears exactly at position. A position
// outside [0, Len()) is always false.
func (v *Value) StartsWithAt(search string, position int) bool {
	rs := v.runes()
	if position < 0 || position >= len(rs) {
		return false
	}
	end := position + len([]rune(search))
	if end > len(rs) {
		return false
	}
	return string(rs[position:end]) == search
}

// EndsWith reports whether the text ends with search.
func (v *Value) EndsWith(search string) bool {
	return strings.HasSuffix(string(v.runes()), search)
}

// EndsWithin reports whether the first length code points end with search.
// Length is clamped to [0, Len()].
func (v *Value) EndsWithin(search string, length int) bool {
	rs := v.runes()
	length = clampInt(length, 0, len(rs))
	return strings.HasSuffix(string(rs[:length]), search)
}
