package str

import (
	"iter"

	"github.com/iw2rmb/jstext/internal/grapheme"
)

// Chars yields one single-code-point string per character, left to right.
//
// Every range statement starts a fresh pass over the text as it was when the
// pass began. Mutating the Value during a pass is allowed but is not observed
// by that pass; callers should not rely on either behavior.
func (v *Value) Chars() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, r := range v.s {
			if !yield(string(r)) {
				return
			}
		}
	}
}

// Entries yields (code point index, character) pairs.
func (v *Value) Entries() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		for _, r := range v.s {
			if !yield(i, string(r)) {
				return
			}
			i++
		}
	}
}

// Graphemes yields user-perceived characters.
func (v *Value) Graphemes() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, g := range grapheme.Split(v.s) {
			if !yield(g) {
				return
			}
		}
	}
}
