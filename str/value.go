package str

import "unicode/utf8"

const defaultLocale = "en-US"

// Options configures a Value. Zero fields take defaults in NewWithOptions.
type Options struct {
	Locale string // default: "en-US"
}

// Value is a mutable text value with a JavaScript-style API.
//
// A Value is owned by one goroutine at a time.
type Value struct {
	s   string
	opt Options
}

// New returns a Value holding text with default options.
func New(text string) *Value {
	return NewWithOptions(text, Options{})
}

// NewWithOptions returns a Value holding text, filling unset options.
func NewWithOptions(text string, opt Options) *Value {
	if opt.Locale == "" {
		opt.Locale = defaultLocale
	}
	return &Value{s: text, opt: opt}
}

// Len returns the number of code points.
func (v *Value) Len() int { return utf8.RuneCountInString(v.s) }

// String returns the current text.
func (v *Value) String() string { return v.s }

// ValueOf returns the current text; it is equivalent to String.
func (v *Value) ValueOf() string { return v.s }

// Clone returns an independent copy with the same options.
func (v *Value) Clone() *Value {
	return &Value{s: v.s, opt: v.opt}
}

func (v *Value) runes() []rune { return []rune(v.s) }

func (v *Value) set(s string) *Value {
	v.s = s
	return v
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// runeIndex converts a byte offset within s into a code point offset.
func runeIndex(s string, byteOff int) int {
	return utf8.RuneCountInString(s[:byteOff])
}
