package str

import "strings"

// Unbounded is the SplitN limit that returns every segment.
const Unbounded = -1

// Separator is what Split divides on: a LiteralSeparator or a RegexSeparator.
type Separator interface {
	split(s string, limit int) []string
}

// LiteralSeparator splits on an exact substring. The empty separator splits
// between code points.
type LiteralSeparator string

func (sep LiteralSeparator) split(s string, limit int) []string {
	return strings.SplitN(s, string(sep), limit)
}

// RegexSeparator splits on every match of Pattern. Captured groups are not
// included in the result.
type RegexSeparator struct {
	Pattern *Pattern
}

func (sep RegexSeparator) split(s string, limit int) []string {
	if limit == 0 {
		return nil
	}
	rs := []rune(s)
	if len(rs) == 0 {
		return []string{""}
	}

	var out []string
	beg, end, prevEnd := 0, 0, -1
	for m := sep.Pattern.first(rs); m != nil; m = sep.Pattern.next(m) {
		if limit > 0 && len(out) == limit-1 {
			break
		}
		mEnd := m.Index + m.Length
		// An empty match right after the previous match is not a separator.
		if m.Length == 0 && m.Index == prevEnd {
			continue
		}
		prevEnd = mEnd

		end = m.Index
		if mEnd != 0 {
			out = append(out, string(rs[beg:end]))
		}
		beg = mEnd
	}
	if end != len(rs) {
		out = append(out, string(rs[beg:]))
	}
	return out
}

// ParseSeparator picks the separator kind from its spelling: a string that is
// a valid regex literal such as `/\s*,\s*/` becomes a RegexSeparator, and
// anything else, including a malformed literal, is a LiteralSeparator.
func ParseSeparator(s string) Separator {
	if p, err := ParseLiteral(s); err == nil {
		return RegexSeparator{Pattern: p}
	}
	return LiteralSeparator(s)
}

// Split divides the text on every occurrence of sep.
func (v *Value) Split(sep Separator) []string {
	return v.SplitN(sep, Unbounded)
}

// SplitN divides the text into at most limit segments, the last holding the
// unsplit remainder. A limit of 0 returns nil; a negative limit is Unbounded.
func (v *Value) SplitN(sep Separator, limit int) []string {
	return sep.split(v.s, limit)
}
