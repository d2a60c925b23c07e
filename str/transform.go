package str

import (
	"math"
	"strings"
	"unicode"

	"go.trai.ch/zerr"

	"github.com/iw2rmb/jstext/internal/grapheme"
)

// Concat appends parts in order.
func (v *Value) Concat(parts ...string) *Value {
	if len(parts) == 0 {
		return v
	}
	var sb strings.Builder
	sb.WriteString(v.s)
	for _, p := range parts {
		sb.WriteString(p)
	}
	return v.set(sb.String())
}

// PadStart prepends pad, repeated and truncated, until the text is
// targetLength code points long. It is a no-op when the text is already long
// enough or pad is empty.
func (v *Value) PadStart(targetLength int, pad string) *Value {
	fill, ok := v.fill(targetLength, pad)
	if !ok {
		return v
	}
	return v.set(fill + v.s)
}

// PadEnd is PadStart on the other side.
func (v *Value) PadEnd(targetLength int, pad string) *Value {
	fill, ok := v.fill(targetLength, pad)
	if !ok {
		return v
	}
	return v.set(v.s + fill)
}

func (v *Value) fill(targetLength int, pad string) (string, bool) {
	n := v.Len()
	if n >= targetLength || pad == "" {
		return "", false
	}
	need := targetLength - n

	rs := []rune(pad)
	for len(rs) < need {
		rs = append(rs, rs...)
	}
	return string(rs[:need]), true
}

// Repeat replaces the text with count copies of itself.
func (v *Value) Repeat(count int) (*Value, error) {
	if count < 0 {
		return v, zerr.With(zerr.Wrap(ErrInvalidArgument, "negative repeat count"), "count", count)
	}
	if count > 0 && len(v.s) > math.MaxInt/count {
		return v, zerr.With(zerr.Wrap(ErrInvalidArgument, "repeat count overflows"), "count", count)
	}
	return v.set(strings.Repeat(v.s, count)), nil
}

// Slice keeps the code points in [start, end). Negative offsets count back
// from the end; both are clamped to [0, Len()].
func (v *Value) Slice(start, end int) *Value {
	rs := v.runes()
	start = resolveRelative(start, len(rs))
	end = resolveRelative(end, len(rs))
	if start >= end {
		return v.set("")
	}
	return v.set(string(rs[start:end]))
}

// SliceFrom keeps everything from start to the end.
func (v *Value) SliceFrom(start int) *Value {
	return v.Slice(start, v.Len())
}

func resolveRelative(i, n int) int {
	if i < 0 {
		i += n
	}
	return clampInt(i, 0, n)
}

// Substring keeps the code points between start and end. Negative offsets
// become 0 and the bounds are swapped when start > end.
func (v *Value) Substring(start, end int) *Value {
	rs := v.runes()
	start = clampInt(start, 0, len(rs))
	end = clampInt(end, 0, len(rs))
	if start > end {
		start, end = end, start
	}
	return v.set(string(rs[start:end]))
}

// SubstringFrom keeps everything from start to the end.
func (v *Value) SubstringFrom(start int) *Value {
	return v.Substring(start, v.Len())
}

// isSpace is Unicode white space plus the byte order mark, which ECMAScript
// also trims.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func (v *Value) Trim() *Value { return v.set(strings.TrimFunc(v.s, isSpace)) }

func (v *Value) TrimStart() *Value { return v.set(strings.TrimLeftFunc(v.s, isSpace)) }

func (v *Value) TrimEnd() *Value { return v.set(strings.TrimRightFunc(v.s, isSpace)) }

// ToWellFormed replaces every byte that is not part of a valid UTF-8
// sequence with U+FFFD, the same view the index-based methods use.
func (v *Value) ToWellFormed() *Value {
	if v.IsWellFormed() {
		return v
	}
	return v.set(string(v.runes()))
}

// Reverse reverses the order of grapheme clusters, so combining marks and
// emoji sequences stay attached to their base.
func (v *Value) Reverse() *Value {
	clusters := grapheme.Split(v.s)
	for i, j := 0, len(clusters)-1; i < j; i, j = i+1, j-1 {
		clusters[i], clusters[j] = clusters[j], clusters[i]
	}
	return v.set(grapheme.Join(clusters))
}
