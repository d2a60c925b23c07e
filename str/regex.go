package str

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"go.trai.ch/zerr"
)

// Pattern is a compiled regular expression in the ECMAScript dialect.
// It is immutable and safe for concurrent use.
type Pattern struct {
	src   string
	flags string
	re    *regexp2.Regexp
}

// Compile compiles expr with JavaScript-style flags:
//
//   - i: ignore case
//   - m: ^ and $ match at line boundaries
//   - s: . matches newlines
//   - g, u: accepted and ignored; Replace vs ReplaceAll decides scope and
//     matching is always by code point
func Compile(expr, flags string) (*Pattern, error) {
	var opts regexp2.RegexOptions = regexp2.ECMAScript
	var seen [128]bool
	for _, f := range flags {
		if f >= 128 || seen[f] {
			return nil, zerr.With(zerr.Wrap(ErrInvalidArgument, "repeated or non-ASCII regex flag"), "flag", string(f))
		}
		seen[f] = true

		switch f {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		case 'g', 'u':
		default:
			return nil, zerr.With(zerr.Wrap(ErrInvalidArgument, "unknown regex flag"), "flag", string(f))
		}
	}

	re, err := regexp2.Compile(expr, opts)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(ErrInvalidArgument, err.Error()), "pattern", expr)
	}
	return &Pattern{src: expr, flags: flags, re: re}, nil
}

func MustCompile(expr, flags string) *Pattern {
	p, err := Compile(expr, flags)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseLiteral compiles a JavaScript regex literal such as `/a+b/gi`.
func ParseLiteral(lit string) (*Pattern, error) {
	src, flags, ok := splitLiteral(lit)
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrInvalidArgument, "not a regex literal"), "literal", lit)
	}
	return Compile(src, flags)
}

func splitLiteral(lit string) (src, flags string, ok bool) {
	if len(lit) < 3 || lit[0] != '/' {
		return "", "", false
	}
	end := strings.LastIndexByte(lit, '/')
	if end <= 1 || hasBareSlash(lit[1:end]) {
		return "", "", false
	}
	return lit[1:end], lit[end+1:], true
}

// hasBareSlash reports whether src contains a '/' that is neither escaped
// nor inside a character class; such a slash would end a literal.
func hasBareSlash(src string) bool {
	inClass := false
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				return true
			}
		}
	}
	return false
}

// String returns the pattern in literal form.
func (p *Pattern) String() string {
	return "/" + p.src + "/" + p.flags
}

// Source returns the expression without delimiters or flags.
func (p *Pattern) Source() string { return p.src }

// Match is one regex match. Index is a code point offset.
type Match struct {
	Index int
	// Groups[0] is the whole match. Groups that did not participate are "".
	Groups []string
	Named  map[string]string
}

// Text returns the whole matched text.
func (m Match) Text() string {
	if len(m.Groups) == 0 {
		return ""
	}
	return m.Groups[0]
}

// Group returns the named capture.
func (m Match) Group(name string) (string, bool) {
	s, ok := m.Named[name]
	return s, ok
}

func newMatch(m *regexp2.Match) Match {
	groups := m.Groups()
	out := Match{
		Index:  m.Index,
		Groups: make([]string, len(groups)),
	}
	for i, g := range groups {
		if len(g.Captures) > 0 {
			out.Groups[i] = g.String()
		}
		if _, err := strconv.Atoi(g.Name); err == nil {
			continue
		}
		if out.Named == nil {
			out.Named = make(map[string]string)
		}
		out.Named[g.Name] = out.Groups[i]
	}
	return out
}

// regexp2 only reports errors when a MatchTimeout is set, and Pattern never
// sets one, so errors are treated as "no further match".
func (p *Pattern) first(rs []rune) *regexp2.Match {
	m, err := p.re.FindRunesMatch(rs)
	if err != nil {
		return nil
	}
	return m
}

func (p *Pattern) next(m *regexp2.Match) *regexp2.Match {
	n, err := p.re.FindNextMatch(m)
	if err != nil {
		return nil
	}
	return n
}

// Search returns the code point offset of the first match of p, or -1.
func (v *Value) Search(p *Pattern) int {
	m := p.first(v.runes())
	if m == nil {
		return -1
	}
	return m.Index
}

// Match returns the first match of p.
func (v *Value) Match(p *Pattern) (Match, bool) {
	m := p.first(v.runes())
	if m == nil {
		return Match{}, false
	}
	return newMatch(m), true
}

// MatchAll returns every non-overlapping match of p from left to right.
func (v *Value) MatchAll(p *Pattern) []Match {
	out := []Match{}
	for m := p.first(v.runes()); m != nil; m = p.next(m) {
		out = append(out, newMatch(m))
	}
	return out
}

// Replacer produces the replacement text for a match. It is implemented by
// Template and ReplaceFunc.
type Replacer interface {
	replace(p *Pattern, input string, count int) (string, error)
}

// Template is a replacement string that may reference the match:
// $1..$n, ${name}, $& (whole match), $` (text before), $' (text after) and $$.
type Template string

func (t Template) replace(p *Pattern, input string, count int) (string, error) {
	return p.re.Replace(input, string(t), -1, count)
}

// ReplaceFunc computes the replacement from the match.
type ReplaceFunc func(Match) string

func (f ReplaceFunc) replace(p *Pattern, input string, count int) (string, error) {
	return p.re.ReplaceFunc(input, func(m regexp2.Match) string {
		return f(newMatch(&m))
	}, -1, count)
}

// Replace substitutes the first match of p. When p matches, malformed bytes
// anywhere in the text come back as U+FFFD, since matching runs on code
// points; without a match the text is left as it was.
func (v *Value) Replace(p *Pattern, r Replacer) *Value {
	return v.replace(p, r, 1)
}

// ReplaceAll substitutes every match of p.
func (v *Value) ReplaceAll(p *Pattern, r Replacer) *Value {
	return v.replace(p, r, -1)
}

func (v *Value) replace(p *Pattern, r Replacer, count int) *Value {
	out, err := r.replace(p, v.s, count)
	if err != nil {
		return v
	}
	return v.set(out)
}
