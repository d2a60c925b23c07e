package repl

import (
	"strconv"
	"strings"
	"unicode"

	"go.trai.ch/zerr"
)

// Fields splits a command line on white space. A field that starts with a
// double quote is read as a Go string literal, so `padStart 8 " "` and
// `concat "é"` work.
func Fields(line string) ([]string, error) {
	var out []string
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	for rest != "" {
		if rest[0] == '"' {
			lit, err := strconv.QuotedPrefix(rest)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(ErrUsage, "unterminated string"), "rest", rest)
			}
			s, err := strconv.Unquote(lit)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(ErrUsage, "bad string literal"), "literal", lit)
			}
			out = append(out, s)
			rest = rest[len(lit):]
		} else {
			end := strings.IndexFunc(rest, unicode.IsSpace)
			if end < 0 {
				end = len(rest)
			}
			out = append(out, rest[:end])
			rest = rest[end:]
		}
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
	}
	return out, nil
}
