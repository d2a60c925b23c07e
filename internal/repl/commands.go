package repl

import (
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"

	"github.com/iw2rmb/jstext/str"
)

// command runs one operation. Queries return a rendered result; transforms
// mutate v and return "".
type command struct {
	usage     string
	min, max  int // argument count; max < 0 means variadic
	transform bool
	run       func(v *str.Value, args []string) (string, error)
}

const undefined = "undefined"

var commands = map[string]command{
	"at": {usage: "at <index>", min: 1, max: 1, run: func(v *str.Value, a []string) (string, error) {
		i, err := intArg(a[0])
		if err != nil {
			return "", err
		}
		ch, ok := v.At(i)
		return optional(strconv.Quote(ch), ok), nil
	}},
	"charAt": {usage: "charAt <index>", min: 1, max: 1, run: func(v *str.Value, a []string) (string, error) {
		i, err := intArg(a[0])
		if err != nil {
			return "", err
		}
		return strconv.Quote(v.CharAt(i)), nil
	}},
	"charCodeAt": {usage: "charCodeAt <index>", min: 1, max: 1, run: func(v *str.Value, a []string) (string, error) {
		i, err := intArg(a[0])
		if err != nil {
			return "", err
		}
		r, ok := v.CharCodeAt(i)
		return optional(strconv.Itoa(int(r)), ok), nil
	}},
	"codePointAt": {usage: "codePointAt <index>", min: 1, max: 1, run: func(v *str.Value, a []string) (string, error) {
		i, err := intArg(a[0])
		if err != nil {
			return "", err
		}
		r, ok := v.CodePointAt(i)
		return optional(strconv.Itoa(int(r)), ok), nil
	}},
	"length": {usage: "length", run: func(v *str.Value, _ []string) (string, error) {
		return strconv.Itoa(v.Len()), nil
	}},
	"isWellFormed": {usage: "isWellFormed", run: func(v *str.Value, _ []string) (string, error) {
		return strconv.FormatBool(v.IsWellFormed()), nil
	}},
	"localeCompare": {usage: "localeCompare <other>", min: 1, max: 1, run: func(v *str.Value, a []string) (string, error) {
		return strconv.Itoa(v.LocaleCompare(a[0])), nil
	}},
	"collate": {usage: "collate <other> [locale]", min: 1, max: 2, run: func(v *str.Value, a []string) (string, error) {
		return strconv.Itoa(v.Collate(a[0], argOr(a, 1, ""))), nil
	}},
	"includes": {usage: "includes <search> [position]", min: 1, max: 2, run: func(v *str.Value, a []string) (string, error) {
		pos, err := intArgOr(a, 1, 0)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(v.IncludesFrom(a[0], pos)), nil
	}},
	"indexOf": {usage: "indexOf <search> [position]", min: 1, max: 2, run: func(v *str.Value, a []string) (string, error) {
		pos, err := intArgOr(a, 1, 0)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v.IndexOfFrom(a[0], pos)), nil
	}},
	"lastIndexOf": {usage: "lastIndexOf <search> [position]", min: 1, max: 2, run: func(v *str.Value, a []string) (string, error) {
		if len(a) == 1 {
			return strconv.Itoa(v.LastIndexOf(a[0])), nil
		}
		pos, err := intArg(a[1])
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v.LastIndexOfFrom(a[0], pos)), nil
	}},
	"startsWith": {usage: "startsWith <search> [position]", min: 1, max: 2, run: func(v *str.Value, a []string) (string, error) {
		pos, err := intArgOr(a, 1, 0)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(v.StartsWithAt(a[0], pos)), nil
	}},
	"endsWith": {usage: "endsWith <search> [length]", min: 1, max: 2, run: func(v *str.Value, a []string) (string, error) {
		if len(a) == 1 {
			return strconv.FormatBool(v.EndsWith(a[0])), nil
		}
		n, err := intArg(a[1])
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(v.EndsWithin(a[0], n)), nil
	}},
	"search": {usage: "search <pattern>", min: 1, max: 1, run: func(v *str.Value, a []string) (string, error) {
		p, err := patternArg(a[0])
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v.Search(p)), nil
	}},
	"match": {usage: "match <pattern>", min: 1, max: 1, run: func(v *str.Value, a []string) (string, error) {
		p, err := patternArg(a[0])
		if err != nil {
			return "", err
		}
		m, ok := v.Match(p)
		if !ok {
			return "null", nil
		}
		return formatMatch(m), nil
	}},
	"matchAll": {usage: "matchAll <pattern>", min: 1, max: 1, run: func(v *str.Value, a []string) (string, error) {
		p, err := patternArg(a[0])
		if err != nil {
			return "", err
		}
		ms := v.MatchAll(p)
		lines := make([]string, 0, len(ms))
		for _, m := range ms {
			lines = append(lines, formatMatch(m))
		}
		return "[" + strings.Join(lines, ", ") + "]", nil
	}},
	"split": {usage: "split <separator|/regex/> [limit]", min: 1, max: 2, run: func(v *str.Value, a []string) (string, error) {
		limit, err := intArgOr(a, 1, str.Unbounded)
		if err != nil {
			return "", err
		}
		return formatList(v.SplitN(str.ParseSeparator(a[0]), limit)), nil
	}},
	"chars": {usage: "chars", run: func(v *str.Value, _ []string) (string, error) {
		return formatList(slices.Collect(v.Chars())), nil
	}},
	"graphemes": {usage: "graphemes", run: func(v *str.Value, _ []string) (string, error) {
		return formatList(slices.Collect(v.Graphemes())), nil
	}},
	"toString": {usage: "toString", run: func(v *str.Value, _ []string) (string, error) {
		return strconv.Quote(v.String()), nil
	}},
	"valueOf": {usage: "valueOf", run: func(v *str.Value, _ []string) (string, error) {
		return strconv.Quote(v.ValueOf()), nil
	}},

	"concat": {usage: "concat <part>...", min: 1, max: -1, transform: true, run: func(v *str.Value, a []string) (string, error) {
		v.Concat(a...)
		return "", nil
	}},
	"normalize": {usage: "normalize [NFC|NFD|NFKC|NFKD]", max: 1, transform: true, run: func(v *str.Value, a []string) (string, error) {
		_, err := v.Normalize(str.Form(argOr(a, 0, "")))
		return "", err
	}},
	"padStart": {usage: "padStart <length> [pad]", min: 1, max: 2, transform: true, run: func(v *str.Value, a []string) (string, error) {
		n, err := intArg(a[0])
		if err != nil {
			return "", err
		}
		v.PadStart(n, argOr(a, 1, " "))
		return "", nil
	}},
	"padEnd": {usage: "padEnd <length> [pad]", min: 1, max: 2, transform: true, run: func(v *str.Value, a []string) (string, error) {
		n, err := intArg(a[0])
		if err != nil {
			return "", err
		}
		v.PadEnd(n, argOr(a, 1, " "))
		return "", nil
	}},
	"repeat": {usage: "repeat <count>", min: 1, max: 1, transform: true, run: func(v *str.Value, a []string) (string, error) {
		n, err := intArg(a[0])
		if err != nil {
			return "", err
		}
		_, err = v.Repeat(n)
		return "", err
	}},
	"replace": {usage: "replace <pattern> <replacement>", min: 2, max: 2, transform: true, run: func(v *str.Value, a []string) (string, error) {
		p, err := patternArg(a[0])
		if err != nil {
			return "", err
		}
		v.Replace(p, str.Template(a[1]))
		return "", nil
	}},
	"replaceAll": {usage: "replaceAll <pattern> <replacement>", min: 2, max: 2, transform: true, run: func(v *str.Value, a []string) (string, error) {
		p, err := patternArg(a[0])
		if err != nil {
			return "", err
		}
		v.ReplaceAll(p, str.Template(a[1]))
		return "", nil
	}},
	"slice": {usage: "slice <start> [end]", min: 1, max: 2, transform: true, run: func(v *str.Value, a []string) (string, error) {
		start, err := intArg(a[0])
		if err != nil {
			return "", err
		}
		if len(a) == 1 {
			v.SliceFrom(start)
			return "", nil
		}
		end, err := intArg(a[1])
		if err != nil {
			return "", err
		}
		v.Slice(start, end)
		return "", nil
	}},
	"substring": {usage: "substring <start> [end]", min: 1, max: 2, transform: true, run: func(v *str.Value, a []string) (string, error) {
		start, err := intArg(a[0])
		if err != nil {
			return "", err
		}
		if len(a) == 1 {
			v.SubstringFrom(start)
			return "", nil
		}
		end, err := intArg(a[1])
		if err != nil {
			return "", err
		}
		v.Substring(start, end)
		return "", nil
	}},
	"toLowerCase":       simple((*str.Value).ToLowerCase),
	"toUpperCase":       simple((*str.Value).ToUpperCase),
	"toWellFormed":      simple((*str.Value).ToWellFormed),
	"trim":              simple((*str.Value).Trim),
	"trimStart":         simple((*str.Value).TrimStart),
	"trimEnd":           simple((*str.Value).TrimEnd),
	"reverse":           simple((*str.Value).Reverse),
	"toLocaleLowerCase": localized((*str.Value).ToLocaleLowerCase),
	"toLocaleUpperCase": localized((*str.Value).ToLocaleUpperCase),
}

func simple(fn func(*str.Value) *str.Value) command {
	return command{transform: true, run: func(v *str.Value, _ []string) (string, error) {
		fn(v)
		return "", nil
	}}
}

func localized(fn func(*str.Value, string) *str.Value) command {
	return command{usage: "[locale]", max: 1, transform: true, run: func(v *str.Value, a []string) (string, error) {
		fn(v, argOr(a, 0, ""))
		return "", nil
	}}
}

// Names returns the known command names in sorted order.
func Names() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func intArg(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(ErrUsage, "not an integer"), "integer", s)
	}
	return n, nil
}

func intArgOr(a []string, i, def int) (int, error) {
	if i >= len(a) {
		return def, nil
	}
	return intArg(a[i])
}

func argOr(a []string, i int, def string) string {
	if i >= len(a) {
		return def
	}
	return a[i]
}

// patternArg accepts a regex literal such as /a+/gi or a bare expression.
func patternArg(s string) (*str.Pattern, error) {
	if p, err := str.ParseLiteral(s); err == nil {
		return p, nil
	}
	return str.Compile(s, "")
}

func optional(s string, ok bool) string {
	if !ok {
		return undefined
	}
	return s
}

func formatList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = strconv.Quote(s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func formatMatch(m str.Match) string {
	return formatList(m.Groups) + " index=" + strconv.Itoa(m.Index)
}
