package str

import (
	"errors"
	"testing"
)

func TestCompile_Flags(t *testing.T) {
	p := MustCompile("HELLO", "i")
	if got := New("say hello").Search(p); got != 4 {
		t.Fatalf("case-insensitive search: got %d, want 4", got)
	}

	if got := New("a\nb").Search(MustCompile("^b", "")); got != -1 {
		t.Fatalf("^ without m flag: got %d, want -1", got)
	}
	if got := New("a\nb").Search(MustCompile("^b", "m")); got != 2 {
		t.Fatalf("^ with m flag: got %d, want 2", got)
	}

	if got := New("a\nb").Search(MustCompile("a.b", "s")); got != 0 {
		t.Fatalf(". with s flag: got %d, want 0", got)
	}
	if got := New("a\nb").Search(MustCompile("a.b", "")); got != -1 {
		t.Fatalf(". without s flag: got %d, want -1", got)
	}

	if _, err := Compile("a", "gu"); err != nil {
		t.Fatalf("g and u flags should be accepted: %v", err)
	}
}

func TestCompile_Errors(t *testing.T) {
	cases := []struct {
		name  string
		expr  string
		flags string
	}{
		{name: "unknown flag", expr: "a", flags: "x"},
		{name: "repeated flag", expr: "a", flags: "ii"},
		{name: "non-ascii flag", expr: "a", flags: "é"},
		{name: "unbalanced group", expr: "(a", flags: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(tc.expr, tc.flags)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("err=%v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestMustCompile_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustCompile should panic on a bad pattern")
		}
	}()
	MustCompile("(", "")
}

func TestParseLiteral(t *testing.T) {
	p, err := ParseLiteral("/a+b/gi")
	if err != nil {
		t.Fatalf("ParseLiteral: %v", err)
	}
	if got, want := p.String(), "/a+b/gi"; got != want {
		t.Fatalf("String: got %q, want %q", got, want)
	}
	if got, want := p.Source(), "a+b"; got != want {
		t.Fatalf("Source: got %q, want %q", got, want)
	}
	if got := New("xAAB").Search(p); got != 1 {
		t.Fatalf("search: got %d, want 1", got)
	}

	for _, lit := range []string{"abc", "/", "//", "//g", "a/b/", "/usr/bin/", "/a/b/g"} {
		if _, err := ParseLiteral(lit); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("ParseLiteral(%q): err=%v, want ErrInvalidArgument", lit, err)
		}
	}
}

func TestParseLiteral_SlashesInSource(t *testing.T) {
	cases := []struct {
		lit  string
		text string
		want int
	}{
		{lit: `/a\/b/`, text: "xa/b", want: 1},
		{lit: `/[/]/`, text: "ab/", want: 2},
		{lit: `/\\/`, text: `a\`, want: 1},
	}
	for _, tc := range cases {
		p, err := ParseLiteral(tc.lit)
		if err != nil {
			t.Fatalf("ParseLiteral(%q): %v", tc.lit, err)
		}
		if got := New(tc.text).Search(p); got != tc.want {
			t.Fatalf("search %s in %q: got %d, want %d", tc.lit, tc.text, got, tc.want)
		}
	}
}

func TestReplace_MalformedBytesBecomeReplacementChar(t *testing.T) {
	e := MustCompile("e", "")
	if got, want := New("a\xffe").Replace(e, Template("x")).String(), "a\uFFFDx"; got != want {
		t.Fatalf("replace with match: got %q, want %q", got, want)
	}
	if got, want := New("a\xffb").Replace(e, Template("x")).String(), "a\xffb"; got != want {
		t.Fatalf("replace without match: got %q, want %q", got, want)
	}
}

func TestSearch_CodePointOffset(t *testing.T) {
	p := MustCompile("l+", "")
	if got := New("héllo").Search(p); got != 2 {
		t.Fatalf("search: got %d, want 2", got)
	}
	if got := New("\U0001F600\U0001F600x").Search(MustCompile("x", "")); got != 2 {
		t.Fatalf("search after astral chars: got %d, want 2", got)
	}
	if got := New("abc").Search(MustCompile("z", "")); got != -1 {
		t.Fatalf("search miss: got %d, want -1", got)
	}
}

func TestMatch_Groups(t *testing.T) {
	m, ok := New("due 2024-01-15").Match(MustCompile(`(\d+)-(\d+)`, ""))
	if !ok {
		t.Fatalf("expected a match")
	}
	want := []string{"2024-01", "2024", "01"}
	if len(m.Groups) != len(want) {
		t.Fatalf("groups=%q, want %q", m.Groups, want)
	}
	for i := range want {
		if m.Groups[i] != want[i] {
			t.Fatalf("groups[%d]=%q, want %q", i, m.Groups[i], want[i])
		}
	}
	if m.Index != 4 {
		t.Fatalf("index=%d, want 4", m.Index)
	}
	if m.Text() != "2024-01" {
		t.Fatalf("text=%q, want %q", m.Text(), "2024-01")
	}
	if len(m.Named) != 0 {
		t.Fatalf("named=%v, want none", m.Named)
	}
}

func TestMatch_NamedAndUnmatchedGroups(t *testing.T) {
	m, ok := New("2024").Match(MustCompile(`(?<year>\d{4})(-\d\d)?`, ""))
	if !ok {
		t.Fatalf("expected a match")
	}
	if got, ok := m.Group("year"); !ok || got != "2024" {
		t.Fatalf("group year: got (%q, %v)", got, ok)
	}
	if _, ok := m.Group("month"); ok {
		t.Fatalf("unknown group should be absent")
	}
	if len(m.Groups) != 3 {
		t.Fatalf("groups=%q, want 3 entries", m.Groups)
	}
	empty := 0
	for _, g := range m.Groups {
		if g == "" {
			empty++
		}
	}
	if empty != 1 {
		t.Fatalf("groups=%q: the unmatched group should be the only empty one", m.Groups)
	}
}

func TestMatch_Absent(t *testing.T) {
	if _, ok := New("abc").Match(MustCompile(`\d`, "")); ok {
		t.Fatalf("expected no match")
	}
}

func TestMatchAll_OrderAndOffsets(t *testing.T) {
	ms := New("a1é2c3").MatchAll(MustCompile(`\d`, ""))
	if len(ms) != 3 {
		t.Fatalf("matches=%d, want 3", len(ms))
	}
	wantIdx := []int{1, 3, 5}
	wantText := []string{"1", "2", "3"}
	for i, m := range ms {
		if m.Index != wantIdx[i] || m.Text() != wantText[i] {
			t.Fatalf("match %d: got (%d, %q), want (%d, %q)", i, m.Index, m.Text(), wantIdx[i], wantText[i])
		}
	}

	none := New("abc").MatchAll(MustCompile(`\d`, ""))
	if none == nil || len(none) != 0 {
		t.Fatalf("no matches: got %#v, want empty slice", none)
	}
}

func TestReplace_FirstVersusAll(t *testing.T) {
	e := MustCompile("e", "")

	if got := New("cafe").Replace(e, Template("é")).String(); got != "café" {
		t.Fatalf("replace: got %q, want %q", got, "café")
	}
	if got := New("eee").Replace(e, Template("é")).String(); got != "éee" {
		t.Fatalf("replace first: got %q, want %q", got, "éee")
	}
	if got := New("eee").ReplaceAll(e, Template("é")).String(); got != "ééé" {
		t.Fatalf("replace all: got %q, want %q", got, "ééé")
	}
	if got := New("abc").ReplaceAll(e, Template("x")).String(); got != "abc" {
		t.Fatalf("replace without match: got %q, want %q", got, "abc")
	}
}

func TestReplace_TemplateReferences(t *testing.T) {
	p := MustCompile(`(\w+)\s(\w+)`, "")
	if got := New("John Smith").Replace(p, Template("$2, $1")).String(); got != "Smith, John" {
		t.Fatalf("numbered refs: got %q", got)
	}
	if got := New("ab").Replace(MustCompile("b", ""), Template("[$&]")).String(); got != "a[b]" {
		t.Fatalf("whole match ref: got %q", got)
	}
	if got := New("ab").Replace(MustCompile("b", ""), Template("$$")).String(); got != "a$" {
		t.Fatalf("escaped dollar: got %q", got)
	}
}

func TestReplace_Func(t *testing.T) {
	p := MustCompile(`\d+`, "")
	double := ReplaceFunc(func(m Match) string {
		return m.Text() + m.Text()
	})

	if got := New("a1b22").Replace(p, double).String(); got != "a11b22" {
		t.Fatalf("replace func first: got %q", got)
	}
	if got := New("a1b22").ReplaceAll(p, double).String(); got != "a11b2222" {
		t.Fatalf("replace func all: got %q", got)
	}

	var seen []int
	New("x1é2").ReplaceAll(p, ReplaceFunc(func(m Match) string {
		seen = append(seen, m.Index)
		return ""
	}))
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 3 {
		t.Fatalf("match indices passed to func: got %v, want [1 3]", seen)
	}
}

func TestReplace_Chains(t *testing.T) {
	got := New(" a-b ").Trim().ReplaceAll(MustCompile("-", ""), Template("+")).ToUpperCase().String()
	if got != "A+B" {
		t.Fatalf("chain: got %q, want %q", got, "A+B")
	}
}
