package str

import "testing"

func TestToUpperAndLowerCase(t *testing.T) {
	if got := New("Straße").ToUpperCase().String(); got != "STRASSE" {
		t.Fatalf("ToUpperCase: got %q, want %q", got, "STRASSE")
	}
	if got := New("ÀB").ToLowerCase().String(); got != "àb" {
		t.Fatalf("ToLowerCase: got %q", got)
	}
}

func TestToLowerCase_IgnoresConfiguredLocale(t *testing.T) {
	v := NewWithOptions("I", Options{Locale: "tr"})
	if got := v.ToLowerCase().String(); got != "i" {
		t.Fatalf("ToLowerCase with tr options: got %q, want %q", got, "i")
	}
}

func TestToLocaleCase_Turkish(t *testing.T) {
	if got := New("istanbul").ToLocaleUpperCase("tr").String(); got != "İSTANBUL" {
		t.Fatalf("tr upper: got %q", got)
	}
	if got := New("I").ToLocaleLowerCase("tr_TR").String(); got != "ı" {
		t.Fatalf("tr_TR lower: got %q", got)
	}
	if got := New("i").ToLocaleUpperCase("en_US").String(); got != "I" {
		t.Fatalf("en_US upper: got %q", got)
	}
}

func TestToLocaleCase_DefaultLocale(t *testing.T) {
	if got := New("i").ToLocaleUpperCase("").String(); got != "I" {
		t.Fatalf("default en-US upper: got %q", got)
	}
	v := NewWithOptions("i", Options{Locale: "tr"})
	if got := v.ToLocaleUpperCase("").String(); got != "İ" {
		t.Fatalf("configured tr upper: got %q", got)
	}
}

func TestToLocaleCase_CallsDoNotShareState(t *testing.T) {
	tr := New("i").ToLocaleUpperCase("tr").String()
	en := New("i").ToLocaleUpperCase("en").String()
	if tr == en {
		t.Fatalf("locales should differ: tr=%q en=%q", tr, en)
	}
	if again := New("i").ToLocaleUpperCase("en").String(); again != "I" {
		t.Fatalf("en after tr: got %q", again)
	}
}

func TestParseLocale(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "en_US", want: "en-US"},
		{in: "en-US", want: "en-US"},
		{in: "en_US.UTF-8", want: "en-US"},
		{in: "de_DE@euro", want: "de-DE"},
		{in: "tr", want: "tr"},
		{in: "C", want: "und"},
		{in: "", want: "und"},
		{in: "not a locale", want: "und"},
	}
	for _, tc := range cases {
		if got := parseLocale(tc.in).String(); got != tc.want {
			t.Fatalf("parseLocale(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}
