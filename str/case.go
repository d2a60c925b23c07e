package str

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToLowerCase applies locale-independent lower-case mapping.
func (v *Value) ToLowerCase() *Value {
	return v.set(cases.Lower(language.Und).String(v.s))
}

// ToUpperCase applies locale-independent upper-case mapping.
func (v *Value) ToUpperCase() *Value {
	return v.set(cases.Upper(language.Und).String(v.s))
}

// ToLocaleLowerCase lower-cases with the rules of locale, e.g. "tr" maps "I"
// to dotless "ı". An empty locale uses Options.Locale.
func (v *Value) ToLocaleLowerCase(locale string) *Value {
	return v.set(cases.Lower(v.tag(locale)).String(v.s))
}

// ToLocaleUpperCase upper-cases with the rules of locale.
func (v *Value) ToLocaleUpperCase(locale string) *Value {
	return v.set(cases.Upper(v.tag(locale)).String(v.s))
}

func (v *Value) tag(locale string) language.Tag {
	if locale == "" {
		locale = v.opt.Locale
	}
	return parseLocale(locale)
}

// parseLocale accepts BCP 47 tags and POSIX names such as "en_US.UTF-8".
// Identifiers it cannot read map to language.Und.
func parseLocale(locale string) language.Tag {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und
	}
	return tag
}
