package str

import (
	"go.trai.ch/zerr"
	"golang.org/x/text/unicode/norm"
)

// Form names a Unicode normalization form.
type Form string

const (
	NFC  Form = "NFC"
	NFD  Form = "NFD"
	NFKC Form = "NFKC"
	NFKD Form = "NFKD"

	// NFKCCasefold is defined by Unicode but has no implementation here.
	NFKCCasefold Form = "NFKC_Casefold"
)

var normForms = map[Form]norm.Form{
	NFC:  norm.NFC,
	NFD:  norm.NFD,
	NFKC: norm.NFKC,
	NFKD: norm.NFKD,
}

// Normalize rewrites the text in the given normalization form. An empty form
// means NFC.
func (v *Value) Normalize(form Form) (*Value, error) {
	if form == "" {
		form = NFC
	}
	f, ok := normForms[form]
	if !ok {
		if form == NFKCCasefold {
			return v, zerr.With(zerr.Wrap(ErrUnsupported, "normalization form"), "form", string(form))
		}
		return v, zerr.With(zerr.Wrap(ErrInvalidArgument, "unknown normalization form"), "form", string(form))
	}
	return v.set(f.String(v.s)), nil
}
