// Package parser extracts recording metadata from camera filenames.
//
// Every supported camera vendor names its files by a fixed convention,
// so a filename alone carries the recording date, time, lens, clip and
// file numbers. Each vendor has its own grammar; the registry picks one
// by the user-selected vendor label and falls back to generic date
// extraction for labels it does not know.
package parser

import "strings"

// Result is the structured outcome of matching a filename against a
// vendor grammar. All fields are optional: a grammar either fills every
// field its pattern defines or produces no Result at all.
type Result struct {
	Date       string // YYYY-MM-DD
	Time       string // HH:MM:SS
	Lens       string
	ClipNumber int
	Chapter    int
	FileNumber int
	Prefix     string
}

// Lens labels decoded from the Insta360 two-digit lens code.
const (
	LensRear    = "Traseira"
	LensFront   = "Frontal"
	LensUnknown = "Desconhecida"
)

// Grammar matches one vendor's filename convention. It returns nil when
// the filename does not fit; it never fails.
type Grammar func(filename string) *Result

type vendorGrammar struct {
	prefix  string
	grammar Grammar
}

// registry maps vendor label prefixes to grammars. The first prefix
// matching the label wins; matching is case-sensitive.
var registry = []vendorGrammar{
	{"Insta360", parseInsta360},
	{"Canon", parseCanon},
	{"GoPro", parseGoPro},
	{"DJI", parseDJI},
	{"Sony", parseSony},
}

// Parse extracts recording metadata from filename according to the
// grammar of the selected camera vendor. Vendor labels are matched by
// prefix ("Insta360 X5" selects the Insta360 grammar); unrecognized
// labels route to generic date extraction. A nil result means the
// filename does not fit the grammar, which is an expected outcome, not
// an error.
func Parse(filename, vendorLabel string) *Result {
	for _, v := range registry {
		if strings.HasPrefix(vendorLabel, v.prefix) {
			return v.grammar(filename)
		}
	}
	return parseGenericDate(filename)
}
