package importer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Pre-compiled regular expressions for text normalization.
var (
	// Leading numbering such as "13.- " or "2) " in front of a name.
	leadingNumberingRe = regexp.MustCompile(`^\d+[\d\s.,;:\-–—)]*`)
	whitespaceRe       = regexp.MustCompile(`\s+`)
)

// Strips combining marks after NFD decomposition, so "É" and "E" compare equal.
var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func stripDiacritics(s string) string {
	out, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		return s
	}
	return out
}

// Normalize produces the comparison key for free text: trimmed, upper-cased,
// diacritics removed. Empty input yields the empty string.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return stripDiacritics(strings.ToUpper(s))
}

// eñe survives diacritic stripping via a private-use sentinel; every other
// combining mark is dropped.
const enieSentinel = ""

// Clean produces the storage form of free text: upper-cased, the mis-decoded
// replacement character repaired into "Ñ", diacritics stripped (Ñ preserved),
// whitespace collapsed. With stripLeadingNumbering a leading run of digits,
// spaces and punctuation is removed ("13.- HUGO" -> "HUGO"); pass false for
// fields where a leading numeral is data, e.g. a schedule starting with a time.
func Clean(s string, stripLeadingNumbering bool) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	s = strings.ToUpper(s)
	// U+FFFD shows up where a Latin-1 "Ñ" was decoded as UTF-8.
	s = strings.ReplaceAll(s, "�", "Ñ")
	s = strings.ReplaceAll(s, "Ñ", enieSentinel)
	s = stripDiacritics(s)
	s = strings.ReplaceAll(s, enieSentinel, "Ñ")

	s = whitespaceRe.ReplaceAllString(s, " ")
	if stripLeadingNumbering {
		s = leadingNumberingRe.ReplaceAllString(s, "")
	}
	return strings.TrimSpace(s)
}
