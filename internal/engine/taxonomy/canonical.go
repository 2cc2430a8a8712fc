package taxonomy

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Suffix rules, checked in order. The first matching suffix wins.
var suffixRules = []struct {
	suffixes []string
	tag      string
}{
	{suffixes: []string{" Combat Specialist", " Crafting Specialist", " Tailoring Specialist"}, tag: "_SPECIALIST"},
	{suffixes: []string{" Fighter"}, tag: "_FIGHTER"},
	{suffixes: []string{" Crafter"}, tag: "_CRAFTER"},
}

var (
	// Quotes are dropped; ß has no single-rune upper case.
	foldReplacer = strings.NewReplacer(
		"ß", "SS",
		"ẞ", "SS",
		"'", "",
		"’", "",
		"‘", "",
		"`", "",
		"´", "",
		"\"", "",
		"“", "",
		"”", "",
	)
	nonAlnum = regexp.MustCompile(`[^A-Z0-9]+`)
)

// CanonicalID maps a specialization name to its table id, e.g.
// "Fire Staff Combat Specialist" -> "FIRE_STAFF_SPECIALIST".
func CanonicalID(name string) string {
	for _, rule := range suffixRules {
		for _, suffix := range rule.suffixes {
			if strings.HasSuffix(name, suffix) {
				return canonicalize(strings.TrimSuffix(name, suffix)) + rule.tag
			}
		}
	}
	return canonicalize(name)
}

func canonicalize(name string) string {
	s := foldReplacer.Replace(name)
	s = stripDiacritics(s)
	s = strings.ToUpper(s)
	s = nonAlnum.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
