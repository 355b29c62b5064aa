package textproc

import (
	"regexp"
	"strings"
)

// fixQuotes undoes the space the transducer inserts after an opening
// quote immediately before a hyphenated suffix, e.g. "' top'-vorm" ->
// "'top'-vorm".
var fixQuotes = regexp.MustCompile("([`'\"]) ([A-Za-z]+[`'\"]-)")

// fixParens undoes the space the transducer inserts after an opening
// parenthesis, e.g. "( buiten)gewoon" -> "(buiten)gewoon".
var fixParens = regexp.MustCompile(`\( ([A-Za-z]+\))`)

// enumerationMarker reverses Preprocess's "#" substitution once the
// transducer has safely passed the enumeration through.
var enumerationMarker = regexp.MustCompile(`([0-9]+)#(\s)`)

// datelineOpening matches a newswire dateline prefix ("AMSTERDAM - ...")
// at the start of the text or right after a sentence boundary, so it can
// be promoted onto its own line.
var datelineOpening = regexp.MustCompile(`(^|\n)([A-Z]{2}[A-Z() /,0-9.\-]* -+) `)

// dashParenthetical finds " -...- " spans that look like a dash-bracketed
// parenthetical rather than a coordinated compound.
var dashParenthetical = regexp.MustCompile(` -([^ ][^-]*[^ ])- `)

// Postprocess applies, in order: quote spacing, paren spacing,
// enumeration-marker removal, dateline promotion, and dash-parenthetical
// splitting. On a string with none of the triggering patterns,
// Postprocess is the identity.
func Postprocess(text string) string {
	text = fixQuotes.ReplaceAllString(text, "$1$2")
	text = fixParens.ReplaceAllString(text, "($1")
	text = enumerationMarker.ReplaceAllString(text, "$1.$2")
	text = datelineOpening.ReplaceAllString(text, "$1$2\n")
	text = fixDashes(text)
	return text
}

// fixDashes splits dash-bracketed parentheticals ("ik ga -zoals gezegd-
// naar huis") while preserving Dutch coordinated compounds ("huis- tuin-
// en keuken"): a candidate match is left untouched when the two
// characters immediately before or after it are "en" or "of".
func fixDashes(text string) string {
	matches := dashParenthetical.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}

	var out []byte
	last := 0
	for _, m := range matches {
		matchStart, matchEnd := m[0], m[1]
		innerStart, innerEnd := m[2], m[3]

		left := text[:matchStart]
		right := text[matchEnd:]

		if strings.HasSuffix(left, "en") || strings.HasSuffix(left, "of") ||
			strings.HasPrefix(right, "en") || strings.HasPrefix(right, "of") {
			out = append(out, text[last:matchEnd]...)
		} else {
			out = append(out, text[last:matchStart]...)
			out = append(out, " - "...)
			out = append(out, text[innerStart:innerEnd]...)
			out = append(out, " - "...)
		}
		last = matchEnd
	}
	out = append(out, text[last:]...)

	return string(out)
}
