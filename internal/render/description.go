package render

import (
	"regexp"
	"strings"
)

const maxDescriptionRunes = 160

var (
	reMarkup      = regexp.MustCompile("[#*_`\\[\\]]")
	reParenthesis = regexp.MustCompile(`\(.*?\)`)
	reSpace       = regexp.MustCompile(`\s+`)
)

// ExtractDescription builds a one-line excerpt from the first paragraph of a
// markdown body. Any parenthesized text is dropped, not only link targets.
func ExtractDescription(body string) string {
	para, _, _ := strings.Cut(body, "\n\n")

	s := reMarkup.ReplaceAllString(para, "")
	// collapse first: the spaces on both sides of a dropped "(...)" remain
	s = reSpace.ReplaceAllString(s, " ")
	s = reParenthesis.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	if r := []rune(s); len(r) > maxDescriptionRunes {
		s = string(r[:maxDescriptionRunes])
	}
	return s
}
