package feed

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// boilerplate footers appended by blog engines and feed generators
var boilerplate = []*regexp.Regexp{
	regexp.MustCompile(`(?is)the post\s.+?\sappeared first on\s.*$`),
	regexp.MustCompile(`(?is)continue reading.*$`),
	regexp.MustCompile(`(?is)read more\s*(»|›|→|\.\.\.|…)?\s*$`),
	regexp.MustCompile(`\[(…|\.\.\.)\]`),
}

var spaces = regexp.MustCompile(`\s+`)

// Cleaner turns feed and page HTML fragments into short plain text summaries
type Cleaner struct {
	policy *bluemonday.Policy
	maxLen int
}

// NewCleaner makes a cleaner truncating summaries to maxLen characters
func NewCleaner(maxLen int) *Cleaner {
	if maxLen <= 0 {
		maxLen = 300
	}
	return &Cleaner{policy: bluemonday.StrictPolicy(), maxLen: maxLen}
}

// Clean strips tags, removes boilerplate footers, collapses whitespace and truncates
func (c *Cleaner) Clean(fragment string) string {
	// block level tags become spaces, otherwise words from adjacent paragraphs stick together
	text := strings.NewReplacer("</p>", " </p>", "<br>", " ", "<br/>", " ", "<br />", " ", "</li>", " </li>").Replace(fragment)
	text = html.UnescapeString(c.policy.Sanitize(text))
	for _, re := range boilerplate {
		text = re.ReplaceAllString(text, "")
	}
	text = strings.TrimSpace(spaces.ReplaceAllString(text, " "))
	return Truncate(text, c.maxLen)
}

// Truncate cuts text to at most maxLen characters, preferring a sentence boundary in the second half
// of the allowed length and falling back to a word boundary with an ellipsis.
func Truncate(text string, maxLen int) string {
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}
	runes := []rune(text)
	cut := string(runes[:maxLen])

	minSentence := len(string(runes[:maxLen/2]))
	if idx := lastSentenceEnd(cut); idx >= minSentence {
		return strings.TrimSpace(cut[:idx+1])
	}
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ,;:-") + "..."
}

// lastSentenceEnd returns byte index of the last terminal punctuation followed by a space or end of text
func lastSentenceEnd(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case '.', '!', '?':
			if i == len(s)-1 || s[i+1] == ' ' {
				return i
			}
		}
	}
	return -1
}
