package markdown

import (
	"regexp"
	"strings"
)

const DefaultExcerptLength = 160

var (
	fencedCodeRe = regexp.MustCompile("(?s)```.*?```")
	headingRe    = regexp.MustCompile(`#{1,6}\s`)
	boldRe       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe     = regexp.MustCompile(`\*(.+?)\*`)
	linkRe       = regexp.MustCompile(`\[(.+?)\]\(.+?\)`)
	inlineCodeRe = regexp.MustCompile("`(.+?)`")
	blockquoteRe = regexp.MustCompile(`>\s`)
	listMarkerRe = regexp.MustCompile(`[-*+]\s`)
	newlinesRe   = regexp.MustCompile(`\n+`)
)

// Excerpt strips Markdown syntax from content and truncates the result
// at a word boundary. Fenced code blocks are dropped entirely, link text
// is kept without the URL. Already-plain text shorter than maxLength is
// returned unchanged.
func Excerpt(content string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultExcerptLength
	}

	plain := fencedCodeRe.ReplaceAllString(content, "")
	plain = headingRe.ReplaceAllString(plain, "")
	plain = boldRe.ReplaceAllString(plain, "$1")
	plain = italicRe.ReplaceAllString(plain, "$1")
	plain = linkRe.ReplaceAllString(plain, "$1")
	plain = inlineCodeRe.ReplaceAllString(plain, "$1")
	plain = blockquoteRe.ReplaceAllString(plain, "")
	plain = listMarkerRe.ReplaceAllString(plain, "")
	plain = newlinesRe.ReplaceAllString(plain, " ")
	plain = strings.TrimSpace(plain)

	return TruncateAtWord(plain, maxLength)
}

// TruncateAtWord cuts s to maxLength characters, trims back to the last
// whitespace boundary and appends "...". Strings within the bound are
// returned unchanged.
func TruncateAtWord(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	trimmed := string(runes[:maxLength])
	if lastSpace := strings.LastIndex(trimmed, " "); lastSpace > 0 {
		return trimmed[:lastSpace] + "..."
	}
	return trimmed + "..."
}
