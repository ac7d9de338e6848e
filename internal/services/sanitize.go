package services

import (
	"regexp"
	"strings"
)

var (
	dashRuns      = regexp.MustCompile(`--+`)
	markdownMarks = regexp.MustCompile("[*`#_>]+")
	spaceRuns     = regexp.MustCompile(`\s{2,}`)
	tipBoundary   = regexp.MustCompile(`\r|\n|\d+\.\s*`)
	sentenceBreak = regexp.MustCompile(`\.\s+[A-Z]`)
)

// cleanOracleText strips markdown decoration out of generated text: runs of
// hyphens collapse to one, emphasis/heading/quote markers are removed, and
// whitespace runs collapse to a single space.
func cleanOracleText(text string) string {
	text = strings.TrimSpace(text)
	text = dashRuns.ReplaceAllString(text, "-")
	text = markdownMarks.ReplaceAllString(text, "")
	text = spaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// splitTips breaks cleaned tip text into discrete points: on newlines, on
// numbered-list markers, and on sentence boundaries followed by a capitalized
// word. Fragments of length <= 2 after trimming are discarded.
func splitTips(text string) []string {
	tips := []string{}
	for _, fragment := range tipBoundary.Split(text, -1) {
		for _, tip := range splitSentences(fragment) {
			tip = strings.TrimSpace(tip)
			if len(tip) > 2 {
				tips = append(tips, tip)
			}
		}
	}
	return tips
}

// splitSentences cuts after a period when the next word starts with a
// capital, keeping the period with the preceding sentence.
func splitSentences(s string) []string {
	locs := sentenceBreak.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return []string{s}
	}

	var out []string
	start := 0
	for _, loc := range locs {
		out = append(out, s[start:loc[0]+1])
		start = loc[1] - 1 // the capital letter opens the next sentence
	}
	out = append(out, s[start:])
	return out
}
