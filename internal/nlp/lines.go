package nlp

import (
	"regexp"
	"strings"
)

// bulletGlyphs are leading markers stripped from achievement lines.
var bulletGlyphs = "-*•◦▪–—·"

// sentenceSplit breaks on terminal punctuation followed by whitespace.
var sentenceSplit = regexp.MustCompile(`[.!?]\s+`)

// SplitAchievementLines splits free text into achievement lines: newline
// separated entries first, then sentence boundaries within each entry.
// Bullet glyphs and surrounding whitespace are stripped; empty lines are
// dropped.
func SplitAchievementLines(text string) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		stripped := StripBullet(raw)
		if stripped == "" {
			continue
		}
		for _, sentence := range sentenceSplit.Split(stripped, -1) {
			sentence = strings.TrimSpace(strings.TrimRight(sentence, ".!?"))
			if sentence != "" {
				lines = append(lines, sentence)
			}
		}
	}
	return lines
}

// StripBullet removes a leading bullet glyph and surrounding whitespace.
func StripBullet(line string) string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimLeft(trimmed, bulletGlyphs)
	return strings.TrimSpace(trimmed)
}
