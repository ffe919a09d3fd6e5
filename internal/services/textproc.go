package services

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	exclamationRe = regexp.MustCompile(`！{2,}`)
	questionRe    = regexp.MustCompile(`？{2,}`)
	periodRe      = regexp.MustCompile(`。{2,}`)
)

// PreprocessText normalizes raw note text before it is stored or analyzed.
// Collapses whitespace, dedupes repeated Japanese punctuation and straightens
// curly quotes. Returns the empty string for empty input.
func PreprocessText(text string) string {
	if text == "" {
		return ""
	}

	processed := whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")

	processed = exclamationRe.ReplaceAllString(processed, "！")
	processed = questionRe.ReplaceAllString(processed, "？")
	processed = periodRe.ReplaceAllString(processed, "。")

	replacer := strings.NewReplacer(
		"“", `"`,
		"”", `"`,
		"‘", "'",
		"’", "'",
	)

	return replacer.Replace(processed)
}

// CleanExtractedText tidies text pulled out of a PDF: trims every line and
// drops the blank ones, which PDF extraction produces in bulk.
func CleanExtractedText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
