package analysis

import (
	"regexp"
	"unicode/utf8"
)

// arabicRuns matches contiguous runs of characters in the Arabic, Arabic
// Supplement and Arabic Extended-A blocks.
var arabicRuns = regexp.MustCompile(`[\x{0600}-\x{06FF}\x{0750}-\x{077F}\x{08A0}-\x{08FF}]+`)

// DetectLanguage routes a document to "ar" or "en". If the combined rune
// length of Arabic script runs exceeds 10% of the text's rune length the
// document is treated as Arabic; everything else, including empty text,
// is English.
func DetectLanguage(text string) string {
	if text == "" {
		return "en"
	}

	arabic := 0
	for _, run := range arabicRuns.FindAllString(text, -1) {
		arabic += utf8.RuneCountInString(run)
	}

	if float64(arabic) > float64(utf8.RuneCountInString(text))*0.1 {
		return "ar"
	}
	return "en"
}
