package analysis

import "strings"

// SplitSentences splits text into sentences on terminator punctuation
// followed by whitespace or end of input. The heuristic is tuned for legal
// prose: newlines are treated as spaces, and a terminator mid-token (as in
// "3.5" or "Inc.Ltd") does not end a sentence. Empty and whitespace-only
// fragments are dropped.
func SplitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for i, r := range text {
		current.WriteRune(r)

		if r == '.' || r == '!' || r == '?' {
			// Terminators are ASCII, so i+1 indexes the next character.
			if i+1 >= len(text) || text[i+1] == ' ' || text[i+1] == '\t' {
				flush()
			}
		}
	}
	flush()

	return sentences
}
