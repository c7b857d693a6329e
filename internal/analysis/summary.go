package analysis

import (
	"context"
	"log"
	"strings"

	"github.com/a3tai/mcp-legal-analyzer/internal/models"
)

// summarizerInputLimit caps the rune length of text handed to the optional
// summarization model.
const summarizerInputLimit = 1024

// fallbackSentences is how many leading sentences the extractive fallback
// keeps.
const fallbackSentences = 3

// Summarizer produces a document summary, using the optional abstractive
// model when configured and falling back to the first sentences otherwise.
type Summarizer struct {
	model models.Summarizer
}

// NewSummarizer creates a summarizer. model may be nil.
func NewSummarizer(model models.Summarizer) *Summarizer {
	return &Summarizer{model: model}
}

// Summarize returns a summary of at most maxLength words from the model, or
// the extractive fallback when the model is absent or fails.
func (s *Summarizer) Summarize(ctx context.Context, text string, maxLength int) string {
	if s.model == nil {
		return extractiveSummary(text)
	}

	summary, err := s.model.Summarize(ctx, truncateRunes(text, summarizerInputLimit), maxLength)
	if err != nil {
		log.Printf("summarization model failed: %v", err)
		return extractiveSummary(text)
	}
	return summary
}

// extractiveSummary joins the first sentences of the text.
func extractiveSummary(text string) string {
	sentences := SplitSentences(text)
	if len(sentences) > fallbackSentences {
		sentences = sentences[:fallbackSentences]
	}
	return strings.Join(sentences, " ")
}

// truncateRunes cuts text to at most limit runes.
func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
