package analysis

import (
	"context"
	"log"
	"strings"

	"github.com/a3tai/mcp-legal-analyzer/internal/models"
)

// sentimentInputLimit caps the rune length of text handed to the optional
// sentiment model.
const sentimentInputLimit = 512

var positiveWords = []string{
	"good", "great", "excellent", "positive", "beneficial", "favorable", "advantageous",
}

var negativeWords = []string{
	"bad", "poor", "negative", "unfavorable", "disadvantageous", "harmful", "detrimental",
}

// SentimentAnalyzer scores document sentiment, preferring the optional
// star-rating model and falling back to a small lexicon.
type SentimentAnalyzer struct {
	model models.SentimentAnalyzer
}

// NewSentimentAnalyzer creates an analyzer. model may be nil.
func NewSentimentAnalyzer(model models.SentimentAnalyzer) *SentimentAnalyzer {
	return &SentimentAnalyzer{model: model}
}

// Analyze returns the sentiment of the text. Model results carry the raw
// star label; lexicon results leave it empty.
func (a *SentimentAnalyzer) Analyze(ctx context.Context, text string) SentimentResult {
	if a.model != nil {
		pred, err := a.model.AnalyzeSentiment(ctx, truncateRunes(text, sentimentInputLimit))
		if err != nil {
			log.Printf("sentiment model failed: %v", err)
		} else {
			return SentimentResult{
				Sentiment: starSentiment(pred.Label),
				Score:     pred.Score,
				Label:     pred.Label,
			}
		}
	}
	return lexiconSentiment(text)
}

// starSentiment maps a 1-5 star label onto negative/neutral/positive.
func starSentiment(label string) string {
	switch {
	case strings.Contains(label, "1") || strings.Contains(label, "2"):
		return "negative"
	case strings.Contains(label, "3"):
		return "neutral"
	default:
		return "positive"
	}
}

// lexiconSentiment scores by presence of positive vs negative words. The
// score stays at 0.5 for a neutral balance and shifts toward 0 or 1 with
// the match imbalance.
func lexiconSentiment(text string) SentimentResult {
	lower := strings.ToLower(text)
	positive := countPresent(lower, positiveWords)
	negative := countPresent(lower, negativeWords)

	switch {
	case positive > negative:
		return SentimentResult{
			Sentiment: "positive",
			Score:     0.5 + float64(positive-negative)/float64(positive+negative)*0.5,
		}
	case negative > positive:
		return SentimentResult{
			Sentiment: "negative",
			Score:     0.5 - float64(negative-positive)/float64(negative+positive)*0.5,
		}
	default:
		return SentimentResult{Sentiment: "neutral", Score: 0.5}
	}
}
