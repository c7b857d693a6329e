package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/a3tai/mcp-legal-analyzer/internal/models"
)

func TestAnalyzeLexiconFallback(t *testing.T) {
	analyzer := NewSentimentAnalyzer(nil)
	ctx := context.Background()

	tests := []struct {
		name      string
		text      string
		sentiment string
	}{
		{
			name:      "clearly positive",
			text:      "A good and excellent outcome for everyone.",
			sentiment: "positive",
		},
		{
			name:      "clearly negative",
			text:      "A bad and harmful arrangement.",
			sentiment: "negative",
		},
		{
			name:      "balanced text is neutral",
			text:      "A good clause next to a bad clause.",
			sentiment: "neutral",
		},
		{
			name:      "no lexicon words is neutral",
			text:      "The parties signed the document.",
			sentiment: "neutral",
		},
		{
			name:      "positive outweighing negative",
			text:      "Mostly good, even great, despite one bad term.",
			sentiment: "positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzer.Analyze(ctx, tt.text)
			if result.Sentiment != tt.sentiment {
				t.Errorf("Sentiment = %q, want %q", result.Sentiment, tt.sentiment)
			}
			if result.Label != "" {
				t.Errorf("Lexicon results must not carry a model label, got %q", result.Label)
			}
		})
	}
}

func TestAnalyzeLexiconScores(t *testing.T) {
	analyzer := NewSentimentAnalyzer(nil)

	result := analyzer.Analyze(context.Background(), "good and excellent")
	if result.Score != 1.0 {
		t.Errorf("Expected score 1.0 for purely positive text, got %v", result.Score)
	}

	result = analyzer.Analyze(context.Background(), "bad and harmful")
	if result.Score != 0.0 {
		t.Errorf("Expected score 0.0 for purely negative text, got %v", result.Score)
	}
}

func TestAnalyzeUsesModel(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		label     string
		sentiment string
	}{
		{"1 star", "negative"},
		{"2 stars", "negative"},
		{"3 stars", "neutral"},
		{"4 stars", "positive"},
		{"5 stars", "positive"},
	}

	for _, tt := range tests {
		analyzer := NewSentimentAnalyzer(&fakeSentiment{
			prediction: models.Prediction{Label: tt.label, Score: 0.8},
		})

		result := analyzer.Analyze(ctx, "some text")
		if result.Sentiment != tt.sentiment {
			t.Errorf("Label %q: sentiment = %q, want %q", tt.label, result.Sentiment, tt.sentiment)
		}
		if result.Label != tt.label {
			t.Errorf("Label %q not carried through, got %q", tt.label, result.Label)
		}
		if result.Score != 0.8 {
			t.Errorf("Expected model score 0.8, got %v", result.Score)
		}
	}
}

func TestAnalyzeModelFailureFallsBack(t *testing.T) {
	analyzer := NewSentimentAnalyzer(&fakeSentiment{err: errors.New("model offline")})

	result := analyzer.Analyze(context.Background(), "A good and excellent outcome.")
	if result.Sentiment != "positive" {
		t.Errorf("Expected lexicon fallback after model failure, got %q", result.Sentiment)
	}
	if result.Label != "" {
		t.Errorf("Fallback result must not carry a model label, got %q", result.Label)
	}
}
