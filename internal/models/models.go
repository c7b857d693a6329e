// Package models defines the optional statistical-model collaborators the
// analysis core can consume. Every collaborator is optional: a nil interface
// value means the capability was never configured, and the core falls back
// to its deterministic rule-based behavior.
package models

import "context"

// Prediction is a labeled score returned by classification-style models.
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// TaggedToken is one token of a begin/continue tagged entity sequence.
// Tag is "B-" or "I-" followed by the model's category (PER, ORG, LOC, ...).
type TaggedToken struct {
	Tag   string `json:"tag"`
	Token string `json:"token"`
}

// EntitySet is the categorized entity output of an extractor, before merging.
type EntitySet struct {
	People         []string `json:"people"`
	Organizations  []string `json:"organizations"`
	Locations      []string `json:"locations"`
	Dates          []string `json:"dates"`
	MonetaryValues []string `json:"monetary_values"`
}

// Answer is a span-anchored question-answering result.
type Answer struct {
	Text       string  `json:"answer"`
	Confidence float64 `json:"confidence"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
}

// DocumentClassifier predicts a document-type label with a confidence score.
type DocumentClassifier interface {
	ClassifyDocument(ctx context.Context, text string) (Prediction, error)
}

// EntityTagger produces an ordered begin/continue tagged token sequence.
type EntityTagger interface {
	TagEntities(ctx context.Context, text string) ([]TaggedToken, error)
}

// LinguisticExtractor extracts categorized entities using a per-language
// linguistic model. SupportsLanguage gates availability per language tag.
type LinguisticExtractor interface {
	SupportsLanguage(language string) bool
	ExtractEntities(ctx context.Context, text, language string) (*EntitySet, error)
}

// Summarizer generates an abstractive summary bounded by maxLength.
type Summarizer interface {
	Summarize(ctx context.Context, text string, maxLength int) (string, error)
}

// QuestionAnswerer answers a question against a document context.
type QuestionAnswerer interface {
	AnswerQuestion(ctx context.Context, question, docContext string) (Answer, error)
}

// SentimentAnalyzer predicts a sentiment label (star-rating style) with a
// confidence score.
type SentimentAnalyzer interface {
	AnalyzeSentiment(ctx context.Context, text string) (Prediction, error)
}
