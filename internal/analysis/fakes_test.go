package analysis

import (
	"context"

	"github.com/a3tai/mcp-legal-analyzer/internal/models"
)

// Fake model collaborators shared across the package tests. Each fake
// returns canned values or errors and records whether it was called.

type fakeClassifier struct {
	prediction models.Prediction
	err        error
	called     bool
}

func (f *fakeClassifier) ClassifyDocument(_ context.Context, _ string) (models.Prediction, error) {
	f.called = true
	return f.prediction, f.err
}

type fakeTagger struct {
	tokens []models.TaggedToken
	err    error
}

func (f *fakeTagger) TagEntities(_ context.Context, _ string) ([]models.TaggedToken, error) {
	return f.tokens, f.err
}

type fakeLinguistic struct {
	languages map[string]bool
	set       *models.EntitySet
	err       error
}

func (f *fakeLinguistic) SupportsLanguage(language string) bool {
	return f.languages[language]
}

func (f *fakeLinguistic) ExtractEntities(_ context.Context, _, _ string) (*models.EntitySet, error) {
	return f.set, f.err
}

type fakeSummarizer struct {
	summary string
	err     error
}

func (f *fakeSummarizer) Summarize(_ context.Context, _ string, _ int) (string, error) {
	return f.summary, f.err
}

type fakeAnswerer struct {
	answer      models.Answer
	err         error
	lastContext string
}

func (f *fakeAnswerer) AnswerQuestion(_ context.Context, _, docContext string) (models.Answer, error) {
	f.lastContext = docContext
	return f.answer, f.err
}

type fakeSentiment struct {
	prediction models.Prediction
	err        error
}

func (f *fakeSentiment) AnalyzeSentiment(_ context.Context, _ string) (models.Prediction, error) {
	return f.prediction, f.err
}
