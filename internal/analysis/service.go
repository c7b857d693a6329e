package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/a3tai/mcp-legal-analyzer/internal/catalog"
	"github.com/a3tai/mcp-legal-analyzer/internal/models"
)

// ErrMissingText is returned when an operation receives empty input text.
// It is the only caller-visible input failure; malformed-but-present text
// simply yields empty results downstream.
var ErrMissingText = errors.New("missing document text")

// ErrMissingQuestion is returned when answer-question receives no question.
var ErrMissingQuestion = errors.New("missing question")

// ErrModelUnavailable is returned by operations that cannot degrade without
// their model, currently only question answering.
var ErrModelUnavailable = errors.New("model not available")

// qaContextLimit caps the rune length of the document context handed to the
// question-answering model.
const qaContextLimit = 512

const (
	cacheTTL     = 10 * time.Minute
	cacheCleanup = 30 * time.Minute
)

// Models bundles the optional statistical-model collaborators. Any field
// may be nil; the service degrades to rule-based behavior per capability.
type Models struct {
	Classifier models.DocumentClassifier
	Tagger     models.EntityTagger
	Linguistic models.LinguisticExtractor
	Summarizer models.Summarizer
	Answerer   models.QuestionAnswerer
	Sentiment  models.SentimentAnalyzer
}

// Service composes the analysis components into the document-level
// operations. It is stateless per call; the catalog is immutable and the
// result cache is safe for concurrent use, so one Service serves all
// requests.
type Service struct {
	models     Models
	segmenter  *ClauseSegmenter
	scorer     *RiskScorer
	extractor  *MetadataExtractor
	merger     *EntityMerger
	summarizer *Summarizer
	sentiment  *SentimentAnalyzer
	cache      *gocache.Cache
}

// NewService wires the analysis components over a validated catalog.
func NewService(cat *catalog.Catalog, m Models) *Service {
	scorer := NewRiskScorer(cat)
	return &Service{
		models:     m,
		segmenter:  NewClauseSegmenter(cat, scorer),
		scorer:     scorer,
		extractor:  NewMetadataExtractor(cat, m.Classifier),
		merger:     NewEntityMerger(cat, m.Linguistic, m.Tagger),
		summarizer: NewSummarizer(m.Summarizer),
		sentiment:  NewSentimentAnalyzer(m.Sentiment),
		cache:      gocache.New(cacheTTL, cacheCleanup),
	}
}

// AnalyzeContract runs the full contract pipeline: metadata extraction,
// clause segmentation with risk tagging, aggregate risk scoring, and a
// summary. language overrides detection when non-empty.
func (s *Service) AnalyzeContract(ctx context.Context, text, language string) (*ContractAnalysis, error) {
	if text == "" {
		return nil, ErrMissingText
	}
	if language == "" {
		language = DetectLanguage(text)
	}

	key := cacheKey("contract", language, text)
	if cached, found := s.cache.Get(key); found {
		return cached.(*ContractAnalysis), nil
	}

	meta := s.extractor.Extract(ctx, text)
	clauses := s.segmenter.Segment(text)

	analysis := &ContractAnalysis{
		ContractType:   meta.ContractType,
		TypeConfidence: meta.TypeConfidence,
		Parties:        emptyIfNil(meta.Parties),
		KeyDates: KeyDates{
			EffectiveDate:   meta.EffectiveDate,
			TerminationDate: meta.TerminationDate,
		},
		PaymentTerms: meta.PaymentTerms,
		GoverningLaw: meta.GoverningLaw,
		RiskScore:    s.scorer.ContractRiskScore(clauses),
		Summary:      s.summarizer.Summarize(ctx, text, defaultSummaryLength),
		Clauses:      clauses,
		Language:     language,
	}

	s.cache.Set(key, analysis, gocache.DefaultExpiration)
	return analysis, nil
}

// ExtractEntities merges entity extraction results into one bundle.
func (s *Service) ExtractEntities(ctx context.Context, text, language string) (*EntityBundle, error) {
	if text == "" {
		return nil, ErrMissingText
	}
	if language == "" {
		language = DetectLanguage(text)
	}

	bundle := s.merger.Extract(ctx, text, language)
	return &bundle, nil
}

// ClassifyDocument returns the document type with confidence, language and
// a summary. language overrides detection when non-empty.
func (s *Service) ClassifyDocument(ctx context.Context, text, language string) (*DocumentClassification, error) {
	if text == "" {
		return nil, ErrMissingText
	}
	if language == "" {
		language = DetectLanguage(text)
	}

	docType, confidence := s.extractor.ClassifyDocumentType(ctx, text)
	return &DocumentClassification{
		DocumentType: docType,
		Confidence:   confidence,
		Language:     language,
		Summary:      s.summarizer.Summarize(ctx, text, defaultSummaryLength),
	}, nil
}

// defaultSummaryLength bounds summaries when the caller gives no limit.
const defaultSummaryLength = 150

// Summarize produces a summary of at most maxLength words. maxLength <= 0
// uses the default.
func (s *Service) Summarize(ctx context.Context, text string, maxLength int) (string, error) {
	if text == "" {
		return "", ErrMissingText
	}
	if maxLength <= 0 {
		maxLength = defaultSummaryLength
	}
	return s.summarizer.Summarize(ctx, text, maxLength), nil
}

// AnswerQuestion answers a question against the document. Unlike the other
// operations there is no rule-based fallback, so a missing model surfaces
// ErrModelUnavailable.
func (s *Service) AnswerQuestion(ctx context.Context, text, question string) (*models.Answer, error) {
	if text == "" {
		return nil, ErrMissingText
	}
	if question == "" {
		return nil, ErrMissingQuestion
	}
	if s.models.Answerer == nil {
		return nil, fmt.Errorf("question answering: %w", ErrModelUnavailable)
	}

	answer, err := s.models.Answerer.AnswerQuestion(ctx, question, truncateRunes(text, qaContextLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to answer question: %w", err)
	}
	return &answer, nil
}

// AnalyzeSentiment scores the sentiment of the text.
func (s *Service) AnalyzeSentiment(ctx context.Context, text string) (*SentimentResult, error) {
	if text == "" {
		return nil, ErrMissingText
	}

	result := s.sentiment.Analyze(ctx, text)
	return &result, nil
}

// ModelAvailability reports which optional collaborators are configured,
// for server diagnostics.
func (s *Service) ModelAvailability() map[string]bool {
	return map[string]bool{
		"document_classifier":  s.models.Classifier != nil,
		"entity_tagger":        s.models.Tagger != nil,
		"linguistic_extractor": s.models.Linguistic != nil,
		"summarizer":           s.models.Summarizer != nil,
		"question_answerer":    s.models.Answerer != nil,
		"sentiment_analyzer":   s.models.Sentiment != nil,
	}
}

func cacheKey(op, language, text string) string {
	sum := sha256.Sum256([]byte(text))
	return op + ":" + language + ":" + hex.EncodeToString(sum[:])
}
