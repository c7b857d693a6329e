package analysis

import (
	"context"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/a3tai/mcp-legal-analyzer/internal/catalog"
	"github.com/a3tai/mcp-legal-analyzer/internal/models"
)

// classifierContextLimit is the rune limit of the optional document
// classifier; longer documents skip the model and keep the rule-based
// confidence.
const classifierContextLimit = 512

// blendThreshold is the minimum model score required before its confidence
// is blended into the rule-based one.
const blendThreshold = 0.7

// MetadataExtractor pulls structured fields from raw contract text and
// classifies the document type. The optional classifier only ever adjusts
// the type confidence, never the label.
type MetadataExtractor struct {
	catalog    *catalog.Catalog
	classifier models.DocumentClassifier
}

// NewMetadataExtractor creates an extractor. classifier may be nil.
func NewMetadataExtractor(cat *catalog.Catalog, classifier models.DocumentClassifier) *MetadataExtractor {
	return &MetadataExtractor{catalog: cat, classifier: classifier}
}

// ClassifyDocumentType scores each document type by keyword presence and
// returns the winner with its confidence. Ties keep the earlier-declared
// type; a document matching nothing is "unknown" with confidence 0.
func (e *MetadataExtractor) ClassifyDocumentType(ctx context.Context, text string) (string, float64) {
	lower := strings.ToLower(text)

	docType := "unknown"
	maxScore, total := 0, 0
	for _, entry := range e.catalog.DocumentTypes() {
		score := countPresent(lower, entry.Keywords)
		total += score
		if score > maxScore {
			maxScore = score
			docType = entry.Type
		}
	}

	confidence := 0.0
	if total > 0 {
		confidence = float64(maxScore) / float64(total)
	}

	if e.classifier != nil && utf8.RuneCountInString(text) < classifierContextLimit {
		pred, err := e.classifier.ClassifyDocument(ctx, text)
		switch {
		case err != nil:
			// Model failures never disturb the rule-based result.
			log.Printf("document classifier failed: %v", err)
		case pred.Score > blendThreshold:
			confidence = (confidence + pred.Score) / 2
		}
	}

	return docType, confidence
}

// Extract builds the contract metadata: document type plus the first match
// of each single-field clause pattern, and every distinct party named
// anywhere in the text.
func (e *MetadataExtractor) Extract(ctx context.Context, text string) ContractMetadata {
	docType, confidence := e.ClassifyDocumentType(ctx, text)

	meta := ContractMetadata{
		ContractType:    docType,
		TypeConfidence:  confidence,
		EffectiveDate:   e.firstMatch(catalog.ClauseEffectiveDate, text),
		TerminationDate: e.firstMatch(catalog.ClauseTerminationDate, text),
		PaymentTerms:    e.firstMatch(catalog.ClausePaymentTerms, text),
		GoverningLaw:    e.firstMatch(catalog.ClauseGoverningLaw, text),
	}

	if re, ok := e.catalog.ClausePattern(catalog.ClauseParties); ok {
		var parties []string
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			parties = append(parties, m[1])
		}
		meta.Parties = dedupeStrings(parties)
	}

	return meta
}

// firstMatch returns the trimmed capture of the first pattern match for the
// clause type, or "" when the pattern never fires.
func (e *MetadataExtractor) firstMatch(t catalog.ClauseType, text string) string {
	re, ok := e.catalog.ClausePattern(t)
	if !ok {
		return ""
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
