package analysis

import "github.com/a3tai/mcp-legal-analyzer/internal/catalog"

// ClauseSegmenter groups consecutive sentences into typed clauses. A
// sentence that fires a clause pattern opens a new clause; following
// sentences that fire nothing extend it; narrative sentences before the
// first trigger belong to no clause and are dropped.
type ClauseSegmenter struct {
	catalog *catalog.Catalog
	scorer  *RiskScorer
}

// NewClauseSegmenter creates a segmenter over the catalog's clause patterns.
func NewClauseSegmenter(cat *catalog.Catalog, scorer *RiskScorer) *ClauseSegmenter {
	return &ClauseSegmenter{catalog: cat, scorer: scorer}
}

// Segment splits the document into sentences and returns the typed clauses
// in document order. When several clause patterns fire on one sentence the
// first-declared type claims it; a consumed sentence is never re-evaluated.
// Clause-free text yields no clauses.
func (s *ClauseSegmenter) Segment(text string) []Clause {
	var clauses []Clause
	var current string
	var currentType catalog.ClauseType

	flush := func() {
		if current == "" || currentType == "" {
			return
		}
		clauses = append(clauses, Clause{
			Type:      currentType,
			Text:      current,
			RiskLevel: s.scorer.AssessClause(current),
		})
	}

	for _, sentence := range SplitSentences(text) {
		if t, ok := s.catalog.MatchClauseType(sentence); ok {
			flush()
			current = sentence
			currentType = t
			continue
		}
		if currentType != "" {
			current += " " + sentence
		}
	}
	flush()

	return clauses
}
