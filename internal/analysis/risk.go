package analysis

import (
	"math"
	"strings"

	"github.com/a3tai/mcp-legal-analyzer/internal/catalog"
)

// RiskScorer assigns risk tiers to clause text and aggregates a per-document
// risk score from clause tiers.
type RiskScorer struct {
	terms catalog.RiskTerms
}

// NewRiskScorer creates a scorer over the catalog's risk-term tiers.
func NewRiskScorer(cat *catalog.Catalog) *RiskScorer {
	return &RiskScorer{terms: cat.RiskTerms()}
}

// AssessClause returns the risk tier for a clause. Any high-risk phrase is
// an override regardless of other matches; otherwise medium wins only when
// its phrase count strictly exceeds the low count; low is the default,
// including when nothing matches at all.
func (r *RiskScorer) AssessClause(text string) RiskLevel {
	lower := strings.ToLower(text)

	if countPresent(lower, r.terms.High) > 0 {
		return RiskHigh
	}
	if countPresent(lower, r.terms.Medium) > countPresent(lower, r.terms.Low) {
		return RiskMedium
	}
	return RiskLow
}

// countPresent counts how many of the phrases occur in the lowercased text.
// Each phrase contributes at most once, however often it repeats.
func countPresent(lower string, phrases []string) int {
	count := 0
	for _, phrase := range phrases {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			count++
		}
	}
	return count
}

var riskWeights = map[RiskLevel]float64{
	RiskHigh:   1.0,
	RiskMedium: 0.5,
	RiskLow:    0.1,
}

// ContractRiskScore computes the mean clause severity: tier weights summed
// over all clauses, divided by the clause count, rounded to two decimals.
// An empty clause list scores 0.0.
func (r *RiskScorer) ContractRiskScore(clauses []Clause) float64 {
	if len(clauses) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, clause := range clauses {
		weight, ok := riskWeights[clause.RiskLevel]
		if !ok {
			weight = riskWeights[RiskLow]
		}
		sum += weight
	}

	return round2(sum / float64(len(clauses)))
}

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
