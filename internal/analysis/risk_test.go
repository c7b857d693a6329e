package analysis

import (
	"testing"

	"github.com/a3tai/mcp-legal-analyzer/internal/catalog"
)

func newTestScorer(t *testing.T) *RiskScorer {
	t.Helper()
	return NewRiskScorer(catalog.MustNew())
}

func TestAssessClause(t *testing.T) {
	scorer := newTestScorer(t)

	tests := []struct {
		name string
		text string
		want RiskLevel
	}{
		{
			name: "high phrase",
			text: "The Provider may terminate this agreement at its sole discretion.",
			want: RiskHigh,
		},
		{
			name: "high overrides any number of medium and low phrases",
			text: "The parties shall use best efforts and act in good faith, with mutual written consent, but liability is unlimited liability.",
			want: RiskHigh,
		},
		{
			name: "medium outnumbers low",
			text: "Each party shall use best efforts to cure any material breach.",
			want: RiskMedium,
		},
		{
			name: "medium tied with low stays low",
			text: "The parties shall act in good faith under this mutual arrangement.",
			want: RiskLow,
		},
		{
			name: "no trigger phrases",
			text: "This section describes the delivery schedule.",
			want: RiskLow,
		},
		{
			name: "matching is case-insensitive",
			text: "ALL RIGHTS GRANTED HEREIN ARE IRREVOCABLE.",
			want: RiskHigh,
		},
		{
			name: "repeated phrase counts once",
			text: "Good faith, good faith, good faith, with mutual written consent.",
			want: RiskLow, // 1 medium phrase vs 2 low phrases
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scorer.AssessClause(tt.text); got != tt.want {
				t.Errorf("AssessClause(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestContractRiskScore(t *testing.T) {
	scorer := newTestScorer(t)

	clauses := func(levels ...RiskLevel) []Clause {
		out := make([]Clause, len(levels))
		for i, l := range levels {
			out[i] = Clause{RiskLevel: l}
		}
		return out
	}

	tests := []struct {
		name    string
		clauses []Clause
		want    float64
	}{
		{"no clauses", nil, 0.0},
		{"single high clause", clauses(RiskHigh), 1.0},
		{"single low clause", clauses(RiskLow), 0.1},
		{
			"one high among nine low",
			clauses(RiskHigh, RiskLow, RiskLow, RiskLow, RiskLow, RiskLow, RiskLow, RiskLow, RiskLow, RiskLow),
			0.19,
		},
		{"two medium one low", clauses(RiskMedium, RiskMedium, RiskLow), 0.37},
		{"all medium", clauses(RiskMedium, RiskMedium), 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scorer.ContractRiskScore(tt.clauses); got != tt.want {
				t.Errorf("ContractRiskScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContractRiskScoreUnknownTierDefaultsLow(t *testing.T) {
	scorer := newTestScorer(t)

	score := scorer.ContractRiskScore([]Clause{{RiskLevel: RiskLevel("bogus")}})
	if score != 0.1 {
		t.Errorf("Expected unknown tier to weigh as low (0.1), got %v", score)
	}
}
