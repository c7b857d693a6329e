// Package analysis implements the rule-based legal document analysis core:
// clause segmentation and typing, risk scoring, metadata extraction,
// document-type classification, and entity merging. Every operation is a
// pure function over its inputs and the immutable pattern catalog; optional
// statistical models only refine results and are never required.
package analysis

import "github.com/a3tai/mcp-legal-analyzer/internal/catalog"

// RiskLevel is the coarse severity bucket assigned to clause text.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

// Clause is a contiguous run of sentences classified under one contract
// section category. Clauses are immutable once emitted and ordered by the
// document position of their first sentence.
type Clause struct {
	Type      catalog.ClauseType `json:"type"`
	Text      string             `json:"text"`
	RiskLevel RiskLevel          `json:"risk_level"`
}

// KeyDates groups the contract lifecycle dates. Empty string means the date
// was not found.
type KeyDates struct {
	EffectiveDate   string `json:"effective_date"`
	TerminationDate string `json:"termination_date"`
}

// ContractMetadata is the structured field set pulled from raw contract
// text. Optional string fields render absence as the empty string at this
// boundary.
type ContractMetadata struct {
	ContractType    string   `json:"contract_type"`
	TypeConfidence  float64  `json:"type_confidence"`
	EffectiveDate   string   `json:"effective_date,omitempty"`
	TerminationDate string   `json:"termination_date,omitempty"`
	PaymentTerms    string   `json:"payment_terms,omitempty"`
	GoverningLaw    string   `json:"governing_law,omitempty"`
	Parties         []string `json:"parties,omitempty"`
}

// EntityBundle is the merged, deduplicated entity set for a document plus
// its language tag. Categories never contain exact-string duplicates.
type EntityBundle struct {
	People         []string `json:"people"`
	Organizations  []string `json:"organizations"`
	Locations      []string `json:"locations"`
	Dates          []string `json:"dates"`
	MonetaryValues []string `json:"monetary_values"`
	Language       string   `json:"language"`
}

// ContractAnalysis is the full analyze-contract response.
type ContractAnalysis struct {
	ContractType   string   `json:"contract_type"`
	TypeConfidence float64  `json:"type_confidence"`
	Parties        []string `json:"parties"`
	KeyDates       KeyDates `json:"key_dates"`
	PaymentTerms   string   `json:"payment_terms"`
	GoverningLaw   string   `json:"governing_law"`
	RiskScore      float64  `json:"risk_score"`
	Summary        string   `json:"summary"`
	Clauses        []Clause `json:"clauses"`
	Language       string   `json:"language"`
}

// DocumentClassification is the classify-document response.
type DocumentClassification struct {
	DocumentType string  `json:"document_type"`
	Confidence   float64 `json:"confidence"`
	Language     string  `json:"language"`
	Summary      string  `json:"summary"`
}

// SentimentResult is the analyze-sentiment response. Label is only set when
// a model produced the result.
type SentimentResult struct {
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
	Label     string  `json:"label,omitempty"`
}
