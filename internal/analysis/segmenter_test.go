package analysis

import (
	"testing"

	"github.com/a3tai/mcp-legal-analyzer/internal/catalog"
)

func newTestSegmenter(t *testing.T) *ClauseSegmenter {
	t.Helper()
	cat := catalog.MustNew()
	return NewClauseSegmenter(cat, NewRiskScorer(cat))
}

func TestSegmentEmptyText(t *testing.T) {
	segmenter := newTestSegmenter(t)

	if clauses := segmenter.Segment(""); len(clauses) != 0 {
		t.Errorf("Expected no clauses for empty text, got %d", len(clauses))
	}
}

func TestSegmentClauseFreeText(t *testing.T) {
	segmenter := newTestSegmenter(t)

	text := "The weather was fine that day. Nothing remarkable happened. Everyone went home early."
	if clauses := segmenter.Segment(text); len(clauses) != 0 {
		t.Errorf("Expected no clauses for narrative text, got %+v", clauses)
	}
}

func TestSegmentTrailingSentencesExtendClause(t *testing.T) {
	segmenter := newTestSegmenter(t)

	text := "Payment terms: net thirty days from receipt. Invoices are issued monthly. Late invoices accrue interest."
	clauses := segmenter.Segment(text)

	if len(clauses) != 1 {
		t.Fatalf("Expected 1 clause, got %d: %+v", len(clauses), clauses)
	}
	if clauses[0].Type != catalog.ClausePaymentTerms {
		t.Errorf("Expected payment_terms clause, got %q", clauses[0].Type)
	}

	want := "Payment terms: net thirty days from receipt. Invoices are issued monthly. Late invoices accrue interest."
	if clauses[0].Text != want {
		t.Errorf("Clause text = %q, want %q", clauses[0].Text, want)
	}
}

func TestSegmentNarrativePreambleDropped(t *testing.T) {
	segmenter := newTestSegmenter(t)

	text := "This document records a commercial relationship. Payment terms: net 30 days."
	clauses := segmenter.Segment(text)

	if len(clauses) != 1 {
		t.Fatalf("Expected 1 clause, got %d", len(clauses))
	}
	if clauses[0].Text != "Payment terms: net 30 days." {
		t.Errorf("Preamble leaked into clause text: %q", clauses[0].Text)
	}
}

func TestSegmentMultipleClausesInDocumentOrder(t *testing.T) {
	segmenter := newTestSegmenter(t)

	text := "Payment terms: net 30 days from invoice. All invoices are sent electronically. " +
		"Confidentiality obligations survive for five years. " +
		"Any dispute resolution proceedings take place in Riyadh."
	clauses := segmenter.Segment(text)

	if len(clauses) != 3 {
		t.Fatalf("Expected 3 clauses, got %d: %+v", len(clauses), clauses)
	}

	wantTypes := []catalog.ClauseType{
		catalog.ClausePaymentTerms,
		catalog.ClauseConfidentiality,
		catalog.ClauseDisputeResolution,
	}
	for i, want := range wantTypes {
		if clauses[i].Type != want {
			t.Errorf("Clause %d: expected type %q, got %q", i, want, clauses[i].Type)
		}
	}

	wantFirst := "Payment terms: net 30 days from invoice. All invoices are sent electronically."
	if clauses[0].Text != wantFirst {
		t.Errorf("First clause text = %q, want %q", clauses[0].Text, wantFirst)
	}
}

func TestSegmentAssignsRiskLevels(t *testing.T) {
	segmenter := newTestSegmenter(t)

	text := "Payment terms: payable at the sole discretion of the Provider. " +
		"Confidentiality terms apply to all materials."
	clauses := segmenter.Segment(text)

	if len(clauses) != 2 {
		t.Fatalf("Expected 2 clauses, got %d", len(clauses))
	}
	if clauses[0].RiskLevel != RiskHigh {
		t.Errorf("Expected high risk for sole-discretion clause, got %q", clauses[0].RiskLevel)
	}
	if clauses[1].RiskLevel != RiskLow {
		t.Errorf("Expected low risk for plain confidentiality clause, got %q", clauses[1].RiskLevel)
	}
}
