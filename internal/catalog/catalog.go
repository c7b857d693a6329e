// Package catalog holds the static pattern tables the analysis core runs on:
// clause patterns, date and monetary formats, risk-term tiers, and
// document-type keyword lists. The catalog is built once at startup,
// validated, and read-only afterwards.
package catalog

import (
	"fmt"
	"regexp"
)

// ClauseType identifies a contract-section category.
type ClauseType string

const (
	ClauseEffectiveDate         ClauseType = "effective_date"
	ClauseTerminationDate       ClauseType = "termination_date"
	ClausePaymentTerms          ClauseType = "payment_terms"
	ClauseGoverningLaw          ClauseType = "governing_law"
	ClauseParties               ClauseType = "parties"
	ClauseConfidentiality       ClauseType = "confidentiality"
	ClauseIndemnification       ClauseType = "indemnification"
	ClauseLimitationOfLiability ClauseType = "limitation_of_liability"
	ClauseForceMajeure          ClauseType = "force_majeure"
	ClauseDisputeResolution     ClauseType = "dispute_resolution"
)

// ClausePattern pairs a clause type with its compiled pattern. Every pattern
// carries exactly one capturing group: the clause payload used by metadata
// extraction. Matching order over the table is part of the contract: the
// first pattern that fires on a sentence claims it.
type ClausePattern struct {
	Type    ClauseType
	Pattern *regexp.Regexp
}

// clauseDefs is the declarative pattern table. Declaration order is the
// canonical tie-break order for clause detection.
var clauseDefs = []struct {
	typ  ClauseType
	expr string
}{
	{ClauseEffectiveDate, `(?i)effective\s+(?:as\s+of\s+)?(?:the\s+)?(?:date\s+(?:of|on|hereof)|date)?\s*:?\s*([A-Za-z]+\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}|\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4})`},
	{ClauseTerminationDate, `(?i)(?:terminat(?:ion|e)|expir(?:ation|e)|end)\s+(?:date|on)\s*:?\s*([A-Za-z]+\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}|\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4})`},
	{ClausePaymentTerms, `(?i)(?:payment\s+terms|terms\s+of\s+payment)\s*:?\s*([^.;]+)`},
	{ClauseGoverningLaw, `(?i)(?:governing\s+law|law\s+govern(?:s|ing))\s*:?\s*([^.;]+)`},
	{ClauseParties, `(?i)(?:between|among|party)\s+([A-Z][A-Za-z\s,]+(?:LLC|Inc\.|Corporation|Corp\.|Ltd\.|Limited|Co\.|Company))`},
	{ClauseConfidentiality, `(?i)(?:confidential(?:ity)?|non-disclosure)\s+([^.;]+)`},
	{ClauseIndemnification, `(?i)(?:indemnif(?:y|ication)|hold\s+harmless)\s+([^.;]+)`},
	{ClauseLimitationOfLiability, `(?i)(?:limit(?:ation|ing)?\s+(?:of|on)\s+liability)\s+([^.;]+)`},
	{ClauseForceMajeure, `(?i)(?:force\s+majeure|act(?:s)?\s+of\s+god)\s+([^.;]+)`},
	{ClauseDisputeResolution, `(?i)(?:dispute\s+resolution|arbitration|mediation)\s+([^.;]+)`},
}

// dateExprs lists the recognized date formats. Extraction walks them in
// order: numeric day/month/year variants, "Month DD, YYYY", "DD Month YYYY".
var dateExprs = []string{
	`\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4}`,
	`(?i)(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}`,
	`(?i)\d{1,2}(?:st|nd|rd|th)?\s+(?:of\s+)?(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?,?\s+\d{4}`,
}

// moneyExprs lists the recognized monetary formats: currency symbol or code
// before the amount, then amount followed by a currency name.
var moneyExprs = []string{
	`(?i)(?:USD|US\$|\$|SAR|SR|€|EUR|£|GBP)\s*\d+(?:,\d{3})*(?:\.\d{2})?`,
	`(?i)\d+(?:,\d{3})*(?:\.\d{2})?\s*(?:dollars|USD|SAR|riyals|euros|EUR|pounds|GBP)`,
}

// RiskTerms holds the trigger phrases per risk tier. The tiers are disjoint;
// matching is case-insensitive substring presence.
type RiskTerms struct {
	High   []string
	Medium []string
	Low    []string
}

var defaultRiskTerms = RiskTerms{
	High: []string{
		"unlimited liability", "sole discretion", "unilateral", "without notice",
		"without cause", "without limitation", "without consent", "irrevocable",
		"perpetual", "unrestricted", "unconditional", "non-negotiable",
	},
	Medium: []string{
		"reasonable efforts", "commercially reasonable", "material breach",
		"substantial", "significant", "best efforts", "good faith",
	},
	Low: []string{
		"mutual", "reasonable notice", "written consent", "written notice",
		"limited liability", "reasonable time", "jointly",
	},
}

// DocumentTypeKeywords maps a document type to its indicator keywords.
// Declaration order doubles as the classification tie-break order.
type DocumentTypeKeywords struct {
	Type     string
	Keywords []string
}

var defaultDocumentTypes = []DocumentTypeKeywords{
	{"contract", []string{"agreement", "contract", "terms", "conditions", "covenant", "deed", "license"}},
	{"legal_opinion", []string{"opinion", "legal opinion", "advice", "counsel", "recommendation"}},
	{"court_filing", []string{"complaint", "motion", "petition", "pleading", "brief", "memorandum", "affidavit"}},
	{"corporate_document", []string{"bylaws", "articles", "incorporation", "resolution", "minutes", "certificate"}},
	{"regulatory_filing", []string{"filing", "report", "disclosure", "compliance", "regulatory", "statement"}},
}

// Catalog is the immutable pattern registry shared by all analysis requests.
type Catalog struct {
	clauses       []ClausePattern
	datePatterns  []*regexp.Regexp
	moneyPatterns []*regexp.Regexp
	riskTerms     RiskTerms
	documentTypes []DocumentTypeKeywords
}

// New builds and validates the default catalog. A pattern that fails to
// compile or does not carry exactly one capturing group is a defect in the
// tables above, reported here rather than at match time.
func New() (*Catalog, error) {
	c := &Catalog{
		riskTerms:     defaultRiskTerms,
		documentTypes: defaultDocumentTypes,
	}

	seen := make(map[ClauseType]bool, len(clauseDefs))
	for _, def := range clauseDefs {
		re, err := regexp.Compile(def.expr)
		if err != nil {
			return nil, fmt.Errorf("clause pattern %q: %w", def.typ, err)
		}
		if re.NumSubexp() != 1 {
			return nil, fmt.Errorf("clause pattern %q: expected 1 capture group, got %d", def.typ, re.NumSubexp())
		}
		if seen[def.typ] {
			return nil, fmt.Errorf("clause pattern %q: duplicate entry", def.typ)
		}
		seen[def.typ] = true
		c.clauses = append(c.clauses, ClausePattern{Type: def.typ, Pattern: re})
	}

	for _, expr := range dateExprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("date pattern %q: %w", expr, err)
		}
		c.datePatterns = append(c.datePatterns, re)
	}

	for _, expr := range moneyExprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("monetary pattern %q: %w", expr, err)
		}
		c.moneyPatterns = append(c.moneyPatterns, re)
	}

	return c, nil
}

// MustNew is New for initialization paths where a table defect should stop
// the process.
func MustNew() *Catalog {
	c, err := New()
	if err != nil {
		panic(err)
	}
	return c
}

// ClausePatterns returns the clause pattern table in declaration order.
func (c *Catalog) ClausePatterns() []ClausePattern {
	return c.clauses
}

// ClausePattern returns the pattern for a single clause type.
func (c *Catalog) ClausePattern(t ClauseType) (*regexp.Regexp, bool) {
	for _, cp := range c.clauses {
		if cp.Type == t {
			return cp.Pattern, true
		}
	}
	return nil, false
}

// MatchClauseType reports the first clause type whose pattern fires anywhere
// in the sentence, in declaration order.
func (c *Catalog) MatchClauseType(sentence string) (ClauseType, bool) {
	for _, cp := range c.clauses {
		if cp.Pattern.MatchString(sentence) {
			return cp.Type, true
		}
	}
	return "", false
}

// ExtractDates returns every date-format match in the text, walking the
// format table in order. Duplicates are kept; callers dedupe at merge time.
func (c *Catalog) ExtractDates(text string) []string {
	var dates []string
	for _, re := range c.datePatterns {
		dates = append(dates, re.FindAllString(text, -1)...)
	}
	return dates
}

// ExtractMonetaryValues returns every monetary-format match in the text.
func (c *Catalog) ExtractMonetaryValues(text string) []string {
	var values []string
	for _, re := range c.moneyPatterns {
		values = append(values, re.FindAllString(text, -1)...)
	}
	return values
}

// RiskTerms returns the risk tier trigger phrases.
func (c *Catalog) RiskTerms() RiskTerms {
	return c.riskTerms
}

// DocumentTypes returns the document-type keyword table in declaration order.
func (c *Catalog) DocumentTypes() []DocumentTypeKeywords {
	return c.documentTypes
}
