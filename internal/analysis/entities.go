package analysis

import (
	"context"
	"log"
	"strings"

	"github.com/a3tai/mcp-legal-analyzer/internal/catalog"
	"github.com/a3tai/mcp-legal-analyzer/internal/models"
)

// EntityMerger reconciles entity sets from up to two optional extractors,
// a per-language linguistic model and a statistical tagger, into one
// deduplicated bundle. With neither available it falls back to a
// regex-only bundle of dates and monetary values.
type EntityMerger struct {
	catalog    *catalog.Catalog
	linguistic models.LinguisticExtractor
	tagger     models.EntityTagger
}

// NewEntityMerger creates a merger. Both extractors may be nil.
func NewEntityMerger(cat *catalog.Catalog, linguistic models.LinguisticExtractor, tagger models.EntityTagger) *EntityMerger {
	return &EntityMerger{catalog: cat, linguistic: linguistic, tagger: tagger}
}

// Extract produces the merged entity bundle for the text. Extractor
// failures degrade silently to whatever the remaining sources yield; the
// language tag is always attached.
func (m *EntityMerger) Extract(ctx context.Context, text, language string) EntityBundle {
	linguistic := m.fromLinguistic(ctx, text, language)
	tagged := m.fromTagger(ctx, text)

	var merged models.EntitySet
	switch {
	case tagged != nil && linguistic != nil:
		// Tagger output composes first, so its regex-derived dates and
		// monetary values lead; dedup is exact-string either way.
		merged = models.EntitySet{
			People:         dedupeStrings(append(tagged.People, linguistic.People...)),
			Organizations:  dedupeStrings(append(tagged.Organizations, linguistic.Organizations...)),
			Locations:      dedupeStrings(append(tagged.Locations, linguistic.Locations...)),
			Dates:          dedupeStrings(append(tagged.Dates, linguistic.Dates...)),
			MonetaryValues: dedupeStrings(append(tagged.MonetaryValues, linguistic.MonetaryValues...)),
		}
	case tagged != nil:
		merged = *tagged
	case linguistic != nil:
		merged = *linguistic
	default:
		merged = models.EntitySet{
			Dates:          dedupeStrings(m.catalog.ExtractDates(text)),
			MonetaryValues: dedupeStrings(m.catalog.ExtractMonetaryValues(text)),
		}
	}

	return EntityBundle{
		People:         emptyIfNil(merged.People),
		Organizations:  emptyIfNil(merged.Organizations),
		Locations:      emptyIfNil(merged.Locations),
		Dates:          emptyIfNil(merged.Dates),
		MonetaryValues: emptyIfNil(merged.MonetaryValues),
		Language:       language,
	}
}

// fromLinguistic runs the per-language linguistic extractor, returning nil
// when the extractor is absent, does not cover the language, or fails.
func (m *EntityMerger) fromLinguistic(ctx context.Context, text, language string) *models.EntitySet {
	if m.linguistic == nil || !m.linguistic.SupportsLanguage(language) {
		return nil
	}

	set, err := m.linguistic.ExtractEntities(ctx, text, language)
	if err != nil {
		log.Printf("linguistic entity extraction failed: %v", err)
		return nil
	}
	if set == nil {
		return nil
	}

	return &models.EntitySet{
		People:         dedupeStrings(set.People),
		Organizations:  dedupeStrings(set.Organizations),
		Locations:      dedupeStrings(set.Locations),
		Dates:          dedupeStrings(set.Dates),
		MonetaryValues: dedupeStrings(set.MonetaryValues),
	}
}

// fromTagger runs the statistical tagger and rebuilds multi-token entities
// from its begin/continue tag stream. Dates and monetary values are never
// taken from the tagger; they are overlaid from the regex patterns.
func (m *EntityMerger) fromTagger(ctx context.Context, text string) *models.EntitySet {
	if m.tagger == nil {
		return nil
	}

	tokens, err := m.tagger.TagEntities(ctx, text)
	if err != nil {
		log.Printf("entity tagging failed: %v", err)
		return nil
	}

	set := models.EntitySet{}
	appendTo := func(category, entity string) {
		switch category {
		case "people":
			set.People = append(set.People, entity)
		case "organizations":
			set.Organizations = append(set.Organizations, entity)
		case "locations":
			set.Locations = append(set.Locations, entity)
		}
	}

	var span, spanCategory string
	for _, tok := range tokens {
		category := tagCategory(tok.Tag)
		if category == "" {
			continue
		}

		switch {
		case strings.HasPrefix(tok.Tag, "B-"):
			if span != "" && spanCategory != "" {
				appendTo(spanCategory, strings.TrimSpace(span))
			}
			span = tok.Token
			spanCategory = category
		case strings.HasPrefix(tok.Tag, "I-") && spanCategory == category:
			span += " " + tok.Token
		}
	}
	if span != "" && spanCategory != "" {
		appendTo(spanCategory, strings.TrimSpace(span))
	}

	set.People = dedupeStrings(set.People)
	set.Organizations = dedupeStrings(set.Organizations)
	set.Locations = dedupeStrings(set.Locations)
	set.Dates = dedupeStrings(m.catalog.ExtractDates(text))
	set.MonetaryValues = dedupeStrings(m.catalog.ExtractMonetaryValues(text))

	return &set
}

// tagCategory maps a B-/I- tag to its entity category, or "" for tags the
// merger does not track.
func tagCategory(tag string) string {
	suffix := strings.TrimPrefix(strings.TrimPrefix(tag, "B-"), "I-")
	switch {
	case strings.HasPrefix(suffix, "PER"):
		return "people"
	case strings.HasPrefix(suffix, "ORG"):
		return "organizations"
	case strings.HasPrefix(suffix, "LOC"):
		return "locations"
	default:
		return ""
	}
}

// dedupeStrings trims each entry and removes exact-string duplicates,
// keeping first-seen order.
func dedupeStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	var unique []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		unique = append(unique, v)
	}
	return unique
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
