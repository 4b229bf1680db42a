package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/clearclause/clearclause/internal/domain"
)

// The built-in glossary of legal terms with plain-language explanations.
var defaultGlossary = map[string]string{
	"agreement":       "A mutual understanding between parties about their responsibilities.",
	"party":           "A person or organization involved in a contract.",
	"termination":     "Ending the contract before it naturally expires.",
	"liability":       "Legal responsibility for something that happens.",
	"obligation":      "A duty or commitment that must be fulfilled.",
	"confidentiality": "Keeping sensitive information secret.",
	"employer":        "The company or person who provides work and pay.",
	"employee":        "The individual who performs work for the employer.",
}

// GlossaryService answers glossary lookups and marks glossary terms in
// contract text.
type GlossaryService struct {
	terms domain.GlossaryRepository
}

// NewGlossaryService creates a new GlossaryService.
func NewGlossaryService(terms domain.GlossaryRepository) *GlossaryService {
	return &GlossaryService{terms: terms}
}

// SeedDefaults upserts the built-in glossary. It is idempotent and safe to
// run on every startup.
func (s *GlossaryService) SeedDefaults(ctx context.Context) error {
	for term, definition := range defaultGlossary {
		entry := &domain.GlossaryTerm{Term: term, Definition: definition}
		if err := s.terms.Upsert(ctx, entry); err != nil {
			return fmt.Errorf("seed glossary term %q: %w", term, err)
		}
	}
	return nil
}

// Lookup returns the definition for a single term, matched case-insensitively.
func (s *GlossaryService) Lookup(ctx context.Context, term string) (*domain.GlossaryTerm, error) {
	return s.terms.GetByTerm(ctx, strings.TrimSpace(term))
}

// Search returns all terms containing the query substring, with an exact
// term match floated to the top. An empty query returns the full glossary.
func (s *GlossaryService) Search(ctx context.Context, query string) ([]domain.GlossaryTerm, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.terms.GetAll(ctx)
	}

	matches, err := s.terms.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	exact, err := s.Lookup(ctx, query)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return matches, nil
		}
		return nil, err
	}

	results := []domain.GlossaryTerm{*exact}
	for _, m := range matches {
		if m.ID != exact.ID {
			results = append(results, m)
		}
	}
	return results, nil
}

// All returns every glossary term, sorted alphabetically.
func (s *GlossaryService) All(ctx context.Context) ([]domain.GlossaryTerm, error) {
	return s.terms.GetAll(ctx)
}

// Segment is a run of text that either matches a glossary term or not.
// Returning segments instead of markup keeps escaping in the view layer.
type Segment struct {
	Text string
	Term bool
}

// Annotate splits text into segments, marking whole-word matches of any
// glossary term regardless of case.
func (s *GlossaryService) Annotate(ctx context.Context, text string) ([]Segment, error) {
	terms, err := s.terms.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load glossary: %w", err)
	}
	if len(terms) == 0 || text == "" {
		return []Segment{{Text: text}}, nil
	}

	words := make([]string, len(terms))
	for i, t := range terms {
		words[i] = regexp.QuoteMeta(t.Term)
	}
	re, err := regexp.Compile(`(?i)\b(` + strings.Join(words, "|") + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("compile glossary pattern: %w", err)
	}

	var segments []Segment
	last := 0
	for _, m := range re.FindAllStringIndex(text, -1) {
		if m[0] > last {
			segments = append(segments, Segment{Text: text[last:m[0]]})
		}
		segments = append(segments, Segment{Text: text[m[0]:m[1]], Term: true})
		last = m[1]
	}
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:]})
	}
	return segments, nil
}
