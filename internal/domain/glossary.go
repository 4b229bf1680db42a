package domain

import "context"

// GlossaryTerm is a plain-language explanation of a legal term.
type GlossaryTerm struct {
	ID         int64
	Term       string
	Definition string
}

// GlossaryRepository defines persistence operations for glossary terms.
type GlossaryRepository interface {
	Upsert(ctx context.Context, term *GlossaryTerm) error
	GetByTerm(ctx context.Context, term string) (*GlossaryTerm, error)
	Search(ctx context.Context, query string) ([]GlossaryTerm, error)
	GetAll(ctx context.Context) ([]GlossaryTerm, error)
}
