package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/clearclause/clearclause/internal/domain"
)

// GlossaryRepository implements domain.GlossaryRepository using SQLite.
type GlossaryRepository struct {
	db *sql.DB
}

// NewGlossaryRepository creates a new SQLite-backed GlossaryRepository.
func NewGlossaryRepository(db *DB) *GlossaryRepository {
	return &GlossaryRepository{db: db.SqlDB}
}

func (r *GlossaryRepository) Upsert(ctx context.Context, term *domain.GlossaryTerm) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO glossary_terms (term, definition) VALUES (?, ?)
		 ON CONFLICT(term) DO UPDATE SET definition = excluded.definition`,
		term.Term, term.Definition,
	)
	if err != nil {
		return fmt.Errorf("upsert glossary term: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil && id > 0 {
		term.ID = id
	}
	return nil
}

func (r *GlossaryRepository) GetByTerm(ctx context.Context, term string) (*domain.GlossaryTerm, error) {
	entry := &domain.GlossaryTerm{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, term, definition FROM glossary_terms WHERE term = lower(?)`, term,
	).Scan(&entry.ID, &entry.Term, &entry.Definition)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query glossary term: %w", err)
	}
	return entry, nil
}

func (r *GlossaryRepository) Search(ctx context.Context, query string) ([]domain.GlossaryTerm, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, term, definition FROM glossary_terms
		 WHERE term LIKE '%' || lower(?) || '%' ORDER BY term`, query,
	)
	if err != nil {
		return nil, fmt.Errorf("search glossary terms: %w", err)
	}
	defer rows.Close()
	return collectTerms(rows)
}

func (r *GlossaryRepository) GetAll(ctx context.Context) ([]domain.GlossaryTerm, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, term, definition FROM glossary_terms ORDER BY term`,
	)
	if err != nil {
		return nil, fmt.Errorf("list glossary terms: %w", err)
	}
	defer rows.Close()
	return collectTerms(rows)
}

func collectTerms(rows *sql.Rows) ([]domain.GlossaryTerm, error) {
	var terms []domain.GlossaryTerm
	for rows.Next() {
		var t domain.GlossaryTerm
		if err := rows.Scan(&t.ID, &t.Term, &t.Definition); err != nil {
			return nil, fmt.Errorf("scan glossary term: %w", err)
		}
		terms = append(terms, t)
	}
	return terms, rows.Err()
}
