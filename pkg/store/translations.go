package store

import (
	"context"
	"fmt"

	"github.com/Magal-W/HebrewWeek/pkg/glossary"
)

// Translations returns the whole dictionary, ordered by English term.
func (s *Store) Translations(ctx context.Context) ([]glossary.Translation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, english, hebrew FROM translations ORDER BY english, hebrew`)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	defer rows.Close()

	all := []glossary.Translation{}
	for rows.Next() {
		var tr glossary.Translation
		if err := rows.Scan(&tr.ID, &tr.English, &tr.Hebrew); err != nil {
			return nil, fmt.Errorf("scan translation: %w", err)
		}
		all = append(all, tr)
	}
	return all, rows.Err()
}

// AddTranslation inserts an accepted pair and returns it with its new id.
func (s *Store) AddTranslation(ctx context.Context, english, hebrew string) (glossary.Translation, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO translations (english, hebrew) VALUES (?, ?)`, english, hebrew)
	if err != nil {
		return glossary.Translation{}, fmt.Errorf("add translation %q/%q: %w", english, hebrew, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return glossary.Translation{}, fmt.Errorf("translation id: %w", err)
	}
	return glossary.Translation{ID: id, English: english, Hebrew: hebrew}, nil
}

// Translate resolves word through the canonical mapping and returns every
// Hebrew rendering stored for the resulting headword. Unknown words yield
// an empty list.
func (s *Store) Translate(ctx context.Context, word string) ([]string, error) {
	canonical, err := s.Canonicalize(ctx, word)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT hebrew FROM translations WHERE english = ? ORDER BY hebrew`, canonical)
	if err != nil {
		return nil, fmt.Errorf("translate %s: %w", word, err)
	}
	defer rows.Close()

	hebrews := []string{}
	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			return nil, fmt.Errorf("scan translation of %s: %w", word, err)
		}
		hebrews = append(hebrews, h)
	}
	return hebrews, rows.Err()
}
