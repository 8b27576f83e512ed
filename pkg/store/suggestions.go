package store

import (
	"context"
	"fmt"

	"github.com/Magal-W/HebrewWeek/pkg/glossary"
)

// SuggestTranslation stores a proposed pair and returns its assigned id.
// The id in the argument is ignored; ids are always server-assigned.
func (s *Store) SuggestTranslation(ctx context.Context, sug glossary.TranslationSuggestion) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO translation_suggestions (english, hebrew, suggestor) VALUES (?, ?, ?)`,
		sug.English, sug.Hebrew, sug.Suggestor)
	if err != nil {
		return 0, fmt.Errorf("suggest translation %q: %w", sug.English, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("translation suggestion id: %w", err)
	}
	return id, nil
}

// TranslationSuggestions returns all pending translation proposals.
func (s *Store) TranslationSuggestions(ctx context.Context) ([]glossary.TranslationSuggestion, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, english, hebrew, suggestor FROM translation_suggestions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list translation suggestions: %w", err)
	}
	defer rows.Close()

	all := []glossary.TranslationSuggestion{}
	for rows.Next() {
		var sug glossary.TranslationSuggestion
		if err := rows.Scan(&sug.ID, &sug.English, &sug.Hebrew, &sug.Suggestor); err != nil {
			return nil, fmt.Errorf("scan translation suggestion: %w", err)
		}
		all = append(all, sug)
	}
	return all, rows.Err()
}

// GetTranslationSuggestion loads one pending proposal by id.
func (s *Store) GetTranslationSuggestion(ctx context.Context, id int64) (glossary.TranslationSuggestion, error) {
	var sug glossary.TranslationSuggestion
	err := s.db.QueryRowContext(ctx,
		`SELECT id, english, hebrew, suggestor FROM translation_suggestions WHERE id = ?`,
		id).Scan(&sug.ID, &sug.English, &sug.Hebrew, &sug.Suggestor)
	if err != nil {
		if isNoRows(err) {
			return glossary.TranslationSuggestion{}, fmt.Errorf("translation suggestion %d: %w", id, ErrNotFound)
		}
		return glossary.TranslationSuggestion{}, fmt.Errorf("get translation suggestion %d: %w", id, err)
	}
	return sug, nil
}

// DeleteTranslationSuggestion removes a pending proposal. Deleting an id
// that is no longer pending returns ErrNotFound.
func (s *Store) DeleteTranslationSuggestion(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM translation_suggestions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete translation suggestion %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete translation suggestion %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("translation suggestion %d: %w", id, ErrNotFound)
	}
	return nil
}

// SuggestMistake stores a reported mistake and returns its assigned id.
func (s *Store) SuggestMistake(ctx context.Context, sug glossary.MistakeSuggestion) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO mistake_suggestions (name, mistake, context, reporter) VALUES (?, ?, ?, ?)`,
		sug.Name, sug.Mistake, sug.Context, sug.Reporter)
	if err != nil {
		return 0, fmt.Errorf("suggest mistake for %s: %w", sug.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("mistake suggestion id: %w", err)
	}
	return id, nil
}

// MistakeSuggestions returns all pending mistake reports.
func (s *Store) MistakeSuggestions(ctx context.Context) ([]glossary.MistakeSuggestion, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, mistake, context, reporter FROM mistake_suggestions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list mistake suggestions: %w", err)
	}
	defer rows.Close()

	all := []glossary.MistakeSuggestion{}
	for rows.Next() {
		var sug glossary.MistakeSuggestion
		if err := rows.Scan(&sug.ID, &sug.Name, &sug.Mistake, &sug.Context, &sug.Reporter); err != nil {
			return nil, fmt.Errorf("scan mistake suggestion: %w", err)
		}
		all = append(all, sug)
	}
	return all, rows.Err()
}

// GetMistakeSuggestion loads one pending report by id.
func (s *Store) GetMistakeSuggestion(ctx context.Context, id int64) (glossary.MistakeSuggestion, error) {
	var sug glossary.MistakeSuggestion
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, mistake, context, reporter FROM mistake_suggestions WHERE id = ?`,
		id).Scan(&sug.ID, &sug.Name, &sug.Mistake, &sug.Context, &sug.Reporter)
	if err != nil {
		if isNoRows(err) {
			return glossary.MistakeSuggestion{}, fmt.Errorf("mistake suggestion %d: %w", id, ErrNotFound)
		}
		return glossary.MistakeSuggestion{}, fmt.Errorf("get mistake suggestion %d: %w", id, err)
	}
	return sug, nil
}

// DeleteMistakeSuggestion removes a pending report. Deleting an id that is
// no longer pending returns ErrNotFound.
func (s *Store) DeleteMistakeSuggestion(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM mistake_suggestions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete mistake suggestion %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete mistake suggestion %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("mistake suggestion %d: %w", id, ErrNotFound)
	}
	return nil
}

// SuggestCanonical stores a proposed word-to-headword mapping and returns
// its assigned id.
func (s *Store) SuggestCanonical(ctx context.Context, sug glossary.CanonicalSuggestion) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO canonical_suggestions (word, canonical, suggestor) VALUES (?, ?, ?)`,
		sug.Word, sug.Canonical, sug.Suggestor)
	if err != nil {
		return 0, fmt.Errorf("suggest canonical %q: %w", sug.Word, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("canonical suggestion id: %w", err)
	}
	return id, nil
}

// CanonicalSuggestions returns all pending mapping proposals.
func (s *Store) CanonicalSuggestions(ctx context.Context) ([]glossary.CanonicalSuggestion, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, word, canonical, suggestor FROM canonical_suggestions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list canonical suggestions: %w", err)
	}
	defer rows.Close()

	all := []glossary.CanonicalSuggestion{}
	for rows.Next() {
		var sug glossary.CanonicalSuggestion
		if err := rows.Scan(&sug.ID, &sug.Word, &sug.Canonical, &sug.Suggestor); err != nil {
			return nil, fmt.Errorf("scan canonical suggestion: %w", err)
		}
		all = append(all, sug)
	}
	return all, rows.Err()
}

// GetCanonicalSuggestion loads one pending mapping proposal by id.
func (s *Store) GetCanonicalSuggestion(ctx context.Context, id int64) (glossary.CanonicalSuggestion, error) {
	var sug glossary.CanonicalSuggestion
	err := s.db.QueryRowContext(ctx,
		`SELECT id, word, canonical, suggestor FROM canonical_suggestions WHERE id = ?`,
		id).Scan(&sug.ID, &sug.Word, &sug.Canonical, &sug.Suggestor)
	if err != nil {
		if isNoRows(err) {
			return glossary.CanonicalSuggestion{}, fmt.Errorf("canonical suggestion %d: %w", id, ErrNotFound)
		}
		return glossary.CanonicalSuggestion{}, fmt.Errorf("get canonical suggestion %d: %w", id, err)
	}
	return sug, nil
}

// DeleteCanonicalSuggestion removes a pending mapping proposal. Deleting an
// id that is no longer pending returns ErrNotFound.
func (s *Store) DeleteCanonicalSuggestion(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM canonical_suggestions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete canonical suggestion %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete canonical suggestion %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("canonical suggestion %d: %w", id, ErrNotFound)
	}
	return nil
}
