package store

import (
	"context"
	"fmt"
)

// IsKnownWord reports whether word equals some canonical headword or has a
// recorded mapping. Read-only.
func (s *Store) IsKnownWord(ctx context.Context, word string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM canonical_words WHERE word = ? OR canonical = ? LIMIT 1`,
		word, word).Scan(&one)
	if err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, fmt.Errorf("check known word %s: %w", word, err)
	}
	return true, nil
}

// Canonicalize returns the canonical form of word, or word itself when no
// mapping exists. Unknown words are a displayable state, not an error.
// Resolution is single-hop: mappings are not chained.
func (s *Store) Canonicalize(ctx context.Context, word string) (string, error) {
	var canonical string
	err := s.db.QueryRowContext(ctx,
		`SELECT canonical FROM canonical_words WHERE word = ?`, word).Scan(&canonical)
	if err != nil {
		if isNoRows(err) {
			return word, nil
		}
		return "", fmt.Errorf("canonicalize %s: %w", word, err)
	}
	return canonical, nil
}

// AddCanonical records word -> canonical, overwriting any prior mapping for
// the same word. Last write wins; repeating a mapping is a no-op in effect.
func (s *Store) AddCanonical(ctx context.Context, word, canonical string) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO canonical_words (word, canonical) VALUES (?, ?)`,
		word, canonical); err != nil {
		return fmt.Errorf("add canonical %s -> %s: %w", word, canonical, err)
	}
	return nil
}
