package store

import (
	"context"
	"fmt"

	"github.com/Magal-W/HebrewWeek/pkg/glossary"
)

// RecordMistake appends one occurrence of a mistake to the ledger. The
// first occurrence creates a tally of 1; later ones increment it by exactly
// one. Returns the participant's updated tally for that mistake.
//
// The ledger deliberately does not check the participants table; referential
// integrity is the moderation engine's policy decision.
func (s *Store) RecordMistake(ctx context.Context, name, mistake string) (glossary.PersonMistake, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO mistakes (name, mistake, count) VALUES (?, ?, 1)
		 ON CONFLICT (name, mistake) DO UPDATE SET count = count + 1`,
		name, mistake)
	if err != nil {
		return glossary.PersonMistake{}, fmt.Errorf("record mistake %q of %s: %w", mistake, name, err)
	}

	var count int64
	err = s.db.QueryRowContext(ctx,
		`SELECT count FROM mistakes WHERE name = ? AND mistake = ?`,
		name, mistake).Scan(&count)
	if err != nil {
		return glossary.PersonMistake{}, fmt.Errorf("read back tally for %s: %w", name, err)
	}

	return glossary.PersonMistake{
		Name:           name,
		CountedMistake: glossary.CountedMistake{Mistake: mistake, Count: count},
	}, nil
}

// MistakesFor returns the tally for one participant. A participant with no
// recorded mistakes yields an empty tally, not an error.
func (s *Store) MistakesFor(ctx context.Context, name string) (glossary.PersonMistakes, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT mistake, count FROM mistakes WHERE name = ? ORDER BY mistake`, name)
	if err != nil {
		return glossary.PersonMistakes{}, fmt.Errorf("mistakes for %s: %w", name, err)
	}
	defer rows.Close()

	pm := glossary.PersonMistakes{Name: name, CountedMistakes: []glossary.CountedMistake{}}
	for rows.Next() {
		var cm glossary.CountedMistake
		if err := rows.Scan(&cm.Mistake, &cm.Count); err != nil {
			return glossary.PersonMistakes{}, fmt.Errorf("scan mistake: %w", err)
		}
		pm.CountedMistakes = append(pm.CountedMistakes, cm)
	}
	return pm, rows.Err()
}

// AllMistakes returns one tally per participant with at least one recorded
// mistake, sorted by participant name for deterministic output.
func (s *Store) AllMistakes(ctx context.Context) ([]glossary.PersonMistakes, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, mistake, count FROM mistakes ORDER BY name, mistake`)
	if err != nil {
		return nil, fmt.Errorf("all mistakes: %w", err)
	}
	defer rows.Close()

	all := []glossary.PersonMistakes{}
	for rows.Next() {
		var name string
		var cm glossary.CountedMistake
		if err := rows.Scan(&name, &cm.Mistake, &cm.Count); err != nil {
			return nil, fmt.Errorf("scan mistake: %w", err)
		}
		if len(all) == 0 || all[len(all)-1].Name != name {
			all = append(all, glossary.PersonMistakes{Name: name})
		}
		last := &all[len(all)-1]
		last.CountedMistakes = append(last.CountedMistakes, cm)
	}
	return all, rows.Err()
}

// MistakenWords returns the distinct mistake texts across all participants.
func (s *Store) MistakenWords(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT mistake FROM mistakes ORDER BY mistake`)
	if err != nil {
		return nil, fmt.Errorf("mistaken words: %w", err)
	}
	defer rows.Close()

	words := []string{}
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan mistaken word: %w", err)
		}
		words = append(words, w)
	}
	return words, rows.Err()
}
