package store

import (
	"context"
	"fmt"
)

// Participants returns all registered participant names, sorted.
func (s *Store) Participants(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM participants ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// AddParticipant registers a participant. Adding an existing name is a no-op.
func (s *Store) AddParticipant(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO participants (name) VALUES (?)`, name); err != nil {
		return fmt.Errorf("add participant %s: %w", name, err)
	}
	return nil
}

// HasParticipant reports whether name is registered.
func (s *Store) HasParticipant(ctx context.Context, name string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM participants WHERE name = ?`, name).Scan(&one)
	if err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, fmt.Errorf("check participant %s: %w", name, err)
	}
	return true, nil
}
