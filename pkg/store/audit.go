package store

import (
	"context"
	"fmt"
	"time"
)

// Suggestion kinds recorded in the moderation log.
const (
	KindTranslation = "translation"
	KindMistake     = "mistake"
	KindCanonical   = "canonical"
)

// Resolution is one row of the moderation audit log.
type Resolution struct {
	Kind         string `json:"kind"`
	SuggestionID int64  `json:"suggestion_id"`
	Accepted     bool   `json:"accepted"`
	Actor        string `json:"actor,omitempty"`
	ResolvedAt   string `json:"resolved_at"`
}

// LogResolution appends an audit row for an accepted or discarded
// suggestion. Discards carry accepted=false, distinct from silent deletion.
func (s *Store) LogResolution(ctx context.Context, kind string, suggestionID int64, accepted bool, actor string) error {
	acceptedInt := 0
	if accepted {
		acceptedInt = 1
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO moderation_log (kind, suggestion_id, accepted, actor, resolved_at)
		 VALUES (?, ?, ?, ?, ?)`,
		kind, suggestionID, acceptedInt, actor, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("log %s resolution %d: %w", kind, suggestionID, err)
	}
	return nil
}

// Resolutions returns the audit log, oldest first.
func (s *Store) Resolutions(ctx context.Context) ([]Resolution, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT kind, suggestion_id, accepted, actor, resolved_at FROM moderation_log ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list resolutions: %w", err)
	}
	defer rows.Close()

	all := []Resolution{}
	for rows.Next() {
		var r Resolution
		var accepted int
		if err := rows.Scan(&r.Kind, &r.SuggestionID, &accepted, &r.Actor, &r.ResolvedAt); err != nil {
			return nil, fmt.Errorf("scan resolution: %w", err)
		}
		r.Accepted = accepted != 0
		all = append(all, r)
	}
	return all, rows.Err()
}
