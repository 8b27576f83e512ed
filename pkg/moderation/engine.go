// Package moderation implements the suggestion review lifecycle:
// pending -> accepted or discarded, both terminal, each id resolved at most
// once. Accepting materializes the suggested entity and clears the pending
// row inside one transaction, so a half-applied accept cannot be observed.
package moderation

import (
	"context"
	"errors"
	"fmt"

	"github.com/Magal-W/HebrewWeek/pkg/glossary"
	"github.com/Magal-W/HebrewWeek/pkg/store"
)

// ErrUnknownParticipant is returned by AcceptMistake when the policy
// requires registered participants and the suggestion names an unknown one.
var ErrUnknownParticipant = errors.New("unknown participant")

// Policy configures optional hardening of the review flow.
type Policy struct {
	// RequireParticipant rejects mistake accepts for unregistered
	// participants. Off by default: the ledger historically accepted
	// mistakes for anyone.
	RequireParticipant bool
}

// Engine resolves pending suggestions. All state lives in the store; the
// engine never caches pending lists, so concurrent admins race only on the
// database row and the loser gets a not-found outcome.
type Engine struct {
	uow    *store.UnitOfWork
	policy Policy
}

// NewEngine creates an Engine over the given unit of work.
func NewEngine(uow *store.UnitOfWork, policy Policy) *Engine {
	return &Engine{uow: uow, policy: policy}
}

// AcceptTranslation accepts a pending translation proposal. The English
// term is fixed; the Hebrew side may be corrected by the reviewer
// (editedHebrew, empty = keep the suggested text). Returns the persisted
// pair. A suggestion that is no longer pending yields store.ErrNotFound
// with no side effect.
func (e *Engine) AcceptTranslation(ctx context.Context, id int64, editedHebrew, actor string) (glossary.Translation, error) {
	var accepted glossary.Translation
	err := e.uow.WithinTx(ctx, func(ctx context.Context, tx store.DBTX) error {
		s := store.New(tx)

		sug, err := s.GetTranslationSuggestion(ctx, id)
		if err != nil {
			return err
		}

		hebrew := sug.Hebrew
		if editedHebrew != "" {
			hebrew = editedHebrew
		}

		accepted, err = s.AddTranslation(ctx, sug.English, hebrew)
		if err != nil {
			return err
		}
		if err := s.DeleteTranslationSuggestion(ctx, id); err != nil {
			return err
		}
		return s.LogResolution(ctx, store.KindTranslation, id, true, actor)
	})
	if err != nil {
		return glossary.Translation{}, err
	}
	return accepted, nil
}

// DiscardTranslation removes a pending translation proposal without
// materializing anything. The discard is recorded in the audit log with
// accepted=false.
func (e *Engine) DiscardTranslation(ctx context.Context, id int64, actor string) error {
	return e.uow.WithinTx(ctx, func(ctx context.Context, tx store.DBTX) error {
		s := store.New(tx)
		if err := s.DeleteTranslationSuggestion(ctx, id); err != nil {
			return err
		}
		return s.LogResolution(ctx, store.KindTranslation, id, false, actor)
	})
}

// AcceptMistake accepts a pending mistake report, recording one occurrence
// in the ledger. The participant name and mistake text are fixed by the
// suggestion. Returns the updated tally.
func (e *Engine) AcceptMistake(ctx context.Context, id int64, actor string) (glossary.PersonMistake, error) {
	var recorded glossary.PersonMistake
	err := e.uow.WithinTx(ctx, func(ctx context.Context, tx store.DBTX) error {
		s := store.New(tx)

		sug, err := s.GetMistakeSuggestion(ctx, id)
		if err != nil {
			return err
		}

		if e.policy.RequireParticipant {
			ok, err := s.HasParticipant(ctx, sug.Name)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("accept mistake %d for %s: %w", id, sug.Name, ErrUnknownParticipant)
			}
		}

		recorded, err = s.RecordMistake(ctx, sug.Name, sug.Mistake)
		if err != nil {
			return err
		}
		if err := s.DeleteMistakeSuggestion(ctx, id); err != nil {
			return err
		}
		return s.LogResolution(ctx, store.KindMistake, id, true, actor)
	})
	if err != nil {
		return glossary.PersonMistake{}, err
	}
	return recorded, nil
}

// DiscardMistake removes a pending mistake report, tagging the audit row
// with accepted=false.
func (e *Engine) DiscardMistake(ctx context.Context, id int64, actor string) error {
	return e.uow.WithinTx(ctx, func(ctx context.Context, tx store.DBTX) error {
		s := store.New(tx)
		if err := s.DeleteMistakeSuggestion(ctx, id); err != nil {
			return err
		}
		return s.LogResolution(ctx, store.KindMistake, id, false, actor)
	})
}

// AcceptCanonical accepts a pending mapping proposal, recording the
// word-to-headword mapping. The surface word is fixed; the canonical side
// may be corrected by the reviewer (editedCanonical, empty = keep the
// suggested headword). Returns the recorded mapping.
func (e *Engine) AcceptCanonical(ctx context.Context, id int64, editedCanonical, actor string) (glossary.CanonicalMapping, error) {
	var accepted glossary.CanonicalMapping
	err := e.uow.WithinTx(ctx, func(ctx context.Context, tx store.DBTX) error {
		s := store.New(tx)

		sug, err := s.GetCanonicalSuggestion(ctx, id)
		if err != nil {
			return err
		}

		canonical := sug.Canonical
		if editedCanonical != "" {
			canonical = editedCanonical
		}

		if err := s.AddCanonical(ctx, sug.Word, canonical); err != nil {
			return err
		}
		accepted = glossary.CanonicalMapping{Word: sug.Word, Canonical: canonical}
		if err := s.DeleteCanonicalSuggestion(ctx, id); err != nil {
			return err
		}
		return s.LogResolution(ctx, store.KindCanonical, id, true, actor)
	})
	if err != nil {
		return glossary.CanonicalMapping{}, err
	}
	return accepted, nil
}

// DiscardCanonical removes a pending mapping proposal without recording
// anything, tagging the audit row with accepted=false.
func (e *Engine) DiscardCanonical(ctx context.Context, id int64, actor string) error {
	return e.uow.WithinTx(ctx, func(ctx context.Context, tx store.DBTX) error {
		s := store.New(tx)
		if err := s.DeleteCanonicalSuggestion(ctx, id); err != nil {
			return err
		}
		return s.LogResolution(ctx, store.KindCanonical, id, false, actor)
	})
}
