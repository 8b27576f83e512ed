package api

import (
	"context"

	"github.com/Magal-W/HebrewWeek/pkg/glossary"
	"github.com/Magal-W/HebrewWeek/pkg/kit"
	"github.com/Magal-W/HebrewWeek/pkg/moderation"
	"github.com/Magal-W/HebrewWeek/pkg/store"
)

// Shared request/response types used by both HTTP and MCP transports.

type nameReq struct {
	Name string `json:"name"`
}

type wordReq struct {
	Word string `json:"word"`
}

type canonicalReq struct {
	Word      string `json:"word"`
	Canonical string `json:"canonical"`
}

type suggestionIDReq struct {
	ID int64 `json:"id"`
}

// acceptTranslationReq carries the reviewer's optional correction of the
// Hebrew side. The English term is not editable.
type acceptTranslationReq struct {
	ID     int64  `json:"id"`
	Hebrew string `json:"hebrew,omitempty"`
}

// acceptCanonicalReq carries the reviewer's optional correction of the
// canonical headword. The surface word is not editable.
type acceptCanonicalReq struct {
	ID        int64  `json:"id"`
	Canonical string `json:"canonical,omitempty"`
}

type searchTranslationsReq struct {
	Term string `json:"term"`
}

func listParticipantsEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, _ any) (any, error) {
		return s.Participants(ctx)
	}
}

func addParticipantEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*nameReq)
		return nil, s.AddParticipant(ctx, req.Name)
	}
}

func allMistakesEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, _ any) (any, error) {
		return s.AllMistakes(ctx)
	}
}

func mistakesForEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*nameReq)
		return s.MistakesFor(ctx, req.Name)
	}
}

func reportMistakeEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*glossary.MistakeReport)
		return s.RecordMistake(ctx, req.Name, req.Mistake)
	}
}

func listTranslationsEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, _ any) (any, error) {
		return s.Translations(ctx)
	}
}

func addTranslationEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*glossary.Translation)
		return s.AddTranslation(ctx, req.English, req.Hebrew)
	}
}

func translateEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*wordReq)
		return s.Translate(ctx, req.Word)
	}
}

func searchTranslationsEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*searchTranslationsReq)
		all, err := s.Translations(ctx)
		if err != nil {
			return nil, err
		}
		return glossary.FilterTranslations(all, req.Term), nil
	}
}

func isKnownWordEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*wordReq)
		return s.IsKnownWord(ctx, req.Word)
	}
}

func canonicalizeEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*wordReq)
		return s.Canonicalize(ctx, req.Word)
	}
}

func addCanonicalEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*canonicalReq)
		return nil, s.AddCanonical(ctx, req.Word, req.Canonical)
	}
}

func suggestTranslationEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*glossary.TranslationSuggestion)
		req.Suggestor = kit.GetSubmitter(ctx)
		return s.SuggestTranslation(ctx, *req)
	}
}

func listTranslationSuggestionsEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, _ any) (any, error) {
		return s.TranslationSuggestions(ctx)
	}
}

func acceptTranslationEndpoint(e *moderation.Engine) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*acceptTranslationReq)
		return e.AcceptTranslation(ctx, req.ID, req.Hebrew, actor(ctx))
	}
}

func discardTranslationEndpoint(e *moderation.Engine) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*suggestionIDReq)
		return nil, e.DiscardTranslation(ctx, req.ID, actor(ctx))
	}
}

func suggestMistakeEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*glossary.MistakeSuggestion)
		req.Reporter = kit.GetSubmitter(ctx)
		return s.SuggestMistake(ctx, *req)
	}
}

func listMistakeSuggestionsEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, _ any) (any, error) {
		return s.MistakeSuggestions(ctx)
	}
}

func acceptMistakeEndpoint(e *moderation.Engine) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*suggestionIDReq)
		return e.AcceptMistake(ctx, req.ID, actor(ctx))
	}
}

func discardMistakeEndpoint(e *moderation.Engine) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*suggestionIDReq)
		return nil, e.DiscardMistake(ctx, req.ID, actor(ctx))
	}
}

// actor names the moderation audit actor. Only the shared admin identity
// exists, so a verified request is always "admin".
func actor(ctx context.Context) string {
	if kit.IsAdmin(ctx) {
		return "admin"
	}
	return ""
}

func suggestCanonicalEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*glossary.CanonicalSuggestion)
		req.Suggestor = kit.GetSubmitter(ctx)
		return s.SuggestCanonical(ctx, *req)
	}
}

func listCanonicalSuggestionsEndpoint(s *store.Store) kit.Endpoint {
	return func(ctx context.Context, _ any) (any, error) {
		return s.CanonicalSuggestions(ctx)
	}
}

func acceptCanonicalEndpoint(e *moderation.Engine) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*acceptCanonicalReq)
		return e.AcceptCanonical(ctx, req.ID, req.Canonical, actor(ctx))
	}
}

func discardCanonicalEndpoint(e *moderation.Engine) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*suggestionIDReq)
		return nil, e.DiscardCanonical(ctx, req.ID, actor(ctx))
	}
}
