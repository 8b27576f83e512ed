package client

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Magal-W/HebrewWeek/pkg/api"
	"github.com/Magal-W/HebrewWeek/pkg/auth"
	"github.com/Magal-W/HebrewWeek/pkg/glossary"
	"github.com/Magal-W/HebrewWeek/pkg/moderation"
	"github.com/Magal-W/HebrewWeek/pkg/store"
)

const adminPass = "hunter2"

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	hash, err := auth.HashPassword(adminPass)
	require.NoError(t, err)

	router := api.NewRouter(api.Deps{
		Store:    store.New(db),
		Engine:   moderation.NewEngine(store.NewUnitOfWork(db), moderation.Policy{}),
		Verifier: auth.NewVerifier([]byte(hash)),
		LookupAddr: func(ctx context.Context, ip string) ([]string, error) {
			return nil, fmt.Errorf("no dns")
		},
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckAuth(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()

	ok, err := New(srv.URL, WithPassword(adminPass)).CheckAuth(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = New(srv.URL).CheckAuth(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestModerationFlow(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()
	public := New(srv.URL)
	admin := New(srv.URL, WithPassword(adminPass))

	id, err := public.SuggestTranslation(ctx, "keyboard", "מחשב")
	require.NoError(t, err)

	pending, err := public.TranslationSuggestions(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "keyboard", pending[0].English)

	accepted, err := admin.AcceptTranslation(ctx, id, "מקלדת")
	require.NoError(t, err)
	assert.Equal(t, glossary.Translation{ID: accepted.ID, English: "keyboard", Hebrew: "מקלדת"}, accepted)

	pending, err = public.TranslationSuggestions(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	pairs, err := public.Translations(ctx)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "מקלדת", pairs[0].Hebrew)

	// Resolving the same suggestion again reports not found.
	_, err = admin.AcceptTranslation(ctx, id, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnauthorizedClassification(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()

	err := New(srv.URL).AddParticipant(ctx, "Dana")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 401, se.Code)
	assert.NotEmpty(t, se.Message)
}

func TestMistakeTallyFlow(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()
	admin := New(srv.URL, WithPassword(adminPass))

	require.NoError(t, admin.AddParticipant(ctx, "Dana"))

	id, err := admin.SuggestMistake(ctx, glossary.MistakeSuggestion{Name: "Dana", Mistake: "like"})
	require.NoError(t, err)
	pm, err := admin.AcceptMistake(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pm.CountedMistake.Count)

	tally, err := admin.MistakesFor(ctx, "Dana")
	require.NoError(t, err)
	require.Len(t, tally.CountedMistakes, 1)
	assert.Equal(t, "like", tally.CountedMistakes[0].Mistake)
}

func TestCanonicalAndTranslate(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()
	public := New(srv.URL)
	admin := New(srv.URL, WithPassword(adminPass))

	_, err := admin.AddTranslation(ctx, glossary.Translation{English: "run", Hebrew: "לרוץ"})
	require.NoError(t, err)
	require.NoError(t, admin.AddCanonical(ctx, "running", "run"))

	known, err := public.IsKnownWord(ctx, "running")
	require.NoError(t, err)
	assert.True(t, known)

	canonical, err := public.Canonicalize(ctx, "running")
	require.NoError(t, err)
	assert.Equal(t, "run", canonical)

	hebrews, err := public.Translate(ctx, "running")
	require.NoError(t, err)
	assert.Equal(t, []string{"לרוץ"}, hebrews)
}

func TestSearchTranslations(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()
	admin := New(srv.URL, WithPassword(adminPass))

	_, err := admin.AddTranslation(ctx, glossary.Translation{English: "week", Hebrew: "שבוע"})
	require.NoError(t, err)

	found, err := New(srv.URL).SearchTranslations(ctx, "שָׁבוּעַ")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "week", found[0].English)
}

func TestCanonicalSuggestionFlow(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()
	public := New(srv.URL)
	admin := New(srv.URL, WithPassword(adminPass))

	id, err := public.SuggestCanonical(ctx, "running", "run")
	require.NoError(t, err)

	pending, err := public.CanonicalSuggestions(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "running", pending[0].Word)

	accepted, err := admin.AcceptCanonical(ctx, id, "")
	require.NoError(t, err)
	assert.Equal(t, glossary.CanonicalMapping{Word: "running", Canonical: "run"}, accepted)

	canonical, err := public.Canonicalize(ctx, "running")
	require.NoError(t, err)
	assert.Equal(t, "run", canonical)

	require.ErrorIs(t, admin.DiscardCanonical(ctx, id), ErrNotFound)
}
