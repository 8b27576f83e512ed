package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Magal-W/HebrewWeek/pkg/auth"
	"github.com/Magal-W/HebrewWeek/pkg/glossary"
	"github.com/Magal-W/HebrewWeek/pkg/moderation"
	"github.com/Magal-W/HebrewWeek/pkg/store"
)

const adminPass = "letmein"

func newTestServer(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()

	db, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	hash, err := auth.HashPassword(adminPass)
	require.NoError(t, err)

	s := store.New(db)
	router := NewRouter(Deps{
		Store:    s,
		Engine:   moderation.NewEngine(store.NewUnitOfWork(db), moderation.Policy{}),
		Verifier: auth.NewVerifier([]byte(hash)),
		LookupAddr: func(ctx context.Context, ip string) ([]string, error) {
			return nil, fmt.Errorf("no reverse dns in tests")
		},
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, s
}

func doJSON(t *testing.T, method, url string, body any, admin bool) *http.Response {
	t.Helper()
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if admin {
		req.SetBasicAuth(auth.Username, adminPass)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestAuthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/auth", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ok bool
	decodeInto(t, resp, &ok)
	assert.True(t, ok)

	resp = doJSON(t, http.MethodGet, srv.URL+"/auth", nil, false)
	decodeInto(t, resp, &ok)
	assert.False(t, ok)
}

func TestAdminRoutesRejectMissingOrWrongCredentials(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/participants", "Dana", false)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/participants", bytes.NewReader([]byte(`"Dana"`)))
	require.NoError(t, err)
	req.SetBasicAuth(auth.Username, "wrong")
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}

func TestParticipantsRoundTrip(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/participants", "Dana", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/participants", nil, false)
	var names []string
	decodeInto(t, resp, &names)
	assert.Equal(t, []string{"Dana"}, names)
}

func TestMistakeReportAndTallies(t *testing.T) {
	srv, _ := newTestServer(t)

	for i := 0; i < 3; i++ {
		resp := doJSON(t, http.MethodPost, srv.URL+"/mistakes",
			glossary.MistakeReport{Name: "Dana", Mistake: "like"}, true)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp := doJSON(t, http.MethodPost, srv.URL+"/mistakes",
		glossary.MistakeReport{Name: "Dana", Mistake: "actually"}, true)
	var pm glossary.PersonMistake
	decodeInto(t, resp, &pm)
	assert.Equal(t, int64(1), pm.CountedMistake.Count)

	resp = doJSON(t, http.MethodGet, srv.URL+"/mistakes/Dana", nil, false)
	var tally glossary.PersonMistakes
	decodeInto(t, resp, &tally)
	assert.Equal(t, []glossary.CountedMistake{
		{Mistake: "actually", Count: 1},
		{Mistake: "like", Count: 3},
	}, tally.CountedMistakes)

	resp = doJSON(t, http.MethodGet, srv.URL+"/mistakes", nil, false)
	var all []glossary.PersonMistakes
	decodeInto(t, resp, &all)
	require.Len(t, all, 1)
	assert.Equal(t, "Dana", all[0].Name)
}

func TestTranslationSuggestionAcceptWithEdit(t *testing.T) {
	srv, _ := newTestServer(t)

	// Proposed with an intentionally wrong Hebrew side.
	resp := doJSON(t, http.MethodPost, srv.URL+"/suggest/translations",
		glossary.TranslationSuggestion{English: "keyboard", Hebrew: "מחשב"}, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var id int64
	decodeInto(t, resp, &id)

	// Reviewer corrects the Hebrew on accept.
	resp = doJSON(t, http.MethodPost, srv.URL+"/suggest/translations/accept",
		acceptTranslationReq{ID: id, Hebrew: "מקלדת"}, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var accepted glossary.Translation
	decodeInto(t, resp, &accepted)
	assert.Equal(t, "keyboard", accepted.English)
	assert.Equal(t, "מקלדת", accepted.Hebrew)

	// The suggestion is gone from the pending list.
	resp = doJSON(t, http.MethodGet, srv.URL+"/suggest/translations", nil, false)
	var pending []glossary.TranslationSuggestion
	decodeInto(t, resp, &pending)
	assert.Empty(t, pending)

	// Second resolution of the same id is not found.
	resp = doJSON(t, http.MethodPost, srv.URL+"/suggest/translations/accept",
		acceptTranslationReq{ID: id}, true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/suggest/translations",
		suggestionIDReq{ID: id}, true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMistakeSuggestionLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/suggest/mistakes",
		glossary.MistakeSuggestion{Name: "Dana", Mistake: "like", Context: "standup"}, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var id int64
	decodeInto(t, resp, &id)

	resp = doJSON(t, http.MethodGet, srv.URL+"/suggest/mistakes", nil, false)
	var pending []glossary.MistakeSuggestion
	decodeInto(t, resp, &pending)
	require.Len(t, pending, 1)
	// Submitter identity is recorded from the request peer.
	assert.NotEmpty(t, pending[0].Reporter)

	resp = doJSON(t, http.MethodPost, srv.URL+"/suggest/mistakes/accept",
		suggestionIDReq{ID: id}, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var pm glossary.PersonMistake
	decodeInto(t, resp, &pm)
	assert.Equal(t, int64(1), pm.CountedMistake.Count)

	resp = doJSON(t, http.MethodGet, srv.URL+"/suggest/mistakes", nil, false)
	decodeInto(t, resp, &pending)
	assert.Empty(t, pending)
}

func TestDiscardMistakeSuggestion(t *testing.T) {
	srv, s := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/suggest/mistakes",
		glossary.MistakeSuggestion{Name: "Dana", Mistake: "like"}, false)
	var id int64
	decodeInto(t, resp, &id)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/suggest/mistakes",
		suggestionIDReq{ID: id}, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Nothing materialized, and the discard is in the audit log.
	tally, err := s.MistakesFor(context.Background(), "Dana")
	require.NoError(t, err)
	assert.Empty(t, tally.CountedMistakes)

	log, err := s.Resolutions(context.Background())
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.False(t, log[0].Accepted)
}

func TestCanonicalRoutes(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/known/running", nil, false)
	var known bool
	decodeInto(t, resp, &known)
	assert.False(t, known)

	resp = doJSON(t, http.MethodPost, srv.URL+"/canonicalize",
		canonicalReq{Word: "running", Canonical: "run"}, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/known/running", nil, false)
	decodeInto(t, resp, &known)
	assert.True(t, known)

	resp = doJSON(t, http.MethodGet, srv.URL+"/canonicalize/running", nil, false)
	var canonical string
	decodeInto(t, resp, &canonical)
	assert.Equal(t, "run", canonical)

	// Unknown words resolve to themselves.
	resp = doJSON(t, http.MethodGet, srv.URL+"/canonicalize/xyz", nil, false)
	decodeInto(t, resp, &canonical)
	assert.Equal(t, "xyz", canonical)
}

func TestTranslateThroughCanonical(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/translations",
		glossary.Translation{English: "run", Hebrew: "לרוץ"}, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, http.MethodPost, srv.URL+"/canonicalize",
		canonicalReq{Word: "running", Canonical: "run"}, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/translate/running", nil, false)
	var hebrews []string
	decodeInto(t, resp, &hebrews)
	assert.Equal(t, []string{"לרוץ"}, hebrews)
}

func TestSearchTranslationsIgnoresNiqqud(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/translations",
		glossary.Translation{English: "week", Hebrew: "שבוע"}, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Dotted search term matches the undotted stored form.
	resp = doJSON(t, http.MethodGet, srv.URL+"/translations?search="+"שָׁבוּעַ", nil, false)
	var found []glossary.Translation
	decodeInto(t, resp, &found)
	require.Len(t, found, 1)
	assert.Equal(t, "week", found[0].English)

	resp = doJSON(t, http.MethodGet, srv.URL+"/translations?search=nosuch", nil, false)
	decodeInto(t, resp, &found)
	assert.Empty(t, found)
}

func TestInvalidBodyIsBadRequest(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/suggest/translations",
		bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/health", nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var health healthResponse
	decodeInto(t, resp, &health)
	assert.Equal(t, "ok", health.Status)
}
