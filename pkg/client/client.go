// Package client is a Go client for the glossary HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/Magal-W/HebrewWeek/pkg/auth"
	"github.com/Magal-W/HebrewWeek/pkg/glossary"
)

// Client talks to a glossary server. The zero value is not usable; construct
// with New.
type Client struct {
	baseURL  string
	password string
	http     *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithPassword sets the admin password sent as Basic credentials. Required
// for moderation and other admin operations.
func WithPassword(password string) Option {
	return func(c *Client) { c.password = password }
}

// WithHTTPClient substitutes the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a Client for the server at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckAuth reports whether the configured password is accepted.
func (c *Client) CheckAuth(ctx context.Context) (bool, error) {
	var ok bool
	err := c.do(ctx, http.MethodGet, "/auth", nil, &ok)
	return ok, err
}

// Participants lists all registered participants.
func (c *Client) Participants(ctx context.Context) ([]string, error) {
	var names []string
	err := c.do(ctx, http.MethodGet, "/participants", nil, &names)
	return names, err
}

// AddParticipant registers a participant. Admin only. Idempotent.
func (c *Client) AddParticipant(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodPost, "/participants", name, nil)
}

// AllMistakes returns every participant's tally.
func (c *Client) AllMistakes(ctx context.Context) ([]glossary.PersonMistakes, error) {
	var all []glossary.PersonMistakes
	err := c.do(ctx, http.MethodGet, "/mistakes", nil, &all)
	return all, err
}

// MistakesFor returns one participant's tally. A participant with no
// recorded mistakes has an empty tally.
func (c *Client) MistakesFor(ctx context.Context, name string) (glossary.PersonMistakes, error) {
	var pm glossary.PersonMistakes
	err := c.do(ctx, http.MethodGet, "/mistakes/"+url.PathEscape(name), nil, &pm)
	return pm, err
}

// ReportMistake records a mistake directly, bypassing the suggestion queue.
// Admin only.
func (c *Client) ReportMistake(ctx context.Context, report glossary.MistakeReport) (glossary.PersonMistake, error) {
	var pm glossary.PersonMistake
	err := c.do(ctx, http.MethodPost, "/mistakes", report, &pm)
	return pm, err
}

// Translations returns the full dictionary.
func (c *Client) Translations(ctx context.Context) ([]glossary.Translation, error) {
	var pairs []glossary.Translation
	err := c.do(ctx, http.MethodGet, "/translations", nil, &pairs)
	return pairs, err
}

// SearchTranslations filters the dictionary by a term on either side,
// ignoring case and Hebrew diacritics.
func (c *Client) SearchTranslations(ctx context.Context, term string) ([]glossary.Translation, error) {
	var pairs []glossary.Translation
	err := c.do(ctx, http.MethodGet, "/translations?search="+url.QueryEscape(term), nil, &pairs)
	return pairs, err
}

// AddTranslation inserts a pair directly, bypassing the suggestion queue.
// Admin only.
func (c *Client) AddTranslation(ctx context.Context, pair glossary.Translation) (glossary.Translation, error) {
	var added glossary.Translation
	err := c.do(ctx, http.MethodPost, "/translations", pair, &added)
	return added, err
}

// Translate returns the Hebrew renderings of an English word, resolving the
// word through its canonical form first.
func (c *Client) Translate(ctx context.Context, english string) ([]string, error) {
	var hebrews []string
	err := c.do(ctx, http.MethodGet, "/translate/"+url.PathEscape(english), nil, &hebrews)
	return hebrews, err
}

// IsKnownWord reports whether the word appears in a canonical mapping.
func (c *Client) IsKnownWord(ctx context.Context, word string) (bool, error) {
	var known bool
	err := c.do(ctx, http.MethodGet, "/known/"+url.PathEscape(word), nil, &known)
	return known, err
}

// Canonicalize resolves a word to its canonical form; unknown words resolve
// to themselves.
func (c *Client) Canonicalize(ctx context.Context, word string) (string, error) {
	var canonical string
	err := c.do(ctx, http.MethodGet, "/canonicalize/"+url.PathEscape(word), nil, &canonical)
	return canonical, err
}

// AddCanonical records a word-to-canonical mapping. Admin only.
func (c *Client) AddCanonical(ctx context.Context, word, canonical string) error {
	body := struct {
		Word      string `json:"word"`
		Canonical string `json:"canonical"`
	}{word, canonical}
	return c.do(ctx, http.MethodPost, "/canonicalize", body, nil)
}

// SuggestTranslation proposes a translation pair for review and returns the
// suggestion id.
func (c *Client) SuggestTranslation(ctx context.Context, english, hebrew string) (int64, error) {
	var id int64
	err := c.do(ctx, http.MethodPost, "/suggest/translations",
		glossary.TranslationSuggestion{English: english, Hebrew: hebrew}, &id)
	return id, err
}

// TranslationSuggestions lists pending translation suggestions.
func (c *Client) TranslationSuggestions(ctx context.Context) ([]glossary.TranslationSuggestion, error) {
	var pending []glossary.TranslationSuggestion
	err := c.do(ctx, http.MethodGet, "/suggest/translations", nil, &pending)
	return pending, err
}

// AcceptTranslation accepts a pending suggestion, optionally correcting its
// Hebrew side (pass "" to keep the suggested Hebrew). Admin only.
func (c *Client) AcceptTranslation(ctx context.Context, id int64, hebrew string) (glossary.Translation, error) {
	body := struct {
		ID     int64  `json:"id"`
		Hebrew string `json:"hebrew,omitempty"`
	}{id, hebrew}
	var accepted glossary.Translation
	err := c.do(ctx, http.MethodPost, "/suggest/translations/accept", body, &accepted)
	return accepted, err
}

// DiscardTranslation rejects a pending translation suggestion. Admin only.
func (c *Client) DiscardTranslation(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/suggest/translations", idBody{id}, nil)
}

// SuggestMistake proposes a mistake report for review and returns the
// suggestion id.
func (c *Client) SuggestMistake(ctx context.Context, sug glossary.MistakeSuggestion) (int64, error) {
	var id int64
	err := c.do(ctx, http.MethodPost, "/suggest/mistakes", sug, &id)
	return id, err
}

// MistakeSuggestions lists pending mistake suggestions.
func (c *Client) MistakeSuggestions(ctx context.Context) ([]glossary.MistakeSuggestion, error) {
	var pending []glossary.MistakeSuggestion
	err := c.do(ctx, http.MethodGet, "/suggest/mistakes", nil, &pending)
	return pending, err
}

// AcceptMistake accepts a pending mistake suggestion, incrementing the tally.
// Admin only.
func (c *Client) AcceptMistake(ctx context.Context, id int64) (glossary.PersonMistake, error) {
	var pm glossary.PersonMistake
	err := c.do(ctx, http.MethodPost, "/suggest/mistakes/accept", idBody{id}, &pm)
	return pm, err
}

// DiscardMistake rejects a pending mistake suggestion. Admin only.
func (c *Client) DiscardMistake(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/suggest/mistakes", idBody{id}, nil)
}

type idBody struct {
	ID int64 `json:"id"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.password != "" {
		req.SetBasicAuth(auth.Username, c.password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := readErrorMessage(resp.Body)
		return &StatusError{Code: resp.StatusCode, Message: msg, err: classify(resp.StatusCode)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func readErrorMessage(r io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 4*1024)).Decode(&payload); err != nil {
		return ""
	}
	return payload.Error
}

// SuggestCanonical proposes a word-to-headword mapping for review and
// returns the suggestion id.
func (c *Client) SuggestCanonical(ctx context.Context, word, canonical string) (int64, error) {
	var id int64
	err := c.do(ctx, http.MethodPost, "/suggest/canonical",
		glossary.CanonicalSuggestion{Word: word, Canonical: canonical}, &id)
	return id, err
}

// CanonicalSuggestions lists pending canonicalization proposals.
func (c *Client) CanonicalSuggestions(ctx context.Context) ([]glossary.CanonicalSuggestion, error) {
	var pending []glossary.CanonicalSuggestion
	err := c.do(ctx, http.MethodGet, "/suggest/canonical", nil, &pending)
	return pending, err
}

// AcceptCanonical accepts a pending mapping proposal, optionally correcting
// its headword (pass "" to keep the suggested one). Admin only.
func (c *Client) AcceptCanonical(ctx context.Context, id int64, canonical string) (glossary.CanonicalMapping, error) {
	body := struct {
		ID        int64  `json:"id"`
		Canonical string `json:"canonical,omitempty"`
	}{id, canonical}
	var accepted glossary.CanonicalMapping
	err := c.do(ctx, http.MethodPost, "/suggest/canonical/accept", body, &accepted)
	return accepted, err
}

// DiscardCanonical rejects a pending mapping proposal. Admin only.
func (c *Client) DiscardCanonical(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/suggest/canonical", idBody{id}, nil)
}
