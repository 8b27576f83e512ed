package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Magal-W/HebrewWeek/pkg/auth"
	"github.com/Magal-W/HebrewWeek/pkg/glossary"
	"github.com/Magal-W/HebrewWeek/pkg/kit"
	"github.com/Magal-W/HebrewWeek/pkg/moderation"
	"github.com/Magal-W/HebrewWeek/pkg/store"
)

// Deps are the collaborators the router dispatches to.
type Deps struct {
	Store    *store.Store
	Engine   *moderation.Engine
	Verifier *auth.Verifier
	Logger   *slog.Logger

	// LookupAddr resolves an IP to hostnames for submitter identity.
	// Defaults to net.DefaultResolver; tests substitute a stub.
	LookupAddr func(ctx context.Context, ip string) ([]string, error)
}

// NewRouter returns an http.Handler with all glossary API routes.
func NewRouter(deps Deps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.LookupAddr == nil {
		deps.LookupAddr = net.DefaultResolver.LookupAddr
	}

	h := &handler{deps: deps}
	log := func(name string) kit.Middleware { return kit.Logging(deps.Logger, name) }
	admin := kit.RequireAdmin()

	h.listParticipants = log("participants.list")(listParticipantsEndpoint(deps.Store))
	h.addParticipant = kit.Chain(log("participants.add"), admin)(addParticipantEndpoint(deps.Store))
	h.allMistakes = log("mistakes.all")(allMistakesEndpoint(deps.Store))
	h.mistakesFor = log("mistakes.for")(mistakesForEndpoint(deps.Store))
	h.reportMistake = kit.Chain(log("mistakes.report"), admin)(reportMistakeEndpoint(deps.Store))
	h.listTranslations = log("translations.list")(listTranslationsEndpoint(deps.Store))
	h.addTranslation = kit.Chain(log("translations.add"), admin)(addTranslationEndpoint(deps.Store))
	h.translate = log("translations.translate")(translateEndpoint(deps.Store))
	h.searchTranslations = log("translations.search")(searchTranslationsEndpoint(deps.Store))
	h.isKnownWord = log("canonical.known")(isKnownWordEndpoint(deps.Store))
	h.canonicalize = log("canonical.resolve")(canonicalizeEndpoint(deps.Store))
	h.addCanonical = kit.Chain(log("canonical.add"), admin)(addCanonicalEndpoint(deps.Store))
	h.suggestTranslation = log("suggest.translations.add")(suggestTranslationEndpoint(deps.Store))
	h.listTranslationSuggestions = log("suggest.translations.list")(listTranslationSuggestionsEndpoint(deps.Store))
	h.acceptTranslation = kit.Chain(log("suggest.translations.accept"), admin)(acceptTranslationEndpoint(deps.Engine))
	h.discardTranslation = kit.Chain(log("suggest.translations.discard"), admin)(discardTranslationEndpoint(deps.Engine))
	h.suggestCanonical = log("suggest.canonical.add")(suggestCanonicalEndpoint(deps.Store))
	h.listCanonicalSuggestions = log("suggest.canonical.list")(listCanonicalSuggestionsEndpoint(deps.Store))
	h.acceptCanonical = kit.Chain(log("suggest.canonical.accept"), admin)(acceptCanonicalEndpoint(deps.Engine))
	h.discardCanonical = kit.Chain(log("suggest.canonical.discard"), admin)(discardCanonicalEndpoint(deps.Engine))
	h.suggestMistake = log("suggest.mistakes.add")(suggestMistakeEndpoint(deps.Store))
	h.listMistakeSuggestions = log("suggest.mistakes.list")(listMistakeSuggestionsEndpoint(deps.Store))
	h.acceptMistake = kit.Chain(log("suggest.mistakes.accept"), admin)(acceptMistakeEndpoint(deps.Engine))
	h.discardMistake = kit.Chain(log("suggest.mistakes.discard"), admin)(discardMistakeEndpoint(deps.Engine))

	mux := http.NewServeMux()

	mux.HandleFunc("GET /auth", h.handleAuth)

	mux.HandleFunc("GET /participants", h.get(func(r *http.Request) any { return nil }, h.listParticipants))
	mux.HandleFunc("POST /participants", h.handleAddParticipant)

	mux.HandleFunc("GET /mistakes", h.get(func(r *http.Request) any { return nil }, h.allMistakes))
	mux.HandleFunc("POST /mistakes", h.handleReportMistake)
	mux.HandleFunc("GET /mistakes/{name}", h.get(func(r *http.Request) any {
		return &nameReq{Name: r.PathValue("name")}
	}, h.mistakesFor))

	mux.HandleFunc("GET /translations", h.handleListTranslations)
	mux.HandleFunc("POST /translations", h.handleAddTranslation)
	mux.HandleFunc("GET /translate/{word}", h.get(func(r *http.Request) any {
		return &wordReq{Word: r.PathValue("word")}
	}, h.translate))

	mux.HandleFunc("GET /suggest/translations", h.get(func(r *http.Request) any { return nil }, h.listTranslationSuggestions))
	mux.HandleFunc("POST /suggest/translations", h.handleSuggestTranslation)
	mux.HandleFunc("DELETE /suggest/translations", h.handleDiscardTranslation)
	mux.HandleFunc("POST /suggest/translations/accept", h.handleAcceptTranslation)

	mux.HandleFunc("GET /suggest/canonical", h.get(func(r *http.Request) any { return nil }, h.listCanonicalSuggestions))
	mux.HandleFunc("POST /suggest/canonical", h.handleSuggestCanonical)
	mux.HandleFunc("DELETE /suggest/canonical", h.handleDiscardCanonical)
	mux.HandleFunc("POST /suggest/canonical/accept", h.handleAcceptCanonical)

	mux.HandleFunc("GET /suggest/mistakes", h.get(func(r *http.Request) any { return nil }, h.listMistakeSuggestions))
	mux.HandleFunc("POST /suggest/mistakes", h.handleSuggestMistake)
	mux.HandleFunc("DELETE /suggest/mistakes", h.handleDiscardMistake)
	mux.HandleFunc("POST /suggest/mistakes/accept", h.handleAcceptMistake)

	mux.HandleFunc("GET /known/{word}", h.get(func(r *http.Request) any {
		return &wordReq{Word: r.PathValue("word")}
	}, h.isKnownWord))
	mux.HandleFunc("POST /canonicalize", h.handleAddCanonical)
	mux.HandleFunc("GET /canonicalize/{word}", h.get(func(r *http.Request) any {
		return &wordReq{Word: r.PathValue("word")}
	}, h.canonicalize))

	mux.HandleFunc("GET /health", h.handleHealth)

	return cors(h.withRequestContext(mux))
}

type handler struct {
	deps Deps

	listParticipants           kit.Endpoint
	addParticipant             kit.Endpoint
	allMistakes                kit.Endpoint
	mistakesFor                kit.Endpoint
	reportMistake              kit.Endpoint
	listTranslations           kit.Endpoint
	addTranslation             kit.Endpoint
	translate                  kit.Endpoint
	searchTranslations         kit.Endpoint
	isKnownWord                kit.Endpoint
	canonicalize               kit.Endpoint
	addCanonical               kit.Endpoint
	suggestTranslation         kit.Endpoint
	listTranslationSuggestions kit.Endpoint
	acceptTranslation          kit.Endpoint
	discardTranslation         kit.Endpoint
	suggestCanonical           kit.Endpoint
	listCanonicalSuggestions   kit.Endpoint
	acceptCanonical            kit.Endpoint
	discardCanonical           kit.Endpoint
	suggestMistake             kit.Endpoint
	listMistakeSuggestions     kit.Endpoint
	acceptMistake              kit.Endpoint
	discardMistake             kit.Endpoint
}

// withRequestContext tags every request with an id and, when Basic
// credentials verify against the admin hash, the admin flag. Bad
// credentials are not rejected here; guarded endpoints do that so public
// routes stay accessible without credentials.
func (h *handler) withRequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := kit.WithRequestID(r.Context(), uuid.NewString())
		ctx = kit.WithTransport(ctx, "http")

		if _, password, ok := r.BasicAuth(); ok {
			verified, err := h.deps.Verifier.Verify(password)
			if err != nil {
				h.deps.Logger.Error("credential check failed", "error", err)
			} else if verified {
				ctx = kit.WithAdmin(ctx)
			}
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// get builds a handler for body-less endpoints whose request comes from the
// URL.
func (h *handler) get(decode func(*http.Request) any, ep kit.Endpoint) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := ep(r.Context(), decode(r))
		if err != nil {
			h.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *handler) handleAuth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, kit.IsAdmin(r.Context()))
}

func (h *handler) handleAddParticipant(w http.ResponseWriter, r *http.Request) {
	var name string
	if !decodeBody(w, r, &name) {
		return
	}
	if _, err := h.addParticipant(r.Context(), &nameReq{Name: name}); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *handler) handleReportMistake(w http.ResponseWriter, r *http.Request) {
	var req glossary.MistakeReport
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := h.reportMistake(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleListTranslations serves the dictionary; an optional ?search= term
// filters it with normalized matching. An empty term is the full list.
func (h *handler) handleListTranslations(w http.ResponseWriter, r *http.Request) {
	var resp any
	var err error
	if term := r.URL.Query().Get("search"); term != "" {
		resp, err = h.searchTranslations(r.Context(), &searchTranslationsReq{Term: term})
	} else {
		resp, err = h.listTranslations(r.Context(), nil)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleAddTranslation(w http.ResponseWriter, r *http.Request) {
	var req glossary.Translation
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := h.addTranslation(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleSuggestTranslation(w http.ResponseWriter, r *http.Request) {
	var req glossary.TranslationSuggestion
	if !decodeBody(w, r, &req) {
		return
	}
	ctx := kit.WithSubmitter(r.Context(), h.submitter(r))
	resp, err := h.suggestTranslation(ctx, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleAcceptTranslation(w http.ResponseWriter, r *http.Request) {
	var req acceptTranslationReq
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := h.acceptTranslation(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleDiscardTranslation(w http.ResponseWriter, r *http.Request) {
	var req suggestionIDReq
	if !decodeBody(w, r, &req) {
		return
	}
	if _, err := h.discardTranslation(r.Context(), &req); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *handler) handleSuggestCanonical(w http.ResponseWriter, r *http.Request) {
	var req glossary.CanonicalSuggestion
	if !decodeBody(w, r, &req) {
		return
	}
	ctx := kit.WithSubmitter(r.Context(), h.submitter(r))
	resp, err := h.suggestCanonical(ctx, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleAcceptCanonical(w http.ResponseWriter, r *http.Request) {
	var req acceptCanonicalReq
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := h.acceptCanonical(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleDiscardCanonical(w http.ResponseWriter, r *http.Request) {
	var req suggestionIDReq
	if !decodeBody(w, r, &req) {
		return
	}
	if _, err := h.discardCanonical(r.Context(), &req); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *handler) handleSuggestMistake(w http.ResponseWriter, r *http.Request) {
	var req glossary.MistakeSuggestion
	if !decodeBody(w, r, &req) {
		return
	}
	ctx := kit.WithSubmitter(r.Context(), h.submitter(r))
	resp, err := h.suggestMistake(ctx, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleAcceptMistake(w http.ResponseWriter, r *http.Request) {
	var req suggestionIDReq
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := h.acceptMistake(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleDiscardMistake(w http.ResponseWriter, r *http.Request) {
	var req suggestionIDReq
	if !decodeBody(w, r, &req) {
		return
	}
	if _, err := h.discardMistake(r.Context(), &req); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *handler) handleAddCanonical(w http.ResponseWriter, r *http.Request) {
	var req canonicalReq
	if !decodeBody(w, r, &req) {
		return
	}
	if _, err := h.addCanonical(r.Context(), &req); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

type healthResponse struct {
	Status string `json:"status"`
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// submitter identifies who submitted a suggestion: the first X-Forwarded-For
// hop (or the peer address), reverse-resolved to a hostname when possible.
func (h *handler) submitter(r *http.Request) string {
	ip := ""
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ip = strings.TrimSpace(strings.Split(xff, ",")[0])
	} else if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		ip = host
	}
	if ip == "" {
		return ""
	}

	ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
	defer cancel()
	if names, err := h.deps.LookupAddr(ctx, ip); err == nil && len(names) > 0 {
		return strings.TrimSuffix(names[0], ".")
	}
	return ip
}

// --- helpers ---

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024) // 64 KiB max
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func (h *handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, kit.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, moderation.ErrUnknownParticipant):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// cors is a simple CORS middleware for browser-based clients.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
