// internal/httpserver/server.go
//
// HTTP server wiring for the Wordle solver backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Solver endpoints (optional auth): POST /init, POST /guess,
//     POST /reset, GET /session/{id}, DELETE /session/{id}.
//   - Solve history: GET /solves/recent (public), GET /solves/mine (gated).
//   - Auth endpoints (require auth where noted): /auth/*.
//
// Notes:
//   - The engine (internal/solver) is pure computation; this layer owns
//     session ids, the session registry, and persistence.
//   - Each registry entry carries its own lock; handlers hold it for the
//     whole submit/reset so one in-flight request mutates a session at a
//     time.
//   - CORS is origin-aware and credentials-enabled (so cookies work).

package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver-server/internal/history"
	"github.com/robalobadob/wordle/apps/solver-server/internal/solver"
	"github.com/robalobadob/wordle/apps/solver-server/internal/store"
)

// Defaults applied when an /init or /guess request omits a knob.
const (
	defaultNTop  = 100000
	defaultAlpha = 0.7
	defaultTopK  = 5
)

// Server bundles router, session registry, dictionary, and DB handle.
type Server struct {
	r     *chi.Mux
	store store.Store
	db    *sql.DB
	hist  *history.Store
	dict  *solver.Dictionary
	past  map[string]struct{}
}

// New constructs a Server, installs middleware, and registers routes.
// dict and past come from the words package; db may carry solve history.
func New(st store.Store, db *sql.DB, dict *solver.Dictionary, past map[string]struct{}) *Server {
	s := &Server{r: chi.NewRouter(), store: st, db: db, hist: history.NewStore(db), dict: dict, past: past}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver-go","endpoints":["/health","POST /init","POST /guess","POST /reset","GET /session/{id}","DELETE /session/{id}","/auth/*"]}`))
	})
	s.r.Get("/health", s.handleHealth)

	// Solver endpoints — OPTIONAL AUTH (guests can solve)
	s.r.With(s.withOptionalAuth()).Post("/init", s.handleInit)
	s.r.With(s.withOptionalAuth()).Post("/guess", s.handleGuess)
	s.r.With(s.withOptionalAuth()).Post("/reset", s.handleReset)
	s.r.Get("/session/{id}", s.handleSessionInfo)
	s.r.Delete("/session/{id}", s.handleSessionDelete)

	// Solve history + auth
	s.mountSolves()
	s.mountAuthRoutes()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	// Debug: word list counts
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{
			"answers": len(s.dict.Answers()),
			"allowed": len(s.dict.Allowed()),
			"past":    len(s.past),
		})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ SOLVER -------------------------------------

// initReq/Res payloads for POST /init. Pointer fields distinguish "omitted"
// from legitimate zero values (alpha=0 is a valid blend).
type initReq struct {
	NTop              *int     `json:"nTop"`
	FilterPastAnswers *bool    `json:"filterPastAnswers"`
	Alpha             *float64 `json:"alpha"`
	TopK              *int     `json:"topk"`
	RestrictGuesses   *bool    `json:"restrictGuesses"`
}
type initRes struct {
	SessionID       string   `json:"sessionId"`
	Suggestions     []string `json:"suggestions"`
	TotalCandidates int      `json:"totalCandidates"`
}

// config resolves the request against the server defaults.
func (q initReq) config(past map[string]struct{}) solver.Config {
	cfg := solver.Config{
		NTop:              defaultNTop,
		FilterPastAnswers: true,
		Alpha:             defaultAlpha,
		TopK:              defaultTopK,
		RestrictGuesses:   true,
		Exclusions:        past,
	}
	if q.NTop != nil {
		cfg.NTop = *q.NTop
	}
	if q.FilterPastAnswers != nil {
		cfg.FilterPastAnswers = *q.FilterPastAnswers
	}
	if q.Alpha != nil {
		cfg.Alpha = *q.Alpha
	}
	if q.TopK != nil {
		cfg.TopK = *q.TopK
	}
	if q.RestrictGuesses != nil {
		cfg.RestrictGuesses = *q.RestrictGuesses
	}
	return cfg
}

// handleInit creates a new solver session, stores it, and returns the
// initial suggestions for the full (possibly pre-filtered) candidate pool.
func (s *Server) handleInit(w http.ResponseWriter, r *http.Request) {
	var req initReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	cfg := req.config(s.past)
	sess, err := solver.NewSession(s.dict, cfg)
	if err != nil {
		writeSolverErr(w, err)
		return
	}
	sugg, err := sess.Suggest(cfg.Alpha, cfg.TopK, cfg.RestrictGuesses)
	if err != nil {
		writeSolverErr(w, err)
		return
	}

	e := &store.Entry{ID: uuid.NewString(), Sess: sess, CreatedAt: time.Now()}
	if err := s.store.Put(r.Context(), e); err != nil {
		log.Error().Err(err).Msg("store session")
		http.Error(w, `{"error":"store_failed"}`, http.StatusInternalServerError)
		return
	}

	total, _ := sess.Status()
	_ = json.NewEncoder(w).Encode(initRes{SessionID: e.ID, Suggestions: sugg, TotalCandidates: total})
}

// guessReq/Res payloads for POST /guess.
type guessReq struct {
	SessionID       string   `json:"sessionId"`
	Word            string   `json:"word"`
	Pattern         []int    `json:"pattern"` // per-letter: 0=gray, 1=yellow, 2=green
	Alpha           *float64 `json:"alpha"`
	TopK            *int     `json:"topk"`
	RestrictGuesses *bool    `json:"restrictGuesses"`
}
type guessRes struct {
	Suggestions         []string `json:"suggestions"`
	CandidatesRemaining int      `json:"candidatesRemaining"`
	IsSolved            bool     `json:"isSolved"`
	Message             string   `json:"message,omitempty"`
}

// handleGuess applies one observed (word, pattern) to a session, re-ranks,
// and persists a solve row when the session is done.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	e, err := s.store.Get(r.Context(), req.SessionID)
	if err != nil {
		http.Error(w, `{"error":"session_not_found"}`, http.StatusNotFound)
		return
	}

	pat, err := solver.PatternFromInts(req.Pattern)
	if err != nil {
		writeSolverErr(w, err)
		return
	}

	// Per-call knobs override the session config without touching it, so
	// two callers with different preferences never interfere. Omitted
	// restrictGuesses means suggestions come from the full dictionary,
	// which is usually what you want mid-game.
	cfg := e.Sess.Config()
	alpha, topk, restrict := cfg.Alpha, cfg.TopK, false
	if req.Alpha != nil {
		alpha = *req.Alpha
	}
	if req.TopK != nil {
		topk = *req.TopK
	}
	if req.RestrictGuesses != nil {
		restrict = *req.RestrictGuesses
	}

	e.Lock()
	res, err := e.Sess.SubmitGuess(req.Word, pat, alpha, topk, restrict)
	guesses := 0
	if err == nil {
		_, guesses = e.Sess.Status()
	}
	e.Unlock()
	if err != nil {
		writeSolverErr(w, err)
		return
	}

	// Record finished solves (best effort, non-fatal if it fails).
	if res.Solved && len(res.Suggestions) > 0 {
		rec := history.Solve{
			OwnerID:   s.ownerID(w, r),
			SessionID: e.ID,
			Answer:    res.Suggestions[0],
			Guesses:   guesses,
			ElapsedMs: int(time.Since(e.CreatedAt).Milliseconds()),
		}
		if err := s.hist.Insert(r.Context(), rec); err != nil {
			log.Warn().Err(err).Str("sessionId", e.ID).Msg("insert solve row")
		}
	}

	_ = json.NewEncoder(w).Encode(guessRes{
		Suggestions:         res.Suggestions,
		CandidatesRemaining: res.CandidatesRemaining,
		IsSolved:            res.Solved,
		Message:             res.Message,
	})
}

// resetReq is the payload for POST /reset.
type resetReq struct {
	SessionID string `json:"sessionId"`
}

// handleReset restores a session's original candidate pool.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req resetReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	e, err := s.store.Get(r.Context(), req.SessionID)
	if err != nil {
		http.Error(w, `{"error":"session_not_found"}`, http.StatusNotFound)
		return
	}
	e.Lock()
	e.Sess.Reset()
	e.Unlock()
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "session reset"})
}

// sessionInfoRes is returned by GET /session/{id}.
type sessionInfoRes struct {
	SessionID           string `json:"sessionId"`
	CandidatesRemaining int    `json:"candidatesRemaining"`
	GuessesMade         int    `json:"guessesMade"`
	IsSolved            bool   `json:"isSolved"`
}

// handleSessionInfo reports a session's remaining candidates and history
// length.
func (s *Server) handleSessionInfo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	e, err := s.store.Get(r.Context(), id)
	if err != nil {
		http.Error(w, `{"error":"session_not_found"}`, http.StatusNotFound)
		return
	}
	e.Lock()
	cand, guesses := e.Sess.Status()
	solved := e.Sess.Solved()
	e.Unlock()
	_ = json.NewEncoder(w).Encode(sessionInfoRes{
		SessionID:           id,
		CandidatesRemaining: cand,
		GuessesMade:         guesses,
		IsSolved:            solved,
	})
}

// handleSessionDelete destroys a session.
func (s *Server) handleSessionDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		http.Error(w, `{"error":"session_not_found"}`, http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "session deleted"})
}

// handleHealth reports liveness and the number of active sessions.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	n, _ := s.store.Len(r.Context())
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "activeSessions": n})
}

// writeSolverErr maps engine errors onto HTTP statuses. Everything the
// engine reports is a local, recoverable condition, so it is 400 unless we
// genuinely cannot serve.
func writeSolverErr(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, solver.ErrInvalidWordLength),
		errors.Is(err, solver.ErrInvalidPatternLength),
		errors.Is(err, solver.ErrUnknownGuessWord),
		errors.Is(err, solver.ErrInvalidAlpha),
		errors.Is(err, solver.ErrInvalidTopK),
		errors.Is(err, solver.ErrEmptyCandidateSet):
		status = http.StatusBadRequest
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// ------------------------------- small util --------------------------------

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
