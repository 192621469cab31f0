// Package api serves the Relish backend REST surface over the SQLite stores.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"relish/internal/adapters/backend"
	"relish/internal/adapters/email"
	"relish/internal/adapters/http/middleware"
	"relish/internal/adapters/http/perf"
	branchStore "relish/internal/adapters/storage/branch"
	coachStore "relish/internal/adapters/storage/coach"
	contactStore "relish/internal/adapters/storage/contact"
	facilityStore "relish/internal/adapters/storage/facility"
	sportStore "relish/internal/adapters/storage/sport"
	"relish/internal/application/orchestrators"
	"relish/internal/domain/contact"
)

// ServiceName is reported by GET /api/health.
const ServiceName = "Relish Sports API"

// Stores holds all storage dependencies.
type Stores struct {
	SportStore    sportStore.Store
	FacilityStore facilityStore.Store
	CoachStore    coachStore.Store
	BranchStore   branchStore.Store
	ContactStore  contactStore.Store
}

// Deps holds everything the API needs.
type Deps struct {
	Stores    Stores
	Sender    email.Sender // optional
	Inbox     string
	Collector *perf.Collector // optional
}

// Server answers the backend REST routes.
type Server struct {
	deps Deps
	now  func() time.Time
}

// NewServer creates a Server over deps.
// PRE: every store in deps.Stores is non-nil
// POST: returns a Server; call Routes or Handler to serve it
func NewServer(deps Deps) *Server {
	return &Server{deps: deps, now: time.Now}
}

// Routes returns the bare route table with no middleware.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+backend.PathHealth, s.handleHealth)
	mux.HandleFunc("GET "+backend.PathSports, listHandler("sports", s.deps.Stores.SportStore.List))
	mux.HandleFunc("GET "+backend.PathFacilities, listHandler("facilities", s.deps.Stores.FacilityStore.List))
	mux.HandleFunc("GET "+backend.PathCoaches, listHandler("coaches", s.deps.Stores.CoachStore.List))
	mux.HandleFunc("GET "+backend.PathBranches, listHandler("branches", s.deps.Stores.BranchStore.List))
	mux.HandleFunc("POST "+backend.PathContact, s.handleSubmitContact)
	mux.HandleFunc("GET "+backend.PathContactForms, listHandler("contact_forms", s.deps.Stores.ContactStore.List))
	mux.HandleFunc("GET /api/perf", s.handlePerf)
	return mux
}

// Options configures the API middleware.
type Options struct {
	RateLimit     int
	SlowRequestMs int
	// TrustedClients skip the rate limit. The site reaches the API from a
	// single address on behalf of all its visitors, so it belongs here.
	TrustedClients []string
}

// Handler returns the route table wrapped in the API middleware chain.
// The rate limiter's sweeper stops when ctx is cancelled.
func (s *Server) Handler(ctx context.Context, opts Options) http.Handler {
	rate := opts.RateLimit
	if rate <= 0 {
		rate = 20
	}
	limiter := middleware.NewRateLimiter(ctx, rate, time.Second)
	limiter.Trust(opts.TrustedClients...)

	// Recoverer -> RequestID -> CORS -> Timing -> RateLimit -> SecurityHeaders -> mux
	return middleware.Chain(s.Routes(),
		middleware.SecurityHeaders,
		middleware.RateLimit(limiter),
		middleware.Timing(s.deps.Collector, opts.SlowRequestMs),
		middleware.CORS,
		chimw.RequestID,
		chimw.Recoverer,
	)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, backend.Health{Status: "healthy", Service: ServiceName})
}

// listHandler serves one store listing as a JSON array.
func listHandler[T any](name string, list func(ctx context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := list(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}
		if items == nil {
			items = []T{}
		}
		slog.Debug("list_served", "resource", name, "count", len(items))
		writeJSON(w, http.StatusOK, items)
	}
}

func (s *Server) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	var input contact.Submission
	if err := strictDecode(w, r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ack, err := orchestrators.ExecuteSubmitContact(r.Context(), input, orchestrators.SubmitContactDeps{
		ContactStore: s.deps.Stores.ContactStore,
		Sender:       s.deps.Sender,
		Inbox:        s.deps.Inbox,
		GenerateID:   generateID,
		Now:          s.now,
	})
	if err != nil {
		if contact.IsValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ack)
}

const maxBodyBytes = 64 << 10

// handlePerf returns the timing snapshot. Optional query parameters:
// window (a Go duration) and top (a positive integer).
func (s *Server) handlePerf(w http.ResponseWriter, r *http.Request) {
	if s.deps.Collector == nil {
		writeError(w, http.StatusNotFound, "performance collection is disabled")
		return
	}
	window, topN, err := perf.ParseQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.deps.Collector.Snapshot(s.now().Add(-window), topN))
}

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// errorResponse mirrors the {"detail": ...} shape of the original backend.
type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode_failed", "error", err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// internalError logs the real error and returns a generic message to the client.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	writeError(w, http.StatusInternalServerError, "internal server error")
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
// Bodies over maxBodyBytes are rejected.
func strictDecode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
