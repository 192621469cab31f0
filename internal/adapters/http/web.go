package web

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"relish/internal/adapters/backend"
	"relish/internal/adapters/http/middleware"
	"relish/internal/adapters/http/perf"
	"relish/internal/application/orchestrators"
	"relish/internal/application/projections"
)

// Backend is everything the site needs from the backend API.
// *backend.Client satisfies it.
type Backend interface {
	projections.Catalog
	orchestrators.ContactSubmitter
	HealthCheck(ctx context.Context) (backend.Health, error)
}

// Options configures the site server.
type Options struct {
	CSRFKey       []byte
	Secure        bool
	RateLimit     int
	SlowRequestMs int
}

// Server renders the marketing site from backend data.
type Server struct {
	backend   Backend
	collector *perf.Collector
	pages     *pageSet
	static    fs.FS
}

// NewServer parses the embedded templates and binds them to b.
// PRE: b is non-nil; collector may be nil
// POST: returns a Server ready to serve, or an error if a template fails to parse
func NewServer(b Backend, collector *perf.Collector) (*Server, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	return &Server{backend: b, collector: collector, pages: pages, static: static}, nil
}

// Routes returns the bare route table with no middleware.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(s.static)))
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /perf", s.handlePerf)

	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /facilities", s.handleFacilities)
	mux.HandleFunc("GET /sports", s.handleSports)
	mux.HandleFunc("GET /sports/{sportId}", s.handleSportDetail)
	mux.HandleFunc("GET /about", s.handleAbout)
	mux.HandleFunc("GET /contact", s.handleContact)
	mux.HandleFunc("POST /contact", s.handleContactSubmit)

	mux.HandleFunc("/", s.handleNotFound)
	return mux
}

// Handler returns the route table wrapped in the full middleware chain.
// The rate limiter's sweeper stops when ctx is cancelled.
func (s *Server) Handler(ctx context.Context, opts Options) http.Handler {
	rate := opts.RateLimit
	if rate <= 0 {
		rate = 20
	}
	limiter := middleware.NewRateLimiter(ctx, rate, time.Second)

	// Recoverer -> RequestID -> RateLimit -> SecurityHeaders -> CSRF -> Timing -> mux
	// CSRF hands a copy of the request downstream, so Timing must sit inside
	// it to see the pattern the mux matched.
	return middleware.Chain(s.Routes(),
		middleware.Timing(s.collector, opts.SlowRequestMs),
		middleware.CSRF(opts.CSRFKey, opts.Secure),
		middleware.SecurityHeaders,
		middleware.RateLimit(limiter),
		chimw.RequestID,
		chimw.Recoverer,
	)
}

// CSRFKey decodes a hex-encoded 32-byte key. With an empty hexKey a random
// key is generated unless production is true.
// PRE: none
// POST: returns a 32-byte key or an error
func CSRFKey(hexKey string, production bool) ([]byte, error) {
	if hexKey != "" {
		key, err := hex.DecodeString(hexKey)
		if err != nil || len(key) != 32 {
			return nil, errors.New("RELISH_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key, nil
	}
	if production {
		return nil, errors.New("RELISH_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	slog.Warn("csrf_key_random", "hint", "set RELISH_CSRF_KEY so form tokens survive restarts")
	return key, nil
}
