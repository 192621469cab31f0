package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"relish/internal/adapters/email"
	"relish/internal/adapters/http/api"
	"relish/internal/adapters/http/perf"
	"relish/internal/adapters/storage"
	branchStore "relish/internal/adapters/storage/branch"
	coachStore "relish/internal/adapters/storage/coach"
	contactStore "relish/internal/adapters/storage/contact"
	facilityStore "relish/internal/adapters/storage/facility"
	sportStore "relish/internal/adapters/storage/sport"
	"relish/internal/application/orchestrators"
	"relish/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.LoadAPI()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.MigrateDB(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	schema, err := storage.SchemaVersion(db)
	if err != nil {
		log.Fatalf("failed to read schema version: %v", err)
	}
	log.Printf("Database initialized successfully! (schema=%d)", schema)

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector, cfg.SlowQueryMs)

	stores := api.Stores{
		SportStore:    sportStore.NewSQLiteStore(timedDB),
		FacilityStore: facilityStore.NewSQLiteStore(timedDB),
		CoachStore:    coachStore.NewSQLiteStore(timedDB),
		BranchStore:   branchStore.NewSQLiteStore(timedDB),
		ContactStore:  contactStore.NewSQLiteStore(timedDB),
	}

	seedDeps := orchestrators.SeedCatalogDeps{
		SportStore:    stores.SportStore,
		FacilityStore: stores.FacilityStore,
		CoachStore:    stores.CoachStore,
		BranchStore:   stores.BranchStore,
		GenerateID:    func() string { return uuid.New().String() },
	}
	if err := orchestrators.ExecuteSeedCatalog(context.Background(), seedDeps); err != nil {
		log.Fatalf("failed to seed catalogue: %v", err)
	}

	sender := email.NewSender(cfg.ResendKey, cfg.ResendFrom)
	if cfg.ResendKey == "" {
		if cfg.IsProduction() {
			log.Println("WARNING: RELISH_RESEND_KEY is not set, contact notifications are DISABLED in production")
		} else {
			log.Println("Email sender configured (noop, set RELISH_RESEND_KEY for real delivery)")
		}
	} else {
		log.Println("Email sender configured (Resend)")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := api.NewServer(api.Deps{
		Stores:    stores,
		Sender:    sender,
		Inbox:     cfg.ContactInbox,
		Collector: collector,
	})
	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: server.Handler(ctx, api.Options{
			RateLimit:      cfg.RateLimit,
			SlowRequestMs:  cfg.SlowRequestMs,
			TrustedClients: cfg.TrustedClients,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		log.Printf("Relish API %s starting on %s (env=%s, trusted=%v)", version, cfg.Addr, cfg.Env, cfg.TrustedClients)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	cancel()

	shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
	defer done()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("Relish API stopped")
}
