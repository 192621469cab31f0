package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/acme/autocert"

	"relish/internal/adapters/backend"
	web "relish/internal/adapters/http"
	"relish/internal/adapters/http/perf"
	"relish/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.LoadWeb()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	csrfKey, err := web.CSRFKey(cfg.CSRFKey, cfg.IsProduction())
	if err != nil {
		log.Fatalf("invalid CSRF key: %v", err)
	}

	// No client timeout: backend calls end with the visitor's request context.
	client := backend.New(cfg.BackendURL)

	collector := perf.NewCollector(perf.DefaultRingSize)
	site, err := web.NewServer(client, collector)
	if err != nil {
		log.Fatalf("failed to parse templates: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	secure := cfg.AutocertDomain != ""
	handler := site.Handler(ctx, web.Options{
		CSRFKey:       csrfKey,
		Secure:        secure,
		RateLimit:     cfg.RateLimit,
		SlowRequestMs: cfg.SlowRequestMs,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		var err error
		if secure {
			m := &autocert.Manager{
				Prompt:     autocert.AcceptTOS,
				HostPolicy: autocert.HostWhitelist(cfg.AutocertDomain),
				Cache:      autocert.DirCache(cfg.AutocertCache),
			}
			srv.Addr = ":443"
			srv.TLSConfig = &tls.Config{GetCertificate: m.GetCertificate, MinVersion: tls.VersionTLS12}
			go func() {
				// HTTP-01 challenges and redirects to HTTPS.
				if err := http.ListenAndServe(":80", m.HTTPHandler(nil)); err != nil {
					log.Printf("acme http listener stopped: %v", err)
				}
			}()
			log.Printf("Relish site %s starting on :443 for %s (backend=%s)", version, cfg.AutocertDomain, cfg.BackendURL)
			err = srv.ListenAndServeTLS("", "")
		} else {
			log.Printf("Relish site %s starting on %s (env=%s, backend=%s)", version, cfg.Addr, cfg.Env, cfg.BackendURL)
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
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
	log.Println("Relish site stopped")
}
