// Package config loads runtime configuration for the Relish binaries from
// the environment. A .env file in the working directory, when present, is
// loaded first; real environment variables always win.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultBackendURL is the local development address of the backend API.
const DefaultBackendURL = "http://localhost:8001"

// Common holds settings shared by every binary.
type Common struct {
	Env           string `envconfig:"RELISH_ENV" default:"development"`
	BackendURL    string `envconfig:"RELISH_BACKEND_URL" default:"http://localhost:8001"`
	RateLimit     int    `envconfig:"RELISH_RATE_LIMIT" default:"20"`
	SlowRequestMs int    `envconfig:"RELISH_SLOW_REQUEST_MS" default:"200"`
	SlowQueryMs   int    `envconfig:"RELISH_SLOW_QUERY_MS" default:"50"`
}

// IsProduction reports whether RELISH_ENV is "production".
func (c Common) IsProduction() bool {
	return c.Env == "production"
}

// Web configures the site server.
type Web struct {
	Common
	Addr           string `envconfig:"RELISH_WEB_ADDR" default:":3000"`
	CSRFKey        string `envconfig:"RELISH_CSRF_KEY"`
	AutocertDomain string `envconfig:"RELISH_AUTOCERT_DOMAIN"`
	AutocertCache  string `envconfig:"RELISH_AUTOCERT_CACHE" default:"certs"`
}

// API configures the reference backend server.
type API struct {
	Common
	Addr         string `envconfig:"RELISH_API_ADDR" default:":8001"`
	DBPath       string `envconfig:"RELISH_DB_PATH" default:"relish.db"`
	ResendKey    string `envconfig:"RELISH_RESEND_KEY"`
	ResendFrom   string `envconfig:"RELISH_RESEND_FROM" default:"Relish Sports <noreply@relishsports.com>"`
	ContactInbox string `envconfig:"RELISH_CONTACT_INBOX" default:"info@relishsports.com"`
	// TrustedClients are addresses exempt from the rate limit, normally the
	// site server, whose visitors all arrive from its one address.
	TrustedClients []string `envconfig:"RELISH_TRUSTED_CLIENTS" default:"127.0.0.1,::1"`
}

// LoadWeb reads the site configuration.
// PRE: none
// POST: returns a Web config with defaults applied, or an error for malformed values
func LoadWeb() (Web, error) {
	var c Web
	err := load(&c)
	return c, err
}

// LoadAPI reads the backend configuration.
// PRE: none
// POST: returns an API config with defaults applied, or an error for malformed values
func LoadAPI() (API, error) {
	var c API
	err := load(&c)
	return c, err
}

// LoadCommon reads only the shared settings (used by relishctl).
func LoadCommon() (Common, error) {
	var c Common
	err := load(&c)
	return c, err
}

func load(cfg any) error {
	// A missing .env is normal outside development.
	_ = godotenv.Load()
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
