package config

import (
	"os"
	"testing"
)

// unsetenv clears keys for the duration of the test; an empty value would
// bypass envconfig defaults.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

// TestLoadWeb_Defaults verifies defaults when nothing is set.
func TestLoadWeb_Defaults(t *testing.T) {
	unsetenv(t, "RELISH_BACKEND_URL", "RELISH_WEB_ADDR", "RELISH_ENV")

	c, err := LoadWeb()
	if err != nil {
		t.Fatalf("LoadWeb() error = %v", err)
	}
	if c.BackendURL != DefaultBackendURL {
		t.Errorf("BackendURL = %q, want %q", c.BackendURL, DefaultBackendURL)
	}
	if c.Addr != ":3000" {
		t.Errorf("Addr = %q, want %q", c.Addr, ":3000")
	}
	if c.IsProduction() {
		t.Error("default env should not be production")
	}
}

// TestLoadWeb_BackendOverride verifies the backend URL override.
func TestLoadWeb_BackendOverride(t *testing.T) {
	t.Setenv("RELISH_BACKEND_URL", "https://api.relishsports.com")
	t.Setenv("RELISH_ENV", "production")

	c, err := LoadWeb()
	if err != nil {
		t.Fatalf("LoadWeb() error = %v", err)
	}
	if c.BackendURL != "https://api.relishsports.com" {
		t.Errorf("BackendURL = %q", c.BackendURL)
	}
	if !c.IsProduction() {
		t.Error("expected production")
	}
}

// TestLoadAPI_Malformed verifies a malformed integer is rejected.
func TestLoadAPI_Malformed(t *testing.T) {
	t.Setenv("RELISH_RATE_LIMIT", "lots")
	if _, err := LoadAPI(); err == nil {
		t.Fatal("expected error for non-numeric RELISH_RATE_LIMIT")
	}
}

// TestLoadAPI_Defaults verifies backend defaults.
func TestLoadAPI_Defaults(t *testing.T) {
	unsetenv(t, "RELISH_API_ADDR", "RELISH_DB_PATH", "RELISH_RATE_LIMIT", "RELISH_TRUSTED_CLIENTS")

	c, err := LoadAPI()
	if err != nil {
		t.Fatalf("LoadAPI() error = %v", err)
	}
	if c.Addr != ":8001" || c.DBPath != "relish.db" {
		t.Errorf("got Addr=%q DBPath=%q", c.Addr, c.DBPath)
	}
	if c.RateLimit != 20 {
		t.Errorf("RateLimit = %d, want 20", c.RateLimit)
	}
	if len(c.TrustedClients) != 2 || c.TrustedClients[0] != "127.0.0.1" || c.TrustedClients[1] != "::1" {
		t.Errorf("TrustedClients = %v, want [127.0.0.1 ::1]", c.TrustedClients)
	}
}

// TestLoadAPI_Overrides verifies the returned config carries the loaded values.
func TestLoadAPI_Overrides(t *testing.T) {
	t.Setenv("RELISH_DB_PATH", "/var/lib/relish/relish.db")
	t.Setenv("RELISH_TRUSTED_CLIENTS", "10.0.0.5,10.0.0.6")

	c, err := LoadAPI()
	if err != nil {
		t.Fatalf("LoadAPI() error = %v", err)
	}
	if c.DBPath != "/var/lib/relish/relish.db" {
		t.Errorf("DBPath = %q", c.DBPath)
	}
	if len(c.TrustedClients) != 2 || c.TrustedClients[1] != "10.0.0.6" {
		t.Errorf("TrustedClients = %v", c.TrustedClients)
	}
}
