package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"relish/internal/adapters/backend"
	"relish/internal/domain/contact"
	"relish/internal/domain/sport"
)

func newFakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	payloads := map[string]string{
		backend.PathHealth:       `{"status":"healthy","service":"Relish Sports API"}`,
		backend.PathSports:       `[{"id":"s1","name":"Cricket","description":"Nets.","image_url":"","coaching_available":true,"facilities":["Nets","Turf"]},{"id":"s2","name":"Kabaddi","description":"Mats.","image_url":"","coaching_available":false,"facilities":[]}]`,
		backend.PathFacilities:   `[{"id":"f1","name":"Professional Coaching","description":"","image_url":"","location":"Both","features":["Video"]}]`,
		backend.PathCoaches:      `[{"id":"c1","name":"Albert James","designation":"Founder","description":"","image_url":"","sports":["Cricket","Football"]}]`,
		backend.PathBranches:     `[{"id":"b1","name":"Relish Bangalore","location":"Bangalore","description":"","image_url":"","contact_info":{"address":"J.P.Nagar","phone":"+41 97454 45321"}}]`,
		backend.PathContactForms: `[{"id":"r1","name":"Asha Rao","email":"asha@example.com","phone":"","subject":"Membership","message":"hi","submitted_at":"2026-01-02T03:04:05Z"}]`,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := payloads[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// TestCommands_Table verifies every listing prints a header and its rows.
func TestCommands_Table(t *testing.T) {
	srv := newFakeBackend(t)

	tests := []struct {
		cmd  string
		want []string
	}{
		{"health", []string{"STATUS", "healthy", "Relish Sports API", srv.URL}},
		{"sports", []string{"COACHING", "Cricket", "Coaching Available", "Kabaddi", "Self Practice"}},
		{"facilities", []string{"LOCATION", "Professional Coaching", "Both"}},
		{"coaches", []string{"DESIGNATION", "Albert James", "Cricket, Football"}},
		{"branches", []string{"PHONE", "Relish Bangalore", "+41 97454 45321"}},
		{"contact-forms", []string{"SUBMITTED", "Asha Rao", "Membership", "r1"}},
	}
	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			out, err := run(t, "--backend", srv.URL, tt.cmd)
			if err != nil {
				t.Fatalf("%s: %v", tt.cmd, err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

// TestCommands_JSON verifies --json prints decodable payloads.
func TestCommands_JSON(t *testing.T) {
	srv := newFakeBackend(t)

	out, err := run(t, "--backend", srv.URL, "--json", "sports")
	if err != nil {
		t.Fatalf("sports --json: %v", err)
	}
	var sports []sport.Sport
	if err := json.Unmarshal([]byte(out), &sports); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(sports) != 2 || sports[1].Name != "Kabaddi" {
		t.Errorf("sports = %+v", sports)
	}

	out, err = run(t, "--backend", srv.URL, "--json", "contact-forms")
	if err != nil {
		t.Fatalf("contact-forms --json: %v", err)
	}
	var forms []contact.Record
	if err := json.Unmarshal([]byte(out), &forms); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(forms) != 1 || forms[0].Email != "asha@example.com" {
		t.Errorf("forms = %+v", forms)
	}
}

// TestCommands_Errors verifies failures surface as errors.
func TestCommands_Errors(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer failing.Close()

	if _, err := run(t, "--backend", failing.URL, "sports"); err == nil {
		t.Error("expected error from a 500 backend")
	}
	if _, err := run(t, "--backend", failing.URL, "sports", "extra"); err == nil {
		t.Error("expected error for unexpected argument")
	}
	if _, err := run(t, "--backend", "http://127.0.0.1:1", "--timeout", "1s", "health"); err == nil {
		t.Error("expected error for an unreachable backend")
	}
}
