// Package backend is the single point of configuration for talking to the
// Relish REST API. Every page and tool reaches the backend through Client.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"relish/internal/domain/branch"
	"relish/internal/domain/coach"
	"relish/internal/domain/contact"
	"relish/internal/domain/facility"
	"relish/internal/domain/sport"
)

// Resource paths on the backend.
const (
	PathHealth       = "/api/health"
	PathSports       = "/api/sports"
	PathFacilities   = "/api/facilities"
	PathCoaches      = "/api/coaches"
	PathBranches     = "/api/branches"
	PathContact      = "/api/contact"
	PathContactForms = "/api/contact-forms"
)

// Health is the payload of GET /api/health.
type Health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s %s: %d %s", strings.ToLower(e.Method), e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

// Client issues JSON requests against a fixed base URL.
// There is no retry, timeout or caching; a failed request is returned as an
// error to the caller.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a Client for baseURL.
// PRE: baseURL is an absolute http(s) URL
// POST: returns a Client using http.DefaultClient
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
	}
}

// HealthCheck calls GET /api/health.
func (c *Client) HealthCheck(ctx context.Context) (Health, error) {
	var out Health
	if err := c.do(ctx, http.MethodGet, PathHealth, nil, &out); err != nil {
		return Health{}, err
	}
	return out, nil
}

// GetSports calls GET /api/sports.
func (c *Client) GetSports(ctx context.Context) ([]sport.Sport, error) {
	var out []sport.Sport
	if err := c.do(ctx, http.MethodGet, PathSports, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetFacilities calls GET /api/facilities.
func (c *Client) GetFacilities(ctx context.Context) ([]facility.Facility, error) {
	var out []facility.Facility
	if err := c.do(ctx, http.MethodGet, PathFacilities, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCoaches calls GET /api/coaches.
func (c *Client) GetCoaches(ctx context.Context) ([]coach.Coach, error) {
	var out []coach.Coach
	if err := c.do(ctx, http.MethodGet, PathCoaches, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBranches calls GET /api/branches.
func (c *Client) GetBranches(ctx context.Context) ([]branch.Branch, error) {
	var out []branch.Branch
	if err := c.do(ctx, http.MethodGet, PathBranches, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitContactForm posts a submission to POST /api/contact.
// PRE: none (the backend owns validation)
// POST: returns the backend's acknowledgement or an error
func (c *Client) SubmitContactForm(ctx context.Context, s contact.Submission) (contact.Ack, error) {
	var out contact.Ack
	if err := c.do(ctx, http.MethodPost, PathContact, s, &out); err != nil {
		return contact.Ack{}, err
	}
	return out, nil
}

// GetContactForms calls GET /api/contact-forms (administrative use).
func (c *Client) GetContactForms(ctx context.Context) ([]contact.Record, error) {
	var out []contact.Record
	if err := c.do(ctx, http.MethodGet, PathContactForms, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// do sends one JSON request and decodes a JSON response into out.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return fmt.Errorf("backend %s %s: encode: %w", strings.ToLower(method), path, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &body)
	if err != nil {
		return fmt.Errorf("backend %s %s: build request: %w", strings.ToLower(method), path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("backend %s %s: %w", strings.ToLower(method), path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backend %s %s: decode: %w", strings.ToLower(method), path, err)
	}
	return nil
}
