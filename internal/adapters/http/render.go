package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Page templates, each parsed together with the layout and partials.
const (
	pageHome        = "home"
	pageFacilities  = "facilities"
	pageSports      = "sports"
	pageSportDetail = "sport_detail"
	pageAbout       = "about"
	pageContact     = "contact"
	pageNotFound    = "not_found"
)

var pageNames = []string{
	pageHome, pageFacilities, pageSports, pageSportDetail, pageAbout, pageContact, pageNotFound,
}

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set).
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// baseFuncs are replaced per request by requestFuncs; they exist so the
// templates parse.
var baseFuncs = template.FuncMap{
	"csrfField":      func() template.HTML { return "" },
	"isActive":       func(string) bool { return false },
	"renderMarkdown": renderMarkdown,
	"currentYear":    func() int { return time.Now().Year() },
	"lower":          strings.ToLower,
	"navLinks":       func() []navLink { return siteNav },
	"cta": func(heading, body, label string) ctaBlock {
		return ctaBlock{Heading: heading, Body: body, Label: label}
	},
}

type navLink struct {
	Name string
	Href string
}

var siteNav = []navLink{
	{Name: "Home", Href: "/"},
	{Name: "Facilities", Href: "/facilities"},
	{Name: "Sports", Href: "/sports"},
	{Name: "About", Href: "/about"},
	{Name: "Contact", Href: "/contact"},
}

// ctaBlock fills the closing call-to-action banner.
type ctaBlock struct {
	Heading string
	Body    string
	Label   string
}

func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

func requestFuncs(r *http.Request) template.FuncMap {
	return template.FuncMap{
		"csrfField": func() template.HTML { return csrf.TemplateField(r) },
		"isActive":  func(href string) bool { return r.URL.Path == href },
	}
}

type pageSet struct {
	byName map[string]*template.Template
}

func parsePages() (*pageSet, error) {
	ps := &pageSet{byName: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		tpl, err := template.New(name).Funcs(baseFuncs).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/partials/*.html",
			"templates/pages/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		ps.byName[name] = tpl
	}
	return ps, nil
}

// renderMode selects how much of a page a request gets.
type renderMode int

const (
	// modeShell is the layout with a loading indicator in place of the content.
	modeShell renderMode = iota
	// modeFragment is the loaded content alone, requested by app.js.
	modeFragment
	// modeFull is the layout with loaded content, for clients without JavaScript.
	modeFull
)

func renderModeOf(r *http.Request) renderMode {
	q := r.URL.Query()
	switch {
	case q.Get("fragment") == "1":
		return modeFragment
	case q.Get("full") == "1":
		return modeFull
	default:
		return modeShell
	}
}

// pageView is the data every page template receives. Loading means the whole
// content is still to come; Deferred means the content is shown but one
// section of it still loads from FragmentURL.
type pageView struct {
	Title       string
	Loading     bool
	Deferred    bool
	FragmentURL string
	FullURL     string
	Data        any
}

func variantURL(r *http.Request, key string) string {
	q := url.Values{}
	q.Set(key, "1")
	return r.URL.Path + "?" + q.Encode()
}

func newPageView(r *http.Request, title string, loading bool, data any) pageView {
	return pageView{
		Title:       title,
		Loading:     loading,
		FragmentURL: variantURL(r, "fragment"),
		FullURL:     variantURL(r, "full"),
		Data:        data,
	}
}

// Entry templates a page can be executed from.
const (
	entryLayout    = "layout"
	entryContent   = "content"
	entryLocations = "locations"
)

// renderTemplate executes entry of the named page into a buffer and writes
// it with status.
func (s *Server) renderTemplate(w http.ResponseWriter, r *http.Request, page string, status int, entry string, view pageView) {
	base, ok := s.pages.byName[page]
	if !ok {
		internalError(w, fmt.Errorf("unknown page %q", page))
		return
	}
	tpl, err := base.Clone()
	if err != nil {
		internalError(w, err)
		return
	}
	tpl.Funcs(requestFuncs(r))

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, entry, view); err != nil {
		internalError(w, fmt.Errorf("render %s: %w", page, err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// internalError logs the real error and returns a generic message to the client.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
