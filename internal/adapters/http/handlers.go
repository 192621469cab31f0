package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"relish/internal/adapters/http/perf"
	"relish/internal/application/projections"
	"relish/internal/application/view"
)

// servePage renders one page in the mode the request asks for.
// The shell is sent without touching the backend; the fragment and full
// variants load res first. statusOf, when set, picks the status from the
// loaded data.
func servePage[T any](s *Server, w http.ResponseWriter, r *http.Request, page, title string, res *view.Resource[T], statusOf func(T) int) {
	mode := renderModeOf(r)
	if mode == modeShell {
		s.renderTemplate(w, r, page, http.StatusOK, entryLayout, newPageView(r, title, true, nil))
		return
	}

	res.Load(r.Context())
	st := res.State()
	status := http.StatusOK
	if statusOf != nil {
		status = statusOf(st.Data)
	}
	entry := entryLayout
	if mode == modeFragment {
		entry = entryContent
	}
	s.renderTemplate(w, r, page, status, entry, newPageView(r, title, false, st.Data))
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	res := projections.NewHomePageResource(projections.GetHomePageDeps{
		Sports:     s.backend,
		Facilities: s.backend,
	})
	servePage(s, w, r, pageHome, "Relish Sports", res, nil)
}

func (s *Server) handleFacilities(w http.ResponseWriter, r *http.Request) {
	res := projections.NewFacilitiesPageResource(projections.GetFacilitiesPageDeps{
		Facilities: s.backend,
		Branches:   s.backend,
	})
	servePage(s, w, r, pageFacilities, "Our Facilities", res, nil)
}

func (s *Server) handleSports(w http.ResponseWriter, r *http.Request) {
	res := projections.NewSportsPageResource(projections.GetSportsPageDeps{Sports: s.backend})
	servePage(s, w, r, pageSports, "Sports We Offer", res, nil)
}

func (s *Server) handleSportDetail(w http.ResponseWriter, r *http.Request) {
	query := projections.GetSportDetailPageQuery{SportID: r.PathValue("sportId")}
	res := projections.NewSportDetailPageResource(query, projections.GetSportDetailPageDeps{Sports: s.backend})
	servePage(s, w, r, pageSportDetail, "Sport Details", res, func(d projections.GetSportDetailPageResult) int {
		if !d.Found {
			return http.StatusNotFound
		}
		return http.StatusOK
	})
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	res := projections.NewAboutPageResource(projections.GetAboutPageDeps{Coaches: s.backend})
	servePage(s, w, r, pageAbout, "About Us", res, nil)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, r, pageNotFound, http.StatusNotFound, entryLayout, newPageView(r, "Page Not Found", false, nil))
}

// healthResponse is the payload of GET /healthz.
type healthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}

// handleHealth reports the site as up and whether the backend answers.
// The status is 503 when the backend is unreachable.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Backend: "healthy"}
	status := http.StatusOK
	if _, err := s.backend.HealthCheck(r.Context()); err != nil {
		resp = healthResponse{Status: "degraded", Backend: "unreachable"}
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

// handlePerf returns the site's request timing snapshot, with the same
// window and top parameters as the API's /api/perf.
func (s *Server) handlePerf(w http.ResponseWriter, r *http.Request) {
	if s.collector == nil {
		http.Error(w, "performance collection is disabled", http.StatusNotFound)
		return
	}
	window, topN, err := perf.ParseQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, s.collector.Snapshot(time.Now().Add(-window), topN))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode_failed", "error", err.Error())
	}
}
