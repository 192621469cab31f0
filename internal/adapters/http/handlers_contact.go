package web

import (
	"net/http"
	"strings"

	"relish/internal/application/orchestrators"
	"relish/internal/application/projections"
	"relish/internal/domain/contact"
)

// contactView is the data behind the contact page: the branch list and the
// form with its last outcome. LocationsPending marks the shell, where the
// form is ready but the branches have not been fetched.
type contactView struct {
	projections.GetContactPageResult
	Form             *orchestrators.ContactForm
	Subjects         []string
	LocationsPending bool
}

func (s *Server) loadContactPage(r *http.Request, form *orchestrators.ContactForm) contactView {
	res := projections.NewContactPageResource(projections.GetContactPageDeps{Branches: s.backend})
	res.Load(r.Context())
	return contactView{
		GetContactPageResult: res.State().Data,
		Form:                 form,
		Subjects:             contact.Subjects,
	}
}

// handleContact shows the form at once. Only "Our Locations" waits on the
// backend: the shell carries a spinner there and the fragment is that
// section alone.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	switch renderModeOf(r) {
	case modeShell:
		view := newPageView(r, "Contact Us", false, contactView{
			Form:             orchestrators.NewContactForm(),
			Subjects:         contact.Subjects,
			LocationsPending: true,
		})
		view.Deferred = true
		s.renderTemplate(w, r, pageContact, http.StatusOK, entryLayout, view)
	case modeFragment:
		data := s.loadContactPage(r, orchestrators.NewContactForm())
		s.renderTemplate(w, r, pageContact, http.StatusOK, entryLocations, newPageView(r, "Contact Us", false, data))
	default:
		data := s.loadContactPage(r, orchestrators.NewContactForm())
		s.renderTemplate(w, r, pageContact, http.StatusOK, entryLayout, newPageView(r, "Contact Us", false, data))
	}
}

// handleContactSubmit posts the form to the backend and renders the whole
// contact page with the outcome banner. A failed submission keeps the
// visitor's input and answers 502.
func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	form := orchestrators.NewContactForm()
	form.Fields = contact.Submission{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Phone:   strings.TrimSpace(r.PostFormValue("phone")),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	}
	form.Submit(r.Context(), orchestrators.ContactFormDeps{Submitter: s.backend})

	status := http.StatusOK
	if form.Status == orchestrators.StatusError {
		status = http.StatusBadGateway
	}
	data := s.loadContactPage(r, form)
	s.renderTemplate(w, r, pageContact, status, entryLayout, newPageView(r, "Contact Us", false, data))
}
