package orchestrators

import (
	"context"
	"log/slog"

	"relish/internal/domain/contact"
)

// FormStatus is the outcome banner shown above the contact form.
type FormStatus string

// Form statuses
const (
	StatusNone    FormStatus = ""
	StatusSuccess FormStatus = "success"
	StatusError   FormStatus = "error"
)

// ContactSubmitter posts a submission to the backend. *backend.Client satisfies it.
type ContactSubmitter interface {
	SubmitContactForm(ctx context.Context, s contact.Submission) (contact.Ack, error)
}

// ContactFormDeps holds dependencies for ContactForm.Submit.
type ContactFormDeps struct {
	Submitter ContactSubmitter
}

// ContactForm is the state behind the contact page's form.
type ContactForm struct {
	Fields       contact.Submission
	IsSubmitting bool
	Status       FormStatus
}

// NewContactForm returns an empty form. No subject is preselected.
func NewContactForm() *ContactForm {
	return &ContactForm{}
}

// Submit posts the current fields.
// PRE: deps.Submitter is non-nil
// POST: IsSubmitting is false; on success Status is StatusSuccess and the fields are reset;
// on failure Status is StatusError and the fields are kept
func (f *ContactForm) Submit(ctx context.Context, deps ContactFormDeps) {
	f.IsSubmitting = true
	f.Status = StatusNone
	defer func() { f.IsSubmitting = false }()

	ack, err := deps.Submitter.SubmitContactForm(ctx, f.Fields)
	if err != nil {
		slog.Error("contact_submit_failed", "error", err.Error())
		f.Status = StatusError
		return
	}

	slog.Info("contact_submitted", "id", ack.ID)
	f.Fields = contact.Submission{}
	f.Status = StatusSuccess
}
