package orchestrators

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"relish/internal/adapters/email"
	"relish/internal/domain/contact"
)

// AckMessage is returned to the visitor for every stored submission.
const AckMessage = "Contact form submitted successfully"

// ContactStoreForSubmit defines the store interface needed by SubmitContact.
type ContactStoreForSubmit interface {
	Save(ctx context.Context, r contact.Record) error
}

// SubmitContactDeps holds dependencies for SubmitContact.
type SubmitContactDeps struct {
	ContactStore ContactStoreForSubmit
	Sender       email.Sender // optional: nil skips the notification
	Inbox        string
	GenerateID   func() string
	Now          func() time.Time
}

// ExecuteSubmitContact validates, stores and announces a contact submission.
// PRE: deps.ContactStore, GenerateID and Now are non-nil
// POST: The record is persisted with a fresh ID; a notification was attempted.
// Validation failures return a contact domain error and store nothing.
func ExecuteSubmitContact(ctx context.Context, input contact.Submission, deps SubmitContactDeps) (contact.Ack, error) {
	if err := input.Validate(); err != nil {
		return contact.Ack{}, err
	}

	rec := contact.Record{
		ID:          deps.GenerateID(),
		Submission:  input,
		SubmittedAt: deps.Now(),
	}
	if err := deps.ContactStore.Save(ctx, rec); err != nil {
		return contact.Ack{}, fmt.Errorf("save contact %s: %w", rec.ID, err)
	}
	slog.Info("contact_event", "event", "submitted", "id", rec.ID, "subject", rec.Subject)

	if deps.Sender != nil && deps.Inbox != "" {
		notifyInbox(ctx, rec, deps)
	}
	return contact.Ack{Message: AckMessage, ID: rec.ID}, nil
}

var notificationTmpl = template.Must(template.New("notification").Parse(`<h2>New enquiry: {{.Subject}}</h2>
<p><strong>{{.Name}}</strong> &lt;{{.Email}}&gt;{{if .Phone}} · {{.Phone}}{{end}}</p>
<p>{{.Message}}</p>
<p><small>Reference {{.ID}}, received {{.SubmittedAt.Format "2006-01-02 15:04 MST"}}</small></p>
`))

// notifyInbox emails the business inbox. Failures are logged and swallowed.
func notifyInbox(ctx context.Context, rec contact.Record, deps SubmitContactDeps) {
	var body bytes.Buffer
	if err := notificationTmpl.Execute(&body, rec); err != nil {
		slog.Error("contact_notify_failed", "id", rec.ID, "error", err.Error())
		return
	}
	_, err := deps.Sender.Send(ctx, email.SendRequest{
		To:      []string{deps.Inbox},
		Subject: "New enquiry: " + rec.Subject,
		HTML:    body.String(),
		ReplyTo: rec.Email,
	})
	if err != nil {
		slog.Error("contact_notify_failed", "id", rec.ID, "error", err.Error())
	}
}
