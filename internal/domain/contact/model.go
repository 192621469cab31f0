package contact

import (
	"errors"
	"strings"
	"time"
)

// Subject constants offered by the contact form.
const (
	SubjectGeneralInquiry   = "General Inquiry"
	SubjectFacilityBooking  = "Facility Booking"
	SubjectCoachingPrograms = "Coaching Programs"
	SubjectMembership       = "Membership"
	SubjectEventHosting     = "Event Hosting"
	SubjectFeedback         = "Feedback"
)

// Subjects lists the valid subjects in display order.
var Subjects = []string{
	SubjectGeneralInquiry,
	SubjectFacilityBooking,
	SubjectCoachingPrograms,
	SubjectMembership,
	SubjectEventHosting,
	SubjectFeedback,
}

// Domain errors
var (
	ErrEmptyName      = errors.New("name is required")
	ErrEmptyEmail     = errors.New("email is required")
	ErrInvalidEmail   = errors.New("email must contain '@'")
	ErrEmptyMessage   = errors.New("message is required")
	ErrInvalidSubject = errors.New("subject must be one of the listed options")
)

var validationErrors = []error{ErrEmptyName, ErrEmptyEmail, ErrInvalidEmail, ErrEmptyMessage, ErrInvalidSubject}

// IsValidationError reports whether err is, or wraps, one of the validation errors above.
func IsValidationError(err error) bool {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

// Submission is a contact form payload as posted to POST /api/contact.
// Phone is optional.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate checks the fields the backend requires.
// PRE: Submission struct is populated
// POST: Returns nil if valid, the first failing domain error otherwise
func (s *Submission) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(s.Email) == "" {
		return ErrEmptyEmail
	}
	if !strings.Contains(s.Email, "@") {
		return ErrInvalidEmail
	}
	if !IsValidSubject(s.Subject) {
		return ErrInvalidSubject
	}
	if strings.TrimSpace(s.Message) == "" {
		return ErrEmptyMessage
	}
	return nil
}

// IsValidSubject reports whether subject is one of Subjects.
func IsValidSubject(subject string) bool {
	for _, v := range Subjects {
		if v == subject {
			return true
		}
	}
	return false
}

// Record is a stored submission, as returned by GET /api/contact-forms.
type Record struct {
	ID string `json:"id"`
	Submission
	SubmittedAt time.Time `json:"submitted_at"`
}

// Ack is the backend's acknowledgement of a submission.
type Ack struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
