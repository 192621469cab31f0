package contact_test

import (
	"errors"
	"fmt"
	"testing"

	"relish/internal/domain/contact"
)

func validSubmission() contact.Submission {
	return contact.Submission{
		Name:    "Asha Rao",
		Email:   "asha@example.com",
		Subject: contact.SubjectFacilityBooking,
		Message: "Two hours of turf on Saturday please.",
	}
}

// TestSubmission_Validate tests validation of contact submissions.
func TestSubmission_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *contact.Submission)
		wantErr error
	}{
		{name: "valid without phone", mutate: func(s *contact.Submission) {}},
		{name: "valid with phone", mutate: func(s *contact.Submission) { s.Phone = "+91 98450 00000" }},
		{name: "empty name", mutate: func(s *contact.Submission) { s.Name = "" }, wantErr: contact.ErrEmptyName},
		{name: "whitespace name", mutate: func(s *contact.Submission) { s.Name = "   " }, wantErr: contact.ErrEmptyName},
		{name: "empty email", mutate: func(s *contact.Submission) { s.Email = "" }, wantErr: contact.ErrEmptyEmail},
		{name: "email without at", mutate: func(s *contact.Submission) { s.Email = "asha.example.com" }, wantErr: contact.ErrInvalidEmail},
		{name: "empty subject", mutate: func(s *contact.Submission) { s.Subject = "" }, wantErr: contact.ErrInvalidSubject},
		{name: "unknown subject", mutate: func(s *contact.Submission) { s.Subject = "Complaints" }, wantErr: contact.ErrInvalidSubject},
		{name: "empty message", mutate: func(s *contact.Submission) { s.Message = "" }, wantErr: contact.ErrEmptyMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSubmission()
			tt.mutate(&s)
			err := s.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestIsValidationError tests classification of wrapped and foreign errors.
func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"bare", contact.ErrEmptyName, true},
		{"wrapped", fmt.Errorf("submit: %w", contact.ErrInvalidSubject), true},
		{"other", errors.New("disk full"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := contact.IsValidationError(tt.err); got != tt.want {
				t.Errorf("IsValidationError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
