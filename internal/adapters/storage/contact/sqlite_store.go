package contact

import (
	"context"
	"fmt"
	"time"

	"relish/internal/adapters/storage"
	domain "relish/internal/domain/contact"
)

// timeLayout is fixed-width so submitted_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save inserts a submission. Submissions are immutable; a duplicate ID is an error.
// PRE: r.ID is non-empty; r.Submission has been validated
// POST: Record is persisted
func (s *SQLiteStore) Save(ctx context.Context, r domain.Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_form (id, name, email, phone, subject, message, submitted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.Email, r.Phone, r.Subject, r.Message, r.SubmittedAt.UTC().Format(timeLayout))
	return err
}

// List returns every submission, oldest first.
// POST: Returns a non-nil slice
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, phone, subject, message, submitted_at
		 FROM contact_form ORDER BY submitted_at, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.Record{}
	for rows.Next() {
		var (
			r           domain.Record
			submittedAt string
		)
		if err := rows.Scan(&r.ID, &r.Name, &r.Email, &r.Phone, &r.Subject, &r.Message, &submittedAt); err != nil {
			return nil, err
		}
		if r.SubmittedAt, err = time.Parse(timeLayout, submittedAt); err != nil {
			return nil, fmt.Errorf("contact %s: parse submitted_at: %w", r.ID, err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
