package contact

import (
	"context"

	domain "relish/internal/domain/contact"
)

// Store persists contact form submissions.
type Store interface {
	Save(ctx context.Context, value domain.Record) error
	List(ctx context.Context) ([]domain.Record, error)
}
