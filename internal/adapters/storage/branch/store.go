package branch

import (
	"context"

	domain "relish/internal/domain/branch"
)

// Store persists Branch state.
type Store interface {
	Save(ctx context.Context, value domain.Branch) error
	List(ctx context.Context) ([]domain.Branch, error)
}
