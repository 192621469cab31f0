package projections

import (
	"context"

	"relish/internal/domain/branch"
	"relish/internal/domain/coach"
	"relish/internal/domain/facility"
	"relish/internal/domain/sport"
)

// SportSource lists sports.
type SportSource interface {
	GetSports(ctx context.Context) ([]sport.Sport, error)
}

// FacilitySource lists facilities.
type FacilitySource interface {
	GetFacilities(ctx context.Context) ([]facility.Facility, error)
}

// CoachSource lists coaches.
type CoachSource interface {
	GetCoaches(ctx context.Context) ([]coach.Coach, error)
}

// BranchSource lists branches.
type BranchSource interface {
	GetBranches(ctx context.Context) ([]branch.Branch, error)
}

// Catalog is everything the page controllers read. *backend.Client satisfies it.
type Catalog interface {
	SportSource
	FacilitySource
	CoachSource
	BranchSource
}
