package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"relish/internal/domain/branch"
	"relish/internal/domain/coach"
	"relish/internal/domain/facility"
	"relish/internal/domain/sport"
)

// SportStoreForSeed defines the store interface needed by SeedCatalog.
type SportStoreForSeed interface {
	Save(ctx context.Context, s sport.Sport) error
	Count(ctx context.Context) (int, error)
}

// FacilityStoreForSeed defines the store interface needed by SeedCatalog.
type FacilityStoreForSeed interface {
	Save(ctx context.Context, f facility.Facility) error
}

// CoachStoreForSeed defines the store interface needed by SeedCatalog.
type CoachStoreForSeed interface {
	Save(ctx context.Context, c coach.Coach) error
}

// BranchStoreForSeed defines the store interface needed by SeedCatalog.
type BranchStoreForSeed interface {
	Save(ctx context.Context, b branch.Branch) error
}

// SeedCatalogDeps holds dependencies for SeedCatalog.
type SeedCatalogDeps struct {
	SportStore    SportStoreForSeed
	FacilityStore FacilityStoreForSeed
	CoachStore    CoachStoreForSeed
	BranchStore   BranchStoreForSeed
	GenerateID    func() string
}

// ExecuteSeedCatalog stores the sample catalogue when no sports exist yet.
// PRE: all stores and GenerateID are non-nil
// POST: sports, facilities, coaches and branches are populated once; later calls are no-ops
func ExecuteSeedCatalog(ctx context.Context, deps SeedCatalogDeps) error {
	n, err := deps.SportStore.Count(ctx)
	if err != nil {
		return fmt.Errorf("count sports: %w", err)
	}
	if n > 0 {
		return nil // Already seeded
	}

	for _, s := range sampleSports {
		s.ID = deps.GenerateID()
		if err := deps.SportStore.Save(ctx, s); err != nil {
			return fmt.Errorf("seed sport %q: %w", s.Name, err)
		}
	}
	for _, f := range sampleFacilities {
		f.ID = deps.GenerateID()
		if err := deps.FacilityStore.Save(ctx, f); err != nil {
			return fmt.Errorf("seed facility %q: %w", f.Name, err)
		}
	}
	for _, c := range sampleCoaches {
		c.ID = deps.GenerateID()
		if err := deps.CoachStore.Save(ctx, c); err != nil {
			return fmt.Errorf("seed coach %q: %w", c.Name, err)
		}
	}
	for _, b := range sampleBranches {
		b.ID = deps.GenerateID()
		if err := deps.BranchStore.Save(ctx, b); err != nil {
			return fmt.Errorf("seed branch %q: %w", b.Name, err)
		}
	}

	slog.Info("seed_event", "event", "catalog_seeded",
		"sports", len(sampleSports), "facilities", len(sampleFacilities),
		"coaches", len(sampleCoaches), "branches", len(sampleBranches))
	return nil
}
