package projections

import (
	"context"
	"sync/atomic"

	"relish/internal/domain/branch"
	"relish/internal/domain/coach"
	"relish/internal/domain/facility"
	"relish/internal/domain/sport"
)

// mockCatalog serves fixed collections and counts calls.
// A non-nil err makes every method fail.
type mockCatalog struct {
	sports     []sport.Sport
	facilities []facility.Facility
	coaches    []coach.Coach
	branches   []branch.Branch
	err        error

	calls atomic.Int32
}

// GetSports returns the seeded sports.
func (m *mockCatalog) GetSports(_ context.Context) ([]sport.Sport, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	return m.sports, nil
}

// GetFacilities returns the seeded facilities.
func (m *mockCatalog) GetFacilities(_ context.Context) ([]facility.Facility, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	return m.facilities, nil
}

// GetCoaches returns the seeded coaches.
func (m *mockCatalog) GetCoaches(_ context.Context) ([]coach.Coach, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	return m.coaches, nil
}

// GetBranches returns the seeded branches.
func (m *mockCatalog) GetBranches(_ context.Context) ([]branch.Branch, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	return m.branches, nil
}

var _ Catalog = (*mockCatalog)(nil)

func sampleSports() []sport.Sport {
	return []sport.Sport{
		{ID: "cricket", Name: "Cricket", Description: "Bat and ball.", CoachingAvailable: true, Facilities: []string{"Nets", "Bowling Machine", "Turf", "Pavilion"}},
		{ID: "football", Name: "Football", Description: "The beautiful game.", CoachingAvailable: true, Facilities: []string{"Turf"}},
		{ID: "tennis", Name: "Tennis", Description: "Hard courts.", Facilities: []string{"Courts", "Lights"}},
		{ID: "pickleball", Name: "Pickleball", Description: "Paddles.", Facilities: nil},
	}
}
