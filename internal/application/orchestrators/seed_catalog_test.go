package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"relish/internal/domain/branch"
	"relish/internal/domain/coach"
	"relish/internal/domain/facility"
	"relish/internal/domain/sport"
)

type seedStores struct {
	sports     []sport.Sport
	facilities []facility.Facility
	coaches    []coach.Coach
	branches   []branch.Branch
	countErr   error
}

type seedSportStore struct{ s *seedStores }

func (m seedSportStore) Save(_ context.Context, v sport.Sport) error {
	m.s.sports = append(m.s.sports, v)
	return nil
}

func (m seedSportStore) Count(_ context.Context) (int, error) {
	return len(m.s.sports), m.s.countErr
}

type seedFacilityStore struct{ s *seedStores }

func (m seedFacilityStore) Save(_ context.Context, v facility.Facility) error {
	m.s.facilities = append(m.s.facilities, v)
	return nil
}

type seedCoachStore struct{ s *seedStores }

func (m seedCoachStore) Save(_ context.Context, v coach.Coach) error {
	m.s.coaches = append(m.s.coaches, v)
	return nil
}

type seedBranchStore struct{ s *seedStores }

func (m seedBranchStore) Save(_ context.Context, v branch.Branch) error {
	m.s.branches = append(m.s.branches, v)
	return nil
}

func seedDeps(s *seedStores) SeedCatalogDeps {
	n := 0
	return SeedCatalogDeps{
		SportStore:    seedSportStore{s},
		FacilityStore: seedFacilityStore{s},
		CoachStore:    seedCoachStore{s},
		BranchStore:   seedBranchStore{s},
		GenerateID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
}

func TestExecuteSeedCatalog(t *testing.T) {
	s := &seedStores{}
	if err := ExecuteSeedCatalog(context.Background(), seedDeps(s)); err != nil {
		t.Fatalf("ExecuteSeedCatalog() error = %v", err)
	}
	if len(s.sports) != 6 || len(s.facilities) != 3 || len(s.coaches) != 5 || len(s.branches) != 2 {
		t.Fatalf("seeded %d sports, %d facilities, %d coaches, %d branches",
			len(s.sports), len(s.facilities), len(s.coaches), len(s.branches))
	}

	ids := map[string]bool{}
	for _, sp := range s.sports {
		if sp.ID == "" || ids[sp.ID] {
			t.Errorf("sport %q has empty or duplicate ID %q", sp.Name, sp.ID)
		}
		ids[sp.ID] = true
	}
	if s.sports[1].Name != "Football" {
		t.Errorf("second sport = %q, want insertion order", s.sports[1].Name)
	}
}

func TestExecuteSeedCatalog_Idempotent(t *testing.T) {
	s := &seedStores{}
	deps := seedDeps(s)
	for i := 0; i < 2; i++ {
		if err := ExecuteSeedCatalog(context.Background(), deps); err != nil {
			t.Fatal(err)
		}
	}
	if len(s.sports) != 6 {
		t.Errorf("sports after two runs = %d, want 6", len(s.sports))
	}
}

func TestExecuteSeedCatalog_CountError(t *testing.T) {
	s := &seedStores{countErr: errors.New("no such table")}
	if err := ExecuteSeedCatalog(context.Background(), seedDeps(s)); err == nil {
		t.Fatal("expected error")
	}
	if len(s.facilities) != 0 {
		t.Error("seeded despite count failure")
	}
}
