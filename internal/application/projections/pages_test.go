package projections

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"relish/internal/domain/branch"
	"relish/internal/domain/coach"
	"relish/internal/domain/facility"
)

func TestQueryGetHomePage(t *testing.T) {
	cat := &mockCatalog{
		sports:     sampleSports(),
		facilities: []facility.Facility{{ID: "f1", Name: "Main Arena"}, {ID: "f2", Name: "Indoor Hall"}},
	}

	got, err := QueryGetHomePage(context.Background(), GetHomePageDeps{Sports: cat, Facilities: cat})
	if err != nil {
		t.Fatalf("QueryGetHomePage() error = %v", err)
	}
	if len(got.Sports) != homePreviewLimit {
		t.Errorf("preview has %d sports, want %d", len(got.Sports), homePreviewLimit)
	}
	if got.Sports[0].Name != "Cricket" {
		t.Errorf("preview starts with %q, want backend order", got.Sports[0].Name)
	}
	if len(got.Facilities) != 2 {
		t.Errorf("facilities = %d, want 2", len(got.Facilities))
	}
	if n := cat.calls.Load(); n != 2 {
		t.Errorf("backend calls = %d, want 2", n)
	}
}

func TestQueryGetHomePage_FewerThanPreview(t *testing.T) {
	cat := &mockCatalog{sports: sampleSports()[:1]}
	got, err := QueryGetHomePage(context.Background(), GetHomePageDeps{Sports: cat, Facilities: cat})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Sports) != 1 {
		t.Errorf("preview = %d, want 1", len(got.Sports))
	}
}

func TestQueryGetSportsPage(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"empty", 0},
		{"one", 1},
		{"all", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := &mockCatalog{sports: sampleSports()[:tt.n]}
			got, err := QueryGetSportsPage(context.Background(), GetSportsPageDeps{Sports: cat})
			if err != nil {
				t.Fatal(err)
			}
			if len(got.Sports) != tt.n {
				t.Errorf("cards = %d, want %d", len(got.Sports), tt.n)
			}
		})
	}
}

func TestQueryGetSportDetailPage(t *testing.T) {
	cat := &mockCatalog{sports: sampleSports()}
	deps := GetSportDetailPageDeps{Sports: cat}

	tests := []struct {
		id        string
		wantFound bool
		wantName  string
	}{
		{"football", true, "Football"},
		{"tennis", true, "Tennis"},
		{"curling", false, ""},
		{"", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := QueryGetSportDetailPage(context.Background(), GetSportDetailPageQuery{SportID: tt.id}, deps)
			if err != nil {
				t.Fatal(err)
			}
			if got.Found != tt.wantFound {
				t.Errorf("Found = %v, want %v", got.Found, tt.wantFound)
			}
			if got.Sport.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Sport.Name, tt.wantName)
			}
			if got.SportID != tt.id {
				t.Errorf("SportID = %q, want %q", got.SportID, tt.id)
			}
		})
	}
}

func TestQueryGetFacilitiesPage(t *testing.T) {
	cat := &mockCatalog{
		facilities: []facility.Facility{{ID: "f1", Name: "Main Arena"}},
		branches:   []branch.Branch{{ID: "b1", Name: "Relish Sports Bangalore"}, {ID: "b2", Name: "Relish Sports Chennai"}},
	}
	got, err := QueryGetFacilitiesPage(context.Background(), GetFacilitiesPageDeps{Facilities: cat, Branches: cat})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Facilities) != 1 || len(got.Branches) != 2 {
		t.Errorf("got %d facilities, %d branches", len(got.Facilities), len(got.Branches))
	}
}

func TestQueryGetAboutAndContactPages(t *testing.T) {
	cat := &mockCatalog{
		coaches:  []coach.Coach{{ID: "c1", Name: "Ravi"}},
		branches: []branch.Branch{{ID: "b1", Name: "Relish Sports Bangalore"}},
	}
	about, err := QueryGetAboutPage(context.Background(), GetAboutPageDeps{Coaches: cat})
	if err != nil || len(about.Coaches) != 1 {
		t.Errorf("about = %+v, %v", about, err)
	}
	contact, err := QueryGetContactPage(context.Background(), GetContactPageDeps{Branches: cat})
	if err != nil || len(contact.Branches) != 1 {
		t.Errorf("contact = %+v, %v", contact, err)
	}
}

func TestPageResources_FailureRendersEmpty(t *testing.T) {
	cat := &mockCatalog{sports: sampleSports(), err: errors.New("backend down")}
	ctx := context.Background()

	home := NewHomePageResource(GetHomePageDeps{Sports: cat, Facilities: cat})
	home.Load(ctx)
	if st := home.State(); st.Loading || len(st.Data.Sports) != 0 || len(st.Data.Facilities) != 0 {
		t.Errorf("home state after failure = %+v", st)
	}

	detail := NewSportDetailPageResource(GetSportDetailPageQuery{SportID: "football"}, GetSportDetailPageDeps{Sports: cat})
	detail.Load(ctx)
	if st := detail.State(); st.Loading || st.Data.Found {
		t.Errorf("detail state after failure = %+v", st)
	}
}

func TestPageResources_Idempotent(t *testing.T) {
	cat := &mockCatalog{sports: sampleSports()}
	deps := GetSportsPageDeps{Sports: cat}

	first := NewSportsPageResource(deps)
	first.Load(context.Background())
	second := NewSportsPageResource(deps)
	second.Load(context.Background())

	if !reflect.DeepEqual(first.State(), second.State()) {
		t.Error("same backend state produced different page data")
	}
}

func TestNewAboutAndFacilitiesResources(t *testing.T) {
	cat := &mockCatalog{coaches: []coach.Coach{{ID: "c1"}}, facilities: []facility.Facility{{ID: "f1"}}}

	about := NewAboutPageResource(GetAboutPageDeps{Coaches: cat})
	if !about.State().Loading {
		t.Error("about resource not loading before Load")
	}
	about.Load(context.Background())
	if len(about.State().Data.Coaches) != 1 {
		t.Error("about resource missing coaches")
	}

	fac := NewFacilitiesPageResource(GetFacilitiesPageDeps{Facilities: cat, Branches: cat})
	fac.Load(context.Background())
	if st := fac.State(); st.Loading || len(st.Data.Facilities) != 1 {
		t.Errorf("facilities state = %+v", st)
	}

	contact := NewContactPageResource(GetContactPageDeps{Branches: cat})
	contact.Load(context.Background())
	if contact.State().Loading {
		t.Error("contact resource still loading")
	}
}
