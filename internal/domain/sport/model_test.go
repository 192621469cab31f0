package sport_test

import (
	"testing"

	"relish/internal/domain/sport"
)

// TestFindByID tests lookup of a sport by its identifier.
func TestFindByID(t *testing.T) {
	sports := []sport.Sport{
		{ID: "cricket", Name: "Cricket"},
		{ID: "football", Name: "Football"},
	}

	tests := []struct {
		name      string
		id        string
		wantFound bool
		wantName  string
	}{
		{name: "present", id: "football", wantFound: true, wantName: "Football"},
		{name: "absent", id: "kabaddi", wantFound: false},
		{name: "empty id", id: "", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := sport.FindByID(sports, tt.id)
			if ok != tt.wantFound {
				t.Fatalf("FindByID(%q) found = %v, want %v", tt.id, ok, tt.wantFound)
			}
			if got.Name != tt.wantName {
				t.Errorf("FindByID(%q) name = %q, want %q", tt.id, got.Name, tt.wantName)
			}
		})
	}
}

// TestSport_CoachingLabel tests the availability label.
func TestSport_CoachingLabel(t *testing.T) {
	if got := (sport.Sport{CoachingAvailable: true}).CoachingLabel(); got != "Coaching Available" {
		t.Errorf("CoachingLabel() = %q, want %q", got, "Coaching Available")
	}
	if got := (sport.Sport{}).CoachingLabel(); got != "Self Practice" {
		t.Errorf("CoachingLabel() = %q, want %q", got, "Self Practice")
	}
}
