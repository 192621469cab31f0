package sport

// Sport is a sport offered at the facility, as returned by GET /api/sports.
type Sport struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	ImageURL          string   `json:"image_url"`
	CoachingAvailable bool     `json:"coaching_available"`
	Facilities        []string `json:"facilities"`
}

// FindByID returns the sport whose ID matches id.
// PRE: none
// POST: returns the first match and true, or the zero Sport and false
func FindByID(sports []Sport, id string) (Sport, bool) {
	for _, s := range sports {
		if s.ID == id {
			return s, true
		}
	}
	return Sport{}, false
}

// CoachingLabel is the short availability label shown on sport cards.
func (s Sport) CoachingLabel() string {
	if s.CoachingAvailable {
		return "Coaching Available"
	}
	return "Self Practice"
}
