package projections

import "relish/internal/domain/sport"

const (
	// excerptRunes is the description length shown on the home page preview.
	excerptRunes = 100
	// chipLimit is the number of facility chips shown per sport card.
	chipLimit = 3
)

// SportCard is a sport plus the derived fields its card displays.
type SportCard struct {
	sport.Sport
	Excerpt        string
	Chips          []string
	MoreFacilities int
}

// NewSportCard derives card fields from s without modifying it.
// PRE: none
// POST: len(Chips) <= chipLimit; MoreFacilities = len(s.Facilities) - len(Chips)
func NewSportCard(s sport.Sport) SportCard {
	chips := s.Facilities
	if len(chips) > chipLimit {
		chips = chips[:chipLimit]
	}
	return SportCard{
		Sport:          s,
		Excerpt:        excerpt(s.Description, excerptRunes),
		Chips:          chips,
		MoreFacilities: len(s.Facilities) - len(chips),
	}
}

func newSportCards(sports []sport.Sport) []SportCard {
	cards := make([]SportCard, 0, len(sports))
	for _, s := range sports {
		cards = append(cards, NewSportCard(s))
	}
	return cards
}

// excerpt cuts text to n runes, marking the cut with "...".
func excerpt(text string, n int) string {
	r := []rune(text)
	if len(r) <= n {
		return text
	}
	return string(r[:n]) + "..."
}
