package facility

// Facility is an amenity or service offered across branches.
type Facility struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Location    string   `json:"location"`
	Features    []string `json:"features"`
}
