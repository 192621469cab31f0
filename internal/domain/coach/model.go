package coach

// Coach is a founder or coach shown on the About page.
type Coach struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Designation string   `json:"designation"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Sports      []string `json:"sports"`
}
