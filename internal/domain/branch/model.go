package branch

// ContactInfo holds the postal address and phone number of a branch.
type ContactInfo struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Branch is a physical Relish location.
type Branch struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Location    string      `json:"location"`
	Description string      `json:"description"`
	ImageURL    string      `json:"image_url"`
	ContactInfo ContactInfo `json:"contact_info"`
}
