package domain

import "time"

// Place is a tourist destination managed from the admin panel.
// Rating is 0-5 (one decimal), Cleanliness 0-10.
type Place struct {
	ID          string    `json:"_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	EntryFee    float64   `json:"entryFee"`
	Rating      float64   `json:"rating"`
	Visitors    int       `json:"visitors"`
	Trips       int       `json:"trips"`
	Cleanliness int       `json:"cleanliness"`
	IsActive    bool      `json:"isActive"`
	Images      []Image   `json:"images"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// PlaceCategories is an open set; the backend accepts values outside it.
var PlaceCategories = []string{
	"Hill Station", "Beach", "Temple", "Historical", "Adventure",
	"Wildlife", "City", "Cultural", "Religious",
}

const DefaultPlaceCategory = "Hill Station"
