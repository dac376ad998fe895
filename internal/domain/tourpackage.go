package domain

import "time"

type ItineraryDay struct {
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	Activities []string `json:"activities"`
}

// TourPackage is a bookable tour. Slug is unique; itinerary days run
// sequentially from 1.
type TourPackage struct {
	ID            string         `json:"_id,omitempty"`
	Name          string         `json:"name"`
	Slug          string         `json:"slug"`
	Duration      string         `json:"duration"`
	Location      string         `json:"location"`
	Price         float64        `json:"price"`
	OriginalPrice float64        `json:"originalPrice"`
	Discount      float64        `json:"discount"`
	Rating        float64        `json:"rating"`
	Reviews       int            `json:"reviews"`
	Description   string         `json:"description"`
	Includes      []string       `json:"includes"`
	Itinerary     []ItineraryDay `json:"itinerary"`
	CreatedAt     time.Time      `json:"createdAt,omitempty"`
	UpdatedAt     time.Time      `json:"updatedAt,omitempty"`
}
