package domain

import "time"

// Blog is a post on the public site. Tags keep insertion order and never
// contain duplicates; Views never goes negative.
type Blog struct {
	ID        string    `json:"_id,omitempty"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Image     Image     `json:"image"`
	Views     int       `json:"views"`
	Published bool      `json:"published"`
	Date      time.Time `json:"date,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

var BlogCategories = []string{
	"Spiritual", "Travel Guide", "Food & Culture", "Travel Tips",
	"Exploration", "Culture",
}

const DefaultBlogCategory = "Travel Guide"
