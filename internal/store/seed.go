package store

import (
	"time"

	"avantika_admin/internal/domain"
)

// NewSeeded returns a store pre-filled with the agency's demo content.
// The seed is a cold-start fallback only: the first successful fetch from
// the backend replaces each collection wholesale, never merges.
func NewSeeded() *Store {
	s := New()
	s.ReplacePlaces(seedPlaces())
	s.ReplacePackages(seedPackages())
	s.ReplaceBlogs(seedBlogs())
	s.SetSettings(seedSettings())
	return s
}

func seedSettings() domain.SiteSettings {
	return domain.SiteSettings{
		Name:        "Avantika Travels",
		Tagline:     "Discover the Divine Beauty of Madhya Pradesh",
		Description: "Pilgrimages to Mahakal Mandir and tours across Ujjain, Indore, and Dewas.",
		Contact: domain.ContactInfo{
			Email:        "info@avanikatravels.com",
			Phone:        "+91 98765 43210",
			Address:      "123, Mahakal Road, Near Mahakal Mandir, Ujjain, MP - 456001",
			Location:     "Ujjain, Madhya Pradesh, India",
			WorkingHours: "Mon - Sat: 9:00 AM - 7:00 PM",
		},
		Social: domain.SocialLinks{
			Facebook:  "https://facebook.com/avanikatravels",
			Instagram: "https://instagram.com/avanikatravels",
		},
		Theme: domain.ThemeColors{Primary: "#db2777", Secondary: "#111111"},
	}
}

func seedPlaces() []domain.Place {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Place{
		{
			ID: "seed-ujjain", Title: "Ujjain", Category: "Religious",
			Location: "Madhya Pradesh",
			Description: "One of the seven sacred cities of India and home to the " +
				"Mahakaleshwar Jyotirlinga.",
			Price: 499, EntryFee: 0, Rating: 4.9, Visitors: 125000, Trips: 45,
			Cleanliness: 8, IsActive: true, CreatedAt: now,
		},
		{
			ID: "seed-indore", Title: "Indore", Category: "City",
			Location: "Madhya Pradesh",
			Description: "The commercial capital, known for its cleanliness, food " +
				"culture, and historical landmarks.",
			Price: 399, EntryFee: 0, Rating: 4.7, Visitors: 98000, Trips: 32,
			Cleanliness: 10, IsActive: true, CreatedAt: now,
		},
		{
			ID: "seed-dewas", Title: "Dewas", Category: "Temple",
			Location: "Madhya Pradesh",
			Description: "Famous for the hilltop Tekri temples and a peaceful " +
				"atmosphere.",
			Price: 299, EntryFee: 0, Rating: 4.5, Visitors: 41000, Trips: 21,
			Cleanliness: 7, IsActive: true, CreatedAt: now,
		},
	}
}

func seedPackages() []domain.TourPackage {
	return []domain.TourPackage{
		{
			ID: "seed-mahakal", Name: "Mahakal Divine Darshan", Slug: "mahakal-divine-darshan",
			Duration: "2 Days", Location: "Ujjain",
			Price: 4999, OriginalPrice: 5999, Discount: 20, Rating: 4.98, Reviews: 156,
			Description: "Spiritual journey to the sacred Mahakaleshwar Temple with " +
				"guided visits and a Bhasma Aarti pass.",
			Includes: []string{"Hotel Stay", "All Meals", "Temple Guide", "Bhasma Aarti Pass"},
			Itinerary: []domain.ItineraryDay{
				{Day: 1, Title: "Arrival & Temple Visit", Activities: []string{"Arrival in Ujjain", "Check-in", "Evening Aarti"}},
				{Day: 2, Title: "Bhasma Aarti & Departure", Activities: []string{"Early morning Bhasma Aarti", "Ram Ghat", "Departure"}},
			},
		},
		{
			ID: "seed-heritage", Name: "MP Heritage Circuit", Slug: "mp-heritage-circuit",
			Duration: "5 Days", Location: "Ujjain, Indore, Dewas",
			Price: 12999, OriginalPrice: 15999, Discount: 19, Rating: 4.95, Reviews: 89,
			Description: "Three cities, ancient temples, historic palaces, and the " +
				"local food culture.",
			Includes: []string{"Hotel Stay", "All Meals", "AC Transport", "Guide"},
			Itinerary: []domain.ItineraryDay{
				{Day: 1, Title: "Ujjain Arrival", Activities: []string{"Arrival", "Mahakal Temple", "Ram Ghat Aarti"}},
				{Day: 2, Title: "Ujjain Exploration", Activities: []string{"Kal Bhairav Temple", "Vedh Shala"}},
				{Day: 3, Title: "Travel to Indore", Activities: []string{"Rajwada Palace", "Sarafa Bazaar"}},
				{Day: 4, Title: "Indore & Dewas", Activities: []string{"Patalpani Waterfall", "Tekri Temple"}},
				{Day: 5, Title: "Departure", Activities: []string{"Morning puja", "Departure"}},
			},
		},
	}
}

func seedBlogs() []domain.Blog {
	return []domain.Blog{
		{
			ID: "seed-bhasma", Title: "The Mystical Bhasma Aarti of Mahakaleshwar",
			Author: "Pandit Ramesh Sharma", Category: "Spiritual",
			Tags: []string{"ujjain", "mahakal", "ritual"},
			Content: "The Bhasma Aarti is one of the most sacred rituals performed " +
				"at the Mahakaleshwar Temple, starting around 4 AM each morning.",
			Views: 1204, Published: true,
			Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "seed-indore-food", Title: "Indore Street Food Trail",
			Author: "Chef Vikram Singh", Category: "Food & Culture",
			Tags: []string{"indore", "food"},
			Content: "Sarafa Bazaar comes alive after midnight; Chappan Dukan serves " +
				"the poha and jalebi that made the city legendary.",
			Views: 860, Published: true,
			Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}
