package domain

type ContactInfo struct {
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	AlternatePhone string `json:"alternatePhone,omitempty"`
	Address        string `json:"address"`
	Location       string `json:"location"`
	WorkingHours   string `json:"workingHours,omitempty"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

type ThemeColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// SiteSettings is a singleton record: loaded once, edited in place, never
// deleted.
type SiteSettings struct {
	Name        string      `json:"name"`
	Tagline     string      `json:"tagline"`
	Description string      `json:"description"`
	Contact     ContactInfo `json:"contact"`
	Social      SocialLinks `json:"social"`
	Theme       ThemeColors `json:"theme"`
	HeroImage   Image       `json:"heroImage"`
}
