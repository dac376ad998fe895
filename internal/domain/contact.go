package domain

import "time"

// Contact statuses form a closed set; the backend rejects anything else.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusResolved   = "resolved"
	StatusArchived   = "archived"
)

// Contact is a customer inquiry from the public contact form.
type Contact struct {
	ID        string    `json:"_id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

type StatusOption struct {
	Value string
	Label string
}

// StatusOptions drives status dropdowns and quick-action buttons, in
// display order.
var StatusOptions = []StatusOption{
	{Value: StatusPending, Label: "Pending"},
	{Value: StatusInProgress, Label: "In Progress"},
	{Value: StatusResolved, Label: "Resolved"},
	{Value: StatusArchived, Label: "Archived"},
}

func ValidStatus(s string) bool {
	for _, o := range StatusOptions {
		if o.Value == s {
			return true
		}
	}
	return false
}

// StatusLabel returns the display label for a status value, or the raw
// value when it is unknown.
func StatusLabel(s string) string {
	for _, o := range StatusOptions {
		if o.Value == s {
			return o.Label
		}
	}
	return s
}

// QuickActions lists the one-click status transitions offered for a
// contact: every status except the current one.
func QuickActions(current string) []StatusOption {
	out := make([]StatusOption, 0, len(StatusOptions)-1)
	for _, o := range StatusOptions {
		if o.Value != current {
			out = append(out, o)
		}
	}
	return out
}
