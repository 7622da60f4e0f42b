package models

// Contact is a named helpline entry attached to a law record
type Contact struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// Law represents one entry in the practical-laws catalog.
// The catalog is loaded once at startup and is read-only at runtime.
type Law struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content"`
	Penalty     *string   `json:"penalty,omitempty"`
	Helpline    *string   `json:"helpline,omitempty"`
	ContactList []Contact `json:"contact_list,omitempty"`
}
