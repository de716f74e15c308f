package domain

import "time"

type Participant struct {
	EventID  string    `json:"event_id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joined_at"`
}

// Interest marks work as a toggle: a row exists exactly while the user
// is interested in the event.
type Interest struct {
	EventID      string    `json:"event_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	InterestedAt time.Time `json:"interested_at"`
}
