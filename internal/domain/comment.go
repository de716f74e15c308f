package domain

import "time"

type Comment struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	AuthorEmail string    `json:"author_email"`
	AuthorName  string    `json:"author_name"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"created_at"`
}
