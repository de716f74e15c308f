package domain

import (
	"strings"
	"time"
)

type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName falls back to the local part of the email when the
// user never filled in a name.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}

	local, _, found := strings.Cut(u.Email, "@")
	if found {
		return local
	}

	return u.Email
}
