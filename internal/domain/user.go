package domain

import (
	"fmt"
	"strings"
)

// User is an account known to the backend: end-user, technician or admin.
type User struct {
	ID            int
	Username      string
	FirstName     string
	LastName      string
	Email         string
	PersonalEmail string
	Role          Role
	ClientID      int
}

// DisplayName derives a human-readable name: first+last name, falling
// back to the username, then to a generic placeholder.
func (u User) DisplayName() string {
	full := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if full != "" {
		return full
	}
	if strings.TrimSpace(u.Username) != "" {
		return u.Username
	}
	return fmt.Sprintf("User %d", u.ID)
}

// ContactEmail prefers the work email over the personal one.
func (u User) ContactEmail() string {
	if u.Email != "" {
		return u.Email
	}
	return u.PersonalEmail
}
