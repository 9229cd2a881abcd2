package models

import (
	"time"

	"github.com/google/uuid"
)

// User is synced from the identity provider (Clerk) via webhooks, or
// auto-provisioned on the first authenticated request.
type User struct {
	ID          uuid.UUID  `json:"id"`
	ClerkID     string     `json:"clerk_id"`
	Email       string     `json:"email"`
	FirstName   *string    `json:"first_name,omitempty"`
	LastName    *string    `json:"last_name,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// FullName returns the display name, falling back to the email.
func (u *User) FullName() string {
	first, last := "", ""
	if u.FirstName != nil {
		first = *u.FirstName
	}
	if u.LastName != nil {
		last = *u.LastName
	}
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	case last != "":
		return last
	default:
		return u.Email
	}
}
