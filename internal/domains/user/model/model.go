package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity entity. Email is the login field; username is the
// public handle shown on recipes.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	FirstName    string
	LastName     string
	Avatar       string // opaque URL, storage handled elsewhere
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

func (u *User) Role() string {
	if u.IsAdmin {
		return "admin"
	}
	return "user"
}
