package models

import "time"

// User is the persisted identity + credential record. PasswordHash must never
// leave the service layer; outward projections use a DTO without it.
type User struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    time.Time
}
