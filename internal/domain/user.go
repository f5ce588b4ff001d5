package domain

import "time"

// User is an account directory record. PasswordHash is a bcrypt hash and
// must never leave the service layer.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
