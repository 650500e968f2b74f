package auth

import "time"

// User is an API account. Accounts are provisioned out of band; the API
// only authenticates them.
type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
}
