package models

import "time"

// User is a registered account. PasswordHash holds an encoded argon2id hash.
type User struct {
	ID           string
	UserName     string
	PasswordHash string
	CreatedAt    time.Time
}
