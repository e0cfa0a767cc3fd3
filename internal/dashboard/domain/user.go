package domain

import "time"

// User is a dashboard identity. Created by the out-of-band provisioning CLI;
// the request path only ever reads it.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"` // unique, case-sensitive as stored
	PasswordHash string    `json:"-"`     // argon2id PHC encoded, never serialized
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
