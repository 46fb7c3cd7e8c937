package models

// User represents a registered account.
// The password hash is persisted but never serialized to API clients.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}
