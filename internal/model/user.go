package model

// User represents a registered account. The password is stored as a
// one-way bcrypt hash, never in plaintext.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
