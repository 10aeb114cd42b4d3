package entity

// User is the aggregate root for credentials.
// PasswordHash holds the bcrypt hash and never leaves the store/service layers.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
}
