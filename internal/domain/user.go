package domain

import (
	"golang.org/x/crypto/bcrypt"
)

// User represents a chat participant. The user set is fixed and seeded at
// process start; there is no registration or lifecycle beyond that.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Do not expose password hash
}

// NewUser creates a user with a bcrypt-hashed password.
func NewUser(id int64, username, password string) (*User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:           id,
		Username:     username,
		PasswordHash: string(hashedPassword),
	}, nil
}

// CheckPassword compares a plaintext password with the user's hashed password.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}
