// Package memory holds the fixed in-memory user set. There is no user
// registration; the set is seeded once at startup and immutable afterwards.
package memory

import (
	"github.com/adie253/chatroom-backend/internal/config"
	"github.com/adie253/chatroom-backend/internal/domain"
)

// UserRepository is a read-only, statically seeded credential store.
type UserRepository struct {
	users map[string]*domain.User
}

// NewUserRepository seeds the repository from the configured credentials.
// IDs are assigned 1..n in seed order; passwords are bcrypt-hashed here so
// plaintext never outlives startup.
func NewUserRepository(creds []config.Credential) (*UserRepository, error) {
	users := make(map[string]*domain.User, len(creds))
	for i, cred := range creds {
		user, err := domain.NewUser(int64(i+1), cred.Username, cred.Password)
		if err != nil {
			return nil, err
		}
		users[user.Username] = user
	}
	return &UserRepository{users: users}, nil
}

// GetUserByUsername retrieves a user by exact username match.
// No user found is not an application error.
func (r *UserRepository) GetUserByUsername(username string) (*domain.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return user, nil
}
