package service

import (
	"errors"
	"time"

	"github.com/adie253/chatroom-backend/internal/auth"
	"github.com/adie253/chatroom-backend/internal/domain"
)

// Sentinel errors; the handler maps them to HTTP status codes.
var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so responses cannot be used to enumerate users.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("missing token")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService verifies credentials against the seeded user set and issues
// signed session tokens.
type AuthService struct {
	userRepo  IUserRepository
	secretKey []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo IUserRepository, secretKey []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{userRepo: userRepo, secretKey: secretKey, tokenTTL: tokenTTL}
}

// Login authenticates a user and returns a signed session token.
func (s *AuthService) Login(username, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Username, s.secretKey, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// VerifyToken validates a presented session token.
func (s *AuthService) VerifyToken(token string) (*auth.Claims, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	claims, err := auth.ParseToken(token, s.secretKey)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
