package service

import (
	"context"

	"github.com/adie253/chatroom-backend/internal/auth"
	"github.com/adie253/chatroom-backend/internal/domain"
)

// --- Service Interfaces ---

// IAuthService defines the interface for authentication logic.
type IAuthService interface {
	// Login verifies credentials and issues a session token.
	Login(username, password string) (string, *domain.User, error)
	// VerifyToken validates a session token and returns its claims.
	VerifyToken(token string) (*auth.Claims, error)
}

// --- Repository Interfaces ---

// IUserRepository defines the interface for user lookup.
type IUserRepository interface {
	GetUserByUsername(username string) (*domain.User, error)
}

// IMessageRepository defines the interface for message persistence.
type IMessageRepository interface {
	// SaveMessage appends a message and returns the persisted record.
	SaveMessage(ctx context.Context, sender, content string) (*domain.Message, error)
	// ListMessages returns history in timestamp-ascending order.
	// A limit <= 0 returns the full history.
	ListMessages(ctx context.Context, limit int) ([]*domain.Message, error)
	// ClearMessages deletes every message irreversibly.
	ClearMessages(ctx context.Context) error
	// MarkMessagesSeen flips seen for every unseen message from sender and
	// returns how many rows changed.
	MarkMessagesSeen(ctx context.Context, sender string) (int64, error)
}
