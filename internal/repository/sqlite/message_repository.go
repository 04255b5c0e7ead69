package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/adie253/chatroom-backend/internal/domain"
)

// MessageRepository handles database operations for the message log.
type MessageRepository struct {
	DB *sql.DB
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

// SaveMessage appends a message with the next id and the current
// unix-millisecond timestamp, unseen, and returns the persisted record.
func (r *MessageRepository) SaveMessage(ctx context.Context, sender, content string) (*domain.Message, error) {
	timestamp := time.Now().UnixMilli()

	query := `INSERT INTO messages (sender, content, timestamp, seen) VALUES (?, ?, ?, 0)`
	result, err := r.DB.ExecContext(ctx, query, sender, content, timestamp)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read inserted message id: %w", err)
	}

	return &domain.Message{
		ID:        id,
		Sender:    sender,
		Content:   content,
		Timestamp: timestamp,
		Seen:      false,
	}, nil
}

// ListMessages returns history ordered by timestamp ascending, with id as a
// tiebreak so same-millisecond appends keep insertion order. A limit <= 0
// returns the full history.
func (r *MessageRepository) ListMessages(ctx context.Context, limit int) ([]*domain.Message, error) {
	query := `SELECT id, sender, content, timestamp, seen FROM messages ORDER BY timestamp ASC, id ASC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	messages := make([]*domain.Message, 0)
	for rows.Next() {
		message := &domain.Message{}
		var seen int
		if err := rows.Scan(&message.ID, &message.Sender, &message.Content, &message.Timestamp, &seen); err != nil {
			return nil, fmt.Errorf("scan message row: %w", err)
		}
		message.Seen = seen != 0
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate message rows: %w", err)
	}

	return messages, nil
}

// ClearMessages deletes every message. There is no soft delete and no undo.
func (r *MessageRepository) ClearMessages(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM messages`); err != nil {
		return fmt.Errorf("clear messages: %w", err)
	}
	return nil
}

// MarkMessagesSeen flips seen for every currently-unseen message from sender
// and returns how many rows changed.
func (r *MessageRepository) MarkMessagesSeen(ctx context.Context, sender string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `UPDATE messages SET seen = 1 WHERE sender = ? AND seen = 0`, sender)
	if err != nil {
		return 0, fmt.Errorf("mark messages seen for %q: %w", sender, err)
	}

	changed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count seen updates for %q: %w", sender, err)
	}

	return changed, nil
}
