package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestRepository(t *testing.T) *MessageRepository {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "chat.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Fatalf("close test database: %v", err)
		}
	})

	return NewMessageRepository(db)
}

func TestSaveAndListMessages(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	contents := []string{"hi", "hello", "how are you"}
	for _, content := range contents {
		saved, err := repo.SaveMessage(ctx, "cherie", content)
		if err != nil {
			t.Fatalf("SaveMessage %q failed: %v", content, err)
		}
		if saved.ID == 0 {
			t.Fatal("expected assigned id")
		}
		if saved.Seen {
			t.Fatal("new message must be unseen")
		}
	}

	messages, err := repo.ListMessages(ctx, 0)
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if len(messages) != len(contents) {
		t.Fatalf("expected %d messages, got %d", len(contents), len(messages))
	}
	for i, message := range messages {
		if message.Content != contents[i] {
			t.Fatalf("messages are not in append order: got %q at %d", message.Content, i)
		}
		if i > 0 {
			if message.Timestamp < messages[i-1].Timestamp {
				t.Fatal("timestamps are not non-decreasing")
			}
			if message.ID <= messages[i-1].ID {
				t.Fatal("ids are not strictly increasing")
			}
		}
	}
}

func TestListMessagesHonorsLimit(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, content := range []string{"one", "two", "three"} {
		if _, err := repo.SaveMessage(ctx, "booboo", content); err != nil {
			t.Fatalf("SaveMessage failed: %v", err)
		}
	}

	messages, err := repo.ListMessages(ctx, 2)
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages with limit 2, got %d", len(messages))
	}
	if messages[0].Content != "one" || messages[1].Content != "two" {
		t.Fatalf("limit returned wrong window: %q, %q", messages[0].Content, messages[1].Content)
	}
}

func TestMarkMessagesSeen(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := repo.SaveMessage(ctx, "cherie", "unread"); err != nil {
			t.Fatalf("SaveMessage failed: %v", err)
		}
	}
	if _, err := repo.SaveMessage(ctx, "booboo", "from the other side"); err != nil {
		t.Fatalf("SaveMessage failed: %v", err)
	}

	changed, err := repo.MarkMessagesSeen(ctx, "cherie")
	if err != nil {
		t.Fatalf("MarkMessagesSeen failed: %v", err)
	}
	if changed != 3 {
		t.Fatalf("expected 3 rows changed, got %d", changed)
	}

	// Immediately repeating the call finds nothing unseen.
	changed, err = repo.MarkMessagesSeen(ctx, "cherie")
	if err != nil {
		t.Fatalf("MarkMessagesSeen failed: %v", err)
	}
	if changed != 0 {
		t.Fatalf("expected 0 rows changed on repeat, got %d", changed)
	}

	messages, err := repo.ListMessages(ctx, 0)
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	for _, message := range messages {
		if message.Sender == "cherie" && !message.Seen {
			t.Fatalf("message %d from cherie still unseen", message.ID)
		}
		if message.Sender == "booboo" && message.Seen {
			t.Fatalf("message %d from booboo was marked seen", message.ID)
		}
	}
}

func TestClearMessages(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if _, err := repo.SaveMessage(ctx, "cherie", "soon gone"); err != nil {
		t.Fatalf("SaveMessage failed: %v", err)
	}

	if err := repo.ClearMessages(ctx); err != nil {
		t.Fatalf("ClearMessages failed: %v", err)
	}

	messages, err := repo.ListMessages(ctx, 0)
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if len(messages) != 0 {
		t.Fatalf("expected empty history after clear, got %d messages", len(messages))
	}
}
