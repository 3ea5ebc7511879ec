package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/devfolio/internal/db"
)

func TestMessageSubmitTrimsAndStoresUnread(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t, &db.Message{})
	defer cleanup()

	svc := NewMessageService(gdb)
	msg, err := svc.Submit(ContactInput{
		Fullname: "  Jane Doe  ",
		Email:    " jane@example.com ",
		Message:  "  I would like to hire you.  ",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if msg.Name != "Jane Doe" || msg.Email != "jane@example.com" {
		t.Fatalf("expected trimmed fields, got %+v", msg)
	}
	if msg.IsRead {
		t.Fatal("new messages must start unread")
	}
}

func TestMessageSubmitRejectsInvalidInput(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t, &db.Message{})
	defer cleanup()

	svc := NewMessageService(gdb)
	_, err := svc.Submit(ContactInput{Fullname: "J", Email: "jane@example.com", Message: "long enough message"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	var count int64
	gdb.Model(&db.Message{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no rows, got %d", count)
	}
}

func TestMessageListNewestFirstCapped(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t, &db.Message{})
	defer cleanup()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < inboxLimit+5; i++ {
		msg := db.Message{
			Name:  fmt.Sprintf("Sender %d", i),
			Email: "s@example.com",
			Body:  "hello there",
		}
		msg.CreatedAt = base.Add(time.Duration(i) * time.Second)
		if err := gdb.Create(&msg).Error; err != nil {
			t.Fatalf("failed to seed message: %v", err)
		}
	}

	svc := NewMessageService(gdb)
	items, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(items) != inboxLimit {
		t.Fatalf("expected %d messages, got %d", inboxLimit, len(items))
	}
	if items[0].Name != fmt.Sprintf("Sender %d", inboxLimit+4) {
		t.Fatalf("expected newest message first, got %q", items[0].Name)
	}
}

func TestMessageUnreadCount(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t, &db.Message{})
	defer cleanup()

	seed := []db.Message{
		{Name: "A", Email: "a@example.com", Body: "hi", IsRead: true},
		{Name: "B", Email: "b@example.com", Body: "hi"},
		{Name: "C", Email: "c@example.com", Body: "hi"},
	}
	for i := range seed {
		if err := gdb.Create(&seed[i]).Error; err != nil {
			t.Fatalf("failed to seed message: %v", err)
		}
	}

	svc := NewMessageService(gdb)
	count, err := svc.UnreadCount()
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 unread, got %d", count)
	}
}

func TestMessageSetReadMissingID(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t, &db.Message{})
	defer cleanup()

	svc := NewMessageService(gdb)
	if _, err := svc.SetRead(404, true); !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
}

func TestMessageDeleteMissingID(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t, &db.Message{})
	defer cleanup()

	svc := NewMessageService(gdb)
	if err := svc.Delete(404); !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
}
