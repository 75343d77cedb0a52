package folio

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "data", "test_folio.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStore(t *testing.T) {
	s := setupTestStore(t)
	if s == nil || s.db == nil {
		t.Fatal("store should not be nil")
	}
}

func TestSaveAndGetMessage(t *testing.T) {
	s := setupTestStore(t)

	saved, err := s.SaveMessage(Message{
		Name:     "Ada",
		Email:    "ada@example.com",
		Body:     "Hello there",
		Language: "es",
	})
	if err != nil {
		t.Fatalf("SaveMessage failed: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("expected an ID to be assigned")
	}
	if saved.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}

	got, err := s.GetMessage(saved.ID)
	if err != nil {
		t.Fatalf("GetMessage failed: %v", err)
	}
	if got.Name != "Ada" || got.Email != "ada@example.com" || got.Body != "Hello there" {
		t.Errorf("GetMessage = %+v", got)
	}
	if got.Language != "es" {
		t.Errorf("Language = %q, want es", got.Language)
	}
	if got.Read {
		t.Error("new message should be unread")
	}
	if !got.CreatedAt.Equal(saved.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, saved.CreatedAt)
	}
}

func TestGetMessageNotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.GetMessage("nonexistent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListMessagesNewestFirst(t *testing.T) {
	s := setupTestStore(t)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		if _, err := s.SaveMessage(Message{
			Name:      name,
			Email:     name + "@example.com",
			Body:      "body",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}); err != nil {
			t.Fatalf("SaveMessage failed: %v", err)
		}
	}

	got, err := s.ListMessages()
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(got))
	}
	if got[0].Name != "third" || got[2].Name != "first" {
		t.Errorf("order = %s, %s, %s", got[0].Name, got[1].Name, got[2].Name)
	}
}

func TestMarkMessageRead(t *testing.T) {
	s := setupTestStore(t)

	m, err := s.SaveMessage(Message{Name: "n", Email: "n@example.com", Body: "b"})
	if err != nil {
		t.Fatalf("SaveMessage failed: %v", err)
	}
	if n, _ := s.UnreadCount(); n != 1 {
		t.Fatalf("UnreadCount = %d, want 1", n)
	}
	if err := s.MarkMessageRead(m.ID); err != nil {
		t.Fatalf("MarkMessageRead failed: %v", err)
	}
	got, _ := s.GetMessage(m.ID)
	if !got.Read {
		t.Error("message should be read")
	}
	if n, _ := s.UnreadCount(); n != 0 {
		t.Errorf("UnreadCount = %d, want 0", n)
	}
	if err := s.MarkMessageRead("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("MarkMessageRead(missing) = %v, want ErrNotFound", err)
	}
}

func TestDeleteMessage(t *testing.T) {
	s := setupTestStore(t)

	m, _ := s.SaveMessage(Message{Name: "n", Email: "n@example.com", Body: "b"})
	if err := s.DeleteMessage(m.ID); err != nil {
		t.Fatalf("DeleteMessage failed: %v", err)
	}
	if _, err := s.GetMessage(m.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	// Deleting twice is not an error.
	if err := s.DeleteMessage(m.ID); err != nil {
		t.Errorf("second DeleteMessage failed: %v", err)
	}
}

func TestRecordView(t *testing.T) {
	s := setupTestStore(t)

	for i := 0; i < 3; i++ {
		if err := s.RecordView("tinker-town"); err != nil {
			t.Fatalf("RecordView failed: %v", err)
		}
	}
	if err := s.RecordView("promedios"); err != nil {
		t.Fatalf("RecordView failed: %v", err)
	}

	if n, err := s.Views("tinker-town"); err != nil || n != 3 {
		t.Errorf("Views(tinker-town) = %d, %v; want 3", n, err)
	}
	if n, err := s.Views("never-seen"); err != nil || n != 0 {
		t.Errorf("Views(never-seen) = %d, %v; want 0", n, err)
	}

	views, err := s.ListViews()
	if err != nil {
		t.Fatalf("ListViews failed: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 counters, got %d", len(views))
	}
	if views[0].Slug != "tinker-town" || views[0].Views != 3 {
		t.Errorf("first counter = %+v", views[0])
	}
	if views[0].LastViewed.IsZero() {
		t.Error("LastViewed should be set")
	}
}
