package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"quizgame/internal/domain"
)

func TestResultStoreStampsAndOrders(t *testing.T) {
	ctx := context.Background()
	now := time.UnixMilli(1_000)
	store := NewResultStoreWithClock(func() time.Time { return now })

	first, err := store.InsertResult(ctx, 1, 2, 3)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if first.Timestamp != 1_000 {
		t.Fatalf("expected store clock timestamp, got %d", first.Timestamp)
	}
	now = time.UnixMilli(2_000)
	_, _ = store.InsertResult(ctx, 2, 5, 5)

	results, err := store.ListResults(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(results) != 2 || results[0].UserID != 2 || results[1].UserID != 1 {
		t.Fatalf("expected newest first, got %+v", results)
	}

	if err := store.DeleteResultsForUser(ctx, 2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	results, _ = store.ListResults(ctx)
	if len(results) != 1 || results[0].UserID != 1 {
		t.Fatalf("expected only user 1 results, got %+v", results)
	}
}

func TestUserStore(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore()

	id, err := store.InsertUser(ctx, domain.User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	user, err := store.FindByEmail(ctx, "ada@example.com")
	if err != nil || user.ID != id {
		t.Fatalf("find by email: %+v %v", user, err)
	}
	if err := store.DeleteUser(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.GetUser(ctx, id); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
