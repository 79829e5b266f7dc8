package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"quizgame/internal/app"
	"quizgame/internal/domain"
	"quizgame/internal/infra/memory"

	"golang.org/x/crypto/bcrypt"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	accounts, _ := newAccountService()

	user, err := accounts.Register(ctx, app.Registration{
		FirstName: "Ada", LastName: "Lovelace", DateOfBirth: "12/10/1815",
		Email: " Ada@Example.com ", Password: "engine",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "ada@example.com" || user.Password == "engine" {
		t.Fatalf("expected normalized email and hashed password, got %+v", user)
	}

	if _, err := accounts.Register(ctx, app.Registration{Email: "ada@example.com", Password: "x"}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected email taken, got %v", err)
	}

	got, err := accounts.Login(ctx, "ADA@example.com", "engine")
	if err != nil || got.ID != user.ID {
		t.Fatalf("login: %+v %v", got, err)
	}
	if _, err := accounts.Login(ctx, "ada@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, err := accounts.Login(ctx, "nobody@example.com", "engine"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}
}

func TestHistoryAndDeletion(t *testing.T) {
	ctx := context.Background()
	accounts, results := newAccountService()

	ada, _ := accounts.Register(ctx, app.Registration{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "p"})
	alan, _ := accounts.Register(ctx, app.Registration{FirstName: "Alan", LastName: "Turing", Email: "alan@example.com", Password: "p"})

	_, _ = results.InsertResult(ctx, ada.ID, 3, 5)
	_, _ = results.InsertResult(ctx, alan.ID, 5, 5)
	_, _ = results.InsertResult(ctx, 404, 1, 5)

	history, err := accounts.History(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(history))
	}
	if history[0].UserName != "Unknown user" || history[1].UserName != "Alan Turing" || history[2].UserName != "Ada Lovelace" {
		t.Fatalf("unexpected history order/names %+v", history)
	}

	if err := accounts.DeleteUser(ctx, alan.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if _, err := accounts.User(ctx, alan.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected user gone, got %v", err)
	}
	if err := accounts.DeleteResults(ctx, ada.ID); err != nil {
		t.Fatalf("delete results: %v", err)
	}
	history, _ = accounts.History(ctx)
	if len(history) != 1 || history[0].UserID != 404 {
		t.Fatalf("expected only orphan result left, got %+v", history)
	}
}

func newAccountService() (*app.AccountService, *memory.ResultStore) {
	tick := time.UnixMilli(0)
	results := memory.NewResultStoreWithClock(func() time.Time {
		tick = tick.Add(time.Millisecond)
		return tick
	})
	return app.NewAccountServiceWithCost(memory.NewUserStore(), results, bcrypt.MinCost), results
}
