package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"quizgame/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// UserRepository persists registered users.
type UserRepository interface {
	InsertUser(ctx context.Context, user domain.User) (int64, error)
	GetUser(ctx context.Context, id int64) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// ResultRepository is the full result store used outside of a quiz.
type ResultRepository interface {
	ResultWriter
	ListResults(ctx context.Context) ([]domain.Result, error)
	DeleteResultsForUser(ctx context.Context, userID int64) error
}

// Registration carries the fields collected at sign-up.
type Registration struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// AccountService covers users and their result history.
type AccountService struct {
	users   UserRepository
	results ResultRepository
	cost    int
}

func NewAccountService(users UserRepository, results ResultRepository) *AccountService {
	return &AccountService{users: users, results: results, cost: bcrypt.DefaultCost}
}

// NewAccountServiceWithCost lets tests use a cheap bcrypt cost.
func NewAccountServiceWithCost(users UserRepository, results ResultRepository, cost int) *AccountService {
	return &AccountService{users: users, results: results, cost: cost}
}

// Register creates a user unless the email is already taken.
func (s *AccountService) Register(ctx context.Context, reg Registration) (domain.User, error) {
	email := normalizeEmail(reg.Email)
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return domain.User{}, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.cost)
	if err != nil {
		return domain.User{}, err
	}
	user := domain.User{
		FirstName:   reg.FirstName,
		LastName:    reg.LastName,
		DateOfBirth: reg.DateOfBirth,
		Email:       email,
		Password:    string(hash),
	}
	id, err := s.users.InsertUser(ctx, user)
	if err != nil {
		return domain.User{}, err
	}
	user.ID = id
	slog.Info("user registered", "user", id)
	return user, nil
}

// Login returns the user whose email and password match.
func (s *AccountService) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *AccountService) User(ctx context.Context, id int64) (domain.User, error) {
	return s.users.GetUser(ctx, id)
}

// History lists every result, newest first, with the owner's name.
func (s *AccountService) History(ctx context.Context) ([]domain.HistoryEntry, error) {
	results, err := s.results.ListResults(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.FullName()
	}

	entries := make([]domain.HistoryEntry, 0, len(results))
	for _, r := range results {
		name, ok := names[r.UserID]
		if !ok {
			name = "Unknown user"
		}
		entries = append(entries, domain.HistoryEntry{Result: r, UserName: name})
	}
	return entries, nil
}

// DeleteResults removes every result the user has recorded.
func (s *AccountService) DeleteResults(ctx context.Context, userID int64) error {
	return s.results.DeleteResultsForUser(ctx, userID)
}

// DeleteUser removes the user's results and then the user.
func (s *AccountService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.results.DeleteResultsForUser(ctx, userID); err != nil {
		return err
	}
	if err := s.users.DeleteUser(ctx, userID); err != nil {
		return err
	}
	slog.Info("user deleted", "user", userID)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
