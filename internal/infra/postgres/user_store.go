package postgres

import (
	"context"
	"errors"

	"quizgame/internal/domain"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const userColumns = `id, first_name, last_name, date_of_birth, email, password`

// UserStore persists registered users.
type UserStore struct {
	pool *pgxpool.Pool
}

func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

func (s *UserStore) InsertUser(ctx context.Context, user domain.User) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (first_name, last_name, date_of_birth, email, password) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		user.FirstName, user.LastName, user.DateOfBirth, user.Email, user.Password).Scan(&id)
	if err != nil {
		return 0, &domain.StorageError{Op: "insert user", Err: err}
	}
	return id, nil
}

func (s *UserStore) GetUser(ctx context.Context, id int64) (domain.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
	return scanUser(row, "get user")
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email)
	return scanUser(row, "find user")
}

func (s *UserStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, &domain.StorageError{Op: "list users", Err: err}
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows, "list users")
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "list users", Err: err}
	}
	return users, nil
}

func (s *UserStore) DeleteUser(ctx context.Context, id int64) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id); err != nil {
		return &domain.StorageError{Op: "delete user", Err: err}
	}
	return nil
}

func scanUser(row pgx.Row, op string) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.DateOfBirth, &u.Email, &u.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, &domain.StorageError{Op: op, Err: err}
	}
	return u, nil
}
