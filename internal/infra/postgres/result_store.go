package postgres

import (
	"context"
	"time"

	"quizgame/internal/domain"

	"github.com/jackc/pgx/v4/pgxpool"
)

// ResultStore persists quiz results in the results table. Rows are only
// inserted or deleted per user, never updated.
type ResultStore struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

func NewResultStore(pool *pgxpool.Pool) *ResultStore {
	return &ResultStore{pool: pool, now: time.Now}
}

func (s *ResultStore) InsertResult(ctx context.Context, userID int64, countCorrect, countTotal int) (domain.Result, error) {
	res := domain.Result{
		UserID:       userID,
		Timestamp:    s.now().UnixMilli(),
		CountCorrect: countCorrect,
		CountTotal:   countTotal,
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO results (user_id, "timestamp", count_questions_correct, count_total_questions) VALUES ($1, $2, $3, $4)`,
		res.UserID, res.Timestamp, res.CountCorrect, res.CountTotal)
	if err != nil {
		return domain.Result{}, &domain.StorageError{Op: "insert result", Err: err}
	}
	return res, nil
}

func (s *ResultStore) ListResults(ctx context.Context) ([]domain.Result, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT user_id, "timestamp", count_questions_correct, count_total_questions FROM results ORDER BY "timestamp" DESC`)
	if err != nil {
		return nil, &domain.StorageError{Op: "list results", Err: err}
	}
	defer rows.Close()

	var results []domain.Result
	for rows.Next() {
		var r domain.Result
		if err := rows.Scan(&r.UserID, &r.Timestamp, &r.CountCorrect, &r.CountTotal); err != nil {
			return nil, &domain.StorageError{Op: "scan result", Err: err}
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "list results", Err: err}
	}
	return results, nil
}

func (s *ResultStore) DeleteResultsForUser(ctx context.Context, userID int64) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM results WHERE user_id=$1`, userID); err != nil {
		return &domain.StorageError{Op: "delete results", Err: err}
	}
	return nil
}
