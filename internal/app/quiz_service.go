package app

import (
	"context"
	"log/slog"

	"quizgame/internal/domain"
)

// SessionRepository abstracts where active quizzes live (in-memory, Redis-marked, etc).
type SessionRepository interface {
	Get(userID int64) (*Quiz, bool)
	Put(userID int64, quiz *Quiz)
	Delete(userID int64)
}

// QuestionSetRepository loads question sets (from cache/backing store).
type QuestionSetRepository interface {
	GetQuestionSet(ctx context.Context, setID string) (domain.QuestionSet, error)
}

// QuizService contains the quiz play use cases.
type QuizService struct {
	sessions SessionRepository
	sets     QuestionSetRepository
	results  ResultWriter
}

func NewQuizService(sessions SessionRepository, sets QuestionSetRepository, results ResultWriter) *QuizService {
	return &QuizService{sessions: sessions, sets: sets, results: results}
}

// Start builds a fresh quiz for the user, replacing any quiz already in progress.
func (s *QuizService) Start(ctx context.Context, userID int64, setID string) (domain.QuestionView, error) {
	set, err := s.sets.GetQuestionSet(ctx, setID)
	if err != nil {
		return domain.QuestionView{}, err
	}
	quiz, err := NewQuiz(userID, set.Questions, s.results)
	if err != nil {
		return domain.QuestionView{}, err
	}
	s.sessions.Put(userID, quiz)
	slog.Info("quiz started", "session", quiz.ID(), "user", userID, "set", setID, "questions", quiz.Total())
	return quiz.View()
}

// Current returns the question the user is on.
func (s *QuizService) Current(_ context.Context, userID int64) (domain.QuestionView, error) {
	quiz, ok := s.sessions.Get(userID)
	if !ok {
		return domain.QuestionView{}, domain.ErrSessionNotFound
	}
	return quiz.View()
}

// Submit grades the user's selections and moves on. Finishing the last
// question records the result and leaves the quiz ready to replay. If an
// earlier record failed the quiz is still complete: the selections are not
// graded, the record is retried and the outcome is marked Retried.
func (s *QuizService) Submit(ctx context.Context, userID int64, sel domain.Selections) (domain.Outcome, error) {
	quiz, ok := s.sessions.Get(userID)
	if !ok {
		return domain.Outcome{}, domain.ErrSessionNotFound
	}
	var (
		out domain.Outcome
		err error
	)
	if quiz.IsComplete() {
		out, err = quiz.RetryRecord(ctx)
	} else {
		out, err = quiz.Submit(ctx, sel)
	}
	if err != nil {
		if out.Complete {
			slog.Error("record result failed", "session", quiz.ID(), "user", userID, "retried", out.Retried, "err", err)
		}
		return out, err
	}
	if out.Complete {
		slog.Info("quiz completed", "session", quiz.ID(), "user", userID, "retried", out.Retried,
			"correct", out.Result.CountCorrect, "total", out.Result.CountTotal)
	}
	return out, nil
}

// Abandon drops the user's active quiz without recording anything.
func (s *QuizService) Abandon(_ context.Context, userID int64) {
	s.sessions.Delete(userID)
}
