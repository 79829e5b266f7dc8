package app

import (
	"context"
	"sync"

	"quizgame/internal/domain"

	"github.com/google/uuid"
)

// recordAttempts bounds how often a failed result insert is tried.
const recordAttempts = 2

// ResultWriter is the only storage capability a quiz needs.
type ResultWriter interface {
	InsertResult(ctx context.Context, userID int64, countCorrect, countTotal int) (domain.Result, error)
}

// Quiz walks one user through an ordered, fixed list of questions.
// Each question is graded once and then advanced past; once the index reaches
// the total the quiz is complete until Reset.
type Quiz struct {
	id        string
	userID    int64
	questions []domain.Question
	store     ResultWriter

	mu        sync.Mutex
	index     int
	correct   int
	graded    bool
	recording bool
}

// NewQuiz copies the questions so the sequence cannot change underneath the quiz.
func NewQuiz(userID int64, questions []domain.Question, store ResultWriter) (*Quiz, error) {
	if len(questions) == 0 {
		return nil, domain.ErrEmptyQuiz
	}
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, err
		}
	}
	qs := make([]domain.Question, len(questions))
	copy(qs, questions)
	return &Quiz{
		id:        uuid.NewString(),
		userID:    userID,
		questions: qs,
		store:     store,
	}, nil
}

func (q *Quiz) ID() string    { return q.id }
func (q *Quiz) UserID() int64 { return q.userID }
func (q *Quiz) Total() int    { return len(q.questions) }

// Index returns the 0-based position of the current question.
func (q *Quiz) Index() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.index
}

// Correct returns how many questions have been answered correctly so far.
func (q *Quiz) Correct() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.correct
}

// IsComplete reports whether every question has been advanced past.
func (q *Quiz) IsComplete() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.completeLocked()
}

// CurrentQuestion returns the question at the current index.
func (q *Quiz) CurrentQuestion() (domain.Question, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.completeLocked() {
		return domain.Question{}, q.stateErrLocked("current question", domain.ErrQuizComplete)
	}
	return q.questions[q.index], nil
}

// View renders the current question for a presentation layer.
func (q *Quiz) View() (domain.QuestionView, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.completeLocked() {
		return domain.QuestionView{}, q.stateErrLocked("view", domain.ErrQuizComplete)
	}
	return q.viewLocked(), nil
}

// Grade compares the selections against the current question and counts an
// exact match. It may be called once per question.
func (q *Quiz) Grade(sel domain.Selections) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.gradeLocked(sel)
}

// Advance moves to the next question. The current one must have been graded.
func (q *Quiz) Advance() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.advanceLocked()
}

// RecordResult stores (user, correct, total). The store stamps the time.
// Only one record per quiz may be in flight.
func (q *Quiz) RecordResult(ctx context.Context) (domain.Result, error) {
	q.mu.Lock()
	correct, total, err := q.beginRecordLocked("record result")
	q.mu.Unlock()
	if err != nil {
		return domain.Result{}, err
	}
	return q.endRecord(ctx, correct, total, false)
}

// RetryRecord records a completed pass whose earlier record failed and resets
// the quiz on success. Nothing is graded; the outcome is marked Retried.
func (q *Quiz) RetryRecord(ctx context.Context) (domain.Outcome, error) {
	q.mu.Lock()
	correct, total, err := q.beginRecordLocked("retry record")
	q.mu.Unlock()
	if err != nil {
		return domain.Outcome{}, err
	}
	out := domain.Outcome{Complete: true, Retried: true}
	res, err := q.endRecord(ctx, correct, total, true)
	if err != nil {
		return out, err
	}
	out.Result = &res
	return out, nil
}

// Reset rewinds to the first question and clears the score.
func (q *Quiz) Reset() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.resetLocked()
}

// Submit grades and advances in one step. When that finishes the pass, the
// result is recorded and the quiz is reset for replay. A failed record leaves
// the quiz complete so the caller can RetryRecord.
func (q *Quiz) Submit(ctx context.Context, sel domain.Selections) (domain.Outcome, error) {
	q.mu.Lock()
	correct, err := q.gradeLocked(sel)
	if err != nil {
		q.mu.Unlock()
		return domain.Outcome{}, err
	}
	if err := q.advanceLocked(); err != nil {
		q.mu.Unlock()
		return domain.Outcome{}, err
	}
	if !q.completeLocked() {
		next := q.viewLocked()
		q.mu.Unlock()
		return domain.Outcome{Correct: correct, Next: &next}, nil
	}
	count, total, err := q.beginRecordLocked("submit")
	q.mu.Unlock()
	if err != nil {
		return domain.Outcome{Correct: correct, Complete: true}, err
	}

	res, err := q.endRecord(ctx, count, total, true)
	if err != nil {
		return domain.Outcome{Correct: correct, Complete: true}, err
	}
	return domain.Outcome{Correct: correct, Complete: true, Result: &res}, nil
}

func (q *Quiz) beginRecordLocked(op string) (int, int, error) {
	if !q.completeLocked() {
		return 0, 0, q.stateErrLocked(op, domain.ErrQuizIncomplete)
	}
	if q.recording {
		return 0, 0, q.stateErrLocked(op, domain.ErrRecordInProgress)
	}
	q.recording = true
	return q.correct, len(q.questions), nil
}

// endRecord inserts with one retry, then clears the in-flight mark. With reset
// set, a stored result also rewinds the quiz inside the same critical section.
func (q *Quiz) endRecord(ctx context.Context, correct, total int, reset bool) (domain.Result, error) {
	var (
		res domain.Result
		err error
	)
	for attempt := 0; attempt < recordAttempts; attempt++ {
		res, err = q.store.InsertResult(ctx, q.userID, correct, total)
		if err == nil || ctx.Err() != nil {
			break
		}
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	q.recording = false
	if err == nil && reset {
		q.resetLocked()
	}
	return res, err
}

func (q *Quiz) resetLocked() {
	q.index = 0
	q.correct = 0
	q.graded = false
}

func (q *Quiz) gradeLocked(sel domain.Selections) (bool, error) {
	if q.completeLocked() {
		return false, q.stateErrLocked("grade", domain.ErrQuizComplete)
	}
	if q.graded {
		return false, q.stateErrLocked("grade", domain.ErrAlreadyGraded)
	}
	ok := q.questions[q.index].Matches(sel)
	if ok {
		q.correct++
	}
	q.graded = true
	return ok, nil
}

func (q *Quiz) advanceLocked() error {
	if q.completeLocked() {
		return q.stateErrLocked("advance", domain.ErrQuizComplete)
	}
	if !q.graded {
		return q.stateErrLocked("advance", domain.ErrNotGraded)
	}
	q.index++
	q.graded = false
	return nil
}

func (q *Quiz) completeLocked() bool {
	return q.index >= len(q.questions)
}

func (q *Quiz) viewLocked() domain.QuestionView {
	cur := q.questions[q.index]
	return domain.QuestionView{
		SessionID:   q.id,
		Number:      q.index + 1,
		Total:       len(q.questions),
		Prompt:      cur.Prompt,
		Options:     cur.Options,
		MultiSelect: cur.MultiSelect(),
	}
}

func (q *Quiz) stateErrLocked(op string, err error) error {
	return &domain.StateError{Op: op, Index: q.index, Total: len(q.questions), Err: err}
}
