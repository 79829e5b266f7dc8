package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound is returned when the user has no active quiz.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrQuestionSetNotFound indicates the question set could not be loaded.
	ErrQuestionSetNotFound = errors.New("question set not found")
	// ErrEmptyQuiz rejects a quiz without questions.
	ErrEmptyQuiz = errors.New("quiz has no questions")
	// ErrNoCorrectOption rejects a question where no option is correct.
	ErrNoCorrectOption = errors.New("question has no correct option")

	// ErrQuizComplete rejects question access, grading or advancing past the last question.
	ErrQuizComplete = errors.New("quiz is complete")
	// ErrQuizIncomplete rejects recording a result before every question is answered.
	ErrQuizIncomplete = errors.New("quiz is not complete")
	// ErrAlreadyGraded rejects grading the same question twice.
	ErrAlreadyGraded = errors.New("current question already graded")
	// ErrNotGraded rejects advancing past a question that was not graded.
	ErrNotGraded = errors.New("current question not graded")
	// ErrRecordInProgress rejects a second record while one is still being stored.
	ErrRecordInProgress = errors.New("result record already in progress")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned on registration with an existing email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned when email and password do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// StateError reports a quiz operation called out of sequence.
type StateError struct {
	Op    string
	Index int
	Total int
	Err   error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s at question %d of %d: %v", e.Op, e.Index, e.Total, e.Err)
}

func (e *StateError) Unwrap() error { return e.Err }

// StorageError wraps a failed read or write against a store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "storage " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }
