package domain

import (
	"errors"
	"testing"
)

func TestQuestionMatchesExactly(t *testing.T) {
	q := Question{
		Prompt:  "Pick the first two",
		Options: [OptionCount]string{"a", "b", "c", "d"},
		Correct: [OptionCount]bool{true, true, false, false},
	}
	if !q.MultiSelect() {
		t.Fatalf("expected multi-select with two correct options")
	}
	if q.Matches(Selections{true, false, false, false}) {
		t.Fatalf("partial selection must not match")
	}
	if q.Matches(Selections{true, true, true, false}) {
		t.Fatalf("extra selection must not match")
	}
	if !q.Matches(Selections{true, true, false, false}) {
		t.Fatalf("exact selection should match")
	}
}

func TestNewQuestionRequiresCorrectOption(t *testing.T) {
	_, err := NewQuestion("?", [OptionCount]string{"a", "b", "c", "d"}, [OptionCount]bool{})
	if !errors.Is(err, ErrNoCorrectOption) {
		t.Fatalf("expected ErrNoCorrectOption, got %v", err)
	}

	q, err := NewQuestion("?", [OptionCount]string{"a", "b", "c", "d"}, [OptionCount]bool{false, true, false, false})
	if err != nil {
		t.Fatalf("new question: %v", err)
	}
	if q.MultiSelect() {
		t.Fatalf("single correct option should be single-select")
	}
}

func TestErrorWrappers(t *testing.T) {
	var err error = &StateError{Op: "advance", Index: 3, Total: 3, Err: ErrQuizComplete}
	if !errors.Is(err, ErrQuizComplete) {
		t.Fatalf("state error should unwrap to sentinel")
	}

	cause := errors.New("disk full")
	err = &StorageError{Op: "insert result", Err: cause}
	if !errors.Is(err, cause) {
		t.Fatalf("storage error should unwrap to cause")
	}
	if err.Error() != "storage insert result: disk full" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestQuizStateSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrQuizComplete, ErrQuizIncomplete, ErrAlreadyGraded, ErrNotGraded, ErrRecordInProgress}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Fatalf("%v must not match %v", a, b)
			}
		}
		wrapped := &StateError{Op: "submit", Index: 1, Total: 1, Err: a}
		if !errors.Is(wrapped, a) {
			t.Fatalf("state error should unwrap to %v", a)
		}
	}
}
