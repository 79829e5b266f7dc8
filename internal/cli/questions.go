package cli

import "quizgame/internal/domain"

const defaultSetID = "go-fundamentals"

// builtinQuestionSets is served from memory when no Postgres is configured,
// and is what the seed command writes.
func builtinQuestionSets() map[string]domain.QuestionSet {
	return map[string]domain.QuestionSet{
		defaultSetID: {
			ID:    defaultSetID,
			Title: "Go fundamentals",
			Questions: []domain.Question{
				{
					Prompt:  "Which keyword starts a new goroutine?",
					Options: [domain.OptionCount]string{"async", "spawn", "go", "thread"},
					Correct: [domain.OptionCount]bool{false, false, true, false},
				},
				{
					Prompt:  "Please check every type that is comparable with ==.",
					Options: [domain.OptionCount]string{"int", "[4]bool", "map[string]int", "struct{ A string }"},
					Correct: [domain.OptionCount]bool{true, true, false, true},
				},
				{
					Prompt:  "What does a receive from a closed, drained channel return?",
					Options: [domain.OptionCount]string{"It panics", "The zero value", "It blocks forever", "An error"},
					Correct: [domain.OptionCount]bool{false, true, false, false},
				},
				{
					Prompt:  "Which statements about defer are true?",
					Options: [domain.OptionCount]string{
						"Deferred calls run in LIFO order",
						"Arguments are evaluated when the defer statement runs",
						"Deferred calls are skipped on panic",
						"defer only works inside main",
					},
					Correct: [domain.OptionCount]bool{true, true, false, false},
				},
				{
					Prompt:  "Which tool formats Go source code?",
					Options: [domain.OptionCount]string{"go vet", "gofmt", "golint", "go mod tidy"},
					Correct: [domain.OptionCount]bool{false, true, false, false},
				},
			},
		},
	}
}
