package redis

import (
	"context"
	"testing"
	"time"

	"quizgame/internal/domain"
	"quizgame/internal/infra/memory"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestQuestionSetRepositoryCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)

	loader := &countingLoader{
		QuestionSetLoader: memory.NewStaticLoader(map[string]domain.QuestionSet{
			"go-basics": sampleSet(),
		}),
	}
	repo := NewQuestionSetRepository(client, loader, time.Minute)

	_, err = repo.GetQuestionSet(context.Background(), "go-basics")
	if err != nil {
		t.Fatalf("get set: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader called once, got %d", loader.calls)
	}
	if !mr.Exists("questionset:go-basics") {
		t.Fatalf("expected cached key")
	}

	// Second call should hit cache, loader not incremented.
	set, err := repo.GetQuestionSet(context.Background(), "go-basics")
	if err != nil {
		t.Fatalf("get set 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.calls)
	}
	if len(set.Questions) != 1 || set.Questions[0] != sampleSet().Questions[0] {
		t.Fatalf("cached set lost content: %+v", set)
	}

	mr.FastForward(2 * time.Minute)
	_, _ = repo.GetQuestionSet(context.Background(), "go-basics")
	if loader.calls != 2 {
		t.Fatalf("expected reload after ttl, loader calls=%d", loader.calls)
	}
}

type countingLoader struct {
	QuestionSetLoader
	calls int
}

func (l *countingLoader) LoadQuestionSet(ctx context.Context, setID string) (domain.QuestionSet, error) {
	l.calls++
	return l.QuestionSetLoader.LoadQuestionSet(ctx, setID)
}

func sampleSet() domain.QuestionSet {
	return domain.QuestionSet{
		ID:    "go-basics",
		Title: "Go basics",
		Questions: []domain.Question{
			{
				Prompt:  "Which are reference types?",
				Options: [domain.OptionCount]string{"map", "slice", "array", "struct"},
				Correct: [domain.OptionCount]bool{true, true, false, false},
			},
		},
	}
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}
