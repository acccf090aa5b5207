package content

import (
	"context"
	"errors"
	"io/fs"
	"math/rand/v2"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/edostudy/internal/platform/logger"
)

const cardsJSON = `{"cards": [
  {"id": "f1", "category": "Government", "difficulty": "easy", "front": "Shogun?", "back": "Military ruler"},
  {"id": "f2", "category": "Trade", "difficulty": "hard", "front": "Dejima?", "back": "Dutch island"},
  {"id": "f3", "category": "government", "difficulty": "Hard", "front": "Daimyo?", "back": "Lords", "extra": "ignored"}
]}`

const quizJSON = `{"questions": [
  {"id": "q1", "category": "Government", "difficulty": "easy", "type": "multiple_choice",
   "question": "Who ruled?", "options": ["Emperor", "Shogun"], "correct": 1, "explanation": "The shogun held power."},
  {"id": "q2", "category": "Trade", "difficulty": "easy", "type": "short_answer",
   "question": "Name the island", "keywords": ["Dejima"], "expected_answer": "Dejima"},
  {"id": "q3", "category": "Culture", "difficulty": "hard", "type": "multiple_choice",
   "question": "Kabuki is?", "options": ["Theatre", "Food"], "correct": 0},
  {"id": "q4", "category": "Trade", "difficulty": "hard", "type": "short_answer",
   "question": "Which Europeans traded?", "keywords": ["dutch"]}
]}`

const promptsJSON = `{"prompts": [
  {"id": "e1", "category": "Government", "difficulty": "medium", "prompt": "Explain sankin-kotai.",
   "rubric": ["alternate attendance", "cost to daimyo"]},
  {"id": "e2", "category": "", "difficulty": "easy", "prompt": "Explain sakoku.", "rubric": ["closed country"]}
]}`

func fullFS() fstest.MapFS {
	return fstest.MapFS{
		"flashcards.json":      {Data: []byte(cardsJSON)},
		"quiz_questions.json":  {Data: []byte(quizJSON)},
		"explain_prompts.json": {Data: []byte(promptsJSON)},
	}
}

func newTestStore(fsys fs.FS, opts ...Option) *Store {
	opts = append([]Option{WithRand(rand.New(rand.NewPCG(1, 2)))}, opts...)
	return New(fsys, opts...)
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = id(it)
	}
	return out
}

func TestListFlashcards(t *testing.T) {
	s := newTestStore(fullFS())
	ctx := context.Background()
	cardID := func(c Flashcard) string { return c.ID }

	t.Run("no filter keeps file order", func(t *testing.T) {
		cards, err := s.ListFlashcards(ctx, Filter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"f1", "f2", "f3"}, ids(cards, cardID))
	})

	t.Run("category is case-insensitive", func(t *testing.T) {
		cards, err := s.ListFlashcards(ctx, Filter{Category: "GOVERNMENT"})
		require.NoError(t, err)
		assert.Equal(t, []string{"f1", "f3"}, ids(cards, cardID))
	})

	t.Run("filters combine", func(t *testing.T) {
		cards, err := s.ListFlashcards(ctx, Filter{Category: "government", Difficulty: "hard"})
		require.NoError(t, err)
		assert.Equal(t, []string{"f3"}, ids(cards, cardID))
	})

	t.Run("no match is empty not nil", func(t *testing.T) {
		cards, err := s.ListFlashcards(ctx, Filter{Category: "Religion"})
		require.NoError(t, err)
		assert.NotNil(t, cards)
		assert.Empty(t, cards)
	})
}

func TestListFlashcards_Absent(t *testing.T) {
	s := newTestStore(fstest.MapFS{})
	_, err := s.ListFlashcards(context.Background(), Filter{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestListFlashcards_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"cards": [`},
		{"missing required field", `{"cards": [{"id": "f1", "category": "x", "difficulty": "easy", "front": "a"}]}`},
		{"wrong type", `{"cards": "nope"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(fstest.MapFS{"flashcards.json": {Data: []byte(tt.data)}})
			_, err := s.ListFlashcards(context.Background(), Filter{})
			var corrupt *CorruptError
			require.ErrorAs(t, err, &corrupt)
			assert.Equal(t, Flashcards, corrupt.Collection)
		})
	}
}

func TestListFlashcards_MissingKeyIsEmpty(t *testing.T) {
	s := newTestStore(fstest.MapFS{"flashcards.json": {Data: []byte(`{}`)}})
	cards, err := s.ListFlashcards(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestListQuizQuestions(t *testing.T) {
	ctx := context.Background()
	qID := func(q QuizQuestion) string { return q.ID }

	t.Run("returns a permutation of all matches", func(t *testing.T) {
		s := newTestStore(fullFS())
		qs, err := s.ListQuizQuestions(ctx, QuizFilter{})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"q1", "q2", "q3", "q4"}, ids(qs, qID))
	})

	t.Run("comma list of categories", func(t *testing.T) {
		s := newTestStore(fullFS())
		qs, err := s.ListQuizQuestions(ctx, QuizFilter{Category: " trade , CULTURE,"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"q2", "q3", "q4"}, ids(qs, qID))
	})

	t.Run("difficulty and count", func(t *testing.T) {
		s := newTestStore(fullFS())
		qs, err := s.ListQuizQuestions(ctx, QuizFilter{Difficulty: "HARD", Count: 1})
		require.NoError(t, err)
		require.Len(t, qs, 1)
		assert.Contains(t, []string{"q3", "q4"}, qs[0].ID)
	})

	t.Run("count larger than matches returns all", func(t *testing.T) {
		s := newTestStore(fullFS())
		qs, err := s.ListQuizQuestions(ctx, QuizFilter{Count: 10})
		require.NoError(t, err)
		assert.Len(t, qs, 4)
	})

	t.Run("same seed gives same order", func(t *testing.T) {
		a := New(fullFS(), WithRand(rand.New(rand.NewPCG(7, 7))))
		b := New(fullFS(), WithRand(rand.New(rand.NewPCG(7, 7))))
		qa, err := a.ListQuizQuestions(ctx, QuizFilter{})
		require.NoError(t, err)
		qb, err := b.ListQuizQuestions(ctx, QuizFilter{})
		require.NoError(t, err)
		assert.Equal(t, ids(qa, qID), ids(qb, qID))
	})

	t.Run("every order is reachable", func(t *testing.T) {
		s := newTestStore(fullFS())
		seen := map[string]bool{}
		for i := 0; i < 500; i++ {
			qs, err := s.ListQuizQuestions(ctx, QuizFilter{Category: "trade"})
			require.NoError(t, err)
			seen[qs[0].ID] = true
		}
		assert.Len(t, seen, 2)
	})
}

func TestListPublicPrompts_HidesRubric(t *testing.T) {
	s := newTestStore(fullFS())
	prompts, err := s.ListPublicPrompts(context.Background(), Filter{Difficulty: "medium"})
	require.NoError(t, err)
	require.Len(t, prompts, 1)
	assert.Equal(t, PublicPrompt{ID: "e1", Category: "Government", Difficulty: "medium", Prompt: "Explain sankin-kotai."}, prompts[0])
}

func TestListPublicPrompts_RequiresRubric(t *testing.T) {
	s := newTestStore(fstest.MapFS{"explain_prompts.json": {Data: []byte(
		`{"prompts": [{"id": "e1", "category": "c", "difficulty": "d", "prompt": "p", "rubric": []}]}`)}})
	_, err := s.ListPublicPrompts(context.Background(), Filter{})
	var corrupt *CorruptError
	assert.ErrorAs(t, err, &corrupt)
}

func TestPromptByID(t *testing.T) {
	s := newTestStore(fullFS())
	ctx := context.Background()

	p, err := s.PromptByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, []string{"alternate attendance", "cost to daimyo"}, p.Rubric)

	_, err = s.PromptByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuizQuestionByID(t *testing.T) {
	s := newTestStore(fullFS())
	ctx := context.Background()

	q, err := s.QuizQuestionByID(ctx, "q1")
	require.NoError(t, err)
	require.NotNil(t, q.Correct)
	assert.Equal(t, 1, *q.Correct)

	_, err = s.QuizQuestionByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategories(t *testing.T) {
	s := newTestStore(fullFS())
	assert.Equal(t, []string{"Culture", "Government", "Trade", "government"}, s.Categories(context.Background()))
}

func TestStats(t *testing.T) {
	s := newTestStore(fullFS())
	st := s.Stats(context.Background())

	assert.Equal(t, 3, st.Flashcards)
	assert.Equal(t, 4, st.QuizQuestions)
	assert.Equal(t, 2, st.ExplainPrompts)
	assert.Equal(t, CategoryCounts{Flashcards: 1, Quiz: 1, Explain: 1}, st.ByCategory["Government"])
	assert.Equal(t, CategoryCounts{Flashcards: 1, Quiz: 2}, st.ByCategory["Trade"])
	assert.Equal(t, CategoryCounts{Explain: 1}, st.ByCategory["Unknown"])
}

func TestAggregates_SkipUnreadableCollections(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	fsys := fstest.MapFS{
		"flashcards.json":     {Data: []byte(cardsJSON)},
		"quiz_questions.json": {Data: []byte(`not json`)},
	}
	s := newTestStore(fsys, WithLogger(log))

	st := s.Stats(context.Background())
	assert.Equal(t, 3, st.Flashcards)
	assert.Zero(t, st.QuizQuestions)
	assert.Zero(t, st.ExplainPrompts)
	assert.Equal(t, []string{"Government", "Trade", "government"}, s.Categories(context.Background()))

	assert.NotZero(t, logs.FilterMessage("content collection corrupt").Len())
	assert.NotZero(t, logs.FilterMessage("content collection absent").Len())
}

func TestAggregates_RecordWithoutCategory(t *testing.T) {
	fsys := fstest.MapFS{"flashcards.json": {Data: []byte(`{"cards": [
  {"id": "f1", "category": "Trade", "difficulty": "easy", "front": "a", "back": "b"},
  {"id": "f2", "difficulty": "easy", "front": "c", "back": "d"},
  {"id": "f3", "category": "Culture", "difficulty": "hard", "front": "e", "back": "f"}
]}`)}}
	s := newTestStore(fsys)
	ctx := context.Background()

	st := s.Stats(ctx)
	assert.Equal(t, 3, st.Flashcards)
	assert.Equal(t, CategoryCounts{Flashcards: 1}, st.ByCategory["Unknown"])
	assert.Equal(t, CategoryCounts{Flashcards: 1}, st.ByCategory["Trade"])
	assert.Equal(t, []string{"Culture", "Trade"}, s.Categories(ctx))

	cards, err := s.ListFlashcards(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, cards, 3)
}

func TestAggregates_EmptyDirectory(t *testing.T) {
	s := newTestStore(fstest.MapFS{})
	st := s.Stats(context.Background())
	assert.Equal(t, Stats{ByCategory: map[string]CategoryCounts{}}, st)
	assert.Empty(t, s.Categories(context.Background()))
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestStore(fullFS()).ListFlashcards(ctx, Filter{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestShippedContentIsValid(t *testing.T) {
	s := NewDir("../../content")
	ctx := context.Background()

	cards, err := s.ListFlashcards(ctx, Filter{})
	require.NoError(t, err)
	assert.NotEmpty(t, cards)

	qs, err := s.ListQuizQuestions(ctx, QuizFilter{})
	require.NoError(t, err)
	for _, q := range qs {
		if q.Type == QuizMultipleChoice {
			require.NotNil(t, q.Correct, q.ID)
			assert.Less(t, *q.Correct, len(q.Options), q.ID)
		} else {
			assert.NotEmpty(t, q.Keywords, q.ID)
		}
	}

	prompts, err := s.ListPublicPrompts(ctx, Filter{})
	require.NoError(t, err)
	assert.NotEmpty(t, prompts)
}
