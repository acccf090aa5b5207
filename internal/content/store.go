package content

import (
	"context"
	"errors"
	"io/fs"
	"math/rand/v2"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/abhisek/edostudy/internal/platform/logger"
)

// Store serves study content from an fs.FS. Each call re-reads its file,
// so edits on disk show up without a restart.
type Store struct {
	fsys fs.FS
	log  *logger.Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

// Option configures a Store.
type Option func(*Store)

// WithRand sets the source used to shuffle quiz questions.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) { s.rnd = r }
}

// WithLogger sets the logger used by the aggregate operations.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New returns a store over fsys.
func New(fsys fs.FS, opts ...Option) *Store {
	s := &Store{fsys: fsys, log: logger.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.rnd == nil {
		s.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// NewDir returns a store over a directory on disk.
func NewDir(dir string, opts ...Option) *Store {
	return New(os.DirFS(dir), opts...)
}

// ListFlashcards returns the cards matching f, in file order.
func (s *Store) ListFlashcards(ctx context.Context, f Filter) ([]Flashcard, error) {
	cards, err := load[Flashcard](ctx, s.fsys, Flashcards)
	if err != nil {
		return nil, err
	}
	out := make([]Flashcard, 0, len(cards))
	for _, c := range cards {
		if matches(f, c.Category, c.Difficulty) {
			out = append(out, c)
		}
	}
	return out, nil
}

// ListQuizQuestions returns the questions matching f in a fresh random
// order, truncated to f.Count when it is positive and smaller than the
// number of matches.
func (s *Store) ListQuizQuestions(ctx context.Context, f QuizFilter) ([]QuizQuestion, error) {
	questions, err := load[QuizQuestion](ctx, s.fsys, QuizQuestions)
	if err != nil {
		return nil, err
	}

	cats := categorySet(f.Category)
	out := make([]QuizQuestion, 0, len(questions))
	for _, q := range questions {
		if len(cats) > 0 {
			if _, ok := cats[strings.ToLower(q.Category)]; !ok {
				continue
			}
		}
		if f.Difficulty != "" && !strings.EqualFold(q.Difficulty, f.Difficulty) {
			continue
		}
		out = append(out, q)
	}

	s.mu.Lock()
	s.rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	s.mu.Unlock()

	if f.Count > 0 && f.Count < len(out) {
		out = out[:f.Count]
	}
	return out, nil
}

// ListPublicPrompts returns the explain prompts matching f without rubrics.
func (s *Store) ListPublicPrompts(ctx context.Context, f Filter) ([]PublicPrompt, error) {
	prompts, err := load[ExplainPrompt](ctx, s.fsys, ExplainPrompts)
	if err != nil {
		return nil, err
	}
	out := make([]PublicPrompt, 0, len(prompts))
	for _, p := range prompts {
		if matches(f, p.Category, p.Difficulty) {
			out = append(out, p.Public())
		}
	}
	return out, nil
}

// PromptByID returns the first prompt with the given id, rubric included.
func (s *Store) PromptByID(ctx context.Context, id string) (*ExplainPrompt, error) {
	prompts, err := load[ExplainPrompt](ctx, s.fsys, ExplainPrompts)
	if err != nil {
		return nil, err
	}
	for i := range prompts {
		if prompts[i].ID == id {
			return &prompts[i], nil
		}
	}
	return nil, ErrNotFound
}

// QuizQuestionByID returns the first question with the given id.
func (s *Store) QuizQuestionByID(ctx context.Context, id string) (*QuizQuestion, error) {
	questions, err := load[QuizQuestion](ctx, s.fsys, QuizQuestions)
	if err != nil {
		return nil, err
	}
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i], nil
		}
	}
	return nil, ErrNotFound
}

// Categories returns every non-empty category across the readable
// collections, sorted and deduplicated. Unreadable collections are skipped.
func (s *Store) Categories(ctx context.Context) []string {
	seen := map[string]struct{}{}
	for _, col := range s.collect(ctx) {
		for _, c := range col.categories {
			if c != "" {
				seen[c] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Stats counts the readable collections. Unreadable collections count as
// zero. Records without a category are grouped under "Unknown".
func (s *Store) Stats(ctx context.Context) Stats {
	st := Stats{ByCategory: map[string]CategoryCounts{}}
	for _, col := range s.collect(ctx) {
		switch col.name {
		case Flashcards:
			st.Flashcards = len(col.categories)
		case QuizQuestions:
			st.QuizQuestions = len(col.categories)
		case ExplainPrompts:
			st.ExplainPrompts = len(col.categories)
		}
		for _, c := range col.categories {
			if c == "" {
				c = "Unknown"
			}
			counts := st.ByCategory[c]
			switch col.name {
			case Flashcards:
				counts.Flashcards++
			case QuizQuestions:
				counts.Quiz++
			case ExplainPrompts:
				counts.Explain++
			}
			st.ByCategory[c] = counts
		}
	}
	return st
}

type collected struct {
	name       Collection
	categories []string
}

// collect loads each collection independently and keeps the ones that load.
func (s *Store) collect(ctx context.Context) []collected {
	loaders := []struct {
		name Collection
		load func(context.Context, fs.FS) ([]string, error)
	}{
		{Flashcards, categoriesOf[Flashcard](Flashcards)},
		{QuizQuestions, categoriesOf[QuizQuestion](QuizQuestions)},
		{ExplainPrompts, categoriesOf[ExplainPrompt](ExplainPrompts)},
	}

	out := make([]collected, 0, len(loaders))
	for _, l := range loaders {
		cats, err := l.load(ctx, s.fsys)
		if err != nil {
			s.logSkip(l.name, err)
			continue
		}
		out = append(out, collected{name: l.name, categories: cats})
	}
	return out
}

func (s *Store) logSkip(c Collection, err error) {
	var corrupt *CorruptError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.log.Debug("content collection absent", "collection", string(c))
	case errors.As(err, &corrupt):
		s.log.Warn("content collection corrupt", "collection", string(c), "error", err)
	default:
		s.log.Warn("content collection unreadable", "collection", string(c), "error", err)
	}
}

type categorized interface {
	categoryName() string
}

func categoriesOf[T categorized](c Collection) func(context.Context, fs.FS) ([]string, error) {
	return func(ctx context.Context, fsys fs.FS) ([]string, error) {
		items, err := load[T](ctx, fsys, c)
		if err != nil {
			return nil, err
		}
		cats := make([]string, len(items))
		for i, it := range items {
			cats[i] = it.categoryName()
		}
		return cats, nil
	}
}

func matches(f Filter, category, difficulty string) bool {
	if f.Category != "" && !strings.EqualFold(category, f.Category) {
		return false
	}
	if f.Difficulty != "" && !strings.EqualFold(difficulty, f.Difficulty) {
		return false
	}
	return true
}

// categorySet parses a comma separated category list. Blank entries are
// ignored; an empty set means no category filter.
func categorySet(list string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, c := range strings.Split(list, ",") {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" {
			set[c] = struct{}{}
		}
	}
	return set
}
