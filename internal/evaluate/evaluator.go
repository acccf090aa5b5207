package evaluate

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/edostudy/internal/llm"
	"github.com/abhisek/edostudy/internal/platform/logger"
)

// Purpose tags evaluation calls in the audit log.
const Purpose = "explain-evaluate"

// Result is the structured feedback for one answer. Both point lists are
// always non-nil.
type Result struct {
	PointsHit    []string `json:"points_hit"`
	PointsMissed []string `json:"points_missed"`
	Score        int      `json:"score"`
	Total        int      `json:"total"`
	Praise       string   `json:"praise"`
	Hint         string   `json:"hint"`
	ModelAnswer  string   `json:"model_answer"`
}

// Config tunes the model call.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the grading defaults.
func DefaultConfig() Config {
	return Config{MaxTokens: 1024}
}

// Evaluator grades free-text answers against a rubric.
type Evaluator struct {
	source llm.Source
	cfg    Config
	log    *logger.Logger
}

// New creates an Evaluator. The provider is resolved from source on every
// call, so credentials can change without a restart.
func New(source llm.Source, cfg Config, log *logger.Logger) *Evaluator {
	if log == nil {
		log = logger.NewNop()
	}
	return &Evaluator{source: source, cfg: cfg, log: log}
}

// Evaluate makes exactly one model call. An unparseable reply is not an
// error: it yields the fallback result with the raw reply as ModelAnswer.
func (e *Evaluator) Evaluate(ctx context.Context, prompt string, rubric []string, answer string) (*Result, error) {
	ctx = llm.WithPurpose(ctx, Purpose)

	provider, err := e.source.Provider(ctx)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			return nil, &Error{Kind: KindUnconfigured, Err: err}
		}
		return nil, &Error{Kind: KindModelFailure, Err: err}
	}

	instruction, err := buildInstruction(prompt, rubric)
	if err != nil {
		return nil, fmt.Errorf("build instruction: %w", err)
	}

	resp, err := provider.Generate(ctx, llm.Request{
		System:      instruction,
		Messages:    llm.UserTurn(answer),
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return nil, &Error{Kind: KindModelFailure, Err: err}
	}

	obj, err := parseReply(resp.Text)
	if err != nil {
		e.log.Warn("model reply not parseable, using fallback", "error", err, "model", resp.Model)
		return fallback(rubric, resp.Text), nil
	}
	return normalize(obj, rubric), nil
}
