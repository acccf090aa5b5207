package evaluate

import "errors"

var (
	// ErrUnconfigured means no model credential is available.
	ErrUnconfigured = errors.New("model is not configured")

	// ErrEvaluationFailed matches any failure of the model call itself.
	ErrEvaluationFailed = errors.New("evaluation failed")
)

// Kind classifies an evaluation error.
type Kind int

const (
	KindUnconfigured Kind = iota + 1
	KindModelFailure
)

// Error is returned by Evaluate. Use errors.Is with ErrUnconfigured or
// ErrEvaluationFailed rather than inspecting Kind directly.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	prefix := ErrEvaluationFailed.Error()
	if e.Kind == KindUnconfigured {
		prefix = ErrUnconfigured.Error()
	}
	if e.Err == nil {
		return prefix
	}
	return prefix + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnconfigured:
		return e.Kind == KindUnconfigured
	case ErrEvaluationFailed:
		return e.Kind == KindModelFailure
	}
	return false
}
