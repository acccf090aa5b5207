package content

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by the by-ID lookups.
var ErrNotFound = errors.New("not found")

// CorruptError reports a content file that exists but cannot be used:
// invalid JSON or a schema violation.
type CorruptError struct {
	Collection Collection
	Err        error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("content %s is corrupt: %v", e.Collection, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }
