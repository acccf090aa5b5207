package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
)

// Collection names one of the three content files.
type Collection string

const (
	Flashcards     Collection = "flashcards"
	QuizQuestions  Collection = "quiz_questions"
	ExplainPrompts Collection = "explain_prompts"
)

// File is the collection's file name inside the content directory.
func (c Collection) File() string { return string(c) + ".json" }

// Key is the top-level document key that holds the record array.
func (c Collection) Key() string {
	switch c {
	case Flashcards:
		return "cards"
	case QuizQuestions:
		return "questions"
	case ExplainPrompts:
		return "prompts"
	}
	return ""
}

// load reads, validates and decodes one collection. A missing file returns
// an error wrapping fs.ErrNotExist; bad JSON or a schema violation returns
// *CorruptError. A document without the collection key decodes as empty.
func load[T any](ctx context.Context, fsys fs.FS, c Collection) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(fsys, c.File())
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.File(), err)
	}

	instance, err := jsonschemaInstance(data)
	if err != nil {
		return nil, &CorruptError{Collection: c, Err: err}
	}
	schema, err := compiledSchema(c)
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(instance); err != nil {
		return nil, &CorruptError{Collection: c, Err: err}
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &CorruptError{Collection: c, Err: err}
	}
	raw, ok := doc[c.Key()]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return []T{}, nil
	}
	items := []T{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &CorruptError{Collection: c, Err: err}
	}
	return items, nil
}
