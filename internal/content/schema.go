package content

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const flashcardsSchema = `{
  "type": "object",
  "properties": {
    "cards": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "difficulty", "front", "back"],
        "properties": {
          "id": {"type": "string"},
          "category": {"type": "string"},
          "difficulty": {"type": "string"},
          "front": {"type": "string"},
          "back": {"type": "string"}
        }
      }
    }
  }
}`

const quizSchema = `{
  "type": "object",
  "properties": {
    "questions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "difficulty", "question"],
        "properties": {
          "id": {"type": "string"},
          "category": {"type": "string"},
          "difficulty": {"type": "string"},
          "type": {"enum": ["multiple_choice", "short_answer"]},
          "question": {"type": "string"},
          "options": {"type": "array", "items": {"type": "string"}},
          "correct": {"type": "integer", "minimum": 0},
          "explanation": {"type": "string"},
          "keywords": {"type": "array", "items": {"type": "string"}},
          "expected_answer": {"type": "string"}
        }
      }
    }
  }
}`

const promptsSchema = `{
  "type": "object",
  "properties": {
    "prompts": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "difficulty", "prompt", "rubric"],
        "properties": {
          "id": {"type": "string"},
          "category": {"type": "string"},
          "difficulty": {"type": "string"},
          "prompt": {"type": "string"},
          "rubric": {"type": "array", "minItems": 1, "items": {"type": "string"}}
        }
      }
    }
  }
}`

var schemaCache sync.Map // Collection -> *jsonschema.Schema

func compiledSchema(c Collection) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(c); ok {
		return cached.(*jsonschema.Schema), nil
	}

	var src string
	switch c {
	case Flashcards:
		src = flashcardsSchema
	case QuizQuestions:
		src = quizSchema
	case ExplainPrompts:
		src = promptsSchema
	default:
		return nil, fmt.Errorf("no schema for collection %q", c)
	}

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse %s schema: %w", c, err)
	}
	url := "edostudy://schema/" + string(c) + ".json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add %s schema: %w", c, err)
	}
	schema, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile %s schema: %w", c, err)
	}

	schemaCache.Store(c, schema)
	return schema, nil
}

func jsonschemaInstance(data []byte) (any, error) {
	return jsonschema.UnmarshalJSON(bytes.NewReader(data))
}
