package evaluate

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	fallbackPraise = "Thanks for your answer! I had a little trouble analyzing it."
	fallbackHint   = "Try to be more specific about the key points."
)

const fence = "```"

var errNotObject = errors.New("reply is not a JSON object")

// parseReply extracts the JSON object from a model reply. Replies wrapped in
// a markdown code fence have every fence line removed first.
func parseReply(text string) (map[string]any, error) {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, fence) {
		lines := strings.Split(cleaned, "\n")
		kept := lines[:0]
		for _, l := range lines {
			if !strings.HasPrefix(strings.TrimSpace(l), fence) {
				kept = append(kept, l)
			}
		}
		cleaned = strings.Join(kept, "\n")
	}

	var v any
	if err := json.Unmarshal([]byte(cleaned), &v); err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errNotObject
	}
	return obj, nil
}

// fallback is the result used when the reply cannot be parsed.
func fallback(rubric []string, reply string) *Result {
	return &Result{
		PointsHit:    []string{},
		PointsMissed: append([]string{}, rubric...),
		Score:        0,
		Total:        len(rubric),
		Praise:       fallbackPraise,
		Hint:         fallbackHint,
		ModelAnswer:  reply,
	}
}

// normalize maps a decoded reply onto Result, filling defaults for missing
// or mistyped fields. Scores are taken as given, without clamping.
func normalize(obj map[string]any, rubric []string) *Result {
	return &Result{
		PointsHit:    stringList(obj["points_hit"]),
		PointsMissed: stringList(obj["points_missed"]),
		Score:        integer(obj["score"], 0),
		Total:        integer(obj["total"], len(rubric)),
		Praise:       text(obj["praise"]),
		Hint:         text(obj["hint"]),
		ModelAnswer:  text(obj["model_answer"]),
	}
}

func stringList(v any) []string {
	out := []string{}
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func integer(v any, def int) int {
	switch n := v.(type) {
	case float64:
		if i, ok := fitsInt(n); ok {
			return i
		}
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.Atoi(s); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			if i, ok := fitsInt(f); ok {
				return i
			}
		}
	}
	return def
}

// fitsInt truncates f toward zero when the result is representable as an int.
func fitsInt(f float64) (int, bool) {
	t := math.Trunc(f)
	if math.IsNaN(t) || t < math.MinInt || t >= -math.MinInt {
		return 0, false
	}
	return int(t), true
}

func text(v any) string {
	s, _ := v.(string)
	return s
}
