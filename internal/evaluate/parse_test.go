package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReply_StripsFenceLines(t *testing.T) {
	obj, err := parseReply("```json\n{\"score\": 1}\n   ```\n")
	require.NoError(t, err)
	assert.Equal(t, float64(1), obj["score"])
}

func TestParseReply_FenceOnlyWhenLeading(t *testing.T) {
	_, err := parseReply("Here you go:\n```json\n{\"score\": 1}\n```")
	assert.Error(t, err)
}

func TestInteger(t *testing.T) {
	tests := []struct {
		in   any
		want int
	}{
		{float64(3), 3},
		{3.7, 3},
		{-1.5, -1},
		{"4", 4},
		{" 5 ", 5},
		{"2.9", 2},
		{"three", 7},
		{true, 7},
		{nil, 7},
		{1e300, 7},
		{-1e300, 7},
		{"1e300", 7},
		{"NaN", 7},
		{"-Inf", 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, integer(tt.in, 7), "input %v", tt.in)
	}
}

func TestBuildInstruction_RubricOrder(t *testing.T) {
	got, err := buildInstruction("Why?", []string{"first", "second"})
	require.NoError(t, err)
	assert.Contains(t, got, "include:\n- first\n- second\n\nEvaluate")
}
