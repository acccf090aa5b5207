package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edostudy/internal/llm"
)

func writeContent(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"flashcards.json": `{"cards": [
			{"id": "f1", "category": "Trade", "difficulty": "easy", "front": "Dejima?", "back": "Dutch island"}
		]}`,
		"explain_prompts.json": `{"prompts": [
			{"id": "e1", "category": "Isolation", "difficulty": "medium", "prompt": "Explain sakoku.", "rubric": ["closed country"]}
		]}`,
	}
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644))
	}
	return dir
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "edostudy")
}

func TestContentCategories(t *testing.T) {
	dir := writeContent(t)
	out, err := run(t, "", "content", "categories", "--content", dir)
	require.NoError(t, err)
	assert.Equal(t, "Isolation\nTrade\n", out)
}

func TestContentStats(t *testing.T) {
	dir := writeContent(t)
	out, err := run(t, "", "content", "stats", "--content", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Flashcards:       1")
	assert.Contains(t, out, "Quiz questions:   0")
	assert.Contains(t, out, "Trade")
}

func TestEvaluate_MockProvider(t *testing.T) {
	t.Setenv(llm.EnvProvider, "mock")
	dir := writeContent(t)

	out, err := run(t, "Japan closed its borders.", "evaluate", "e1", "--content", dir, "--no-audit")
	require.NoError(t, err)
	assert.Contains(t, out, "Explain sakoku.")
	assert.Contains(t, out, "Mock grader")
}

func TestEvaluate_Errors(t *testing.T) {
	dir := writeContent(t)

	_, err := run(t, "", "evaluate", "nope", "an answer", "--content", dir, "--no-audit")
	assert.ErrorContains(t, err, "not found")

	_, err = run(t, "   ", "evaluate", "e1", "--content", dir, "--no-audit")
	assert.ErrorContains(t, err, "empty")

	t.Setenv(llm.EnvProvider, "anthropic")
	t.Setenv(llm.EnvAPIKey, "")
	_, err = run(t, "", "evaluate", "e1", "some answer", "--content", dir, "--no-audit")
	assert.ErrorContains(t, err, llm.EnvAPIKey)
}
