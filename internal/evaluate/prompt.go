package evaluate

import (
	"bytes"
	"text/template"
)

var instructionTemplate = template.Must(template.New("instruction").Parse(`You are a friendly, encouraging tutor helping a Grade 8 student study for their Alberta Social Studies exam on Edo Period Japan.

The student was asked: "{{.Prompt}}"

The key points their answer should include:
{{range $i, $p := .Rubric}}{{if $i}}
{{end}}- {{$p}}{{end}}

Evaluate their answer. Respond in this exact JSON format:
{
  "points_hit": ["point 1 they covered", ...],
  "points_missed": ["point they missed", ...],
  "score": 3,
  "total": 4,
  "praise": "...",
  "hint": "...",
  "model_answer": "..."
}

Be warm and encouraging. This is a 13-year-old studying for an exam.
Recognize partial understanding. Never be condescending.
Use language appropriate for a Grade 8 student.`))

// buildInstruction renders the grading instruction for one prompt.
func buildInstruction(prompt string, rubric []string) (string, error) {
	var b bytes.Buffer
	err := instructionTemplate.Execute(&b, struct {
		Prompt string
		Rubric []string
	}{prompt, rubric})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
