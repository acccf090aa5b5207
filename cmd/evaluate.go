package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/edostudy/internal/content"
	"github.com/abhisek/edostudy/internal/evaluate"
	"github.com/abhisek/edostudy/internal/llm"
	"github.com/abhisek/edostudy/internal/platform/logger"
	"github.com/abhisek/edostudy/internal/ui/theme"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <prompt-id> [answer...]",
	Short: "Grade an answer to an explain prompt",
	Long:  "Grades an answer against the prompt's rubric. The answer is read from stdin when not given as arguments.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := logger.NewNop()

		prompt, err := openContent(cmd, log).PromptByID(ctx, args[0])
		if err != nil {
			if errors.Is(err, content.ErrNotFound) {
				return fmt.Errorf("prompt %q not found", args[0])
			}
			return err
		}

		answer := strings.Join(args[1:], " ")
		if answer == "" {
			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read answer: %w", err)
			}
			answer = string(b)
		}
		if strings.TrimSpace(answer) == "" {
			return errors.New("answer cannot be empty")
		}

		events, closeAudit, err := openAudit(cmd)
		if err != nil {
			return err
		}
		defer closeAudit()

		ev := evaluate.New(llm.EnvSource{Events: events, Log: log}, evaluate.DefaultConfig(), log)
		res, err := ev.Evaluate(ctx, prompt.Prompt, prompt.Rubric, answer)
		if err != nil {
			if errors.Is(err, evaluate.ErrUnconfigured) {
				return fmt.Errorf("%s is not set; export it to use Explain mode", llm.EnvAPIKey)
			}
			return err
		}

		printResult(cmd.OutOrStdout(), prompt.Prompt, res)
		return nil
	},
}

func printResult(w io.Writer, prompt string, res *evaluate.Result) {
	lipgloss.Fprintln(w, theme.Title.Render(prompt))
	lipgloss.Fprintln(w, theme.Label.Render(fmt.Sprintf("Score: %d/%d", res.Score, res.Total)))
	fmt.Fprintln(w)
	for _, p := range res.PointsHit {
		lipgloss.Fprintln(w, theme.Correct.Render("  ✓ ")+p)
	}
	for _, p := range res.PointsMissed {
		lipgloss.Fprintln(w, theme.Incorrect.Render("  ✗ ")+p)
	}
	if res.Praise != "" {
		fmt.Fprintln(w)
		lipgloss.Fprintln(w, theme.Body.Render(res.Praise))
	}
	if res.Hint != "" {
		lipgloss.Fprintln(w, theme.Hint.Render("Hint: "+res.Hint))
	}
	if res.ModelAnswer != "" {
		fmt.Fprintln(w)
		lipgloss.Fprintln(w, theme.Subtitle.Render("Model answer"))
		fmt.Fprintln(w, res.ModelAnswer)
	}
}
