package cmd

import (
	"fmt"
	"sort"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/edostudy/internal/content"
	"github.com/abhisek/edostudy/internal/platform/logger"
	"github.com/abhisek/edostudy/internal/ui/theme"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect the study content",
}

var contentCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories across all collections",
	RunE: func(cmd *cobra.Command, args []string) error {
		cats := openContent(cmd, stderrLogger()).Categories(cmd.Context())
		if len(cats) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No categories found.")
			return nil
		}
		for _, c := range cats {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	},
}

var contentStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show record counts per collection and category",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := openContent(cmd, stderrLogger()).Stats(cmd.Context())
		out := cmd.OutOrStdout()

		lipgloss.Fprintln(out, theme.Title.Render("Content"))
		fmt.Fprintf(out, "  Flashcards:       %d\n", st.Flashcards)
		fmt.Fprintf(out, "  Quiz questions:   %d\n", st.QuizQuestions)
		fmt.Fprintf(out, "  Explain prompts:  %d\n", st.ExplainPrompts)

		if len(st.ByCategory) == 0 {
			return nil
		}

		names := make([]string, 0, len(st.ByCategory))
		for name := range st.ByCategory {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintln(out)
		lipgloss.Fprintln(out, theme.Title.Render("By category"))
		fmt.Fprintf(out, "  %-24s  %6s  %6s  %8s\n", "Category", "Cards", "Quiz", "Explain")
		for _, name := range names {
			c := st.ByCategory[name]
			fmt.Fprintf(out, "  %-24s  %6d  %6d  %8d\n", truncate(name, 24), c.Flashcards, c.Quiz, c.Explain)
		}
		return nil
	},
}

var contentCardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Print flashcards",
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, err := openContent(cmd, stderrLogger()).ListFlashcards(cmd.Context(), filterFlags(cmd))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, c := range cards {
			lipgloss.Fprintln(out, theme.Label.Render(c.ID)+"  "+theme.Subtitle.Render(c.Category+" · "+c.Difficulty))
			lipgloss.Fprintln(out, "  Q: "+theme.Body.Render(c.Front))
			lipgloss.Fprintln(out, "  A: "+theme.Hint.Render(c.Back))
		}
		return nil
	},
}

func filterFlags(cmd *cobra.Command) content.Filter {
	category, _ := cmd.Flags().GetString("category")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	return content.Filter{Category: category, Difficulty: difficulty}
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("category", "c", "", "Only this category (case-insensitive)")
	cmd.Flags().StringP("difficulty", "d", "", "Only this difficulty (case-insensitive)")
}

// stderrLogger reports skipped collections without mixing into command output.
func stderrLogger() *logger.Logger {
	log, err := logger.New("dev")
	if err != nil {
		return logger.NewNop()
	}
	return log
}

func init() {
	addFilterFlags(contentCardsCmd)

	contentCmd.AddCommand(contentCategoriesCmd)
	contentCmd.AddCommand(contentStatsCmd)
	contentCmd.AddCommand(contentCardsCmd)
}
