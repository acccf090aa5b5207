package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/edostudy/internal/content"
	"github.com/abhisek/edostudy/internal/platform/logger"
	"github.com/abhisek/edostudy/internal/store"
)

var rootCmd = &cobra.Command{
	Use:           "edostudy",
	Short:         "Study aid for Edo Period Japan",
	Long:          "edostudy serves flashcards, quizzes and AI-graded explain prompts for Grade 8 Social Studies.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite audit database (overrides EDOSTUDY_DB env var)")
	rootCmd.PersistentFlags().String("content", "", "Content directory (overrides CONTENT_DIR env var)")
	rootCmd.PersistentFlags().Bool("no-audit", false, "Do not record model calls in the audit database")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(flashCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EDOSTUDY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveContentDir returns --content, then CONTENT_DIR, then fallback.
func resolveContentDir(cmd *cobra.Command, fallback string) string {
	if p, _ := cmd.Flags().GetString("content"); p != "" {
		return p
	}
	if p := strings.TrimSpace(os.Getenv("CONTENT_DIR")); p != "" {
		return p
	}
	return fallback
}

func openContent(cmd *cobra.Command, log *logger.Logger) *content.Store {
	return content.NewDir(resolveContentDir(cmd, "content"), content.WithLogger(log))
}

// openAudit opens the audit store unless --no-audit is set. The returned
// repo is nil when auditing is off; close is always safe to call.
func openAudit(cmd *cobra.Command) (store.EventRepo, func(), error) {
	if off, _ := cmd.Flags().GetBool("no-audit"); off {
		return nil, func() {}, nil
	}
	s, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}
	return s.EventRepo(), func() { _ = s.Close() }, nil
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
