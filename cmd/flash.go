package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/abhisek/edostudy/internal/flash"
	"github.com/abhisek/edostudy/internal/platform/logger"
)

var flashCmd = &cobra.Command{
	Use:   "flash",
	Short: "Drill flashcards in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, err := openContent(cmd, logger.NewNop()).ListFlashcards(cmd.Context(), filterFlags(cmd))
		if err != nil {
			return fmt.Errorf("load flashcards: %w", err)
		}
		if shuffle, _ := cmd.Flags().GetBool("shuffle"); shuffle {
			rand.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
		}

		final, err := flash.Run(cards)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Marked %d of %d cards as known.\n", final.KnownCount(), len(cards))
		return nil
	},
}

func init() {
	addFilterFlags(flashCmd)
	flashCmd.Flags().Bool("shuffle", false, "Shuffle the deck")
}
