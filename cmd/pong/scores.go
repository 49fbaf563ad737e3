package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-pong/internal/storage"
)

var flagReset bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the stored high score",
	Long: `Display the best hit count stored in the high score database.

Examples:
  pong scores
  pong scores --db ./highscore.db
  pong scores --reset`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the stored high score")
}

func runScores(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	// Open high score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening high score database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagReset {
		if err := storage.NewHighScores(store, logger).ResetHighScore(); err != nil {
			return fmt.Errorf("resetting high score: %w", err)
		}
		fmt.Fprintln(out, "High score cleared.")
		return nil
	}

	entry, err := store.Get(storage.HighScoreNamespace, storage.HighScoreKey)
	if err != nil {
		return fmt.Errorf("retrieving high score: %w", err)
	}

	fmt.Fprintln(out, "High Score - Pocket Pong")
	fmt.Fprintln(out)

	if entry == nil || entry.Value <= 0 {
		fmt.Fprintln(out, "No high score recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'pong play' to set the first one!")
		return nil
	}

	fmt.Fprintf(out, "  %-6s  %s\n", "Hits", "Date")
	fmt.Fprintf(out, "  %-6s  %s\n", "----", "----")
	fmt.Fprintf(out, "  %-6d  %s\n", entry.Value, entry.UpdatedAt.Format("2006-01-02 15:04"))
	return nil
}
