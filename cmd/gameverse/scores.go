package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gameverse/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show the session history for a game",
	Long: `Display the session history summary and the best scores for the
specified game, across all profiles on this machine.

Examples:
  gameverse scores retro_breakout
  gameverse scores quick_quiz --limit 20`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Scores to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	doc, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	title := gameID
	if g, ok := doc.Find(gameID); ok {
		title = g.Title
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	summary, err := store.Summary(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading session history: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Session history - %s\n\n", title)

	if summary == nil || summary.Sessions == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	fmt.Printf("  Sessions:       %d\n", summary.Sessions)
	fmt.Printf("  Total playtime: %s\n", formatSeconds(summary.Playtime))
	fmt.Printf("  High score:     %d\n", summary.HighScore)
	fmt.Printf("  Average score:  %.1f\n", summary.AvgScore)
	fmt.Printf("  Last played:    %s\n", summary.LastPlayed.Format("2006-01-02 15:04"))

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	if len(scores) > 0 {
		fmt.Println("\nBest scores:")
		for i, s := range scores {
			fmt.Printf("  %2d. %6d  %-12s %s\n",
				i+1, s.Score, s.Profile, s.CreatedAt.Format("2006-01-02 15:04"))
		}
	}
}
