package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gameverse/internal/launcher"
	"github.com/vovakirdan/gameverse/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Launch a game",
	Long: `Launch the specified game from the games folder and record the
session when it ends.

The game runs in your terminal until you quit it. Playtime, session
count, and score are recorded in your profile statistics; the session
is also appended to the history database.

Examples:
  gameverse play retro_breakout
  gameverse play quick_quiz --profile alice`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	doc, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	game, ok := doc.Find(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'gameverse list' to see cataloged games.")
		os.Exit(1)
	}

	pm, err := openProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profile: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "launcher"})

	ledger, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("cannot open session history", "path", flagDBPath, "error", err)
		ledger = nil
	} else {
		defer ledger.Close()
	}

	l := &launcher.Launcher{
		GamesDir:    flagGamesDir,
		Recorder:    pm,
		Ledger:      ledger,
		ProfileName: pm.Name(),
		Logger:      logger,
	}

	res, err := l.Launch(game)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nSession over: %ds played", res.DurationSeconds)
	if res.Score > 0 {
		fmt.Printf(", score %d", res.Score)
	}
	fmt.Println()
}
