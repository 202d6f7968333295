package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gameverse/internal/hub"
	"github.com/vovakirdan/gameverse/internal/launcher"
	"github.com/vovakirdan/gameverse/internal/platform/tui"
	"github.com/vovakirdan/gameverse/internal/storage"
)

var flagTheme string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the hub with a game picker menu",
	Long: `Start the hub in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to launch a game. After a
game ends you return to the menu; Tab opens the statistics dashboard.

Controls:
  Up/Down/j/k  - Navigate
  Enter        - Launch game
  F            - Toggle favorite
  C            - Cycle category filter
  Tab          - Statistics dashboard
  Q            - Quit

Examples:
  gameverse menu
  gameverse menu --theme neon
  gameverse menu --profile alice`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagTheme, "theme", "", "Theme to use (overrides the catalog setting)")
}

func runMenu(_ *cobra.Command, _ []string) {
	doc, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	pm, err := openProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profile: %v\n", err)
		os.Exit(1)
	}

	hubCfg, err := hub.Load("")
	if err != nil {
		hubCfg = hub.DefaultConfig()
	}

	themeID := flagTheme
	if themeID == "" {
		if s, ok := pm.Preference("theme", "").(string); ok && s != "" {
			themeID = s
		}
	}
	if themeID == "" {
		themeID, _ = doc.HubSettings["theme"].(string)
	}
	layoutID, _ := doc.HubSettings["layout"].(string)

	theme := hubCfg.Theme(themeID)
	layout := hubCfg.Layout(layoutID)

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "hub"})

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

	// Menu loop: pick, play, return to menu.
	for {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}

		res, err := tui.RunMenu(doc.Games, pm, theme, layout, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
			os.Exit(1)
		}

		switch {
		case res.Quit:
			return

		case res.OpenStats:
			back, err := tui.RunDashboard(pm, doc.Games, theme, width, height)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error showing dashboard: %v\n", err)
				os.Exit(1)
			}
			if !back {
				return
			}

		case res.Selected != nil:
			if _, err := l.Launch(*res.Selected); err != nil {
				logger.Error("cannot launch game", "id", res.Selected.ID, "error", err)
			}
		}
	}
}
