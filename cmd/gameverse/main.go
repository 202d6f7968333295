// gameverse is a terminal game hub: it discovers games in a folder,
// keeps a catalog of their metadata, tracks per-player statistics, and
// recommends what to play next.
//
// Usage:
//
//	gameverse discover           - Scan the games folder and update the catalog
//	gameverse list               - List cataloged games
//	gameverse menu               - Interactive game picker
//	gameverse play <game>        - Launch a game directly
//	gameverse stats              - Show player statistics
//	gameverse recommend          - Suggest games to play next
//	gameverse scores <game>      - Show the session history for a game
//	gameverse profile            - Inspect and edit the player profile
//	gameverse serve              - Serve the hub over SSH (browse-only)
//
// Global flags:
//
//	--games <dir>      - Games folder (default: games)
//	--catalog <path>   - Catalog file (default: games_config.json)
//	--data-dir <dir>   - Profile data folder (default: data/profiles)
//	--profile <name>   - Player profile name (default: default)
//	--db <path>        - Session history database (default: ~/.gameverse/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gameverse/internal/catalog"
	"github.com/vovakirdan/gameverse/internal/profile"
)

var (
	// Global flags
	flagGamesDir    string
	flagCatalogPath string
	flagDataDir     string
	flagProfile     string
	flagDBPath      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gameverse",
	Short: "GameVerse - Your terminal game hub",
	Long: `GameVerse is a terminal game hub. Drop Go games into the games
folder, let discovery build the catalog, and play from the menu while
the hub tracks your playtime, scores, and achievements.

Available commands:
  discover  - Scan the games folder and update the catalog
  list      - Show cataloged games
  menu      - Interactive game picker
  play      - Launch a specific game
  stats     - Player statistics report
  recommend - Games you have not tried yet
  scores    - Session history for a game
  profile   - Inspect and edit the player profile
  serve     - Serve the hub over SSH

Examples:
  gameverse discover
  gameverse menu
  gameverse play retro_breakout
  gameverse stats --days 14
  gameverse serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagGamesDir, "games", "games", "Games folder to scan and launch from")
	rootCmd.PersistentFlags().StringVar(&flagCatalogPath, "catalog", catalog.DefaultPath, "Path to the catalog file")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", profile.DefaultDataDir, "Folder for profile and statistics documents")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "default", "Player profile name")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gameverse/sessions.db", "Path to the session history database")

	// Add subcommands
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(serveCmd)
}

// openProfile opens the profile selected by the global flags.
func openProfile() (*profile.Manager, error) {
	return profile.Open(flagDataDir, flagProfile)
}

// loadCatalog loads the catalog selected by the global flags.
func loadCatalog() (catalog.Document, error) {
	return catalog.Load(flagCatalogPath)
}
