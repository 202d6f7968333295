package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gameverse/internal/catalog"
	"github.com/vovakirdan/gameverse/internal/discovery"
)

var flagDryRun bool

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Scan the games folder and update the catalog",
	Long: `Scan the games folder for Go games, extract metadata from their
source, and merge the results into the catalog.

Games already in the catalog keep their user data (favorites, playtime,
high scores). Games whose files disappeared are dropped. Files that
fail to parse are reported and skipped; one broken game never blocks
the rest.

Examples:
  gameverse discover
  gameverse discover --games ./my-games
  gameverse discover --dry-run`,
	Run: runDiscover,
}

func init() {
	discoverCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Scan and report without writing the catalog")
}

func runDiscover(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "discover"})

	scanner := discovery.NewScanner(flagGamesDir, logger)
	result, err := scanner.Scan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", flagGamesDir, err)
		os.Exit(1)
	}

	existing, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	merged := catalog.Merge(existing, result.Games)

	fmt.Printf("Discovered %d game(s) in %s\n", len(result.Games), flagGamesDir)
	for _, g := range merged.Games {
		fmt.Printf("  %-20s %-12s %s\n", g.ID, g.Category, g.Title)
	}

	if len(result.Errors) > 0 {
		fmt.Printf("\nSkipped %d file(s):\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Printf("  %s: %v\n", e.File, e.Err)
		}
	}

	if flagDryRun {
		fmt.Println("\nDry run, catalog not written.")
		return
	}

	if err := catalog.Save(flagCatalogPath, merged); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving catalog: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nCatalog written to %s\n", flagCatalogPath)
}
