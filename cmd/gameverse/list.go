package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cataloged games",
	Long:  `Shows all games currently in the catalog.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	doc, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	if len(doc.Games) == 0 {
		fmt.Println("Catalog is empty. Run 'gameverse discover' first.")
		return
	}

	fmt.Println("Cataloged games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range doc.Games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "ID", "Category", "Title")
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "--", "--------", "-----")

	// Print games
	for _, g := range doc.Games {
		title := g.Title
		if g.Multiplayer {
			title += " (multiplayer)"
		}
		fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, g.ID, g.Category, title)
	}

	fmt.Println()
	fmt.Println("Run 'gameverse play <id>' to play a game.")
}
