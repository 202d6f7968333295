package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagRecLimit int

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest games to play next",
	Long: `Suggest games you have not played yet, favoring your most-played
category.

Examples:
  gameverse recommend
  gameverse recommend --limit 5`,
	Run: runRecommend,
}

func init() {
	recommendCmd.Flags().IntVar(&flagRecLimit, "limit", 3, "Maximum suggestions")
}

func runRecommend(_ *cobra.Command, _ []string) {
	pm, err := openProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profile: %v\n", err)
		os.Exit(1)
	}

	doc, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	recs := pm.RecommendGames(doc.Games, flagRecLimit)
	if len(recs) == 0 {
		fmt.Println("Nothing to recommend: you have played everything in the catalog.")
		return
	}

	fmt.Println("Try these next:")
	for _, g := range recs {
		fmt.Printf("  %-20s %-12s %s\n", g.ID, g.Category, g.Description)
	}
}
