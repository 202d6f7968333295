package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	flagStatsDays  int
	flagStatsSort  string
	flagStatsLimit int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show player statistics",
	Long: `Print a statistics report for the player: totals, top games,
and a daily playtime breakdown.

Sort options for the top games table:
  playtime       - Total seconds played (default)
  sessions       - Number of sessions
  high_score     - Best score
  average_score  - Mean score over scored sessions

Examples:
  gameverse stats
  gameverse stats --days 14 --sort sessions
  gameverse stats --profile alice`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsDays, "days", 7, "Days to include in the playtime breakdown")
	statsCmd.Flags().StringVar(&flagStatsSort, "sort", "playtime", "Top games sort key")
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 5, "Top games to show")
}

func runStats(_ *cobra.Command, _ []string) {
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

	s := pm.Stats()

	fmt.Printf("Statistics for %s\n\n", pm.Name())
	fmt.Printf("  Total playtime:     %s\n", formatSeconds(s.TotalPlaytime))
	fmt.Printf("  Sessions played:    %d\n", s.GamesPlayed)
	fmt.Printf("  Achievements:       %d\n", s.AchievementCount)
	fmt.Printf("  Favorite category:  %s\n", s.FavoriteCategory)

	top := pm.TopGames(flagStatsLimit, flagStatsSort)
	if len(top) > 0 {
		fmt.Printf("\nTop games by %s:\n", flagStatsSort)
		fmt.Printf("  %-20s %10s %9s %7s %7s\n", "Game", "Playtime", "Sessions", "High", "Avg")
		for _, e := range top {
			title := e.GameID
			if g, ok := doc.Find(e.GameID); ok {
				title = g.Title
			}
			fmt.Printf("  %-20s %10s %9d %7d %7.1f\n",
				title, formatSeconds(e.Playtime), e.Sessions, e.HighScore, e.AverageScore)
		}
	}

	fmt.Printf("\nLast %d days:\n", flagStatsDays)
	for _, d := range pm.DailyPlaytime(flagStatsDays) {
		bar := strings.Repeat("#", barWidth(d.Playtime, 40))
		fmt.Printf("  %s  %-40s %s\n", d.Date, bar, formatSeconds(d.Playtime))
	}
}

// barWidth scales seconds to a bar length, one column per 90 seconds,
// capped at max.
func barWidth(seconds, max int) int {
	w := seconds / 90
	if w > max {
		return max
	}
	return w
}

// formatSeconds renders seconds as "1h23m" / "45m" / "30s".
func formatSeconds(seconds int) string {
	switch {
	case seconds >= 3600:
		return fmt.Sprintf("%dh%02dm", seconds/3600, (seconds%3600)/60)
	case seconds >= 60:
		return fmt.Sprintf("%dm", seconds/60)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
