package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect and edit the player profile",
	Long: `Manage the player profile: preferences, favorites, achievements,
and full export/import.

Examples:
  gameverse profile show
  gameverse profile set-pref theme neon
  gameverse profile favorite retro_breakout
  gameverse profile favorite retro_breakout --remove
  gameverse profile achievements
  gameverse profile export backup.json
  gameverse profile import backup.json`,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile document",
	Run:   runProfileShow,
}

var profileSetPrefCmd = &cobra.Command{
	Use:   "set-pref <key> <value>",
	Short: "Set a preference",
	Long: `Set a preference key. Values are parsed as bool, number, or string
in that order.`,
	Args: cobra.ExactArgs(2),
	Run:  runProfileSetPref,
}

var flagFavRemove bool

var profileFavoriteCmd = &cobra.Command{
	Use:   "favorite <game>",
	Short: "Add or remove a favorite game",
	Args:  cobra.ExactArgs(1),
	Run:   runProfileFavorite,
}

var profileAchievementsCmd = &cobra.Command{
	Use:   "achievements [game]",
	Short: "List unlocked achievements",
	Args:  cobra.MaximumNArgs(1),
	Run:   runProfileAchievements,
}

var profileExportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export the profile and statistics to one file",
	Args:  cobra.ExactArgs(1),
	Run:   runProfileExport,
}

var profileImportCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import a previously exported profile",
	Args:  cobra.ExactArgs(1),
	Run:   runProfileImport,
}

func init() {
	profileFavoriteCmd.Flags().BoolVar(&flagFavRemove, "remove", false, "Remove instead of add")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetPrefCmd)
	profileCmd.AddCommand(profileFavoriteCmd)
	profileCmd.AddCommand(profileAchievementsCmd)
	profileCmd.AddCommand(profileExportCmd)
	profileCmd.AddCommand(profileImportCmd)
}

func runProfileShow(_ *cobra.Command, _ []string) {
	pm, err := openProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profile: %v\n", err)
		os.Exit(1)
	}

	p := pm.Profile()
	fmt.Printf("Profile: %s\n", p.Name)
	fmt.Printf("  Created:     %s\n", p.CreatedDate.Format("2006-01-02"))
	fmt.Printf("  Last active: %s\n", p.LastActive.Format("2006-01-02 15:04"))

	fmt.Println("\nPreferences:")
	keys := make([]string, 0, len(p.Preferences))
	for k := range p.Preferences {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-22s %v\n", k, p.Preferences[k])
	}

	if len(p.Favorites) > 0 {
		fmt.Println("\nFavorites:")
		for _, id := range p.Favorites {
			fmt.Printf("  %s\n", id)
		}
	}

	fmt.Printf("\nAchievements unlocked: %d\n", len(p.Achievements))
}

func runProfileSetPref(_ *cobra.Command, args []string) {
	pm, err := openProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profile: %v\n", err)
		os.Exit(1)
	}

	key, raw := args[0], args[1]
	if err := pm.SetPreference(key, parsePrefValue(raw)); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving preference: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Set %s = %v\n", key, pm.Preference(key, nil))
}

// parsePrefValue keeps preference values typed: bools and numbers
// round-trip as themselves, everything else stays a string.
func parsePrefValue(raw string) any {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

func runProfileFavorite(_ *cobra.Command, args []string) {
	pm, err := openProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profile: %v\n", err)
		os.Exit(1)
	}

	gameID := args[0]
	if flagFavRemove {
		err = pm.RemoveFavorite(gameID)
	} else {
		err = pm.AddFavorite(gameID)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving profile: %v\n", err)
		os.Exit(1)
	}

	if flagFavRemove {
		fmt.Printf("Removed %s from favorites.\n", gameID)
	} else {
		fmt.Printf("Added %s to favorites.\n", gameID)
	}
}

func runProfileAchievements(_ *cobra.Command, args []string) {
	pm, err := openProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profile: %v\n", err)
		os.Exit(1)
	}

	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
	}

	achievements := pm.Achievements(gameID)
	if len(achievements) == 0 {
		fmt.Println("No achievements unlocked yet.")
		return
	}

	ids := make([]string, 0, len(achievements))
	for id := range achievements {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("Achievements:")
	for _, id := range ids {
		a := achievements[id]
		fmt.Printf("  %-24s %s", id, a.UnlockedDate.Format("2006-01-02"))
		if a.Description != "" {
			fmt.Printf("  %s", a.Description)
		}
		fmt.Println()
	}
}

func runProfileExport(_ *cobra.Command, args []string) {
	pm, err := openProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profile: %v\n", err)
		os.Exit(1)
	}

	if err := pm.Export(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting profile: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Profile exported to %s\n", args[0])
}

func runProfileImport(_ *cobra.Command, args []string) {
	pm, err := openProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profile: %v\n", err)
		os.Exit(1)
	}

	if err := pm.Import(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing profile: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Profile imported from %s\n", args[0])
}
