package catalog

import (
	"maps"

	"github.com/vovakirdan/gameverse/internal/metadata"
)

// Merge combines a freshly discovered game list with an existing
// catalog document. It is a pure function of its inputs; persisting
// the result is the caller's separate step.
//
// Rules:
//   - entries are matched by file path
//   - on a match, discovered fields win except the user-owned set
//     (favorite, playtime, high_score, last_played, completion_rate),
//     which is preserved verbatim from the existing entry
//   - unmatched discovered entries are inserted as-is
//   - existing entries absent from discovery are dropped: discovery is
//     authoritative over presence, a deleted source file deletes its
//     catalog entry
//   - hub settings are injected only when the existing document has
//     none at all
func Merge(existing Document, discovered []metadata.GameMetadata) Document {
	byFile := make(map[string]metadata.GameMetadata, len(existing.Games))
	for _, g := range existing.Games {
		if g.File != "" {
			byFile[g.File] = g
		}
	}

	games := make([]metadata.GameMetadata, 0, len(discovered))
	for _, d := range discovered {
		prev, ok := byFile[d.File]
		if !ok {
			games = append(games, d)
			continue
		}

		merged := d
		if prev.ID != "" {
			merged.ID = prev.ID
		}
		merged.Favorite = prev.Favorite
		merged.Playtime = prev.Playtime
		merged.HighScore = prev.HighScore
		merged.LastPlayed = prev.LastPlayed
		merged.CompletionRate = prev.CompletionRate
		games = append(games, merged)
	}

	settings := DefaultHubSettings()
	if len(existing.HubSettings) > 0 {
		settings = make(map[string]any, len(existing.HubSettings))
		maps.Copy(settings, existing.HubSettings)
	}

	return Document{Games: games, HubSettings: settings}
}
