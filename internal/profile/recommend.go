package profile

import (
	"sort"

	"github.com/vovakirdan/gameverse/internal/metadata"
)

// RecommendGames proposes up to limit unplayed games from the
// catalog, prioritized by the user's favorite category.
//
// With no play history at all there is nothing to personalize: the
// first limit catalog entries come back in catalog order. Otherwise
// playtime is accumulated per category (catalog entries only; played
// games missing from the catalog are skipped), the heaviest category
// wins with an alphabetical tie-break, and that pick is cached into
// the statistics document. Candidates are games that have never been
// played, favorite-category ones first, all in catalog order.
func (m *Manager) RecommendGames(all []metadata.GameMetadata, limit int) []metadata.GameMetadata {
	if limit <= 0 {
		return nil
	}

	if len(m.stats.GameStats) == 0 {
		if len(all) > limit {
			return all[:limit]
		}
		return all
	}

	byID := make(map[string]metadata.GameMetadata, len(all))
	for _, g := range all {
		byID[g.ID] = g
	}

	playtimeByCategory := map[metadata.Category]int{}
	for gameID, gs := range m.stats.GameStats {
		game, ok := byID[gameID]
		if !ok {
			continue
		}
		cat := game.Category
		if cat == "" {
			cat = metadata.CategoryArcade
		}
		playtimeByCategory[cat] += gs.Playtime
	}

	favorite := metadata.CategoryArcade
	if len(playtimeByCategory) > 0 {
		favorite = maxCategory(playtimeByCategory)
		m.stats.FavoriteCategory = string(favorite)
		// Best-effort cache; a failed write does not change the
		// recommendation itself.
		_ = m.saveStats()
	}

	var fromFavorite, others []metadata.GameMetadata
	for _, g := range all {
		if _, played := m.stats.GameStats[g.ID]; played {
			continue
		}
		if g.Category == favorite {
			fromFavorite = append(fromFavorite, g)
		} else {
			others = append(others, g)
		}
	}

	recommended := append(fromFavorite, others...)
	if len(recommended) > limit {
		recommended = recommended[:limit]
	}
	return recommended
}

// maxCategory picks the category with the most accumulated playtime.
// Ties break alphabetically so the result is deterministic across
// runs regardless of map iteration order.
func maxCategory(playtime map[metadata.Category]int) metadata.Category {
	cats := make([]metadata.Category, 0, len(playtime))
	for c := range playtime {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })

	best := cats[0]
	for _, c := range cats[1:] {
		if playtime[c] > playtime[best] {
			best = c
		}
	}
	return best
}
