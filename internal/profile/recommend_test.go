package profile

import (
	"testing"

	"github.com/vovakirdan/gameverse/internal/metadata"
)

func testCatalog() []metadata.GameMetadata {
	return []metadata.GameMetadata{
		{ID: "breakout", Category: metadata.CategoryArcade},
		{ID: "runner", Category: metadata.CategoryPlatformer},
		{ID: "hopper", Category: metadata.CategoryPlatformer},
		{ID: "quiz", Category: metadata.CategoryQuiz},
		{ID: "racer", Category: metadata.CategoryRacing},
	}
}

func TestRecommendNoHistory(t *testing.T) {
	m := openTestManager(t)

	recs := m.RecommendGames(testCatalog(), 3)
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(recs))
	}
	// Nothing to personalize: catalog order.
	if recs[0].ID != "breakout" || recs[1].ID != "runner" || recs[2].ID != "hopper" {
		t.Errorf("order = %s, %s, %s; want first three catalog entries",
			recs[0].ID, recs[1].ID, recs[2].ID)
	}
}

func TestRecommendFavoriteCategoryFirst(t *testing.T) {
	m := openTestManager(t)

	// Heavy platformer history.
	m.RecordGameSession("runner", 3600, 10)
	m.RecordGameSession("breakout", 60, 5)

	recs := m.RecommendGames(testCatalog(), 2)
	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	if recs[0].ID != "hopper" {
		t.Errorf("first pick = %s, want the unplayed platformer hopper", recs[0].ID)
	}
	if recs[1].ID != "quiz" {
		t.Errorf("second pick = %s, want quiz in catalog order", recs[1].ID)
	}

	if m.Stats().FavoriteCategory != "platformer" {
		t.Errorf("FavoriteCategory = %q, want cached platformer", m.Stats().FavoriteCategory)
	}
}

func TestRecommendSkipsPlayedGames(t *testing.T) {
	m := openTestManager(t)

	for _, g := range testCatalog() {
		m.RecordGameSession(g.ID, 60, 0)
	}

	if recs := m.RecommendGames(testCatalog(), 3); len(recs) != 0 {
		t.Errorf("got %v, want nothing when everything was played", recs)
	}
}

func TestRecommendIgnoresUncataloged(t *testing.T) {
	m := openTestManager(t)

	// History for a game that has since left the catalog.
	m.RecordGameSession("deleted_game", 9999, 50)
	m.RecordGameSession("quiz", 60, 10)

	recs := m.RecommendGames(testCatalog(), 1)
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	// Only the quiz playtime counts, so quiz is the favorite category
	// and the deleted game's hours change nothing.
	if m.Stats().FavoriteCategory != "quiz" {
		t.Errorf("FavoriteCategory = %q, want quiz", m.Stats().FavoriteCategory)
	}
}

func TestMaxCategoryTieBreak(t *testing.T) {
	got := maxCategory(map[metadata.Category]int{
		metadata.CategoryRacing: 100,
		metadata.CategoryArcade: 100,
	})
	if got != metadata.CategoryArcade {
		t.Errorf("maxCategory() = %q, want alphabetical winner arcade", got)
	}
}

func TestRecommendZeroLimit(t *testing.T) {
	m := openTestManager(t)
	if recs := m.RecommendGames(testCatalog(), 0); recs != nil {
		t.Errorf("got %v, want nil for limit 0", recs)
	}
}
