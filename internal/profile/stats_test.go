package profile

import (
	"testing"
	"time"
)

func openTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := Open(t.TempDir(), "tester")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	// Pin the clock so bucket keys are predictable.
	m.now = func() time.Time {
		return time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)
	}
	return m
}

func TestRecordGameSession(t *testing.T) {
	m := openTestManager(t)

	if err := m.RecordGameSession("breakout", 300, 100); err != nil {
		t.Fatalf("RecordGameSession() failed: %v", err)
	}
	if err := m.RecordGameSession("breakout", 600, 300); err != nil {
		t.Fatalf("RecordGameSession() failed: %v", err)
	}

	s := m.Stats()
	if s.TotalPlaytime != 900 {
		t.Errorf("TotalPlaytime = %d, want 900", s.TotalPlaytime)
	}
	if s.GamesPlayed != 2 {
		t.Errorf("GamesPlayed = %d, want 2", s.GamesPlayed)
	}

	gs := m.GameStatsFor("breakout")
	if gs.Playtime != 900 {
		t.Errorf("Playtime = %d, want 900", gs.Playtime)
	}
	if gs.Sessions != 2 {
		t.Errorf("Sessions = %d, want 2", gs.Sessions)
	}
	if gs.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", gs.HighScore)
	}
	if gs.AverageScore != 200.0 {
		t.Errorf("AverageScore = %v, want 200.0", gs.AverageScore)
	}
	if s.HighScores["breakout"] != 300 {
		t.Errorf("HighScores mirror = %d, want 300", s.HighScores["breakout"])
	}
}

func TestHighScoreIsMonotone(t *testing.T) {
	m := openTestManager(t)

	m.RecordGameSession("pong", 60, 500)
	m.RecordGameSession("pong", 60, 200)

	gs := m.GameStatsFor("pong")
	if gs.HighScore != 500 {
		t.Errorf("HighScore = %d, want 500 after a lower score", gs.HighScore)
	}

	// An equal score must not rewrite it either.
	m.RecordGameSession("pong", 60, 500)
	if m.GameStatsFor("pong").HighScore != 500 {
		t.Errorf("HighScore moved on an equal score")
	}
}

func TestZeroScoreSessionsSkipAverage(t *testing.T) {
	m := openTestManager(t)

	m.RecordGameSession("quiz", 120, 0)
	m.RecordGameSession("quiz", 120, 100)
	m.RecordGameSession("quiz", 120, 0)

	gs := m.GameStatsFor("quiz")
	if gs.Sessions != 3 {
		t.Errorf("Sessions = %d, want 3", gs.Sessions)
	}
	if gs.ScoredSessions != 1 {
		t.Errorf("ScoredSessions = %d, want 1", gs.ScoredSessions)
	}
	if gs.AverageScore != 100.0 {
		t.Errorf("AverageScore = %v, want 100.0: zero scores must not dilute it", gs.AverageScore)
	}
}

func TestTimeBuckets(t *testing.T) {
	m := openTestManager(t)

	m.RecordGameSession("snake", 100, 10)
	m.RecordGameSession("snake", 50, 0)
	m.RecordGameSession("pong", 25, 5)

	day := m.stats.DailyStats["2026-08-28"]
	if day == nil {
		t.Fatal("daily bucket missing")
	}
	if day.Playtime != 175 {
		t.Errorf("daily Playtime = %d, want 175", day.Playtime)
	}
	if len(day.Games) != 2 {
		t.Errorf("daily Games = %v, want snake and pong once each", day.Games)
	}
	// Scores are per-session, not deduplicated.
	if got := day.Scores["snake"]; len(got) != 2 || got[0] != 10 || got[1] != 0 {
		t.Errorf("daily Scores[snake] = %v, want [10 0]", got)
	}

	week := m.stats.WeeklyStats["2026-W35"]
	if week == nil {
		t.Fatal("weekly bucket missing")
	}
	if week.Sessions != 3 || week.Playtime != 175 {
		t.Errorf("weekly bucket = %+v, want 3 sessions / 175s", week)
	}
	if len(week.Games) != 2 || week.Games[0] != "pong" || week.Games[1] != "snake" {
		t.Errorf("weekly Games = %v, want sorted [pong snake]", week.Games)
	}

	month := m.stats.MonthlyStats["2026-08"]
	if month == nil {
		t.Fatal("monthly bucket missing")
	}
	if month.Playtime != 175 {
		t.Errorf("monthly Playtime = %d, want 175", month.Playtime)
	}
}

func TestTopGames(t *testing.T) {
	m := openTestManager(t)

	m.RecordGameSession("alpha", 100, 50)
	m.RecordGameSession("beta", 300, 10)
	m.RecordGameSession("gamma", 200, 90)

	top := m.TopGames(2, "playtime")
	if len(top) != 2 {
		t.Fatalf("got %d entries, want 2", len(top))
	}
	if top[0].GameID != "beta" || top[1].GameID != "gamma" {
		t.Errorf("playtime order = %s, %s; want beta, gamma", top[0].GameID, top[1].GameID)
	}

	top = m.TopGames(3, "high_score")
	if top[0].GameID != "gamma" {
		t.Errorf("high_score leader = %s, want gamma", top[0].GameID)
	}
}

func TestTopGamesTieBreak(t *testing.T) {
	m := openTestManager(t)

	m.RecordGameSession("zed", 100, 0)
	m.RecordGameSession("abc", 100, 0)

	top := m.TopGames(2, "playtime")
	if top[0].GameID != "abc" || top[1].GameID != "zed" {
		t.Errorf("tie order = %s, %s; want abc, zed", top[0].GameID, top[1].GameID)
	}
}

func TestDailyPlaytime(t *testing.T) {
	m := openTestManager(t)
	m.RecordGameSession("snake", 90, 0)

	report := m.DailyPlaytime(7)
	if len(report) != 7 {
		t.Fatalf("got %d days, want exactly 7", len(report))
	}
	if report[0].Date != "2026-08-28" || report[0].Playtime != 90 {
		t.Errorf("today = %+v, want 2026-08-28 / 90s", report[0])
	}
	for _, d := range report[1:] {
		if d.Playtime != 0 {
			t.Errorf("day %s = %d, want 0 for unplayed days", d.Date, d.Playtime)
		}
	}
	if report[6].Date != "2026-08-22" {
		t.Errorf("oldest day = %s, want 2026-08-22", report[6].Date)
	}
}

func TestStatsPersistence(t *testing.T) {
	dir := t.TempDir()

	m, err := Open(dir, "saver")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := m.RecordGameSession("breakout", 120, 42); err != nil {
		t.Fatalf("RecordGameSession() failed: %v", err)
	}

	// A fresh manager over the same directory sees the same numbers.
	m2, err := Open(dir, "saver")
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	gs := m2.GameStatsFor("breakout")
	if gs.Playtime != 120 || gs.HighScore != 42 {
		t.Errorf("reloaded stats = %+v, want 120s / high 42", gs)
	}
}
