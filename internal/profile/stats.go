package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"time"
)

// GameStats accumulates per-game play statistics.
type GameStats struct {
	Playtime  int `json:"playtime"`
	Sessions  int `json:"sessions"`
	HighScore int `json:"high_score"`
	// AverageScore is a weighted running mean over scored sessions
	// only; ScoredSessions is its divisor. Zero-score sessions touch
	// neither.
	AverageScore   float64   `json:"average_score"`
	ScoredSessions int       `json:"scored_sessions"`
	LastPlayed     time.Time `json:"last_played,omitzero"`
	CompletionRate float64   `json:"completion_rate"`
}

// DailyBucket aggregates one calendar day. Games is deduplicated;
// Scores is not: every session of a day appends its raw score.
type DailyBucket struct {
	Playtime int              `json:"playtime"`
	Games    []string         `json:"games"`
	Scores   map[string][]int `json:"scores"`
}

// PeriodBucket aggregates one ISO week or one month. Games is kept as
// a sorted, deduplicated list because JSON has no native set type.
type PeriodBucket struct {
	Playtime int      `json:"playtime"`
	Games    []string `json:"games"`
	Sessions int      `json:"sessions"`
}

// Stats is the persisted per-user statistics document, separate from
// the profile document.
type Stats struct {
	TotalPlaytime    int                      `json:"total_playtime"`
	GamesPlayed      int                      `json:"games_played"`
	FavoriteCategory string                   `json:"favorite_category"`
	AchievementCount int                      `json:"achievement_count"`
	HighScores       map[string]int           `json:"high_scores"`
	GameStats        map[string]*GameStats    `json:"game_stats"`
	DailyStats       map[string]*DailyBucket  `json:"daily_stats"`
	WeeklyStats      map[string]*PeriodBucket `json:"weekly_stats"`
	MonthlyStats     map[string]*PeriodBucket `json:"monthly_stats"`
}

// Bucket key formats.
const (
	dayKeyFormat   = "2006-01-02"
	monthKeyFormat = "2006-01"
)

func weekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

func (m *Manager) loadStats() error {
	data, err := os.ReadFile(m.statsPath)
	if errors.Is(err, fs.ErrNotExist) {
		m.stats = defaultStats()
		return m.saveStats()
	}
	if err != nil {
		return fmt.Errorf("profile: cannot read %s: %w", m.statsPath, err)
	}

	var s Stats
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("profile: cannot parse %s: %w", m.statsPath, err)
	}

	s.normalize()
	m.stats = &s
	return nil
}

// normalize replaces nil maps left by decoding sparse documents.
func (s *Stats) normalize() {
	if s.HighScores == nil {
		s.HighScores = map[string]int{}
	}
	if s.GameStats == nil {
		s.GameStats = map[string]*GameStats{}
	}
	if s.DailyStats == nil {
		s.DailyStats = map[string]*DailyBucket{}
	}
	if s.WeeklyStats == nil {
		s.WeeklyStats = map[string]*PeriodBucket{}
	}
	if s.MonthlyStats == nil {
		s.MonthlyStats = map[string]*PeriodBucket{}
	}
}

func defaultStats() *Stats {
	return &Stats{
		FavoriteCategory: "arcade",
		HighScores:       map[string]int{},
		GameStats:        map[string]*GameStats{},
		DailyStats:       map[string]*DailyBucket{},
		WeeklyStats:      map[string]*PeriodBucket{},
		MonthlyStats:     map[string]*PeriodBucket{},
	}
}

func (m *Manager) saveStats() error {
	data, err := json.MarshalIndent(m.stats, "", "  ")
	if err != nil {
		return fmt.Errorf("profile: cannot encode stats: %w", err)
	}
	if err := os.WriteFile(m.statsPath, data, 0o644); err != nil {
		return fmt.Errorf("profile: cannot write %s: %w", m.statsPath, err)
	}
	return nil
}

// RecordGameSession records one completed game session: totals,
// per-game stats, high score, running average, and the daily, weekly,
// and monthly buckets, then persists the statistics document once.
// The launcher calls this exactly once per child game process.
func (m *Manager) RecordGameSession(gameID string, durationSeconds, score int) error {
	now := m.now()
	s := m.stats

	s.TotalPlaytime += durationSeconds
	s.GamesPlayed++

	gs := s.GameStats[gameID]
	if gs == nil {
		gs = &GameStats{}
		s.GameStats[gameID] = gs
	}

	gs.Playtime += durationSeconds
	gs.Sessions++
	gs.LastPlayed = now

	// High score is monotone: only a strictly greater score moves it,
	// and the top-level mapping mirrors it.
	if score > gs.HighScore {
		gs.HighScore = score
		s.HighScores[gameID] = score
	}

	// Zero-score sessions do not pollute the average or its divisor.
	if score > 0 {
		gs.ScoredSessions++
		n := float64(gs.ScoredSessions)
		gs.AverageScore = (gs.AverageScore*(n-1) + float64(score)) / n
	}

	m.updateTimeBuckets(gameID, durationSeconds, score, now)

	return m.saveStats()
}

func (m *Manager) updateTimeBuckets(gameID string, duration, score int, now time.Time) {
	s := m.stats

	day := now.Format(dayKeyFormat)
	daily := s.DailyStats[day]
	if daily == nil {
		daily = &DailyBucket{Scores: map[string][]int{}}
		s.DailyStats[day] = daily
	}
	daily.Playtime += duration
	daily.Games = appendUnique(daily.Games, gameID)
	if daily.Scores == nil {
		daily.Scores = map[string][]int{}
	}
	daily.Scores[gameID] = append(daily.Scores[gameID], score)

	bump := func(buckets map[string]*PeriodBucket, key string) {
		b := buckets[key]
		if b == nil {
			b = &PeriodBucket{}
			buckets[key] = b
		}
		b.Playtime += duration
		b.Sessions++
		b.Games = appendUnique(b.Games, gameID)
		sort.Strings(b.Games)
	}
	bump(s.WeeklyStats, weekKey(now))
	bump(s.MonthlyStats, now.Format(monthKeyFormat))
}

// GameStatsFor returns the statistics for one game, zeroed when the
// game has never been played.
func (m *Manager) GameStatsFor(gameID string) GameStats {
	if gs := m.stats.GameStats[gameID]; gs != nil {
		return *gs
	}
	return GameStats{}
}

// TopGameEntry pairs a game id with its statistics for ranking.
type TopGameEntry struct {
	GameID string
	GameStats
}

// TopGames returns up to limit games ranked descending by the given
// numeric field: "playtime" (default), "sessions", "high_score", or
// "average_score". Ties rank in game-id order so results are stable.
func (m *Manager) TopGames(limit int, sortBy string) []TopGameEntry {
	entries := make([]TopGameEntry, 0, len(m.stats.GameStats))
	for id, gs := range m.stats.GameStats {
		entries = append(entries, TopGameEntry{GameID: id, GameStats: *gs})
	}

	key := func(e TopGameEntry) float64 {
		switch sortBy {
		case "sessions":
			return float64(e.Sessions)
		case "high_score":
			return float64(e.HighScore)
		case "average_score":
			return e.AverageScore
		default:
			return float64(e.Playtime)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		ki, kj := key(entries[i]), key(entries[j])
		if ki != kj {
			return ki > kj
		}
		return entries[i].GameID < entries[j].GameID
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// DailyPlaytimeEntry is one day of the DailyPlaytime report.
type DailyPlaytimeEntry struct {
	Date     string
	Playtime int
}

// DailyPlaytime reports playtime for the last days calendar days,
// today first. Days without a recorded session report zero, so the
// result always has exactly days entries.
func (m *Manager) DailyPlaytime(days int) []DailyPlaytimeEntry {
	now := m.now()
	out := make([]DailyPlaytimeEntry, 0, days)
	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, -i).Format(dayKeyFormat)
		playtime := 0
		if b := m.stats.DailyStats[date]; b != nil {
			playtime = b.Playtime
		}
		out = append(out, DailyPlaytimeEntry{Date: date, Playtime: playtime})
	}
	return out
}

func appendUnique(list []string, v string) []string {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}
