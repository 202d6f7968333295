package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gameverse/internal/hub"
	"github.com/vovakirdan/gameverse/internal/metadata"
	"github.com/vovakirdan/gameverse/internal/profile"
)

// Dashboard layout constants.
const (
	dashboardDays     = 7
	dashboardTopGames = 5
	dashboardRecs     = 3
	playtimeBarWidth  = 24
)

// DashboardModel renders the player statistics overlay: totals, top
// games, daily playtime, and recommendations.
type DashboardModel struct {
	pm       *profile.Manager
	games    []metadata.GameMetadata
	styles   hub.Styles
	keys     KeyMap
	table    table.Model
	width    int
	height   int
	back     bool
	quitting bool
}

// NewDashboardModel builds the dashboard from current statistics.
func NewDashboardModel(pm *profile.Manager, games []metadata.GameMetadata, theme hub.Theme, width, height int) DashboardModel {
	styles := theme.Styles()

	columns := []table.Column{
		{Title: "Game", Width: 22},
		{Title: "Playtime", Width: 10},
		{Title: "Sessions", Width: 8},
		{Title: "High", Width: 8},
		{Title: "Avg", Width: 8},
	}

	byID := make(map[string]metadata.GameMetadata, len(games))
	for _, g := range games {
		byID[g.ID] = g
	}

	var rows []table.Row
	for _, e := range pm.TopGames(dashboardTopGames, "playtime") {
		title := e.GameID
		if g, ok := byID[e.GameID]; ok {
			title = g.Title
		}
		rows = append(rows, table.Row{
			title,
			formatDuration(e.Playtime),
			fmt.Sprintf("%d", e.Sessions),
			fmt.Sprintf("%d", e.HighScore),
			fmt.Sprintf("%.1f", e.AverageScore),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.Bold(true).Foreground(lipgloss.Color(theme.Primary))
	ts.Selected = ts.Selected.Foreground(lipgloss.Color(theme.Accent))
	t.SetStyles(ts)

	return DashboardModel{
		pm:     pm,
		games:  games,
		styles: styles,
		keys:   DefaultKeyMap(),
		table:  t,
		width:  width,
		height: height,
	}
}

// Init initializes the dashboard.
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the dashboard.
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Stats):
			m.back = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	if m.quitting {
		return ""
	}

	s := m.pm.Stats()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.styles.Title.Render("  P L A Y E R   S T A T S  "), m.width))
	b.WriteString("\n\n")

	totals := fmt.Sprintf("Total playtime: %s   Sessions: %d   Achievements: %d   Favorite category: %s",
		formatDuration(s.TotalPlaytime), s.GamesPlayed, s.AchievementCount, s.FavoriteCategory)
	b.WriteString(centerText(m.styles.Subtitle.Render(totals), m.width))
	b.WriteString("\n\n")

	if len(m.pm.Stats().GameStats) == 0 {
		b.WriteString(centerText(m.styles.Muted.Render("No sessions recorded yet."), m.width))
		b.WriteString("\n")
	} else {
		b.WriteString(centerText("Top games", m.width))
		b.WriteString("\n")
		for _, line := range strings.Split(m.table.View(), "\n") {
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText("Last 7 days", m.width))
	b.WriteString("\n")
	for _, line := range m.playtimeBars() {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if recs := m.pm.RecommendGames(m.games, dashboardRecs); len(recs) > 0 {
		names := make([]string, len(recs))
		for i, g := range recs {
			names[i] = g.Title
		}
		b.WriteString("\n")
		b.WriteString(centerText(m.styles.Success.Render("Try next: "+strings.Join(names, ", ")), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.styles.Muted.Render("Esc: back  |  Q: quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// playtimeBars renders the daily playtime report as text bars, scaled
// to the busiest day.
func (m DashboardModel) playtimeBars() []string {
	days := m.pm.DailyPlaytime(dashboardDays)

	max := 0
	for _, d := range days {
		if d.Playtime > max {
			max = d.Playtime
		}
	}

	lines := make([]string, 0, len(days))
	for _, d := range days {
		width := 0
		if max > 0 {
			width = d.Playtime * playtimeBarWidth / max
		}
		bar := strings.Repeat("█", width) + strings.Repeat("░", playtimeBarWidth-width)
		lines = append(lines, fmt.Sprintf("%s %s %s",
			d.Date, m.styles.Favorite.Render(bar), formatDuration(d.Playtime)))
	}
	return lines
}

// BackToMenu reports whether the user wants the menu back.
func (m DashboardModel) BackToMenu() bool { return m.back }

// IsQuitting reports whether the user quit the hub.
func (m DashboardModel) IsQuitting() bool { return m.quitting }

// RunDashboard shows the dashboard until the user backs out or quits.
// The boolean reports whether to return to the menu.
func RunDashboard(pm *profile.Manager, games []metadata.GameMetadata, theme hub.Theme, width, height int) (bool, error) {
	model := NewDashboardModel(pm, games, theme, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	if m, ok := finalModel.(DashboardModel); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}

// formatDuration renders seconds as "1h23m" / "45m" / "30s".
func formatDuration(seconds int) string {
	switch {
	case seconds >= 3600:
		return fmt.Sprintf("%dh%02dm", seconds/3600, (seconds%3600)/60)
	case seconds >= 60:
		return fmt.Sprintf("%dm", seconds/60)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
