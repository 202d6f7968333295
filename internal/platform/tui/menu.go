// Package tui provides the hub's terminal UI: the game picker menu,
// the statistics dashboard, and SSH serving via Wish.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gameverse/internal/hub"
	"github.com/vovakirdan/gameverse/internal/metadata"
	"github.com/vovakirdan/gameverse/internal/profile"
)

// allCategories is the sentinel for an unfiltered menu.
const allCategories = "all"

// MenuModel is the Bubble Tea model for the hub game picker.
type MenuModel struct {
	games     []metadata.GameMetadata
	visible   []metadata.GameMetadata
	pm        *profile.Manager
	styles    hub.Styles
	layout    hub.Layout
	keys      KeyMap
	help      help.Model
	cursor    int
	width     int
	height    int
	filters   []string
	filterIx  int
	quitting  bool
	selected  *metadata.GameMetadata
	openStats bool
}

// NewMenuModel creates a menu over the merged catalog games.
func NewMenuModel(games []metadata.GameMetadata, pm *profile.Manager, theme hub.Theme, layout hub.Layout, width, height int) MenuModel {
	m := MenuModel{
		games:   games,
		pm:      pm,
		styles:  theme.Styles(),
		layout:  layout,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
		filters: categoryFilters(games),
	}
	m.applyFilter()
	return m
}

// categoryFilters lists "all" plus every category present, in first
// appearance order.
func categoryFilters(games []metadata.GameMetadata) []string {
	filters := []string{allCategories}
	seen := map[string]bool{}
	for _, g := range games {
		c := string(g.Category)
		if c != "" && !seen[c] {
			seen[c] = true
			filters = append(filters, c)
		}
	}
	return filters
}

func (m *MenuModel) applyFilter() {
	active := m.filters[m.filterIx]
	if active == allCategories {
		m.visible = m.games
	} else {
		m.visible = nil
		for _, g := range m.games {
			if string(g.Category) == active {
				m.visible = append(m.visible, g)
			}
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.visible) > 0 {
			selected := m.visible[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Favorite):
		if len(m.visible) > 0 && m.pm != nil {
			id := m.visible[m.cursor].ID
			if m.pm.IsFavorite(id) {
				_ = m.pm.RemoveFavorite(id)
			} else {
				_ = m.pm.AddFavorite(id)
			}
		}

	case key.Matches(msg, m.keys.Filter):
		m.filterIx = (m.filterIx + 1) % len(m.filters)
		m.applyFilter()

	case key.Matches(msg, m.keys.Stats):
		m.openStats = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.styles.Title.Render("  G A M E V E R S E  "), m.width))
	b.WriteString("\n\n")

	subtitle := "Select a game"
	if active := m.filters[m.filterIx]; active != allCategories {
		subtitle = fmt.Sprintf("Category: %s", active)
	}
	b.WriteString(centerText(m.styles.Subtitle.Render(subtitle), m.width))
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(centerText(m.styles.Muted.Render("No games discovered yet. Run 'gameverse discover'."), m.width))
		b.WriteString("\n")
	}

	for i, g := range m.visible {
		cursor := "  "
		style := m.styles.Item
		if i == m.cursor {
			cursor = "> "
			style = m.styles.Selected
		}

		star := "  "
		if m.pm != nil && m.pm.IsFavorite(g.ID) {
			star = m.styles.Favorite.Render("★ ")
		}

		line := fmt.Sprintf("%s%s%s %s", cursor, star, style.Render(g.Title),
			m.styles.Muted.Render("("+string(g.Category)+")"))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")

		if m.layout.ShowDescriptions && i == m.cursor && g.Description != "" {
			b.WriteString(centerText(m.styles.Muted.Render(truncate(g.Description, m.width-8)), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen game, or nil.
func (m MenuModel) Selected() *metadata.GameMetadata { return m.selected }

// IsQuitting reports whether the user quit the hub.
func (m MenuModel) IsQuitting() bool { return m.quitting }

// WantsStats reports whether the user opened the dashboard.
func (m MenuModel) WantsStats() bool { return m.openStats }

// MenuResult holds the outcome of one menu run.
type MenuResult struct {
	Selected  *metadata.GameMetadata
	OpenStats bool
	Quit      bool
}

// RunMenu runs the picker until the user selects a game, opens the
// dashboard, or quits.
func RunMenu(games []metadata.GameMetadata, pm *profile.Manager, theme hub.Theme, layout hub.Layout, width, height int) (MenuResult, error) {
	model := NewMenuModel(games, pm, theme, layout, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}

	switch {
	case m.WantsStats():
		return MenuResult{OpenStats: true}, nil
	case m.Selected() != nil:
		return MenuResult{Selected: m.Selected()}, nil
	default:
		return MenuResult{Quit: true}, nil
	}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
