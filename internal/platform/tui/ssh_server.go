package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/gameverse/internal/catalog"
	"github.com/vovakirdan/gameverse/internal/hub"
	"github.com/vovakirdan/gameverse/internal/metadata"
	"github.com/vovakirdan/gameverse/internal/profile"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.gameverse/host_key.
	HostKeyPath string

	// CatalogPath is the games catalog document to serve.
	CatalogPath string

	// DataDir is where remote users' profile documents live.
	DataDir string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		CatalogPath: catalog.DefaultPath,
		DataDir:     profile.DefaultDataDir,
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves the hub's browse UI over SSH. Remote sessions see
// the catalog and their own statistics; they cannot spawn game
// processes on the host.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	doc    catalog.Document
	theme  hub.Theme
	layout hub.Layout
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gameverse-ssh",
	})

	doc, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	if len(doc.Games) == 0 {
		logger.Warn("catalog is empty, remote sessions will see no games", "path", cfg.CatalogPath)
	}

	hubCfg, err := hub.Load("")
	if err != nil {
		hubCfg = hub.DefaultConfig()
	}
	themeID, _ := doc.HubSettings["theme"].(string)
	layoutID, _ := doc.HubSettings["layout"].(string)

	srv := &SSHServer{
		config: cfg,
		doc:    doc,
		theme:  hubCfg.Theme(themeID),
		layout: hubCfg.Layout(layoutID),
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".gameverse", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	// Each remote user browses with their own profile. A profile that
	// cannot be opened degrades to an anonymous read-only session.
	pm, err := profile.Open(s.config.DataDir, sanitizeProfileName(sshSession.User()))
	if err != nil {
		s.logger.Warn("cannot open remote profile", "user", sshSession.User(), "error", err)
		pm = nil
	}

	model := NewBrowseModel(s.doc.Games, pm, s.theme, s.layout, pty.Window.Width, pty.Window.Height)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sanitizeProfileName keeps remote usernames filesystem-safe.
func sanitizeProfileName(user string) string {
	var b strings.Builder
	for _, r := range user {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "remote"
	}
	return b.String()
}

// BrowseModel is the top-level model for remote sessions: menu,
// dashboard, and a read-only game detail view. Selecting a game shows
// its details instead of launching it.
type BrowseModel struct {
	games    []metadata.GameMetadata
	pm       *profile.Manager
	theme    hub.Theme
	menu     MenuModel
	dash     *DashboardModel
	detail   *metadata.GameMetadata
	width    int
	height   int
	quitting bool
}

// NewBrowseModel creates a browse session over the catalog.
func NewBrowseModel(games []metadata.GameMetadata, pm *profile.Manager, theme hub.Theme, layout hub.Layout, width, height int) BrowseModel {
	return BrowseModel{
		games:  games,
		pm:     pm,
		theme:  theme,
		menu:   NewMenuModel(games, pm, theme, layout, width, height),
		width:  width,
		height: height,
	}
}

// Init initializes the browse session.
func (m BrowseModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active view.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.detail != nil {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "q", "ctrl+c":
				m.quitting = true
				return m, tea.Quit
			default:
				m.detail = nil
				return m, nil
			}
		}
		return m, nil
	}

	if m.dash != nil {
		newDash, cmd := m.dash.Update(msg)
		if dm, ok := newDash.(DashboardModel); ok {
			m.dash = &dm
		}
		if m.dash.IsQuitting() {
			m.quitting = true
			return m, tea.Quit
		}
		if m.dash.BackToMenu() {
			m.dash = nil
			m.menu = NewMenuModel(m.games, m.pm, m.theme, m.menu.layout, m.width, m.height)
			return m, m.menu.Init()
		}
		return m, cmd
	}

	newMenu, cmd := m.menu.Update(msg)
	if mm, ok := newMenu.(MenuModel); ok {
		m.menu = mm
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.menu.WantsStats() && m.pm != nil {
		dash := NewDashboardModel(m.pm, m.games, m.theme, m.width, m.height)
		m.dash = &dash
		m.menu.openStats = false
		return m, m.dash.Init()
	}
	if sel := m.menu.Selected(); sel != nil {
		m.detail = sel
		m.menu.selected = nil
		return m, nil
	}

	return m, cmd
}

// View renders the active view.
func (m BrowseModel) View() string {
	if m.quitting {
		return ""
	}
	if m.detail != nil {
		return m.detailView()
	}
	if m.dash != nil {
		return m.dash.View()
	}
	return m.menu.View()
}

// detailView renders a read-only metadata card for one game.
func (m BrowseModel) detailView() string {
	styles := m.theme.Styles()
	g := *m.detail

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(styles.Title.Render(g.Title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(styles.Item.Render(g.Description), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(styles.Muted.Render(
		fmt.Sprintf("Category: %s   Difficulty: %s   Est. playtime: %s",
			g.Category, g.Difficulty, g.EstimatedPlaytime)), m.width))
	b.WriteString("\n")
	if len(g.Tags) > 0 {
		b.WriteString(centerText(styles.Muted.Render("Tags: "+strings.Join(g.Tags, ", ")), m.width))
		b.WriteString("\n")
	}

	if m.pm != nil {
		gs := m.pm.GameStatsFor(g.ID)
		if gs.Sessions > 0 {
			b.WriteString("\n")
			b.WriteString(centerText(styles.Subtitle.Render(
				fmt.Sprintf("Your stats: %s played, %d sessions, high score %d",
					formatDuration(gs.Playtime), gs.Sessions, gs.HighScore)), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(styles.Muted.Render("Any key: back  |  Q: quit"), m.width))
	b.WriteString("\n")
	return b.String()
}
