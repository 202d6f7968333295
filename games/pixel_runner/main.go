// Pixel Runner
//
// An endless runner: jump over obstacles before gravity pulls you back
// to the platform. The longer you survive, the faster it gets.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	trackW     = 48
	groundY    = 8
	runnerX    = 6
	jumpPower  = 3
	gravity    = 1
	minGapSize = 8
)

type tickMsg time.Time

func tick(speed time.Duration) tea.Cmd {
	return tea.Tick(speed, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	runnerY   int
	velY      int
	obstacles []int
	sinceLast int
	score     int
	speed     time.Duration
	over      bool
	rng       *rand.Rand
}

func newModel() model {
	return model{
		runnerY: groundY,
		speed:   80 * time.Millisecond,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (m model) Init() tea.Cmd {
	return tick(m.speed)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "up", "w":
			if m.runnerY == groundY && !m.over {
				m.velY = -jumpPower
			}
		}

	case tickMsg:
		if m.over {
			return m, nil
		}
		m = m.step()
		return m, tick(m.speed)
	}
	return m, nil
}

// step advances the world one column.
func (m model) step() model {
	m.velY += gravity
	m.runnerY += m.velY
	if m.runnerY >= groundY {
		m.runnerY = groundY
		m.velY = 0
	}

	for i := range m.obstacles {
		m.obstacles[i]--
	}
	for len(m.obstacles) > 0 && m.obstacles[0] < 0 {
		m.obstacles = m.obstacles[1:]
		m.score++
		if m.score%10 == 0 && m.speed > 40*time.Millisecond {
			m.speed -= 5 * time.Millisecond
		}
	}

	m.sinceLast++
	if m.sinceLast >= minGapSize && m.rng.Intn(10) == 0 {
		m.obstacles = append(m.obstacles, trackW-1)
		m.sinceLast = 0
	}

	for _, x := range m.obstacles {
		if x == runnerX && m.runnerY == groundY {
			m.over = true
		}
	}
	return m
}

func (m model) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, " PIXEL RUNNER   score: %d\n\n", m.score)

	for y := 0; y <= groundY; y++ {
		for x := 0; x < trackW; x++ {
			ch := byte(' ')
			if x == runnerX && y == m.runnerY {
				ch = '@'
			}
			if y == groundY {
				for _, ox := range m.obstacles {
					if x == ox {
						ch = '^'
					}
				}
			}
			b.WriteByte(ch)
		}
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat("=", trackW))
	b.WriteByte('\n')

	if m.over {
		b.WriteString("\n GAME OVER - press q to quit\n")
	} else {
		b.WriteString("\n space/w: jump, q: quit\n")
	}
	return b.String()
}

func reportScore(score int) {
	path := os.Getenv("GAMEVERSE_SCORE_FILE")
	if path == "" {
		return
	}
	os.WriteFile(path, []byte(fmt.Sprintf("%d", score)), 0o644)
}

func main() {
	p := tea.NewProgram(newModel())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if m, ok := final.(model); ok {
		reportScore(m.score)
	}
}
