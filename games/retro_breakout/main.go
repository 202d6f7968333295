// Retro Breakout
//
// Break every brick with the bouncing ball. Move the paddle with the
// arrow keys and do not let the ball fall.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldW    = 40
	fieldH    = 18
	paddleW   = 7
	brickRows = 4
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	paddleX int
	ballX   int
	ballY   int
	velX    int
	velY    int
	bricks  [brickRows][fieldW / 4]bool
	score   int
	over    bool
}

func newModel() model {
	m := model{
		paddleX: fieldW/2 - paddleW/2,
		ballX:   fieldW / 2,
		ballY:   fieldH - 3,
		velX:    1,
		velY:    -1,
	}
	for r := 0; r < brickRows; r++ {
		for c := range m.bricks[r] {
			m.bricks[r][c] = true
		}
	}
	return m
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "a":
			if m.paddleX > 0 {
				m.paddleX -= 2
			}
		case "right", "d":
			if m.paddleX < fieldW-paddleW {
				m.paddleX += 2
			}
		}

	case tickMsg:
		if m.over {
			return m, nil
		}
		m = m.step()
		return m, tick()
	}
	return m, nil
}

// step advances the ball one cell and handles collisions.
func (m model) step() model {
	nx, ny := m.ballX+m.velX, m.ballY+m.velY

	if nx < 0 || nx >= fieldW {
		m.velX = -m.velX
		nx = m.ballX + m.velX
	}
	if ny < 0 {
		m.velY = -m.velY
		ny = m.ballY + m.velY
	}

	if ny < brickRows {
		c := nx / 4
		if c >= 0 && c < len(m.bricks[0]) && m.bricks[ny][c] {
			m.bricks[ny][c] = false
			m.score += 10
			m.velY = -m.velY
			ny = m.ballY + m.velY
		}
	}

	if ny == fieldH-2 && nx >= m.paddleX && nx < m.paddleX+paddleW {
		m.velY = -1
		ny = m.ballY + m.velY
	}

	if ny >= fieldH {
		m.over = true
		return m
	}

	m.ballX, m.ballY = nx, ny
	return m
}

func (m model) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, " RETRO BREAKOUT   score: %d\n", m.score)
	for y := 0; y < fieldH; y++ {
		for x := 0; x < fieldW; x++ {
			switch {
			case y < brickRows && m.bricks[y][x/4]:
				b.WriteByte('#')
			case x == m.ballX && y == m.ballY:
				b.WriteByte('o')
			case y == fieldH-1 && x >= m.paddleX && x < m.paddleX+paddleW:
				b.WriteByte('=')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	if m.over {
		b.WriteString("\n GAME OVER - press q to quit\n")
	} else {
		b.WriteString("\n arrows/a/d: move, q: quit\n")
	}
	return b.String()
}

// reportScore writes the final score for the hub, when launched by it.
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
