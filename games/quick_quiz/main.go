// Quick Quiz
//
// A trivia quiz: pick the right answer to each question before the
// round ends.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type question struct {
	prompt  string
	options []string
	correct int
}

var questions = []question{
	{"Which planet is closest to the sun?", []string{"Venus", "Mercury", "Mars"}, 1},
	{"How many bits are in a byte?", []string{"4", "8", "16"}, 1},
	{"What does TCP stand for?", []string{"Transmission Control Protocol", "Total Connection Packet", "Terminal Control Program"}, 0},
	{"Which year did the first moon landing happen?", []string{"1965", "1969", "1972"}, 1},
	{"What is the capital of Australia?", []string{"Sydney", "Melbourne", "Canberra"}, 2},
}

type model struct {
	index   int
	cursor  int
	score   int
	answers int
	done    bool
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "k":
		if !m.done && m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if !m.done && m.cursor < len(questions[m.index].options)-1 {
			m.cursor++
		}

	case "enter", " ":
		if m.done {
			return m, tea.Quit
		}
		if m.cursor == questions[m.index].correct {
			m.score += 20
		}
		m.answers++
		m.cursor = 0
		m.index++
		if m.index >= len(questions) {
			m.done = true
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, " QUICK QUIZ   score: %d\n\n", m.score)

	if m.done {
		fmt.Fprintf(&b, " Round over! You answered %d question(s) for %d points.\n", m.answers, m.score)
		b.WriteString("\n enter/q: quit\n")
		return b.String()
	}

	q := questions[m.index]
	fmt.Fprintf(&b, " %d/%d: %s\n\n", m.index+1, len(questions), q.prompt)
	for i, opt := range q.options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		fmt.Fprintf(&b, " %s%s\n", cursor, opt)
	}
	b.WriteString("\n up/down: choose, enter: answer, q: quit\n")
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
	p := tea.NewProgram(model{})
	final, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if m, ok := final.(model); ok {
		reportScore(m.score)
	}
}
