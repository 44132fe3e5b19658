// Package tui is the terminal front-end: a bubbletea model that drives an
// app.Session and renders the board with lipgloss.
//
// The model is meant for the bubbletea event loop. Pattern reloads from other
// goroutines arrive through Program.Send as ReloadMsg.
package tui

import (
	"fmt"
	"strings"
	"time"

	"lifegrid/internal/app"
	"lifegrid/internal/pattern"
	"lifegrid/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// Board origin inside the view: one title line, then the top border. Each
// cell is two terminal columns wide after the left border.
const (
	originX     = 1
	originY     = 2
	cellColumns = 2
)

const helpLine = "space run/pause  s step  c clear  r random  F1/F2 rotate  F3/F4 flip  arrows shift  q quit"

// ReloadMsg replaces the board with a freshly loaded pattern.
type ReloadMsg struct {
	Pattern pattern.Pattern
}

// ErrMsg reports a failure from outside the event loop, such as a watcher
// that could not reload a file.
type ErrMsg struct {
	Err error
}

type tickMsg time.Time

// Model is the bubbletea model for an interactive board.
type Model struct {
	session  *app.Session
	err      error
	quitting bool
}

// New wraps session in a model.
func New(session *app.Session) Model {
	return Model{session: session}
}

// Session returns the driven session.
func (m Model) Session() *app.Session { return m.session }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.session.Interval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.session.Tick()
		return m, m.tick()

	case ReloadMsg:
		m.session.Load(msg.Pattern)
		m.err = nil

	case ErrMsg:
		m.err = msg.Err

	case tea.KeyMsg:
		if !m.session.Do(keyAction(msg)) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if row, col, ok := cellAt(msg.X, msg.Y); ok {
				m.session.ToggleCell(row, col)
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	board := m.session.Board()
	info := ui.StatusInfo{
		Generation: m.session.Generation(),
		Population: board.Population(),
		Running:    m.session.Running(),
		Name:       m.session.PatternName(),
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("lifegrid %dx%d", board.Size().W, board.Size().H)))
	b.WriteByte('\n')
	b.WriteString(Board(board))
	b.WriteByte('\n')
	b.WriteString(statusStyle.Render(info.Left() + "  " + info.Right()))
	b.WriteByte('\n')
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteByte('\n')
	}
	b.WriteString(statusStyle.Render(helpLine))
	return b.String()
}

func cellAt(x, y int) (row, col int, ok bool) {
	if x < originX || y < originY {
		return 0, 0, false
	}
	return y - originY, (x - originX) / cellColumns, true
}

func keyAction(msg tea.KeyMsg) app.Action {
	switch msg.String() {
	case " ", "space":
		return app.ActionStartStop
	case "s":
		return app.ActionStep
	case "c":
		return app.ActionClear
	case "r":
		return app.ActionRandom
	case "f1":
		return app.ActionRotateCW
	case "f2":
		return app.ActionRotateCCW
	case "f3":
		return app.ActionFlipHorizontal
	case "f4":
		return app.ActionFlipVertical
	case "up":
		return app.ActionShiftUp
	case "down":
		return app.ActionShiftDown
	case "left":
		return app.ActionShiftLeft
	case "right":
		return app.ActionShiftRight
	case "q", "esc", "ctrl+c":
		return app.ActionQuit
	}
	return app.ActionNone
}
