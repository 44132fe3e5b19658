package app

import (
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/metrics"
	"lifegrid/internal/pattern"
)

// Action is a board operation triggered from a key or button.
type Action int

const (
	ActionNone Action = iota
	ActionStartStop
	ActionStep
	ActionClear
	ActionRandom
	ActionRotateCW
	ActionRotateCCW
	ActionFlipHorizontal
	ActionFlipVertical
	ActionShiftUp
	ActionShiftDown
	ActionShiftLeft
	ActionShiftRight
	ActionQuit
)

var actionNames = map[Action]string{
	ActionStartStop:      "start_stop",
	ActionStep:           "step",
	ActionClear:          "clear",
	ActionRandom:         "random",
	ActionRotateCW:       "rotate_cw",
	ActionRotateCCW:      "rotate_ccw",
	ActionFlipHorizontal: "flip_horizontal",
	ActionFlipVertical:   "flip_vertical",
	ActionShiftUp:        "shift_up",
	ActionShiftDown:      "shift_down",
	ActionShiftLeft:      "shift_left",
	ActionShiftRight:     "shift_right",
	ActionQuit:           "quit",
}

// String returns the action name used in logs and metrics.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// Board is a sim that supports every session action.
type Board interface {
	core.Sim
	core.Editor
	core.Transformer
	core.Populator
}

// Session drives a board for an interactive front-end: it owns the generation
// counter and the running flag. It is not safe for concurrent use.
type Session struct {
	board      Board
	timer      *core.FixedStep
	generation int
	running    bool
	name       string
	seed       int64
}

// NewSession wraps board. interval is the time between generations while
// running; seed feeds the random pattern.
func NewSession(board Board, interval time.Duration, seed int64) *Session {
	timer := core.NewFixedStep(0)
	timer.SetInterval(interval)
	return &Session{board: board, timer: timer, seed: seed}
}

// Board returns the driven board.
func (s *Session) Board() Board { return s.board }

// Generation returns the number of generations since the last reset.
func (s *Session) Generation() int { return s.generation }

// Running reports whether generations advance on Tick.
func (s *Session) Running() bool { return s.running }

// PatternName returns the name of the last loaded pattern, if any.
func (s *Session) PatternName() string { return s.name }

// Interval returns the time between generations while running.
func (s *Session) Interval() time.Duration { return s.timer.Step() }

// Tick evolves once if the session is running and an interval has elapsed.
func (s *Session) Tick() bool {
	if !s.running || !s.timer.ShouldStep() {
		return false
	}
	s.evolve()
	return true
}

// Do performs an action. It reports false for ActionQuit so the caller can
// shut down.
func (s *Session) Do(a Action) bool {
	switch a {
	case ActionQuit:
		s.Stop()
		return false
	case ActionStartStop:
		if s.running {
			s.Stop()
		} else {
			s.Start()
		}
	case ActionStep:
		s.Stop()
		s.evolve()
	case ActionClear:
		s.Stop()
		s.generation = 0
		s.board.Clear()
		metrics.ObservePopulation(0)
	case ActionRandom:
		s.Stop()
		s.generation = 0
		s.board.Reset(s.seed)
		s.seed++
		metrics.ObservePopulation(s.board.Population())
	case ActionRotateCW, ActionRotateCCW, ActionFlipHorizontal, ActionFlipVertical,
		ActionShiftUp, ActionShiftDown, ActionShiftLeft, ActionShiftRight:
		s.Stop()
		s.transform(a)
	}
	return true
}

// Start begins evolving on Tick. The first generation happens immediately.
func (s *Session) Start() {
	if s.running {
		return
	}
	s.running = true
	s.evolve()
	s.timer.Reset()
}

// Stop pauses evolution.
func (s *Session) Stop() { s.running = false }

// ClickAt toggles the cell under pixel x, y. Clicks are ignored while running.
func (s *Session) ClickAt(x, y float64) {
	s.ToggleCell(s.board.CellAt(x, y))
}

// ToggleCell toggles the cell at row, col and resets the generation counter.
// It is ignored while running.
func (s *Session) ToggleCell(row, col int) {
	if s.running {
		return
	}
	s.generation = 0
	s.board.Toggle(row, col)
	metrics.ObservePopulation(s.board.Population())
}

// Load replaces the board with p.
func (s *Session) Load(p pattern.Pattern) {
	s.Stop()
	s.generation = 0
	p.Apply(s.board)
	s.name, _ = p.Name()
	metrics.ObservePopulation(s.board.Population())
}

func (s *Session) evolve() {
	s.generation++
	s.board.Step()
	metrics.ObserveGeneration(s.board.Population())
}

func (s *Session) transform(a Action) {
	b := s.board
	ops := map[Action]func(){
		ActionRotateCW:       b.RotateClockwise,
		ActionRotateCCW:      b.RotateCounterClockwise,
		ActionFlipHorizontal: b.FlipHorizontal,
		ActionFlipVertical:   b.FlipVertical,
		ActionShiftUp:        b.ShiftUp,
		ActionShiftDown:      b.ShiftDown,
		ActionShiftLeft:      b.ShiftLeft,
		ActionShiftRight:     b.ShiftRight,
	}
	ops[a]()
	metrics.ObserveTransform(a.String())
	metrics.ObservePopulation(b.Population())
}
