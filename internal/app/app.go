//go:build ebiten

package app

import (
	"image/color"

	"lifegrid/internal/life"
	"lifegrid/internal/pattern"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	repeatDelay    = 24
	repeatInterval = 4
)

type drawer interface {
	Bind(life.Surface)
	Draw()
}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	surface *render.EbitenSurface
	drawer  drawer
	status  *ui.Status
	size    int
	reloads <-chan pattern.Pattern
}

// New constructs a Game for board. Patterns received on reloads replace the
// board between frames; reloads may be nil.
func New(board Board, cfg *Config, reloads <-chan pattern.Pattern) *Game {
	g := &Game{
		session: NewSession(board, cfg.Interval, cfg.Seed),
		surface: render.NewEbitenSurface(),
		status:  ui.NewStatus(cfg.Size),
		size:    cfg.Size,
		reloads: reloads,
	}
	if d, ok := board.(drawer); ok {
		d.Bind(g.surface)
		g.drawer = d
	}
	return g
}

// Session exposes the session driving the board.
func (g *Game) Session() *Session { return g.session }

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	select {
	case p := <-g.reloads:
		g.session.Load(p)
	default:
	}

	if !g.session.Do(pressedAction()) {
		return ebiten.Termination
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.session.ClickAt(float64(x), float64(y))
	}
	g.session.Tick()
	return nil
}

// Draw renders the board and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if g.drawer != nil {
		g.surface.SetTarget(screen)
		g.drawer.Draw()
	}
	g.status.Draw(screen, g.size, ui.StatusInfo{
		Generation: g.session.Generation(),
		Population: g.session.Board().Population(),
		Running:    g.session.Running(),
		Name:       g.session.PatternName(),
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size, g.size + g.status.Height()
}

func pressedAction() Action {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ActionQuit
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		return ActionStartStop
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		return ActionClear
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return ActionRandom
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		return ActionRotateCW
	case inpututil.IsKeyJustPressed(ebiten.KeyF2):
		return ActionRotateCCW
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		return ActionFlipHorizontal
	case inpututil.IsKeyJustPressed(ebiten.KeyF4):
		return ActionFlipVertical
	case repeating(ebiten.KeyS):
		return ActionStep
	case !ctrl && repeating(ebiten.KeyArrowUp):
		return ActionShiftUp
	case !ctrl && repeating(ebiten.KeyArrowDown):
		return ActionShiftDown
	case !ctrl && repeating(ebiten.KeyArrowLeft):
		return ActionShiftLeft
	case !ctrl && repeating(ebiten.KeyArrowRight):
		return ActionShiftRight
	}
	return ActionNone
}

// repeating reports a press on the first frame and then periodically while
// the key is held.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}
