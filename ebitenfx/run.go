package ebitenfx

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/fontfx"
)

// RunConfig configures Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	ClearColor fontfx.Color
	ShowFPS    bool

	// Update, when set, runs every tick before the stage updates. Returning
	// an error stops the game; ebiten.Termination stops it cleanly.
	Update func() error
}

// Game is an ebiten.Game that drives a fontfx.Stage at a fixed tick.
type Game struct {
	stage *fontfx.Stage
	batch *Batch
	cfg   RunConfig
}

// NewGame creates a Game for stage. Useful when the caller needs to wrap the
// game or run it with options of its own; otherwise use Run.
func NewGame(stage *fontfx.Stage, cfg RunConfig) *Game {
	if stage == nil {
		panic("fontfx: ebitenfx needs a stage")
	}
	return &Game{stage: stage, batch: NewBatch(), cfg: cfg}
}

// Stage returns the driven stage.
func (g *Game) Stage() *fontfx.Stage { return g.stage }

// Update advances the stage by one tick. Scheduler errors are logged, not
// fatal.
func (g *Game) Update() error {
	if g.cfg.Update != nil {
		if err := g.cfg.Update(); err != nil {
			return err
		}
	}
	dt := time.Second / time.Duration(ebiten.TPS())
	if err := g.stage.Update(dt); err != nil {
		log.Printf("fontfx: %v", err)
	}
	return nil
}

// Draw renders the stage onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(toNRGBA(g.cfg.ClearColor))
	g.stage.Draw(g.batch)
	g.batch.Flush(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout returns the configured logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives stage until the window closes or Update
// returns an error.
func Run(stage *fontfx.Stage, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("fontfx: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	g := NewGame(stage, cfg)
	defer g.batch.Dispose()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

func toNRGBA(c fontfx.Color) color.NRGBA {
	r, g, b, a := c.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
