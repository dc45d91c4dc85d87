// Package desktop runs the game in a native window through ebiten.
package desktop

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/gravity-dodge/internal/config"
	"github.com/vovakirdan/gravity-dodge/internal/core"
	"github.com/vovakirdan/gravity-dodge/internal/dodge"
	"github.com/vovakirdan/gravity-dodge/internal/storage"
)

var jumpKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}

// Options configures a desktop Game.
type Options struct {
	Config config.DodgeConfig
	Store  *storage.Store // nil keeps the high score in memory
	Logger *log.Logger
	Seed   int64
}

// Game implements ebiten.Game around one World.
type Game struct {
	world  *dodge.World
	hud    *dodge.DisplayState
	input  core.InputFrame
	store  *storage.Store
	logger *log.Logger
	face   *text.GoTextFaceSource
	runID  string
	width  int
	height int
}

// NewGame creates the game and loads the HUD font.
func NewGame(opts Options) (*Game, error) {
	face, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("desktop: cannot load font: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := &dodge.DisplayState{}
	worldOpts := []dodge.Option{dodge.WithDisplay(h), dodge.WithLogger(logger)}
	if opts.Store != nil {
		worldOpts = append(worldOpts, dodge.WithStore(opts.Store))
	}

	return &Game{
		world:  dodge.NewWorld(opts.Config, opts.Seed, worldOpts...),
		hud:    h,
		input:  core.NewInputFrame(),
		store:  opts.Store,
		logger: logger,
		face:   face,
		width:  int(opts.Config.Canvas.Width),
		height: int(opts.Config.Canvas.Height),
	}, nil
}

// Update collects edge-triggered input and steps the world once.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, k := range jumpKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.input.Set(core.ActionJump)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.input.Set(core.ActionJump)
	}

	result := g.world.Step(g.input)
	g.input.Clear()

	if result.Started {
		g.runID = uuid.NewString()
	}
	if result.Ended {
		g.logger.Debug("run ended", "run", g.runID, "score", result.State.Score)
		if g.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			g.store.SaveScore(g.runID, result.State.Score)
		}
	}
	return nil
}

// Draw renders the world and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Render(vectorSurface{dst: screen})
	g.drawHUD(screen)
}

// Layout keeps the logical screen at the world size; ebiten scales the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	g.drawText(screen, fmt.Sprintf("Score: %d", g.hud.Score), 12, 10, 20, text.AlignStart)
	g.drawText(screen, fmt.Sprintf("Best: %d", g.hud.HighScore), 12, float64(g.width)-10, 20, text.AlignEnd)

	cx, cy := float64(g.width)/2, float64(g.height)/2
	switch {
	case g.hud.StartOpen:
		g.drawText(screen, "GRAVITY DODGE", 28, cx, cy-40, text.AlignCenter)
		g.drawText(screen, "Press Space to start", 14, cx, cy+10, text.AlignCenter)
	case g.hud.GameOverOpen:
		g.drawText(screen, "GAME OVER", 28, cx, cy-50, text.AlignCenter)
		g.drawText(screen, fmt.Sprintf("Score: %d", g.hud.FinalScore), 18, cx, cy, text.AlignCenter)
		g.drawText(screen, "Press Space to restart", 14, cx, cy+40, text.AlignCenter)
	}
}

func (g *Game) drawText(screen *ebiten.Image, msg string, size, x, y float64, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	op.PrimaryAlign = align
	text.Draw(screen, msg, &text.GoTextFace{Source: g.face, Size: size}, op)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options, tickRate int) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Gravity Dodge")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if tickRate > 0 {
		ebiten.SetTPS(tickRate)
	}

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
