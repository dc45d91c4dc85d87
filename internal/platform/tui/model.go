package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/gravity-dodge/internal/canvas"
	"github.com/vovakirdan/gravity-dodge/internal/config"
	"github.com/vovakirdan/gravity-dodge/internal/core"
	"github.com/vovakirdan/gravity-dodge/internal/dodge"
	"github.com/vovakirdan/gravity-dodge/internal/storage"
)

// footerHeight is the number of terminal rows reserved for the help line.
const footerHeight = 1

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// ConfigReloadMsg carries new tuning picked up from the config file.
// The world applies it at the next start.
type ConfigReloadMsg struct {
	Config config.DodgeConfig
}

// Options configures a Model.
type Options struct {
	Config        config.DodgeConfig
	Store         *storage.Store // nil keeps the high score in memory
	Logger        *log.Logger
	ScreenshotDir string // Defaults to ~/.gravdodge/screenshots
}

// Model is the Bubble Tea model that drives one World.
type Model struct {
	world      *dodge.World
	hud        *HUD
	screen     *core.Screen
	canvas     *canvas.CellCanvas
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	runID      string
	shotDir    string
	status     string
	quitting   bool
}

// NewModel creates a new Bubble Tea model running a fresh world.
func NewModel(opts Options, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	shotDir := opts.ShotDirOrDefault()

	hud := &HUD{}
	worldOpts := []dodge.Option{dodge.WithDisplay(hud), dodge.WithLogger(logger)}
	if opts.Store != nil {
		worldOpts = append(worldOpts, dodge.WithStore(opts.Store))
	}
	world := dodge.NewWorld(opts.Config, cfg.Seed, worldOpts...)

	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 1))
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		world:      world,
		hud:        hud,
		screen:     screen,
		canvas:     canvas.NewCellCanvas(screen, opts.Config.Canvas.Width, opts.Config.Canvas.Height),
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		gameState:  world.State(),
		shotDir:    shotDir,
	}
}

// ShotDirOrDefault returns the screenshot directory, falling back to the
// per-user application directory.
func (o Options) ShotDirOrDefault() string {
	if o.ScreenshotDir != "" {
		return o.ScreenshotDir
	}
	return config.UserPath("screenshots")
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ConfigReloadMsg:
		m.world.Reconfigure(msg.Config)
		m.status = "config reloaded, applies on next run"
		return m, nil
	}

	return m, nil
}

// handleKey queues game input. Nothing here touches the simulation; the
// queue is drained on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil
	case core.ActionJump:
		m.inputFrame.Set(core.ActionJump)
		return m, nil
	}

	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleResize processes window resize events. The world keeps its fixed
// size; only the cell mapping changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.world.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Started {
		m.runID = uuid.NewString()
		m.status = ""
		m.logger.Debug("run started", "run", m.runID)

		// A reload applied at start may change the world size.
		c := m.world.Config().Canvas
		if w, h := m.canvas.Size(); w != c.Width || h != c.Height {
			m.canvas = canvas.NewCellCanvas(m.screen, c.Width, c.Height)
		}
	}
	if result.Ended {
		m.logger.Debug("run ended", "run", m.runID, "score", result.State.Score, "new_high", result.NewHighScore)
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.runID, result.State.Score)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot renders the current frame to a PNG file.
func (m *Model) saveScreenshot() {
	cfg := m.world.Config()
	raster := canvas.NewRaster(cfg.Canvas.Width, cfg.Canvas.Height, 1)
	m.world.Render(raster)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.status = "screenshot failed"
		m.logger.Warn("cannot create screenshot directory", "dir", m.shotDir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("dodge_%s.png", timestamp))
	if err := raster.SavePNG(path, 0); err != nil {
		m.status = "screenshot failed"
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.status = "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.world.Render(m.canvas)
	m.hud.Draw(m.screen)

	footer := helpStyle.Render(m.help.View(m.keys))
	if m.status != "" {
		footer = statusStyle.Render(m.status)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// RunOptions configures Run.
type RunOptions struct {
	Options
	// ConfigPath is watched for changes when non-empty.
	ConfigPath string
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts RunOptions, cfg core.RuntimeConfig) error {
	model := NewModel(opts.Options, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if opts.ConfigPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			err := config.Watch(ctx, opts.ConfigPath,
				func(c config.DodgeConfig) { p.Send(ConfigReloadMsg{Config: c}) },
				func(err error) { model.logger.Warn("config reload failed", "error", err) },
			)
			if err != nil {
				model.logger.Warn("config watch stopped", "error", err)
			}
		}()
	}

	_, err := p.Run()
	return err
}
