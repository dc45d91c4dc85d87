// Package dodge implements the gravity dodge game: a sprite falls under
// gravity, jumps on a single button, and must avoid obstacles scrolling in
// from the right edge of a fixed-size canvas.
package dodge

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gravity-dodge/internal/config"
	"github.com/vovakirdan/gravity-dodge/internal/core"
)

// World owns the whole simulation: the player, obstacles, particles, score
// and the start -> playing -> game-over state machine.
// It is not safe for concurrent use; frontends serialize input and ticks.
type World struct {
	cfg       config.DodgeConfig
	pending   *config.DodgeConfig // Applied on the next start
	rng       *rand.Rand
	player    Player
	obstacles *ObstacleManager
	particles *ParticleSystem
	phase     core.Phase
	score     int
	highScore int
	tick      uint64

	store   HighScoreStore
	display Display
	logger  *log.Logger

	// Per-step transition flags, reported through StepResult.
	started bool
	ended   bool
	newHigh bool
}

// Option configures a World.
type Option func(*World)

// WithStore sets the high score persistence. Without it the high score is
// kept in memory only.
func WithStore(s HighScoreStore) Option {
	return func(w *World) {
		if s != nil {
			w.store = s
		}
	}
}

// WithDisplay sets the sink for score and panel updates.
func WithDisplay(d Display) Option {
	return func(w *World) {
		if d != nil {
			w.display = d
		}
	}
}

// WithLogger sets the logger for persistence problems.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWorld creates a world in the start phase. The high score is read from
// the store here and again at every game over; a failing store degrades to
// the value already known without surfacing an error.
func NewWorld(cfg config.DodgeConfig, seed int64, opts ...Option) *World {
	rng := rand.New(rand.NewSource(seed))
	w := &World{
		cfg:       cfg,
		rng:       rng,
		obstacles: NewObstacleManager(rng, cfg.Obstacles, cfg.Canvas.Width, cfg.Canvas.Height),
		particles: NewParticleSystem(rng, cfg.Particles),
		phase:     core.PhaseStart,
		store:     &MemoryStore{},
		display:   nopDisplay{},
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.resetPlayer()

	high, err := w.store.LoadHighScore()
	if err != nil {
		w.logger.Warn("high score unavailable, keeping it in memory", "error", err)
		high = 0
	}
	w.highScore = high

	w.display.ShowScore(0)
	w.display.ShowHighScore(w.highScore)
	w.display.ShowGameOver(0, false)
	w.display.ShowStart(true)
	return w
}

func (w *World) resetPlayer() {
	w.player = Player{
		X:      w.cfg.Player.X,
		Y:      w.cfg.Player.StartY,
		Width:  w.cfg.Player.Width,
		Height: w.cfg.Player.Height,
	}
}

// Reconfigure schedules new tuning. It takes effect on the next start so
// obstacles already on screen keep the speed they were spawned with.
func (w *World) Reconfigure(cfg config.DodgeConfig) {
	w.pending = &cfg
	w.logger.Debug("configuration queued for next run")
}

// Press handles the single jump/start button: it starts a run from the start
// or game-over phase and jumps while playing.
func (w *World) Press() {
	switch w.phase {
	case core.PhaseStart, core.PhaseGameOver:
		w.Start()
	case core.PhasePlaying:
		w.Jump()
	}
}

// Start enters the playing phase with a full reset: score, player, obstacles
// and particles.
func (w *World) Start() {
	if w.pending != nil {
		w.cfg = *w.pending
		w.pending = nil
		w.obstacles.UpdateConfig(w.cfg.Obstacles, w.cfg.Canvas.Width, w.cfg.Canvas.Height)
		w.particles.UpdateConfig(w.cfg.Particles)
	}

	w.phase = core.PhasePlaying
	w.score = 0
	w.resetPlayer()
	w.obstacles.Reset()
	w.particles.Clear()
	w.started = true

	w.display.ShowScore(0)
	w.display.ShowStart(false)
	w.display.ShowGameOver(0, false)
}

// Jump overwrites the player's velocity with the jump power and emits a
// burst at the sprite's feet. It does nothing outside the playing phase.
func (w *World) Jump() {
	if w.phase != core.PhasePlaying {
		return
	}
	w.player.Velocity = w.cfg.Player.JumpPower
	w.particles.Burst(w.cfg.Particles.JumpBurst, w.player.X+w.player.Width/2, w.player.Y+w.player.Height)
}

// Step drains the input queued since the last tick, advances the simulation
// when playing and always advances the frame counter.
func (w *World) Step(in core.InputFrame) core.StepResult {
	w.started, w.ended, w.newHigh = false, false, false

	for _, a := range in.Actions() {
		if a == core.ActionJump {
			w.Press()
		}
	}

	if w.phase == core.PhasePlaying {
		w.update()
	}
	w.tick++

	return core.StepResult{
		State:        w.State(),
		Started:      w.started,
		Ended:        w.ended,
		NewHighScore: w.newHigh,
	}
}

// update runs one simulation tick: player, obstacles, then particles.
func (w *World) update() {
	w.player.Update(w.cfg.Player.Gravity, w.cfg.Canvas.Height)

	w.obstacles.TrySpawn(w.score)
	w.obstacles.Advance()

	if passed := w.obstacles.MarkPassed(w.player.X); passed > 0 {
		cx, cy := w.player.Rect().Center()
		for i := 0; i < passed; i++ {
			w.score++
			w.particles.Burst(w.cfg.Particles.ScoreBurst, cx, cy)
		}
		w.display.ShowScore(w.score)
	}
	w.obstacles.Prune()

	if w.obstacles.Collides(w.player.Hitbox(w.cfg.Player.HitboxSize)) {
		w.end()
		return
	}

	w.particles.Update()
}

// end enters the game-over phase and records a new high score. The store is
// read again first since other sessions may share it.
func (w *World) end() {
	w.phase = core.PhaseGameOver
	w.ended = true
	w.display.ShowGameOver(w.score, true)

	if stored, err := w.store.LoadHighScore(); err != nil {
		w.logger.Warn("cannot refresh high score", "error", err)
	} else if stored > w.highScore {
		w.highScore = stored
		w.display.ShowHighScore(w.highScore)
	}

	if w.score <= w.highScore {
		return
	}
	w.highScore = w.score
	w.newHigh = true
	w.display.ShowHighScore(w.highScore)
	if err := w.store.SaveHighScore(w.highScore); err != nil {
		w.logger.Warn("cannot persist high score, keeping it in memory", "score", w.highScore, "error", err)
	}
}

// State returns a summary of the current game.
func (w *World) State() core.GameState {
	return core.GameState{
		Phase:     w.phase,
		Score:     w.score,
		HighScore: w.highScore,
		Tick:      w.tick,
	}
}

// Phase returns the current state-machine phase.
func (w *World) Phase() core.Phase { return w.phase }

// Score returns the score of the current or last run.
func (w *World) Score() int { return w.score }

// HighScore returns the best score known to this world.
func (w *World) HighScore() int { return w.highScore }

// Tick returns the number of frames stepped so far.
func (w *World) Tick() uint64 { return w.tick }

// Player returns a copy of the player.
func (w *World) Player() Player { return w.player }

// Obstacles returns a copy of the active obstacles in spawn order.
func (w *World) Obstacles() []Obstacle { return w.obstacles.Obstacles() }

// Particles returns a copy of the live particles.
func (w *World) Particles() []Particle { return w.particles.Particles() }

// Config returns the tuning of the current run.
func (w *World) Config() config.DodgeConfig { return w.cfg }
