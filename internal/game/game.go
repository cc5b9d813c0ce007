// Package game is the runtime core of the slicing game: it schedules waves of
// launched targets, resolves gesture hits and misses, and owns the score,
// lives and end of a session.
//
// A Game is driven from one goroutine by two callbacks: Update once per frame
// and the Gesture* methods as input arrives. Nothing in it blocks or locks.
package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/slicer/internal/audio"
	"github.com/tomz197/slicer/internal/gesture"
	"github.com/tomz197/slicer/internal/object"
	"github.com/tomz197/slicer/internal/physics"
	"github.com/tomz197/slicer/internal/rng"
	"github.com/tomz197/slicer/internal/sequence"
	"github.com/tomz197/slicer/internal/timer"
)

// hitGridCell must be at least the largest hit radius.
const hitGridCell = 128

// Deps are the collaborators a Game calls into. Nil fields get no-op defaults.
type Deps struct {
	Scene  Scene
	Audio  audio.Player
	RNG    rng.Source
	Logger *log.Logger
}

// wavePhase tracks the scheduler between dispatches.
type wavePhase int

const (
	phaseIdle   wavePhase = iota // Board clear, nothing queued
	phaseQueued                  // Dispatch timer pending
	phaseActive                  // Wave dispatched, board not yet clear
)

// Game is one player's game.
type Game struct {
	cfg    Config
	scene  Scene
	audio  audio.Player
	rng    rng.Source
	logger *log.Logger

	timers  *timer.Queue
	world   *physics.World
	grid    *physics.SpatialGrid
	tracker *gesture.Tracker

	// Per-session state, rebuilt by Reset.
	session      uint64
	state        State
	pacing       Pacing
	seq          *sequence.Sequence
	active       *object.Set
	phase        wavePhase
	chainPending int
	nextID       object.ID
	fuse         audio.Handle
	swooshActive bool
	inputEnabled bool
}

// New creates a game. Call Start to queue the first wave.
func New(cfg Config, deps Deps) *Game {
	if deps.Scene == nil {
		deps.Scene = NopScene{}
	}
	if deps.Audio == nil {
		deps.Audio = audio.Nop{}
	}
	if deps.RNG == nil {
		deps.RNG = rng.New(0)
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:     cfg,
		scene:   deps.Scene,
		audio:   deps.Audio,
		rng:     deps.RNG,
		logger:  deps.Logger,
		timers:  timer.New(),
		world:   physics.NewWorld(cfg.Gravity, cfg.WorldSpeed),
		grid:    physics.NewSpatialGrid(cfg.Width, cfg.Height, hitGridCell),
		tracker: gesture.NewTracker(cfg.PathLimit),
	}
	g.resetSession()
	return g
}

// resetSession discards the current session. Timers already queued keep the
// old session id and do nothing when they fire.
func (g *Game) resetSession() {
	g.session++
	g.stopFuse()
	if g.active != nil {
		for _, t := range g.active.Clear() {
			t.MarkRemoved()
		}
	}

	g.state = State{Lives: g.cfg.Lives}
	g.pacing = Pacing{
		PopupTime:  g.cfg.PopupTime,
		ChainDelay: g.cfg.ChainDelay,
		Speed:      g.cfg.WorldSpeed,
	}
	g.world.Speed = g.pacing.Speed
	g.seq = sequence.New(g.rng, g.cfg.SequenceTail)
	g.active = object.NewSet()
	g.phase = phaseIdle
	g.chainPending = 0
	g.nextID = 0
	g.swooshActive = false
	g.inputEnabled = true
	g.tracker.Reset()
	g.scene.Reset()
}

// Start queues the first wave after the configured start delay.
func (g *Game) Start() {
	g.queueWave(g.cfg.StartDelay)
	g.logger.Debug("session started", "session", g.session)
}

// Reset abandons the current session and starts a new one.
func (g *Game) Reset() {
	g.resetSession()
	g.Start()
}

// Update advances the game by dt seconds: due timers fire, targets move, then
// targets below the screen are resolved and the board is checked.
func (g *Game) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	g.timers.Advance(dt)

	if !g.state.Ended {
		for _, t := range g.active.Snapshot() {
			g.world.Step(&t.Body, dt)
		}
	}
	g.sweep()
}

// State returns the score and lives.
func (g *Game) State() State {
	return g.state
}

// Pacing returns the current wave timing.
func (g *Game) Pacing() Pacing {
	return g.pacing
}

// WavePending reports whether a wave is queued or still on the board.
func (g *Game) WavePending() bool {
	return g.phase != phaseIdle
}

// ActiveCount returns the number of unresolved targets.
func (g *Game) ActiveCount() int {
	return g.active.Len()
}

// Active returns the unresolved targets.
func (g *Game) Active() []*object.Target {
	return g.active.Snapshot()
}

// Waves returns how many waves have been dispatched this session.
func (g *Game) Waves() int {
	return g.seq.Cursor()
}

// Now returns the game clock in seconds.
func (g *Game) Now() float64 {
	return g.timers.Now()
}

// InputEnabled reports whether gestures are still accepted.
func (g *Game) InputEnabled() bool {
	return g.inputEnabled
}

// Config returns the game's tuning.
func (g *Game) Config() Config {
	return g.cfg
}
