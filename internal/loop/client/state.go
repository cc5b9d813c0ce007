package client

import (
	"time"

	"github.com/tomz197/slicer/internal/input"
)

// GameState represents the current screen of a client.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen
	GameStatePlaying                   // Active gameplay
	GameStateOver                      // Game ended, show restart prompt
	GameStateShutdown                  // Server is shutting down
)

func (s GameState) String() string {
	switch s {
	case GameStateStart:
		return "start"
	case GameStatePlaying:
		return "playing"
	case GameStateOver:
		return "over"
	case GameStateShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// ClientState holds per-connection front end state.
type ClientState struct {
	Input         input.Input
	GameState     GameState
	prevGameState GameState
	Running       bool
	delta         time.Duration // Frame delta time
	shutdownTimer float64       // Countdown before auto-disconnect on shutdown
	isInactive    bool          // Inactivity warning is showing
	wasInactive   bool
	gesturing     bool // Left button is down
	games         int  // Games started on this connection
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		GameState:     GameStateStart,
		prevGameState: GameStateStart,
		Running:       true,
	}
}
