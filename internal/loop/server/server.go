// Package server tracks the players connected to one process: who is online,
// the best scores of this run, and the shutdown broadcast.
//
// Every player runs their own game; the server never touches game state.
package server

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/slicer/internal/loop/config"
)

// GameServer is the interface clients use to communicate with the server.
// Decouples the Client from the concrete Server implementation.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID int)
	ReportScore(clientID, score int)
	GetSnapshot() *Snapshot
}

// Server is the lobby shared by all clients of one process.
type Server struct {
	mu           sync.RWMutex
	clients      map[int]*ClientHandle
	best         map[int]TopScoreEntry
	nextClientID int
	snapshot     atomic.Pointer[Snapshot]
	logger       *log.Logger
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// ClientHandle represents a client's connection to the server.
type ClientHandle struct {
	ID       int
	Username string
	EventsCh chan ClientEvent // Events sent to the client
}

// ClientEvent represents an event sent from server to client.
type ClientEvent struct {
	Type ClientEventType
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
)

// NewServer creates an empty server. A nil logger discards.
func NewServer(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{
		clients:      make(map[int]*ClientHandle),
		best:         make(map[int]TopScoreEntry),
		nextClientID: 1,
		logger:       logger,
	}
	s.snapshot.Store(&Snapshot{})
	return s
}

// RegisterClient registers a new client with the given username and returns its handle.
func (s *Server) RegisterClient(username string) *ClientHandle {
	if len(username) > config.MaxUsernameLength {
		username = username[:config.MaxUsernameLength]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	handle := &ClientHandle{
		ID:       s.nextClientID,
		Username: username,
		EventsCh: make(chan ClientEvent, 16),
	}
	s.nextClientID++
	s.clients[handle.ID] = handle
	s.publishLocked()

	s.logger.Info("client registered", "id", handle.ID, "user", username, "players", len(s.clients))
	return handle
}

// UnregisterClient removes a client and closes its event channel.
// Its best score stays on the leaderboard.
func (s *Server) UnregisterClient(clientID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle, ok := s.clients[clientID]
	if !ok {
		return
	}
	close(handle.EventsCh)
	delete(s.clients, clientID)
	s.publishLocked()

	s.logger.Info("client unregistered", "id", clientID, "players", len(s.clients))
}

// ReportScore records a finished game's score if it beats the client's best.
func (s *Server) ReportScore(clientID, score int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle, ok := s.clients[clientID]
	if !ok {
		return
	}
	if prev, ok := s.best[clientID]; ok && prev.Score >= score {
		return
	}
	s.best[clientID] = TopScoreEntry{Username: handle.Username, Score: score, clientID: clientID}
	s.publishLocked()
}

// GetSnapshot returns the current lobby snapshot.
func (s *Server) GetSnapshot() *Snapshot {
	return s.snapshot.Load()
}

// publishLocked rebuilds the snapshot. Must be called with the lock held.
func (s *Server) publishLocked() {
	s.snapshot.Store(&Snapshot{
		Players:   len(s.clients),
		TopScores: topScores(s.best, config.MaxTopScores),
	})
}

// Shutdown gracefully shuts down the server by notifying all connected clients
// and waiting for them to disconnect (up to the given timeout).
func (s *Server) Shutdown(timeout time.Duration) {
	s.mu.RLock()
	for _, handle := range s.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	s.mu.RUnlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			s.logger.Warn("shutdown timeout, clients still connected", "players", s.GetSnapshot().Players)
			return
		case <-ticker.C:
			if s.GetSnapshot().Players == 0 {
				return
			}
		}
	}
}
