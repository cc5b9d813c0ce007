// Package client runs one player's session: it reads terminal input, drives
// a game, and renders it.
package client

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/slicer/internal/audio"
	"github.com/tomz197/slicer/internal/draw"
	"github.com/tomz197/slicer/internal/game"
	"github.com/tomz197/slicer/internal/gesture"
	"github.com/tomz197/slicer/internal/input"
	"github.com/tomz197/slicer/internal/loop/config"
	"github.com/tomz197/slicer/internal/loop/server"
	"github.com/tomz197/slicer/internal/object"
	"github.com/tomz197/slicer/internal/rng"
)

// Client handles rendering and input for a single connection.
type Client struct {
	server       server.GameServer
	handle       *server.ClientHandle
	state        *ClientState
	game         *game.Game
	scene        *Scene
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	username     string
	termSizeFunc draw.TermSizeFunc
	frameTime    time.Duration
	logger       *log.Logger
	moves        []gesture.Point // Drag samples of the current frame
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Audio        audio.Player // Nil plays nothing unless Bell is set
	Bell         bool         // Ring the terminal bell on misses and bombs
	Logger       *log.Logger
	Seed         int64 // 0 picks a time-based seed
	FPS          int
}

// NewClient creates a new client registered with the given server.
func NewClient(gs server.GameServer, r io.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	handle := gs.RegisterClient(opts.Username)
	logger = logger.With("client", handle.ID)

	termWidth, termHeight, _ := draw.TerminalSizeRawWith(termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.ViewWidth, config.ViewHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	chunkWriter := draw.NewChunkWriter(w, offsetCol, offsetRow)

	player := opts.Audio
	if player == nil {
		if opts.Bell {
			player = audio.NewBell(chunkWriter, audio.SoundWrong, audio.SoundExplosion)
		} else {
			player = audio.Nop{}
		}
	}

	cfg := game.DefaultConfig()
	scene := NewScene(cfg.Lives)
	g := game.New(cfg, game.Deps{
		Scene:  scene,
		Audio:  player,
		RNG:    rng.New(opts.Seed),
		Logger: logger,
	})

	return &Client{
		server:       gs,
		handle:       handle,
		state:        NewClientState(),
		game:         g,
		scene:        scene,
		canvas:       canvas,
		chunkWriter:  chunkWriter,
		writer:       w,
		inputStream:  input.StartStream(r),
		lastInput:    time.Now(),
		username:     handle.Username,
		termSizeFunc: termSizeFunc,
		frameTime:    config.FrameTime(opts.FPS),
		logger:       logger,
	}
}

// Run starts the client loop. Blocks until the player quits, the context is
// done, or the server shuts the client down.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	draw.EnableMouse(c.writer)
	draw.ClearScreen(c.writer)
	defer func() {
		draw.DisableMouse(c.writer)
		draw.ShowCursor(c.writer)
		draw.ClearScreen(c.writer)
		c.server.UnregisterClient(c.handle.ID)
	}()

	lastTime := time.Now()

	for c.state.Running {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		c.processInput()
		c.processServerEvents()
		c.updateScreen()

		switch c.state.GameState {
		case GameStateStart:
			c.updateStartState()
		case GameStatePlaying:
			c.updatePlayingState()
		case GameStateOver:
			c.updateOverState()
		case GameStateShutdown:
			c.updateShutdownState()
		}

		if err := c.drawFrame(); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < c.frameTime {
			time.Sleep(c.frameTime - elapsed)
		}
	}

	return nil
}

// processInput reads input, tracks activity and feeds gestures to the game.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)
	in := c.state.Input

	if len(in.Pressed) > 0 {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.logger.Info("disconnecting inactive client")
		c.state.Running = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	if in.Quit || in.Closed {
		c.state.Running = false
		return
	}

	if c.state.GameState == GameStatePlaying {
		c.handleMouse(in.Mouse)
		if in.FocusLost {
			c.cancelGesture()
		}
	}
}

// handleMouse turns mouse reports into gesture calls. Consecutive drags are
// delivered to the game as one batch.
func (c *Client) handleMouse(events []input.MouseEvent) {
	for _, ev := range events {
		if ev.Button != input.ButtonLeft {
			if ev.Action == input.MousePress && ev.Button < input.ButtonWheel {
				c.cancelGesture()
			}
			continue
		}

		p := c.toWorld(ev.Col, ev.Row)
		switch ev.Action {
		case input.MousePress:
			c.flushMoves()
			c.state.gesturing = true
			c.game.GestureBegin(p)
		case input.MouseDrag:
			if !c.state.gesturing {
				c.state.gesturing = true
				c.game.GestureBegin(p)
				continue
			}
			c.moves = append(c.moves, p)
		case input.MouseRelease:
			c.flushMoves()
			if c.state.gesturing {
				c.state.gesturing = false
				c.game.GestureEnd()
			}
		}
	}
	c.flushMoves()
}

func (c *Client) flushMoves() {
	if len(c.moves) == 0 {
		return
	}
	c.game.GestureMove(c.moves...)
	c.moves = c.moves[:0]
}

func (c *Client) cancelGesture() {
	c.moves = c.moves[:0]
	if c.state.gesturing {
		c.state.gesturing = false
		c.game.GestureCancel()
	}
}

// toWorld maps a terminal cell to world coordinates (y up).
func (c *Client) toWorld(col, row int) gesture.Point {
	x, y := c.canvas.TerminalToLogical(col, row)
	return gesture.Point{X: x, Y: config.ViewHeight - y}
}

// processServerEvents handles events from the server.
func (c *Client) processServerEvents() {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventServerShutdown:
				c.finishGame()
				c.state.GameState = GameStateShutdown
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(c.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// updateStartState handles the title screen.
func (c *Client) updateStartState() {
	if c.wantsStart() {
		c.startGame()
	}
}

// updatePlayingState advances the game by one frame.
func (c *Client) updatePlayingState() {
	c.game.Update(c.state.delta.Seconds())
	c.scene.Update(c.state.delta)

	if c.game.State().Ended {
		c.finishGame()
		c.state.GameState = GameStateOver
	}
}

// updateOverState lets effects play out behind the game over screen.
func (c *Client) updateOverState() {
	c.scene.Update(c.state.delta)
	if c.wantsStart() {
		c.startGame()
	}
}

// wantsStart reports whether the player asked to start a game this frame.
func (c *Client) wantsStart() bool {
	return c.state.Input.Space || c.state.Input.Enter
}

// startGame starts or restarts the game.
func (c *Client) startGame() {
	input.ResetKeyInput(c.inputStream)
	c.state.gesturing = false
	c.moves = c.moves[:0]

	c.game.Reset()
	c.state.games++
	c.state.GameState = GameStatePlaying
	c.logger.Debug("game started", "game", c.state.games)
}

// finishGame reports the score of a game that was played.
func (c *Client) finishGame() {
	if c.state.GameState != GameStatePlaying {
		return
	}
	c.server.ReportScore(c.handle.ID, c.game.State().Score)
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}

// drawContext returns the context objects draw with.
func (c *Client) drawContext() object.DrawContext {
	return object.DrawContext{
		Canvas: c.canvas,
		Writer: c.chunkWriter,
		World:  object.NewScreen(config.ViewWidth, config.ViewHeight),
	}
}
