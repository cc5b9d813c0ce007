package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomz197/slicer/internal/draw"
	"github.com/tomz197/slicer/internal/loop/config"
	"github.com/tomz197/slicer/internal/loop/server"
)

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On game state or inactivity transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	stateChanged := c.state.GameState != c.state.prevGameState
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if stateChanged || inactiveChanged {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevGameState = c.state.GameState
		c.state.wasInactive = c.state.isInactive
	}

	c.canvas.Clear()

	if c.state.GameState == GameStatePlaying || c.state.GameState == GameStateOver {
		if err := c.scene.Draw(c.drawContext()); err != nil {
			return err
		}
	}

	// Render canvas to terminal
	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawUI(c.server.GetSnapshot())

	return c.chunkWriter.Flush()
}

// drawUI draws the game UI overlay.
func (c *Client) drawUI(snapshot *server.Snapshot) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.state.GameState == GameStateShutdown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch c.state.GameState {
	case GameStatePlaying:
		c.drawPlayingHUD(termWidth, termHeight, snapshot)
	case GameStateStart:
		c.drawStartScreen(centerX, centerY, snapshot)
	case GameStateOver:
		c.drawPlayingHUD(termWidth, termHeight, snapshot)
		c.drawOverScreen(centerX, centerY, snapshot)
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	cw := c.chunkWriter
	title := "INACTIVITY WARNING"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(c.lastInput).Seconds()),
	)
	cw.WriteAt(centerX-len(msg)/2, centerY, msg)

	hint := "Press any key to continue"
	cw.WriteAt(centerX-len(hint)/2, centerY+2, hint)
}

// drawArt draws ASCII art centered on centerX and returns the row below it.
func (c *Client) drawArt(centerX, startY int, art []string) int {
	width := 0
	for _, line := range art {
		width = max(width, len(line))
	}
	for i, line := range art {
		c.chunkWriter.WriteAt(centerX-width/2, startY+i, line)
	}
	return startY + len(art)
}

// drawPrompt draws a blinking prompt. While hidden its cells are marked dirty
// so the canvas paints over the last visible text.
func (c *Client) drawPrompt(centerX, row int, prompt string) {
	col := centerX - len(prompt)/2
	if time.Now().UnixMilli()/config.PromptBlinkMillis%2 == 0 {
		c.chunkWriter.WriteAt(col, row, prompt)
		return
	}
	c.canvas.MarkTextDirty(col, row, len(prompt))
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerX, centerY int, snapshot *server.Snapshot) {
	// ASCII art title (figlet "small" font)
	titleArt := []string{
		`  ___ _    ___ ___ ___ ___  `,
		` / __| |  |_ _/ __| __| _ \ `,
		` \__ \ |__ | | (__| _||   / `,
		` |___/____|___\___|___|_|_\ `,
		`                            `,
	}

	cw := c.chunkWriter
	titleStartY := centerY - 9
	y := c.drawArt(centerX, titleStartY, titleArt)

	subtitle := "~ Slice the fruit, spare the bombs ~"
	cw.WriteAt(centerX-len(subtitle)/2, y+1, subtitle)

	controlsY := y + 3
	controlHeader := "Controls"
	cw.WriteAt(centerX-len(controlHeader)/2, controlsY, controlHeader)

	controlLines := []string{
		"Drag mouse . . . . Slice",
		"SPACE / ENTER  . . Start",
		"Q  . . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		cw.WriteAt(centerX-len(line)/2, controlsY+1+i, line)
	}

	promptY := controlsY + len(controlLines) + 2
	c.drawPrompt(centerX, promptY, ">>  Press SPACE to Start  <<")

	c.drawTopScores(centerX, promptY+2, snapshot)
}

// drawTopScores draws the leaderboard starting at row.
func (c *Client) drawTopScores(centerX, row int, snapshot *server.Snapshot) {
	if len(snapshot.TopScores) == 0 {
		return
	}
	cw := c.chunkWriter
	header := "Top Scores"
	cw.WriteAt(centerX-len(header)/2, row, header)

	for i, entry := range snapshot.TopScores {
		name := entry.Username
		if len(name) > config.MaxUsernameLength {
			name = name[:config.MaxUsernameLength]
		}
		dots := strings.Repeat(".", config.MaxUsernameLength-len(name)+2)
		line := fmt.Sprintf("%d. %s %s %6d", i+1, name, dots, entry.Score)
		if entry.Username == c.username {
			cw.WriteColorAt(centerX-len(line)/2, row+1+i, draw.ColorYellow, line)
		} else {
			cw.WriteAt(centerX-len(line)/2, row+1+i, line)
		}
	}
}

// drawPlayingHUD draws the in-game HUD.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawPlayingHUD(termWidth, termHeight int, snapshot *server.Snapshot) {
	cw := c.chunkWriter
	st := c.game.State()

	scoreText := fmt.Sprintf("Score: %-8d", st.Score)
	cw.WriteAt(2, 1, scoreText)

	// Lives display (top right): one X per life, red once lost.
	lives := c.scene.Lives()
	col := termWidth - lives*2
	for i := 0; i < lives; i++ {
		lost, visible := c.scene.LifeVisible(i)
		if !visible {
			cw.WriteAt(col+i*2, 1, " ")
			continue
		}
		color := draw.ColorGray
		if lost {
			color = draw.ColorRed
		}
		cw.WriteColorAt(col+i*2, 1, color, "X")
	}

	playersText := fmt.Sprintf("Players: %-4d", snapshot.Players)
	cw.WriteAt(termWidth-len(playersText)-1, termHeight, playersText)

	best := 0
	if len(snapshot.TopScores) > 0 {
		best = snapshot.TopScores[0].Score
	}
	bestText := fmt.Sprintf("Best: %-8d", best)
	cw.WriteAt(2, termHeight, bestText)
}

// drawOverScreen draws the game over screen.
func (c *Client) drawOverScreen(centerX, centerY int, snapshot *server.Snapshot) {
	titleArt := []string{
		`   ___   _   __  __ ___    _____   _____ ___  `,
		`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
		` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
		`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
		`                                              `,
	}

	cw := c.chunkWriter
	st := c.game.State()
	y := c.drawArt(centerX, centerY-8, titleArt)

	reason := "Out of lives"
	if st.EndedByBomb {
		reason = "You sliced a bomb!"
	}
	cw.WriteAt(centerX-len(reason)/2, y+1, reason)

	scoreText := fmt.Sprintf("Score: %d", st.Score)
	cw.WriteAt(centerX-len(scoreText)/2, y+3, scoreText)

	c.drawPrompt(centerX, y+5, ">>  Press SPACE to Restart  <<")

	c.drawTopScores(centerX, y+7, snapshot)
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	cw := c.chunkWriter
	title := "SERVER SHUTTING DOWN"
	cw.WriteAt(centerX-len(title)/2, centerY-3, title)

	msg1 := "The server is restarting for maintenance."
	cw.WriteAt(centerX-len(msg1)/2, centerY-1, msg1)

	msg2 := "Please reconnect in a moment."
	cw.WriteAt(centerX-len(msg2)/2, centerY, msg2)

	remaining := int(c.state.shutdownTimer) + 1
	countdown := fmt.Sprintf("Disconnecting in %d seconds...", remaining)
	cw.WriteAt(centerX-len(countdown)/2, centerY+2, countdown)

	hint := "Press Q to disconnect now"
	cw.WriteAt(centerX-len(hint)/2, centerY+4, hint)
}
