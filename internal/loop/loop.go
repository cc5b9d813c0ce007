// Package loop runs a single-player game in the local terminal.
package loop

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/slicer/internal/audio"
	"github.com/tomz197/slicer/internal/loop/client"
	"github.com/tomz197/slicer/internal/loop/server"
)

// Options configures a local game.
type Options struct {
	Audio  audio.Player // Nil rings the terminal bell
	Logger *log.Logger
	Seed   int64
	FPS    int
}

// Run plays in the terminal until the player quits or ctx is done. The
// leaderboard lives only as long as the call.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	srv := server.NewServer(opts.Logger)

	username := os.Getenv("USER")
	if username == "" {
		username = "player"
	}

	c := client.NewClient(srv, r, w, client.ClientOptions{
		Username: username,
		Audio:    opts.Audio,
		Bell:     opts.Audio == nil,
		Logger:   opts.Logger,
		Seed:     opts.Seed,
		FPS:      opts.FPS,
	})
	return c.Run(ctx)
}
