package game

import (
	"github.com/tomz197/slicer/internal/audio"
	"github.com/tomz197/slicer/internal/gesture"
	"github.com/tomz197/slicer/internal/object"
)

// GestureBegin starts a new slice path at p.
func (g *Game) GestureBegin(p gesture.Point) {
	if !g.inputEnabled {
		return
	}
	g.tracker.Begin(p)
	g.scene.SetPath(g.tracker.Path())
	g.scene.ShowPath()
}

// GestureMove extends the path with a batch of samples, hit-testing each one
// against the active targets in arrival order.
func (g *Game) GestureMove(points ...gesture.Point) {
	if !g.inputEnabled || len(points) == 0 {
		return
	}

	candidates := g.active.Snapshot()
	g.grid.Clear()
	for i, t := range candidates {
		g.grid.Insert(t.X, t.Y, i)
	}

	for _, p := range points {
		if g.state.Ended {
			return
		}
		g.tracker.Add(p)
		path := g.tracker.Path()
		g.scene.SetPath(path)
		g.maybeSwoosh()

		g.grid.QueryAround(p.X, p.Y, func(i int) bool {
			t := candidates[i]
			if t.Contains(p.X, p.Y) {
				g.slice(t)
			}
			return g.state.Ended // keep going until the game ends
		})
	}
}

// GestureEnd fades the path out.
func (g *Game) GestureEnd() {
	g.scene.FadePath(g.cfg.PathFade)
}

// GestureCancel is treated like GestureEnd.
func (g *Game) GestureCancel() {
	g.GestureEnd()
}

// maybeSwoosh plays a swoosh unless one is still playing.
func (g *Game) maybeSwoosh() {
	if g.swooshActive {
		return
	}
	g.swooshActive = true
	length := g.audio.Play(audio.Swoosh(g.rng.IntInRange(1, 3)))

	session := g.session
	g.timers.After(length.Seconds(), func() {
		if session == g.session {
			g.swooshActive = false
		}
	})
}

// slice resolves a hit. Removal from the active set is the claim, so a target
// hit by several samples is only counted once.
func (g *Game) slice(t *object.Target) {
	if !g.active.Remove(t.ID) {
		return
	}
	t.Slice()

	switch t.Kind {
	case object.Hazard:
		g.scene.PlayEffect(EffectExplosion, t.X, t.Y)
		g.audio.Play(audio.SoundExplosion)
		g.logger.Debug("hazard sliced", "id", t.ID)
		g.End(true)
	default:
		g.scene.PlayEffect(EffectSlice, t.X, t.Y)
		g.audio.Play(audio.SoundWhack)
		g.state.Score++
	}
}

// sweep drops targets that fell below the screen, keeps the fuse sound tied
// to a live hazard, and queues the next wave once the board is clear.
func (g *Game) sweep() {
	if g.state.Ended {
		return
	}

	for _, t := range g.active.Snapshot() {
		if t.Y >= g.cfg.OutOfBoundsY {
			continue
		}
		if !g.active.Remove(t.ID) {
			continue
		}
		g.scene.RemoveObject(t)
		t.MarkRemoved()
		if t.Kind == object.Normal {
			g.subtractLife()
			if g.state.Ended {
				return
			}
		}
	}

	if !g.active.HasKind(object.Hazard) {
		g.stopFuse()
	}
	g.checkBoard()
}

func (g *Game) subtractLife() {
	g.state.Lives--
	g.audio.Play(audio.SoundWrong)
	g.scene.SetLifeLost(g.cfg.Lives - g.state.Lives - 1)
	g.logger.Debug("life lost", "lives", g.state.Lives)

	if g.state.Lives <= 0 {
		g.End(false)
	}
}
