package game

// End finishes the session. Only the first call has any effect.
func (g *Game) End(byBomb bool) {
	if g.state.Ended {
		return
	}
	g.state.Ended = true
	g.state.EndedByBomb = byBomb

	g.world.Freeze()
	g.inputEnabled = false
	g.stopFuse()

	if byBomb {
		for i := range g.cfg.Lives {
			g.scene.SetLifeLost(i)
		}
	}

	g.logger.Info("game over",
		"score", g.state.Score,
		"lives", g.state.Lives,
		"bomb", byBomb,
		"waves", g.seq.Cursor(),
	)
}
