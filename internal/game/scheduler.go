package game

import "github.com/tomz197/slicer/internal/sequence"

// wavePlan is what one archetype spawns: immediate spawns, then followers
// spaced ChainDelay/divisor apart.
type wavePlan struct {
	spawns    []HazardPolicy
	followers int
	divisor   float64
}

var wavePlans = [sequence.Count]wavePlan{
	sequence.OneSafe:          {spawns: []HazardPolicy{HazardNever}},
	sequence.One:              {spawns: []HazardPolicy{HazardDefault}},
	sequence.TwoWithOneHazard: {spawns: []HazardPolicy{HazardNever, HazardAlways}},
	sequence.Two:              {spawns: []HazardPolicy{HazardDefault, HazardDefault}},
	sequence.Three:            {spawns: []HazardPolicy{HazardDefault, HazardDefault, HazardDefault}},
	sequence.Four:             {spawns: []HazardPolicy{HazardDefault, HazardDefault, HazardDefault, HazardDefault}},
	sequence.Chain:            {spawns: []HazardPolicy{HazardDefault}, followers: 4, divisor: 5},
	sequence.FastChain:        {spawns: []HazardPolicy{HazardDefault}, followers: 4, divisor: 10},
}

// queueWave schedules the next dispatch and raises the pending guard.
func (g *Game) queueWave(delay float64) {
	g.phase = phaseQueued
	session := g.session
	g.timers.After(delay, func() {
		g.dispatchWave(session)
	})
}

// dispatchWave spawns the wave at the sequence cursor, then tightens pacing.
func (g *Game) dispatchWave(session uint64) {
	if session != g.session || g.state.Ended {
		return
	}

	archetype := g.seq.Next()
	plan := wavePlans[archetype]
	for _, policy := range plan.spawns {
		g.spawn(policy)
	}
	if plan.followers > 0 {
		step := g.pacing.ChainDelay / plan.divisor
		for i := 1; i <= plan.followers; i++ {
			g.chainPending++
			g.timers.After(step*float64(i), func() {
				g.spawnFollower(session)
			})
		}
	}

	g.logger.Debug("wave dispatched",
		"archetype", archetype,
		"wave", g.seq.Cursor(),
		"next", g.seq.Peek(),
		"popup", g.pacing.PopupTime,
		"chain", g.pacing.ChainDelay,
		"speed", g.pacing.Speed,
	)

	g.pacing.Drift()
	g.world.Speed = g.pacing.Speed
	g.phase = phaseActive
}

func (g *Game) spawnFollower(session uint64) {
	if session != g.session {
		return
	}
	g.chainPending--
	if g.state.Ended {
		return
	}
	g.spawn(HazardDefault)
}

// checkBoard returns the scheduler to idle once the wave is fully resolved,
// and queues the next wave from idle.
func (g *Game) checkBoard() {
	if g.active.Len() > 0 {
		return
	}
	// Followers still due keep the wave live, unlike a guard cleared at dispatch.
	if g.phase == phaseActive && g.chainPending == 0 {
		g.phase = phaseIdle
	}
	if g.phase == phaseIdle {
		g.queueWave(g.pacing.PopupTime)
	}
}
