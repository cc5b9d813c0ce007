package game

import (
	"github.com/tomz197/slicer/internal/audio"
	"github.com/tomz197/slicer/internal/object"
)

// HazardPolicy decides whether a spawn may, must, or must not be a hazard.
type HazardPolicy int

const (
	HazardDefault HazardPolicy = iota // Random, one in HazardOdds
	HazardNever
	HazardAlways
)

func (p HazardPolicy) String() string {
	switch p {
	case HazardDefault:
		return "default"
	case HazardNever:
		return "never"
	case HazardAlways:
		return "always"
	default:
		return "unknown"
	}
}

// spawn launches one target and registers it as active.
func (g *Game) spawn(policy HazardPolicy) *object.Target {
	kind := object.Normal
	switch policy {
	case HazardAlways:
		kind = object.Hazard
	case HazardNever:
	default:
		if g.rng.IntInRange(0, g.cfg.HazardOdds-1) == 0 {
			kind = object.Hazard
		}
	}

	g.nextID++
	t := object.Launch(g.rng, g.cfg.Launch, g.nextID, kind)

	if kind == object.Hazard {
		// Newest fuse wins.
		g.stopFuse()
		g.fuse = g.audio.Loop(audio.SoundFuse)
		t.Fuse = true
		g.scene.AttachEffect(t, EffectFuse)
	} else {
		g.audio.Play(audio.SoundLaunch)
	}

	g.scene.AddObject(t)
	g.active.Add(t)
	return t
}

func (g *Game) stopFuse() {
	if g.fuse != nil {
		g.fuse.Stop()
		g.fuse = nil
	}
}
