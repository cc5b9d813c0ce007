package game

// State is the score and life count of a session.
type State struct {
	Score       int  // Never decreases within a session
	Lives       int  // Never increases within a session
	Ended       bool // Write-once
	EndedByBomb bool // Set together with Ended
}

// Per-dispatch drift factors.
const (
	popupDrift = 0.991
	chainDrift = 0.99
	speedDrift = 1.02
)

// Pacing is the wave timing, tightened a little after every dispatch.
type Pacing struct {
	PopupTime  float64
	ChainDelay float64
	Speed      float64 // World time scale
}

// Drift applies one dispatch worth of escalation.
func (p *Pacing) Drift() {
	p.PopupTime *= popupDrift
	p.ChainDelay *= chainDrift
	p.Speed *= speedDrift
}
