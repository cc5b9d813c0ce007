package game

import (
	"math"
	"testing"
	"time"

	"github.com/tomz197/slicer/internal/audio"
	"github.com/tomz197/slicer/internal/gesture"
	"github.com/tomz197/slicer/internal/object"
	"github.com/tomz197/slicer/internal/sequence"
)

// queueSource returns queued values and falls back to max once empty, which
// makes every default spawn a normal target.
type queueSource struct {
	values []int
}

func (s *queueSource) IntInRange(min, max int) int {
	if len(s.values) == 0 {
		return max
	}
	v := s.values[0]
	s.values = s.values[1:]
	return min + (v-min)%(max-min+1)
}

type fakeScene struct {
	added    []*object.Target
	removed  []*object.Target
	effects  []Effect
	attached []Effect
	lifeLost []int
	paths    int
	fades    []float64
	resets   int
	onAdd    func(t *object.Target)
}

func (s *fakeScene) Reset() { s.resets++ }

func (s *fakeScene) AddObject(t *object.Target) {
	s.added = append(s.added, t)
	if s.onAdd != nil {
		s.onAdd(t)
	}
}

func (s *fakeScene) RemoveObject(t *object.Target)           { s.removed = append(s.removed, t) }
func (s *fakeScene) SetPath([]gesture.Point)                 { s.paths++ }
func (s *fakeScene) ShowPath()                               {}
func (s *fakeScene) FadePath(seconds float64)                { s.fades = append(s.fades, seconds) }
func (s *fakeScene) PlayEffect(e Effect, _, _ float64)       { s.effects = append(s.effects, e) }
func (s *fakeScene) AttachEffect(_ *object.Target, e Effect) { s.attached = append(s.attached, e) }
func (s *fakeScene) SetLifeLost(index int)                   { s.lifeLost = append(s.lifeLost, index) }

type fakeHandle struct {
	stopped bool
}

func (h *fakeHandle) Stop() { h.stopped = true }

type fakeAudio struct {
	played []audio.Sound
	loops  []*fakeHandle
}

func (a *fakeAudio) Play(s audio.Sound) time.Duration {
	a.played = append(a.played, s)
	return 300 * time.Millisecond
}

func (a *fakeAudio) Loop(audio.Sound) audio.Handle {
	h := &fakeHandle{}
	a.loops = append(a.loops, h)
	return h
}

func (a *fakeAudio) count(s audio.Sound) int {
	n := 0
	for _, p := range a.played {
		if p == s {
			n++
		}
	}
	return n
}

func newTestGame(t *testing.T, values ...int) (*Game, *fakeScene, *fakeAudio) {
	t.Helper()
	scene := &fakeScene{}
	sound := &fakeAudio{}
	src := &queueSource{}
	g := New(DefaultConfig(), Deps{
		Scene: scene,
		Audio: sound,
		RNG:   src,
	})
	// Queued after New so the sequence tail does not consume them.
	src.values = values
	return g, scene, sound
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFirstWaveAfterStartDelay(t *testing.T) {
	g, scene, _ := newTestGame(t)
	g.Start()

	if !g.WavePending() {
		t.Fatal("expected wave pending after Start")
	}
	g.Update(1.9)
	if len(scene.added) != 0 {
		t.Fatalf("spawned %d targets before start delay", len(scene.added))
	}
	g.Update(0.1)
	if len(scene.added) != 1 {
		t.Fatalf("expected OneSafe wave of 1 target, got %d", len(scene.added))
	}
	if scene.added[0].Kind != object.Normal {
		t.Errorf("first wave must be safe, got %v", scene.added[0].Kind)
	}
	if g.Waves() != 1 {
		t.Errorf("expected cursor 1, got %d", g.Waves())
	}
}

func TestPacingDriftsOncePerDispatch(t *testing.T) {
	g, _, _ := newTestGame(t)
	cfg := g.Config()

	for i := 1; i <= 3; i++ {
		g.dispatchWave(g.session)
		p := g.Pacing()
		n := float64(i)
		if !almostEqual(p.PopupTime, cfg.PopupTime*math.Pow(popupDrift, n)) {
			t.Errorf("dispatch %d: popup %v", i, p.PopupTime)
		}
		if !almostEqual(p.ChainDelay, cfg.ChainDelay*math.Pow(chainDrift, n)) {
			t.Errorf("dispatch %d: chain %v", i, p.ChainDelay)
		}
		if !almostEqual(p.Speed, cfg.WorldSpeed*math.Pow(speedDrift, n)) {
			t.Errorf("dispatch %d: speed %v", i, p.Speed)
		}
		if g.world.Speed != p.Speed {
			t.Errorf("dispatch %d: world speed %v != pacing %v", i, g.world.Speed, p.Speed)
		}
	}
}

func TestSliceNormalOnce(t *testing.T) {
	g, scene, sound := newTestGame(t)
	target := g.spawn(HazardNever)
	target.X, target.Y = 500, 400

	p := gesture.Point{X: 500, Y: 400}
	g.GestureBegin(gesture.Point{X: 480, Y: 400})
	g.GestureMove(p, p, p)

	if got := g.State().Score; got != 1 {
		t.Fatalf("expected score 1, got %d", got)
	}
	if g.ActiveCount() != 0 {
		t.Fatalf("expected empty active set, got %d", g.ActiveCount())
	}
	if !target.Sliced || target.Dynamic {
		t.Error("sliced target should be marked and frozen")
	}
	if sound.count(audio.SoundWhack) != 1 {
		t.Errorf("expected one whack, got %d", sound.count(audio.SoundWhack))
	}
	if len(scene.effects) != 1 || scene.effects[0] != EffectSlice {
		t.Errorf("expected one slice effect, got %v", scene.effects)
	}

	g.GestureMove(p)
	if got := g.State().Score; got != 1 {
		t.Errorf("second slice must be a no-op, score %d", got)
	}
}

func TestSampleTestsEveryNearbyTarget(t *testing.T) {
	g, _, _ := newTestGame(t)
	a := g.spawn(HazardNever)
	a.X, a.Y = 100, 100
	b := g.spawn(HazardNever)
	b.X, b.Y = 200, 100

	g.GestureMove(gesture.Point{X: 200, Y: 100})

	if !b.Sliced {
		t.Fatal("sample inside b did not slice b")
	}
	if a.Sliced {
		t.Error("a is out of reach and should not be sliced")
	}
	if got := g.State().Score; got != 1 {
		t.Errorf("score = %d, want 1", got)
	}
}

func TestSampleSlicesOverlappingTargets(t *testing.T) {
	g, _, _ := newTestGame(t)
	a := g.spawn(HazardNever)
	a.X, a.Y = 500, 400
	b := g.spawn(HazardNever)
	b.X, b.Y = 530, 400

	g.GestureMove(gesture.Point{X: 515, Y: 400})

	if got := g.State().Score; got != 2 {
		t.Fatalf("score = %d, want 2", got)
	}
	if g.ActiveCount() != 0 {
		t.Errorf("active = %d, want 0", g.ActiveCount())
	}
}

func TestBatchSlicesTargetsAlongThePath(t *testing.T) {
	g, _, _ := newTestGame(t)
	tests := []struct{ x, y float64 }{{100, 100}, {400, 300}, {900, 600}}
	var targets []*object.Target
	for _, tt := range tests {
		tgt := g.spawn(HazardNever)
		tgt.X, tgt.Y = tt.x, tt.y
		targets = append(targets, tgt)
	}

	g.GestureBegin(gesture.Point{X: 50, Y: 50})
	g.GestureMove(
		gesture.Point{X: 100, Y: 100},
		gesture.Point{X: 250, Y: 200},
		gesture.Point{X: 400, Y: 300},
		gesture.Point{X: 900, Y: 600},
	)

	for i, tgt := range targets {
		if !tgt.Sliced {
			t.Errorf("target %d not sliced", i)
		}
	}
	if got := g.State().Score; got != 3 {
		t.Errorf("score = %d, want 3", got)
	}
}

func TestHazardSliceEndsGameWithLivesLeft(t *testing.T) {
	g, scene, sound := newTestGame(t)
	hazard := g.spawn(HazardAlways)
	hazard.X, hazard.Y = 300, 300
	other := g.spawn(HazardNever)
	other.X, other.Y = 700, 300

	g.GestureMove(gesture.Point{X: 300, Y: 300}, gesture.Point{X: 700, Y: 300})

	s := g.State()
	if !s.Ended || !s.EndedByBomb {
		t.Fatalf("expected bomb ending, got %+v", s)
	}
	if s.Lives != 3 {
		t.Errorf("lives should be untouched, got %d", s.Lives)
	}
	if s.Score != 0 {
		t.Errorf("hit test must stop at game end, score %d", s.Score)
	}
	if len(scene.lifeLost) != 3 || scene.lifeLost[0] != 0 || scene.lifeLost[2] != 2 {
		t.Errorf("expected all life indicators lost, got %v", scene.lifeLost)
	}
	if sound.count(audio.SoundExplosion) != 1 {
		t.Error("expected explosion sound")
	}
	if !sound.loops[0].stopped {
		t.Error("fuse should stop at game end")
	}
	if g.InputEnabled() {
		t.Error("input should be disabled")
	}
	if !g.world.Frozen() {
		t.Error("world should be frozen")
	}
}

func TestLosingLives(t *testing.T) {
	g, scene, sound := newTestGame(t)

	for i := 1; i <= 3; i++ {
		target := g.spawn(HazardNever)
		target.Y = -200
		g.sweep()

		s := g.State()
		if s.Lives != 3-i {
			t.Fatalf("miss %d: lives %d", i, s.Lives)
		}
		if want := i == 3; s.Ended != want {
			t.Fatalf("miss %d: ended %v", i, s.Ended)
		}
	}

	if g.State().EndedByBomb {
		t.Error("life loss is not a bomb ending")
	}
	want := []int{0, 1, 2}
	if len(scene.lifeLost) != len(want) {
		t.Fatalf("life indicators %v, want %v", scene.lifeLost, want)
	}
	for i := range want {
		if scene.lifeLost[i] != want[i] {
			t.Errorf("life indicators %v, want %v", scene.lifeLost, want)
		}
	}
	if sound.count(audio.SoundWrong) != 3 {
		t.Errorf("expected 3 wrong cues, got %d", sound.count(audio.SoundWrong))
	}
	if len(scene.removed) != 3 {
		t.Errorf("expected 3 removals, got %d", len(scene.removed))
	}
}

func TestMissedHazardCostsNoLife(t *testing.T) {
	g, _, sound := newTestGame(t)
	hazard := g.spawn(HazardAlways)
	hazard.Y = -141

	g.sweep()

	if g.State().Lives != 3 {
		t.Errorf("missed hazard cost a life: %d", g.State().Lives)
	}
	if g.ActiveCount() != 0 {
		t.Error("hazard should leave the active set")
	}
	if !sound.loops[0].stopped {
		t.Error("fuse should stop once no hazard is active")
	}
}

func TestEmptyBoardQueuesOneWave(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.pacing.PopupTime = 0.5

	g.sweep()
	if !g.WavePending() {
		t.Fatal("guard should be raised immediately")
	}
	g.sweep()
	g.sweep()
	if n := g.timers.Len(); n != 1 {
		t.Fatalf("expected exactly one queued dispatch, got %d", n)
	}

	g.timers.Advance(0.4)
	if g.Waves() != 0 {
		t.Fatal("dispatched early")
	}
	g.timers.Advance(0.1)
	if g.Waves() != 1 {
		t.Fatalf("expected one dispatch at 0.5, got %d", g.Waves())
	}
}

func TestGuardHoldsWhileTargetsInFlight(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.dispatchWave(g.session)
	pending := g.timers.Len()

	g.sweep()
	if g.timers.Len() != pending {
		t.Error("queued a wave while the board is not clear")
	}

	for _, target := range g.Active() {
		target.Y = -200
	}
	g.sweep()
	if g.timers.Len() != pending+1 {
		t.Error("expected the next wave once the board cleared")
	}
}

func TestChainSpawnTimes(t *testing.T) {
	g, scene, _ := newTestGame(t)
	for range 6 {
		g.seq.Next()
	}
	if g.seq.Peek() != sequence.Chain {
		t.Fatalf("expected Chain at cursor 6, got %v", g.seq.Peek())
	}

	var times []float64
	scene.onAdd = func(*object.Target) {
		times = append(times, g.Now())
	}
	g.dispatchWave(g.session)

	// Board empties but the chain is still running, so nothing is queued.
	for _, target := range g.Active() {
		g.active.Remove(target.ID)
	}
	g.sweep()
	if g.timers.Len() != 4 {
		t.Fatalf("expected only the 4 followers queued, got %d", g.timers.Len())
	}

	g.timers.Advance(3)

	want := []float64{0, 0.6, 1.2, 1.8, 2.4}
	if len(times) != len(want) {
		t.Fatalf("spawn times %v, want %v", times, want)
	}
	for i := range want {
		if !almostEqual(times[i], want[i]) {
			t.Errorf("spawn %d at %v, want %v", i, times[i], want[i])
		}
	}
}

func TestFastChainSpacing(t *testing.T) {
	plan := wavePlans[sequence.FastChain]
	if plan.followers != 4 || plan.divisor != 10 {
		t.Errorf("fast chain plan %+v", plan)
	}
}

func TestWavePlansCoverEveryArchetype(t *testing.T) {
	want := map[sequence.Archetype]int{
		sequence.OneSafe:          1,
		sequence.One:              1,
		sequence.TwoWithOneHazard: 2,
		sequence.Two:              2,
		sequence.Three:            3,
		sequence.Four:             4,
		sequence.Chain:            5,
		sequence.FastChain:        5,
	}
	for a := sequence.Archetype(0); a < sequence.Count; a++ {
		plan := wavePlans[a]
		if got := len(plan.spawns) + plan.followers; got != want[a] {
			t.Errorf("%v spawns %d, want %d", a, got, want[a])
		}
	}

	th := wavePlans[sequence.TwoWithOneHazard].spawns
	if th[0] != HazardNever || th[1] != HazardAlways {
		t.Errorf("two-with-one-hazard policies %v", th)
	}
}

func TestTimersNoOpAfterEnd(t *testing.T) {
	g, scene, _ := newTestGame(t)
	g.Start()
	g.End(false)

	g.Update(5)
	if len(scene.added) != 0 {
		t.Errorf("spawned %d targets after game end", len(scene.added))
	}
}

func TestChainFollowersNoOpAfterEnd(t *testing.T) {
	g, scene, _ := newTestGame(t)
	for range 6 {
		g.seq.Next()
	}
	g.dispatchWave(g.session)
	g.End(false)

	g.timers.Advance(3)
	if len(scene.added) != 1 {
		t.Errorf("followers spawned after end: %d targets", len(scene.added))
	}
}

func TestResetDiscardsOldTimers(t *testing.T) {
	g, scene, _ := newTestGame(t)
	for range 6 {
		g.seq.Next()
	}
	g.dispatchWave(g.session)
	g.state.Score = 7

	g.Reset()
	added := len(scene.added)

	g.timers.Advance(1.9)
	if len(scene.added) != added {
		t.Error("old chain followers fired after reset")
	}
	if g.State() != (State{Lives: 3}) {
		t.Errorf("state not reset: %+v", g.State())
	}
	if g.ActiveCount() != 0 {
		t.Error("active set not cleared")
	}

	g.timers.Advance(0.1)
	if len(scene.added) != added+1 {
		t.Error("new session did not start its first wave")
	}
}

func TestEndIsIdempotent(t *testing.T) {
	g, scene, _ := newTestGame(t)
	g.End(false)
	g.End(true)

	s := g.State()
	if !s.Ended || s.EndedByBomb {
		t.Errorf("second End must be ignored, got %+v", s)
	}
	if len(scene.lifeLost) != 0 {
		t.Errorf("life indicators changed: %v", scene.lifeLost)
	}
}

func TestNewestFuseWins(t *testing.T) {
	g, scene, sound := newTestGame(t)
	first := g.spawn(HazardAlways)
	g.spawn(HazardAlways)

	if len(sound.loops) != 2 {
		t.Fatalf("expected 2 fuse loops, got %d", len(sound.loops))
	}
	if !sound.loops[0].stopped || sound.loops[1].stopped {
		t.Error("older fuse should be stopped, newest kept")
	}
	if len(scene.attached) != 2 || scene.attached[0] != EffectFuse {
		t.Errorf("expected fuse effects, got %v", scene.attached)
	}

	first.Y = -200
	g.sweep()
	if sound.loops[1].stopped {
		t.Error("fuse stopped while a hazard is still active")
	}
}

func TestSpawnKindDraw(t *testing.T) {
	g, _, sound := newTestGame(t, 0)
	if target := g.spawn(HazardDefault); target.Kind != object.Hazard {
		t.Error("draw 0 should give a hazard")
	}

	g, _, sound = newTestGame(t, 1)
	if target := g.spawn(HazardDefault); target.Kind != object.Normal {
		t.Error("non-zero draw should give a normal target")
	}
	if sound.count(audio.SoundLaunch) != 1 {
		t.Error("normal spawn should play the launch cue")
	}
}

func TestSingleSampleMoveSwooshes(t *testing.T) {
	g, _, sound := newTestGame(t)
	g.GestureMove(gesture.Point{X: 20, Y: 10})
	n := sound.count(audio.SoundSwoosh1) + sound.count(audio.SoundSwoosh2) + sound.count(audio.SoundSwoosh3)
	if n != 1 {
		t.Errorf("expected a swoosh for a single sample, got %d", n)
	}
}

func TestSwooshDoesNotOverlap(t *testing.T) {
	g, _, sound := newTestGame(t)
	swooshes := func() int {
		return sound.count(audio.SoundSwoosh1) + sound.count(audio.SoundSwoosh2) + sound.count(audio.SoundSwoosh3)
	}

	g.GestureBegin(gesture.Point{X: 10, Y: 10})
	g.GestureMove(gesture.Point{X: 20, Y: 10}, gesture.Point{X: 30, Y: 10})
	g.GestureMove(gesture.Point{X: 40, Y: 10})
	if n := swooshes(); n != 1 {
		t.Fatalf("expected one swoosh, got %d", n)
	}

	g.Update(0.3)
	g.GestureMove(gesture.Point{X: 50, Y: 10})
	if n := swooshes(); n != 2 {
		t.Errorf("expected a second swoosh after the first ended, got %d", n)
	}
}

func TestGestureEndAndCancelFadePath(t *testing.T) {
	g, scene, _ := newTestGame(t)
	g.GestureEnd()
	g.GestureCancel()

	if len(scene.fades) != 2 || scene.fades[0] != 0.25 || scene.fades[1] != 0.25 {
		t.Errorf("expected two 0.25s fades, got %v", scene.fades)
	}
}

func TestGestureIgnoredAfterEnd(t *testing.T) {
	g, scene, _ := newTestGame(t)
	target := g.spawn(HazardNever)
	target.X, target.Y = 200, 200
	g.End(false)

	paths := scene.paths
	g.GestureBegin(gesture.Point{X: 200, Y: 200})
	g.GestureMove(gesture.Point{X: 200, Y: 200})

	if g.State().Score != 0 || scene.paths != paths {
		t.Error("gestures must be ignored after the game ends")
	}
}
