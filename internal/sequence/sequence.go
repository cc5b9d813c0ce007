// Package sequence builds the ordered list of wave archetypes that paces a
// session and hands them out through a cursor that only moves forward.
package sequence

import "github.com/tomz197/slicer/internal/rng"

// Archetype is a named pacing pattern for one wave.
type Archetype int

const (
	OneSafe Archetype = iota
	One
	TwoWithOneHazard
	Two
	Three
	Four
	Chain
	FastChain

	// Count is the number of archetypes. Keep it last.
	Count
)

var archetypeNames = [Count]string{
	OneSafe:          "one-safe",
	One:              "one",
	TwoWithOneHazard: "two-with-one-hazard",
	Two:              "two",
	Three:            "three",
	Four:             "four",
	Chain:            "chain",
	FastChain:        "fast-chain",
}

func (a Archetype) String() string {
	if a < 0 || a >= Count {
		return "unknown"
	}
	return archetypeNames[a]
}

// Prefix opens every session. The first two waves never contain a hazard.
var Prefix = []Archetype{OneSafe, OneSafe, TwoWithOneHazard, TwoWithOneHazard, Three, One, Chain}

// Random tail entries are drawn from [firstRandom, lastRandom]; OneSafe and One
// only ever appear in the prefix.
const (
	firstRandom = TwoWithOneHazard
	lastRandom  = FastChain
)

// DefaultTail is the number of random entries appended after the prefix.
const DefaultTail = 1001

// Generate returns the prefix followed by tail independent uniform draws.
func Generate(src rng.Source, tail int) []Archetype {
	if tail < 0 {
		tail = 0
	}
	seq := make([]Archetype, 0, len(Prefix)+tail)
	seq = append(seq, Prefix...)
	return appendRandom(seq, src, tail)
}

func appendRandom(seq []Archetype, src rng.Source, n int) []Archetype {
	for i := 0; i < n; i++ {
		seq = append(seq, Archetype(src.IntInRange(int(firstRandom), int(lastRandom))))
	}
	return seq
}

// Sequence is an append-only archetype list read through a forward cursor.
// When the cursor reaches the end, another tail batch is drawn so a session
// never runs out of waves.
type Sequence struct {
	items  []Archetype
	cursor int
	src    rng.Source
	batch  int
}

// New generates a sequence with the given tail length. The same tail length is
// used for every on-demand extension; a non-positive tail extends by DefaultTail.
func New(src rng.Source, tail int) *Sequence {
	batch := tail
	if batch <= 0 {
		batch = DefaultTail
	}
	return &Sequence{
		items: Generate(src, tail),
		src:   src,
		batch: batch,
	}
}

// Next returns the archetype at the cursor and advances it.
func (s *Sequence) Next() Archetype {
	if s.cursor >= len(s.items) {
		s.items = appendRandom(s.items, s.src, s.batch)
	}
	a := s.items[s.cursor]
	s.cursor++
	return a
}

// Peek returns the archetype Next would return without advancing.
func (s *Sequence) Peek() Archetype {
	if s.cursor >= len(s.items) {
		s.items = appendRandom(s.items, s.src, s.batch)
	}
	return s.items[s.cursor]
}

// Cursor returns how many archetypes have been consumed.
func (s *Sequence) Cursor() int {
	return s.cursor
}

// Len returns the number of archetypes generated so far.
func (s *Sequence) Len() int {
	return len(s.items)
}

// At returns the i-th generated archetype.
func (s *Sequence) At(i int) Archetype {
	return s.items[i]
}
