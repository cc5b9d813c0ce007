package object

// Set is the ordered collection of in-flight, unresolved targets.
//
// Removal is the claim on a target: whichever sweep removes it first owns its
// terminal action, and every later lookup misses. Callers iterate a Snapshot,
// never the live slice, so removals during a scan cannot skip entries.
type Set struct {
	items []*Target
	index map[ID]int
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{index: make(map[ID]int)}
}

// Add registers a target. Adding an ID twice is a no-op.
func (s *Set) Add(t *Target) {
	if _, ok := s.index[t.ID]; ok {
		return
	}
	s.index[t.ID] = len(s.items)
	s.items = append(s.items, t)
}

// Remove drops a target and reports whether it was present.
func (s *Set) Remove(id ID) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	delete(s.index, id)
	copy(s.items[i:], s.items[i+1:])
	s.items[len(s.items)-1] = nil
	s.items = s.items[:len(s.items)-1]
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].ID] = j
	}
	return true
}

// Contains reports whether the target is still active.
func (s *Set) Contains(id ID) bool {
	_, ok := s.index[id]
	return ok
}

// Len returns the number of active targets.
func (s *Set) Len() int {
	return len(s.items)
}

// Snapshot returns a copy of the active targets in insertion order.
func (s *Set) Snapshot() []*Target {
	out := make([]*Target, len(s.items))
	copy(out, s.items)
	return out
}

// HasKind reports whether any active target is of the given kind.
func (s *Set) HasKind(k Kind) bool {
	for _, t := range s.items {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// Clear empties the set and returns the targets it held.
func (s *Set) Clear() []*Target {
	out := s.items
	s.items = nil
	clear(s.index)
	return out
}
