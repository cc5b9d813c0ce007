package server

import "sort"

// TopScoreEntry represents a single entry on the leaderboard.
type TopScoreEntry struct {
	Username string
	Score    int
	clientID int // Used for deterministic tie-break when scores are equal
}

// Snapshot is an immutable view of the lobby for rendering.
type Snapshot struct {
	Players   int
	TopScores []TopScoreEntry // Best first
}

// topScores returns the best n entries, highest score first, earlier
// clients first on ties.
func topScores(best map[int]TopScoreEntry, n int) []TopScoreEntry {
	entries := make([]TopScoreEntry, 0, len(best))
	for _, e := range best {
		if e.Score > 0 {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].clientID < entries[j].clientID
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
