package game

import "fmt"

// Match tracks set wins on top of the per-rally scores held by the slimes.
// Started is true only while a set is in progress; it drops to false the
// moment one side takes the majority of sets.
type Match struct {
	Sets    [2]int
	BestOf  int
	Started bool
}

// NewMatch rejects even or non-positive bestOf values outright; the majority
// threshold is only well defined for odd series.
func NewMatch(bestOf int) (*Match, error) {
	if bestOf < 1 || bestOf%2 == 0 {
		return nil, fmt.Errorf("best-of must be a positive odd number, got %d", bestOf)
	}
	return &Match{BestOf: bestOf}, nil
}

// SetsToWin is ceil(bestOf/2): 2 for a best-of-3.
func (m *Match) SetsToWin() int {
	return (m.BestOf + 1) / 2
}

// Start begins a fresh match. Calling it mid-match is a silent reset.
func (m *Match) Start() {
	m.Sets[0] = 0
	m.Sets[1] = 0
	m.Started = true
}

// SetWon records a completed set for side and reports whether the match is
// over, in which case Started is cleared.
func (m *Match) SetWon(side int) bool {
	if !m.Started {
		return false
	}
	m.Sets[side]++
	if m.Sets[side] >= m.SetsToWin() {
		m.Started = false
		return true
	}
	return false
}
