package board

import "slices"

// TrialGuard remembers, per edge, the move log as it stood the last time
// a speculative trial was attempted there. Both the chain-initiator rule
// and the edge-level trial loop use the same shape of guard: a hypothesis
// is explored only once the surrounding puzzle state has stopped
// changing, so no trial runs while other deductions are still being
// made. Once the log stays unchanged, the trial runs on every visit.
type TrialGuard map[EdgeID][]EdgeID

// NewTrialGuard returns an empty guard.
func NewTrialGuard() TrialGuard { return make(TrialGuard) }

// Expanded reports whether the move log is unchanged since the last time
// Remember was called for e. An edge never remembered before reports
// false, matching a from-scratch first attempt.
func (g TrialGuard) Expanded(p *Puzzle, e EdgeID) bool {
	prev, ok := g[e]
	if !ok {
		return false
	}
	return slices.Equal(prev, p.Log())
}

// Remember snapshots the current move log against e.
func (g TrialGuard) Remember(p *Puzzle, e EdgeID) {
	g[e] = p.Log()
}
