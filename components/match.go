package components

import "github.com/yohamta/donburi"

// Outcome is how a run ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeDefeat
	OutcomeVictory
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDefeat:
		return "defeat"
	case OutcomeVictory:
		return "victory"
	}
	return "none"
}

// MatchData is the per-run singleton.
type MatchData struct {
	Arena     string
	Score     int
	Kills     int
	Tick      uint64
	ElapsedMs float64
	Outcome   Outcome

	NextProjectileID int
}

// Over reports whether the run has reached a terminal state.
func (m *MatchData) Over() bool {
	return m.Outcome != OutcomeNone
}

var Match = donburi.NewComponentType[MatchData]()
