// Package messages holds the outcome events the simulation hands to the
// presentation layer. Events are plain values; consumers switch on type.
package messages

// Event is implemented by every outcome event.
type Event interface {
	EventName() string
}

// DefeatEvent is emitted exactly once when the player's health reaches 0.
type DefeatEvent struct {
	FinalScore int
}

// VictoryEvent ends a run that cleared its last wave.
type VictoryEvent struct {
	FinalScore int
}

// WaveClearedEvent is emitted when a wave's enemy set empties after at least
// one kill.
type WaveClearedEvent struct {
	Wave      int
	Bonus     int
	NextCount int // 0 when the run ends instead of respawning
}

// PurchaseEvent reports a shop request, accepted or not.
type PurchaseEvent struct {
	Kind    string
	Cost    int
	OK      bool
	Balance int
}

// EnemyKilledEvent carries the awards for one kill.
type EnemyKilledEvent struct {
	EnemyID  int
	Score    int
	Currency int
	X, Y     float64
}

// RunStartedEvent is emitted when a new run begins on an arena.
type RunStartedEvent struct {
	Arena string
	Wave  int
	Count int
}

// LeaderboardUpdatedEvent follows a finished run. Rank is -1 when the score
// did not place.
type LeaderboardUpdatedEvent struct {
	Name  string
	Score int
	Rank  int
}

func (DefeatEvent) EventName() string             { return "defeat" }
func (VictoryEvent) EventName() string            { return "victory" }
func (WaveClearedEvent) EventName() string        { return "wave_cleared" }
func (PurchaseEvent) EventName() string           { return "purchase" }
func (EnemyKilledEvent) EventName() string        { return "enemy_killed" }
func (RunStartedEvent) EventName() string         { return "run_started" }
func (LeaderboardUpdatedEvent) EventName() string { return "leaderboard_updated" }
