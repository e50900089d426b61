package core

import (
	"go.uber.org/zap"

	"github.com/automoto/pixel-shooter/components"
	"github.com/automoto/pixel-shooter/config"
	"github.com/automoto/pixel-shooter/shared/messages"
)

// NextWaveCount is the size of the wave that follows once totalKills
// enemies have died: min(ceiling, base + totalKills/killsPerEscalation).
func NextWaveCount(w config.WaveConfig, totalKills int) int {
	step := w.KillsPerEscalation
	if step < 1 {
		step = 1
	}
	n := w.BaseCount + totalKills/step
	if n > w.Ceiling {
		n = w.Ceiling
	}
	if n < w.BaseCount {
		n = w.BaseCount
	}
	return n
}

// checkOutcome runs after combat. Defeat wins over a simultaneous wave clear.
func (s *Simulation) checkOutcome() {
	m := components.Match.Get(s.match)

	if components.Health.Get(s.player).Current <= 0 {
		s.finish(components.OutcomeDefeat)
		return
	}

	w := components.Wave.Get(s.match)
	if len(s.enemies()) > 0 || w.Kills == 0 {
		return
	}

	// wave cleared
	bonus := s.cfg.Combat.ClearBonus
	m.Score += bonus
	if s.cfg.Features.Economy {
		s.credit(bonus)
	}
	w.Cleared++

	last := !s.cfg.Features.EscalatingWaves ||
		(s.cfg.Wave.MaxWaves > 0 && w.Cleared >= s.cfg.Wave.MaxWaves)
	if last {
		s.emit(messages.WaveClearedEvent{Wave: w.Number, Bonus: bonus})
		s.finish(components.OutcomeVictory)
		return
	}

	next := NextWaveCount(s.cfg.Wave, m.Kills)
	number := w.Number
	s.emit(messages.WaveClearedEvent{Wave: number, Bonus: bonus, NextCount: next})
	s.logger.Info("wave cleared",
		zap.Int("wave", number),
		zap.Int("kills", m.Kills),
		zap.Int("next", next),
	)
	s.spawnWave(number+1, next)
}

// finish moves the run to a terminal state. It is a no-op once the run is over.
func (s *Simulation) finish(outcome components.Outcome) {
	m := components.Match.Get(s.match)
	if m.Over() {
		return
	}
	m.Outcome = outcome
	s.Cancel()

	switch outcome {
	case components.OutcomeDefeat:
		s.emit(messages.DefeatEvent{FinalScore: m.Score})
	case components.OutcomeVictory:
		s.emit(messages.VictoryEvent{FinalScore: m.Score})
	}
	s.logger.Info("run finished",
		zap.Stringer("outcome", outcome),
		zap.Int("score", m.Score),
		zap.Int("kills", m.Kills),
		zap.Uint64("ticks", m.Tick),
	)
}
