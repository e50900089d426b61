package components

import "github.com/yohamta/donburi"

// HealthData is kept within [0, Max] by every mutator.
type HealthData struct {
	Current float64
	Max     float64
}

// Damage subtracts amount and reports whether the entity is dead.
func (h *HealthData) Damage(amount float64) bool {
	if amount > 0 {
		h.Current -= amount
	}
	h.clamp()
	return h.Current <= 0
}

// SetMax changes the ceiling and clamps the current value under it.
func (h *HealthData) SetMax(m float64) {
	if m < 0 {
		m = 0
	}
	h.Max = m
	h.clamp()
}

// Fraction returns Current/Max, 0 when Max is 0.
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

func (h *HealthData) clamp() {
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

var Health = donburi.NewComponentType[HealthData]()
