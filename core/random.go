package core

// RandomSource feeds spawn placement and enemy velocities. *rand.Rand
// satisfies it; tests inject a seeded one.
type RandomSource interface {
	Float64() float64
}

// Wallet receives currency awards. *economy.Ledger satisfies it.
type Wallet interface {
	Credit(amount int)
}
