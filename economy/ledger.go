// Package economy keeps the session's currency balance and upgrade levels.
// A Ledger outlives individual runs but not the process.
package economy

import (
	"time"

	"github.com/automoto/pixel-shooter/config"
)

// Upgrade identifies a purchasable stat improvement.
type Upgrade string

const (
	UpgradeDamage        Upgrade = "damage"
	UpgradeSpeed         Upgrade = "speed"
	UpgradeMaxHealth     Upgrade = "max_health"
	UpgradeFireRate      Upgrade = "fire_rate"
	UpgradeDrainImmunity Upgrade = "drain_immunity"
)

// Upgrades lists every kind in shop order.
var Upgrades = []Upgrade{
	UpgradeDamage,
	UpgradeSpeed,
	UpgradeMaxHealth,
	UpgradeFireRate,
	UpgradeDrainImmunity,
}

// Valid reports whether u is a known kind.
func (u Upgrade) Valid() bool {
	for _, k := range Upgrades {
		if k == u {
			return true
		}
	}
	return false
}

// Stats is the player loadout derived from the base config and bought levels.
type Stats struct {
	Damage        float64
	Speed         float64
	MaxHealth     float64
	FireCooldown  time.Duration
	DrainImmunity bool
}

// Ledger tracks the balance and applies purchases. It is not safe for
// concurrent use; the game loop is its only writer.
type Ledger struct {
	balance int
	levels  map[Upgrade]int
	stats   Stats
	floor   time.Duration
	catalog *Catalog
}

// NewLedger starts a ledger from the base player stats.
func NewLedger(player config.PlayerConfig, catalog *Catalog, startingBalance int) *Ledger {
	if startingBalance < 0 {
		startingBalance = 0
	}
	return &Ledger{
		balance: startingBalance,
		levels:  make(map[Upgrade]int, len(Upgrades)),
		stats: Stats{
			Damage:       player.Damage,
			Speed:        player.Speed,
			MaxHealth:    player.MaxHealth,
			FireCooldown: player.FireCooldown,
		},
		floor:   player.FireCooldownFloor,
		catalog: catalog,
	}
}

// Balance returns the current currency.
func (l *Ledger) Balance() int { return l.balance }

// Level returns how many times u has been bought.
func (l *Ledger) Level(u Upgrade) int { return l.levels[u] }

// Levels returns a copy of every bought level.
func (l *Ledger) Levels() map[Upgrade]int {
	out := make(map[Upgrade]int, len(l.levels))
	for k, v := range l.levels {
		out[k] = v
	}
	return out
}

// Stats returns the current loadout.
func (l *Ledger) Stats() Stats { return l.stats }

// Catalog returns the price list the ledger was built with.
func (l *Ledger) Catalog() *Catalog { return l.catalog }

// Credit adds currency. Non-positive amounts are ignored.
func (l *Ledger) Credit(amount int) {
	if amount <= 0 {
		return
	}
	l.balance += amount
}

// Purchase buys one level of u at the catalog price.
func (l *Ledger) Purchase(u Upgrade) (cost int, ok bool) {
	spec, found := l.catalog.Get(u)
	if !found {
		return 0, false
	}
	return spec.Cost, l.PurchaseAt(u, spec.Cost)
}

// PurchaseAt buys one level of u for cost. It is a no-op returning false when
// the balance is short, the kind is unknown, or the upgrade cannot improve
// any further (fire rate at its floor, perk already owned).
func (l *Ledger) PurchaseAt(u Upgrade, cost int) bool {
	if cost < 0 || l.balance < cost || !l.canImprove(u) {
		return false
	}
	l.balance -= cost
	l.apply(u)
	l.levels[u]++
	return true
}

func (l *Ledger) canImprove(u Upgrade) bool {
	switch u {
	case UpgradeDamage, UpgradeSpeed, UpgradeMaxHealth:
		return true
	case UpgradeFireRate:
		return l.stats.FireCooldown > l.floor
	case UpgradeDrainImmunity:
		return !l.stats.DrainImmunity
	}
	return false
}

func (l *Ledger) apply(u Upgrade) {
	inc := l.catalog.Increment(u)
	switch u {
	case UpgradeDamage:
		l.stats.Damage += inc
	case UpgradeSpeed:
		l.stats.Speed += inc
	case UpgradeMaxHealth:
		l.stats.MaxHealth += inc
	case UpgradeFireRate:
		next := l.stats.FireCooldown - time.Duration(inc*float64(time.Millisecond))
		if next < l.floor {
			next = l.floor
		}
		l.stats.FireCooldown = next
	case UpgradeDrainImmunity:
		l.stats.DrainImmunity = true
	}
}
