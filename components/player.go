package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// PlayerData is the loadout the run started with plus the fire gate.
type PlayerData struct {
	Speed         float64
	Damage        float64
	FireCooldown  time.Duration
	DrainImmunity bool

	// CoolingDown is set when a shot is fired and cleared by a scheduled
	// callback after FireCooldown of simulated time.
	CoolingDown bool
	FireTimer   uint64
}

var Player = donburi.NewComponentType[PlayerData]()
