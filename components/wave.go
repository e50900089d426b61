package components

import "github.com/yohamta/donburi"

// WaveData tracks the current batch of enemies.
type WaveData struct {
	Number int
	// Spawned is how many enemies the batch started with.
	Spawned int
	// Kills counts kills since the batch spawned.
	Kills int
	// Cleared counts finished waves in this run.
	Cleared int
}

var Wave = donburi.NewComponentType[WaveData]()
