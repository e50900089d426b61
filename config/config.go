package config

import (
	"time"
)

// LoopConfig controls the fixed-tick driver.
type LoopConfig struct {
	TickPeriod    time.Duration `toml:"tick_period"`
	CommandBuffer int           `toml:"command_buffer"` // pending screen/shop commands
	EventBuffer   int           `toml:"event_buffer"`   // outcome events awaiting the frontend
}

// TickMillis returns the tick period in milliseconds, the unit every cooldown uses.
func (l LoopConfig) TickMillis() float64 {
	return float64(l.TickPeriod) / float64(time.Millisecond)
}

// ArenaConfig describes the default playfield. A loaded arena map overrides it.
type ArenaConfig struct {
	Name        string  `toml:"name"`
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	Margin      float64 `toml:"margin"`       // actors are clamped this far inside the edges
	SpawnMargin float64 `toml:"spawn_margin"` // enemies spawn this far inside the edges
}

// PlayerConfig contains the base (un-upgraded) player stats.
type PlayerConfig struct {
	MaxHealth         float64       `toml:"max_health"`
	Speed             float64       `toml:"speed"` // pixels per tick
	Damage            float64       `toml:"damage"`
	FireCooldown      time.Duration `toml:"fire_cooldown"`
	FireCooldownFloor time.Duration `toml:"fire_cooldown_floor"`
	Radius            float64       `toml:"radius"`
	ProjectileSpeed   float64       `toml:"projectile_speed"` // pixels per tick
}

// EnemyConfig contains enemy stats and AI tuning.
type EnemyConfig struct {
	MaxHealth       float64       `toml:"max_health"`
	Radius          float64       `toml:"radius"`
	WanderSpeed     float64       `toml:"wander_speed"`    // max |vx|, |vy| at spawn
	PursuitRadius   float64       `toml:"pursuit_radius"`  // engage band upper bound
	StandoffRadius  float64       `toml:"standoff_radius"` // engage band lower bound
	PursuitSpeed    float64       `toml:"pursuit_speed"`
	FireRange       float64       `toml:"fire_range"`
	ShootInterval   time.Duration `toml:"shoot_interval"`
	ShotDamage      float64       `toml:"shot_damage"`
	ProjectileSpeed float64       `toml:"projectile_speed"`
}

// ProjectileConfig contains shared projectile tuning.
type ProjectileConfig struct {
	Radius float64 `toml:"radius"`
}

// WaveConfig controls wave sizing.
type WaveConfig struct {
	BaseCount          int `toml:"base_count"`
	Ceiling            int `toml:"ceiling"`
	KillsPerEscalation int `toml:"kills_per_escalation"`
	MaxWaves           int `toml:"max_waves"` // 0 = endless
}

// CombatConfig contains rewards and attrition.
type CombatConfig struct {
	KillScore    int     `toml:"kill_score"`
	KillCurrency int     `toml:"kill_currency"`
	ClearBonus   int     `toml:"clear_bonus"`
	DrainPerTick float64 `toml:"drain_per_tick"`
}

// FeatureFlags select which optional systems are active.
type FeatureFlags struct {
	Economy         bool `toml:"economy"`
	EscalatingWaves bool `toml:"escalating_waves"`
	PassiveDrain    bool `toml:"passive_drain"`
}

// EconomyConfig points at the upgrade catalog.
type EconomyConfig struct {
	UpgradesFile    string `toml:"upgrades_file"` // empty = built-in catalog
	StartingBalance int    `toml:"starting_balance"`
}

// LoggingConfig selects the zap encoder.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	Output string `toml:"output"` // file path; empty = stderr
}

// SessionConfig contains per-session presentation defaults.
type SessionConfig struct {
	PlayerName      string `toml:"player_name"`
	LeaderboardSize int    `toml:"leaderboard_size"`
}

// Config is the single object the core is initialised with.
type Config struct {
	Loop       LoopConfig       `toml:"loop"`
	Arena      ArenaConfig      `toml:"arena"`
	Player     PlayerConfig     `toml:"player"`
	Enemy      EnemyConfig      `toml:"enemy"`
	Projectile ProjectileConfig `toml:"projectile"`
	Wave       WaveConfig       `toml:"wave"`
	Combat     CombatConfig     `toml:"combat"`
	Features   FeatureFlags     `toml:"features"`
	Economy    EconomyConfig    `toml:"economy"`
	Logging    LoggingConfig    `toml:"logging"`
	Session    SessionConfig    `toml:"session"`
}

// Default returns the reference ruleset: 20 Hz, 800x600, four enemies per
// opening wave and a 0.1 hp/tick drain.
func Default() *Config {
	return &Config{
		Loop: LoopConfig{
			TickPeriod:    50 * time.Millisecond,
			CommandBuffer: 64,
			EventBuffer:   256,
		},
		Arena: ArenaConfig{
			Name:        "warehouse",
			Width:       800,
			Height:      600,
			Margin:      20,
			SpawnMargin: 50,
		},
		Player: PlayerConfig{
			MaxHealth:         100,
			Speed:             5,
			Damage:            25,
			FireCooldown:      250 * time.Millisecond,
			FireCooldownFloor: 100 * time.Millisecond,
			Radius:            16,
			ProjectileSpeed:   10,
		},
		Enemy: EnemyConfig{
			MaxHealth:       100,
			Radius:          26,
			WanderSpeed:     1.5,
			PursuitRadius:   350,
			StandoffRadius:  80,
			PursuitSpeed:    1.2,
			FireRange:       300,
			ShootInterval:   1500 * time.Millisecond,
			ShotDamage:      10,
			ProjectileSpeed: 6,
		},
		Projectile: ProjectileConfig{
			Radius: 4,
		},
		Wave: WaveConfig{
			BaseCount:          4,
			Ceiling:            12,
			KillsPerEscalation: 3,
		},
		Combat: CombatConfig{
			KillScore:    100,
			KillCurrency: 50,
			ClearBonus:   200,
			DrainPerTick: 0.10,
		},
		Features: FeatureFlags{
			Economy:         true,
			EscalatingWaves: true,
			PassiveDrain:    true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Session: SessionConfig{
			PlayerName:      "PLAYER",
			LeaderboardSize: 10,
		},
	}
}

// Basic returns the classic single-wave ruleset: no shop, one wave, victory
// when it is cleared.
func Basic() *Config {
	c := Default()
	c.Features.Economy = false
	c.Features.EscalatingWaves = false
	return c
}
