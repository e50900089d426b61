package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Load reads a TOML file over the defaults and validates the result. An empty
// path returns the validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the whole object once at startup. It reports every problem,
// not just the first.
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Loop.TickPeriod <= 0 {
		fail("loop.tick_period must be positive, got %s", c.Loop.TickPeriod)
	}
	if c.Loop.CommandBuffer < 1 {
		fail("loop.command_buffer must be at least 1, got %d", c.Loop.CommandBuffer)
	}
	if c.Loop.EventBuffer < 1 {
		fail("loop.event_buffer must be at least 1, got %d", c.Loop.EventBuffer)
	}

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		fail("arena size must be positive, got %gx%g", c.Arena.Width, c.Arena.Height)
	}
	if c.Arena.Margin < 0 || c.Arena.SpawnMargin < 0 {
		fail("arena margins must not be negative")
	}
	if 2*c.Arena.Margin >= c.Arena.Width || 2*c.Arena.Margin >= c.Arena.Height {
		fail("arena.margin %g leaves no playable area", c.Arena.Margin)
	}
	if 2*c.Arena.SpawnMargin >= c.Arena.Width || 2*c.Arena.SpawnMargin >= c.Arena.Height {
		fail("arena.spawn_margin %g leaves no spawn area", c.Arena.SpawnMargin)
	}

	if c.Player.MaxHealth <= 0 {
		fail("player.max_health must be positive")
	}
	if c.Player.Speed < 0 || c.Player.Damage < 0 || c.Player.ProjectileSpeed <= 0 {
		fail("player speed/damage must not be negative and projectile_speed must be positive")
	}
	if c.Player.FireCooldown < 0 || c.Player.FireCooldownFloor < 0 {
		fail("player fire cooldowns must not be negative")
	}
	if c.Player.FireCooldownFloor > c.Player.FireCooldown {
		fail("player.fire_cooldown_floor %s exceeds fire_cooldown %s", c.Player.FireCooldownFloor, c.Player.FireCooldown)
	}

	if c.Enemy.MaxHealth <= 0 {
		fail("enemy.max_health must be positive")
	}
	if c.Enemy.StandoffRadius < 0 || c.Enemy.StandoffRadius > c.Enemy.PursuitRadius {
		fail("enemy.standoff_radius must lie in [0, pursuit_radius]")
	}
	if c.Enemy.ShootInterval <= 0 {
		fail("enemy.shoot_interval must be positive")
	}
	if c.Enemy.ProjectileSpeed <= 0 {
		fail("enemy.projectile_speed must be positive")
	}

	if c.Player.Radius <= 0 || c.Enemy.Radius <= 0 || c.Projectile.Radius <= 0 {
		fail("hit radii must be positive")
	}

	if c.Wave.BaseCount < 1 {
		fail("wave.base_count must be at least 1, got %d", c.Wave.BaseCount)
	}
	if c.Wave.Ceiling < c.Wave.BaseCount {
		fail("wave.ceiling %d is below base_count %d", c.Wave.Ceiling, c.Wave.BaseCount)
	}
	if c.Wave.KillsPerEscalation < 1 {
		fail("wave.kills_per_escalation must be at least 1")
	}
	if c.Wave.MaxWaves < 0 {
		fail("wave.max_waves must not be negative")
	}

	if c.Combat.KillScore < 0 || c.Combat.KillCurrency < 0 || c.Combat.ClearBonus < 0 {
		fail("combat rewards must not be negative")
	}
	if c.Combat.DrainPerTick < 0 {
		fail("combat.drain_per_tick must not be negative")
	}
	if c.Economy.StartingBalance < 0 {
		fail("economy.starting_balance must not be negative")
	}
	if c.Session.LeaderboardSize < 1 {
		fail("session.leaderboard_size must be at least 1")
	}

	return errors.Join(errs...)
}
