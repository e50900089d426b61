package config

import "fmt"

// BotDifficulty affects reaction time and decision quality of the autopilot
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

func (d BotDifficulty) String() string {
	switch d {
	case BotDifficultyEasy:
		return "easy"
	case BotDifficultyHard:
		return "hard"
	default:
		return "normal"
	}
}

// ParseBotDifficulty accepts the names String returns.
func ParseBotDifficulty(s string) (BotDifficulty, error) {
	for _, d := range []BotDifficulty{BotDifficultyEasy, BotDifficultyNormal, BotDifficultyHard} {
		if d.String() == s {
			return d, nil
		}
	}
	return BotDifficultyNormal, fmt.Errorf("unknown bot difficulty %q", s)
}

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay    int     // Ticks between fire decisions
	AttackRange      float64 // Distance to start shooting
	KiteRange        float64 // Back away from enemies closer than this
	RetreatThreshold float64 // Health fraction below which the bot only kites
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds autopilot configuration
var Bot = BotConfigData{
	Difficulties: map[BotDifficulty]BotDifficultyConfig{
		BotDifficultyEasy: {
			ReactionDelay:    10, // half a second at 20 Hz
			AttackRange:      250,
			KiteRange:        0,
			RetreatThreshold: 0,
		},
		BotDifficultyNormal: {
			ReactionDelay:    3,
			AttackRange:      400,
			KiteRange:        120,
			RetreatThreshold: 0.3,
		},
		BotDifficultyHard: {
			ReactionDelay:    0,
			AttackRange:      1000,
			KiteRange:        180,
			RetreatThreshold: 0.15,
		},
	},
}
