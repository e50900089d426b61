package core

import "github.com/automoto/pixel-shooter/economy"

// Screen is the frontend page the session is on.
type Screen string

const (
	ScreenMenu        Screen = "menu"
	ScreenMapSelect   Screen = "map_select"
	ScreenGame        Screen = "game"
	ScreenShop        Screen = "shop"
	ScreenLeaderboard Screen = "leaderboard"
	ScreenGameOver    Screen = "game_over"
)

// Valid reports whether s is a known screen.
func (s Screen) Valid() bool {
	switch s {
	case ScreenMenu, ScreenMapSelect, ScreenGame, ScreenShop, ScreenLeaderboard, ScreenGameOver:
		return true
	}
	return false
}

// Command is a request from a frontend, applied at the start of a tick.
type Command interface {
	commandName() string
}

// Navigate switches screens. Leaving the game screen cancels the active run;
// navigating to the game screen starts a run on the current arena.
type Navigate struct {
	Screen Screen
}

// SelectArena starts a new run on the named arena.
type SelectArena struct {
	Arena string
}

// Purchase buys one level of an upgrade. Only allowed outside a run.
type Purchase struct {
	Kind economy.Upgrade
}

// Leave abandons the current run and returns to the menu.
type Leave struct{}

// SetPlayerName sets the name recorded on the leaderboard.
type SetPlayerName struct {
	Name string
}

func (Navigate) commandName() string      { return "navigate" }
func (SelectArena) commandName() string   { return "select_arena" }
func (Purchase) commandName() string      { return "purchase" }
func (Leave) commandName() string         { return "leave" }
func (SetPlayerName) commandName() string { return "set_player_name" }
