package core

import (
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/automoto/pixel-shooter/config"
	"github.com/automoto/pixel-shooter/economy"
	"github.com/automoto/pixel-shooter/input"
	"github.com/automoto/pixel-shooter/leaderboard"
	"github.com/automoto/pixel-shooter/shared/leveldata"
	"github.com/automoto/pixel-shooter/shared/messages"
)

const maxNameLen = 16

// Session is everything that outlives a single run: the screen, the ledger,
// the leaderboard and the arena list. It is not safe for concurrent use; the
// GameLoop is its only caller.
type Session struct {
	cfg    *config.Config
	logger *zap.Logger
	rng    RandomSource
	clock  func() time.Time

	arenas map[string]*leveldata.Arena
	names  []string
	ledger *economy.Ledger
	board  *leaderboard.Board

	screen     Screen
	arena      string
	playerName string
	sim        *Simulation

	finalScore int
	rank       int
}

// NewSession builds a session on the menu screen. arenas may be empty, in
// which case the configured arena is the only one.
func NewSession(cfg *config.Config, arenas map[string]*leveldata.Arena, ledger *economy.Ledger, rng RandomSource, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(arenas) == 0 {
		a := ArenaFromConfig(cfg.Arena)
		arenas = map[string]*leveldata.Arena{a.Name: a}
	}
	names := make([]string, 0, len(arenas))
	for name := range arenas {
		names = append(names, name)
	}
	sort.Strings(names)

	arena := cfg.Arena.Name
	if _, ok := arenas[arena]; !ok {
		arena = names[0]
	}

	return &Session{
		cfg:        cfg,
		logger:     logger,
		rng:        rng,
		clock:      time.Now,
		arenas:     arenas,
		names:      names,
		ledger:     ledger,
		board:      leaderboard.New(cfg.Session.LeaderboardSize),
		screen:     ScreenMenu,
		arena:      arena,
		playerName: cfg.Session.PlayerName,
		rank:       -1,
	}
}

// Screen returns the current screen.
func (s *Session) Screen() Screen { return s.screen }

// Ledger returns the session's economy.
func (s *Session) Ledger() *economy.Ledger { return s.ledger }

// Board returns the leaderboard.
func (s *Session) Board() *leaderboard.Board { return s.board }

// Simulation returns the current or last run, nil before the first one.
func (s *Session) Simulation() *Simulation { return s.sim }

// Apply runs one command and returns the events it produced.
func (s *Session) Apply(cmd Command) []messages.Event {
	switch c := cmd.(type) {
	case Navigate:
		return s.navigate(c.Screen)
	case SelectArena:
		return s.startRun(c.Arena)
	case Purchase:
		return s.purchase(c.Kind)
	case Leave:
		s.cancelRun()
		s.screen = ScreenMenu
	case SetPlayerName:
		s.setPlayerName(c.Name)
	default:
		s.logger.Warn("unknown command", zap.Any("command", cmd))
	}
	return nil
}

// Tick advances the active run, if any. Input is discarded on other screens.
func (s *Session) Tick(intent input.Intent) []messages.Event {
	if s.screen != ScreenGame || s.sim == nil || s.sim.Over() {
		return nil
	}
	events := s.sim.Step(intent)
	for _, ev := range events {
		switch e := ev.(type) {
		case messages.DefeatEvent:
			events = append(events, s.recordResult(e.FinalScore))
		case messages.VictoryEvent:
			events = append(events, s.recordResult(e.FinalScore))
		}
	}
	return events
}

// Snapshot builds an immutable view of the session and the current run.
func (s *Session) Snapshot() *Snapshot {
	snap := &Snapshot{
		Screen:      s.screen,
		PlayerName:  s.playerName,
		Arenas:      append([]string(nil), s.names...),
		Arena:       s.arena,
		Economy:     s.cfg.Features.Economy,
		Leaderboard: s.board.Entries(),
		FinalScore:  s.finalScore,
		Rank:        s.rank,
	}
	if a, ok := s.arenas[s.arena]; ok {
		snap.Width, snap.Height, snap.Background = a.Width, a.Height, a.Background
	}
	if s.ledger != nil {
		snap.Currency = s.ledger.Balance()
		for _, spec := range s.ledger.Catalog().All() {
			snap.Shop = append(snap.Shop, ShopItem{
				Kind:       spec.Kind,
				Label:      spec.Label,
				Cost:       spec.Cost,
				Level:      s.ledger.Level(spec.Kind),
				Affordable: s.ledger.Balance() >= spec.Cost,
			})
		}
	}
	if s.sim != nil {
		s.sim.fill(snap)
	}
	return snap
}

func (s *Session) navigate(to Screen) []messages.Event {
	if !to.Valid() || to == s.screen {
		return nil
	}
	switch to {
	case ScreenGame:
		return s.startRun(s.arena)
	case ScreenShop:
		if !s.cfg.Features.Economy {
			return nil
		}
	case ScreenGameOver:
		// only reachable by finishing a run
		return nil
	}
	if s.screen == ScreenGame {
		s.cancelRun()
	}
	s.screen = to
	return nil
}

func (s *Session) startRun(name string) []messages.Event {
	arena, ok := s.arenas[name]
	if !ok {
		s.logger.Warn("unknown arena", zap.String("arena", name))
		return nil
	}
	s.cancelRun()

	stats := s.baseStats()
	var wallet Wallet
	if s.cfg.Features.Economy && s.ledger != nil {
		stats = s.ledger.Stats()
		wallet = s.ledger
	}

	s.arena = name
	s.sim = NewSimulation(s.cfg, arena, stats, s.rng, wallet, s.logger)
	s.screen = ScreenGame
	s.finalScore = 0
	s.rank = -1

	w := s.sim.Wave()
	s.logger.Info("run started",
		zap.String("arena", name),
		zap.String("player", s.playerName),
		zap.Float64("damage", stats.Damage),
		zap.Float64("max_health", stats.MaxHealth),
	)
	return []messages.Event{messages.RunStartedEvent{Arena: name, Wave: w.Number, Count: w.Spawned}}
}

// cancelRun drops the active run and its pending timers so nothing from it
// can touch the next one.
func (s *Session) cancelRun() {
	if s.sim == nil {
		return
	}
	if !s.sim.Over() {
		s.logger.Info("run abandoned", zap.Uint64("tick", s.sim.Match().Tick))
	}
	s.sim.Cancel()
	s.sim = nil
}

func (s *Session) purchase(kind economy.Upgrade) []messages.Event {
	ev := messages.PurchaseEvent{Kind: string(kind)}
	switch {
	case s.ledger == nil || !s.cfg.Features.Economy:
	case s.sim != nil && !s.sim.Over():
		// stats are fixed for the duration of a run
	default:
		ev.Cost, ev.OK = s.ledger.Purchase(kind)
	}
	if s.ledger != nil {
		ev.Balance = s.ledger.Balance()
	}
	s.logger.Info("purchase",
		zap.String("kind", ev.Kind),
		zap.Int("cost", ev.Cost),
		zap.Bool("ok", ev.OK),
		zap.Int("balance", ev.Balance),
	)
	return []messages.Event{ev}
}

func (s *Session) recordResult(score int) messages.Event {
	rank := s.board.Insert(leaderboard.Entry{
		Name:  s.playerName,
		Score: score,
		Date:  s.clock(),
	})
	s.finalScore = score
	s.rank = rank
	s.screen = ScreenGameOver
	return messages.LeaderboardUpdatedEvent{Name: s.playerName, Score: score, Rank: rank}
}

func (s *Session) setPlayerName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.cfg.Session.PlayerName
	}
	if r := []rune(name); len(r) > maxNameLen {
		name = string(r[:maxNameLen])
	}
	s.playerName = name
}

func (s *Session) baseStats() economy.Stats {
	return economy.Stats{
		Damage:       s.cfg.Player.Damage,
		Speed:        s.cfg.Player.Speed,
		MaxHealth:    s.cfg.Player.MaxHealth,
		FireCooldown: s.cfg.Player.FireCooldown,
	}
}
