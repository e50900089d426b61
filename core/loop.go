package core

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/automoto/pixel-shooter/config"
	"github.com/automoto/pixel-shooter/input"
	"github.com/automoto/pixel-shooter/shared/messages"
)

// GameLoop drives a Session at a fixed tick. The goroutine running Run is the
// only writer of session state; frontends talk to it through the input
// holder, Submit, Events and Snapshot.
type GameLoop struct {
	session *Session
	input   *input.Holder
	period  time.Duration
	logger  *zap.Logger

	commands chan Command
	events   chan messages.Event
	snapshot atomic.Pointer[Snapshot]
	dropped  atomic.Uint64

	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(session *Session, holder *input.Holder, cfg config.LoopConfig, logger *zap.Logger) *GameLoop {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &GameLoop{
		session:  session,
		input:    holder,
		period:   cfg.TickPeriod,
		logger:   logger,
		commands: make(chan Command, cfg.CommandBuffer),
		events:   make(chan messages.Event, cfg.EventBuffer),
		stopChan: make(chan struct{}),
	}
	g.snapshot.Store(session.Snapshot())
	return g
}

// Run ticks until ctx is cancelled or Stop is called.
func (g *GameLoop) Run(ctx context.Context) {
	g.running.Store(true)
	defer g.running.Store(false)

	ticker := time.NewTicker(g.period)
	defer ticker.Stop()

	g.logger.Info("game loop started", zap.Duration("tick", g.period))

	for {
		select {
		case <-ctx.Done():
			g.logger.Info("game loop stopped", zap.Error(ctx.Err()))
			return
		case <-g.stopChan:
			g.logger.Info("game loop stopped")
			return
		case <-ticker.C:
			g.Tick()
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// Running reports whether Run is active.
func (g *GameLoop) Running() bool { return g.running.Load() }

// Tick runs one step: pending commands, then the session, then publication.
// Run calls it on every ticker beat; callers driving the loop by hand must
// not call it while Run is active.
func (g *GameLoop) Tick() {
drain:
	for {
		select {
		case cmd := <-g.commands:
			g.publish(g.session.Apply(cmd))
		default:
			break drain
		}
	}

	g.publish(g.session.Tick(g.input.Drain()))
	g.snapshot.Store(g.session.Snapshot())
}

// Submit queues a command for the next tick. It never blocks and reports
// false when the queue is full.
func (g *GameLoop) Submit(cmd Command) bool {
	select {
	case g.commands <- cmd:
		return true
	default:
		g.logger.Warn("command dropped, queue full", zap.Any("command", cmd))
		return false
	}
}

// Events delivers outcome events. Events are dropped when the reader lags
// behind by more than the configured buffer.
func (g *GameLoop) Events() <-chan messages.Event {
	return g.events
}

// Dropped returns how many events were discarded because nobody read them.
func (g *GameLoop) Dropped() uint64 { return g.dropped.Load() }

// Snapshot returns the state published by the last tick.
func (g *GameLoop) Snapshot() *Snapshot {
	return g.snapshot.Load()
}

// Input returns the holder frontends write intents to.
func (g *GameLoop) Input() *input.Holder { return g.input }

func (g *GameLoop) publish(events []messages.Event) {
	for _, ev := range events {
		select {
		case g.events <- ev:
		default:
			n := g.dropped.Add(1)
			g.logger.Warn("event dropped, consumer lagging",
				zap.String("event", ev.EventName()),
				zap.Uint64("dropped", n),
			)
		}
	}
}
