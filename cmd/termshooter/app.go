package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/automoto/pixel-shooter/autopilot"
	"github.com/automoto/pixel-shooter/core"
	"github.com/automoto/pixel-shooter/shared/gamemath"
	"github.com/automoto/pixel-shooter/shared/messages"
)

// Terminals only report key presses, so a direction is held for this long
// after the last repeat.
const moveHold = 180 * time.Millisecond

// app couples a terminal to a GameLoop.
type app struct {
	loop   *core.GameLoop
	view   *view
	pilot  *autopilot.Pilot
	logger *zap.Logger

	moving   bool
	lastMove time.Time
}

// handleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (a *app) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		snap := a.loop.Snapshot()
		act := keyAction(snap.Screen, snap, ev)
		if act.quit {
			return false
		}
		holder := a.loop.Input()
		if act.moving {
			holder.SetMove(act.move)
			a.moving, a.lastMove = true, now
		}
		if act.fire {
			if target, ok := snap.NearestEnemy(); ok {
				holder.Fire(target)
			}
		}
		if act.command != nil {
			if _, leaving := act.command.(core.Leave); leaving {
				holder.Reset()
				a.moving = false
			}
			a.loop.Submit(act.command)
		}
	case *tcell.EventResize:
		a.view.screen.Sync()
	}
	return true
}

// frame releases stale movement, runs the autopilot if enabled, consumes
// events and redraws.
func (a *app) frame(now time.Time) {
	snap := a.loop.Snapshot()

	if a.pilot != nil && snap.Screen == core.ScreenGame {
		a.pilot.Steer(snap, a.loop.Input())
	} else if a.moving && now.Sub(a.lastMove) > moveHold {
		a.loop.Input().SetMove(gamemath.Zero)
		a.moving = false
	}

drain:
	for {
		select {
		case ev := <-a.loop.Events():
			a.onEvent(ev)
		default:
			break drain
		}
	}

	a.view.draw(snap)
}

func (a *app) onEvent(ev messages.Event) {
	a.logger.Debug("event", zap.String("name", ev.EventName()), zap.Any("event", ev))
	switch e := ev.(type) {
	case messages.PurchaseEvent:
		if e.OK {
			a.view.status = fmt.Sprintf("bought %s for $%d, $%d left", e.Kind, e.Cost, e.Balance)
		} else {
			a.view.status = fmt.Sprintf("cannot buy %s", e.Kind)
		}
	case messages.WaveClearedEvent:
		a.view.status = fmt.Sprintf("wave %d cleared, +%d", e.Wave, e.Bonus)
	case messages.RunStartedEvent:
		a.view.status = fmt.Sprintf("%s: wave %d, %d enemies", e.Arena, e.Wave, e.Count)
		if a.pilot != nil {
			a.pilot.Reset()
		}
	case messages.LeaderboardUpdatedEvent:
		if e.Rank >= 0 {
			a.view.status = fmt.Sprintf("%s placed #%d with %d", e.Name, e.Rank+1, e.Score)
		} else {
			a.view.status = ""
		}
	}
}
