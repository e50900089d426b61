package main

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/automoto/pixel-shooter/autopilot"
	"github.com/automoto/pixel-shooter/core"
	"github.com/automoto/pixel-shooter/shared/messages"
)

// runner plays runs through a GameLoop. step advances the loop by one tick,
// either by calling Tick directly or by waiting for Run to do it.
type runner struct {
	loop     *core.GameLoop
	pilot    *autopilot.Pilot
	logger   *zap.Logger
	maxTicks int
	step     func()
}

// result summarises one run.
type result struct {
	arena   string
	outcome string
	score   int
	waves   int
	ticks   int
	rank    int
}

func (r *runner) play(ctx context.Context, arena string) result {
	r.pilot.Reset()
	r.loop.Submit(core.SelectArena{Arena: arena})
	r.step()
	r.drain()

	res := result{arena: arena, rank: -1}
	for res.ticks < r.maxTicks && ctx.Err() == nil {
		snap := r.loop.Snapshot()
		if snap.Screen != core.ScreenGame {
			break
		}
		r.pilot.Steer(snap, r.loop.Input())
		r.step()
		res.ticks++
		r.collect(&res, r.drain())
	}

	if res.outcome == "" {
		res.outcome = "abandoned"
		res.score = r.loop.Snapshot().Score
		r.loop.Input().Reset()
		r.loop.Submit(core.Leave{})
		r.step()
		r.drain()
	}
	res.waves = r.loop.Snapshot().Wave

	r.logger.Info("run finished",
		zap.String("arena", res.arena),
		zap.String("outcome", res.outcome),
		zap.Int("score", res.score),
		zap.Int("wave", res.waves),
		zap.Int("ticks", res.ticks),
		zap.Int("rank", res.rank),
	)
	return res
}

func (r *runner) collect(res *result, events []messages.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case messages.DefeatEvent:
			res.outcome, res.score = "defeat", e.FinalScore
		case messages.VictoryEvent:
			res.outcome, res.score = "victory", e.FinalScore
		case messages.WaveClearedEvent:
			r.logger.Debug("wave cleared",
				zap.Int("wave", e.Wave),
				zap.Int("bonus", e.Bonus),
				zap.Int("next_count", e.NextCount),
			)
		case messages.LeaderboardUpdatedEvent:
			res.rank = e.Rank
		}
	}
}

// drain empties the event channel without blocking.
func (r *runner) drain() []messages.Event {
	var out []messages.Event
	for {
		select {
		case ev := <-r.loop.Events():
			out = append(out, ev)
		default:
			return out
		}
	}
}

// shop spends the balance between runs, cheapest affordable upgrade first.
func (r *runner) shop() {
	r.loop.Submit(core.Navigate{Screen: core.ScreenShop})
	r.step()
	r.drain()

	for {
		snap := r.loop.Snapshot()
		items := append([]core.ShopItem(nil), snap.Shop...)
		sort.SliceStable(items, func(i, j int) bool { return items[i].Cost < items[j].Cost })

		bought := false
		for _, item := range items {
			if !item.Affordable {
				continue
			}
			r.loop.Submit(core.Purchase{Kind: item.Kind})
			r.step()
			for _, ev := range r.drain() {
				if p, ok := ev.(messages.PurchaseEvent); ok && p.OK {
					bought = true
					r.logger.Info("bought upgrade", zap.String("kind", p.Kind), zap.Int("balance", p.Balance))
				}
			}
			if bought {
				break
			}
		}
		if !bought {
			break
		}
	}

	r.loop.Submit(core.Navigate{Screen: core.ScreenMenu})
	r.step()
	r.drain()
}
