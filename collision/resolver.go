// Package collision finds projectile hits for one tick.
//
// A resolv Space does the broadphase: every actor is inserted under its
// faction tag and each projectile only queries the opposing faction, so a
// projectile can never hit its own side. The narrow phase is a circle test.
package collision

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/automoto/pixel-shooter/components"
	"github.com/automoto/pixel-shooter/shared/gamemath"
	"github.com/automoto/pixel-shooter/tags"
)

const cellSize = 16

// Body is a circle taking part in collision. For projectiles Faction is the
// owner's side.
type Body struct {
	ID       int
	Faction  components.Faction
	Position gamemath.Vec2
	Radius   float64
}

// Hit pairs a projectile with the actor it struck.
type Hit struct {
	ProjectileID  int
	TargetID      int
	TargetFaction components.Faction
}

// Resolver is reused across ticks. It is not safe for concurrent use.
type Resolver struct {
	width, height int
	space         *resolv.Space
}

// NewResolver sizes the broadphase grid to the arena.
func NewResolver(width, height float64) *Resolver {
	w := int(math.Ceil(width))
	h := int(math.Ceil(height))
	return &Resolver{
		width:  w,
		height: h,
		space:  resolv.NewSpace(w, h, cellSize, cellSize),
	}
}

// Resolve returns at most one hit per projectile, in projectile order.
// The nearest overlapping target wins; equal distances go to the lower ID.
func (r *Resolver) Resolve(projectiles, actors []Body) []Hit {
	if len(projectiles) == 0 || len(actors) == 0 {
		return nil
	}

	objs := make([]*resolv.Object, 0, len(actors)+len(projectiles))
	for i := range actors {
		a := &actors[i]
		obj := bodyObject(a, factionTag(a.Faction))
		r.space.Add(obj)
		objs = append(objs, obj)
	}

	var hits []Hit
	for i := range projectiles {
		p := &projectiles[i]
		obj := bodyObject(p, tags.ResolvProjectile)
		r.space.Add(obj)
		objs = append(objs, obj)

		target := factionTag(p.Faction.Opponent())
		check := obj.Check(0, 0, target)
		if check == nil {
			continue
		}
		if best, ok := nearest(p, check.ObjectsByTags(target)); ok {
			hits = append(hits, Hit{
				ProjectileID:  p.ID,
				TargetID:      best.ID,
				TargetFaction: best.Faction,
			})
		}
	}

	r.space.Remove(objs...)
	return hits
}

func nearest(p *Body, candidates []*resolv.Object) (*Body, bool) {
	bodies := make([]*Body, 0, len(candidates))
	for _, c := range candidates {
		b, ok := c.Data.(*Body)
		if !ok || !Overlaps(*p, *b) {
			continue
		}
		bodies = append(bodies, b)
	}
	if len(bodies) == 0 {
		return nil, false
	}
	sort.Slice(bodies, func(i, j int) bool {
		di := gamemath.Distance(p.Position, bodies[i].Position)
		dj := gamemath.Distance(p.Position, bodies[j].Position)
		if di != dj {
			return di < dj
		}
		return bodies[i].ID < bodies[j].ID
	})
	return bodies[0], true
}

// Overlaps is the narrow phase: centre distance strictly below the radius sum.
func Overlaps(a, b Body) bool {
	return gamemath.Distance(a.Position, b.Position) < a.Radius+b.Radius
}

func bodyObject(b *Body, tag string) *resolv.Object {
	size := b.Radius * 2
	obj := resolv.NewObject(b.Position.X-b.Radius, b.Position.Y-b.Radius, size, size, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = b
	return obj
}

func factionTag(f components.Faction) string {
	if f == components.FactionEnemy {
		return tags.ResolvEnemy
	}
	return tags.ResolvPlayer
}
