package battlefield

import (
	"cannonland/internal/terrain"

	log "github.com/sirupsen/logrus"
)

// Detonation records the effect of one blast.
type Detonation struct {
	Tick    int
	X, Y    int
	Radius  int
	Damage  int
	Cleared int
	Hit     []terrain.Material
}

// Detonate carves the terrain and damages every bunker in reach, using the
// same centre and radius for both.
func (b *Battlefield) Detonate(x, y, radius, damage int) Detonation {
	d := Detonation{Tick: b.tick, X: x, Y: y, Radius: radius, Damage: damage}
	d.Cleared = b.grid.DeleteRadiusLeaveOutBunkers(x, y, radius)
	wasAlive := make([]bool, b.roster.Len())
	for id, bk := range b.roster.All() {
		wasAlive[id] = bk.IsAlive()
	}
	for _, id := range b.roster.HarmInRadius(x, y, radius, damage) {
		victim, _ := b.roster.Get(id)
		d.Hit = append(d.Hit, victim.Tag())
		if wasAlive[id] && !victim.IsAlive() {
			b.logger.WithFields(log.Fields{"tick": b.tick, "bunker": victim.Tag()}).Info("bunker destroyed")
		}
	}
	b.last = &d
	return d
}

// LastDetonation returns the most recent blast since Reset.
func (b *Battlefield) LastDetonation() (Detonation, bool) {
	if b.last == nil {
		return Detonation{}, false
	}
	return *b.last, true
}

// bombard stands in for the shot resolution of a real match: a random living
// bunker is targeted and the blast lands near it.
func (b *Battlefield) bombard() {
	p := b.cfg.Params
	var targets []int
	for id, bk := range b.roster.All() {
		if bk.IsAlive() && bk.Placed() {
			targets = append(targets, id)
		}
	}

	var x, y int
	if len(targets) == 0 {
		x = b.rng.IntN(b.grid.Width())
		y = b.rng.IntN(b.grid.Height())
	} else {
		target, _ := b.roster.Get(targets[b.rng.IntN(len(targets))])
		tx, ty := target.Position()
		spread := 2*p.BombardRadius + 1
		x = tx + b.rng.IntN(spread) - p.BombardRadius
		y = ty + b.rng.IntN(spread) - p.BombardRadius
	}

	d := b.Detonate(x, y, p.BombardRadius, p.BombardDamage)
	b.logger.WithFields(log.Fields{
		"tick":    b.tick,
		"x":       d.X,
		"y":       d.Y,
		"cleared": d.Cleared,
		"hit":     len(d.Hit),
	}).Debug("bombardment")
}
