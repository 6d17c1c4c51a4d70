package battlefield

import (
	"errors"
	"math"

	"cannonland/internal/terrain"

	log "github.com/sirupsen/logrus"
)

// ErrNoCharge is returned by Fire when the bunker has not charged.
var ErrNoCharge = errors.New("battlefield: nothing charged")

// Reach is the distance in cells a shot travels per unit of charge.
const Reach = 4

// Fire releases the charge of the bunker carrying tag and detonates its
// current weapon along the cannon line, Reach cells per unit of charge past
// the muzzle.
func (b *Battlefield) Fire(tag terrain.Material) (Detonation, error) {
	charge, err := b.Apply(Command{Tag: tag, Action: ActionReleaseCharge})
	if err != nil {
		return Detonation{}, err
	}
	if charge <= 0 {
		return Detonation{}, ErrNoCharge
	}

	shooter, err := b.roster.ByTag(tag)
	if err != nil {
		return Detonation{}, err
	}
	mx, my := shooter.ShootPos()
	sin, cos := math.Sincos(shooter.Angle())
	dist := float64(charge * Reach)
	x := mx + int(dist*cos)
	y := my + int(dist*sin)

	weapon := shooter.CurrentWeapon()
	radius, damage := weapon.Blast()
	d := b.Detonate(x, y, radius, damage)
	b.logger.WithFields(log.Fields{
		"tick":    b.tick,
		"bunker":  tag,
		"weapon":  weapon,
		"charge":  charge,
		"cleared": d.Cleared,
		"hit":     len(d.Hit),
	}).Info("shot fired")
	return d, nil
}
