package battlefield

import (
	"image/color"

	"cannonland/internal/core"
	"cannonland/internal/terrain"
)

var battlefieldPalette = buildPalette()

// Palette exposes the color table indexed by material value.
func (b *Battlefield) Palette() []color.RGBA {
	return battlefieldPalette
}

// MaterialColor returns the display color of m.
func MaterialColor(m terrain.Material) color.RGBA {
	switch m {
	case terrain.Dirt:
		return color.RGBA{R: 112, G: 84, B: 52, A: 255}
	case terrain.Rock:
		return color.RGBA{R: 110, G: 110, B: 116, A: 255}
	case terrain.Snow:
		return color.RGBA{R: 240, G: 244, B: 250, A: 255}
	case terrain.Water:
		return color.RGBA{R: 40, G: 90, B: 190, A: 255}
	case terrain.Concrete:
		return color.RGBA{R: 170, G: 166, B: 150, A: 255}
	case terrain.BunkerBlue:
		return color.RGBA{R: 30, G: 60, B: 255, A: 255}
	case terrain.BunkerRed:
		return color.RGBA{R: 220, G: 30, B: 30, A: 255}
	case terrain.BunkerGreen:
		return color.RGBA{R: 30, G: 190, B: 40, A: 255}
	case terrain.BunkerYellow:
		return color.RGBA{R: 240, G: 220, B: 20, A: 255}
	case terrain.BunkerTeal:
		return color.RGBA{R: 20, G: 180, B: 180, A: 255}
	case terrain.BunkerPurple:
		return color.RGBA{R: 150, G: 40, B: 200, A: 255}
	case terrain.BunkerGrey:
		return color.RGBA{R: 80, G: 80, B: 80, A: 255}
	case terrain.BunkerOrange:
		return color.RGBA{R: 250, G: 140, B: 20, A: 255}
	default:
		// Empty, Moving and anything unknown show the sky.
		return color.RGBA{R: 96, G: 128, B: 200, A: 255}
	}
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, terrain.MaterialCount)
	for i := range palette {
		palette[i] = MaterialColor(terrain.Material(i))
	}
	return palette
}

// Turrets describes every placed bunker for the overlay.
func (b *Battlefield) Turrets() []core.Turret {
	out := make([]core.Turret, 0, b.roster.Len())
	for _, bk := range b.roster.All() {
		if !bk.Placed() {
			continue
		}
		x1, y1, x2, y2 := bk.CannonSegment()
		out = append(out, core.Turret{
			X:         x1,
			Y:         y1,
			MuzzleX:   x2,
			MuzzleY:   y2,
			Radius:    bk.Radius(),
			Color:     MaterialColor(bk.Tag()),
			Alive:     bk.IsAlive(),
			Health:    bk.Health(),
			MaxHealth: bk.MaxHealth(),
			Charge:    bk.Charge(),
			MaxCharge: bk.MaxCharge(),
			Label:     bk.Tag().String() + " " + bk.CurrentWeapon().String(),
		})
	}
	return out
}

// LastBlast reports the footprint of the most recent detonation.
func (b *Battlefield) LastBlast() (core.Blast, bool) {
	d, ok := b.LastDetonation()
	if !ok {
		return core.Blast{}, false
	}
	return core.Blast{X: d.X, Y: d.Y, Radius: d.Radius, Tick: d.Tick}, true
}
