//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"cannonland/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws bunkers, their cannons and the last blast on top of the grid.
type Overlay struct {
	sim   core.Sim
	scale int

	showTurrets bool
	showBlast   bool
	showHealth  bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showTurrets: true, showBlast: true, showHealth: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles layers from the number keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showTurrets = !o.showTurrets
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showBlast = !o.showBlast
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showHealth = !o.showHealth
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	scale := float64(max(o.scale, 1))

	if o.showBlast {
		if provider, ok := o.sim.(core.BlastProvider); ok {
			if blast, ok := provider.LastBlast(); ok {
				o.drawRing(screen, (float64(blast.X)+0.5)*scale, (float64(blast.Y)+0.5)*scale,
					float64(blast.Radius)*scale, scale, color.RGBA{R: 255, G: 160, B: 40, A: 200})
			}
		}
	}

	provider, ok := o.sim.(core.TurretProvider)
	if !ok {
		return
	}
	for _, t := range provider.Turrets() {
		cx := (float64(t.X) + 0.5) * scale
		cy := (float64(t.Y) + 0.5) * scale
		col := t.Color
		if !t.Alive {
			col = lerpRGBA(col, color.RGBA{R: 40, G: 40, B: 40, A: 255}, 0.7)
		}
		if o.showTurrets {
			mx := (float64(t.MuzzleX) + 0.5) * scale
			my := (float64(t.MuzzleY) + 0.5) * scale
			o.drawLine(screen, cx, cy, mx, my, math.Max(scale, 1.5), col)
			o.drawRing(screen, cx, cy, float64(t.Radius)*scale*0.5, scale, col)
		}
		if o.showHealth && t.Alive {
			o.drawBars(screen, t, cx, cy-float64(t.Radius)*scale, scale)
		}
	}
}

// drawBars paints a health bar with the charge bar underneath, centred on x.
func (o *Overlay) drawBars(screen *ebiten.Image, t core.Turret, x, y, scale float64) {
	width := float64(t.Radius) * scale * 2
	height := math.Max(scale, 2)
	left := x - width/2

	health := ratio(t.Health, t.MaxHealth)
	o.drawLine(screen, left, y, left+width, y, height, color.RGBA{R: 30, G: 30, B: 30, A: 200})
	if health > 0 {
		o.drawLine(screen, left, y, left+width*health, y, height, healthColor(health))
	}
	if charge := ratio(t.Charge, t.MaxCharge); charge > 0 {
		cy := y + height + 1
		o.drawLine(screen, left, cy, left+width*charge, cy, height, color.RGBA{R: 250, G: 250, B: 120, A: 220})
	}
}

func (o *Overlay) drawRing(screen *ebiten.Image, cx, cy, radius, thickness float64, col color.RGBA) {
	if radius <= 0 {
		return
	}
	segments := max(12, int(radius/2))
	step := 2 * math.Pi / float64(segments)
	px, py := cx+radius, cy
	for i := 1; i <= segments; i++ {
		sin, cos := math.Sincos(float64(i) * step)
		x, y := cx+radius*cos, cy+radius*sin
		o.drawLine(screen, px, py, x, y, thickness, col)
		px, py = x, y
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
