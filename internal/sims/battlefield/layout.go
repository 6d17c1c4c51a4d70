package battlefield

import (
	"errors"
	"fmt"
	"math"

	"cannonland/internal/core"
	"cannonland/internal/terrain"

	log "github.com/sirupsen/logrus"
)

const (
	referenceWidth  = 800
	referenceHeight = 500
)

type rect struct {
	m              terrain.Material
	x0, y0, x1, y1 int
}

// classicRects is the hand-made proving ground, in 800x500 reference units.
var classicRects = []rect{
	{terrain.Dirt, 40, 40, 80, 80},
	{terrain.Rock, 20, 100, 140, 210},
	{terrain.Snow, 300, 20, 390, 140},
	{terrain.Water, 150, 100, 300, 200},
	{terrain.Rock, 350, 140, 400, 240},
	{terrain.Concrete, 350, 400, 600, 450},
}

// buildTerrain paints the layout and returns the row each bunker column should
// start in.
func (b *Battlefield) buildTerrain(rng *core.RNG) (func(x int) int, error) {
	w, h := b.grid.Width(), b.grid.Height()
	switch b.cfg.Params.Layout {
	case LayoutHills:
		return paintHills(b.grid, rng)
	case LayoutEmpty:
		startRow := func(int) int { return h / 10 }
		if err := b.grid.SetRect(terrain.Concrete, 0, h-1, w, h); err != nil {
			return startRow, fmt.Errorf("empty layout floor: %w", err)
		}
		return startRow, nil
	default:
		var errs []error
		for _, r := range classicRects {
			x0, y0 := scale(r.x0, w, referenceWidth), scale(r.y0, h, referenceHeight)
			x1, y1 := scale(r.x1, w, referenceWidth), scale(r.y1, h, referenceHeight)
			if err := b.grid.SetRect(r.m, x0, y0, x1, y1); err != nil {
				errs = append(errs, fmt.Errorf("classic %s rect: %w", r.m, err))
			}
		}
		return func(int) int { return scale(40, h, referenceHeight) }, errors.Join(errs...)
	}
}

// paintHills lays rolling dirt hills over a rock bed with snow on the peaks
// and a concrete floor.
func paintHills(g *terrain.Grid, rng *core.RNG) (func(x int) int, error) {
	w, h := g.Width(), g.Height()
	type wave struct{ amp, freq, phase float64 }
	waves := make([]wave, 3)
	for i := range waves {
		waves[i] = wave{
			amp:   float64(h) * (0.05 + 0.1*rng.Float64()) / float64(i+1),
			freq:  float64(i+1) * (1 + rng.Float64()),
			phase: rng.Float64() * 2 * math.Pi,
		}
	}

	base := float64(h) * 0.55
	surface := make([]int, w)
	peak := h
	for x := 0; x < w; x++ {
		y := base
		for _, wv := range waves {
			y += wv.amp * math.Sin(wv.freq*2*math.Pi*float64(x)/float64(w)+wv.phase)
		}
		top := min(max(int(y), 1), h-1)
		surface[x] = top
		peak = min(peak, top)
	}

	snowLine := peak + max(2, h/25)
	var errs []error
	paint := func(m terrain.Material, x0, y0, x1, y1 int) {
		if err := g.SetRect(m, x0, y0, x1, y1); err != nil {
			errs = append(errs, fmt.Errorf("hills %s column %d: %w", m, x0, err))
		}
	}
	for x := 0; x < w; x++ {
		top := surface[x]
		rockTop := top + (h-top)/2
		paint(terrain.Dirt, x, top, x+1, rockTop)
		paint(terrain.Rock, x, rockTop, x+1, h)
		if top < snowLine {
			paint(terrain.Snow, x, top, x+1, min(snowLine, rockTop))
		}
	}
	paint(terrain.Concrete, 0, h-1, w, h)

	return func(x int) int { return max(0, surface[min(max(x, 0), w-1)]-1) }, errors.Join(errs...)
}

// placeMarkers drops one marker per team, evenly spaced across the width.
// Teams must number at most maxTeams(width) so no two share a column.
func (b *Battlefield) placeMarkers(teams []terrain.Material, startRow func(x int) int) {
	w := b.grid.Width()
	n := len(teams)
	for i, tag := range teams {
		x := (2*i + 1) * w / (2 * n)
		y := startRow(x)
		if prev := b.grid.MaterialAt(x, y); prev.IsBunker() {
			b.logger.WithFields(log.Fields{"team": tag, "overwritten": prev, "x": x}).Warn("bunker marker overwritten")
		}
		if err := b.grid.Set(x, y, tag); err != nil {
			b.logger.WithError(err).WithField("team", tag).Error("placing bunker marker")
		}
	}
}

// maxTeams returns how many teams fit on a grid of the given width with each
// marker in its own column.
func maxTeams(width int) int {
	return min(len(terrain.BunkerMarkers()), width/2)
}

func scale(v, size, reference int) int {
	return v * size / reference
}
