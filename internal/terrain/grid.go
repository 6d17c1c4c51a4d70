// Package terrain holds the destructible material grid and its settling physics.
package terrain

import (
	"fmt"

	"cannonland/internal/core"
)

// MaxCells caps width*height for a single grid.
const MaxCells = 1 << 26

// DefaultLoose lists the materials that fall and settle on a fresh grid.
func DefaultLoose() []Material {
	return []Material{Dirt, Snow, Water}
}

// Grid is a fixed-size, row-major store of materials. The zero value is not
// usable; construct grids with New.
type Grid struct {
	cells *core.ByteGrid
	// touched marks cells written during the running Stride.
	touched *core.ByteGrid
	loose   [materialCount]bool
}

// New allocates a width x height grid with every cell Empty.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 || width > MaxCells/height {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	g := &Grid{
		cells:   core.NewByteGrid(width, height),
		touched: core.NewByteGrid(width, height),
	}
	for _, m := range DefaultLoose() {
		g.loose[m] = true
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.cells.W }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.cells.H }

// IsInside reports whether (x, y) addresses a cell.
func (g *Grid) IsInside(x, y int) bool { return g.cells.In(x, y) }

// At returns the material at (x, y).
func (g *Grid) At(x, y int) (Material, error) {
	if !g.cells.In(x, y) {
		return Empty, fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, x, y, g.Width(), g.Height())
	}
	if g.touched.Get(x, y) != 0 {
		return Moving, nil
	}
	return Material(g.cells.Get(x, y)), nil
}

// MaterialAt is At for renderers: coordinates outside the grid read as Empty.
func (g *Grid) MaterialAt(x, y int) Material {
	m, err := g.At(x, y)
	if err != nil {
		return Empty
	}
	return m
}

// Set writes a single cell.
func (g *Grid) Set(x, y int, m Material) error {
	if err := checkPaintable(m); err != nil {
		return err
	}
	if !g.cells.In(x, y) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, x, y, g.Width(), g.Height())
	}
	g.cells.Set(x, y, uint8(m))
	return nil
}

// SetRect paints the half-open rectangle [x0,x1) x [y0,y1) with m.
// Rectangles reaching past the grid edge are rejected, not clipped.
func (g *Grid) SetRect(m Material, x0, y0, x1, y1 int) error {
	if err := checkPaintable(m); err != nil {
		return err
	}
	w, h := g.Width(), g.Height()
	if x0 < 0 || y0 < 0 || x1 > w || y1 > h || x0 > x1 || y0 > y1 {
		return fmt.Errorf("%w: rect [%d,%d)x[%d,%d) on %dx%d grid", ErrOutOfBounds, x0, x1, y0, y1, w, h)
	}
	cells := g.cells.Cells()
	for y := y0; y < y1; y++ {
		row := y * w
		for x := x0; x < x1; x++ {
			cells[row+x] = uint8(m)
		}
	}
	return nil
}

// CollidesAt reports whether (x, y) is inside the grid and not Empty.
func (g *Grid) CollidesAt(x, y int) bool {
	return g.cells.In(x, y) && Material(g.cells.Get(x, y)) != Empty
}

// Bytes exposes the raw row-major material values. Callers must treat the
// slice as read-only.
func (g *Grid) Bytes() []uint8 { return g.cells.Cells() }

// Snapshot returns a copy of every cell in row-major order.
func (g *Grid) Snapshot() []Material {
	raw := g.cells.Cells()
	out := make([]Material, len(raw))
	for i, v := range raw {
		out[i] = Material(v)
	}
	return out
}

// Load replaces the grid contents with a row-major material slice.
func (g *Grid) Load(cells []Material) error {
	raw := g.cells.Cells()
	if len(cells) != len(raw) {
		return fmt.Errorf("%w: got %d cells for %dx%d grid", ErrOutOfBounds, len(cells), g.Width(), g.Height())
	}
	for i, m := range cells {
		if err := checkPaintable(m); err != nil {
			return fmt.Errorf("cell %d: %w", i, err)
		}
	}
	for i, m := range cells {
		raw[i] = uint8(m)
	}
	g.touched.Clear()
	return nil
}

// Count returns the number of cells holding m.
func (g *Grid) Count(m Material) int {
	n := 0
	for _, v := range g.cells.Cells() {
		if Material(v) == m {
			n++
		}
	}
	return n
}

// CountNonEmpty returns the number of cells that are not Empty.
func (g *Grid) CountNonEmpty() int {
	return len(g.cells.Cells()) - g.Count(Empty)
}

// SetLoose marks m as falling (or fixed) for subsequent strides.
func (g *Grid) SetLoose(m Material, loose bool) {
	if !m.Valid() || m == Empty || m == Moving {
		return
	}
	g.loose[m] = loose
}

// IsLoose reports whether m falls under gravity on this grid.
func (g *Grid) IsLoose(m Material) bool {
	return m.Valid() && g.loose[m]
}

func checkPaintable(m Material) error {
	if !m.Valid() || m == Moving {
		return fmt.Errorf("%w: %s", ErrInvalidMaterial, m)
	}
	return nil
}
