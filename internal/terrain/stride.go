package terrain

// Stride advances the terrain by one tick: vertical fall, diagonal settling to
// the right then to the left, then release of every cell touched this tick.
// Each pass finishes before the next one starts.
func (g *Grid) Stride() {
	g.fallDown()
	g.fallSide(1)
	g.fallSide(-1)
	g.touched.Clear()
}

// fallDown scans bottom-up so a grain moves at most one row per tick.
func (g *Grid) fallDown() {
	w, h := g.Width(), g.Height()
	cells := g.cells.Cells()
	touched := g.touched.Cells()
	for y := h - 2; y >= 0; y-- {
		row := y * w
		for x := 0; x < w; x++ {
			i := row + x
			below := i + w
			if !g.canFall(i) || !g.vacant(below) {
				continue
			}
			cells[below] = cells[i]
			cells[i] = uint8(Empty)
			touched[i] = 1
		}
	}
}

// fallSide slides loose cells one column towards sign when the three cells of
// the neighbouring column, from the cell's row down, are free.
func (g *Grid) fallSide(sign int) {
	w, h := g.Width(), g.Height()
	if h < 3 || w < 2 {
		return
	}
	xStart, xEnd := 0, w-1
	if sign < 0 {
		xStart, xEnd = 1, w
	}

	cells := g.cells.Cells()
	touched := g.touched.Cells()
	for y := 0; y < h-2; y++ {
		row := y * w
		for x := xStart; x < xEnd; x++ {
			i := row + x
			if !g.canFall(i) || touched[i+w] != 0 {
				continue
			}
			if y > 0 && touched[i-w] != 0 {
				continue
			}
			t := i + sign
			if !g.vacant(t) || !g.vacant(t+w) || !g.vacant(t+2*w) {
				continue
			}
			cells[t] = cells[i]
			cells[i] = uint8(Empty)
			touched[i] = 1
			touched[t+w] = 1
			touched[t+2*w] = 1
		}
	}
}

func (g *Grid) canFall(i int) bool {
	v := g.cells.Cells()[i]
	return g.touched.Cells()[i] == 0 && int(v) < len(g.loose) && g.loose[v]
}

func (g *Grid) vacant(i int) bool {
	return g.cells.Cells()[i] == uint8(Empty) && g.touched.Cells()[i] == 0
}
