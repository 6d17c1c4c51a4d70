package terrain

import "math"

// DeleteRadiusLeaveOutBunkers empties every cell closer than radius to (x, y)
// except bunker markers. The centre may lie outside the grid. It returns the
// number of cells that changed.
func (g *Grid) DeleteRadiusLeaveOutBunkers(x, y, radius int) int {
	if radius <= 0 {
		return 0
	}
	w, h := g.Width(), g.Height()
	x0 := max(0, x-radius)
	y0 := max(0, y-radius)
	x1 := min(w, x+radius+1)
	y1 := min(h, y+radius+1)
	if x0 >= x1 || y0 >= y1 {
		return 0
	}

	cells := g.cells.Cells()
	r := float64(radius)
	cleared := 0
	for cy := y0; cy < y1; cy++ {
		dy := float64(cy - y)
		row := cy * w
		for cx := x0; cx < x1; cx++ {
			dx := float64(cx - x)
			if math.Sqrt(dx*dx+dy*dy) >= r {
				continue
			}
			m := Material(cells[row+cx])
			if m == Empty || m.IsBunker() {
				continue
			}
			cells[row+cx] = uint8(Empty)
			cleared++
		}
	}
	return cleared
}
