package terrain

// Locator resolves a bunker marker found in the grid to its owning entity.
// Locate records (x, y) as the owner's position and reports whether an owner
// exists for tag.
type Locator interface {
	Locate(tag Material, x, y int) bool
}

// UpdateBunkers reports every bunker marker cell to loc. Markers without an
// owner are erased. It returns the number of erased cells.
func (g *Grid) UpdateBunkers(loc Locator) int {
	w := g.Width()
	cells := g.cells.Cells()
	healed := 0
	for i, v := range cells {
		m := Material(v)
		if !m.IsBunker() {
			continue
		}
		if loc != nil && loc.Locate(m, i%w, i/w) {
			continue
		}
		cells[i] = uint8(Empty)
		healed++
	}
	return healed
}
