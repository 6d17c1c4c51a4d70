package bunker

import (
	"fmt"

	"cannonland/internal/terrain"
)

// Roster owns the bunkers of a match. Bunkers are addressed by a stable id
// (their insertion index) and looked up by marker tag in constant time.
type Roster struct {
	bunkers []*Bunker
	byTag   [terrain.MaterialCount]int
}

// NewRoster returns an empty roster.
func NewRoster() *Roster {
	r := &Roster{}
	for i := range r.byTag {
		r.byTag[i] = -1
	}
	return r
}

// Add registers b and returns its id.
func (r *Roster) Add(b *Bunker) (int, error) {
	tag := b.Tag()
	if !tag.IsBunker() {
		return -1, fmt.Errorf("%w: %s", ErrNotBunkerMarker, tag)
	}
	if r.byTag[tag] >= 0 {
		return -1, fmt.Errorf("%w: %s", ErrDuplicateTag, tag)
	}
	id := len(r.bunkers)
	r.bunkers = append(r.bunkers, b)
	r.byTag[tag] = id
	return id, nil
}

// Len returns the number of bunkers, dead ones included.
func (r *Roster) Len() int { return len(r.bunkers) }

// Get returns the bunker with the given id.
func (r *Roster) Get(id int) (*Bunker, bool) {
	if id < 0 || id >= len(r.bunkers) {
		return nil, false
	}
	return r.bunkers[id], true
}

// ByTag returns the bunker owning tag.
func (r *Roster) ByTag(tag terrain.Material) (*Bunker, error) {
	if !tag.Valid() || r.byTag[tag] < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTag, tag)
	}
	return r.bunkers[r.byTag[tag]], nil
}

// All returns the bunkers in id order. The slice must not be modified.
func (r *Roster) All() []*Bunker { return r.bunkers }

// Alive returns the number of bunkers with health left.
func (r *Roster) Alive() int {
	n := 0
	for _, b := range r.bunkers {
		if b.IsAlive() {
			n++
		}
	}
	return n
}

// Locate moves the owner of tag to (x, y). It implements terrain.Locator.
func (r *Roster) Locate(tag terrain.Material, x, y int) bool {
	if !tag.Valid() {
		return false
	}
	id := r.byTag[tag]
	if id < 0 {
		return false
	}
	r.bunkers[id].SetPosition(x, y)
	return true
}

// HarmInRadius damages every bunker the blast reaches and returns their ids.
func (r *Roster) HarmInRadius(x, y, radius, amount int) []int {
	var hit []int
	for id, b := range r.bunkers {
		if b.HarmIfInRadius(x, y, radius, amount) {
			hit = append(hit, id)
		}
	}
	return hit
}

// States captures every bunker in id order.
func (r *Roster) States() []State {
	out := make([]State, len(r.bunkers))
	for i, b := range r.bunkers {
		out[i] = b.State()
	}
	return out
}

var _ terrain.Locator = (*Roster)(nil)
