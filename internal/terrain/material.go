package terrain

import "fmt"

// Material tags the contents of a single grid cell.
type Material uint8

const (
	Empty Material = iota
	Dirt
	Rock
	Snow
	Water
	Concrete
	// Moving marks a cell touched during the current Stride. It never
	// survives past the end of the tick.
	Moving

	BunkerBlue
	BunkerRed
	BunkerGreen
	BunkerYellow
	BunkerTeal
	BunkerPurple
	BunkerGrey
	BunkerOrange

	materialCount
)

// MaterialCount is the number of distinct material tags.
const MaterialCount = int(materialCount)

var materialNames = [materialCount]string{
	Empty:        "empty",
	Dirt:         "dirt",
	Rock:         "rock",
	Snow:         "snow",
	Water:        "water",
	Concrete:     "concrete",
	Moving:       "moving",
	BunkerBlue:   "bunker-blue",
	BunkerRed:    "bunker-red",
	BunkerGreen:  "bunker-green",
	BunkerYellow: "bunker-yellow",
	BunkerTeal:   "bunker-teal",
	BunkerPurple: "bunker-purple",
	BunkerGrey:   "bunker-grey",
	BunkerOrange: "bunker-orange",
}

// String returns the lower-case material name.
func (m Material) String() string {
	if m.Valid() {
		return materialNames[m]
	}
	return fmt.Sprintf("material(%d)", uint8(m))
}

// Valid reports whether m is one of the declared tags.
func (m Material) Valid() bool { return m < materialCount }

// IsEmpty reports whether the cell holds nothing.
func (m Material) IsEmpty() bool { return m == Empty }

// IsBunker reports whether m is a per-owner bunker marker.
func (m Material) IsBunker() bool { return m >= BunkerBlue && m <= BunkerOrange }

// BunkerMarkers returns every bunker marker in team order.
func BunkerMarkers() []Material {
	out := make([]Material, 0, int(BunkerOrange-BunkerBlue)+1)
	for m := BunkerBlue; m <= BunkerOrange; m++ {
		out = append(out, m)
	}
	return out
}

// ParseMaterial resolves a material by its String name.
func ParseMaterial(name string) (Material, error) {
	for i, n := range materialNames {
		if n == name {
			return Material(i), nil
		}
	}
	return Empty, fmt.Errorf("unknown material %q", name)
}
