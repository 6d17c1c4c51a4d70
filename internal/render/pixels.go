package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values past
// the end of the palette use its last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := min(int(c), last)
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// grayPalette is used for sims that expose raw cell values without a palette.
func grayPalette() []color.RGBA {
	p := make([]color.RGBA, 256)
	for i := range p {
		v := uint8(i)
		if i > 0 && i < 64 {
			v = uint8(64 + i*3)
		}
		p[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	return p
}
