//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// PalettePainter uploads palette-indexed cells to a texture and draws it
// scaled onto the screen.
type PalettePainter struct {
	img     *ebiten.Image
	buf     []byte
	w, h    int
	palette []color.RGBA
}

// NewPalettePainter allocates a painter for a w by h grid. A nil palette
// renders cell values as grey levels.
func NewPalettePainter(w, h int, palette []color.RGBA) *PalettePainter {
	if len(palette) == 0 {
		palette = grayPalette()
	}
	return &PalettePainter{
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
		w:       w,
		h:       h,
		palette: palette,
	}
}

// Blit draws cells onto screen at the given integer scale.
func (p *PalettePainter) Blit(screen *ebiten.Image, cells []uint8, scale int) {
	if len(cells) != p.w*p.h {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	fillPaletteRGBA(p.buf, cells, p.palette)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(p.img, op)
}
