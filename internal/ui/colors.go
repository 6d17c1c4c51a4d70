package ui

import "image/color"

func ratio(v, maxV int) float64 {
	if maxV <= 0 {
		return 0
	}
	return clamp01(float64(v) / float64(maxV))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// healthColor fades from red at zero to green at full health.
func healthColor(t float64) color.RGBA {
	t = clamp01(t)
	if t < 0.5 {
		return lerpRGBA(color.RGBA{R: 220, G: 40, B: 30, A: 230}, color.RGBA{R: 240, G: 200, B: 40, A: 230}, t*2)
	}
	return lerpRGBA(color.RGBA{R: 240, G: 200, B: 40, A: 230}, color.RGBA{R: 60, G: 210, B: 70, A: 230}, (t-0.5)*2)
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
