package colors

import "math"

// RGBToHSL converts color to HSL space. Hue is rounded to whole degrees,
// saturation and lightness to one decimal place. Alpha is rescaled from 255
// to 100.
//
// Negative hue is moved into range before rounding. Hue which rounds up to
// 360 is reported as 0, so result always stays in [0, 360).
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	cmin := min(r, g, b)
	cmax := max(r, g, b)
	delta := cmax - cmin

	var h, s float64
	switch {
	case delta == 0:
		h = 0
	case cmax == r:
		h = math.Mod((g-b)/delta, 6)
	case cmax == g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	if h = math.Round(h); h >= 360 || h == 0 {
		h = 0 // also drops negative zero
	}

	l := (cmax + cmin) / 2
	if delta != 0 {
		s = delta / (1 - math.Abs(2*l-1))
	}

	return HSL{
		H: h,
		S: roundTenth(s * 100),
		L: roundTenth(l * 100),
		A: int(math.Round(float64(c.A) * float64(AlphaScaleHSL) / float64(AlphaScaleRGB))),
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
