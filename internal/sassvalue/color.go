package sassvalue

import (
	"fmt"
	"math"

	"github.com/gosass/sass/internal/helpers"
)

// Color is a CSS color, stored as RGB + alpha. HSL channel operations
// convert to HSL, apply the change, and convert back; spec.md §3 calls the
// two representations "mutually convertible", which this makes literal
// rather than keeping two live representations in sync.
type Color struct {
	R, G, B uint8
	A       float64 // 0 (transparent) to 1 (opaque)
}

func (Color) isValue() {}

func (c Color) String() string {
	if c.A == 1 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}

func (c Color) IsTruthy() bool { return true }

func (c Color) Equal(other Value) bool {
	o, ok := other.(Color)
	return ok && o.R == c.R && o.G == c.G && o.B == c.B && floatsEqual(o.A, c.A)
}

// hsl converts c to hue (degrees, 0-360), saturation, and lightness
// (fractions, 0-1).
func (c Color) hsl() (h, s, l float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2

	if max == min {
		return 0, 0, l
	}

	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	h *= 60

	return h, s, l
}

// ColorFromHSL constructs a Color from hue (degrees), saturation, and
// lightness (fractions 0-1), with the given alpha.
func ColorFromHSL(h, s, l, alpha float64) Color {
	h = math.Mod(math.Mod(h, 360)+360, 360)

	if s == 0 {
		v := uint8(math.Round(l * 255))
		return Color{R: v, G: v, B: v, A: alpha}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	hueToRGB := func(p, q, t float64) float64 {
		if t < 0 {
			t += 1
		}
		if t > 1 {
			t -= 1
		}
		switch {
		case t < 1.0/6.0:
			return p + (q-p)*6*t
		case t < 1.0/2.0:
			return q
		case t < 2.0/3.0:
			return p + (q-p)*(2.0/3.0-t)*6
		default:
			return p
		}
	}

	hk := h / 360
	r := hueToRGB(p, q, hk+1.0/3.0)
	g := hueToRGB(p, q, hk)
	b := hueToRGB(p, q, hk-1.0/3.0)

	return Color{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
		A: alpha,
	}
}

// ChangeRGB returns a copy of c with the given channels replaced; pass nil
// for any channel that should keep its current value.
func (c Color) ChangeRGB(r, g, b *uint8, a *float64) Color {
	result := c
	if r != nil {
		result.R = *r
	}
	if g != nil {
		result.G = *g
	}
	if b != nil {
		result.B = *b
	}
	if a != nil {
		result.A = *a
	}
	return result
}

// ChangeHSL returns a copy of c with the given HSL channels replaced, by
// converting to HSL, applying the change, and converting back — the
// "mutually convertible" requirement of spec.md §3 made concrete for
// channel-change operations (ChangeColor/AdjustColor in the real language).
func (c Color) ChangeHSL(h, s, l, a *float64) Color {
	hh, ss, ll := c.hsl()
	alpha := c.A
	if h != nil {
		hh = *h
	}
	if s != nil {
		ss = clamp01(*s)
	}
	if l != nil {
		ll = clamp01(*l)
	}
	if a != nil {
		alpha = clamp01(*a)
	}
	return ColorFromHSL(hh, ss, ll, alpha)
}

// AdjustHSL returns a copy of c with the given HSL channel deltas applied
// relative to its current value, clamped back into range.
func (c Color) AdjustHSL(dh, ds, dl, da float64) Color {
	hh, ss, ll := c.hsl()
	return ColorFromHSL(hh+dh, clamp01(ss+ds), clamp01(ll+dl), clamp01(c.A+da))
}

// ScaleChannel scales channel (0-255) toward 255 (factor > 0) or 0 (factor <
// 0) by the given fraction, the way "scale-color()" scales RGB channels.
func ScaleChannel(value uint8, factor float64) uint8 {
	f := helpers.NewF64(factor)
	v := helpers.NewF64(float64(value))
	var scaled helpers.F64
	if factor >= 0 {
		scaled = v.Add(helpers.NewF64(255).Sub(v).Mul(f))
	} else {
		scaled = v.Add(v.Mul(f))
	}
	return clampChannel(scaled.Value())
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
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
