package segment

import (
	"math"
	"strings"
)

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// Linear is no easing at all.
func Linear(t float64) float64 { return t }

var (
	// Ease matches CSS ease.
	Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)
	// EaseIn matches CSS ease-in.
	EaseIn = CubicBezier(0.42, 0.0, 1.0, 1.0)
	// EaseOut matches CSS ease-out.
	EaseOut = CubicBezier(0.0, 0.0, 0.58, 1.0)
	// EaseInOut matches CSS ease-in-out.
	EaseInOut = CubicBezier(0.42, 0.0, 0.58, 1.0)
)

// EasingByName looks up a named curve for config files.
func EasingByName(name string) (Easing, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear":
		return Linear, true
	case "ease":
		return Ease, true
	case "ease-in", "easein":
		return EaseIn, true
	case "ease-out", "easeout":
		return EaseOut, true
	case "", "ease-in-out", "easeinout":
		return EaseInOut, true
	default:
		return EaseInOut, false
	}
}

// CubicBezier returns a curve through (0,0), (x1,y1), (x2,y2), (1,1), the
// same shape as CSS cubic-bezier().
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		// Newton-Raphson for the parameter whose x is t.
		u := t
		for n := 0; n < 8; n++ {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezier(y1, y2, u)
			}
			dx := bezierSlope(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Fall back to bisection when Newton stalls.
		lo, hi := 0.0, 1.0
		u = t
		for n := 0; n < 32; n++ {
			x := bezier(x1, x2, u)
			if math.Abs(x-t) < 1e-7 {
				break
			}
			if x < t {
				lo = u
			} else {
				hi = u
			}
			u = (lo + hi) / 2
		}
		return bezier(y1, y2, u)
	}
}

func bezier(a, b, t float64) float64 {
	return ((1-3*b+3*a)*t+(3*b-6*a))*t*t + 3*a*t
}

func bezierSlope(a, b, t float64) float64 {
	return 3*(1-3*b+3*a)*t*t + 2*(3*b-6*a)*t + 3*a
}
