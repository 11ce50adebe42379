package common

import "github.com/jakecoffman/cp"

const (
	BaseWidth  = 1280
	BaseHeight = 754
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp keeps v inside [lo, hi]. When hi < lo the range collapses onto lo.
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return cp.Clamp(v, lo, hi)
}

func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func Abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
