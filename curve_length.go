package bezier

import (
	"math"

	"github.com/dandycheung/bezier/internal/gausslegendre"
)

func (c *Curve) derivNorm(t float64) float64 {
	return c.DerivativeAt(1, t).Hypot()
}

// Length returns the total arc length of the curve, i.e. LengthBetween(0,1).
func (c *Curve) Length() float64 {
	return gausslegendre.ArcLength(c.derivNorm, 0, 1)
}

// LengthAt returns the arc length from t=0 to t, i.e. LengthBetween(0,t).
//
// By convention length is always measured from the start; callers wanting
// the length of a suffix must call LengthBetween(t, 1) explicitly.
func (c *Curve) LengthAt(t float64) float64 {
	requireParam("LengthAt", t)
	return gausslegendre.ArcLength(c.derivNorm, 0, t)
}

// LengthBetween returns the arc length from t1 to t2.
func (c *Curve) LengthBetween(t1, t2 float64) float64 {
	requireParam("LengthBetween", t1)
	requireParam("LengthBetween", t2)
	return gausslegendre.ArcLength(c.derivNorm, t1, t2)
}

// IterateByLength finds t* such that LengthAt(t*) - LengthAt(t) = s, using
// Halley's method starting from t. The target is clamped to 0 or 1 if it
// falls outside the curve's total length. t must already lie in [0,1].
func (c *Curve) IterateByLength(t, s, epsilon float64) float64 {
	requireParam("IterateByLength", t)

	l0 := c.LengthAt(t)
	total := c.Length()
	target := l0 + s
	switch {
	case target <= 0:
		return 0
	case target >= total:
		return 1
	}

	tt := t
	for i := 0; i < maxHalleyIterations; i++ {
		f := c.LengthAt(tt) - l0 - s
		if math.Abs(f) < epsilon {
			break
		}
		fp := c.derivNorm(tt)
		fpp := c.DerivativeAt(2, tt).Hypot()
		denom := 2*fp*fp - f*fpp
		if denom == 0 {
			break
		}
		tt -= (2 * f * fp) / denom
		tt = min(max(tt, 0), 1)
	}
	return tt
}
