// Package coeffs memoizes the families of coefficient matrices used by the
// Bézier curve engine: the Bernstein basis matrix, the de Casteljau
// split-left/split-right matrices, and the order elevation/reduction
// matrices. All five families are functions of the control-point count n
// alone (the split matrices additionally of a split point z, with z = 0.5
// cached and other z computed on demand).
//
// The caches are process-wide, grow monotonically, and are never mutated
// once an entry exists, so concurrent readers always observe either a
// complete entry or none.
package coeffs

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"
)

var (
	bernsteinMu sync.RWMutex
	bernstein   = map[int]*mat.Dense{}

	splitLeftMu sync.RWMutex
	splitLeft   = map[int]*mat.Dense{}

	splitRightMu sync.RWMutex
	splitRight   = map[int]*mat.Dense{}

	elevateMu sync.RWMutex
	elevate   = map[int]*mat.Dense{}

	lowerMu sync.RWMutex
	lower   = map[int]*mat.Dense{}
)

func factorial(k int) float64 {
	return math.Gamma(float64(k) + 1)
}

func binomial(n, k int) float64 {
	return factorial(n) / (factorial(k) * factorial(n-k))
}

// Bernstein returns the n×n Bernstein basis matrix B_n, memoized by n.
//
// value(t) = [1, t, …, t^(n-1)] · B_n · P converts a monomial-basis
// coefficient vector into Bernstein weights on the control points.
func Bernstein(n int) *mat.Dense {
	bernsteinMu.RLock()
	if b, ok := bernstein[n]; ok {
		bernsteinMu.RUnlock()
		return b
	}
	bernsteinMu.RUnlock()

	bernsteinMu.Lock()
	defer bernsteinMu.Unlock()
	if b, ok := bernstein[n]; ok {
		return b
	}

	m := mat.NewDense(n, n, nil)
	for k := 1; k < n; k++ {
		m.Set(k, k-1, -float64(k))
	}
	b := mat.NewDense(n, n, nil)
	b.Exp(m)
	for k := 0; k < n; k++ {
		row := make([]float64, n)
		for j := 0; j < n; j++ {
			row[j] = b.At(k, j) * binomial(n-1, k)
		}
		b.SetRow(k, row)
	}
	bernstein[n] = b
	return b
}

// SplitLeft returns S_L(n, z) = B_n⁻¹ · diag(1, z, z², …, z^(n-1)) · B_n.
// Applied to a curve's control points it yields the control points of the
// sub-curve on t ∈ [0, z]. z = 0.5 is memoized by n; other z are computed on
// demand and not cached.
func SplitLeft(n int, z float64) *mat.Dense {
	if z == 0.5 {
		splitLeftMu.RLock()
		if s, ok := splitLeft[n]; ok {
			splitLeftMu.RUnlock()
			return s
		}
		splitLeftMu.RUnlock()

		splitLeftMu.Lock()
		defer splitLeftMu.Unlock()
		if s, ok := splitLeft[n]; ok {
			return s
		}
		s := computeSplitLeft(n, z)
		splitLeft[n] = s
		return s
	}
	return computeSplitLeft(n, z)
}

func computeSplitLeft(n int, z float64) *mat.Dense {
	b := Bernstein(n)
	var bInv mat.Dense
	if err := bInv.Inverse(b); err != nil {
		panic(fmt.Sprintf("coeffs: singular Bernstein matrix for order %d", n))
	}

	d := mat.NewDense(n, n, nil)
	pow := 1.0
	for k := 0; k < n; k++ {
		d.Set(k, k, pow)
		pow *= z
	}

	var tmp, out mat.Dense
	tmp.Mul(&bInv, d)
	out.Mul(&tmp, b)
	return &out
}

// SplitRight returns S_R(n, z), derived from S_L by the anti-diagonal
// row-reflection rule S_R[k, k+j] = S_L[n-1-k, j]. z = 0.5 is memoized by n.
func SplitRight(n int, z float64) *mat.Dense {
	if z == 0.5 {
		splitRightMu.RLock()
		if s, ok := splitRight[n]; ok {
			splitRightMu.RUnlock()
			return s
		}
		splitRightMu.RUnlock()

		splitRightMu.Lock()
		defer splitRightMu.Unlock()
		if s, ok := splitRight[n]; ok {
			return s
		}
		s := reflectSplitLeft(n, SplitLeft(n, z))
		splitRight[n] = s
		return s
	}
	return reflectSplitLeft(n, SplitLeft(n, z))
}

func reflectSplitLeft(n int, left *mat.Dense) *mat.Dense {
	out := mat.NewDense(n, n, nil)
	for k := 0; k < n; k++ {
		for j := 0; j < n-k; j++ {
			out.Set(k, k+j, left.At(n-1-k, j))
		}
	}
	return out
}

// Elevate returns the (n+1)×n matrix E_n that raises the order of an
// n-control-point curve by one while preserving its shape exactly.
func Elevate(n int) *mat.Dense {
	elevateMu.RLock()
	if e, ok := elevate[n]; ok {
		elevateMu.RUnlock()
		return e
	}
	elevateMu.RUnlock()

	elevateMu.Lock()
	defer elevateMu.Unlock()
	if e, ok := elevate[n]; ok {
		return e
	}

	e := mat.NewDense(n+1, n, nil)
	for k := 0; k < n; k++ {
		e.Set(k, k, 1-float64(k)/float64(n))
		e.Set(k+1, k, float64(k+1)/float64(n))
	}
	elevate[n] = e
	return e
}

// Lower returns the (n-1)×n least-squares pseudo-inverse L_n that
// approximates an order reduction of an n-control-point curve. It is exact
// only when the curve genuinely lives in the lower order.
func Lower(n int) *mat.Dense {
	lowerMu.RLock()
	if l, ok := lower[n]; ok {
		lowerMu.RUnlock()
		return l
	}
	lowerMu.RUnlock()

	lowerMu.Lock()
	defer lowerMu.Unlock()
	if l, ok := lower[n]; ok {
		return l
	}

	e := Elevate(n - 1)
	var ete mat.Dense
	ete.Mul(e.T(), e)
	var eteInv mat.Dense
	if err := eteInv.Inverse(&ete); err != nil {
		panic(fmt.Sprintf("coeffs: singular elevate^T*elevate for order %d", n))
	}
	var l mat.Dense
	l.Mul(&eteInv, e.T())
	lower[n] = &l
	return &l
}

