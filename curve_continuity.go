package bezier

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

func factorial(k int) float64 {
	return math.Gamma(float64(k) + 1)
}

// ApplyContinuity adjusts the first len(beta)+1 control points of c so that
// its derivatives up to order len(beta) at t=0 match source's derivatives
// at t=1, scaled by beta — Farin's parametric/geometric continuity
// construction.
func (c *Curve) ApplyContinuity(source *Curve, beta []float64) {
	cOrd := len(beta)
	size := cOrd + 1

	pm := mat.NewDense(size, size, nil)
	for k := 1; k < size; k++ {
		pm.Set(k, k-1, -float64(k))
	}
	var pascal mat.Dense
	pascal.Exp(pm)

	bell := make([][]float64, size)
	for i := range bell {
		bell[i] = make([]float64, size)
	}
	bell[0][cOrd] = 1
	for i := 0; i < cOrd; i++ {
		v := make([]float64, i+1)
		for k := 0; k <= i; k++ {
			v[k] = math.Abs(pascal.At(i, k)) * beta[k]
		}
		for r := 0; r <= i; r++ {
			sum := 0.0
			for k := 0; k <= i; k++ {
				sum += bell[r][cOrd-i+k] * v[k]
			}
			bell[1+r][cOrd-i-1] = sum
		}
	}
	bellMat := mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			bellMat.Set(i, j, bell[i][j])
		}
	}

	fm := mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		fm.Set(i, i, factorial(c.n-1)/factorial(c.n-1-i))
	}

	deriv := mat.NewDense(2, size, nil)
	_, endSrc := source.EndPoints()
	deriv.Set(0, 0, endSrc.X)
	deriv.Set(1, 0, endSrc.Y)
	for i := 1; i < size; i++ {
		_, e := source.DerivativeOrder(i).EndPoints()
		deriv.Set(0, i, e.X)
		deriv.Set(1, i, e.Y)
	}

	var db mat.Dense
	db.Mul(deriv, bellMat)
	wanted := mat.NewDense(size, 2, nil)
	for i := 0; i < size; i++ {
		wanted.Set(i, 0, db.At(0, size-1-i))
		wanted.Set(i, 1, db.At(1, size-1-i))
	}

	var fa mat.Dense
	fa.Mul(fm, &pascal)
	var faInv mat.Dense
	if err := faInv.Inverse(&fa); err != nil {
		fail("ApplyContinuity", "singular continuity system for order %d", cOrd)
	}
	var result mat.Dense
	result.Mul(&faInv, wanted)

	for i := 0; i < size; i++ {
		c.points.Set(i, 0, result.At(i, 0))
		c.points.Set(i, 1, result.At(i, 1))
	}
	c.cache.invalidate()
}
