// Package polyroots finds the real roots of a real polynomial by building
// its companion matrix and reading off the real eigenvalues, avoiding a
// hand-rolled iterative root finder.
package polyroots

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// realTolerance bounds how far an eigenvalue's imaginary part may stray from
// zero before it is treated as a genuine complex (non-real) root.
const realTolerance = 1e-9

// Real returns the real roots of the polynomial with coefficients p
// (highest-degree first, degree len(p)-1), in no particular order. Leading
// and trailing zero coefficients are handled: leading zeros just lower the
// effective degree, and a run of trailing zeros contributes roots at 0 that
// are folded back in.
func Real(p []float64) []float64 {
	p = trimLeading(p)
	if len(p) < 2 {
		return nil
	}

	zeroRoots := 0
	for len(p) > 1 && p[len(p)-1] == 0 {
		p = p[:len(p)-1]
		zeroRoots++
	}
	n := len(p) - 1

	var roots []float64
	for i := 0; i < zeroRoots; i++ {
		roots = append(roots, 0)
	}
	if n == 0 {
		return roots
	}
	if n == 1 {
		roots = append(roots, -p[1]/p[0])
		return roots
	}

	c := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		c.Set(0, j, -p[j+1]/p[0])
	}
	for i := 1; i < n; i++ {
		c.Set(i, i-1, 1)
	}

	var eig mat.Eigen
	if !eig.Factorize(c, mat.EigenNone) {
		return roots
	}
	for _, v := range eig.Values(nil) {
		if math.Abs(imag(v)) < realTolerance {
			roots = append(roots, real(v))
		}
	}
	return roots
}

func trimLeading(p []float64) []float64 {
	k := 0
	for k < len(p) && p[k] == 0 {
		k++
	}
	return p[k:]
}
