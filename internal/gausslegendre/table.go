// Package gausslegendre provides a fixed high-order Gauss–Legendre
// quadrature table, used by the curve engine to integrate arc length.
package gausslegendre

import "math"

// N is the number of quadrature points. 32 points give more than enough
// accuracy for the smooth, low-degree polynomials that arise from Bézier
// derivative norms.
const N = 32

// Abscissae holds the quadrature nodes ξ_k ∈ (-1, 1).
// Weights holds the corresponding weights w_k.
//
// Both are computed once at package initialization by locating the roots
// of the degree-N Legendre polynomial via Newton's method — the standard
// "gauleg" construction — rather than being transcribed from a printed
// table, so there is no risk of a mistyped digit silently corrupting every
// arc-length integral.
var (
	Abscissae [N]float64
	Weights   [N]float64
)

func init() {
	const (
		a       = -1.0
		b       = 1.0
		epsilon = 3e-15
	)
	m := (N + 1) / 2
	xm := 0.5 * (b + a)
	xl := 0.5 * (b - a)

	for i := 1; i <= m; i++ {
		z := math.Cos(math.Pi * (float64(i) - 0.25) / (float64(N) + 0.5))
		var pp float64
		for {
			p1, p2 := 1.0, 0.0
			for j := 1; j <= N; j++ {
				p3 := p2
				p2 = p1
				p1 = ((2*float64(j)-1)*z*p2 - (float64(j)-1)*p3) / float64(j)
			}
			pp = float64(N) * (z*p1 - p2) / (z*z - 1)
			z1 := z
			z -= p1 / pp
			if math.Abs(z-z1) < epsilon {
				break
			}
		}
		Abscissae[i-1] = xm - xl*z
		Abscissae[N-i] = xm + xl*z
		w := 2 * xl / ((1 - z*z) * pp * pp)
		Weights[i-1] = w
		Weights[N-i] = w
	}
}

// ArcLength integrates the norm of deriv over [t1, t2] using the fixed
// Gauss–Legendre table:
//
//	L = ((t2-t1)/2) · Σ_k w_k · ‖deriv((ξ_k·(t2-t1) + t1+t2)/2)‖
func ArcLength(derivNorm func(t float64) float64, t1, t2 float64) float64 {
	sum := 0.0
	for k := 0; k < N; k++ {
		t := (Abscissae[k]*(t2-t1) + (t1 + t2)) / 2
		sum += Weights[k] * derivNorm(t)
	}
	return sum * (t2 - t1) / 2
}
