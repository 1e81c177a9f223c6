// Package sturm builds Sturm chains over a polynomial and uses them to
// count, and isolate, real roots in an interval. It has no dependency on
// the curve type, and the curve engine (bezier.Curve) does not call it:
// extrema and projection roots come from the polyroots package.
package sturm

import "math"

// RootFilter selects which roots Roots should keep, based on the local
// shape of the polynomial at the root.
type RootFilter int

const (
	Convex     RootFilter = 1 << iota // roots where p goes from ≤0 to >0
	Concave                           // roots where p goes from >0 to ≤0
	Inflection                        // roots where p doesn't change sign
	All                                // keep every isolated root regardless of shape
)

// Chain builds the Sturm chain of the polynomial p (coefficients
// highest-degree first, degree len(p)-1). Each returned row is padded with
// leading zeros to the same width as p, so the chain can be evaluated with
// a single shared power basis. The chain is truncated to the height at
// which the latest remainder becomes effectively constant.
func Chain(p []float64, epsilon float64) [][]float64 {
	n := len(p)
	if n == 0 {
		return nil
	}

	// local[i] holds the coefficients of the i-th chain remainder p_i,
	// highest-degree first, with 2 trailing zero scratch slots so the
	// recurrence below can always read two slots past the end of p_i-1
	// and p_i-2's active coefficients.
	local := make([][]float64, n)
	local[0] = append(append([]float64{}, p...), 0, 0)
	if n > 1 {
		local[1] = make([]float64, n+1) // (n-1) active + 2 scratch
		for j := 1; j < n; j++ {
			local[1][j-1] = float64(n-j) * local[0][j-1]
		}
	}

	height := min(n, 2)
	for i := 2; i < n; i++ {
		d2, d1 := local[i-2], local[i-1]

		if rowIsConstant(d1, n-i+1, epsilon) {
			height = i
			break
		}

		activeLen := n - i // length of p_i's active coefficients
		row := make([]float64, activeLen+2)

		if math.Abs(d1[0]) > epsilon {
			t := d2[0] / d1[0]
			m := (d2[1] - t*d1[1]) / d1[0]
			for j := 0; j < activeLen; j++ {
				row[j] = -(d2[j+2] - m*d1[j+1] - t*d1[j+2])
			}
		} else {
			a := trim(d2[:n-i+2])
			b := trim(d1[:n-i+1])
			r := degenerateRemainder(a, b)
			copy(row[activeLen-len(r):activeLen], r)
		}

		local[i] = row
		height = i + 1
	}

	out := make([][]float64, height)
	for i := 0; i < height; i++ {
		out[i] = inflate(local[i][:n-i], n)
	}
	return out
}

// rowIsConstant reports whether the active portion of row (length
// activeLen) is effectively a single non-zero value, i.e. its Euclidean
// norm equals the absolute value of its last entry.
func rowIsConstant(row []float64, activeLen int, epsilon float64) bool {
	norm := 0.0
	for j := 0; j < activeLen; j++ {
		norm += row[j] * row[j]
	}
	norm = math.Sqrt(norm)
	last := 0.0
	if activeLen > 0 {
		last = row[activeLen-1]
	}
	return math.Abs(norm-math.Abs(last)) < epsilon
}

func trim(p []float64) []float64 {
	k := 0
	for k < len(p) && p[k] == 0 {
		k++
	}
	return p[k:]
}

// degenerateRemainder performs scalar long division of a by b, stripped of
// leading zeros, returning the negated remainder once its degree drops
// below b's.
func degenerateRemainder(a, b []float64) []float64 {
	if len(b) == 0 {
		return nil
	}
	r := append([]float64(nil), a...)
	for len(r) >= len(b) {
		l := r[0] / b[0]
		x := len(r) - len(b)
		for k := 0; k < len(b); k++ {
			r[x+k] -= l * b[k]
		}
		r = trim(r)
	}
	for i := range r {
		r[i] = -r[i]
	}
	return r
}

// inflate pads p (highest-degree first, degree len(p)-1) with leading
// zeros to width n.
func inflate(p []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out[n-len(p):], p)
	return out
}

// powerBasis returns [t^(cols-1), t^(cols-2), …, t^0].
func powerBasis(t float64, cols int) []float64 {
	out := make([]float64, cols)
	p := 1.0
	for j := cols - 1; j >= 0; j-- {
		out[j] = p
		p *= t
	}
	return out
}

func evalRow(row []float64, basis []float64) float64 {
	sum := 0.0
	for j, c := range row {
		sum += c * basis[j]
	}
	return sum
}

func signChanges(chain [][]float64, basis []float64) int {
	count := 0
	prevSignbit := math.Signbit(evalRow(chain[0], basis))
	for i := 1; i < len(chain); i++ {
		s := math.Signbit(evalRow(chain[i], basis))
		if s != prevSignbit {
			count++
		}
		prevSignbit = s
	}
	return count
}

// IntervalCount returns the number of real roots of the polynomial behind
// chain in the interval [a, b].
func IntervalCount(chain [][]float64, a, b float64) int {
	if len(chain) == 0 {
		return 0
	}
	cols := len(chain[0])
	return signChanges(chain, powerBasis(a, cols)) - signChanges(chain, powerBasis(b, cols))
}

type interval struct {
	a, b float64
	flag bool
}

// Roots isolates every real root of p (coefficients highest-degree first)
// in [0, 1] to within epsilon, keeping only those matching filter. It runs
// an explicit work-stack bisection so stack usage stays bounded regardless
// of polynomial degree.
func Roots(p []float64, filter RootFilter, epsilon float64) []float64 {
	chain := Chain(p, epsilon)
	if len(chain) == 0 {
		return nil
	}
	var roots []float64

	var stack []interval
	visit := func(iv interval) {
		v := IntervalCount(chain, iv.a, iv.b)
		m := (iv.a + iv.b) / 2
		width := iv.b - iv.a

		switch {
		case v == 0:
			return
		case v == 1 && width < epsilon:
			roots = append(roots, m)
			return
		case v == 1 && filter != All && !iv.flag:
			cols := len(chain[0])
			ga := evalRow(chain[0], powerBasis(iv.a, cols))
			gb := evalRow(chain[0], powerBasis(iv.b, cols))
			flag := false
			if filter&Convex != 0 && ga <= 0 && gb > 0 {
				flag = true
			}
			if filter&Concave != 0 && ga > 0 && gb <= 0 {
				flag = true
			}
			if filter&Inflection != 0 && ((ga >= 0 && gb >= 0) || (ga <= 0 && gb <= 0)) {
				flag = true
			}
			if !flag {
				return
			}
			stack = append(stack, interval{iv.a, m, flag}, interval{m, iv.b, flag})
		default:
			stack = append(stack, interval{iv.a, m, iv.flag}, interval{m, iv.b, iv.flag})
		}
	}

	visit(interval{0, 1, false})
	for len(stack) > 0 {
		iv := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(iv)
	}
	return roots
}
