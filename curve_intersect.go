package bezier

import (
	"sort"

	"github.com/dandycheung/bezier/internal/coeffs"

	"gonum.org/v1/gonum/mat"
)

type curvePiece struct {
	n      int
	points *mat.Dense
}

func splitPiece(p curvePiece, z float64) (left, right curvePiece) {
	var lp, rp mat.Dense
	lp.Mul(coeffs.SplitLeft(p.n, z), p.points)
	rp.Mul(coeffs.SplitRight(p.n, z), p.points)
	return curvePiece{p.n, &lp}, curvePiece{p.n, &rp}
}

func boxOfPiece(p curvePiece) BoundingBox {
	rows, _ := p.points.Dims()
	pts := make(PointVector, rows)
	for i := 0; i < rows; i++ {
		pts[i] = Pt(p.points.At(i, 0), p.points.At(i, 1))
	}
	return boundingBoxOf(pts)
}

func boxesIntersect(a, b BoundingBox) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X && a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y
}

func boxDiagonal(b BoundingBox) float64 {
	return b.Min.Distance(b.Max)
}

func clamp01(x float64) float64 {
	return min(max(x, 0), 1)
}

// Intersections returns the points at which c and other cross, to within
// epsilon. Passing c itself as other finds self-intersections.
func (c *Curve) Intersections(other *Curve, epsilon float64) PointVector {
	if c == other {
		return c.selfIntersections(epsilon)
	}
	a := curvePiece{c.n, c.points}
	b := curvePiece{other.n, other.points}
	return subdivisionSearch([]pieceEntry{{a, 0}}, []pieceEntry{{b, 0}}, epsilon)
}

type pieceEntry struct {
	p     curvePiece
	depth int
}

// selfIntersections isolates the curve away from each of its extrema
// (where it trivially touches itself) before searching for genuine
// crossings between the resulting sub-curves.
func (c *Curve) selfIntersections(epsilon float64) PointVector {
	ext := append([]float64(nil), c.Extrema()...)
	sort.Float64s(ext)

	var pieces []curvePiece
	cur := curvePiece{c.n, c.points}
	ts := ext
	for len(ts) > 0 {
		t0 := ts[0]
		ts = ts[1:]

		aCut := clamp01(t0 - epsilon/2)
		bCut := clamp01(t0 + epsilon/2)

		left, _ := splitPiece(cur, aCut)
		pieces = append(pieces, left)

		_, right := splitPiece(cur, bCut)
		cur = right

		remapped := make([]float64, 0, len(ts))
		for _, t := range ts {
			remapped = append(remapped, (t-t0)/(1-t0))
		}
		ts = remapped
	}
	pieces = append(pieces, cur)

	var result PointVector
	for i := 0; i < len(pieces); i++ {
		for j := i + 1; j < len(pieces); j++ {
			found := subdivisionSearch(
				[]pieceEntry{{pieces[i], 0}},
				[]pieceEntry{{pieces[j], 0}},
				epsilon,
			)
			for _, p := range found {
				result = appendIfFar(result, p, epsilon)
			}
		}
	}
	return result
}

func appendIfFar(result PointVector, p Point, epsilon float64) PointVector {
	for _, q := range result {
		if p.Distance(q) <= epsilon {
			return result
		}
	}
	return append(result, p)
}

type searchPair struct {
	a, b  curvePiece
	depth int
}

// subdivisionSearch is seeded with single-element lists so the same
// machinery handles both the pair and the self-intersection case.
func subdivisionSearch(as, bs []pieceEntry, epsilon float64) PointVector {
	var result PointVector
	var stack []searchPair
	for _, a := range as {
		for _, b := range bs {
			stack = append(stack, searchPair{a.p, b.p, 0})
		}
	}

	for len(stack) > 0 {
		pr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if pr.depth > maxIntersectionSubdivisions {
			continue
		}

		boxA := boxOfPiece(pr.a)
		boxB := boxOfPiece(pr.b)
		if !boxesIntersect(boxA, boxB) {
			continue
		}

		dA := boxDiagonal(boxA)
		dB := boxDiagonal(boxB)
		if dA < epsilon && dB < epsilon {
			center := Pt((boxA.Min.X+boxA.Max.X)/2, (boxA.Min.Y+boxA.Max.Y)/2)
			result = appendIfFar(result, center, epsilon)
			continue
		}

		aParts := []curvePiece{pr.a}
		if dA >= epsilon {
			l, r := splitPiece(pr.a, 0.5)
			aParts = []curvePiece{r, l}
		}
		bParts := []curvePiece{pr.b}
		if dB >= epsilon {
			l, r := splitPiece(pr.b, 0.5)
			bParts = []curvePiece{r, l}
		}
		for _, pa := range aParts {
			for _, pb := range bParts {
				stack = append(stack, searchPair{pa, pb, pr.depth + 1})
			}
		}
	}
	return result
}
