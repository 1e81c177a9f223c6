package bezier

import (
	"gonum.org/v1/gonum/mat"
)

// Curve is a Bézier curve of arbitrary order in the plane, represented by
// its control points. Order is len(ControlPoints())-1.
//
// Read methods lazily populate an internal cache that is guarded by a
// per-curve mutex, so concurrent calls to read methods are safe. Mutating
// methods are not synchronized with readers or with each other: a curve
// that is being mutated must not be used from other goroutines without
// external synchronization.
type Curve struct {
	n      int
	points *mat.Dense // n×2, row k is control point P_k
	cache  curveCache
}

// New constructs a curve from its control points, in order.
func New(points ...Point) *Curve {
	if len(points) == 0 {
		fail("New", "control-point list must not be empty")
	}
	return newFromRows(points)
}

// NewFromMatrix constructs a curve from an n×2 matrix, row k giving control
// point P_k.
func NewFromMatrix(m *mat.Dense) *Curve {
	r, c := m.Dims()
	if r == 0 {
		fail("NewFromMatrix", "control-point matrix must not be empty")
	}
	if c != 2 {
		fail("NewFromMatrix", "control-point matrix must have 2 columns, got %d", c)
	}
	cp := mat.NewDense(r, 2, nil)
	cp.Copy(m)
	return &Curve{n: r, points: cp}
}

func newFromRows(points []Point) *Curve {
	m := mat.NewDense(len(points), 2, nil)
	for i, p := range points {
		m.Set(i, 0, p.X)
		m.Set(i, 1, p.Y)
	}
	return &Curve{n: len(points), points: m}
}

// Order returns the polynomial order of the curve, i.e. len(ControlPoints())-1.
func (c *Curve) Order() int {
	return c.n - 1
}

// ControlPoints returns a copy of the curve's control points, in order.
func (c *Curve) ControlPoints() PointVector {
	out := make(PointVector, c.n)
	for i := range out {
		out[i] = Pt(c.points.At(i, 0), c.points.At(i, 1))
	}
	return out
}

// ControlPoint returns the i-th control point.
func (c *Curve) ControlPoint(i int) Point {
	if i < 0 || i >= c.n {
		fail("ControlPoint", "index %d out of range [0,%d)", i, c.n)
	}
	return Pt(c.points.At(i, 0), c.points.At(i, 1))
}

// EndPoints returns the curve's first and last control points.
func (c *Curve) EndPoints() (start, end Point) {
	return c.ControlPoint(0), c.ControlPoint(c.n - 1)
}

func requireParam(op string, t float64) {
	if t < 0 || t > 1 {
		fail(op, "t=%g out of range [0,1]", t)
	}
}
