package bezier

import (
	"sync"

	"gonum.org/v1/gonum/mat"
)

// curveCache holds derived artifacts of a Curve's control points, each
// populated lazily on first demand. All access goes through the methods
// below, which take the lock and fill a slot at most once per invalidation;
// the polyline slot is refilled whenever a different flatness is requested.
type curveCache struct {
	mu sync.Mutex

	haveDerivative bool
	derivative     *Curve

	haveRoots bool
	roots     []float64

	haveBBox bool
	bbox     BoundingBox

	haveFlatness bool
	flatness     float64
	polyline     PointVector

	haveProjection bool
	projPoly       *mat.Dense // C_poly = B_n · P
	projDeriv      *mat.Dense // D_poly = B_(n-1) · derivative().P
}

// invalidate clears every slot. Called by every mutating operation.
func (cc *curveCache) invalidate() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.haveDerivative = false
	cc.derivative = nil
	cc.haveRoots = false
	cc.roots = nil
	cc.haveBBox = false
	cc.bbox = BoundingBox{}
	cc.haveFlatness = false
	cc.flatness = 0
	cc.polyline = nil
	cc.haveProjection = false
	cc.projPoly = nil
	cc.projDeriv = nil
}

// compute is run without the lock held, since a curve's compute functions
// may recursively touch the same cache (e.g. a bounding box needs the
// derivative); holding the lock across that call would deadlock against
// the non-reentrant mutex.
func (cc *curveCache) getDerivative(compute func() *Curve) *Curve {
	cc.mu.Lock()
	if cc.haveDerivative {
		d := cc.derivative
		cc.mu.Unlock()
		return d
	}
	cc.mu.Unlock()

	d := compute()

	cc.mu.Lock()
	defer cc.mu.Unlock()
	if !cc.haveDerivative {
		cc.derivative = d
		cc.haveDerivative = true
	}
	return cc.derivative
}

func (cc *curveCache) getRoots(compute func() []float64) []float64 {
	cc.mu.Lock()
	if cc.haveRoots {
		r := cc.roots
		cc.mu.Unlock()
		return r
	}
	cc.mu.Unlock()

	r := compute()

	cc.mu.Lock()
	defer cc.mu.Unlock()
	if !cc.haveRoots {
		cc.roots = r
		cc.haveRoots = true
	}
	return cc.roots
}

func (cc *curveCache) getBoundingBox(compute func() BoundingBox) BoundingBox {
	cc.mu.Lock()
	if cc.haveBBox {
		b := cc.bbox
		cc.mu.Unlock()
		return b
	}
	cc.mu.Unlock()

	b := compute()

	cc.mu.Lock()
	defer cc.mu.Unlock()
	if !cc.haveBBox {
		cc.bbox = b
		cc.haveBBox = true
	}
	return cc.bbox
}

// polylineTolerance bounds how close a requested flatness must be to the
// cached one for the cached polyline to be reused.
const polylineTolerance = 1e-10

func (cc *curveCache) getPolyline(flatness float64, compute func() PointVector) PointVector {
	cc.mu.Lock()
	if cc.haveFlatness && absf(cc.flatness-flatness) < polylineTolerance {
		p := cc.polyline
		cc.mu.Unlock()
		return p
	}
	cc.mu.Unlock()

	p := compute()

	cc.mu.Lock()
	defer cc.mu.Unlock()
	if !cc.haveFlatness || absf(cc.flatness-flatness) >= polylineTolerance {
		cc.polyline = p
		cc.flatness = flatness
		cc.haveFlatness = true
	}
	return cc.polyline
}

func (cc *curveCache) getProjection(compute func() (*mat.Dense, *mat.Dense)) (*mat.Dense, *mat.Dense) {
	cc.mu.Lock()
	if cc.haveProjection {
		p, d := cc.projPoly, cc.projDeriv
		cc.mu.Unlock()
		return p, d
	}
	cc.mu.Unlock()

	p, d := compute()

	cc.mu.Lock()
	defer cc.mu.Unlock()
	if !cc.haveProjection {
		cc.projPoly, cc.projDeriv = p, d
		cc.haveProjection = true
	}
	return cc.projPoly, cc.projDeriv
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
