// Package bezier provides a numerical engine for arbitrary-order 2D Bézier
// curves. It was designed to serve the needs of CAD and vector-graphics
// applications, but is general enough for any consumer that needs to query
// the geometry of a Bézier curve.
//
// # BezierCpp
//
// This package is a Go port of the BezierCpp C++ library, generalized
// from the original's fixed matrix-cache design to work for curves of any
// order. It closely follows BezierCpp's algorithms: the Bernstein-basis
// matrix construction via matrix exponential, de Casteljau splitting via
// cached coefficient matrices, subdivision-based intersection, and Sturm
// chains for constrained root isolation.
//
// # Curves
//
// [Curve] is the sole exported curve type. It represents a Bézier curve of
// any order (order = number of control points − 1) via an n×2 control-point
// matrix, and answers geometric queries: [Curve.ValueAt], [Curve.TangentAt],
// [Curve.NormalAt], [Curve.CurvatureAt], [Curve.Derivative],
// [Curve.Length], [Curve.Roots], [Curve.Extrema], [Curve.BoundingBox],
// [Curve.Split], [Curve.ElevateOrder], [Curve.LowerOrder],
// [Curve.ManipulateCurvature], [Curve.Polyline], [Curve.Intersections],
// [Curve.ProjectPoint], and [Curve.ApplyContinuity].
//
// Curves are mutable: [Curve.MoveControlPoint], [Curve.ManipulateCurvature],
// [Curve.ElevateOrder], [Curve.LowerOrder], [Curve.Reverse], and
// [Curve.ApplyContinuity] modify a curve's control points in place and
// invalidate its cache. All other methods only read.
//
// # Caching
//
// Each [Curve] lazily computes and caches its derivative curve, extrema
// roots, bounding box, a single most-recently-requested polyline (recomputed
// if the requested flatness differs from the cached one), and a projection
// polynomial prefactor. Cache population is guarded by a per-curve mutex, so
// read methods are safe to call from multiple goroutines, though the
// intended usage pattern is a single writer with readers synchronizing
// externally or working from a pre-warmed cache. See the package-level
// concurrency note on [Curve] for details.
//
// The five families of coefficient matrices (Bernstein basis, left/right
// split, order elevation, order reduction) are memoized process-wide, keyed
// by curve order, in the internal coeffs package. This cache is safe for
// concurrent readers and first-writers and never invalidates.
//
// # Non-goals
//
// This package covers only the single-curve geometric engine. 3D curves,
// rational/NURBS curves, rendering, persistence, composite polycurves, and
// serialization are out of scope.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - Sturm's theorem for isolating real roots of a polynomial in an interval
//   - Gauss–Legendre quadrature for arc-length integration
//   - Halley's method for inverting arc length
//   - Farin's formulation of parametric (C^k) and geometric (G^k) continuity
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package bezier
