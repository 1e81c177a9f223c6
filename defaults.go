package bezier

// DefaultFlatness is the flatness threshold used by Polyline when the
// caller doesn't have a more specific tolerance in mind.
const DefaultFlatness = 1.0

// DefaultEpsilon is the tolerance used by Intersections when the caller
// doesn't have a more specific tolerance in mind. ProjectPoint takes no
// tolerance.
const DefaultEpsilon = 1e-3

// maxHalleyIterations bounds IterateByLength's Halley iteration.
const maxHalleyIterations = 100

// maxIntersectionSubdivisions bounds how many times a single candidate pair
// of sub-curves is subdivided while searching for an intersection.
const maxIntersectionSubdivisions = 100
