package polyroots

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRealQuadratic(t *testing.T) {
	// t^2 - 5t + 6 = (t-2)(t-3)
	roots := Real([]float64{1, -5, 6})
	sort.Float64s(roots)
	assert.Len(t, roots, 2)
	assert.InDelta(t, 2, roots[0], 1e-9)
	assert.InDelta(t, 3, roots[1], 1e-9)
}

func TestRealComplexPairExcluded(t *testing.T) {
	// t^2 + 1 has no real roots.
	roots := Real([]float64{1, 0, 1})
	assert.Empty(t, roots)
}

func TestRealLinear(t *testing.T) {
	roots := Real([]float64{2, -8}) // 2t - 8 = 0
	assert.Len(t, roots, 1)
	assert.InDelta(t, 4, roots[0], 1e-9)
}

func TestRealHandlesTrailingZeros(t *testing.T) {
	// t^3 - 2t^2 = t^2(t-2), roots at 0 (double) and 2.
	roots := Real([]float64{1, -2, 0, 0})
	sort.Float64s(roots)
	assert.Len(t, roots, 3)
	assert.InDelta(t, 0, roots[0], 1e-9)
	assert.InDelta(t, 0, roots[1], 1e-9)
	assert.InDelta(t, 2, roots[2], 1e-9)
}

func TestRealLeadingZerosLowerDegree(t *testing.T) {
	roots := Real([]float64{0, 0, 1, -3}) // effectively t - 3
	assert.Len(t, roots, 1)
	assert.InDelta(t, 3, roots[0], 1e-9)
}
