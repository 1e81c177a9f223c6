package bezier

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approxOpts returns go-cmp options that compare floats and points within
// the given absolute tolerance.
func approxOpts(tolerance float64) []cmp.Option {
	return []cmp.Option{cmpopts.EquateApprox(0, tolerance)}
}
