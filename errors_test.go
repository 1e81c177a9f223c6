package bezier

import (
	"errors"
	"testing"
)

func TestPreconditionErrorRecoverableViaErrorsAs(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("recovered value %v is not an error", r)
		}
		var pe *PreconditionError
		if !errors.As(err, &pe) {
			t.Fatalf("errors.As failed to unwrap PreconditionError from %v", err)
		}
		if pe.Op != "ValueAt" {
			t.Errorf("Op = %q, want ValueAt", pe.Op)
		}
	}()
	New(Pt(0, 0), Pt(1, 1)).ValueAt(2)
}

func TestPreconditionErrorMessage(t *testing.T) {
	err := &PreconditionError{Op: "Split", Message: "z=2 out of range [0,1]"}
	want := "bezier: Split: z=2 out of range [0,1]"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
