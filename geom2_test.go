package geom2

import (
	"testing"

	"github.com/chewxy/math32"
)

// testEps is the comparison tolerance for float32 results in tests.
// It is much looser than EPS because accumulated float32 arithmetic
// carries more rounding error than a single comparison.
const testEps float32 = 1e-4

func approxf(t *testing.T, got, want, eps float32, what string) {
	t.Helper()
	if math32.Abs(got-want) > eps {
		t.Errorf("%s = %v, want %v (±%v)", what, got, want, eps)
	}
}

func approxPt(t *testing.T, got, want Point, eps float32, what string) {
	t.Helper()
	if !got.Approx(want, eps) {
		t.Errorf("%s = %v, want %v (±%v)", what, got, want, eps)
	}
}
