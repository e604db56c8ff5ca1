package FEM1D

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// ErrQuadNoConverge reports that adaptive quadrature could not reach its
// tolerance within the refinement depth limit. It is a hard failure of the
// integration step, never silently downgraded to a best-effort estimate.
var ErrQuadNoConverge = errors.New("adaptive quadrature failed to converge")

const (
	// quadOrder is the Gauss-Legendre point count of the base rule, exact
	// for polynomials up to degree 2*quadOrder-1.
	quadOrder = 7
	// quadTol is the acceptance tolerance of the adaptive refinement.
	quadTol = 1.e-10
	// quadMaxDepth bounds the bisection recursion.
	quadMaxDepth = 24
)

// AdaptiveQuad integrates f over [a,b]. A fixed Gauss-Legendre estimate is
// compared against its bisected refinement and the interval is subdivided
// until the two agree to tol.
func AdaptiveQuad(f func(float64) float64, a, b, tol float64) (float64, error) {
	coarse := quad.Fixed(f, a, b, quadOrder, quad.Legendre{}, 0)
	return adaptStep(f, a, b, coarse, tol, quadMaxDepth)
}

func adaptStep(f func(float64) float64, a, b, coarse, tol float64, depth int) (float64, error) {
	var (
		mid   = 0.5 * (a + b)
		left  = quad.Fixed(f, a, mid, quadOrder, quad.Legendre{}, 0)
		right = quad.Fixed(f, mid, b, quadOrder, quad.Legendre{}, 0)
		fine  = left + right
	)
	if math.IsNaN(fine) {
		// The integrand signals evaluation failure through NaN; the caller
		// owns the underlying error.
		return fine, nil
	}
	if math.Abs(fine-coarse) <= tol*math.Max(1, math.Abs(fine)) {
		return fine, nil
	}
	if depth == 0 {
		return fine, fmt.Errorf("%w: interval [%g,%g]", ErrQuadNoConverge, a, b)
	}
	l, err := adaptStep(f, a, mid, left, 0.5*tol, depth-1)
	if err != nil {
		return l, err
	}
	r, err := adaptStep(f, mid, b, right, 0.5*tol, depth-1)
	return l + r, err
}
