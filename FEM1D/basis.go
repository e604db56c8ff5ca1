package FEM1D

import (
	"errors"
	"fmt"
)

// ErrBasisIndex reports a basis function evaluated at an index outside its
// valid range. It signals an assembly bug in the caller, never a boundary
// case of a well-posed problem.
var ErrBasisIndex = errors.New("basis function index out of range")

// BasisFunc evaluates one member of a finite element basis, or its
// derivative, at point x against the mesh node array. Phi, Psi and the
// boundary lifting functions all share this signature so the weak form
// integrals can take any of them as test or trial operand.
type BasisFunc func(i int, x float64, nodes []float64, deriv bool) (float64, error)

// Phi is the piecewise linear "hat" basis. For interior i it equals 1 at
// nodes[i], falls linearly to 0 at nodes[i-1] and nodes[i+1], and vanishes
// outside that support. i = 0 and i = N+1 are the half hats at the domain
// ends. The segment tests are closed on the left segment and half open on
// the right so that exactly one formula is active at a shared node.
func Phi(i int, x float64, nodes []float64, deriv bool) (v float64, err error) {
	var (
		N = len(nodes) - 2
		h = 1. / float64(N+1)
	)
	if i < 0 || i > N+1 {
		err = fmt.Errorf("%w: phi index must be between 0 and %d, got %d", ErrBasisIndex, N+1, i)
		return
	}
	if !deriv {
		switch {
		case i == 0:
			if nodes[0] <= x && x <= nodes[1] {
				v = 1 - (x-nodes[0])/h
			}
		case i == N+1:
			if nodes[N] <= x && x <= nodes[N+1] {
				v = 1 + (x-nodes[N+1])/h
			}
		default:
			if nodes[i-1] <= x && x <= nodes[i] {
				v = 1 + (x-nodes[i])/h
			} else if nodes[i] < x && x <= nodes[i+1] {
				v = 1 - (x-nodes[i])/h
			}
		}
		return
	}
	switch {
	case i == 0:
		if nodes[0] <= x && x <= nodes[1] {
			v = -1 / h
		}
	case i == N+1:
		if nodes[N] <= x && x <= nodes[N+1] {
			v = 1 / h
		}
	default:
		if nodes[i-1] <= x && x <= nodes[i] {
			v = 1 / h
		} else if nodes[i] < x && x <= nodes[i+1] {
			v = -1 / h
		}
	}
	return
}

// Psi is the quadratic "bubble" basis, local to the single element
// [nodes[i-1], nodes[i]] and zero valued at both element endpoints. It is an
// enrichment function only and never carries a boundary DOF. Note it is not
// normalized to a unit peak.
func Psi(i int, x float64, nodes []float64, deriv bool) (v float64, err error) {
	var (
		N = len(nodes) - 2
	)
	if i < 1 || i > N+1 {
		err = fmt.Errorf("%w: psi index must be between 1 and %d, got %d", ErrBasisIndex, N+1, i)
		return
	}
	if nodes[i-1] <= x && x <= nodes[i] {
		if !deriv {
			v = (x - nodes[i-1]) * (x - nodes[i]) / 2
		} else {
			v = x - (nodes[i-1]+nodes[i])/2
		}
	}
	return
}

// UniformNodes returns the N+2 uniformly spaced mesh nodes on [0,1]: N
// interior nodes plus the two boundary nodes.
func UniformNodes(N int) (nodes []float64) {
	var (
		h = 1. / float64(N+1)
	)
	nodes = make([]float64, N+2)
	for i := range nodes {
		nodes[i] = float64(i) * h
	}
	nodes[N+1] = 1
	return
}
