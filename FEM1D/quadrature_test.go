package FEM1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdaptiveQuad(t *testing.T) {
	// Polynomial, exact for the base rule
	v, err := AdaptiveQuad(func(x float64) float64 { return x * x * x * x * x }, 0, 1, quadTol)
	require.NoError(t, err)
	assert.True(t, near(v, 1./6))

	// Smooth transcendental
	v, err = AdaptiveQuad(math.Sin, 0, math.Pi, quadTol)
	require.NoError(t, err)
	assert.InDelta(t, 2, v, 1.e-10)

	// Narrow Gaussian needle forces subdivision
	a := 1000.
	v, err = AdaptiveQuad(func(x float64) float64 {
		d := x - 0.5
		return math.Exp(-a * d * d)
	}, 0, 1, quadTol)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(math.Pi/a)*math.Erf(0.5*math.Sqrt(a)), v, 1.e-9)

	// Piecewise-linear kink handled by refinement
	v, err = AdaptiveQuad(func(x float64) float64 { return math.Abs(x - 0.3) }, 0, 1, quadTol)
	require.NoError(t, err)
	assert.InDelta(t, (0.3*0.3+0.7*0.7)/2, v, 1.e-8)
}

func TestWeakFormPropagatesBasisErrors(t *testing.T) {
	var (
		nodes = UniformNodes(4)
		one   = func(x float64) float64 { return 1 }
		wf    = WeakForm{ODE: ODE{A: one, B: one, C: one, F: one}, Nodes: nodes}
	)
	_, err := wf.BilinearForm(Phi, 42, Phi, 1)
	assert.ErrorIs(t, err, ErrBasisIndex)
	_, err = wf.BilinearForm(Phi, 1, Psi, 0)
	assert.ErrorIs(t, err, ErrBasisIndex)
	_, err = wf.LinearFunctional(Psi, 17)
	assert.ErrorIs(t, err, ErrBasisIndex)
}

func TestWeakFormEntries(t *testing.T) {
	var (
		N     = 9
		nodes = UniformNodes(N)
		h     = 1. / float64(N+1)
		wf    = WeakForm{
			ODE: ODE{
				A: func(x float64) float64 { return -1 },
				B: func(x float64) float64 { return 0 },
				C: func(x float64) float64 { return 1 },
				F: func(x float64) float64 { return 1 },
			},
			Nodes: nodes,
		}
	)
	// -a·phi'·phi' + c·phi·phi over the two-element support:
	// 2/h + 2h/3 on the diagonal, -1/h + h/6 off it.
	w, err := wf.BilinearForm(Phi, 3, Phi, 3)
	require.NoError(t, err)
	assert.True(t, near(w, 2/h+2*h/3))
	w, err = wf.BilinearForm(Phi, 3, Phi, 4)
	require.NoError(t, err)
	assert.True(t, near(w, -1/h+h/6))
	// Disjoint supports integrate to zero
	w, err = wf.BilinearForm(Phi, 1, Phi, 5)
	require.NoError(t, err)
	assert.True(t, near(w, 0))
	// Load entry: integral of the hat is h
	w, err = wf.LinearFunctional(Phi, 3)
	require.NoError(t, err)
	assert.True(t, near(w, h))
}
