package model_problems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/fem1d/FEM1D"
)

func TestReactionDiffusionRun(t *testing.T) {
	c := NewReactionDiffusion(9, 0,
		FEM1D.LeftDirichletBC{G: 0}, FEM1D.RightDirichletBC{G: 0})
	c.Run(false)
	require.Equal(t, 9, c.U.Len())
	// Symmetric problem, symmetric solution
	assert.InDelta(t, c.U.AtVec(0), c.U.AtVec(8), 1.e-9)
	assert.InDelta(t, 0.1132666, c.U.AtVec(4), 1.e-6)
}

func TestConvectionDiffusionRun(t *testing.T) {
	c := NewConvectionDiffusion(19, 0, 10)
	c.Run(false)
	require.Equal(t, 19, c.U.Len())
	// Boundary layer: solution rises toward the right end before dropping
	// to the Dirichlet value.
	assert.Greater(t, c.U.Max(), 0.5)
	assert.InDelta(t, c.U.Max(), c.U.AtVec(17), c.U.Max()*0.5)
}

func TestSampleSolution(t *testing.T) {
	xs, ys := SampleSolution(func(x float64) float64 { return 2 * x }, 101)
	assert.Equal(t, 101, len(xs))
	assert.InDelta(t, 0, xs[0], 1.e-12)
	assert.InDelta(t, 1, xs[100], 1.e-12)
	assert.InDelta(t, 1, ys[50], 1.e-9)
}
