package FEM1D

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/fem1d/utils"
)

// reactionODE is -y″ + y = 1 on [0,1].
func reactionODE() ODE {
	return ODE{
		A: func(x float64) float64 { return -1 },
		B: func(x float64) float64 { return 0 },
		C: func(x float64) float64 { return 1 },
		F: func(x float64) float64 { return 1 },
	}
}

func TestSolveDirichletLinear(t *testing.T) {
	s, err := NewSolver(reactionODE(),
		LeftDirichletBC{G: 0}, RightDirichletBC{G: 0}, 0, 9)
	require.NoError(t, err)
	assert.Equal(t, 9, s.NumDOF())

	U, err := s.Solve()
	require.NoError(t, err)
	expected := []float64{
		0.04131624, 0.07302963, 0.09545784, 0.10882553, 0.1132666,
		0.10882553, 0.09545784, 0.07302963, 0.04131624,
	}
	assert.InDeltaSlice(t, expected, U.DataP(), 1.e-6)
}

func TestSolveDirichletEnriched(t *testing.T) {
	s, err := NewSolver(reactionODE(),
		LeftDirichletBC{G: 0}, RightDirichletBC{G: 0}, 1, 9)
	require.NoError(t, err)
	assert.Equal(t, 19, s.NumDOF())

	U, err := s.Solve()
	require.NoError(t, err)
	expected := []float64{
		0.04131624, 0.07302963, 0.09545784, 0.10882553, 0.1132666,
		0.10882553, 0.09545784, 0.07302963, 0.04131624,
		-0.99900117, -0.99900016, -0.99900104, -0.99900016, -0.99900117,
		-0.99900117, -0.99900016, -0.99900104, -0.99900016, -0.99900117,
	}
	assert.InDeltaSlice(t, expected, U.DataP(), 1.e-6)
}

func TestSolveRobinBothSides(t *testing.T) {
	s, err := NewSolver(reactionODE(),
		LeftRobinBC{G: 1, Beta: 1}, RightRobinBC{G: 0, Beta: 1}, 0, 9)
	require.NoError(t, err)
	assert.Equal(t, 11, s.NumDOF())

	U, err := s.Solve()
	require.NoError(t, err)
	expected := []float64{
		-0.18368291, -0.10784322, -0.04310046, 0.01119389, 0.05558367,
		0.09051352, 0.11633332, 0.1333017, 0.14158863, 0.14127712,
		0.13236404,
	}
	assert.InDeltaSlice(t, expected, U.DataP(), 1.e-6)
}

func TestSolveMixedRobinDirichlet(t *testing.T) {
	s, err := NewSolver(reactionODE(),
		LeftRobinBC{G: 2, Beta: 0}, RightDirichletBC{G: 5}, 0, 9)
	require.NoError(t, err)
	assert.Equal(t, 10, s.NumDOF())

	U, err := s.Solve()
	require.NoError(t, err)
	expected := []float64{
		2.06848945, 2.27417471, 2.49262298, 2.72602241, 2.97671087,
		3.24719944, 3.54019752, 3.85863999, 4.20571657, 4.58490384,
	}
	assert.InDeltaSlice(t, expected, U.DataP(), 1.e-6)
}

func TestReconstructRoundTrip(t *testing.T) {
	s, err := NewSolver(reactionODE(),
		LeftDirichletBC{G: 0}, RightDirichletBC{G: 0}, 0, 9)
	require.NoError(t, err)
	U, err := s.Solve()
	require.NoError(t, err)

	uh := s.Reconstruct(U)
	// Evaluating at a mesh node reproduces that node's coefficient
	for i := 0; i < U.Len(); i++ {
		assert.InDelta(t, U.AtVec(i), uh(s.Nodes[i+1]), 1.e-9)
	}
	// Eliminated Dirichlet values are added back at the boundary
	assert.InDelta(t, 0, uh(0), 1.e-9)
	assert.InDelta(t, 0, uh(1), 1.e-9)
}

func TestReconstructMixed(t *testing.T) {
	s, err := NewSolver(reactionODE(),
		LeftRobinBC{G: 2, Beta: 0}, RightDirichletBC{G: 5}, 0, 9)
	require.NoError(t, err)
	U, err := s.Solve()
	require.NoError(t, err)

	uh := s.Reconstruct(U)
	// Left boundary DOF was retained; right was eliminated to its
	// prescribed value.
	assert.InDelta(t, U.AtVec(0), uh(0), 1.e-9)
	assert.InDelta(t, 5, uh(1), 1.e-9)
}

func TestSolverConfigErrors(t *testing.T) {
	_, err := NewSolver(reactionODE(), LeftDirichletBC{}, RightDirichletBC{}, 0, 0)
	assert.Error(t, err)
	_, err = NewSolver(reactionODE(), LeftDirichletBC{}, RightDirichletBC{}, 2, 9)
	assert.Error(t, err)
	_, err = NewSolver(ODE{}, LeftDirichletBC{}, RightDirichletBC{}, 0, 9)
	assert.Error(t, err)
}

func TestSolveSingularSystem(t *testing.T) {
	// A zero equation assembles a zero stiffness matrix.
	zero := func(x float64) float64 { return 0 }
	s, err := NewSolver(ODE{A: zero, B: zero, C: zero, F: zero},
		LeftDirichletBC{G: 0}, RightDirichletBC{G: 0}, 0, 3)
	require.NoError(t, err)
	_, err = s.Solve()
	assert.ErrorIs(t, err, utils.ErrSingular)
}
