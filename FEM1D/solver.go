package FEM1D

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/notargets/fem1d/utils"
)

// Solver assembles and solves one finite element discretization of an ODE on
// [0,1]. It is one-shot: configure via NewSolver, call Solve once; a
// parameter change requires a new instance.
//
// DOF layout: linear DOFs come first, in node order, with a side's boundary
// DOF removed when that side is Dirichlet (its value is known). With
// quadratic enrichment active, one bubble DOF per element (N+1 of them)
// follows in element order.
type Solver struct {
	ODE         ODE
	Left, Right BoundaryCondition
	PolyOrder   int // 0 linear only, 1 linear+quadratic enrichment
	N           int // interior node count; N+1 elements
	Nodes       []float64

	quadratic  int // bubble DOF count (0 or N+1)
	startRange int // first free linear basis index (0 or 1)
	linearEnd  int // one past the last free linear basis index
}

func NewSolver(ode ODE, left, right BoundaryCondition, polyOrder, N int) (s *Solver, err error) {
	if N < 1 {
		err = fmt.Errorf("element count N must be positive, got %d", N)
		return
	}
	if polyOrder != 0 && polyOrder != 1 {
		err = fmt.Errorf("polynomial order flag must be 0 (linear) or 1 (linear+quadratic), got %d", polyOrder)
		return
	}
	if ode.A == nil || ode.B == nil || ode.C == nil || ode.F == nil {
		err = fmt.Errorf("ODE descriptor requires all four coefficient functions")
		return
	}
	s = &Solver{
		ODE:       ode,
		Left:      left,
		Right:     right,
		PolyOrder: polyOrder,
		N:         N,
		Nodes:     UniformNodes(N),
		quadratic: polyOrder * (N + 1),
	}
	// A Dirichlet side's boundary DOF is eliminated from the system; a Robin
	// side keeps its boundary DOF as a free unknown.
	s.startRange = 0
	if _, ok := left.(LeftDirichletBC); ok {
		s.startRange = 1
	}
	s.linearEnd = N + 2
	if _, ok := right.(RightDirichletBC); ok {
		s.linearEnd = N + 1
	}
	return
}

// NumDOF is the free DOF count of the assembled system, computable from N,
// the order flag, and the boundary condition kinds alone.
func (s *Solver) NumDOF() int {
	return s.linearEnd - s.startRange + s.quadratic
}

// basis dispatches an assembled-numbering basis index to Phi for linear DOFs
// and to the element bubble Psi beyond them.
func (s *Solver) basis(i int, x float64, nodes []float64, deriv bool) (float64, error) {
	if i < s.linearEnd {
		return Phi(i, x, nodes, deriv)
	}
	return Psi(i+1-s.linearEnd, x, nodes, deriv)
}

// Solve assembles the global stiffness matrix and load vector, applies both
// boundary conditions, and solves the dense linear system. The returned
// vector holds one coefficient per free DOF in assembly order.
//
// The off-diagonal loop pairs consecutive DOFs of the assembled numbering;
// within the linear block those are exactly the geometric element neighbors,
// and across the linear/bubble boundary the honestly integrated coupling of
// disjoint supports contributes zero.
func (s *Solver) Solve() (U utils.Vector, err error) {
	var (
		k  = s.NumDOF()
		wf = WeakForm{ODE: s.ODE, Nodes: s.Nodes}
		A  = sparse.NewDOK(k, k)
		F  = utils.NewVector(k)
		w  float64
	)
	for index := 0; index < k; index++ {
		i := s.startRange + index
		if w, err = wf.BilinearForm(s.basis, i, s.basis, i); err != nil {
			return
		}
		A.Set(index, index, w)
		if index < k-1 {
			if w, err = wf.BilinearForm(s.basis, i+1, s.basis, i); err != nil {
				return
			}
			A.Set(index, index+1, w)
			if w, err = wf.BilinearForm(s.basis, i, s.basis, i+1); err != nil {
				return
			}
			A.Set(index+1, index, w)
		}
		if w, err = wf.LinearFunctional(s.basis, i); err != nil {
			return
		}
		F.SetVec(index, w)
	}

	ctx := &BCContext{
		N:            s.N,
		Nodes:        s.Nodes,
		A:            A,
		F:            F,
		ODE:          s.ODE,
		Basis:        s.basis,
		Last:         s.linearEnd - s.startRange - 1,
		BilinearForm: wf.BilinearForm,
	}
	if err = s.Left.Apply(ctx); err != nil {
		return
	}
	if err = s.Right.Apply(ctx); err != nil {
		return
	}

	U, err = utils.DenseCopy(A).LUSolve(F)
	return
}

// Reconstruct returns the continuous approximation
//
//	u_h(x) = Σ U[k]·basis_k(x)
//
// over the free DOFs, with the known Dirichlet boundary terms added back for
// any side eliminated from the system. U must come from Solve on this
// solver.
func (s *Solver) Reconstruct(U utils.Vector) func(x float64) float64 {
	var (
		nlin = s.linearEnd - s.startRange
	)
	return func(x float64) (approx float64) {
		for index := 0; index < nlin; index++ {
			approx += U.AtVec(index) * s.mustPhi(s.startRange+index, x)
		}
		for j := 1; j <= s.quadratic; j++ {
			p, err := Psi(j, x, s.Nodes, false)
			if err != nil {
				panic(err) // bubble indices are in range by construction
			}
			approx += U.AtVec(nlin+j-1) * p
		}
		if bc, ok := s.Left.(LeftDirichletBC); ok {
			approx += bc.G * s.mustPhi(0, x)
		}
		if bc, ok := s.Right.(RightDirichletBC); ok {
			approx += bc.G * s.mustPhi(s.N+1, x)
		}
		return
	}
}

func (s *Solver) mustPhi(i int, x float64) float64 {
	p, err := Phi(i, x, s.Nodes, false)
	if err != nil {
		panic(err) // linear indices are in range by construction
	}
	return p
}

func (s *Solver) String() string {
	return fmt.Sprintf("%v with %v, %v; N=%d, order=%d", s.ODE, s.Left, s.Right, s.N, s.PolyOrder)
}
