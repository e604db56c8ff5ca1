package FEM1D

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/notargets/fem1d/utils"
)

// BCContext carries everything a boundary condition applier may touch: the
// assembled (unconstrained) global system, the equation, the active combined
// basis, and the DOF layout metadata. Each applier reads exactly the fields
// it needs; there is no optional-field lookup.
type BCContext struct {
	N            int       // interior node / element-1 count
	Nodes        []float64 // N+2 mesh nodes
	A            *sparse.DOK
	F            utils.Vector
	ODE          ODE
	Basis        BasisFunc // assembled-DOF basis dispatch (linear then bubble)
	Last         int       // assembled row of the last linear DOF
	BilinearForm BilinearFormFunc
}

// BoundaryCondition is the closed variant set {LeftDirichletBC,
// RightDirichletBC, LeftRobinBC, RightRobinBC}. Apply is called exactly once
// per side per solve, after assembly; left and right appliers touch disjoint
// entries and may run in either order.
type BoundaryCondition interface {
	Apply(ctx *BCContext) error
	fmt.Stringer
}

// LeftDirichletBC prescribes y(0) = G. The boundary DOF is eliminated from
// the system; Apply moves the known boundary contribution to the right hand
// side by coupling the lifting function G·phi_0 against the adjacent free
// basis function (Dirichlet lifting, not row elimination).
type LeftDirichletBC struct {
	G float64
}

func (bc LeftDirichletBC) Apply(ctx *BCContext) error {
	uhat := func(i int, x float64, nodes []float64, deriv bool) (float64, error) {
		p, err := Phi(0, x, nodes, deriv)
		return bc.G * p, err
	}
	w, err := ctx.BilinearForm(uhat, 1, ctx.Basis, 1)
	if err != nil {
		return fmt.Errorf("left dirichlet lifting: %w", err)
	}
	ctx.F.AddVec(0, -w)
	return nil
}

func (bc LeftDirichletBC) String() string {
	return fmt.Sprintf("y(0) = %g", bc.G)
}

// RightDirichletBC prescribes y(1) = G, mirroring LeftDirichletBC at the
// right end.
type RightDirichletBC struct {
	G float64
}

func (bc RightDirichletBC) Apply(ctx *BCContext) error {
	var (
		N = ctx.N
	)
	uhat := func(i int, x float64, nodes []float64, deriv bool) (float64, error) {
		p, err := Phi(N+1, x, nodes, deriv)
		return bc.G * p, err
	}
	w, err := ctx.BilinearForm(uhat, N, ctx.Basis, N)
	if err != nil {
		return fmt.Errorf("right dirichlet lifting: %w", err)
	}
	ctx.F.AddVec(ctx.Last, -w)
	return nil
}

func (bc RightDirichletBC) String() string {
	return fmt.Sprintf("y(1) = %g", bc.G)
}

// LeftRobinBC prescribes -y′(0) + Beta·y(0) = -G (natural boundary term from
// integration by parts; Beta = 0 reduces to a Neumann condition). The
// boundary DOF stays in the system; Apply only adds the boundary correction
// to its diagonal entry and load entry.
type LeftRobinBC struct {
	G, Beta float64
}

func (bc LeftRobinBC) Apply(ctx *BCContext) error {
	a0 := ctx.ODE.A(ctx.Nodes[0])
	ctx.A.Set(0, 0, ctx.A.At(0, 0)-a0*bc.Beta)
	ctx.F.AddVec(0, a0*bc.G)
	return nil
}

func (bc LeftRobinBC) String() string {
	return fmt.Sprintf("-y′(0) + %g·y(0) = %g", bc.Beta, -bc.G)
}

// RightRobinBC prescribes y′(1) + Beta·y(1) = G, mirroring LeftRobinBC with
// the opposite sign on the natural boundary term.
type RightRobinBC struct {
	G, Beta float64
}

func (bc RightRobinBC) Apply(ctx *BCContext) error {
	var (
		last = ctx.Last
		a1   = ctx.ODE.A(ctx.Nodes[len(ctx.Nodes)-1])
	)
	ctx.A.Set(last, last, ctx.A.At(last, last)-a1*bc.Beta)
	ctx.F.AddVec(last, -a1*bc.G)
	return nil
}

func (bc RightRobinBC) String() string {
	return fmt.Sprintf("y′(1) + %g·y(1) = %g", bc.Beta, bc.G)
}
