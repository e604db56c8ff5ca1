package FEM1D

import "math"

// BilinearFormFunc is the signature of the stiffness pairing shared between
// the assembler and the boundary condition appliers, which need it to couple
// a Dirichlet lifting function against a free basis function.
type BilinearFormFunc func(u BasisFunc, i int, v BasisFunc, j int) (float64, error)

// WeakForm integrates the variational pairings of one ODE over a fixed node
// array. Integration runs panel by panel over the mesh elements, so the only
// non-smooth points of the piecewise integrands (the element junctions) fall
// on panel boundaries, and each panel is handled by adaptive quadrature.
type WeakForm struct {
	ODE   ODE
	Nodes []float64
}

// BilinearForm integrates
//
//	-a(x)·u_i′(x)·v_j′(x) + b(x)·u_i′(x)·v_j(x) + c(x)·u_i(x)·v_j(x)
//
// over [0,1]. u and v may be different callables; the Dirichlet appliers pass
// a lifting function as u.
func (wf WeakForm) BilinearForm(u BasisFunc, i int, v BasisFunc, j int) (W float64, err error) {
	var evalErr error
	integrand := func(x float64) float64 {
		du, err1 := u(i, x, wf.Nodes, true)
		ui, err2 := u(i, x, wf.Nodes, false)
		dv, err3 := v(j, x, wf.Nodes, true)
		vj, err4 := v(j, x, wf.Nodes, false)
		for _, e := range []error{err1, err2, err3, err4} {
			if e != nil {
				if evalErr == nil {
					evalErr = e
				}
				return math.NaN()
			}
		}
		return -wf.ODE.A(x)*du*dv + wf.ODE.B(x)*du*vj + wf.ODE.C(x)*ui*vj
	}
	W, err = wf.integrate(integrand, &evalErr)
	return
}

// LinearFunctional integrates f(x)·v_i(x) over [0,1].
func (wf WeakForm) LinearFunctional(v BasisFunc, i int) (W float64, err error) {
	var evalErr error
	integrand := func(x float64) float64 {
		vi, e := v(i, x, wf.Nodes, false)
		if e != nil {
			if evalErr == nil {
				evalErr = e
			}
			return math.NaN()
		}
		return wf.ODE.F(x) * vi
	}
	W, err = wf.integrate(integrand, &evalErr)
	return
}

func (wf WeakForm) integrate(integrand func(float64) float64, evalErr *error) (total float64, err error) {
	var (
		panel float64
	)
	for k := 1; k < len(wf.Nodes); k++ {
		panel, err = AdaptiveQuad(integrand, wf.Nodes[k-1], wf.Nodes[k], quadTol)
		if *evalErr != nil {
			return 0, *evalErr
		}
		if err != nil {
			return 0, err
		}
		total += panel
	}
	return
}
