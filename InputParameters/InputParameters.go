package InputParameters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/fem1d/FEM1D"
)

// Parameters obtained from the YAML input file. The four equation
// coefficients are polynomials in x, listed lowest order first, so that a
// problem file fully determines the equation
//
//	a(x)·y″ + b(x)·y′ + c(x)·y = f(x)   on [0,1]
type ProblemParameters1D struct {
	Title           string                  `yaml:"Title"`
	N               int                     `yaml:"N"`
	PolynomialOrder int                     `yaml:"PolynomialOrder"`
	A               []float64               `yaml:"A"`
	B               []float64               `yaml:"B"`
	C               []float64               `yaml:"C"`
	F               []float64               `yaml:"F"`
	BCs             map[string]BCParameters `yaml:"BCs"` // keys "Left" and "Right"
}

// BCParameters describes one side's boundary condition.
type BCParameters struct {
	Type string  `yaml:"Type"` // "Dirichlet" or "Robin"
	G    float64 `yaml:"G"`
	Beta float64 `yaml:"Beta"`
}

func (pp *ProblemParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, pp)
}

func (pp *ProblemParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", pp.Title)
	fmt.Printf("%d\t\t\t\t= N\n", pp.N)
	fmt.Printf("[%d]\t\t\t\t= Polynomial Order\n", pp.PolynomialOrder)
	fmt.Printf("%s = f,\twhere f = %s\n", equationString(pp.A, pp.B, pp.C), polyString(pp.F))
	keys := make([]string, len(pp.BCs))
	i := 0
	for k := range pp.BCs {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("BCs[%s] = %v\n", key, pp.BCs[key])
	}
}

// Solver validates the parameters and builds the configured FEM1D solver.
func (pp *ProblemParameters1D) Solver() (*FEM1D.Solver, error) {
	ode := FEM1D.ODE{
		A: Polynomial(pp.A),
		B: Polynomial(pp.B),
		C: Polynomial(pp.C),
		F: Polynomial(pp.F),
	}
	left, err := pp.boundary("Left")
	if err != nil {
		return nil, err
	}
	right, err := pp.boundary("Right")
	if err != nil {
		return nil, err
	}
	return FEM1D.NewSolver(ode, left, right, pp.PolynomialOrder, pp.N)
}

func (pp *ProblemParameters1D) boundary(side string) (FEM1D.BoundaryCondition, error) {
	bp, ok := pp.BCs[side]
	if !ok {
		return nil, fmt.Errorf("missing BCs[%s] in problem parameters", side)
	}
	switch {
	case side == "Left" && bp.Type == "Dirichlet":
		return FEM1D.LeftDirichletBC{G: bp.G}, nil
	case side == "Left" && bp.Type == "Robin":
		return FEM1D.LeftRobinBC{G: bp.G, Beta: bp.Beta}, nil
	case side == "Right" && bp.Type == "Dirichlet":
		return FEM1D.RightDirichletBC{G: bp.G}, nil
	case side == "Right" && bp.Type == "Robin":
		return FEM1D.RightRobinBC{G: bp.G, Beta: bp.Beta}, nil
	}
	return nil, fmt.Errorf("unknown boundary condition type %q for side %s", bp.Type, side)
}

// Polynomial returns the evaluation function of the coefficient list, lowest
// order first, via Horner's scheme. An empty list is the zero function.
func Polynomial(coeffs []float64) FEM1D.CoeffFunc {
	return func(x float64) (v float64) {
		for i := len(coeffs) - 1; i >= 0; i-- {
			v = v*x + coeffs[i]
		}
		return
	}
}

func equationString(a, b, c []float64) string {
	return fmt.Sprintf("(%s)·y″ + (%s)·y′ + (%s)·y", polyString(a), polyString(b), polyString(c))
}

func polyString(coeffs []float64) string {
	if len(coeffs) == 0 {
		return "0"
	}
	terms := make([]string, 0, len(coeffs))
	for i, cf := range coeffs {
		if cf == 0 && len(coeffs) > 1 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, fmt.Sprintf("%g", cf))
		case 1:
			terms = append(terms, fmt.Sprintf("%g·x", cf))
		default:
			terms = append(terms, fmt.Sprintf("%g·x^%d", cf, i))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}
