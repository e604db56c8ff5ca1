package model_problems

import (
	"fmt"
	"sync"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/fem1d/FEM1D"
	"github.com/notargets/fem1d/utils"
)

// ReactionDiffusion is the model problem
//
//	-y″ + y = 1   on [0,1]
//
// under whichever boundary conditions and basis order the caller selects.
type ReactionDiffusion struct {
	// Input parameters
	N, PolyOrder int
	Left, Right  FEM1D.BoundaryCondition
	U            utils.Vector
	PlotOnce     sync.Once
	chart        *chart2d.Chart2D
	colorMap     *utils2.ColorMap
}

func NewReactionDiffusion(N, polyOrder int, left, right FEM1D.BoundaryCondition) *ReactionDiffusion {
	return &ReactionDiffusion{
		N:         N,
		PolyOrder: polyOrder,
		Left:      left,
		Right:     right,
	}
}

func (c *ReactionDiffusion) Run(showGraph bool, graphDelay ...time.Duration) {
	var (
		ode = FEM1D.ODE{
			A: func(x float64) float64 { return -1 },
			B: func(x float64) float64 { return 0 },
			C: func(x float64) float64 { return 1 },
			F: func(x float64) float64 { return 1 },
		}
	)
	solver, err := FEM1D.NewSolver(ode, c.Left, c.Right, c.PolyOrder, c.N)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%v\n", solver)
	if c.U, err = solver.Solve(); err != nil {
		panic(err)
	}
	fmt.Printf("U = \n%v\n", c.U)
	fmt.Printf("Umin, Umax = %8.5f, %8.5f\n", c.U.Min(), c.U.Max())
	xs, ys := SampleSolution(solver.Reconstruct(c.U), 200)
	c.Plot(showGraph, graphDelay, xs, ys)
}

func (c *ReactionDiffusion) Plot(showGraph bool, graphDelay []time.Duration, xs, ys []float64) {
	var (
		pMin, pMax = float32(-1), float32(1)
	)
	if !showGraph {
		return
	}
	c.PlotOnce.Do(func() {
		c.chart = chart2d.NewChart2D(1280, 1024, 0, 1, pMin, pMax)
		c.colorMap = utils2.NewColorMap(-1, 1, 1)
		go c.chart.Plot()
	})

	if err := c.chart.AddSeries("U", xs, ys,
		chart2d.NoGlyph, chart2d.Solid, c.colorMap.GetRGB(0)); err != nil {
		panic("unable to add graph series")
	}
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}

// SampleSolution evaluates the reconstructed approximation on nsamp evenly
// spaced points over [0,1].
func SampleSolution(uh func(float64) float64, nsamp int) (xs, ys []float64) {
	xs = make([]float64, nsamp)
	ys = make([]float64, nsamp)
	for i := range xs {
		x := float64(i) / float64(nsamp-1)
		xs[i] = x
		ys[i] = uh(x)
	}
	return
}
