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

// ConvectionDiffusion is the convection dominated model problem
//
//	-(1/Pe)·y″ + y′ = 1   on [0,1],   y(0) = y(1) = 0
//
// which develops a boundary layer of width ~1/Pe at the right end. It
// exercises the transport term b(x) that makes the stiffness matrix
// nonsymmetric.
type ConvectionDiffusion struct {
	// Input parameters
	N, PolyOrder int
	Peclet       float64
	U            utils.Vector
	PlotOnce     sync.Once
	chart        *chart2d.Chart2D
	colorMap     *utils2.ColorMap
}

func NewConvectionDiffusion(N, polyOrder int, peclet float64) *ConvectionDiffusion {
	if peclet == 0 {
		peclet = 10
	}
	return &ConvectionDiffusion{
		N:         N,
		PolyOrder: polyOrder,
		Peclet:    peclet,
	}
}

func (c *ConvectionDiffusion) Run(showGraph bool, graphDelay ...time.Duration) {
	var (
		ode = FEM1D.ODE{
			A: func(x float64) float64 { return -1 / c.Peclet },
			B: func(x float64) float64 { return 1 },
			C: func(x float64) float64 { return 0 },
			F: func(x float64) float64 { return 1 },
		}
	)
	solver, err := FEM1D.NewSolver(ode,
		FEM1D.LeftDirichletBC{G: 0}, FEM1D.RightDirichletBC{G: 0}, c.PolyOrder, c.N)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%v, Pe = %g\n", solver, c.Peclet)
	if c.U, err = solver.Solve(); err != nil {
		panic(err)
	}
	fmt.Printf("U = \n%v\n", c.U)
	fmt.Printf("Umin, Umax = %8.5f, %8.5f\n", c.U.Min(), c.U.Max())
	xs, ys := SampleSolution(solver.Reconstruct(c.U), 200)
	c.Plot(showGraph, graphDelay, xs, ys)
}

func (c *ConvectionDiffusion) Plot(showGraph bool, graphDelay []time.Duration, xs, ys []float64) {
	if !showGraph {
		return
	}
	c.PlotOnce.Do(func() {
		c.chart = chart2d.NewChart2D(1280, 1024, 0, 1, float32(c.U.Min()), float32(c.U.Max()))
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
