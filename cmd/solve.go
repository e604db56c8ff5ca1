/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/fem1d/FEM1D"
	"github.com/notargets/fem1d/InputParameters"
	"github.com/notargets/fem1d/model_problems"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "One Dimensional Finite Element ODE Solutions",
	Long: `
Assembles and solves a model problem, or a problem described by a YAML file,

fem1d solve`,
	Run: func(cmd *cobra.Command, args []string) {
		m1d := &Model1D{}
		mr, _ := cmd.Flags().GetInt("model")
		m1d.ModelRun = ModelType1D(mr)
		m1d.N, _ = cmd.Flags().GetInt("n")
		m1d.PolyOrder, _ = cmd.Flags().GetInt("order")
		m1d.Peclet, _ = cmd.Flags().GetFloat64("peclet")
		m1d.Graph, _ = cmd.Flags().GetBool("graph")
		delay, _ := cmd.Flags().GetInt("delay")
		m1d.Delay = time.Duration(delay)
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		if fileName, _ := cmd.Flags().GetString("file"); fileName != "" {
			RunFile(fileName, m1d)
			return
		}
		Run1D(m1d)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntP("model", "m", int(M_Dirichlet), "model to run: 0 = Dirichlet, 1 = Dirichlet+bubbles, 2 = Robin, 3 = Mixed Robin/Dirichlet, 4 = Convection")
	solveCmd.Flags().IntP("n", "n", 9, "number of interior mesh nodes")
	solveCmd.Flags().IntP("order", "o", 0, "polynomial order flag: 0 = linear, 1 = linear+quadratic enrichment")
	solveCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	solveCmd.Flags().Float64("peclet", 10, "Peclet number (convection model only)")
	solveCmd.Flags().BoolP("graph", "g", false, "display a graph of the solution")
	solveCmd.Flags().StringP("file", "f", "", "YAML problem definition file")
	solveCmd.Flags().Bool("profile", false, "write a CPU profile of the solve")
}

type Model1D struct {
	N, PolyOrder int
	Delay        time.Duration
	ModelRun     ModelType1D
	Peclet       float64
	Graph        bool
}

type ModelType1D uint8

const (
	M_Dirichlet ModelType1D = iota
	M_DirichletEnriched
	M_Robin
	M_Mixed
	M_Convection
)

type Model interface {
	Run(graph bool, graphDelay ...time.Duration)
}

func Run1D(m1d *Model1D) {
	var C Model
	switch m1d.ModelRun {
	case M_DirichletEnriched:
		C = model_problems.NewReactionDiffusion(m1d.N, 1,
			FEM1D.LeftDirichletBC{G: 0}, FEM1D.RightDirichletBC{G: 0})
	case M_Robin:
		C = model_problems.NewReactionDiffusion(m1d.N, m1d.PolyOrder,
			FEM1D.LeftRobinBC{G: 1, Beta: 1}, FEM1D.RightRobinBC{G: 0, Beta: 1})
	case M_Mixed:
		C = model_problems.NewReactionDiffusion(m1d.N, m1d.PolyOrder,
			FEM1D.LeftRobinBC{G: 2, Beta: 0}, FEM1D.RightDirichletBC{G: 5})
	case M_Convection:
		C = model_problems.NewConvectionDiffusion(m1d.N, m1d.PolyOrder, m1d.Peclet)
	case M_Dirichlet:
		fallthrough
	default:
		C = model_problems.NewReactionDiffusion(m1d.N, m1d.PolyOrder,
			FEM1D.LeftDirichletBC{G: 0}, FEM1D.RightDirichletBC{G: 0})
	}
	C.Run(m1d.Graph, m1d.Delay*time.Millisecond)
}

func RunFile(fileName string, m1d *Model1D) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	var pp InputParameters.ProblemParameters1D
	if err = pp.Parse(data); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	pp.Print()
	solver, err := pp.Solver()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	U, err := solver.Solve()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Printf("U = \n%v\n", U)
	if m1d.Graph {
		xs, ys := model_problems.SampleSolution(solver.Reconstruct(U), 200)
		plotSeries(xs, ys, m1d.Delay*time.Millisecond)
	}
}
