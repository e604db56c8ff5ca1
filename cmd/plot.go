package cmd

import (
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
)

func plotSeries(xs, ys []float64, delay time.Duration) {
	var (
		yMin, yMax = ys[0], ys[0]
	)
	for _, y := range ys {
		if y < yMin {
			yMin = y
		}
		if y > yMax {
			yMax = y
		}
	}
	chart := chart2d.NewChart2D(1280, 1024, 0, 1, float32(yMin), float32(yMax))
	colorMap := utils2.NewColorMap(-1, 1, 1)
	go chart.Plot()
	if err := chart.AddSeries("U", xs, ys,
		chart2d.NoGlyph, chart2d.Solid, colorMap.GetRGB(0)); err != nil {
		panic("unable to add graph series")
	}
	time.Sleep(delay)
}
