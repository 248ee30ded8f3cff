package renderer

import (
	"fmt"
	"math"
	"strconv"

	"github.com/etnz/montecarlo"
	"github.com/vicanso/go-charts/v2"
)

// maxTrajectorySeries caps the number of trial lines plotted. Beyond that the
// fan is visually saturated and the PNG just gets heavier.
const maxTrajectorySeries = 200

// TrajectoryChart renders the simulated portfolio growth over time as a PNG.
// Each plotted line is one trial, expressed as growth in percent of the
// initial investment.
func TrajectoryChart(matrix montecarlo.TrialMatrix, initial float64) ([]byte, error) {
	if len(matrix) == 0 || initial == 0 {
		return nil, fmt.Errorf("trajectory chart: no trials to plot")
	}

	n := len(matrix)
	if n > maxTrajectorySeries {
		n = maxTrajectorySeries
	}
	years := len(matrix[0]) - 1

	values := make([][]float64, 0, n)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, traj := range matrix[:n] {
		growth := make([]float64, len(traj))
		for i, v := range traj {
			g := (v - initial) / initial * 100
			growth[i] = g
			if g < yMin {
				yMin = g
			}
			if g > yMax {
				yMax = g
			}
		}
		values = append(values, growth)
	}

	labels := make([]string, years+1)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}

	pad := (yMax - yMin) * 0.05
	yMin -= pad
	yMax += pad

	painter, err := charts.LineRender(values,
		charts.TitleTextOptionFunc(fmt.Sprintf("Portfolio Growth • %d trials • %d years", len(matrix), years)),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: 1}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(1000),
		charts.HeightOptionFunc(600),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// histogramBins is the bucket count for the final growth histogram.
const histogramBins = 40

// HistogramChart renders the distribution of final growth values as a PNG bar
// chart. Bar heights are the share of trials falling in each bucket, in
// percent.
func HistogramChart(dist montecarlo.GrowthDistribution) ([]byte, error) {
	if len(dist) == 0 {
		return nil, fmt.Errorf("histogram chart: empty distribution")
	}

	lo, hi := dist[0], dist[0]
	for _, g := range dist {
		if g < lo {
			lo = g
		}
		if g > hi {
			hi = g
		}
	}
	width := (hi - lo) / histogramBins
	if width == 0 {
		width = 1
	}

	freq := make([]float64, histogramBins)
	for _, g := range dist {
		i := int((g - lo) / width)
		if i >= histogramBins {
			i = histogramBins - 1
		}
		freq[i] += 100 / float64(len(dist))
	}

	labels := make([]string, histogramBins)
	for i := range labels {
		labels[i] = fmt.Sprintf("%.0f%%", lo+(float64(i)+0.5)*width)
	}

	painter, err := charts.BarRender([][]float64{freq},
		charts.TitleTextOptionFunc(fmt.Sprintf("Final Growth Distribution • %d trials", len(dist))),
		charts.XAxisDataOptionFunc(labels),
		charts.YAxisOptionFunc(charts.YAxisOption{DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(1000),
		charts.HeightOptionFunc(600),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}
