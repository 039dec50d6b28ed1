package types

import (
	"os"
	"path"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Generic Dataset that contains information after processing the traces
type DataSet interface{}

// Analyzer compresses the information in the traces to a DataSet
type Analyzer interface {
	// Run, episode, experiment name, trace
	Analyze(int, int, string, *Trace)
	// Resulting dataset
	DataSet() DataSet
	// Reset the analyzer
	Reset()
}

// Comparator differentiates between datasets with associated names
// run, episodes, experiment names, datasets
type Comparator func(int, int, []string, []DataSet)

func NoopComparator() Comparator {
	return func(_, _ int, _ []string, _ []DataSet) {}
}

// CoverageAnalyzer counts the unique abstract states visited over the
// course of an experiment.
type CoverageAnalyzer struct {
	uniqueStates map[string]bool
	series       []int
}

var _ Analyzer = &CoverageAnalyzer{}

func NewCoverageAnalyzer() *CoverageAnalyzer {
	return &CoverageAnalyzer{
		uniqueStates: make(map[string]bool),
		series:       make([]int, 0),
	}
}

func (c *CoverageAnalyzer) Analyze(run, episode int, name string, trace *Trace) {
	for i := 0; i < trace.Len(); i++ {
		_, _, next, _ := trace.Get(i)
		c.uniqueStates[next.Hash()] = true
	}
	c.series = append(c.series, len(c.uniqueStates))
}

func (c *CoverageAnalyzer) DataSet() DataSet {
	out := make([]int, len(c.series))
	copy(out, c.series)
	return out
}

func (c *CoverageAnalyzer) Reset() {
	c.uniqueStates = make(map[string]bool)
	c.series = make([]int, 0)
}

// CoveragePlotter returns a comparator that plots the coverage series of
// each experiment as one line per experiment.
func CoveragePlotter(plotPath string) Comparator {
	return func(run, _ int, names []string, ds []DataSet) {
		series := make([][]float64, len(ds))
		for i, d := range ds {
			counts := d.([]int)
			series[i] = make([]float64, len(counts))
			for j, v := range counts {
				series[i][j] = float64(v)
			}
		}
		LinePlot(path.Join(plotPath, strconv.Itoa(run)+"_coverage.png"),
			"States covered", "Episode", "Unique states", names, series)
	}
}

// LinePlot renders one line per named series and saves the figure.
// Errors are swallowed, plots are best-effort reporting.
func LinePlot(savePath, title, xLabel, yLabel string, names []string, series [][]float64) {
	if dir := path.Dir(savePath); dir != "" {
		if _, err := os.Stat(dir); err != nil {
			os.MkdirAll(dir, os.ModePerm)
		}
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	for i := range series {
		points := make(plotter.XYs, len(series[i]))
		for j, v := range series[i] {
			points[j] = plotter.XY{X: float64(j), Y: v}
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			continue
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(names[i], line)
	}
	p.Save(8*vg.Inch, 8*vg.Inch, savePath)
}
