package wordle

import (
	"path"
	"strconv"

	"github.com/zeu5/wordle-rl/types"
)

// OutcomeDataSet summarizes the episodes of one experiment run.
type OutcomeDataSet struct {
	Wins      int
	Episodes  int
	WinRate   float64
	Guesses   []int     // guesses used per episode
	SolveRate []float64 // rolling solve rate, one sample per episode
}

// OutcomeAnalyzer extracts win/loss and guesses used from every trace.
type OutcomeAnalyzer struct {
	wins     int
	episodes int
	guesses  []int
	rate     []float64
}

var _ types.Analyzer = &OutcomeAnalyzer{}

func NewOutcomeAnalyzer() *OutcomeAnalyzer {
	return &OutcomeAnalyzer{
		guesses: make([]int, 0),
		rate:    make([]float64, 0),
	}
}

func (o *OutcomeAnalyzer) Analyze(run, episode int, name string, trace *types.Trace) {
	o.episodes += 1
	o.guesses = append(o.guesses, trace.Len())
	if _, _, last, ok := trace.Last(); ok {
		if s, ok := last.(*GameState); ok && s.Outcome == OutcomeSolved {
			o.wins += 1
		}
	}
	o.rate = append(o.rate, float64(o.wins)/float64(o.episodes))
}

func (o *OutcomeAnalyzer) DataSet() types.DataSet {
	ds := &OutcomeDataSet{
		Wins:      o.wins,
		Episodes:  o.episodes,
		Guesses:   append([]int(nil), o.guesses...),
		SolveRate: append([]float64(nil), o.rate...),
	}
	if o.episodes > 0 {
		ds.WinRate = float64(o.wins) / float64(o.episodes)
	}
	return ds
}

func (o *OutcomeAnalyzer) Reset() {
	o.wins = 0
	o.episodes = 0
	o.guesses = o.guesses[:0]
	o.rate = o.rate[:0]
}

// SolveRatePlotter plots the rolling solve rate of each experiment.
func SolveRatePlotter(plotPath string) types.Comparator {
	return func(run, _ int, names []string, ds []types.DataSet) {
		series := make([][]float64, len(ds))
		for i, d := range ds {
			series[i] = d.(*OutcomeDataSet).SolveRate
		}
		types.LinePlot(path.Join(plotPath, strconv.Itoa(run)+"_solve_rate.png"),
			"Solve rate", "Episode", "Fraction solved", names, series)
	}
}
