package harness

import (
	"os"
	"path"

	"github.com/zeu5/wordle-rl/types"
	"github.com/zeu5/wordle-rl/wordle"
	"golang.org/x/exp/rand"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// GreedyChooser is satisfied by the tabular policies: pick the best
// stored action without exploring.
type GreedyChooser interface {
	GreedyAction(state types.State, actions []types.Action) (types.Action, bool)
}

// greedyPlayer evaluates a trained policy by always exploiting it.
type greedyPlayer struct {
	name    string
	chooser GreedyChooser
}

func NewGreedyPlayer(name string, chooser GreedyChooser) Player {
	return &greedyPlayer{name: name, chooser: chooser}
}

func (p *greedyPlayer) Name() string { return p.name }

func (p *greedyPlayer) NextAction(_ int, state types.State, actions []types.Action) (types.Action, bool) {
	return p.chooser.GreedyAction(state, actions)
}

// strategyPlayer always takes the action of one fixed strategy.
type strategyPlayer struct {
	name string
	hash string
}

func newStrategyPlayer(name string, kind wordle.StrategyKind) Player {
	return &strategyPlayer{
		name: name,
		hash: "strategy:" + kind.String(),
	}
}

func (p *strategyPlayer) Name() string { return p.name }

func (p *strategyPlayer) NextAction(_ int, _ types.State, actions []types.Action) (types.Action, bool) {
	for _, a := range actions {
		if a.Hash() == p.hash {
			return a, true
		}
	}
	if len(actions) == 0 {
		return nil, false
	}
	return actions[0], true
}

// SimplePlayer is the heuristic no-learning baseline: it always filters
// and takes the top-ranked educated pick.
func SimplePlayer() Player {
	return newStrategyPlayer("Simple", wordle.StrategyEducated)
}

// RandomPlayer guesses uniformly from the trimmed candidate pool.
func RandomPlayer() Player {
	return newStrategyPlayer("Random", wordle.StrategyRandom)
}

// randomWordPlayer picks uniformly among literal word actions. Useful
// with ActionSpaceWords environments.
type randomWordPlayer struct {
	rand *rand.Rand
}

func NewRandomWordPlayer(seed uint64) Player {
	return &randomWordPlayer{rand: rand.New(rand.NewSource(seed))}
}

func (p *randomWordPlayer) Name() string { return "RandomWord" }

func (p *randomWordPlayer) NextAction(_ int, _ types.State, actions []types.Action) (types.Action, bool) {
	if len(actions) == 0 {
		return nil, false
	}
	return actions[p.rand.Intn(len(actions))], true
}

// WinRatePlot saves a bar chart of the win rate per player.
func WinRatePlot(savePath string, results []Result) {
	if dir := path.Dir(savePath); dir != "" {
		if _, err := os.Stat(dir); err != nil {
			os.MkdirAll(dir, os.ModePerm)
		}
	}
	values := make(plotter.Values, len(results))
	names := make([]string, len(results))
	for i, r := range results {
		values[i] = r.WinRate
		names[i] = r.Name
	}
	p := plot.New()
	p.Title.Text = "Win rate"
	p.Y.Label.Text = "Fraction solved"
	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return
	}
	p.Add(bars)
	p.NominalX(names...)
	p.Save(6*vg.Inch, 6*vg.Inch, savePath)
}
