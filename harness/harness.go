package harness

import (
	"fmt"
	"sort"

	"github.com/zeu5/wordle-rl/types"
	"github.com/zeu5/wordle-rl/wordle"
)

// Player selects actions without learning. Trained policies and the
// fixed baselines both satisfy it.
type Player interface {
	Name() string
	NextAction(step int, state types.State, actions []types.Action) (types.Action, bool)
}

// Config describes one evaluation: every player runs RunCount fresh
// episodes against an environment built from the same seed, so all
// players see the same secret sequence.
type Config struct {
	Players []Player
	// Environment builds a fresh environment for one player
	Environment func(seed uint64) (types.Environment, error)
	RunCount    int
	MaxGuesses  int
	Seed        uint64
}

func (c *Config) validate() error {
	if len(c.Players) == 0 {
		return fmt.Errorf("%w: no players to evaluate", types.ErrConfiguration)
	}
	if c.Environment == nil {
		return fmt.Errorf("%w: environment factory is required", types.ErrConfiguration)
	}
	if c.RunCount <= 0 {
		return fmt.Errorf("%w: run count must be positive, got %d", types.ErrConfiguration, c.RunCount)
	}
	if c.MaxGuesses <= 0 {
		return fmt.Errorf("%w: max guesses must be positive, got %d", types.ErrConfiguration, c.MaxGuesses)
	}
	return nil
}

// EpisodeRecord is the outcome of a single evaluated episode.
type EpisodeRecord struct {
	Won     bool
	Guesses int
}

// Result aggregates the evaluated episodes of one player.
type Result struct {
	Name     string
	Runs     int
	Wins     int
	WinRate  float64
	Episodes []EpisodeRecord
	// GuessHistogram counts solved episodes by guesses used
	GuessHistogram map[int]int
	// AvgGuesses is the mean guesses used over solved episodes
	AvgGuesses float64
}

// Evaluate plays every player over RunCount fresh episodes and aggregates
// win rate and guesses-to-solve distributions.
func Evaluate(cfg Config) ([]Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(cfg.Players))
	for _, player := range cfg.Players {
		env, err := cfg.Environment(cfg.Seed)
		if err != nil {
			return nil, err
		}
		agent := types.NewAgent(&types.AgentConfig{
			Episodes:    cfg.RunCount,
			Horizon:     cfg.MaxGuesses,
			Policy:      &playerPolicy{player: player},
			Environment: env,
		})

		res := Result{
			Name:           player.Name(),
			Runs:           cfg.RunCount,
			Episodes:       make([]EpisodeRecord, 0, cfg.RunCount),
			GuessHistogram: make(map[int]int),
		}
		solvedGuesses := 0
		for run := 0; run < cfg.RunCount; run++ {
			eCtx := types.NewEpisodeContext(run)
			agent.RunEpisode(eCtx)
			if eCtx.Err != nil {
				return nil, fmt.Errorf("evaluating %s: %w", player.Name(), eCtx.Err)
			}
			record := EpisodeRecord{Guesses: eCtx.Timesteps}
			if _, _, last, ok := eCtx.Trace.Last(); ok {
				if s, ok := last.(*wordle.GameState); ok && s.Outcome == wordle.OutcomeSolved {
					record.Won = true
				}
			}
			if record.Won {
				res.Wins += 1
				res.GuessHistogram[record.Guesses] += 1
				solvedGuesses += record.Guesses
			}
			res.Episodes = append(res.Episodes, record)
		}
		res.WinRate = float64(res.Wins) / float64(res.Runs)
		if res.Wins > 0 {
			res.AvgGuesses = float64(solvedGuesses) / float64(res.Wins)
		}
		results = append(results, res)
	}
	return results, nil
}

// String renders the guesses-to-solve distribution in guess order.
func (r Result) String() string {
	keys := make([]int, 0, len(r.GuessHistogram))
	for k := range r.GuessHistogram {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	hist := ""
	for _, k := range keys {
		hist += fmt.Sprintf(" %d:%d", k, r.GuessHistogram[k])
	}
	return fmt.Sprintf("%s: win rate %.3f over %d runs, avg guesses %.2f, histogram%s",
		r.Name, r.WinRate, r.Runs, r.AvgGuesses, hist)
}

// playerPolicy adapts a Player to the Policy contract with no learning.
type playerPolicy struct {
	player Player
}

var _ types.Policy = &playerPolicy{}

func (p *playerPolicy) NextAction(step int, state types.State, actions []types.Action) (types.Action, bool) {
	return p.player.NextAction(step, state, actions)
}

func (p *playerPolicy) Update(_ int, _ types.State, _ types.Action, _ types.State) {}

func (p *playerPolicy) UpdateIteration(_ int, _ *types.Trace) {}

func (p *playerPolicy) Record(_ string) {}

func (p *playerPolicy) Reset() {}
