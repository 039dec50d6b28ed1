package policies

import (
	"context"
	"testing"

	"github.com/zeu5/wordle-rl/types"
	"github.com/zeu5/wordle-rl/wordle"
)

// With a single secret and a small fixed vocabulary the value tables must
// settle: the checkpointed RMS deltas of the learning runs trend downward.
func TestTabularPoliciesConvergeOnSingleSecret(t *testing.T) {
	corpus, err := wordle.NewCorpus([]string{"crane", "slate", "brine", "stone"}, nil)
	if err != nil {
		t.Fatalf("building corpus: %v", err)
	}
	cfg := TabularConfig{
		Alpha:   0.1,
		Gamma:   1,
		Epsilon: 0.1,
		Seed:    1,
		Reward:  wordle.ShapedReward(wordle.DefaultRewardConfig()),
	}

	builders := []struct {
		name  string
		build func() (types.Policy, error)
	}{
		{"sarsa", func() (types.Policy, error) { return NewSarsaPolicy(cfg) }},
		{"qlearning", func() (types.Policy, error) { return NewQLearningPolicy(cfg) }},
	}
	for _, b := range builders {
		policy, err := b.build()
		if err != nil {
			t.Fatalf("%s: creating policy: %v", b.name, err)
		}
		env, err := wordle.NewEnvironment(wordle.EnvironmentConfig{
			Corpus:     corpus,
			Secrets:    []string{"crane"},
			MaxGuesses: 6,
			Seed:       1,
		})
		if err != nil {
			t.Fatalf("%s: creating environment: %v", b.name, err)
		}

		e := types.NewExperiment(b.name, policy, env)
		err = e.Run(context.Background(), &types.ExperimentRunConfig{
			Episodes:               400,
			Horizon:                6,
			CheckpointInterval:     50,
			ConsecutiveErrorsAbort: 10,
			Status:                 func(string) {},
		})
		if err != nil {
			t.Fatalf("%s: training: %v", b.name, err)
		}

		series := e.Convergence
		if len(series) != 8 {
			t.Fatalf("%s: expected 8 convergence samples, got %d", b.name, len(series))
		}
		if series[0] <= 0 {
			t.Errorf("%s: no learning happened in the first checkpoint", b.name)
		}
		early := (series[0] + series[1]) / 2
		late := (series[len(series)-2] + series[len(series)-1]) / 2
		if late >= early {
			t.Errorf("%s: RMS delta did not decrease: early %v, late %v (series %v)",
				b.name, early, late, series)
		}
	}
}
