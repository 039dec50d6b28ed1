package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/zeu5/wordle-rl/policies"
	"github.com/zeu5/wordle-rl/types"
	"github.com/zeu5/wordle-rl/wordle"
	"golang.org/x/exp/rand"
)

func SpreadCommand() *cobra.Command {
	var (
		alpha         float64
		gamma         float64
		epsilon       float64
		trainFrac     float64
		checkpoint    int
		repetitions   int
		maxConcurrent int
	)
	cmd := &cobra.Command{
		Use:   "spread",
		Short: "Repeat training across seeds and report the spread of the learning curves",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			corpus, err := loadCorpus()
			if err != nil {
				return err
			}
			splitRand := rand.New(rand.NewSource(seed))
			trainWords, _, err := corpus.Split(trainFrac, splitRand)
			if err != nil {
				return err
			}

			reward := wordle.ShapedReward(wordle.DefaultRewardConfig())
			newTabularCfg := func(policySeed uint64) policies.TabularConfig {
				return policies.TabularConfig{
					Alpha:   alpha,
					Gamma:   gamma,
					Epsilon: epsilon,
					Seed:    policySeed,
					Reward:  reward,
				}
			}
			newEnv := func(envSeed uint64) (types.Environment, error) {
				return wordle.NewEnvironment(wordle.EnvironmentConfig{
					Corpus:     corpus,
					Secrets:    trainWords,
					MaxGuesses: horizon,
					Seed:       envSeed,
				})
			}

			experiments := []types.SpreadExperiment{
				{
					Name: "Sarsa",
					Policy: func(policySeed uint64) (types.Policy, error) {
						return policies.NewSarsaPolicy(newTabularCfg(policySeed))
					},
					Environment: newEnv,
				},
				{
					Name: "QLearning",
					Policy: func(policySeed uint64) (types.Policy, error) {
						return policies.NewQLearningPolicy(newTabularCfg(policySeed))
					},
					Environment: newEnv,
				},
			}

			results, err := types.RunSpread(ctx, &types.SpreadConfig{
				Repetitions:        repetitions,
				Episodes:           episodes,
				Horizon:            horizon,
				CheckpointInterval: checkpoint,
				Seed:               seed,
				MaxConcurrent:      maxConcurrent,
				RecordPath:         saveFile,
			}, experiments)
			if err != nil {
				return err
			}
			for _, r := range results {
				if len(r.Mean) == 0 {
					continue
				}
				last := len(r.Mean) - 1
				fmt.Printf("%s: final RMS delta %.4f (stddev %.4f) over %d repetitions\n",
					r.Name, r.Mean[last], r.StdDev[last], repetitions)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&alpha, "alpha", 0.1, "Learning rate")
	cmd.Flags().Float64Var(&gamma, "gamma", 1, "Discount factor")
	cmd.Flags().Float64Var(&epsilon, "epsilon", 0.1, "Exploration rate")
	cmd.Flags().Float64Var(&trainFrac, "train-frac", 0.75, "Fraction of answers used for training")
	cmd.Flags().IntVar(&checkpoint, "checkpoint", 100, "Episodes between convergence checkpoints")
	cmd.Flags().IntVarP(&repetitions, "reps", "r", 5, "Seeded repetitions per experiment")
	cmd.Flags().IntVar(&maxConcurrent, "max-concurrent", 4, "Repetitions to run in parallel")
	return cmd
}
