package commands

import (
	"context"
	"os"
	"os/signal"
	"path"

	"github.com/spf13/cobra"
	"github.com/zeu5/wordle-rl/policies"
	"github.com/zeu5/wordle-rl/types"
	"github.com/zeu5/wordle-rl/util"
	"github.com/zeu5/wordle-rl/wordle"
	"golang.org/x/exp/rand"
)

// loadCorpus picks the word lists from the flags, falling back to the
// built-in corpus.
func loadCorpus() (*wordle.Corpus, error) {
	if answersFile != "" {
		return wordle.LoadCorpus(answersFile, wordsFile)
	}
	return wordle.DefaultCorpus(), nil
}

func TrainCommand() *cobra.Command {
	var (
		alpha        float64
		gamma        float64
		epsilon      float64
		temperature  float64
		trainFrac    float64
		checkpoint   int
		terminalOnly bool
	)
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train tabular policies on the training partition and compare their learning curves",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			corpus, err := loadCorpus()
			if err != nil {
				return err
			}
			splitRand := rand.New(rand.NewSource(seed))
			trainWords, testWords, err := corpus.Split(trainFrac, splitRand)
			if err != nil {
				return err
			}
			// the compare command evaluates on the held-out partition
			if err := os.MkdirAll(saveFile, os.ModePerm); err != nil {
				return err
			}
			if err := util.WriteToFile(path.Join(saveFile, "test_words.txt"), testWords...); err != nil {
				return err
			}

			rewardCfg := wordle.DefaultRewardConfig()
			reward := wordle.ShapedReward(rewardCfg)
			if terminalOnly {
				reward = wordle.TerminalOnlyReward(rewardCfg)
			}

			c, err := types.NewComparison(&types.ComparisonConfig{
				Runs:               runs,
				Episodes:           episodes,
				Horizon:            horizon,
				CheckpointInterval: checkpoint,
				RecordPath:         saveFile,
				RecordPolicy:       true,
			})
			if err != nil {
				return err
			}
			c.AddAnalysis("coverage", types.NewCoverageAnalyzer(), types.CoveragePlotter(saveFile))
			c.AddAnalysis("outcome", wordle.NewOutcomeAnalyzer(), wordle.SolveRatePlotter(saveFile))

			newEnv := func(envSeed uint64) (*wordle.Environment, error) {
				return wordle.NewEnvironment(wordle.EnvironmentConfig{
					Corpus:     corpus,
					Secrets:    trainWords,
					MaxGuesses: horizon,
					Seed:       envSeed,
				})
			}
			tabularCfg := policies.TabularConfig{
				Alpha:   alpha,
				Gamma:   gamma,
				Epsilon: epsilon,
				Seed:    seed,
				Reward:  reward,
			}

			sarsa, err := policies.NewSarsaPolicy(tabularCfg)
			if err != nil {
				return err
			}
			qLearning, err := policies.NewQLearningPolicy(tabularCfg)
			if err != nil {
				return err
			}
			softMax, err := policies.NewSoftMaxPolicy(alpha, gamma, temperature, seed, reward)
			if err != nil {
				return err
			}

			for i, exp := range []struct {
				name   string
				policy types.Policy
			}{
				{"Sarsa", sarsa},
				{"QLearning", qLearning},
				{"SoftMax", softMax},
				{"Random", types.NewRandomPolicy(seed)},
			} {
				env, err := newEnv(seed + uint64(i))
				if err != nil {
					return err
				}
				c.AddExperiment(types.NewExperiment(exp.name, exp.policy, env))
			}
			return c.Run(ctx)
		},
	}
	cmd.Flags().Float64Var(&alpha, "alpha", 0.1, "Learning rate")
	cmd.Flags().Float64Var(&gamma, "gamma", 1, "Discount factor")
	cmd.Flags().Float64Var(&epsilon, "epsilon", 0.1, "Exploration rate")
	cmd.Flags().Float64Var(&temperature, "temperature", 0.5, "SoftMax temperature")
	cmd.Flags().Float64Var(&trainFrac, "train-frac", 0.75, "Fraction of answers used for training")
	cmd.Flags().IntVar(&checkpoint, "checkpoint", 100, "Episodes between convergence checkpoints")
	cmd.Flags().BoolVar(&terminalOnly, "terminal-only", false, "Drop per-step shaping, reward only at episode end")
	return cmd
}
