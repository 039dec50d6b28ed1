package commands

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"
	"github.com/zeu5/wordle-rl/harness"
	"github.com/zeu5/wordle-rl/policies"
	"github.com/zeu5/wordle-rl/types"
	"github.com/zeu5/wordle-rl/util"
	"github.com/zeu5/wordle-rl/wordle"
)

func CompareCommand() *cobra.Command {
	var (
		policyFile string
		policyName string
		testWords  string
		runCount   int
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Play a trained policy against the fixed baselines on the held-out words",
		RunE: func(cmd *cobra.Command, args []string) error {
			corpus, err := loadCorpus()
			if err != nil {
				return err
			}
			secrets := corpus.Answers()
			if testWords != "" {
				secrets, err = util.ReadLines(testWords)
				if err != nil {
					return err
				}
			}

			players := []harness.Player{
				harness.SimplePlayer(),
				harness.RandomPlayer(),
			}
			if policyFile != "" {
				table, err := policies.LoadQTable(policyFile)
				if err != nil {
					return err
				}
				// epsilon zero: evaluation always exploits the table
				trained, err := policies.NewQLearningPolicy(policies.TabularConfig{
					Alpha:   0.1,
					Gamma:   1,
					Epsilon: 0,
					Seed:    seed,
					Reward:  wordle.TerminalOnlyReward(wordle.DefaultRewardConfig()),
					Table:   table,
				})
				if err != nil {
					return err
				}
				players = append(players, harness.NewGreedyPlayer(policyName, trained))
			}

			// the Simple baseline plays the educated strategy, so it joins
			// the action table next to the training strategies
			educated, err := wordle.NewStrategy(wordle.StrategyEducated, corpus)
			if err != nil {
				return err
			}
			strategies := append(wordle.DefaultStrategies(corpus), educated)

			results, err := harness.Evaluate(harness.Config{
				Players: players,
				Environment: func(envSeed uint64) (types.Environment, error) {
					return wordle.NewEnvironment(wordle.EnvironmentConfig{
						Corpus:     corpus,
						Secrets:    secrets,
						MaxGuesses: horizon,
						Strategies: strategies,
						Seed:       envSeed,
					})
				},
				RunCount:   runCount,
				MaxGuesses: horizon,
				Seed:       seed,
			})
			if err != nil {
				return err
			}
			for _, r := range results {
				fmt.Println(r.String())
			}
			harness.WinRatePlot(path.Join(saveFile, "win_rate.png"), results)
			return nil
		},
	}
	cmd.Flags().StringVar(&policyFile, "policy", "", "Recorded value table to evaluate")
	cmd.Flags().StringVar(&policyName, "policy-name", "Trained", "Name of the trained player in the report")
	cmd.Flags().StringVar(&testWords, "test-words", "", "Held-out secret list (default: full answer set)")
	cmd.Flags().IntVar(&runCount, "run-count", 500, "Episodes to evaluate per player")
	return cmd
}
