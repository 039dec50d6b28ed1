package commands

import "github.com/spf13/cobra"

var (
	episodes int
	horizon  int
	saveFile string
	runs     int
	seed     uint64

	answersFile string
	wordsFile   string
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "wordle-rl",
		Short: "Train and evaluate tabular RL agents on Wordle",
	}
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", 5000, "Number of episodes to run")
	rootCommand.PersistentFlags().IntVar(&horizon, "horizon", 6, "Maximum guesses per episode")
	rootCommand.PersistentFlags().StringVarP(&saveFile, "save", "s", "results", "Save the result data in the specified folder")
	rootCommand.PersistentFlags().IntVar(&runs, "runs", 1, "Number of experiment runs")
	rootCommand.PersistentFlags().Uint64Var(&seed, "seed", 1, "Seed for all randomness of the run")
	rootCommand.PersistentFlags().StringVar(&answersFile, "answers", "", "Answer word list file (default: built-in corpus)")
	rootCommand.PersistentFlags().StringVar(&wordsFile, "words", "", "Allowed guess word list file")
	// adding the subcommands here
	rootCommand.AddCommand(TrainCommand())
	rootCommand.AddCommand(CompareCommand())
	rootCommand.AddCommand(SpreadCommand())
	return rootCommand
}
