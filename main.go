package main

import (
	"fmt"
	"os"

	"github.com/zeu5/wordle-rl/commands"
)

// main entry point to all the experiments
func main() {
	rootCommand := commands.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
