package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	startFlag string
)

var rootCmd = &cobra.Command{
	Use:   "beachking",
	Short: "A CLI to plan beach tournament phases and standings",
	Long: `A command-line interface around the beachking scheduling engine: partition a
roster into groups, generate King-of-the-Beach or knockout matches, assign
them to courts, and rank results. Rosters, matches and results are plain JSON
files; persistence stays with the caller.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&startFlag, "start", "", "Phase start time in RFC3339 format (default: now)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
