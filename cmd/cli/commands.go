package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mauv0809/beachking/internal/config"
	"github.com/mauv0809/beachking/internal/courts"
	"github.com/mauv0809/beachking/internal/engine"
	"github.com/mauv0809/beachking/internal/generator"
	"github.com/mauv0809/beachking/internal/metrics"
	"github.com/mauv0809/beachking/internal/standings"
	"github.com/mauv0809/beachking/internal/tournament"
)

func init() {
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(bracketCmd)
	rootCmd.AddCommand(roundRobinCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(advanceCmd)
}

func newEngine() engine.Engine {
	return engine.New(generator.New(), courts.New(), standings.New(), metrics.NewService())
}

func startTime() (time.Time, error) {
	if startFlag == "" {
		return time.Now(), nil
	}
	parsed, err := time.Parse(time.RFC3339, startFlag)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --start value %q: %w", startFlag, err)
	}
	return parsed, nil
}

var planCmd = &cobra.Command{
	Use:   "plan <roster.json>",
	Short: "Plan a King-of-the-Beach group phase from a roster file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var roster []string
		if err := readJSONFile(args[0], &roster); err != nil {
			return err
		}
		start, err := startTime()
		if err != nil {
			return err
		}

		plan, err := newEngine().PlanGroupPhase(roster, config.Load(), start)
		if err != nil {
			return err
		}
		return printJSON(plan)
	},
}

var bracketCmd = &cobra.Command{
	Use:   "bracket <players.json>",
	Short: "Plan one knockout round; pass the winners back in for the next",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var players []string
		if err := readJSONFile(args[0], &players); err != nil {
			return err
		}
		start, err := startTime()
		if err != nil {
			return err
		}

		plan, err := newEngine().PlanKnockoutRound(players, config.Load(), start)
		if err != nil {
			return err
		}
		return printJSON(plan)
	},
}

var roundRobinCmd = &cobra.Command{
	Use:   "roundrobin <roster.json>",
	Short: "Plan a singles round-robin from a roster file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var roster []string
		if err := readJSONFile(args[0], &roster); err != nil {
			return err
		}
		start, err := startTime()
		if err != nil {
			return err
		}

		plan, err := newEngine().PlanRoundRobin(roster, config.Load(), start)
		if err != nil {
			return err
		}
		return printJSON(plan)
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings <matches.json> <players.json>",
	Short: "Rank players from recorded match results",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var matches []tournament.Match
		if err := readJSONFile(args[0], &matches); err != nil {
			return err
		}
		var players []string
		if err := readJSONFile(args[1], &players); err != nil {
			return err
		}

		table := newEngine().Standings(matches, players)
		return printStandings(table)
	},
}

var advanceCmd = &cobra.Command{
	Use:   "advance <groups.json>",
	Short: "Select the players advancing from a group phase",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var groups []standings.GroupStandings
		if err := readJSONFile(args[0], &groups); err != nil {
			return err
		}

		advancing, err := newEngine().Advance(groups, config.Load())
		if err != nil {
			return err
		}
		return printJSON(advancing)
	},
}

func readJSONFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func printJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func printStandings(table []standings.Standing) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLAYER\tW\tD\tL\tPF\tPA\tDIFF\tPTS")
	for _, row := range table {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%+d\t%d\n",
			row.PlayerID, row.Wins, row.Draws, row.Losses,
			row.PointsFor, row.PointsAgainst, row.PointDifferential, row.TotalPoints)
	}
	return w.Flush()
}
