package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"warsim/engine"
	"warsim/game"
	"warsim/loader"
)

func main() {
	var dataFile, attackerName, defenderName string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "warsim",
		Short: "Deterministic army battle simulator",
		Long: `Builds two armies from civilization presets, drills them with
training and promotions, then resolves a campaign of battles.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(dataFile, attackerName, defenderName, verbose)
		},
	}
	rootCmd.Flags().StringVar(&dataFile, "data", "data/civilizations.yaml", "Path to the civilization presets file")
	rootCmd.Flags().StringVar(&attackerName, "attacker", "Chinese", "Attacking civilization")
	rootCmd.Flags().StringVar(&defenderName, "defender", "English", "Defending civilization")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Log every campaign round")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(dataFile, attackerName, defenderName string, verbose bool) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if !verbose {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	presets, err := loader.Load(dataFile)
	if err != nil {
		return err
	}
	attackerComp, ok := presets[attackerName]
	if !ok {
		return fmt.Errorf("unknown civilization %q in %s", attackerName, dataFile)
	}
	defenderComp, ok := presets[defenderName]
	if !ok {
		return fmt.Errorf("unknown civilization %q in %s", defenderName, dataFile)
	}

	attacker := game.NewArmy(attackerName, attackerComp)
	defender := game.NewArmy(defenderName, defenderComp)

	titleColor := color.New(color.FgCyan, color.Bold)
	titleColor.Printf("\n%s vs %s\n\n", attacker.Name, defender.Name)

	for _, a := range []*game.Army{attacker, defender} {
		drill(a)
		printArmy(a)
	}

	winner, summary := engine.New(attacker, defender).Run()

	successColor := color.New(color.FgGreen, color.Bold)
	if winner == "" {
		successColor.Printf("\nCampaign over after %d rounds: stalemate\n", summary.Rounds)
	} else {
		successColor.Printf("\nCampaign over after %d rounds: %s prevails\n", summary.Rounds, winner)
	}
	fmt.Printf("Battles won: %s %d, %s %d, draws %d\n",
		attacker.Name, summary.Wins[attacker.Name],
		defender.Name, summary.Wins[defender.Name],
		summary.Draws)
	fmt.Printf("Units lost: %s %d, %s %d\n",
		attacker.Name, summary.Casualties[attacker.Name],
		defender.Name, summary.Casualties[defender.Name])

	for _, a := range []*game.Army{attacker, defender} {
		printArmy(a)
		printHistory(a)
	}
	return nil
}

// drill spends part of the war chest before the campaign: trains the front
// of the roster and promotes the first promotable unit.
func drill(a *game.Army) {
	for i := 0; i < len(a.Roster) && i < 5; i++ {
		if _, err := a.TrainUnit(i); err != nil {
			fmt.Printf("  %s: training unit %d rejected: %v\n", a.Name, i, err)
		}
	}
	for i := range a.Roster {
		if _, err := a.TransformUnit(i); err == nil {
			return
		}
	}
}

func printArmy(a *game.Army) {
	fmt.Printf("\n%s: %d units, total strength %d, gold %d\n",
		a.Name, len(a.Roster), a.TotalStrength(), a.Gold)

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Type", "Strength", "Service Years"}),
	)
	for i, u := range a.Roster {
		table.Append([]string{
			strconv.Itoa(i),
			u.Type.String(),
			strconv.Itoa(u.Strength),
			strconv.Itoa(u.ServiceYears),
		})
	}
	table.Render()
}

func printHistory(a *game.Army) {
	if len(a.History) == 0 {
		return
	}
	// Long campaigns produce long histories; show the tail
	records := a.History
	const maxShown = 5
	if len(records) > maxShown {
		fmt.Printf("\n%s: last %d of %d battles\n", a.Name, maxShown, len(records))
		records = records[len(records)-maxShown:]
	} else {
		fmt.Printf("\n%s: %d battles\n", a.Name, len(records))
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"When", "Opponent", "Own", "Opp", "Result", "Gold", "Own Losses", "Opp Losses"}),
	)
	for _, rec := range records {
		table.Append([]string{
			rec.When.Format(time.TimeOnly),
			rec.Opponent,
			strconv.Itoa(rec.OwnStrength),
			strconv.Itoa(rec.OpponentStrength),
			rec.Result,
			strconv.Itoa(rec.GoldDelta),
			formatLosses(rec.OwnLosses),
			formatLosses(rec.OpponentLosses),
		})
	}
	table.Render()
}

func formatLosses(losses []game.Casualty) string {
	if len(losses) == 0 {
		return "-"
	}
	out := ""
	for i, c := range losses {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s(%d)", c.Type, c.Strength)
	}
	return out
}
