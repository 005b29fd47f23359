package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/comitanigiacomo/kanso-drift/internal/config"
	"github.com/comitanigiacomo/kanso-drift/internal/core/domain"
)

func newScoreCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "score <report...>",
		Short: "Parse and score a report without storing it",
		Long: `Parses a report like "7.5 Y Y N Y Y N" for today in the reference zone
and prints its sub-scores. Nothing is written to storage.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(v)

			clock, err := cfg.Clock()
			if err != nil {
				return err
			}
			scorer, err := cfg.Scorer()
			if err != nil {
				return err
			}

			reading, err := domain.NewReportParser(clock, scorer).Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}

			printReading(cmd.OutOrStdout(), reading, scorer.MaxTotal())
			return nil
		},
	}
}

func printReading(w io.Writer, r *domain.DailyHabitReading, maxTotal int) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	mark := func(ok bool) string {
		if ok {
			return green("Y")
		}
		return red("N")
	}

	fmt.Fprintf(w, "%s\n", cyan(fmt.Sprintf("=== %s (%s) ===", r.Date, r.ScoringModel)))
	fmt.Fprintf(w, "  Sleep:   %.1fh\n", r.SleepHours)
	fmt.Fprintf(w, "  Bed %s  Workout %s  Eat %s  Block1 %s  Block2 %s  Anchor %s\n",
		mark(r.BedOnTime), mark(r.Workout), mark(r.EatWindows),
		mark(r.Block1), mark(r.Block2), mark(r.Anchor))
	fmt.Fprintf(w, "  Energy %d  Exec %d  Life %d\n", r.EnergyScore, r.ExecScore, r.LifeScore)

	total := fmt.Sprintf("%d/%d", r.TotalScore, maxTotal)
	if r.TotalScore*2 >= maxTotal {
		total = green(total)
	} else {
		total = red(total)
	}
	fmt.Fprintf(w, "  Total:   %s\n", total)

	if r.ScoringModel == domain.ScoringModelHundredPoint {
		fmt.Fprintf(w, "  %s\n", gray(fmt.Sprintf("legacy 7-point total: %d", domain.LegacyTotal(r.TotalScore))))
	}
	if r.Notes != "" {
		fmt.Fprintf(w, "  Notes:   %s\n", r.Notes)
	}
}
