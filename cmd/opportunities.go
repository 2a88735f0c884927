package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/soscreative/hotline-intel/internal/format"
	"github.com/soscreative/hotline-intel/internal/model"
)

var opportunitiesCmd = &cobra.Command{
	Use:     "opportunities",
	Aliases: []string{"opps"},
	Short:   "Generate prioritized growth opportunities",
	Long: `Run the rule battery over the current snapshot and rank the
recommendations by ROI (impact divided by effort, both 1-10).

Examples:
  # All opportunities, best first
  opportunities

  # Only revenue and pricing plays, with activation steps
  opportunities --category revenue,pricing --steps`,
	RunE: runOpportunities,
}

func init() {
	f := opportunitiesCmd.Flags()
	f.String("category", "", "comma-separated category filter")
	f.String("priority", "", "comma-separated priority filter (now,next,later,explore)")
	f.Bool("steps", false, "show activation steps and metrics")

	rootCmd.AddCommand(opportunitiesCmd)
}

func runOpportunities(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := runReport(ctx, cmd)
	if err != nil {
		return err
	}

	opps := report.Opportunities
	if v, _ := cmd.Flags().GetString("category"); v != "" {
		opps = filterOpportunities(opps, splitAndTrim(v), func(o model.Opportunity) string {
			return string(o.Category)
		})
	}
	if v, _ := cmd.Flags().GetString("priority"); v != "" {
		opps = filterOpportunities(opps, splitAndTrim(v), func(o model.Opportunity) string {
			return string(o.Priority)
		})
	}

	if len(opps) == 0 {
		fmt.Println("No opportunities matched.")
		return nil
	}

	showSteps, _ := cmd.Flags().GetBool("steps")
	for i, opp := range opps {
		printOpportunity(i+1, opp, showSteps)
	}
	return nil
}

func filterOpportunities(opps []model.Opportunity, want []string, key func(model.Opportunity) string) []model.Opportunity {
	set := make(map[string]bool, len(want))
	for _, w := range want {
		set[strings.ToLower(w)] = true
	}

	var out []model.Opportunity
	for _, o := range opps {
		if set[strings.ToLower(key(o))] {
			out = append(out, o)
		}
	}
	return out
}

func printOpportunity(rank int, opp model.Opportunity, showSteps bool) {
	fmt.Printf("%d. %s\n", rank, opp.Title)
	fmt.Printf("   %s | %s | effort %d | impact %d | ROI %s\n",
		opp.Category, opp.Priority, opp.Effort, opp.Impact, format.Score(opp.ROI))
	fmt.Printf("   %s\n", opp.Description)
	fmt.Printf("   Why: %s\n", opp.Why)

	if len(opp.DataPoints) > 0 {
		fmt.Printf("   Evidence: %s\n", strings.Join(opp.DataPoints, "; "))
	}
	if !opp.Unlocked {
		fmt.Println("   (locked: needs intake answers to activate)")
	}

	if showSteps {
		for _, step := range opp.Steps {
			fmt.Printf("     %d) %s", step.Step, step.Action)
			if step.Tool != "" {
				fmt.Printf(" [%s]", step.Tool)
			}
			fmt.Println()
			if step.Detail != "" {
				fmt.Printf("        %s\n", step.Detail)
			}
		}
		if len(opp.Metrics) > 0 {
			fmt.Printf("     Track: %s\n", strings.Join(opp.Metrics, ", "))
		}
	}
	fmt.Println()
}
