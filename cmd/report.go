package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/soscreative/hotline-intel/internal/export"
	"github.com/soscreative/hotline-intel/internal/format"
	"github.com/soscreative/hotline-intel/internal/leadscore"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the full pipeline and print the complete report",
	Long: `Load a snapshot, run every stage of the engine and print the full
report: KPIs, pipeline, channels, funnel, LTV, lead scores, business
health, opportunities, decision prompts and benchmarks.

Examples:
  # Full report over the demo data
  report

  # Full report over a CRM export, as JSON
  report --source json --input clients.json --json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		report, err := runReport(ctx, cmd)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return export.JSON(os.Stdout, *report)
		}

		fmt.Printf("Report generated %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04"))

		printKPIs(report)
		printPipeline(report)
		printChannels(report)
		printFunnel(report)
		printLTV(report)

		fmt.Println("\n=== Lead Scores ===")
		if err := writeScoredTable(os.Stdout, leadscore.Ranked(report.Scored)); err != nil {
			return err
		}

		h := report.Health
		fmt.Printf("\n=== Business Health: %s / 100 (%s) ===\n", format.Score(h.Score), h.Tier)
		for _, d := range h.Dimensions {
			fmt.Printf("  %-10s %6s (weight %.0f%%)\n", d.Dimension, format.Score(d.Score), d.Weight)
		}

		fmt.Printf("\n=== Opportunities (%d) ===\n", len(report.Opportunities))
		for i, opp := range report.Opportunities {
			printOpportunity(i+1, opp, false)
		}

		fmt.Printf("=== Decision Prompts (%d) ===\n", len(report.Decisions))
		for i, p := range report.Decisions {
			fmt.Printf("%d. %s\n", i+1, p.Question)
		}

		fmt.Println("\nRun 'decisions', 'benchmarks' or 'opportunities --steps' for detail.")
		return nil
	},
}

func init() {
	reportCmd.Flags().Bool("json", false, "print the report as JSON")
	rootCmd.AddCommand(reportCmd)
}
