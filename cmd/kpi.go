package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/soscreative/hotline-intel/internal/engine"
	"github.com/soscreative/hotline-intel/internal/format"
)

var kpiCmd = &cobra.Command{
	Use:   "kpi",
	Short: "Show top-line KPIs, pipeline, channels, funnel and LTV",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		report, err := runReport(ctx, cmd)
		if err != nil {
			return err
		}

		printKPIs(report)
		printPipeline(report)
		printChannels(report)
		printFunnel(report)
		printLTV(report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(kpiCmd)
}

func printKPIs(r *engine.Report) {
	fmt.Println("=== Key Metrics ===")
	fmt.Printf("Total clients:   %d\n", r.KPI.TotalClients)
	fmt.Printf("Paid clients:    %d\n", r.KPI.PaidClients)
	fmt.Printf("Total revenue:   %s\n", format.Money(r.KPI.TotalRevenue))
	fmt.Printf("Active pipeline: %d\n", r.KPI.ActivePipeline)
	fmt.Printf("Conversion rate: %s\n", format.Percent(r.KPI.ConversionRate))
	fmt.Printf("Avg deal size:   %s\n", format.MoneyExact(r.KPI.AvgDealSize))
}

func printPipeline(r *engine.Report) {
	fmt.Println("\n=== Pipeline ===")
	for _, row := range r.Pipeline {
		fmt.Printf("%-22s %3d  %12s\n", row.Status, row.Count, format.Money(row.Value))
	}
}

func printChannels(r *engine.Report) {
	fmt.Println("\n=== Channels ===")
	fmt.Printf("%-12s %6s %6s %8s %12s %12s\n",
		"Channel", "Leads", "Conv", "Rate", "Revenue", "Avg Deal")
	fmt.Println(strings.Repeat("-", 62))
	for _, ch := range r.Channels {
		fmt.Printf("%-12s %6d %6d %8s %12s %12s\n",
			ch.Source, ch.Leads, ch.Conversions,
			format.Percent(ch.ConversionRate),
			format.Money(ch.Revenue),
			format.MoneyExact(ch.AvgDealSize))
	}
}

func printFunnel(r *engine.Report) {
	fmt.Println("\n=== Funnel ===")
	for _, st := range r.Funnel {
		fmt.Printf("%-18s %3d  %s\n", st.Name, st.Count, format.Percent(st.ConversionRate))
	}

	fmt.Println("\n=== Stage Drop-Off ===")
	for _, st := range r.MicroFunnel {
		fmt.Printf("%-22s %3d  -%s\n", st.Status, st.Count, format.Percent(st.DropOffRate))
	}
}

func printLTV(r *engine.Report) {
	fmt.Println("\n=== Lifetime Value ===")
	fmt.Printf("Overall LTV:          %s\n", format.MoneyExact(r.LTV.OverallLTV))
	fmt.Printf("Projected 12-month:   %s\n", format.Money(r.LTV.Projected12))
	fmt.Printf("Observation window:   %.1f months\n", r.LTV.WindowMonths)

	if len(r.LTV.ByProduct) > 0 {
		fmt.Println("\nBy product:")
		for _, p := range r.LTV.ByProduct {
			fmt.Printf("  %-26s %s\n", p.Product, format.MoneyExact(p.Value))
		}
	}
}
