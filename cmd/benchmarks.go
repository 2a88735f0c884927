package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

var benchmarksCmd = &cobra.Command{
	Use:   "benchmarks",
	Short: "Compare current metrics against industry benchmark bands",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		report, err := runReport(ctx, cmd)
		if err != nil {
			return err
		}

		fmt.Printf("%-28s %10s %10s %10s %12s %-14s\n",
			"Metric", "Yours", "Emerging", "Growing", "Established", "Standing")
		fmt.Println(strings.Repeat("-", 90))

		for _, b := range report.Benchmarks {
			fmt.Printf("%-28s %10s %10s %10s %12s %-14s\n",
				b.Metric,
				benchValue(b.YourValue, b.Unit),
				benchValue(b.Emerging, b.Unit),
				benchValue(b.Growing, b.Unit),
				benchValue(b.Established, b.Unit),
				b.Standing)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(benchmarksCmd)
}

func benchValue(v float64, unit string) string {
	switch unit {
	case "rate":
		return fmt.Sprintf("%.1f%%", v*100)
	case "usd":
		return fmt.Sprintf("$%.0f", v)
	default:
		return fmt.Sprintf("%.1f", v)
	}
}
