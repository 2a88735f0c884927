package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/soscreative/hotline-intel/internal/format"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Show the weighted business health score",
	Long: `Compute the composite business health score: five weighted
dimensions (revenue 25%, pipeline 20%, channels 20%, retention 20%,
brand 15%), each scored 0-100 against configurable targets.

Tiers: thriving (70+), growing (50+), emerging (30+), critical.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		report, err := runReport(ctx, cmd)
		if err != nil {
			return err
		}

		h := report.Health
		fmt.Printf("Business health: %s / 100 (%s)\n\n", format.Score(h.Score), h.Tier)

		for _, d := range h.Dimensions {
			fmt.Printf("%-10s %6s  (weight %.0f%%)\n", d.Dimension, format.Score(d.Score), d.Weight)
			for _, line := range d.Breakdown {
				fmt.Printf("    %s\n", line)
			}
		}

		fmt.Println(strings.Repeat("-", 40))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
