package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var decisionsCmd = &cobra.Command{
	Use:   "decisions",
	Short: "Show strategic decision prompts with a recommended choice",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		report, err := runReport(ctx, cmd)
		if err != nil {
			return err
		}

		for i, p := range report.Decisions {
			fmt.Printf("%d. %s\n", i+1, p.Question)
			fmt.Printf("   %s\n", p.Context)
			for _, c := range p.Choices {
				marker := " "
				if c.Recommended {
					marker = "*"
				}
				fmt.Printf("   [%s] %s\n", marker, c.Label)
				if c.Detail != "" {
					fmt.Printf("       %s\n", c.Detail)
				}
			}
			fmt.Println()
		}

		fmt.Println("* = recommended based on current data")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decisionsCmd)
}
