package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/soscreative/hotline-intel/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "hotline-intel",
	Short: "Business intelligence engine for a creative consultancy",
	Long:  "Scores leads, aggregates pipeline and channel metrics, computes a weighted business health score, and generates prioritized opportunities, decision prompts and industry benchmarks from a CRM snapshot.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("source", "", "snapshot source: demo, json, csv, xlsx, sqlite or postgres (default from config)")
	pf.String("input", "", "input path for file and sqlite sources (default from config)")
	pf.String("database-url", "", "connection string for the postgres source (default from config)")
	pf.String("intake", "", "intake questionnaire YAML overlay (default from config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
