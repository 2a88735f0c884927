package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/soscreative/hotline-intel/internal/fixture"
	"github.com/soscreative/hotline-intel/internal/source"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a SQLite database seeded with the demo dataset",
	Long: `Create (or reset) a SQLite client database and load the built-in
demo dataset into it. Useful for trying the sqlite source without a
real CRM export:

  seed --output clients.db
  report --source sqlite --input clients.db`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		path, _ := cmd.Flags().GetString("output")
		if path == "" {
			return eris.New("seed: --output is required")
		}

		s, err := source.NewSQLite(path)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Migrate(ctx); err != nil {
			return err
		}

		snap := fixture.Snapshot(time.Now())
		if err := s.SaveSnapshot(ctx, snap); err != nil {
			return err
		}

		zap.L().Info("database seeded",
			zap.String("path", path),
			zap.Int("clients", len(snap.Clients)),
		)
		fmt.Printf("Seeded %d clients into %s\n", len(snap.Clients), path)
		return nil
	},
}

func init() {
	seedCmd.Flags().String("output", "hotline.db", "SQLite database path")
	rootCmd.AddCommand(seedCmd)
}
