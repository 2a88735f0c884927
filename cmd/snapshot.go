package main

import (
	"context"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/soscreative/hotline-intel/internal/aggregate"
	"github.com/soscreative/hotline-intel/internal/config"
	"github.com/soscreative/hotline-intel/internal/engine"
	"github.com/soscreative/hotline-intel/internal/health"
	"github.com/soscreative/hotline-intel/internal/model"
	"github.com/soscreative/hotline-intel/internal/source"
)

// resolveSource merges CLI flag overrides onto the configured source.
func resolveSource(cmd *cobra.Command) config.Source {
	sc := cfg.Source
	if v, _ := cmd.Flags().GetString("source"); v != "" {
		sc.Driver = v
	}
	if v, _ := cmd.Flags().GetString("input"); v != "" {
		sc.Path = v
	}
	if v, _ := cmd.Flags().GetString("database-url"); v != "" {
		sc.DatabaseURL = v
	}
	if v, _ := cmd.Flags().GetString("intake"); v != "" {
		sc.IntakePath = v
	}
	return sc
}

// openSource builds the Source for the given config. The returned cleanup
// is never nil.
func openSource(ctx context.Context, sc config.Source) (source.Source, func(), error) {
	noop := func() {}

	switch sc.Driver {
	case "demo", "":
		return source.DemoSource{}, noop, nil
	case "json":
		if sc.Path == "" {
			return nil, noop, eris.New("source: json driver requires --input")
		}
		return source.JSONSource{Path: sc.Path}, noop, nil
	case "csv":
		if sc.Path == "" {
			return nil, noop, eris.New("source: csv driver requires --input")
		}
		return source.CSVSource{Path: sc.Path}, noop, nil
	case "xlsx":
		if sc.Path == "" {
			return nil, noop, eris.New("source: xlsx driver requires --input")
		}
		return source.XLSXSource{Path: sc.Path}, noop, nil
	case "sqlite":
		if sc.Path == "" {
			return nil, noop, eris.New("source: sqlite driver requires --input")
		}
		s, err := source.NewSQLite(sc.Path)
		if err != nil {
			return nil, noop, err
		}
		return s, func() { s.Close() }, nil
	case "postgres":
		if sc.DatabaseURL == "" {
			return nil, noop, eris.New("source: postgres driver requires --database-url")
		}
		s, err := source.NewPostgres(ctx, sc.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		return s, func() { s.Close() }, nil
	default:
		return nil, noop, eris.Errorf("source: unknown driver %q", sc.Driver)
	}
}

// loadSnapshot loads one snapshot per the config plus flag overrides, then
// applies the optional intake YAML overlay.
func loadSnapshot(ctx context.Context, cmd *cobra.Command) (*model.Snapshot, error) {
	sc := resolveSource(cmd)

	src, cleanup, err := openSource(ctx, sc)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	snap, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}

	if sc.IntakePath != "" {
		intake, err := source.LoadIntakeFile(sc.IntakePath)
		if err != nil {
			return nil, err
		}
		snap.Intake = intake
	}

	zap.L().Debug("snapshot loaded",
		zap.String("driver", sc.Driver),
		zap.Int("clients", len(snap.Clients)),
		zap.Bool("intake", snap.Intake != nil),
	)

	return snap, nil
}

// engineOptions builds engine options from config.
func engineOptions() (engine.Options, error) {
	opts := engine.Options{
		LTV: aggregate.LTVOptions{
			ObservationWindowMonths: cfg.Engine.LTVWindowMonths,
			DeriveWindow:            cfg.Engine.DeriveLTVWindow,
		},
	}

	if cfg.Engine.TargetsFile != "" {
		t, err := health.LoadTargets(cfg.Engine.TargetsFile)
		if err != nil {
			return opts, err
		}
		opts.Targets = &t
	}

	return opts, nil
}

// runReport is the shared load-then-run path used by every reporting command.
func runReport(ctx context.Context, cmd *cobra.Command) (*engine.Report, error) {
	snap, err := loadSnapshot(ctx, cmd)
	if err != nil {
		return nil, err
	}

	opts, err := engineOptions()
	if err != nil {
		return nil, err
	}

	report := engine.Run(*snap, opts)
	return &report, nil
}
