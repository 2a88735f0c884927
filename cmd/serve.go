package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/soscreative/hotline-intel/internal/engine"
	"github.com/soscreative/hotline-intel/internal/leadscore"
	"github.com/soscreative/hotline-intel/internal/source"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the report over HTTP",
	Long: `Start an HTTP server that recomputes the report from the configured
source on each request.

  GET /health             liveness check
  GET /api/report         full report as JSON
  GET /api/score          scored lead list
  GET /api/opportunities  ranked opportunity list
  GET /api/benchmarks     benchmark table`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		sc := resolveSource(cmd)
		src, cleanup, err := openSource(ctx, sc)
		if err != nil {
			return err
		}
		defer cleanup()

		opts, err := engineOptions()
		if err != nil {
			return err
		}

		runOnce := func(r *http.Request) (*engine.Report, error) {
			snap, err := src.Load(r.Context())
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
			report := engine.Run(*snap, opts)
			return &report, nil
		}

		// section renders one slice of the report per request.
		section := func(pick func(*engine.Report) any) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				report, err := runOnce(r)
				if err != nil {
					zap.L().Error("report failed", zap.Error(err))
					http.Error(w, `{"error":"report generation failed"}`, http.StatusInternalServerError)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(pick(report))
			}
		}

		mux := http.NewServeMux()

		mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
		})

		mux.HandleFunc("GET /api/report", section(func(r *engine.Report) any { return r }))
		mux.HandleFunc("GET /api/score", section(func(r *engine.Report) any {
			return leadscore.Ranked(r.Scored)
		}))
		mux.HandleFunc("GET /api/opportunities", section(func(r *engine.Report) any {
			return r.Opportunities
		}))
		mux.HandleFunc("GET /api/benchmarks", section(func(r *engine.Report) any {
			return r.Benchmarks
		}))

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
