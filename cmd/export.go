package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/soscreative/hotline-intel/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full report to a file",
	Long: `Run the full pipeline and write the report in the chosen format.

Formats:
  json  full report, indented
  yaml  full report
  csv   scored lead table only
  xlsx  multi-sheet workbook (KPIs, leads, channels, funnel, health,
        opportunities, benchmarks)

Examples:
  export --format xlsx --output report.xlsx
  export --format json --output report.json
  export --format csv`,
	RunE: runExport,
}

func init() {
	f := exportCmd.Flags()
	f.String("format", "json", "export format: json, yaml, csv or xlsx")
	f.String("output", "", "output file path (default: stdout; required for xlsx)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exportFormat, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")

	if exportFormat == "xlsx" && outputPath == "" {
		return eris.New("export: --format xlsx requires --output")
	}

	report, err := runReport(ctx, cmd)
	if err != nil {
		return err
	}

	var w *os.File
	if outputPath != "" {
		w, err = os.Create(outputPath)
		if err != nil {
			return eris.Wrapf(err, "export: create output file %s", outputPath)
		}
		defer w.Close() //nolint:errcheck
	} else {
		w = os.Stdout
	}

	switch exportFormat {
	case "json":
		err = export.JSON(w, *report)
	case "yaml":
		err = export.YAML(w, *report)
	case "csv":
		err = export.CSV(w, *report)
	case "xlsx":
		err = export.XLSX(w, *report)
	default:
		return eris.Errorf("export: unsupported format %q", exportFormat)
	}
	if err != nil {
		return err
	}

	if outputPath != "" {
		zap.L().Info("report exported",
			zap.String("format", exportFormat),
			zap.String("path", outputPath),
		)
		fmt.Printf("Wrote %s report to %s\n", exportFormat, outputPath)
	}
	return nil
}
