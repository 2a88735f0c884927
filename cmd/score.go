package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/soscreative/hotline-intel/internal/leadscore"
	"github.com/soscreative/hotline-intel/internal/model"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score every lead and rank by priority tier",
	Long: `Score each client 0-100 across four equally weighted components:

Engagement: how far along the pipeline the client has moved.
Recency:    how recently the record was created, decaying a point
            every three days.
Value:      amount paid relative to the largest deal in the batch.
Fit:        contact completeness plus attribution, source and product
            signals.

Scores bucket into tiers: hot (70+), warm (40+), cool (20+), cold.

Examples:
  # Score the demo dataset
  score

  # Score a CRM export, hottest first, to CSV
  score --source csv --input clients.csv --format csv --output scores.csv

  # Only hot and warm leads
  score --tier hot,warm`,
	RunE: runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.String("tier", "", "comma-separated tier filter (hot,warm,cool,cold)")
	f.String("output", "", "output file path (default: stdout)")
	f.String("format", "table", "output format: table or csv")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	format, _ := cmd.Flags().GetString("format")
	if format != "table" && format != "csv" {
		return eris.Errorf("score: --format must be table or csv (got %q)", format)
	}

	report, err := runReport(ctx, cmd)
	if err != nil {
		return err
	}

	scored := leadscore.Ranked(report.Scored)
	if tiers, _ := cmd.Flags().GetString("tier"); tiers != "" {
		scored = filterTiers(scored, splitAndTrim(tiers))
	}

	zap.L().Info("lead scoring complete",
		zap.Int("total", len(report.Scored)),
		zap.Int("shown", len(scored)),
	)

	outputPath, _ := cmd.Flags().GetString("output")
	if err := outputScored(scored, format, outputPath); err != nil {
		return err
	}

	printScoreSummary(report.Scored)
	return nil
}

func filterTiers(scored []model.ScoredClient, tiers []string) []model.ScoredClient {
	want := make(map[string]bool, len(tiers))
	for _, t := range tiers {
		want[strings.ToLower(t)] = true
	}

	var out []model.ScoredClient
	for _, sc := range scored {
		if want[strings.ToLower(string(sc.Tier))] {
			out = append(out, sc)
		}
	}
	return out
}

func printScoreSummary(scored []model.ScoredClient) {
	if len(scored) == 0 {
		fmt.Println("No leads to score.")
		return
	}

	counts := make(map[model.ScoreTier]int)
	var sum int
	for _, sc := range scored {
		counts[sc.Tier]++
		sum += sc.Score
	}

	fmt.Printf("\n--- Summary ---\n")
	fmt.Printf("Total leads:   %d\n", len(scored))
	fmt.Printf("Average score: %.1f\n", float64(sum)/float64(len(scored)))
	fmt.Printf("Tiers:         %d hot / %d warm / %d cool / %d cold\n",
		counts[model.TierHot], counts[model.TierWarm],
		counts[model.TierCool], counts[model.TierCold])
}

func outputScored(scored []model.ScoredClient, format, outputPath string) error {
	var w *os.File
	if outputPath != "" {
		var err error
		w, err = os.Create(outputPath)
		if err != nil {
			return eris.Wrapf(err, "score: create output file %s", outputPath)
		}
		defer w.Close() //nolint:errcheck
	} else {
		w = os.Stdout
	}

	switch format {
	case "csv":
		return writeScoredCSV(w, scored)
	default:
		return writeScoredTable(w, scored)
	}
}

func writeScoredCSV(w *os.File, scored []model.ScoredClient) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"name", "email", "status", "lead_source", "score", "tier", "engagement", "recency", "value", "fit"}
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "score: write CSV header")
	}

	for _, sc := range scored {
		row := []string{
			sc.Name,
			sc.Email,
			string(sc.Status),
			string(sc.LeadSource),
			strconv.Itoa(sc.Score),
			string(sc.Tier),
			strconv.Itoa(sc.Engagement),
			strconv.Itoa(sc.Recency),
			strconv.Itoa(sc.Value),
			strconv.Itoa(sc.Fit),
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "score: write CSV row")
		}
	}
	return nil
}

func writeScoredTable(w *os.File, scored []model.ScoredClient) error {
	header := fmt.Sprintf("%-25s %-22s %-12s %5s %-5s %4s %4s %4s %4s\n",
		"Name", "Status", "Source", "Score", "Tier", "Eng", "Rec", "Val", "Fit")
	if _, err := fmt.Fprint(w, header); err != nil {
		return eris.Wrap(err, "score: write table header")
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 92)); err != nil {
		return eris.Wrap(err, "score: write table separator")
	}

	for _, sc := range scored {
		name := sc.Name
		if len(name) > 25 {
			name = name[:22] + "..."
		}
		line := fmt.Sprintf("%-25s %-22s %-12s %5d %-5s %4d %4d %4d %4d\n",
			name, sc.Status, sc.LeadSource, sc.Score, sc.Tier,
			sc.Engagement, sc.Recency, sc.Value, sc.Fit)
		if _, err := fmt.Fprint(w, line); err != nil {
			return eris.Wrap(err, "score: write table row")
		}
	}
	return nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
