// Package export renders a full report into machine-readable formats:
// JSON and YAML for the whole report, CSV for the scored lead table, and
// a multi-sheet XLSX workbook for spreadsheet review.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/soscreative/hotline-intel/internal/engine"
	"github.com/soscreative/hotline-intel/internal/leadscore"
)

// JSON writes the report as indented JSON.
func JSON(w io.Writer, r engine.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return eris.Wrap(err, "export: encode json")
	}
	return nil
}

// YAML writes the report as YAML.
func YAML(w io.Writer, r engine.Report) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(r); err != nil {
		return eris.Wrap(err, "export: encode yaml")
	}
	return nil
}

// CSV writes the scored lead table, one row per client, hottest first.
func CSV(w io.Writer, r engine.Report) error {
	cw := csv.NewWriter(w)

	header := []string{
		"name", "email", "status", "lead_source", "score", "tier",
		"engagement", "recency", "value", "fit",
	}
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}

	for _, sc := range leadscore.Ranked(r.Scored) {
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
			return eris.Wrapf(err, "export: write csv row for %s", sc.Name)
		}
	}

	cw.Flush()
	return eris.Wrap(cw.Error(), "export: flush csv")
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
