package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
	"gopkg.in/yaml.v3"

	"github.com/soscreative/hotline-intel/internal/engine"
	"github.com/soscreative/hotline-intel/internal/fixture"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func demoReport(t *testing.T) engine.Report {
	t.Helper()
	return engine.Run(fixture.Snapshot(testNow), engine.Options{Now: testNow})
}

func TestJSON_RoundTrip(t *testing.T) {
	r := demoReport(t)

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, r))

	var decoded engine.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, r.KPI, decoded.KPI)
	assert.Len(t, decoded.Scored, len(r.Scored))
	assert.Len(t, decoded.Benchmarks, len(r.Benchmarks))
}

func TestYAML_Decodes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, demoReport(t)))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "kpi")
	assert.Contains(t, decoded, "opportunities")
}

func TestCSV_ScoredTable(t *testing.T) {
	r := demoReport(t)

	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, r))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(r.Scored)+1)

	assert.Equal(t, []string{
		"name", "email", "status", "lead_source", "score", "tier",
		"engagement", "recency", "value", "fit",
	}, rows[0])

	// Rows come out hottest first.
	prev := 101
	for _, row := range rows[1:] {
		require.Len(t, row, 10)
		score := 0
		for _, c := range row[4] {
			score = score*10 + int(c-'0')
		}
		assert.LessOrEqual(t, score, prev)
		prev = score
	}
}

func TestXLSX_Workbook(t *testing.T) {
	r := demoReport(t)

	var buf bytes.Buffer
	require.NoError(t, XLSX(&buf, r))

	f, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)

	for _, name := range []string{
		"KPIs", "Lead Scores", "Channels", "Funnel",
		"Health", "Opportunities", "Benchmarks",
	} {
		sheet, ok := f.Sheet[name]
		require.True(t, ok, "missing sheet %q", name)
		assert.NotEmpty(t, sheet.Rows, "sheet %q", name)
	}

	leads := f.Sheet["Lead Scores"]
	require.Greater(t, len(leads.Rows), 1)
	assert.Equal(t, "Name", leads.Rows[0].Cells[0].String())
	assert.Len(t, leads.Rows, len(r.Scored)+1)
}
