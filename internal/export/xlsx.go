package export

import (
	"io"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/soscreative/hotline-intel/internal/engine"
	"github.com/soscreative/hotline-intel/internal/leadscore"
)

// XLSX writes the report as a multi-sheet workbook: one sheet per report
// section, shaped for spreadsheet review rather than re-ingestion.
func XLSX(w io.Writer, r engine.Report) error {
	f := xlsx.NewFile()

	if err := addKPISheet(f, r); err != nil {
		return err
	}
	if err := addLeadSheet(f, r); err != nil {
		return err
	}
	if err := addChannelSheet(f, r); err != nil {
		return err
	}
	if err := addFunnelSheet(f, r); err != nil {
		return err
	}
	if err := addHealthSheet(f, r); err != nil {
		return err
	}
	if err := addOpportunitySheet(f, r); err != nil {
		return err
	}
	if err := addBenchmarkSheet(f, r); err != nil {
		return err
	}

	return eris.Wrap(f.Write(w), "export: write xlsx")
}

func addKPISheet(f *xlsx.File, r engine.Report) error {
	sheet, err := f.AddSheet("KPIs")
	if err != nil {
		return eris.Wrap(err, "export: add kpi sheet")
	}

	addRow(sheet, "Metric", "Value")
	addRow(sheet, "Total Clients", itoa(r.KPI.TotalClients))
	addRow(sheet, "Paid Clients", itoa(r.KPI.PaidClients))
	addRow(sheet, "Total Revenue", money(r.KPI.TotalRevenue))
	addRow(sheet, "Active Pipeline", itoa(r.KPI.ActivePipeline))
	addRow(sheet, "Conversion Rate", percent(r.KPI.ConversionRate))
	addRow(sheet, "Avg Deal Size", money(r.KPI.AvgDealSize))
	addRow(sheet, "Client LTV", money(r.LTV.OverallLTV))
	addRow(sheet, "Projected 12-Month Revenue", money(r.LTV.Projected12))
	return nil
}

func addLeadSheet(f *xlsx.File, r engine.Report) error {
	sheet, err := f.AddSheet("Lead Scores")
	if err != nil {
		return eris.Wrap(err, "export: add lead sheet")
	}

	addRow(sheet, "Name", "Status", "Source", "Score", "Tier",
		"Engagement", "Recency", "Value", "Fit")
	for _, sc := range leadscore.Ranked(r.Scored) {
		addRow(sheet, sc.Name, string(sc.Status), string(sc.LeadSource),
			itoa(sc.Score), string(sc.Tier), itoa(sc.Engagement),
			itoa(sc.Recency), itoa(sc.Value), itoa(sc.Fit))
	}
	return nil
}

func addChannelSheet(f *xlsx.File, r engine.Report) error {
	sheet, err := f.AddSheet("Channels")
	if err != nil {
		return eris.Wrap(err, "export: add channel sheet")
	}

	addRow(sheet, "Channel", "Leads", "Conversions", "Conversion", "Revenue", "Avg Deal")
	for _, ch := range r.Channels {
		addRow(sheet, string(ch.Source), itoa(ch.Leads), itoa(ch.Conversions),
			percent(ch.ConversionRate), money(ch.Revenue), money(ch.AvgDealSize))
	}
	return nil
}

func addFunnelSheet(f *xlsx.File, r engine.Report) error {
	sheet, err := f.AddSheet("Funnel")
	if err != nil {
		return eris.Wrap(err, "export: add funnel sheet")
	}

	addRow(sheet, "Stage", "Count", "Stage Conversion")
	for _, st := range r.Funnel {
		addRow(sheet, st.Name, itoa(st.Count), percent(st.ConversionRate))
	}

	addRow(sheet)
	addRow(sheet, "Pipeline Stage", "Count", "Drop-Off From Previous")
	for _, st := range r.MicroFunnel {
		addRow(sheet, string(st.Status), itoa(st.Count), percent(st.DropOffRate))
	}
	return nil
}

func addHealthSheet(f *xlsx.File, r engine.Report) error {
	sheet, err := f.AddSheet("Health")
	if err != nil {
		return eris.Wrap(err, "export: add health sheet")
	}

	addRow(sheet, "Composite", money(r.Health.Score), string(r.Health.Tier))
	addRow(sheet)
	addRow(sheet, "Dimension", "Score", "Weight")
	for _, d := range r.Health.Dimensions {
		addRow(sheet, string(d.Dimension), money(d.Score), money(d.Weight))
	}
	return nil
}

func addOpportunitySheet(f *xlsx.File, r engine.Report) error {
	sheet, err := f.AddSheet("Opportunities")
	if err != nil {
		return eris.Wrap(err, "export: add opportunity sheet")
	}

	addRow(sheet, "Title", "Category", "Priority", "Effort", "Impact", "ROI")
	for _, opp := range r.Opportunities {
		addRow(sheet, opp.Title, string(opp.Category), string(opp.Priority),
			itoa(opp.Effort), itoa(opp.Impact), money(opp.ROI))
	}
	return nil
}

func addBenchmarkSheet(f *xlsx.File, r engine.Report) error {
	sheet, err := f.AddSheet("Benchmarks")
	if err != nil {
		return eris.Wrap(err, "export: add benchmark sheet")
	}

	addRow(sheet, "Metric", "Yours", "Emerging", "Growing", "Established", "Standing")
	for _, b := range r.Benchmarks {
		addRow(sheet, b.Metric, money(b.YourValue), money(b.Emerging),
			money(b.Growing), money(b.Established), string(b.Standing))
	}
	return nil
}

func addRow(sheet *xlsx.Sheet, cells ...string) {
	row := sheet.AddRow()
	for _, v := range cells {
		row.AddCell().Value = v
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
