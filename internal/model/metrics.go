package model

// KPISnapshot is the top-line reduction over a client list.
type KPISnapshot struct {
	TotalClients   int     `json:"total_clients"`
	PaidClients    int     `json:"paid_clients"`
	TotalRevenue   float64 `json:"total_revenue"`
	ActivePipeline int     `json:"active_pipeline"`
	ConversionRate float64 `json:"conversion_rate"`
	AvgDealSize    float64 `json:"avg_deal_size"`
}

// PipelineRow is one pipeline status with its matching clients and value.
type PipelineRow struct {
	Status  Status   `json:"status"`
	Clients []Client `json:"clients"`
	Count   int      `json:"count"`
	Value   float64  `json:"value"`
}

// ChannelMetric is the per-lead-source aggregate.
type ChannelMetric struct {
	Source         LeadSource `json:"source"`
	Leads          int        `json:"leads"`
	Conversions    int        `json:"conversions"`
	Revenue        float64    `json:"revenue"`
	ConversionRate float64    `json:"conversion_rate"`
	AvgDealSize    float64    `json:"avg_deal_size"`
}

// ActiveChannelCount counts sources that have produced revenue. A source
// with leads but no payments is tracked, not active.
func ActiveChannelCount(channels []ChannelMetric) int {
	n := 0
	for _, ch := range channels {
		if ch.Revenue > 0 {
			n++
		}
	}
	return n
}

// FunnelStage is one named funnel stage with its reached count and
// stage-over-stage conversion. Counts are non-increasing along the funnel.
type FunnelStage struct {
	Name           string  `json:"name"`
	Count          int     `json:"count"`
	ConversionRate float64 `json:"conversion_rate"`
}

// MicroFunnelStage is one pipeline status with its reached count and the
// drop-off rate from the previous status.
type MicroFunnelStage struct {
	Status      Status  `json:"status"`
	Count       int     `json:"count"`
	DropOffRate float64 `json:"drop_off_rate"`
}

// LTVData summarizes lifetime value across the client base.
type LTVData struct {
	OverallLTV  float64                `json:"overall_ltv"`
	BySource    map[LeadSource]float64 `json:"by_source"`
	ByProduct   []ProductLTV           `json:"by_product"`
	Projected12 float64                `json:"projected_12mo"`
	// WindowMonths is the observation window the projection assumed.
	WindowMonths float64 `json:"window_months"`
}

// ProductLTV is the expected value for one product line, in first-seen order.
type ProductLTV struct {
	Product Product `json:"product"`
	Value   float64 `json:"value"`
}
