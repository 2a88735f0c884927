package aggregate

import "github.com/soscreative/hotline-intel/internal/model"

// Channels groups clients by lead source and computes per-channel leads,
// conversions, revenue, conversion rate and average deal size. One metric is
// returned per distinct source present in the input, in first-seen order.
func Channels(clients []model.Client) []model.ChannelMetric {
	var order []model.LeadSource
	bySource := make(map[model.LeadSource]*model.ChannelMetric)

	for _, c := range clients {
		m, ok := bySource[c.LeadSource]
		if !ok {
			m = &model.ChannelMetric{Source: c.LeadSource}
			bySource[c.LeadSource] = m
			order = append(order, c.LeadSource)
		}
		m.Leads++
		if c.Paid() {
			m.Conversions++
			m.Revenue += c.Amount
		}
	}

	metrics := make([]model.ChannelMetric, 0, len(order))
	for _, src := range order {
		m := bySource[src]
		if m.Leads > 0 {
			m.ConversionRate = float64(m.Conversions) / float64(m.Leads)
		}
		if m.Conversions > 0 {
			m.AvgDealSize = m.Revenue / float64(m.Conversions)
		}
		metrics = append(metrics, *m)
	}
	return metrics
}
