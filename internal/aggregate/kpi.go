// Package aggregate holds the pure reductions that turn a client list into
// summary shapes: KPIs, pipeline rows, channel metrics, funnel stages and
// lifetime value. Every division is guarded; degenerate input (empty lists,
// all-zero amounts) resolves to zeros, never NaN or Inf.
package aggregate

import "github.com/soscreative/hotline-intel/internal/model"

// activePipelineStatuses is the fixed mid-funnel subset counted as "active":
// paid but not yet through the call.
var activePipelineStatuses = map[model.Status]bool{
	model.StatusPaid:         true,
	model.StatusBooked:       true,
	model.StatusIntakeDone:   true,
	model.StatusReadyForCall: true,
}

// KPIs reduces the client list to the top-line numbers.
func KPIs(clients []model.Client) model.KPISnapshot {
	var k model.KPISnapshot
	k.TotalClients = len(clients)

	for _, c := range clients {
		if c.Paid() {
			k.PaidClients++
			k.TotalRevenue += c.Amount
		}
		if activePipelineStatuses[c.Status] {
			k.ActivePipeline++
		}
	}

	if k.TotalClients > 0 {
		k.ConversionRate = float64(k.PaidClients) / float64(k.TotalClients)
	}
	if k.PaidClients > 0 {
		k.AvgDealSize = k.TotalRevenue / float64(k.PaidClients)
	}
	return k
}
