package aggregate

import "github.com/soscreative/hotline-intel/internal/model"

// funnelStages defines the six named macro-funnel stages. A client counts
// toward a stage when its status has reached that stage or beyond, so counts
// are non-increasing along the funnel by construction.
var funnelStages = []struct {
	name  string
	stage model.Status
}{
	{"Leads", model.StatusLead},
	{"Paid", model.StatusPaid},
	{"Booked", model.StatusBooked},
	{"Intake Done", model.StatusIntakeDone},
	{"Call Complete", model.StatusCallComplete},
	{"Follow-Up Sent", model.StatusFollowUpSent},
}

// Funnel computes the six-stage macro funnel. Stage 0's conversion rate is
// 1.0; every later stage converts against the stage before it, 0 when the
// previous stage is empty.
func Funnel(clients []model.Client) []model.FunnelStage {
	stages := make([]model.FunnelStage, len(funnelStages))
	for i, def := range funnelStages {
		count := 0
		for _, c := range clients {
			if c.Status.AtLeast(def.stage) {
				count++
			}
		}
		stages[i] = model.FunnelStage{Name: def.name, Count: count}

		if i == 0 {
			stages[i].ConversionRate = 1.0
			continue
		}
		if prev := stages[i-1].Count; prev > 0 {
			stages[i].ConversionRate = float64(count) / float64(prev)
		}
	}
	return stages
}

// MicroFunnel computes per-status reached counts across the full pipeline
// order, with each stage's drop-off rate from the stage before it.
func MicroFunnel(clients []model.Client) []model.MicroFunnelStage {
	stages := make([]model.MicroFunnelStage, len(model.PipelineOrder))
	for i, status := range model.PipelineOrder {
		count := 0
		for _, c := range clients {
			if c.Status.AtLeast(status) {
				count++
			}
		}
		stages[i] = model.MicroFunnelStage{Status: status, Count: count}

		if i == 0 {
			continue
		}
		if prev := stages[i-1].Count; prev > 0 {
			stages[i].DropOffRate = 1 - float64(count)/float64(prev)
		}
	}
	return stages
}
