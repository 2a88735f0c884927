// Package benchmark compares the business's computed metrics against fixed
// industry thresholds for high-ticket creative consultancies. The threshold
// constants are sourced domain knowledge (First Page Sage, Consulting
// Success and similar industry reports), not derived from the input.
package benchmark

import (
	"github.com/soscreative/hotline-intel/internal/model"
)

// row defines one benchmark metric: its three tier thresholds and the
// comparison direction.
type row struct {
	metric         string
	unit           string
	emerging       float64
	growing        float64
	established    float64
	higherIsBetter bool
	value          func(Inputs) float64
}

// Inputs is the aggregate bundle the benchmark table reads.
type Inputs struct {
	Clients  []model.Client
	Scored   []model.ScoredClient
	KPI      model.KPISnapshot
	Channels []model.ChannelMetric
	Funnel   []model.FunnelStage
	LTV      model.LTVData
	Intake   *model.IntakeData
}

// table is the fixed benchmark set, in display order. For lower-is-better
// rows the established threshold is the lowest numeric value.
var table = []row{
	{"Lead-to-Paid Conversion", "rate", 0.10, 0.20, 0.35, true,
		func(in Inputs) float64 { return in.KPI.ConversionRate }},
	{"Average Deal Size", "usd", 500, 800, 1_500, true,
		func(in Inputs) float64 { return in.KPI.AvgDealSize }},
	{"Client LTV", "usd", 600, 1_000, 2_000, true,
		func(in Inputs) float64 { return in.LTV.OverallLTV }},
	{"Projected Annual Revenue", "usd", 25_000, 75_000, 150_000, true,
		func(in Inputs) float64 { return in.LTV.Projected12 }},
	{"Active Channels", "count", 2, 4, 6, true,
		func(in Inputs) float64 { return float64(model.ActiveChannelCount(in.Channels)) }},
	{"Booking Show Rate", "rate", 0.75, 0.85, 0.92, true, bookingShowRate},
	{"Sprint Upsell Rate", "rate", 0.10, 0.20, 0.30, true, sprintUpsellRate},
	{"Hot Lead Share", "rate", 0.10, 0.25, 0.40, true, hotLeadShare},
	{"Email List", "count", 100, 2_000, 10_000, true,
		func(in Inputs) float64 { return intakeValue(in.Intake, listSize, 0) }},
	{"Testimonials", "count", 3, 15, 50, true,
		func(in Inputs) float64 { return intakeValue(in.Intake, testimonials, 0) }},
	{"Team Size", "count", 1, 3, 8, true,
		func(in Inputs) float64 { return intakeValue(in.Intake, team, defaultTeamSize) }},
	{"Hours per Client", "hours", 6, 4.5, 3, false,
		func(in Inputs) float64 { return intakeValue(in.Intake, hours, defaultHoursPerClient) }},
	{"Days to Convert", "days", 14, 7, 3, false, avgDaysToConvert},
}

// Fallbacks for unanswered intake questions. Hours assume a 45-minute call
// plus prep, action plan and admin; team size assumes owner plus one.
const (
	defaultHoursPerClient = 3.5
	defaultTeamSize       = 2
)

// Intake accessors for intakeValue, one per intake-backed row.
func listSize(in *model.IntakeData) *float64     { return optFloat(in.EmailListSize) }
func testimonials(in *model.IntakeData) *float64 { return optFloat(in.TestimonialCount) }
func team(in *model.IntakeData) *float64         { return optFloat(in.TeamSize) }
func hours(in *model.IntakeData) *float64        { return in.HoursPerClient }

func optFloat(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}

// intakeValue reads one optional intake answer, falling back when the intake
// or the answer is absent.
func intakeValue(in *model.IntakeData, get func(*model.IntakeData) *float64, fallback float64) float64 {
	if in == nil {
		return fallback
	}
	if v := get(in); v != nil {
		return *v
	}
	return fallback
}

// Generate computes the full benchmark table against the given inputs.
func Generate(in Inputs) []model.Benchmark {
	out := make([]model.Benchmark, 0, len(table))
	for _, r := range table {
		v := r.value(in)
		out = append(out, model.Benchmark{
			Metric:         r.metric,
			Unit:           r.unit,
			YourValue:      v,
			Emerging:       r.emerging,
			Growing:        r.growing,
			Established:    r.established,
			HigherIsBetter: r.higherIsBetter,
			Standing:       standing(v, r),
		})
	}
	return out
}

// standing places the observed value among the thresholds, respecting the
// metric's direction. Beyond established in the favorable direction is
// leading; reaching a threshold exactly counts as being at it.
func standing(v float64, r row) model.Standing {
	if r.higherIsBetter {
		switch {
		case v > r.established:
			return model.StandingLeading
		case v >= r.established:
			return model.StandingEstablished
		case v >= r.growing:
			return model.StandingGrowing
		case v >= r.emerging:
			return model.StandingEmerging
		default:
			return model.StandingBelowEmerging
		}
	}
	switch {
	case v < r.established:
		return model.StandingLeading
	case v <= r.established:
		return model.StandingEstablished
	case v <= r.growing:
		return model.StandingGrowing
	case v <= r.emerging:
		return model.StandingEmerging
	default:
		return model.StandingBelowEmerging
	}
}

func bookingShowRate(in Inputs) float64 {
	booked, completed := 0, 0
	for _, c := range in.Clients {
		if c.Status.AtLeast(model.StatusBooked) {
			booked++
		}
		if c.Status.AtLeast(model.StatusCallComplete) {
			completed++
		}
	}
	if booked == 0 {
		return 0
	}
	return float64(completed) / float64(booked)
}

func sprintUpsellRate(in Inputs) float64 {
	if in.KPI.PaidClients == 0 {
		return 0
	}
	sprints := 0
	for _, c := range in.Clients {
		if c.Paid() && c.Product == model.ProductSprint {
			sprints++
		}
	}
	return float64(sprints) / float64(in.KPI.PaidClients)
}

func hotLeadShare(in Inputs) float64 {
	if len(in.Scored) == 0 {
		return 0
	}
	hot := 0
	for _, s := range in.Scored {
		if s.Tier == model.TierHot {
			hot++
		}
	}
	return float64(hot) / float64(len(in.Scored))
}

// avgDaysToConvert averages the lead-to-payment gap across paid clients
// with both dates present.
func avgDaysToConvert(in Inputs) float64 {
	var total float64
	n := 0
	for _, c := range in.Clients {
		if !c.Paid() || c.PaymentDate == nil {
			continue
		}
		days := c.PaymentDate.Sub(c.Created).Hours() / 24
		if days < 0 {
			continue
		}
		total += days
		n++
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}
