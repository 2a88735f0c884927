// Package opportunity is the rule engine that turns the computed aggregates
// into a ranked list of actionable recommendations. Rules are independent
// predicate+factory pairs evaluated in a fixed declared order over one
// immutable signal bundle; none reads another's output.
package opportunity

import (
	"github.com/soscreative/hotline-intel/internal/model"
)

// Signals is the immutable aggregate bundle every rule receives. Build it
// once per generation; rules never mutate it.
type Signals struct {
	Clients  []model.Client
	Scored   []model.ScoredClient
	Channels []model.ChannelMetric
	Funnel   []model.FunnelStage
	LTV      model.LTVData
	KPI      model.KPISnapshot
	Health   model.HealthScore
	Intake   *model.IntakeData
}

// PaidCount returns the number of clients with a completed payment.
func (s *Signals) PaidCount() int {
	n := 0
	for _, c := range s.Clients {
		if c.Paid() {
			n++
		}
	}
	return n
}

// SprintCount returns the number of paid sprint purchasers.
func (s *Signals) SprintCount() int {
	n := 0
	for _, c := range s.Clients {
		if c.Paid() && c.Product == model.ProductSprint {
			n++
		}
	}
	return n
}

// UpsellRate returns sprint purchasers over all paid clients, 0 when no one
// has paid.
func (s *Signals) UpsellRate() float64 {
	paid := s.PaidCount()
	if paid == 0 {
		return 0
	}
	return float64(s.SprintCount()) / float64(paid)
}

// StaleLeadCount returns captured leads that never converted.
func (s *Signals) StaleLeadCount() int {
	n := 0
	for _, c := range s.Clients {
		if c.Status == model.StatusLead && !c.Paid() {
			n++
		}
	}
	return n
}

// WarmCount returns clients scored into the Warm tier.
func (s *Signals) WarmCount() int {
	n := 0
	for _, sc := range s.Scored {
		if sc.Tier == model.TierWarm {
			n++
		}
	}
	return n
}
