// Package decision produces the owner's multi-choice decision prompts.
// Questions are static; the context lines interpolate live numbers and the
// recommended flags come from simple threshold rules over the aggregates.
// Nothing here mutates state — selection handling belongs to the caller.
package decision

import (
	"fmt"

	"github.com/soscreative/hotline-intel/internal/format"
	"github.com/soscreative/hotline-intel/internal/model"
)

// Recommendation thresholds.
const (
	raisePriceDealFloor   = 700.0
	diversifyChannelFloor = 5
	sprintUpsellFloor     = 0.20
	capacityPipelineFloor = 6
	productizeRevenue     = 3_000.0
	emailListFloor        = 200
)

// Inputs is the aggregate bundle the prompt generator reads.
type Inputs struct {
	Clients  []model.Client
	KPI      model.KPISnapshot
	Channels []model.ChannelMetric
	Funnel   []model.FunnelStage
	LTV      model.LTVData
	Health   model.HealthScore
	Intake   *model.IntakeData
}

// Generate returns the fixed, ordered prompt set. All prompts allow multiple
// selections.
func Generate(in Inputs) []model.DecisionPrompt {
	return []model.DecisionPrompt{
		pricingPrompt(in),
		channelPrompt(in),
		capacityPrompt(in),
		sprintPrompt(in),
		emailPrompt(in),
		productizePrompt(in),
		referralPrompt(in),
	}
}

func pricingPrompt(in Inputs) model.DecisionPrompt {
	raise := in.KPI.AvgDealSize < raisePriceDealFloor
	return model.DecisionPrompt{
		ID:       "pricing",
		Question: "What should happen to call pricing this quarter?",
		Context: fmt.Sprintf("Average deal size is %s across %d paid clients; total collected %s.",
			format.Money(in.KPI.AvgDealSize), in.KPI.PaidClients, format.Money(in.KPI.TotalRevenue)),
		Choices: []model.DecisionChoice{
			{Label: "Raise prices across the board", Detail: "Lift every tier 15-20% for new bookings.", Recommended: raise},
			{Label: "Hold prices, add a premium tier", Detail: "Keep entry pricing; introduce a higher-touch package."},
			{Label: "Keep everything as is", Detail: "Revisit after another quarter of data.", Recommended: !raise},
		},
	}
}

func channelPrompt(in Inputs) model.DecisionPrompt {
	active := model.ActiveChannelCount(in.Channels)
	diversify := active < diversifyChannelFloor
	top := topChannel(in.Channels)
	return model.DecisionPrompt{
		ID:       "channels",
		Question: "Where should acquisition effort go next?",
		Context: fmt.Sprintf("%d channels are producing revenue; %s leads with %s at %s conversion.",
			active, top.Source, format.Money(top.Revenue), format.Percent(top.ConversionRate)),
		Choices: []model.DecisionChoice{
			{Label: "Double down on the top channel", Detail: fmt.Sprintf("Put all content effort into %s.", top.Source), Recommended: !diversify},
			{Label: "Open one new channel", Detail: "Run a 60-day test on an adjacent platform.", Recommended: diversify},
			{Label: "Invest in paid acquisition", Detail: "Scale Meta ads against the proven offer."},
		},
	}
}

func capacityPrompt(in Inputs) model.DecisionPrompt {
	stretched := in.KPI.ActivePipeline > capacityPipelineFloor
	return model.DecisionPrompt{
		ID:       "capacity",
		Question: "Is the team's call capacity where it needs to be?",
		Context: fmt.Sprintf("%d clients are active mid-pipeline against a two-person delivery team.",
			in.KPI.ActivePipeline),
		Choices: []model.DecisionChoice{
			{Label: "Bring in a contract facilitator", Detail: "Train one associate on the documented call format.", Recommended: stretched},
			{Label: "Cap weekly bookings", Detail: "Protect quality by limiting the calendar.", Recommended: stretched},
			{Label: "Capacity is fine", Recommended: !stretched},
		},
	}
}

func sprintPrompt(in Inputs) model.DecisionPrompt {
	rate := upsellRate(in)
	push := rate < sprintUpsellFloor
	return model.DecisionPrompt{
		ID:       "sprint",
		Question: "How hard should the Clarity Sprint be pushed?",
		Context: fmt.Sprintf("Sprint upsell rate is %s against a 20%% benchmark.",
			format.Percent(rate)),
		Choices: []model.DecisionChoice{
			{Label: "Pitch it on every call", Detail: "Make the sprint the default next step.", Recommended: push},
			{Label: "Reserve it for ideal fits", Detail: "Only offer where a multi-session arc is clearly right."},
			{Label: "Rework the sprint offer", Detail: "Repackage before pushing harder."},
		},
	}
}

func emailPrompt(in Inputs) model.DecisionPrompt {
	has := in.Intake != nil && in.Intake.HasEmailList != nil && *in.Intake.HasEmailList
	size := -1
	if in.Intake != nil && in.Intake.EmailListSize != nil {
		size = *in.Intake.EmailListSize
	}
	build := size < emailListFloor && !(has && size < 0)
	context := "No email list size on record."
	switch {
	case size >= 0:
		context = fmt.Sprintf("Email list holds %s subscribers.", format.Count(size))
	case has:
		context = "An email list exists; its size is untracked."
	}
	return model.DecisionPrompt{
		ID:       "email",
		Question: "What role should email play this quarter?",
		Context:  context,
		Choices: []model.DecisionChoice{
			{Label: "Build the list first", Detail: "Lead magnet plus past-client import.", Recommended: build},
			{Label: "Start a weekly letter now", Detail: "Ship to whoever is already there."},
			{Label: "Deprioritize email", Detail: "Stay focused on social DM flows.", Recommended: !build},
		},
	}
}

func productizePrompt(in Inputs) model.DecisionPrompt {
	ready := in.KPI.TotalRevenue > productizeRevenue
	return model.DecisionPrompt{
		ID:       "productize",
		Question: "Is it time to sell something that isn't a calendar slot?",
		Context: fmt.Sprintf("Service revenue to date is %s; 12-month projection %s.",
			format.Money(in.KPI.TotalRevenue), format.Money(in.LTV.Projected12)),
		Choices: []model.DecisionChoice{
			{Label: "Presell a digital product", Detail: "Validate with ten preorders before building.", Recommended: ready},
			{Label: "Launch a group program", Detail: "One-to-many version of the call format."},
			{Label: "Stay services-only", Detail: "Revisit at the next revenue milestone.", Recommended: !ready},
		},
	}
}

func referralPrompt(in Inputs) model.DecisionPrompt {
	referrals := 0
	for _, ch := range in.Channels {
		if ch.Source == model.SourceReferral {
			referrals = ch.Conversions
		}
	}
	return model.DecisionPrompt{
		ID:       "referral",
		Question: "How should referrals be handled going forward?",
		Context:  fmt.Sprintf("Referrals have produced %d paying clients with no formal program.", referrals),
		Choices: []model.DecisionChoice{
			// Formalizing referrals is recommended unconditionally; it is
			// the cheapest channel regardless of current volume.
			{Label: "Formalize a two-sided reward", Detail: "Session credit for referrer and referee.", Recommended: true},
			{Label: "Ask ad hoc after great calls", Detail: "Keep it personal, no standing offer."},
			{Label: "Leave referrals organic"},
		},
	}
}

func upsellRate(in Inputs) float64 {
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

func topChannel(channels []model.ChannelMetric) model.ChannelMetric {
	var top model.ChannelMetric
	for _, ch := range channels {
		if ch.Revenue > top.Revenue {
			top = ch
		}
	}
	return top
}
