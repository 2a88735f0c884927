package opportunity

import (
	"fmt"

	"github.com/soscreative/hotline-intel/internal/format"
	"github.com/soscreative/hotline-intel/internal/model"
)

// Rule thresholds. Each is named so no rule carries a bare literal.
const (
	upsellRateFloor        = 0.20
	priceAvgDealFloor      = 700.0
	pricingConfidenceFloor = 7
	staleLeadFloor         = 2
	warmLeadFloor          = 3
	channelCountFloor      = 5
	emailListFloor         = 200
	digitalProductRevenue  = 3_000.0
	automationConvFloor    = 0.70
)

// rule is one named check: build returns nil when the rule does not fire.
type rule struct {
	name  string
	build func(*Signals) *model.Opportunity
}

// battery is the fixed evaluation order. Rules are not mutually exclusive;
// any subset may fire on a given snapshot.
var battery = []rule{
	{"upsell-sprint", buildUpsellSprint},
	{"price-increase", buildPriceIncrease},
	{"stale-lead-nurture", buildStaleLeadNurture},
	{"warm-lead-activation", buildWarmLeadActivation},
	{"channel-diversification", buildChannelDiversification},
	{"email-list", buildEmailList},
	{"referral-program", buildReferralProgram},
	{"digital-product", buildDigitalProduct},
	{"sop-documentation", buildSOPDocumentation},
	{"content-consistency", buildContentConsistency},
	{"followup-automation", buildFollowupAutomation},
}

// buildUpsellSprint fires when fewer than 20% of paid clients bought the
// sprint. The inequality is strict: exactly 20% does not fire. With no paid
// clients the rate is zero, so the rule fires.
func buildUpsellSprint(s *Signals) *model.Opportunity {
	paid := s.PaidCount()
	rate := s.UpsellRate()
	if rate >= upsellRateFloor {
		return nil
	}
	sprints := s.SprintCount()
	return &model.Opportunity{
		Title: "Pitch the Clarity Sprint to single-call clients",
		Description: fmt.Sprintf(
			"Only %d of %d paid clients (%s) bought the 3-Session Clarity Sprint. Offering it at the end of every first call is the fastest route to a higher average deal.",
			sprints, paid, format.Percent(rate)),
		Why: fmt.Sprintf(
			"Sprint buyers pay %s vs the %s average deal; lifting the upsell rate to 20%% adds revenue without new leads.",
			format.Money(model.ProductPrices[model.ProductSprint]), format.Money(s.KPI.AvgDealSize)),
		Category: model.CategoryRevenue,
		Priority: model.PriorityNext,
		Effort:   3,
		Impact:   8,
		Steps: []model.ActivationStep{
			{Step: 1, Action: "Write the sprint pitch", Detail: "One paragraph connecting the call's outcome to a three-session arc."},
			{Step: 2, Action: "Add it to the follow-up template", Detail: "Every post-call email closes with the sprint offer.", Tool: "email"},
			{Step: 3, Action: "Offer a returning-client rate", Detail: "Credit the single-call fee against the sprint for 14 days."},
		},
		Metrics:  []string{"sprint upsell rate", "average deal size"},
		DataPoints: []string{
			fmt.Sprintf("sprint buyers: %d/%d paid", sprints, paid),
			fmt.Sprintf("upsell rate: %s (target 20%%)", format.Percent(rate)),
		},
		Unlocked: true,
	}
}

// buildPriceIncrease requires intake presence: without a pricing-confidence
// answer the rule is skipped entirely, not defaulted.
func buildPriceIncrease(s *Signals) *model.Opportunity {
	if s.Intake == nil || s.Intake.PricingConfidence == nil {
		return nil
	}
	confidence := *s.Intake.PricingConfidence
	if s.KPI.AvgDealSize >= priceAvgDealFloor || confidence >= pricingConfidenceFloor {
		return nil
	}
	return &model.Opportunity{
		Title: "Raise call prices",
		Description: fmt.Sprintf(
			"Average deal size is %s and you rated pricing confidence %d/10. Both point the same direction: the current rates undercharge.",
			format.Money(s.KPI.AvgDealSize), confidence),
		Why: fmt.Sprintf(
			"A 20%% price lift on %d paid clients would have added %s with zero extra delivery time.",
			s.KPI.PaidClients, format.Money(s.KPI.TotalRevenue*0.2)),
		Category: model.CategoryPricing,
		Priority: model.PriorityNow,
		Effort:   2,
		Impact:   7,
		Steps: []model.ActivationStep{
			{Step: 1, Action: "Reprice the entry call", Detail: "Move First Call from $499 to $599 for new bookings.", Tool: "Stripe"},
			{Step: 2, Action: "Grandfather open pipeline", Detail: "Honor quoted prices for anyone already in the funnel."},
			{Step: 3, Action: "Watch conversion for 30 days", Detail: "Roll back only if lead-to-paid drops more than 10 points."},
		},
		Metrics:  []string{"average deal size", "lead-to-paid conversion"},
		DataPoints: []string{
			fmt.Sprintf("avg deal: %s (floor %s)", format.Money(s.KPI.AvgDealSize), format.Money(priceAvgDealFloor)),
			fmt.Sprintf("pricing confidence: %d/10", confidence),
		},
		Unlocked: true,
	}
}

func buildStaleLeadNurture(s *Signals) *model.Opportunity {
	stale := s.StaleLeadCount()
	if stale <= staleLeadFloor {
		return nil
	}
	return &model.Opportunity{
		Title: "Nurture the unconverted leads",
		Description: fmt.Sprintf(
			"%d captured leads never paid and are sitting idle at the top of the pipeline.", stale),
		Why: fmt.Sprintf(
			"At the current %s average deal, converting even a third of them is worth %s.",
			format.Money(s.KPI.AvgDealSize), format.Money(s.KPI.AvgDealSize*float64(stale)/3)),
		Category: model.CategoryConversion,
		Priority: model.PriorityNow,
		Effort:   3,
		Impact:   6,
		Steps: []model.ActivationStep{
			{Step: 1, Action: "Send a three-email nurture arc", Detail: "Problem story, client result, direct booking link.", Tool: "email"},
			{Step: 2, Action: "Close with a deadline", Detail: "A 7-day booking window converts fence-sitters."},
		},
		Metrics:  []string{"stale lead count", "lead-to-paid conversion"},
		DataPoints: []string{
			fmt.Sprintf("unconverted leads: %d (floor %d)", stale, staleLeadFloor),
		},
		Unlocked: true,
	}
}

func buildWarmLeadActivation(s *Signals) *model.Opportunity {
	warm := s.WarmCount()
	if warm <= warmLeadFloor {
		return nil
	}
	return &model.Opportunity{
		Title: "Activate the warm tier",
		Description: fmt.Sprintf(
			"%d clients score Warm — engaged recently but stalled short of the next stage.", warm),
		Why: "Warm leads convert on a single well-timed personal touch far more often than cold ones; the scoring already proves the intent.",
		Category: model.CategoryConversion,
		Priority: model.PriorityNext,
		Effort:   2,
		Impact:   6,
		Steps: []model.ActivationStep{
			{Step: 1, Action: "Pull the warm list", Detail: "Sort scored clients by tier and take the Warm band."},
			{Step: 2, Action: "Send a personal check-in", Detail: "Reference their last touchpoint, not a template blast."},
		},
		Metrics:  []string{"warm tier count", "stage advancement rate"},
		DataPoints: []string{
			fmt.Sprintf("warm-tier clients: %d (floor %d)", warm, warmLeadFloor),
		},
		Unlocked: true,
	}
}

func buildChannelDiversification(s *Signals) *model.Opportunity {
	active := model.ActiveChannelCount(s.Channels)
	if active >= channelCountFloor {
		return nil
	}
	top := topChannel(s.Channels)
	return &model.Opportunity{
		Title: "Open new acquisition channels",
		Description: fmt.Sprintf(
			"Only %d channels are producing revenue; %s carries %s of it.",
			active, top.Source, format.Percent(revenueShare(s.Channels, top))),
		Why: "A single dominant channel is a platform-risk concentration; one algorithm change can empty the pipeline.",
		Category: model.CategoryChannels,
		Priority: model.PriorityLater,
		Effort:   6,
		Impact:   7,
		Steps: []model.ActivationStep{
			{Step: 1, Action: "Pick one adjacent channel", Detail: "LinkedIn or referral partnerships reuse existing content."},
			{Step: 2, Action: "Commit to a 60-day test", Detail: "Track leads and conversion per channel before judging."},
			{Step: 3, Action: "Compare CAC against incumbents", Detail: "Keep the channel only if it beats the worst current one."},
		},
		Metrics:  []string{"active channel count", "top-channel revenue share"},
		DataPoints: []string{
			fmt.Sprintf("active channels: %d (floor %d)", active, channelCountFloor),
		},
		Unlocked: true,
	}
}

func buildEmailList(s *Signals) *model.Opportunity {
	has := s.Intake != nil && s.Intake.HasEmailList != nil && *s.Intake.HasEmailList
	known := s.Intake != nil && s.Intake.EmailListSize != nil
	if known && *s.Intake.EmailListSize >= emailListFloor {
		return nil
	}
	// An affirmed list with no size on record is taken at its word.
	if has && !known {
		return nil
	}
	desc := "No owned email list is on record; every lead lives on rented platforms."
	points := []string{"email list: none recorded"}
	if known {
		desc = fmt.Sprintf("The email list holds %s subscribers — below the %d needed for a reliable launch audience.",
			format.Count(*s.Intake.EmailListSize), emailListFloor)
		points = []string{fmt.Sprintf("email list: %d (floor %d)", *s.Intake.EmailListSize, emailListFloor)}
	}
	return &model.Opportunity{
		Title:       "Build the owned email list",
		Description: desc,
		Why: fmt.Sprintf(
			"With %d clients already through the funnel, past buyers alone seed a list that no platform change can take away.",
			s.KPI.TotalClients),
		Category: model.CategoryChannels,
		Priority: model.PriorityNext,
		Effort:   4,
		Impact:   8,
		Steps: []model.ActivationStep{
			{Step: 1, Action: "Stand up a lead magnet", Detail: "A one-page creative-audit checklist gated by email.", Tool: "ConvertKit"},
			{Step: 2, Action: "Import past clients", Detail: "Everyone who paid has opted into the relationship."},
			{Step: 3, Action: "Send one letter a week", Detail: "Consistency beats volume at this list size."},
		},
		Metrics:    []string{"list size", "subscriber-to-booking rate"},
		DataPoints: points,
		Unlocked:   known,
	}
}

// buildReferralProgram always fires: referrals are always worth formalizing.
func buildReferralProgram(s *Signals) *model.Opportunity {
	referrals := 0
	for _, ch := range s.Channels {
		if ch.Source == model.SourceReferral {
			referrals = ch.Conversions
		}
	}
	return &model.Opportunity{
		Title: "Formalize the referral program",
		Description: fmt.Sprintf(
			"Referrals already produced %d paying clients with no program behind them.", referrals),
		Why: "Referred clients close faster and at the lowest acquisition cost of any channel; a standing offer turns accidents into a system.",
		Category: model.CategoryRevenue,
		Priority: model.PriorityNow,
		Effort:   2,
		Impact:   8,
		Steps: []model.ActivationStep{
			{Step: 1, Action: "Define the reward", Detail: "A session credit for both sides keeps it in-product."},
			{Step: 2, Action: "Ask at the follow-up", Detail: "The post-call email is the highest-goodwill moment to ask."},
			{Step: 3, Action: "Track source on every lead", Detail: "Referral attribution lives in the CRM's lead_source field."},
		},
		Metrics:  []string{"referral conversions", "referral share of revenue"},
		DataPoints: []string{
			fmt.Sprintf("referral conversions to date: %d", referrals),
		},
		Unlocked: true,
	}
}

func buildDigitalProduct(s *Signals) *model.Opportunity {
	if s.KPI.TotalRevenue <= digitalProductRevenue {
		return nil
	}
	return &model.Opportunity{
		Title: "Package the call methodology as a digital product",
		Description: fmt.Sprintf(
			"%s of service revenue validates demand; the call framework can sell while you sleep.",
			format.Money(s.KPI.TotalRevenue)),
		Why: "Calls cap revenue at calendar capacity; a self-serve product is the first income stream without a per-client hour attached.",
		Category: model.CategoryProduct,
		Priority: model.PriorityExplore,
		Effort:   8,
		Impact:   7,
		Steps: []model.ActivationStep{
			{Step: 1, Action: "Outline the repeatable framework", Detail: "The questions asked on every call are the table of contents."},
			{Step: 2, Action: "Presell before building", Detail: "Ten preorders from the list validate the price point."},
			{Step: 3, Action: "Launch to past clients first", Detail: "Warmest audience, honest feedback, first testimonials."},
		},
		Metrics:  []string{"preorder count", "non-call revenue share"},
		DataPoints: []string{
			fmt.Sprintf("total revenue: %s (floor %s)", format.Money(s.KPI.TotalRevenue), format.Money(digitalProductRevenue)),
		},
		Unlocked: true,
	}
}

// buildSOPDocumentation fires unless intake affirmatively reports SOPs
// exist. Unlocked is true only when intake was supplied at all, so a
// consumer can distinguish a confirmed gap from a question never asked.
func buildSOPDocumentation(s *Signals) *model.Opportunity {
	asked := s.Intake != nil
	if asked && s.Intake.HasSOPs != nil && *s.Intake.HasSOPs {
		return nil
	}
	desc := "Delivery process exists only in your head; nothing is written down."
	if !asked {
		desc = "No operations questionnaire on file — delivery process is presumed undocumented."
	}
	return &model.Opportunity{
		Title:       "Document the delivery SOPs",
		Description: desc,
		Why: fmt.Sprintf(
			"With %d clients in the active pipeline, every undocumented step is repeated from scratch and blocks ever delegating a call.",
			s.KPI.ActivePipeline),
		Category: model.CategorySystems,
		Priority: model.PriorityLater,
		Effort:   5,
		Impact:   6,
		Steps: []model.ActivationStep{
			{Step: 1, Action: "Record one full delivery cycle", Detail: "Booking to follow-up, narrated as you do it.", Tool: "Loom"},
			{Step: 2, Action: "Turn the recording into checklists", Detail: "One page per pipeline stage."},
			{Step: 3, Action: "Test against the next client", Detail: "If the checklist is enough, it is done."},
		},
		Metrics:  []string{"documented stages", "per-client admin time"},
		DataPoints: []string{
			fmt.Sprintf("active pipeline: %d clients", s.KPI.ActivePipeline),
		},
		Unlocked: asked,
	}
}

func buildContentConsistency(s *Signals) *model.Opportunity {
	if s.Intake != nil && s.Intake.ContentFrequency != nil && *s.Intake.ContentFrequency != model.ContentRarely {
		return nil
	}
	lead := topChannel(s.Channels)
	return &model.Opportunity{
		Title:       "Commit to a content cadence",
		Description: "Publishing is rare or unreported, so the top of the funnel restarts from zero between posts.",
		Why: fmt.Sprintf(
			"%s is the strongest channel at %s conversion; consistent posting is what keeps it fed.",
			lead.Source, format.Percent(lead.ConversionRate)),
		Category: model.CategoryContent,
		Priority: model.PriorityNext,
		Effort:   4,
		Impact:   6,
		Steps: []model.ActivationStep{
			{Step: 1, Action: "Pick one format, one slot", Detail: "A weekly teardown post is enough to start."},
			{Step: 2, Action: "Batch a month ahead", Detail: "Four pieces in one sitting removes the daily decision."},
		},
		Metrics:  []string{"posts per week", "leads per channel"},
		DataPoints: []string{
			fmt.Sprintf("top channel: %s at %s conversion", lead.Source, format.Percent(lead.ConversionRate)),
		},
		Unlocked: s.Intake != nil && s.Intake.ContentFrequency != nil,
	}
}

// buildFollowupAutomation always fires; it is the one rule whose priority
// is computed — "now" when lead-to-paid conversion is under the floor.
func buildFollowupAutomation(s *Signals) *model.Opportunity {
	priority := model.PriorityNext
	if s.KPI.ConversionRate < automationConvFloor {
		priority = model.PriorityNow
	}
	return &model.Opportunity{
		Title: "Automate booking and intake follow-ups",
		Description: fmt.Sprintf(
			"Reminders are manual today; %d clients sit mid-pipeline waiting on a nudge.", s.KPI.ActivePipeline),
		Why: fmt.Sprintf(
			"Lead-to-paid conversion is %s; automated nudges recover stalls without adding founder hours.",
			format.Percent(s.KPI.ConversionRate)),
		Category: model.CategorySystems,
		Priority: priority,
		Effort:   4,
		Impact:   9,
		Steps: []model.ActivationStep{
			{Step: 1, Action: "Map the stall points", Detail: "Paid-no-booking and booked-no-intake are the two big ones."},
			{Step: 2, Action: "Wire timed reminders", Detail: "48h and 5-day nudges per stall point.", Tool: "n8n"},
			{Step: 3, Action: "Escalate to personal outreach", Detail: "Anything still stalled after two nudges gets a human message."},
		},
		Metrics:  []string{"lead-to-paid conversion", "median days to book"},
		DataPoints: []string{
			fmt.Sprintf("conversion rate: %s (now-floor %s)", format.Percent(s.KPI.ConversionRate), format.Percent(automationConvFloor)),
			fmt.Sprintf("active pipeline: %d", s.KPI.ActivePipeline),
		},
		Unlocked: true,
	}
}

// topChannel returns the highest-revenue channel, or a zero value when no
// channels exist.
func topChannel(channels []model.ChannelMetric) model.ChannelMetric {
	var top model.ChannelMetric
	for _, ch := range channels {
		if ch.Revenue > top.Revenue {
			top = ch
		}
	}
	return top
}

func revenueShare(channels []model.ChannelMetric, ch model.ChannelMetric) float64 {
	var total float64
	for _, c := range channels {
		total += c.Revenue
	}
	if total == 0 {
		return 0
	}
	return ch.Revenue / total
}
