package opportunity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soscreative/hotline-intel/internal/aggregate"
	"github.com/soscreative/hotline-intel/internal/fixture"
	"github.com/soscreative/hotline-intel/internal/leadscore"
	"github.com/soscreative/hotline-intel/internal/model"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func demoSignals(t *testing.T) *Signals {
	t.Helper()
	snap := fixture.Snapshot(testNow)
	return &Signals{
		Clients:  snap.Clients,
		Scored:   leadscore.ScoreClients(snap.Clients, testNow),
		Channels: aggregate.Channels(snap.Clients),
		Funnel:   aggregate.Funnel(snap.Clients),
		LTV:      aggregate.LTV(snap.Clients, aggregate.LTVOptions{}),
		KPI:      aggregate.KPIs(snap.Clients),
		Health:   model.HealthScore{},
		Intake:   snap.Intake,
	}
}

func ruleSet(opps []model.Opportunity) map[string]model.Opportunity {
	m := make(map[string]model.Opportunity, len(opps))
	for _, o := range opps {
		m[o.Rule] = o
	}
	return m
}

func TestGenerate_ROIDescending(t *testing.T) {
	opps := Generate(demoSignals(t))
	require.NotEmpty(t, opps)

	for i := 1; i < len(opps); i++ {
		assert.GreaterOrEqual(t, opps[i-1].ROI, opps[i].ROI,
			"%s before %s", opps[i-1].Rule, opps[i].Rule)
	}
	for _, o := range opps {
		require.Positive(t, o.Effort, "rule %s", o.Rule)
		assert.InDelta(t, float64(o.Impact)/float64(o.Effort), o.ROI, 1e-9, "rule %s", o.Rule)
	}
}

func TestGenerate_DemoDataset(t *testing.T) {
	opps := Generate(demoSignals(t))
	fired := ruleSet(opps)

	// Always-on rules.
	assert.Contains(t, fired, "referral-program")
	assert.Contains(t, fired, "followup-automation")

	// Demo data conditions.
	assert.Contains(t, fired, "stale-lead-nurture")  // 3 unconverted leads
	assert.Contains(t, fired, "email-list")          // 120 < 200
	assert.Contains(t, fired, "digital-product")     // revenue > $3,000
	assert.Contains(t, fired, "sop-documentation")   // has_sops: false
	assert.Contains(t, fired, "content-consistency") // frequency: rarely

	// Suppressed by the demo data.
	assert.NotContains(t, fired, "upsell-sprint")            // 3/12 = 25% >= 20%
	assert.NotContains(t, fired, "price-increase")           // avg deal above floor
	assert.NotContains(t, fired, "channel-diversification")  // 7 revenue channels

	// Referral at impact 8 / effort 2 leads the ranking.
	assert.Equal(t, "referral-program", opps[0].Rule)
}

func TestUpsellSprint_StrictBoundary(t *testing.T) {
	paidClient := func(p model.Product) model.Client {
		amount := model.ProductPrices[p]
		return model.Client{Status: model.StatusCallComplete, Product: p, Amount: amount}
	}

	t.Run("exactly 20 percent does not fire", func(t *testing.T) {
		clients := []model.Client{
			paidClient(model.ProductSprint),
			paidClient(model.ProductSingleCall),
			paidClient(model.ProductSingleCall),
			paidClient(model.ProductSingleCall),
			paidClient(model.ProductSingleCall),
		}
		s := &Signals{Clients: clients, KPI: aggregate.KPIs(clients)}
		assert.Nil(t, buildUpsellSprint(s))
	})

	t.Run("under 20 percent fires", func(t *testing.T) {
		clients := []model.Client{
			paidClient(model.ProductSprint),
			paidClient(model.ProductSingleCall),
			paidClient(model.ProductSingleCall),
			paidClient(model.ProductSingleCall),
			paidClient(model.ProductSingleCall),
			paidClient(model.ProductSingleCall),
		}
		s := &Signals{Clients: clients, KPI: aggregate.KPIs(clients)}
		opp := buildUpsellSprint(s)
		require.NotNil(t, opp)
		assert.True(t, opp.Unlocked)
	})

	t.Run("no paid clients fires at a zero rate", func(t *testing.T) {
		s := &Signals{Clients: []model.Client{{Status: model.StatusLead}}}
		require.NotNil(t, buildUpsellSprint(s))
	})
}

func TestPriceIncrease_IntakePresence(t *testing.T) {
	lowDeal := model.KPISnapshot{AvgDealSize: 500, PaidClients: 4, TotalRevenue: 2_000}

	t.Run("nil intake skips", func(t *testing.T) {
		assert.Nil(t, buildPriceIncrease(&Signals{KPI: lowDeal}))
	})
	t.Run("unanswered question skips", func(t *testing.T) {
		s := &Signals{KPI: lowDeal, Intake: &model.IntakeData{}}
		assert.Nil(t, buildPriceIncrease(s))
	})
	t.Run("low confidence and low deal fires", func(t *testing.T) {
		s := &Signals{KPI: lowDeal, Intake: &model.IntakeData{PricingConfidence: model.Ptr(4)}}
		opp := buildPriceIncrease(s)
		require.NotNil(t, opp)
		assert.Equal(t, model.PriorityNow, opp.Priority)
	})
	t.Run("confident pricing does not fire", func(t *testing.T) {
		s := &Signals{KPI: lowDeal, Intake: &model.IntakeData{PricingConfidence: model.Ptr(9)}}
		assert.Nil(t, buildPriceIncrease(s))
	})
}

func TestEmailList_UnlockedSemantics(t *testing.T) {
	t.Run("never asked fires locked", func(t *testing.T) {
		opp := buildEmailList(&Signals{})
		require.NotNil(t, opp)
		assert.False(t, opp.Unlocked)
	})
	t.Run("known small list fires unlocked", func(t *testing.T) {
		s := &Signals{Intake: &model.IntakeData{EmailListSize: model.Ptr(50)}}
		opp := buildEmailList(s)
		require.NotNil(t, opp)
		assert.True(t, opp.Unlocked)
	})
	t.Run("healthy list does not fire", func(t *testing.T) {
		s := &Signals{Intake: &model.IntakeData{EmailListSize: model.Ptr(450)}}
		assert.Nil(t, buildEmailList(s))
	})
	t.Run("affirmed list with no size does not fire", func(t *testing.T) {
		s := &Signals{Intake: &model.IntakeData{HasEmailList: model.Ptr(true)}}
		assert.Nil(t, buildEmailList(s))
	})
	t.Run("affirmed but undersized list fires", func(t *testing.T) {
		s := &Signals{Intake: &model.IntakeData{
			HasEmailList:  model.Ptr(true),
			EmailListSize: model.Ptr(50),
		}}
		opp := buildEmailList(s)
		require.NotNil(t, opp)
		assert.True(t, opp.Unlocked)
	})
	t.Run("denied list fires", func(t *testing.T) {
		s := &Signals{Intake: &model.IntakeData{HasEmailList: model.Ptr(false)}}
		require.NotNil(t, buildEmailList(s))
	})
}

func TestChannelDiversification_CountsRevenueChannels(t *testing.T) {
	channels := []model.ChannelMetric{
		{Source: model.SourceIGDM, Leads: 4, Revenue: 1_398},
		{Source: model.SourceReferral, Leads: 2, Revenue: 699},
		{Source: model.SourceWebsite, Leads: 3},
		{Source: model.SourceLinkedIn, Leads: 1},
		{Source: model.SourceMetaAd, Leads: 2},
		{Source: model.SourceIGStory, Leads: 1},
	}

	// Six tracked sources, but only two produce revenue: under the floor.
	opp := buildChannelDiversification(&Signals{Channels: channels})
	require.NotNil(t, opp)
	assert.Contains(t, opp.DataPoints[0], "active channels: 2")

	for i := range channels {
		channels[i].Revenue = 100
	}
	assert.Nil(t, buildChannelDiversification(&Signals{Channels: channels}))
}

func TestSOPDocumentation_PresenceVersusValue(t *testing.T) {
	t.Run("sops confirmed does not fire", func(t *testing.T) {
		s := &Signals{Intake: &model.IntakeData{HasSOPs: model.Ptr(true)}}
		assert.Nil(t, buildSOPDocumentation(s))
	})
	t.Run("sops denied fires unlocked", func(t *testing.T) {
		s := &Signals{Intake: &model.IntakeData{HasSOPs: model.Ptr(false)}}
		opp := buildSOPDocumentation(s)
		require.NotNil(t, opp)
		assert.True(t, opp.Unlocked)
	})
	t.Run("never asked fires locked", func(t *testing.T) {
		opp := buildSOPDocumentation(&Signals{})
		require.NotNil(t, opp)
		assert.False(t, opp.Unlocked)
	})
}

func TestFollowupAutomation_PriorityFromConversion(t *testing.T) {
	t.Run("low conversion is now", func(t *testing.T) {
		opp := buildFollowupAutomation(&Signals{KPI: model.KPISnapshot{ConversionRate: 0.5}})
		require.NotNil(t, opp)
		assert.Equal(t, model.PriorityNow, opp.Priority)
	})
	t.Run("healthy conversion is next", func(t *testing.T) {
		opp := buildFollowupAutomation(&Signals{KPI: model.KPISnapshot{ConversionRate: 0.8}})
		require.NotNil(t, opp)
		assert.Equal(t, model.PriorityNext, opp.Priority)
	})
}

func TestStaleLeadNurture_Floor(t *testing.T) {
	lead := model.Client{Status: model.StatusLead}

	t.Run("at the floor does not fire", func(t *testing.T) {
		s := &Signals{Clients: []model.Client{lead, lead}}
		assert.Nil(t, buildStaleLeadNurture(s))
	})
	t.Run("above the floor fires", func(t *testing.T) {
		s := &Signals{Clients: []model.Client{lead, lead, lead}}
		assert.NotNil(t, buildStaleLeadNurture(s))
	})
}

func TestRuleNames_Count(t *testing.T) {
	names := RuleNames()
	assert.Len(t, names, 11)
	assert.Equal(t, "upsell-sprint", names[0])
	assert.Equal(t, "followup-automation", names[10])
}

func TestGenerate_EmptySnapshot(t *testing.T) {
	opps := Generate(&Signals{})
	fired := ruleSet(opps)

	// The always-on rules still fire with zeroed evidence, and a zero
	// upsell rate sits below the 20% floor.
	assert.Contains(t, fired, "referral-program")
	assert.Contains(t, fired, "followup-automation")
	assert.Contains(t, fired, "upsell-sprint")
}
