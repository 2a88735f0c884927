package health

import (
	"fmt"
	"strings"

	"github.com/soscreative/hotline-intel/internal/format"
	"github.com/soscreative/hotline-intel/internal/model"
)

// Signal point allocations. Within each dimension the points sum to 100.
const (
	revRevenuePts    = 30
	revAvgDealPts    = 25
	revLTVPts        = 25
	revProjectionPts = 20

	pipeConversionPts = 30
	pipeHotRatioPts   = 25
	pipeFullFunnelPts = 25
	pipeCountPts      = 20

	chanDiversityPts     = 30
	chanConcentrationPts = 25
	chanConversionPts    = 25
	chanEmailPts         = 20

	retRepeatPts  = 25
	retUpsellPts  = 25
	retAvgDealPts = 25
	retNPSPts     = 25

	brandDiversityPts = 25
	brandRevenuePts   = 20
	brandWebsitePts   = 20
	brandProofPts     = 20
	brandSocialPts    = 15
)

// Defaults applied when an intake field was never asked. Unknown is scored
// mid-signal rather than zero so a missing questionnaire cannot crater a
// dimension.
const (
	emailUnknownPts  = 10
	npsUnknownPts    = 15
	socialUnknownPts = 10
	websiteAbsentPts = 5
	proofCasePts     = 20
	proofTestimPts   = 10
	proofNonePts     = 5
)

// Inputs bundles everything the health scorer reads. All fields are treated
// as immutable; Calculate never mutates them.
type Inputs struct {
	Clients  []model.Client
	Scored   []model.ScoredClient
	Channels []model.ChannelMetric
	Funnel   []model.FunnelStage
	LTV      model.LTVData
	Intake   *model.IntakeData
	Targets  Targets
}

// Calculate produces the composite health score: five weighted dimensions,
// each 0-100, blended by the configured weights. Pure and order-independent
// over the client list.
func Calculate(in Inputs) model.HealthScore {
	dims := []model.DimensionScore{
		scoreRevenue(in),
		scorePipeline(in),
		scoreChannels(in),
		scoreRetention(in),
		scoreBrand(in),
	}

	var composite float64
	for _, d := range dims {
		composite += d.Score * d.Weight / 100
	}
	if composite > 100 {
		composite = 100
	}

	return model.HealthScore{
		Score:      composite,
		Tier:       model.HealthTierFor(composite),
		Dimensions: dims,
	}
}

// blend normalizes value against target, clamps to [0,1] and scales to pts.
func blend(value, target, pts float64) float64 {
	if target <= 0 {
		return 0
	}
	ratio := value / target
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return ratio * pts
}

func scoreRevenue(in Inputs) model.DimensionScore {
	t := in.Targets
	var revenue float64
	paid := 0
	for _, c := range in.Clients {
		if c.Paid() {
			revenue += c.Amount
			paid++
		}
	}
	var avgDeal float64
	if paid > 0 {
		avgDeal = revenue / float64(paid)
	}

	score := blend(revenue, t.RevenueTarget, revRevenuePts) +
		blend(avgDeal, t.AvgDealTarget, revAvgDealPts) +
		blend(in.LTV.OverallLTV, t.ClientLTVTarget, revLTVPts) +
		blend(in.LTV.Projected12, t.ProjectionTarget, revProjectionPts)

	return model.DimensionScore{
		Dimension: model.DimRevenue,
		Score:     capScore(score),
		Weight:    t.WeightRevenue,
		Breakdown: []string{
			fmt.Sprintf("%s collected vs %s target", format.Money(revenue), format.Money(t.RevenueTarget)),
			fmt.Sprintf("%s average deal vs %s target", format.Money(avgDeal), format.Money(t.AvgDealTarget)),
			fmt.Sprintf("%s per-client LTV vs %s target", format.Money(in.LTV.OverallLTV), format.Money(t.ClientLTVTarget)),
			fmt.Sprintf("%s projected over 12 months vs %s target", format.Money(in.LTV.Projected12), format.Money(t.ProjectionTarget)),
		},
	}
}

func scorePipeline(in Inputs) model.DimensionScore {
	t := in.Targets
	total := len(in.Clients)
	paid := 0
	for _, c := range in.Clients {
		if c.Paid() {
			paid++
		}
	}
	var conversion float64
	if total > 0 {
		conversion = float64(paid) / float64(total)
	}

	hot := 0
	for _, s := range in.Scored {
		if s.Tier == model.TierHot {
			hot++
		}
	}
	var hotRatio float64
	if len(in.Scored) > 0 {
		hotRatio = float64(hot) / float64(len(in.Scored))
	}

	fullFunnel := funnelEndToEnd(in.Funnel)

	score := blend(conversion, t.ConversionTarget, pipeConversionPts) +
		blend(hotRatio, t.HotRatioTarget, pipeHotRatioPts) +
		blend(fullFunnel, t.FullFunnelTarget, pipeFullFunnelPts) +
		blend(float64(total), t.ClientCountTarget, pipeCountPts)

	return model.DimensionScore{
		Dimension: model.DimPipeline,
		Score:     capScore(score),
		Weight:    t.WeightPipeline,
		Breakdown: []string{
			fmt.Sprintf("%s lead-to-paid conversion vs %s target", format.Percent(conversion), format.Percent(t.ConversionTarget)),
			fmt.Sprintf("%d of %d leads scored Hot (%s)", hot, len(in.Scored), format.Percent(hotRatio)),
			fmt.Sprintf("%s full-funnel completion vs %s target", format.Percent(fullFunnel), format.Percent(t.FullFunnelTarget)),
			fmt.Sprintf("%d clients vs %.0f target", total, t.ClientCountTarget),
		},
	}
}

func scoreChannels(in Inputs) model.DimensionScore {
	t := in.Targets
	active := model.ActiveChannelCount(in.Channels)

	var totalRevenue, topRevenue, convSum float64
	for _, ch := range in.Channels {
		totalRevenue += ch.Revenue
		if ch.Revenue > topRevenue {
			topRevenue = ch.Revenue
		}
		convSum += ch.ConversionRate
	}
	var concentration float64
	if totalRevenue > 0 {
		concentration = topRevenue / totalRevenue
	}
	var meanConv float64
	if len(in.Channels) > 0 {
		meanConv = convSum / float64(len(in.Channels))
	}

	// Lower concentration scores higher: the signal is the inverse share.
	score := blend(float64(active), t.ChannelCountTarget, chanDiversityPts) +
		(1-concentration)*chanConcentrationPts +
		blend(meanConv, t.ChannelConvTarget, chanConversionPts) +
		emailSignal(in.Intake, t)

	return model.DimensionScore{
		Dimension: model.DimChannels,
		Score:     capScore(score),
		Weight:    t.WeightChannels,
		Breakdown: []string{
			fmt.Sprintf("%d active revenue channels vs %.0f target", active, t.ChannelCountTarget),
			fmt.Sprintf("top channel holds %s of revenue", format.Percent(concentration)),
			fmt.Sprintf("%s mean channel conversion vs %s target", format.Percent(meanConv), format.Percent(t.ChannelConvTarget)),
			emailBreakdown(in.Intake),
		},
	}
}

func scoreRetention(in Inputs) model.DimensionScore {
	t := in.Targets
	paid := 0
	sprints := 0
	var revenue float64
	paidEmails := make(map[string]int)
	for _, c := range in.Clients {
		if !c.Paid() {
			continue
		}
		paid++
		revenue += c.Amount
		if c.Product == model.ProductSprint {
			sprints++
		}
		if email := strings.ToLower(strings.TrimSpace(c.Email)); email != "" {
			paidEmails[email]++
		}
	}

	// A repeat client is one distinct email with more than one payment,
	// measured against the distinct paid emails.
	repeats := 0
	for _, n := range paidEmails {
		if n > 1 {
			repeats++
		}
	}
	var repeatRate, upsellRate, avgDeal float64
	if len(paidEmails) > 0 {
		repeatRate = float64(repeats) / float64(len(paidEmails))
	}
	if paid > 0 {
		upsellRate = float64(sprints) / float64(paid)
		avgDeal = revenue / float64(paid)
	}

	score := blend(repeatRate, t.RepeatRateTarget, retRepeatPts) +
		blend(upsellRate, t.UpsellRateTarget, retUpsellPts) +
		blend(avgDeal, t.RetentionDealTarget, retAvgDealPts) +
		npsSignal(in.Intake, t)

	return model.DimensionScore{
		Dimension: model.DimRetention,
		Score:     capScore(score),
		Weight:    t.WeightRetention,
		Breakdown: []string{
			fmt.Sprintf("%s repeat-client rate vs %s target", format.Percent(repeatRate), format.Percent(t.RepeatRateTarget)),
			fmt.Sprintf("%s sprint upsell rate vs %s target", format.Percent(upsellRate), format.Percent(t.UpsellRateTarget)),
			fmt.Sprintf("%s average deal vs %s target", format.Money(avgDeal), format.Money(t.RetentionDealTarget)),
			npsBreakdown(in.Intake, t),
		},
	}
}

func scoreBrand(in Inputs) model.DimensionScore {
	t := in.Targets
	products := make(map[model.Product]bool)
	var revenue float64
	for _, c := range in.Clients {
		if !c.Paid() {
			continue
		}
		revenue += c.Amount
		if c.Product != "" {
			products[c.Product] = true
		}
	}

	score := blend(float64(len(products)), t.ProductDiversityTarget, brandDiversityPts) +
		blend(revenue, t.BrandRevenueTarget, brandRevenuePts) +
		websiteSignal(in.Intake) +
		proofSignal(in.Intake) +
		socialSignal(in.Intake, t)

	return model.DimensionScore{
		Dimension: model.DimBrand,
		Score:     capScore(score),
		Weight:    t.WeightBrand,
		Breakdown: []string{
			fmt.Sprintf("%d product tiers vs %.0f target", len(products), t.ProductDiversityTarget),
			fmt.Sprintf("%s revenue vs %s target", format.Money(revenue), format.Money(t.BrandRevenueTarget)),
			websiteBreakdown(in.Intake),
			socialBreakdown(in.Intake),
		},
	}
}

// funnelEndToEnd returns last-stage count over first-stage count.
func funnelEndToEnd(stages []model.FunnelStage) float64 {
	if len(stages) == 0 || stages[0].Count == 0 {
		return 0
	}
	return float64(stages[len(stages)-1].Count) / float64(stages[0].Count)
}

func capScore(s float64) float64 {
	if s > 100 {
		return 100
	}
	return s
}

// emailSignal scores list ownership. An affirmed list earns full points even
// without a size; a sized list scales against the target; an unasked
// question earns the unknown default.
func emailSignal(intake *model.IntakeData, t Targets) float64 {
	if intake != nil && intake.HasEmailList != nil && *intake.HasEmailList {
		return chanEmailPts
	}
	if intake == nil || intake.EmailListSize == nil {
		return emailUnknownPts
	}
	return blend(float64(*intake.EmailListSize), t.EmailListTarget, chanEmailPts)
}

func emailBreakdown(intake *model.IntakeData) string {
	if intake != nil && intake.EmailListSize != nil {
		return fmt.Sprintf("%s email subscribers", format.Count(*intake.EmailListSize))
	}
	if intake != nil && intake.HasEmailList != nil && *intake.HasEmailList {
		return "email list present, size untracked"
	}
	return "email list size unknown"
}

func npsSignal(intake *model.IntakeData, t Targets) float64 {
	if intake == nil || intake.NPS == nil {
		return npsUnknownPts
	}
	return blend(*intake.NPS, t.NPSTarget, retNPSPts)
}

func npsBreakdown(intake *model.IntakeData, t Targets) string {
	if intake == nil || intake.NPS == nil {
		return "NPS not yet collected"
	}
	return fmt.Sprintf("NPS %s vs %.0f target", format.Score(*intake.NPS), t.NPSTarget)
}

func websiteSignal(intake *model.IntakeData) float64 {
	if intake != nil && intake.HasWebsite != nil && *intake.HasWebsite {
		return brandWebsitePts
	}
	return websiteAbsentPts
}

func websiteBreakdown(intake *model.IntakeData) string {
	if intake != nil && intake.HasWebsite != nil && *intake.HasWebsite {
		return "website live"
	}
	return "no website on record"
}

// proofSignal tiers social proof: case studies beat testimonials beat nothing.
func proofSignal(intake *model.IntakeData) float64 {
	if intake != nil {
		if intake.HasCaseStudies != nil && *intake.HasCaseStudies {
			return proofCasePts
		}
		if intake.HasTestimonials != nil && *intake.HasTestimonials {
			return proofTestimPts
		}
	}
	return proofNonePts
}

func socialSignal(intake *model.IntakeData, t Targets) float64 {
	if intake == nil || intake.SocialFollowers == nil {
		return socialUnknownPts
	}
	return blend(float64(*intake.SocialFollowers), t.SocialTarget, brandSocialPts)
}

func socialBreakdown(intake *model.IntakeData) string {
	if intake == nil || intake.SocialFollowers == nil {
		return "social following unknown"
	}
	return fmt.Sprintf("%s social followers", format.Count(*intake.SocialFollowers))
}
