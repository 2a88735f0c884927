// Package leadscore assigns each client a 0-100 score across four
// sub-dimensions (engagement, recency, value, fit) and a Hot/Warm/Cool/Cold
// tier. All functions are pure arithmetic over an immutable batch.
package leadscore

import (
	"math"
	"sort"
	"time"

	"github.com/soscreative/hotline-intel/internal/model"
)

// subScoreMax bounds each of the four sub-dimensions.
const subScoreMax = 25

// recencyDecayDays is how many elapsed days cost one recency point.
const recencyDecayDays = 3

// engagementByStatus maps pipeline status to engagement points, strictly
// increasing along the pipeline order. The values are domain judgment
// carried over from the production scoring tables, not derived.
var engagementByStatus = map[model.Status]int{
	model.StatusLead:         5,
	model.StatusPaid:         9,
	model.StatusBooked:       12,
	model.StatusIntakeDone:   15,
	model.StatusReadyForCall: 18,
	model.StatusCallComplete: 22,
	model.StatusFollowUpSent: 25,
}

// engagementUnknown is the floor for statuses outside the known pipeline.
const engagementUnknown = 5

// ScoreClients scores every client in the batch, using the full batch for
// amount normalization. The input order is preserved.
func ScoreClients(clients []model.Client, now time.Time) []model.ScoredClient {
	maxAmount := maxBatchAmount(clients)
	scored := make([]model.ScoredClient, 0, len(clients))
	for _, c := range clients {
		scored = append(scored, scoreOne(c, maxAmount, now))
	}
	return scored
}

// Ranked returns a copy of the scored list sorted hottest first. Ties keep
// their input order.
func Ranked(scored []model.ScoredClient) []model.ScoredClient {
	out := make([]model.ScoredClient, len(scored))
	copy(out, scored)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// ScoreClient scores a single client against the full batch.
func ScoreClient(c model.Client, all []model.Client, now time.Time) model.ScoredClient {
	return scoreOne(c, maxBatchAmount(all), now)
}

func scoreOne(c model.Client, maxAmount float64, now time.Time) model.ScoredClient {
	engagement := scoreEngagement(c.Status)
	recency := scoreRecency(c.Created, now)
	value := scoreValue(c.Amount, maxAmount)
	fit := scoreFit(c)
	total := engagement + recency + value + fit

	return model.ScoredClient{
		Client:     c,
		Engagement: engagement,
		Recency:    recency,
		Value:      value,
		Fit:        fit,
		Score:      total,
		Tier:       model.TierForScore(total),
	}
}

// scoreEngagement looks up the status table; unknown statuses get the floor.
func scoreEngagement(s model.Status) int {
	if pts, ok := engagementByStatus[s]; ok {
		return pts
	}
	return engagementUnknown
}

// scoreRecency decays one point per recencyDecayDays elapsed days, floored
// at 0. Future-dated records count as zero days elapsed.
func scoreRecency(created, now time.Time) int {
	days := int(now.Sub(created).Hours() / 24)
	if days < 0 {
		days = 0
	}
	pts := subScoreMax - days/recencyDecayDays
	if pts < 0 {
		return 0
	}
	return pts
}

// scoreValue normalizes the paid amount against the batch maximum.
func scoreValue(amount, maxAmount float64) int {
	if amount <= 0 {
		return 0
	}
	return int(math.Round(amount / maxAmount * subScoreMax))
}

// scoreFit starts at 5 and adds 5 for each completeness signal, capped at 25.
func scoreFit(c model.Client) int {
	pts := 5
	if c.Product != "" {
		pts += 5
	}
	if c.Amount > 0 {
		pts += 5
	}
	if c.PaymentDate != nil {
		pts += 5
	}
	if c.CallDate != nil {
		pts += 5
	}
	if pts > subScoreMax {
		pts = subScoreMax
	}
	return pts
}

// maxBatchAmount returns the largest paid amount in the batch, never less
// than 1 so normalization is safe when every amount is zero.
func maxBatchAmount(clients []model.Client) float64 {
	max := 1.0
	for _, c := range clients {
		if c.Amount > max {
			max = c.Amount
		}
	}
	return max
}
