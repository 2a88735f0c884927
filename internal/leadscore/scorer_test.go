package leadscore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soscreative/hotline-intel/internal/fixture"
	"github.com/soscreative/hotline-intel/internal/model"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestScoreClients_SumAndRange(t *testing.T) {
	snap := fixture.Snapshot(testNow)
	scored := ScoreClients(snap.Clients, testNow)
	require.Len(t, scored, len(snap.Clients))

	for _, sc := range scored {
		assert.Equal(t, sc.Engagement+sc.Recency+sc.Value+sc.Fit, sc.Score, "client %s", sc.Name)
		assert.GreaterOrEqual(t, sc.Score, 0)
		assert.LessOrEqual(t, sc.Score, 100)
		assert.Equal(t, model.TierForScore(sc.Score), sc.Tier)

		for _, sub := range []int{sc.Engagement, sc.Recency, sc.Value, sc.Fit} {
			assert.GreaterOrEqual(t, sub, 0)
			assert.LessOrEqual(t, sub, 25)
		}
	}
}

func TestScoreClients_PreservesInputOrder(t *testing.T) {
	snap := fixture.Snapshot(testNow)
	scored := ScoreClients(snap.Clients, testNow)
	for i, sc := range scored {
		assert.Equal(t, snap.Clients[i].ID, sc.ID)
	}
}

func TestScoreEngagement_StatusTable(t *testing.T) {
	tests := []struct {
		status model.Status
		want   int
	}{
		{model.StatusLead, 5},
		{model.StatusPaid, 9},
		{model.StatusBooked, 12},
		{model.StatusIntakeDone, 15},
		{model.StatusReadyForCall, 18},
		{model.StatusCallComplete, 22},
		{model.StatusFollowUpSent, 25},
		{model.Status("CSV Glitch"), 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scoreEngagement(tt.status), "status %q", tt.status)
	}
}

func TestScoreRecency_Decay(t *testing.T) {
	tests := []struct {
		name    string
		daysAgo int
		want    int
	}{
		{"today", 0, 25},
		{"two days", 2, 25},
		{"three days", 3, 24},
		{"thirty days", 30, 15},
		{"seventy-five days", 75, 0},
		{"ancient", 400, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created := testNow.AddDate(0, 0, -tt.daysAgo)
			assert.Equal(t, tt.want, scoreRecency(created, testNow))
		})
	}
}

func TestScoreRecency_FutureDatedRecord(t *testing.T) {
	created := testNow.AddDate(0, 0, 5)
	assert.Equal(t, 25, scoreRecency(created, testNow))
}

func TestScoreValue_BatchNormalized(t *testing.T) {
	assert.Equal(t, 25, scoreValue(1495, 1495))
	assert.Equal(t, 12, scoreValue(699, 1495))
	assert.Equal(t, 8, scoreValue(499, 1495))
	assert.Equal(t, 0, scoreValue(0, 1495))
}

func TestScoreValue_AllZeroAmounts(t *testing.T) {
	clients := []model.Client{{Status: model.StatusLead}, {Status: model.StatusLead}}
	max := maxBatchAmount(clients)
	assert.Equal(t, 1.0, max)
	assert.Equal(t, 0, scoreValue(0, max))
}

func TestScoreFit_Components(t *testing.T) {
	payment := testNow
	tests := []struct {
		name   string
		client model.Client
		want   int
	}{
		{"bare lead", model.Client{}, 5},
		{"product only", model.Client{Product: model.ProductFirstCall}, 10},
		{"paid with product", model.Client{Product: model.ProductFirstCall, Amount: 499}, 15},
		{"paid with payment date", model.Client{
			Product: model.ProductFirstCall, Amount: 499, PaymentDate: &payment,
		}, 20},
		{"fully attributed", model.Client{
			Product: model.ProductSprint, Amount: 1495,
			PaymentDate: &payment, CallDate: &payment,
		}, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreFit(tt.client))
		})
	}
}

func TestScoreClient_MatchesBatch(t *testing.T) {
	snap := fixture.Snapshot(testNow)
	batch := ScoreClients(snap.Clients, testNow)

	for i, c := range snap.Clients {
		single := ScoreClient(c, snap.Clients, testNow)
		assert.Equal(t, batch[i], single)
	}
}

func TestRanked_DescendingAndStable(t *testing.T) {
	snap := fixture.Snapshot(testNow)
	scored := ScoreClients(snap.Clients, testNow)
	ranked := Ranked(scored)

	require.Len(t, ranked, len(scored))
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}

	// Input slice untouched.
	for i, sc := range scored {
		assert.Equal(t, snap.Clients[i].ID, sc.ID)
	}
}
