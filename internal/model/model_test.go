package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusRank_FollowsPipelineOrder(t *testing.T) {
	for i, s := range PipelineOrder {
		assert.Equal(t, i, s.Rank(), "status %q", s)
	}
}

func TestStatusRank_Unknown(t *testing.T) {
	assert.Equal(t, -1, Status("Imported - Unknown").Rank())
	assert.Equal(t, -1, Status("").Rank())
}

func TestStatusAtLeast(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		stage  Status
		want   bool
	}{
		{"same stage", StatusPaid, StatusPaid, true},
		{"later stage", StatusCallComplete, StatusBooked, true},
		{"earlier stage", StatusLead, StatusPaid, false},
		{"unknown status", Status("???"), StatusLead, false},
		{"last reaches first", StatusFollowUpSent, StatusLead, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.AtLeast(tt.stage))
		})
	}
}

func TestTierForScore_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  ScoreTier
	}{
		{100, TierHot},
		{70, TierHot},
		{69, TierWarm},
		{40, TierWarm},
		{39, TierCool},
		{20, TierCool},
		{19, TierCold},
		{0, TierCold},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierForScore(tt.score), "score %d", tt.score)
	}
}

func TestHealthTierFor_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  HealthTier
	}{
		{100, HealthThriving},
		{70, HealthThriving},
		{69.9, HealthGrowing},
		{50, HealthGrowing},
		{49.9, HealthEmerging},
		{30, HealthEmerging},
		{29.9, HealthCritical},
		{0, HealthCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HealthTierFor(tt.score), "score %v", tt.score)
	}
}

func TestClientPaid(t *testing.T) {
	assert.True(t, Client{Amount: 499}.Paid())
	assert.False(t, Client{Amount: 0}.Paid())
}

func TestHealthScoreDimension_Lookup(t *testing.T) {
	h := HealthScore{Dimensions: []DimensionScore{
		{Dimension: DimRevenue, Score: 80, Weight: 25},
	}}

	assert.Equal(t, 80.0, h.Dimension(DimRevenue).Score)
	assert.Zero(t, h.Dimension(DimBrand).Score)
	assert.Equal(t, DimBrand, h.Dimension(DimBrand).Dimension)
}
