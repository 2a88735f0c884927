package model

// HealthTier buckets the composite business health score.
type HealthTier string

const (
	HealthThriving HealthTier = "thriving"
	HealthGrowing  HealthTier = "growing"
	HealthEmerging HealthTier = "emerging"
	HealthCritical HealthTier = "critical"
)

// Health tier thresholds, inclusive on the lower bound.
const (
	HealthThrivingMin = 70
	HealthGrowingMin  = 50
	HealthEmergingMin = 30
)

// HealthTierFor returns the tier bucket for a 0-100 composite score.
func HealthTierFor(score float64) HealthTier {
	switch {
	case score >= HealthThrivingMin:
		return HealthThriving
	case score >= HealthGrowingMin:
		return HealthGrowing
	case score >= HealthEmergingMin:
		return HealthEmerging
	default:
		return HealthCritical
	}
}

// Dimension names the five health dimensions.
type Dimension string

const (
	DimRevenue   Dimension = "revenue"
	DimPipeline  Dimension = "pipeline"
	DimChannels  Dimension = "channels"
	DimRetention Dimension = "retention"
	DimBrand     Dimension = "brand"
)

// DimensionScore is one weighted health dimension. Score is 0-100 within
// the dimension; Weight is the dimension's share of the composite (percent).
// Breakdown lists the evidentiary strings shown alongside the number; they
// are generated from the same inputs that produced Score.
type DimensionScore struct {
	Dimension Dimension `json:"dimension"`
	Score     float64   `json:"score"`
	Weight    float64   `json:"weight"`
	Breakdown []string  `json:"breakdown"`
}

// HealthScore is the composite business health result: a 0-100 score, its
// tier, and exactly five weighted dimensions whose weights sum to 100.
type HealthScore struct {
	Score      float64          `json:"score"`
	Tier       HealthTier       `json:"tier"`
	Dimensions []DimensionScore `json:"dimensions"`
}

// Dimension returns the named dimension, or a zero value if absent.
func (h HealthScore) Dimension(name Dimension) DimensionScore {
	for _, d := range h.Dimensions {
		if d.Dimension == name {
			return d
		}
	}
	return DimensionScore{Dimension: name}
}
