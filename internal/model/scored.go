package model

// ScoreTier buckets a 0-100 lead score.
type ScoreTier string

const (
	TierHot  ScoreTier = "Hot"
	TierWarm ScoreTier = "Warm"
	TierCool ScoreTier = "Cool"
	TierCold ScoreTier = "Cold"
)

// Lead score tier thresholds. Boundaries are inclusive on the lower bound:
// a score of exactly 70 is Hot, exactly 40 is Warm, exactly 20 is Cool.
const (
	TierHotMin  = 70
	TierWarmMin = 40
	TierCoolMin = 20
)

// TierForScore returns the tier bucket for a 0-100 lead score.
func TierForScore(score int) ScoreTier {
	switch {
	case score >= TierHotMin:
		return TierHot
	case score >= TierWarmMin:
		return TierWarm
	case score >= TierCoolMin:
		return TierCool
	default:
		return TierCold
	}
}

// ScoredClient is a Client plus its four sub-scores, derived score and tier.
// It is always recomputed from a Client and the full batch, never persisted.
type ScoredClient struct {
	Client

	// Sub-scores, each 0-25.
	Engagement int `json:"engagement"`
	Recency    int `json:"recency"`
	Value      int `json:"value"`
	Fit        int `json:"fit"`

	// Score is the sum of the four sub-scores, 0-100.
	Score int       `json:"score"`
	Tier  ScoreTier `json:"tier"`
}
