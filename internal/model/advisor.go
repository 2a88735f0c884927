package model

// Standing places a benchmark metric's observed value among the tiers.
type Standing string

const (
	StandingBelowEmerging Standing = "below_emerging"
	StandingEmerging      Standing = "emerging"
	StandingGrowing       Standing = "growing"
	StandingEstablished   Standing = "established"
	// StandingLeading means the observed value is beyond the established
	// threshold in the metric's favorable direction.
	StandingLeading Standing = "leading"
)

// Benchmark compares one computed metric against fixed industry thresholds.
// When HigherIsBetter is false the thresholds descend: established is the
// lowest numeric value and an observed value below it is leading, not behind.
type Benchmark struct {
	Metric         string   `json:"metric"`
	Unit           string   `json:"unit"`
	YourValue      float64  `json:"your_value"`
	Emerging       float64  `json:"emerging"`
	Growing        float64  `json:"growing"`
	Established    float64  `json:"established"`
	HigherIsBetter bool     `json:"higher_is_better"`
	Standing       Standing `json:"standing"`
}

// DecisionChoice is one selectable answer in a decision prompt.
type DecisionChoice struct {
	Label       string `json:"label"`
	Detail      string `json:"detail,omitempty"`
	Recommended bool   `json:"recommended"`
}

// DecisionPrompt is one multi-choice question for the owner. Question text
// is static; Context interpolates live numbers from the aggregates. Multiple
// choices may be selected; selection handling is the caller's concern.
type DecisionPrompt struct {
	ID       string           `json:"id"`
	Question string           `json:"question"`
	Context  string           `json:"context"`
	Choices  []DecisionChoice `json:"choices"`
}
