package model

// Priority buckets when an opportunity should be acted on.
type Priority string

const (
	PriorityNow     Priority = "now"
	PriorityNext    Priority = "next"
	PriorityLater   Priority = "later"
	PriorityExplore Priority = "explore"
)

// Category tags an opportunity's business area.
type Category string

const (
	CategoryRevenue    Category = "revenue"
	CategoryPricing    Category = "pricing"
	CategoryConversion Category = "conversion"
	CategoryChannels   Category = "channels"
	CategoryRetention  Category = "retention"
	CategorySystems    Category = "systems"
	CategoryProduct    Category = "product"
	CategoryContent    Category = "content"
)

// ActivationStep is one ordered step in an opportunity's activation plan.
type ActivationStep struct {
	Step   int    `json:"step"`
	Action string `json:"action"`
	Detail string `json:"detail"`
	Tool   string `json:"tool,omitempty"`
}

// Opportunity is a single rule-generated recommendation. Effort and Impact
// are 1-10 judgment values fixed by the rule that produced it; ROI is
// Impact/Effort and exists purely for ranking.
type Opportunity struct {
	Rule        string   `json:"rule"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Why         string   `json:"why"`
	Category    Category `json:"category"`
	Priority    Priority `json:"priority"`

	Effort int     `json:"effort"`
	Impact int     `json:"impact"`
	ROI    float64 `json:"roi"`

	Steps      []ActivationStep `json:"steps"`
	Metrics    []string         `json:"metrics"`
	DataPoints []string         `json:"data_points"`

	// Unlocked is false when the rule fired without the intake answers that
	// would confirm it, distinguishing "known gap" from "never asked".
	Unlocked bool `json:"unlocked"`
}
