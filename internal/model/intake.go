package model

// ContentFrequency describes how often the business publishes content.
type ContentFrequency string

const (
	ContentDaily   ContentFrequency = "daily"
	ContentWeekly  ContentFrequency = "weekly"
	ContentMonthly ContentFrequency = "monthly"
	ContentRarely  ContentFrequency = "rarely"
)

// IntakeData is the optional owner questionnaire that overlays the computed
// metrics. Every field is a pointer: nil means "never asked", which is
// distinct from a present zero or false wherever a rule branches on it.
// Consumers must check presence before reading a value.
type IntakeData struct {
	HasEmailList      *bool             `json:"has_email_list,omitempty" yaml:"has_email_list"`
	EmailListSize     *int              `json:"email_list_size,omitempty" yaml:"email_list_size"`
	PricingConfidence *int              `json:"pricing_confidence,omitempty" yaml:"pricing_confidence"` // 1-10 self-report
	NPS               *float64          `json:"nps,omitempty" yaml:"nps"`
	HasWebsite        *bool             `json:"has_website,omitempty" yaml:"has_website"`
	HasCaseStudies    *bool             `json:"has_case_studies,omitempty" yaml:"has_case_studies"`
	HasTestimonials   *bool             `json:"has_testimonials,omitempty" yaml:"has_testimonials"`
	SocialFollowers   *int              `json:"social_followers,omitempty" yaml:"social_followers"`
	HasSOPs           *bool             `json:"has_sops,omitempty" yaml:"has_sops"`
	ContentFrequency  *ContentFrequency `json:"content_frequency,omitempty" yaml:"content_frequency"`
	TestimonialCount  *int              `json:"testimonial_count,omitempty" yaml:"testimonial_count"`
	TeamSize          *int              `json:"team_size,omitempty" yaml:"team_size"`
	HoursPerClient    *float64          `json:"hours_per_client,omitempty" yaml:"hours_per_client"`
}

// Ptr returns a pointer to v. Convenience for building sparse IntakeData
// literals in fixtures and tests.
func Ptr[T any](v T) *T { return &v }
