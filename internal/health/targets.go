// Package health combines the aggregated metrics into one weighted
// composite business health score across five dimensions.
package health

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Targets holds the dimension weights and the normalization targets every
// health signal is measured against. The targets are domain judgment for a
// small creative consultancy; they are named here so nothing in the scoring
// code carries a bare literal, but they do not generalize beyond this
// business shape.
type Targets struct {
	// Dimension weights, percent of the composite. Must sum to 100.
	WeightRevenue   float64 `yaml:"weight_revenue" mapstructure:"weight_revenue"`
	WeightPipeline  float64 `yaml:"weight_pipeline" mapstructure:"weight_pipeline"`
	WeightChannels  float64 `yaml:"weight_channels" mapstructure:"weight_channels"`
	WeightRetention float64 `yaml:"weight_retention" mapstructure:"weight_retention"`
	WeightBrand     float64 `yaml:"weight_brand" mapstructure:"weight_brand"`

	// Revenue dimension.
	RevenueTarget    float64 `yaml:"revenue_target" mapstructure:"revenue_target"`
	AvgDealTarget    float64 `yaml:"avg_deal_target" mapstructure:"avg_deal_target"`
	ClientLTVTarget  float64 `yaml:"client_ltv_target" mapstructure:"client_ltv_target"`
	ProjectionTarget float64 `yaml:"projection_target" mapstructure:"projection_target"`

	// Pipeline dimension.
	ConversionTarget  float64 `yaml:"conversion_target" mapstructure:"conversion_target"`
	HotRatioTarget    float64 `yaml:"hot_ratio_target" mapstructure:"hot_ratio_target"`
	FullFunnelTarget  float64 `yaml:"full_funnel_target" mapstructure:"full_funnel_target"`
	ClientCountTarget float64 `yaml:"client_count_target" mapstructure:"client_count_target"`

	// Channels dimension.
	ChannelCountTarget float64 `yaml:"channel_count_target" mapstructure:"channel_count_target"`
	ChannelConvTarget  float64 `yaml:"channel_conv_target" mapstructure:"channel_conv_target"`
	EmailListTarget    float64 `yaml:"email_list_target" mapstructure:"email_list_target"`

	// Retention dimension.
	RepeatRateTarget    float64 `yaml:"repeat_rate_target" mapstructure:"repeat_rate_target"`
	UpsellRateTarget    float64 `yaml:"upsell_rate_target" mapstructure:"upsell_rate_target"`
	RetentionDealTarget float64 `yaml:"retention_deal_target" mapstructure:"retention_deal_target"`
	NPSTarget           float64 `yaml:"nps_target" mapstructure:"nps_target"`

	// Brand dimension.
	ProductDiversityTarget float64 `yaml:"product_diversity_target" mapstructure:"product_diversity_target"`
	BrandRevenueTarget     float64 `yaml:"brand_revenue_target" mapstructure:"brand_revenue_target"`
	SocialTarget           float64 `yaml:"social_target" mapstructure:"social_target"`
}

// DefaultTargets returns the production target set. Weights sum to 100.
func DefaultTargets() Targets {
	return Targets{
		WeightRevenue:   25,
		WeightPipeline:  20,
		WeightChannels:  20,
		WeightRetention: 20,
		WeightBrand:     15,

		RevenueTarget:    50_000,
		AvgDealTarget:    1_000,
		ClientLTVTarget:  1_500,
		ProjectionTarget: 100_000,

		ConversionTarget:  0.90,
		HotRatioTarget:    0.40,
		FullFunnelTarget:  0.15,
		ClientCountTarget: 30,

		ChannelCountTarget: 6,
		ChannelConvTarget:  0.80,
		EmailListTarget:    500,

		RepeatRateTarget:    0.30,
		UpsellRateTarget:    0.25,
		RetentionDealTarget: 800,
		NPSTarget:           80,

		ProductDiversityTarget: 3,
		BrandRevenueTarget:     30_000,
		SocialTarget:           10_000,
	}
}

// LoadTargets reads a target set from a YAML file. Keys absent from the
// file keep their default values.
func LoadTargets(path string) (Targets, error) {
	t := DefaultTargets()

	data, err := os.ReadFile(path)
	if err != nil {
		return t, eris.Wrapf(err, "health: read targets file %s", path)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, eris.Wrapf(err, "health: parse targets file %s", path)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// WeightSum returns the sum of the five dimension weights.
func (t Targets) WeightSum() float64 {
	return t.WeightRevenue + t.WeightPipeline + t.WeightChannels +
		t.WeightRetention + t.WeightBrand
}

// Validate checks the target set is internally consistent.
func (t Targets) Validate() error {
	var errs []string

	weights := map[string]float64{
		"weight_revenue":   t.WeightRevenue,
		"weight_pipeline":  t.WeightPipeline,
		"weight_channels":  t.WeightChannels,
		"weight_retention": t.WeightRetention,
		"weight_brand":     t.WeightBrand,
	}
	for name, w := range weights {
		if w < 0 {
			errs = append(errs, fmt.Sprintf("%s must be >= 0", name))
		}
	}
	if sum := t.WeightSum(); math.Abs(sum-100) > 1 {
		errs = append(errs, fmt.Sprintf("weights must sum to 100, got %.1f", sum))
	}

	positives := map[string]float64{
		"revenue_target":           t.RevenueTarget,
		"avg_deal_target":          t.AvgDealTarget,
		"client_ltv_target":        t.ClientLTVTarget,
		"projection_target":        t.ProjectionTarget,
		"conversion_target":        t.ConversionTarget,
		"hot_ratio_target":         t.HotRatioTarget,
		"full_funnel_target":       t.FullFunnelTarget,
		"client_count_target":      t.ClientCountTarget,
		"channel_count_target":     t.ChannelCountTarget,
		"channel_conv_target":      t.ChannelConvTarget,
		"email_list_target":        t.EmailListTarget,
		"repeat_rate_target":       t.RepeatRateTarget,
		"upsell_rate_target":       t.UpsellRateTarget,
		"retention_deal_target":    t.RetentionDealTarget,
		"nps_target":               t.NPSTarget,
		"product_diversity_target": t.ProductDiversityTarget,
		"brand_revenue_target":     t.BrandRevenueTarget,
		"social_target":            t.SocialTarget,
	}
	for name, v := range positives {
		if v <= 0 {
			errs = append(errs, fmt.Sprintf("%s must be > 0", name))
		}
	}

	if len(errs) > 0 {
		return eris.Errorf("health: target validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
