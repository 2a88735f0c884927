package aggregate

import (
	"time"

	"github.com/soscreative/hotline-intel/internal/model"
)

// DefaultObservationMonths is the historical window the 12-month revenue
// projection assumes when none is derived. The production dataset covers a
// five month span; the ratio is a documented assumption, not measured from
// the records, unless DeriveWindow is set.
const DefaultObservationMonths = 5.0

// monthsPerDay converts an elapsed day span to months for window derivation.
const monthsPerDay = 12.0 / 365.0

// LTVOptions tunes the lifetime value reduction.
type LTVOptions struct {
	// ObservationWindowMonths is the assumed span of the input data, used
	// to annualize revenue. Zero means DefaultObservationMonths.
	ObservationWindowMonths float64
	// DeriveWindow replaces the assumed window with one measured from the
	// min/max created dates in the input, floored at one month.
	DeriveWindow bool
}

// LTV computes overall, per-source and per-product lifetime value plus the
// 12-month revenue projection.
func LTV(clients []model.Client, opts LTVOptions) model.LTVData {
	window := opts.ObservationWindowMonths
	if window <= 0 {
		window = DefaultObservationMonths
	}
	if opts.DeriveWindow {
		if derived := observedWindowMonths(clients); derived > 0 {
			window = derived
		}
	}

	data := model.LTVData{
		BySource:     make(map[model.LeadSource]float64),
		WindowMonths: window,
	}

	var totalRevenue float64
	var paidCount int
	sourceRevenue := make(map[model.LeadSource]float64)
	sourceCount := make(map[model.LeadSource]int)

	var productOrder []model.Product
	productSeen := make(map[model.Product]bool)
	observedAmount := make(map[model.Product]float64)

	for _, c := range clients {
		if !c.Paid() {
			continue
		}
		totalRevenue += c.Amount
		paidCount++

		sourceRevenue[c.LeadSource] += c.Amount
		sourceCount[c.LeadSource]++

		if c.Product != "" && !productSeen[c.Product] {
			productSeen[c.Product] = true
			productOrder = append(productOrder, c.Product)
			observedAmount[c.Product] = c.Amount
		}
	}

	if paidCount > 0 {
		data.OverallLTV = totalRevenue / float64(paidCount)
	}
	for src, rev := range sourceRevenue {
		data.BySource[src] = rev / float64(sourceCount[src])
	}
	for _, p := range productOrder {
		value, ok := model.ProductPrices[p]
		if !ok {
			value = observedAmount[p]
		}
		data.ByProduct = append(data.ByProduct, model.ProductLTV{Product: p, Value: value})
	}

	data.Projected12 = totalRevenue / window * 12
	return data
}

// observedWindowMonths measures the created-date span of the input in
// months, floored at one month. Returns 0 for an empty input.
func observedWindowMonths(clients []model.Client) float64 {
	var min, max time.Time
	for _, c := range clients {
		if min.IsZero() || c.Created.Before(min) {
			min = c.Created
		}
		if max.IsZero() || c.Created.After(max) {
			max = c.Created
		}
	}
	if min.IsZero() {
		return 0
	}
	months := max.Sub(min).Hours() / 24 * monthsPerDay
	if months < 1 {
		return 1
	}
	return months
}
