package opportunity

import (
	"sort"

	"github.com/soscreative/hotline-intel/internal/model"
)

// Generate evaluates the full rule battery in its declared order and returns
// every opportunity that fired, ranked by descending ROI (impact/effort).
// The sort is stable, so equal-ROI opportunities keep battery order.
func Generate(s *Signals) []model.Opportunity {
	var out []model.Opportunity
	for _, r := range battery {
		opp := r.build(s)
		if opp == nil {
			continue
		}
		opp.Rule = r.name
		if opp.Effort > 0 {
			opp.ROI = float64(opp.Impact) / float64(opp.Effort)
		}
		out = append(out, *opp)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ROI > out[j].ROI
	})
	return out
}

// RuleNames returns the battery's rule names in evaluation order.
func RuleNames() []string {
	names := make([]string, len(battery))
	for i, r := range battery {
		names[i] = r.name
	}
	return names
}
