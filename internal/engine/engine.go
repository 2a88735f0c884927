// Package engine wires the full intelligence pipeline: aggregators, lead
// scorer, health scorer and the three generators, in dependency order. Run
// is pure — the same snapshot and options always produce the same report,
// and nothing in the snapshot is mutated.
package engine

import (
	"time"

	"github.com/soscreative/hotline-intel/internal/aggregate"
	"github.com/soscreative/hotline-intel/internal/benchmark"
	"github.com/soscreative/hotline-intel/internal/decision"
	"github.com/soscreative/hotline-intel/internal/health"
	"github.com/soscreative/hotline-intel/internal/leadscore"
	"github.com/soscreative/hotline-intel/internal/model"
	"github.com/soscreative/hotline-intel/internal/opportunity"
)

// Options tunes one engine run.
type Options struct {
	// Now anchors recency scoring and report metadata. Zero means the
	// current wall clock; tests pass a fixed time for determinism.
	Now time.Time
	// Targets are the health normalization targets; zero value means
	// defaults.
	Targets *health.Targets
	// LTV tunes the lifetime value projection window.
	LTV aggregate.LTVOptions
}

// Report is the full engine output: every aggregate plus the scored list,
// health score, opportunities, decision prompts and benchmarks. It is a
// read-only view model; callers must not feed mutated copies back in.
type Report struct {
	GeneratedAt time.Time `json:"generated_at"`

	KPI         model.KPISnapshot        `json:"kpi"`
	Pipeline    []model.PipelineRow      `json:"pipeline"`
	Channels    []model.ChannelMetric    `json:"channels"`
	Funnel      []model.FunnelStage      `json:"funnel"`
	MicroFunnel []model.MicroFunnelStage `json:"micro_funnel"`
	LTV         model.LTVData            `json:"ltv"`

	Scored        []model.ScoredClient   `json:"scored_clients"`
	Health        model.HealthScore      `json:"health"`
	Opportunities []model.Opportunity    `json:"opportunities"`
	Decisions     []model.DecisionPrompt `json:"decisions"`
	Benchmarks    []model.Benchmark      `json:"benchmarks"`
}

// Run executes the whole pipeline over one snapshot.
func Run(snap model.Snapshot, opts Options) Report {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	targets := health.DefaultTargets()
	if opts.Targets != nil {
		targets = *opts.Targets
	}

	kpi := aggregate.KPIs(snap.Clients)
	pipeline := aggregate.Pipeline(snap.Clients)
	channels := aggregate.Channels(snap.Clients)
	funnel := aggregate.Funnel(snap.Clients)
	micro := aggregate.MicroFunnel(snap.Clients)
	ltv := aggregate.LTV(snap.Clients, opts.LTV)

	scored := leadscore.ScoreClients(snap.Clients, now)

	hs := health.Calculate(health.Inputs{
		Clients:  snap.Clients,
		Scored:   scored,
		Channels: channels,
		Funnel:   funnel,
		LTV:      ltv,
		Intake:   snap.Intake,
		Targets:  targets,
	})

	opps := opportunity.Generate(&opportunity.Signals{
		Clients:  snap.Clients,
		Scored:   scored,
		Channels: channels,
		Funnel:   funnel,
		LTV:      ltv,
		KPI:      kpi,
		Health:   hs,
		Intake:   snap.Intake,
	})

	decisions := decision.Generate(decision.Inputs{
		Clients:  snap.Clients,
		KPI:      kpi,
		Channels: channels,
		Funnel:   funnel,
		LTV:      ltv,
		Health:   hs,
		Intake:   snap.Intake,
	})

	benchmarks := benchmark.Generate(benchmark.Inputs{
		Clients:  snap.Clients,
		Scored:   scored,
		KPI:      kpi,
		Channels: channels,
		Funnel:   funnel,
		LTV:      ltv,
		Intake:   snap.Intake,
	})

	return Report{
		GeneratedAt:   now,
		KPI:           kpi,
		Pipeline:      pipeline,
		Channels:      channels,
		Funnel:        funnel,
		MicroFunnel:   micro,
		LTV:           ltv,
		Scored:        scored,
		Health:        hs,
		Opportunities: opps,
		Decisions:     decisions,
		Benchmarks:    benchmarks,
	}
}
