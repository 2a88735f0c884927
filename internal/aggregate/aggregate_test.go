package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soscreative/hotline-intel/internal/fixture"
	"github.com/soscreative/hotline-intel/internal/model"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestKPIs_DemoDataset(t *testing.T) {
	snap := fixture.Snapshot(testNow)
	k := KPIs(snap.Clients)

	assert.Equal(t, 15, k.TotalClients)
	assert.Equal(t, 12, k.PaidClients)
	assert.InDelta(t, 0.8, k.ConversionRate, 1e-9)
	assert.Equal(t, 6, k.ActivePipeline)
	assert.InDelta(t, 9_776.0, k.TotalRevenue, 1e-9)
	assert.InDelta(t, 9_776.0/12, k.AvgDealSize, 1e-9)
}

func TestKPIs_Empty(t *testing.T) {
	k := KPIs(nil)
	assert.Zero(t, k.TotalClients)
	assert.Zero(t, k.ConversionRate)
	assert.Zero(t, k.AvgDealSize)
}

func TestKPIs_NoPaidClients(t *testing.T) {
	clients := []model.Client{
		{Status: model.StatusLead},
		{Status: model.StatusLead},
	}
	k := KPIs(clients)
	assert.Equal(t, 2, k.TotalClients)
	assert.Zero(t, k.PaidClients)
	assert.Zero(t, k.ConversionRate)
	assert.Zero(t, k.AvgDealSize)
}

func TestPipeline_AllStatusesPresent(t *testing.T) {
	snap := fixture.Snapshot(testNow)
	rows := Pipeline(snap.Clients)

	require.Len(t, rows, len(model.PipelineOrder))
	for i, row := range rows {
		assert.Equal(t, model.PipelineOrder[i], row.Status)
		assert.Len(t, row.Clients, row.Count)
	}

	total := 0
	for _, row := range rows {
		total += row.Count
	}
	assert.Equal(t, len(snap.Clients), total)
}

func TestPipeline_UnknownStatusSkipped(t *testing.T) {
	clients := []model.Client{
		{Name: "ok", Status: model.StatusPaid, Amount: 499},
		{Name: "weird", Status: model.Status("Imported")},
	}
	rows := Pipeline(clients)

	total := 0
	for _, row := range rows {
		total += row.Count
	}
	assert.Equal(t, 1, total)
}

func TestChannels_FirstSeenOrder(t *testing.T) {
	clients := []model.Client{
		{LeadSource: model.SourceWebsite},
		{LeadSource: model.SourceReferral, Amount: 499},
		{LeadSource: model.SourceWebsite, Amount: 699},
		{LeadSource: model.SourceIGDM},
	}
	metrics := Channels(clients)

	require.Len(t, metrics, 3)
	assert.Equal(t, model.SourceWebsite, metrics[0].Source)
	assert.Equal(t, model.SourceReferral, metrics[1].Source)
	assert.Equal(t, model.SourceIGDM, metrics[2].Source)

	web := metrics[0]
	assert.Equal(t, 2, web.Leads)
	assert.Equal(t, 1, web.Conversions)
	assert.InDelta(t, 0.5, web.ConversionRate, 1e-9)
	assert.InDelta(t, 699.0, web.AvgDealSize, 1e-9)
}

func TestChannels_ZeroGuards(t *testing.T) {
	assert.Empty(t, Channels(nil))

	metrics := Channels([]model.Client{{LeadSource: model.SourceIGStory}})
	require.Len(t, metrics, 1)
	assert.Zero(t, metrics[0].ConversionRate)
	assert.Zero(t, metrics[0].AvgDealSize)
}

func TestFunnel_NonIncreasingCounts(t *testing.T) {
	snap := fixture.Snapshot(testNow)
	stages := Funnel(snap.Clients)

	require.Len(t, stages, 6)
	assert.Equal(t, "Leads", stages[0].Name)
	assert.Equal(t, 1.0, stages[0].ConversionRate)
	assert.Equal(t, len(snap.Clients), stages[0].Count)

	for i := 1; i < len(stages); i++ {
		assert.LessOrEqual(t, stages[i].Count, stages[i-1].Count,
			"stage %s", stages[i].Name)
	}
}

func TestFunnel_EmptyPreviousStage(t *testing.T) {
	stages := Funnel([]model.Client{{Status: model.Status("???")}})
	for i, st := range stages {
		assert.Zero(t, st.Count)
		if i > 0 {
			assert.Zero(t, st.ConversionRate)
		}
	}
}

func TestMicroFunnel_DropOff(t *testing.T) {
	clients := []model.Client{
		{Status: model.StatusLead},
		{Status: model.StatusPaid, Amount: 499},
		{Status: model.StatusPaid, Amount: 499},
		{Status: model.StatusBooked, Amount: 699},
	}
	stages := MicroFunnel(clients)

	require.Len(t, stages, len(model.PipelineOrder))
	assert.Equal(t, 4, stages[0].Count)
	assert.Equal(t, 3, stages[1].Count)
	assert.InDelta(t, 0.25, stages[1].DropOffRate, 1e-9)
	assert.Equal(t, 1, stages[2].Count)
	assert.InDelta(t, 1-1.0/3, stages[2].DropOffRate, 1e-9)
}

func TestLTV_DefaultWindowProjection(t *testing.T) {
	snap := fixture.Snapshot(testNow)
	data := LTV(snap.Clients, LTVOptions{})

	assert.Equal(t, DefaultObservationMonths, data.WindowMonths)
	assert.InDelta(t, 9_776.0/12, data.OverallLTV, 1e-9)
	assert.InDelta(t, 9_776.0/5*12, data.Projected12, 1e-9)
}

func TestLTV_ExplicitWindow(t *testing.T) {
	snap := fixture.Snapshot(testNow)
	data := LTV(snap.Clients, LTVOptions{ObservationWindowMonths: 12})

	assert.Equal(t, 12.0, data.WindowMonths)
	assert.InDelta(t, 9_776.0, data.Projected12, 1e-9)
}

func TestLTV_DerivedWindowFloor(t *testing.T) {
	// All created within a week, so the derived window floors at one month.
	clients := []model.Client{
		{Status: model.StatusPaid, Amount: 499, Created: testNow.AddDate(0, 0, -7)},
		{Status: model.StatusPaid, Amount: 699, Created: testNow.AddDate(0, 0, -1)},
	}
	data := LTV(clients, LTVOptions{DeriveWindow: true})
	assert.Equal(t, 1.0, data.WindowMonths)
	assert.InDelta(t, (499+699)*12.0, data.Projected12, 1e-9)
}

func TestLTV_BySourceAndProduct(t *testing.T) {
	snap := fixture.Snapshot(testNow)
	data := LTV(snap.Clients, LTVOptions{})

	// Referral: p01 699 + p05 1495 + p09 1495 over 3 paid.
	assert.InDelta(t, (699+1495+1495)/3.0, data.BySource[model.SourceReferral], 1e-9)

	// Products use list prices, first-seen order over paid clients.
	require.Len(t, data.ByProduct, 3)
	assert.Equal(t, model.ProductSingleCall, data.ByProduct[0].Product)
	assert.InDelta(t, 699.0, data.ByProduct[0].Value, 1e-9)
	assert.Equal(t, model.ProductSprint, data.ByProduct[1].Product)
	assert.InDelta(t, 1495.0, data.ByProduct[1].Value, 1e-9)
	assert.Equal(t, model.ProductFirstCall, data.ByProduct[2].Product)
	assert.InDelta(t, 499.0, data.ByProduct[2].Value, 1e-9)
}

func TestLTV_UnknownProductFallsBackToObserved(t *testing.T) {
	clients := []model.Client{
		{Status: model.StatusPaid, Product: model.Product("Workshop"), Amount: 250},
	}
	data := LTV(clients, LTVOptions{})
	require.Len(t, data.ByProduct, 1)
	assert.InDelta(t, 250.0, data.ByProduct[0].Value, 1e-9)
}

func TestLTV_Empty(t *testing.T) {
	data := LTV(nil, LTVOptions{})
	assert.Zero(t, data.OverallLTV)
	assert.Zero(t, data.Projected12)
	assert.Empty(t, data.ByProduct)
}
