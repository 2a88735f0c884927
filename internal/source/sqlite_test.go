package source

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soscreative/hotline-intel/internal/fixture"
	"github.com/soscreative/hotline-intel/internal/model"
)

func newTestSQLite(t *testing.T) *SQLiteSource {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestSQLiteSource_EmptyDatabase(t *testing.T) {
	s := newTestSQLite(t)

	snap, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Clients)
	assert.Nil(t, snap.Intake)
}

func TestSQLiteSource_RoundTrip(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seed := fixture.Snapshot(now)
	seed.Intake.HasEmailList = model.Ptr(true)
	seed.Intake.TestimonialCount = model.Ptr(7)
	seed.Intake.HoursPerClient = model.Ptr(3.25)
	require.NoError(t, s.SaveSnapshot(ctx, seed))

	snap, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Clients, len(seed.Clients))

	byID := make(map[string]model.Client, len(snap.Clients))
	for _, c := range snap.Clients {
		byID[c.ID] = c
	}
	for _, want := range seed.Clients {
		got, ok := byID[want.ID]
		require.True(t, ok, "client %s missing after round trip", want.ID)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Status, got.Status)
		assert.Equal(t, want.Product, got.Product)
		assert.Equal(t, want.LeadSource, got.LeadSource)
		assert.InDelta(t, want.Amount, got.Amount, 1e-9)
		assert.True(t, got.Created.Equal(want.Created), "client %s created", want.ID)
		if want.PaymentDate == nil {
			assert.Nil(t, got.PaymentDate, "client %s", want.ID)
		} else {
			require.NotNil(t, got.PaymentDate, "client %s", want.ID)
			assert.True(t, got.PaymentDate.Equal(*want.PaymentDate), "client %s payment date", want.ID)
		}
	}

	require.NotNil(t, snap.Intake)
	require.NotNil(t, snap.Intake.EmailListSize)
	assert.Equal(t, *seed.Intake.EmailListSize, *snap.Intake.EmailListSize)
	require.NotNil(t, snap.Intake.HasEmailList)
	assert.True(t, *snap.Intake.HasEmailList)
	require.NotNil(t, snap.Intake.TestimonialCount)
	assert.Equal(t, 7, *snap.Intake.TestimonialCount)
	require.NotNil(t, snap.Intake.HoursPerClient)
	assert.InDelta(t, 3.25, *snap.Intake.HoursPerClient, 1e-9)
	assert.Nil(t, snap.Intake.TeamSize)
	require.NotNil(t, snap.Intake.ContentFrequency)
	assert.Equal(t, model.ContentRarely, *snap.Intake.ContentFrequency)
	assert.Nil(t, snap.Intake.NPS)
}

func TestSQLiteSource_SaveReplacesContents(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.SaveSnapshot(ctx, fixture.Snapshot(now)))

	small := model.Snapshot{Clients: []model.Client{
		{ID: "only", Name: "Only Client", Status: model.StatusLead,
			LeadSource: model.SourceWebsite, Created: now.AddDate(0, 0, -1)},
	}}
	require.NoError(t, s.SaveSnapshot(ctx, small))

	snap, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Clients, 1)
	assert.Equal(t, "only", snap.Clients[0].ID)
	assert.Nil(t, snap.Intake)
}
