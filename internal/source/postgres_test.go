package source

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soscreative/hotline-intel/internal/model"
)

// newMockPostgresSource creates a PostgresSource backed by pgxmock for unit
// testing.
func newMockPostgresSource(t *testing.T) (*PostgresSource, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	s := &PostgresSource{pool: mock}
	return s, mock
}

var clientColumns = []string{
	"id", "name", "email", "phone", "status", "product", "amount",
	"lead_source", "created", "payment_date", "call_date", "days_to_convert",
}

func TestPostgresSource_Load(t *testing.T) {
	s, mock := newMockPostgresSource(t)

	created := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	paid := created.AddDate(0, 0, 2)

	mock.ExpectQuery(`SELECT id, name, email, phone, status, product, amount, lead_source`).
		WillReturnRows(pgxmock.NewRows(clientColumns).
			AddRow("c1", "Ada", "ADA@Example.com", "", model.StatusCallComplete,
				model.ProductSingleCall, 699.0, model.SourceReferral,
				created, &paid, (*time.Time)(nil), 2).
			AddRow("", "Ben", "ben@example.com", "", model.StatusLead,
				model.Product(""), 0.0, model.SourceWebsite,
				created.AddDate(0, 0, 9), (*time.Time)(nil), (*time.Time)(nil), 0))
	mock.ExpectQuery(`SELECT has_email_list, email_list_size, pricing_confidence`).
		WillReturnError(pgx.ErrNoRows)

	snap, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Clients, 2)

	ada := snap.Clients[0]
	assert.Equal(t, "c1", ada.ID)
	assert.Equal(t, "ada@example.com", ada.Email)
	require.NotNil(t, ada.PaymentDate)
	assert.True(t, ada.PaymentDate.Equal(paid))

	assert.NotEmpty(t, snap.Clients[1].ID)
	assert.Nil(t, snap.Clients[1].PaymentDate)

	assert.Nil(t, snap.Intake)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSource_Load_IntakePresent(t *testing.T) {
	s, mock := newMockPostgresSource(t)

	mock.ExpectQuery(`SELECT id, name, email`).
		WillReturnRows(pgxmock.NewRows(clientColumns))
	mock.ExpectQuery(`SELECT has_email_list, email_list_size, pricing_confidence`).
		WillReturnRows(pgxmock.NewRows([]string{
			"has_email_list", "email_list_size", "pricing_confidence", "nps",
			"has_website", "has_case_studies", "has_testimonials",
			"social_followers", "has_sops", "content_frequency",
			"testimonial_count", "team_size", "hours_per_client",
		}).AddRow(
			model.Ptr(true), model.Ptr(120), model.Ptr(5), (*float64)(nil),
			model.Ptr(true), (*bool)(nil), model.Ptr(true), (*int)(nil),
			model.Ptr(false), model.Ptr("rarely"),
			model.Ptr(4), (*int)(nil), (*float64)(nil),
		))

	snap, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Clients)

	require.NotNil(t, snap.Intake)
	require.NotNil(t, snap.Intake.HasEmailList)
	assert.True(t, *snap.Intake.HasEmailList)
	require.NotNil(t, snap.Intake.EmailListSize)
	assert.Equal(t, 120, *snap.Intake.EmailListSize)
	require.NotNil(t, snap.Intake.TestimonialCount)
	assert.Equal(t, 4, *snap.Intake.TestimonialCount)
	assert.Nil(t, snap.Intake.TeamSize)
	assert.Nil(t, snap.Intake.NPS)
	require.NotNil(t, snap.Intake.ContentFrequency)
	assert.Equal(t, model.ContentRarely, *snap.Intake.ContentFrequency)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSource_Load_QueryError(t *testing.T) {
	s, mock := newMockPostgresSource(t)

	mock.ExpectQuery(`SELECT id, name, email`).
		WillReturnError(assert.AnError)

	_, err := s.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query clients")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSource_Migrate(t *testing.T) {
	s, mock := newMockPostgresSource(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS clients`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
