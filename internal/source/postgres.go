package source

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/soscreative/hotline-intel/internal/model"
)

// Pool is the subset of pgxpool.Pool the source needs. pgxmock satisfies
// it for tests.
type Pool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

// PostgresSource reads the client list from a Postgres database.
type PostgresSource struct {
	pool    Pool
	closeFn func()
}

// NewPostgres connects to Postgres and verifies the connection.
func NewPostgres(ctx context.Context, connString string) (*PostgresSource, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	cfg.MaxConns = 4
	cfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresSource{pool: pool, closeFn: pool.Close}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS clients (
	id              TEXT PRIMARY KEY,
	name            TEXT NOT NULL,
	email           TEXT NOT NULL DEFAULT '',
	phone           TEXT NOT NULL DEFAULT '',
	status          TEXT NOT NULL,
	product         TEXT NOT NULL DEFAULT '',
	amount          DOUBLE PRECISION NOT NULL DEFAULT 0,
	lead_source     TEXT NOT NULL DEFAULT '',
	created         TIMESTAMPTZ NOT NULL,
	payment_date    TIMESTAMPTZ,
	call_date       TIMESTAMPTZ,
	days_to_convert INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS intake (
	id                 INTEGER PRIMARY KEY CHECK (id = 1),
	has_email_list     BOOLEAN,
	email_list_size    INTEGER,
	pricing_confidence INTEGER,
	nps                DOUBLE PRECISION,
	has_website        BOOLEAN,
	has_case_studies   BOOLEAN,
	has_testimonials   BOOLEAN,
	social_followers   INTEGER,
	has_sops           BOOLEAN,
	content_frequency  TEXT,
	testimonial_count  INTEGER,
	team_size          INTEGER,
	hours_per_client   DOUBLE PRECISION
);

CREATE INDEX IF NOT EXISTS idx_clients_status ON clients(status);
CREATE INDEX IF NOT EXISTS idx_clients_lead_source ON clients(lead_source);
`

func (s *PostgresSource) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresSource) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresSource) Load(ctx context.Context) (*model.Snapshot, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, email, phone, status, product, amount, lead_source,
		        created, payment_date, call_date, days_to_convert
		 FROM clients ORDER BY created, id`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: query clients")
	}
	defer rows.Close()

	var clients []model.Client
	for rows.Next() {
		var c model.Client
		err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Status,
			&c.Product, &c.Amount, &c.LeadSource, &c.Created,
			&c.PaymentDate, &c.CallDate, &c.DaysToConvert)
		if err != nil {
			return nil, eris.Wrap(err, "postgres: scan client")
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "postgres: iterate clients")
	}

	intake, err := s.loadIntake(ctx)
	if err != nil {
		return nil, err
	}

	return &model.Snapshot{Clients: normalize(clients), Intake: intake}, nil
}

func (s *PostgresSource) loadIntake(ctx context.Context) (*model.IntakeData, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT has_email_list, email_list_size, pricing_confidence, nps,
		        has_website, has_case_studies, has_testimonials,
		        social_followers, has_sops, content_frequency,
		        testimonial_count, team_size, hours_per_client
		 FROM intake WHERE id = 1`,
	)

	var in model.IntakeData
	var freq *string
	err := row.Scan(&in.HasEmailList, &in.EmailListSize, &in.PricingConfidence,
		&in.NPS, &in.HasWebsite, &in.HasCaseStudies, &in.HasTestimonials,
		&in.SocialFollowers, &in.HasSOPs, &freq,
		&in.TestimonialCount, &in.TeamSize, &in.HoursPerClient)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: scan intake")
	}
	if freq != nil {
		f := model.ContentFrequency(*freq)
		in.ContentFrequency = &f
	}
	return &in, nil
}
