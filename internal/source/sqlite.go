package source

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/soscreative/hotline-intel/internal/model"
)

// SQLiteSource reads the client list from a local SQLite file. The engine
// only ever reads from it; Migrate and SaveSnapshot exist so the seed
// command can bootstrap a database from the demo fixture.
type SQLiteSource struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path.
func NewSQLite(dsn string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteSource{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS clients (
	id              TEXT PRIMARY KEY,
	name            TEXT NOT NULL,
	email           TEXT NOT NULL DEFAULT '',
	phone           TEXT NOT NULL DEFAULT '',
	status          TEXT NOT NULL,
	product         TEXT NOT NULL DEFAULT '',
	amount          REAL NOT NULL DEFAULT 0,
	lead_source     TEXT NOT NULL DEFAULT '',
	created         DATETIME NOT NULL,
	payment_date    DATETIME,
	call_date       DATETIME,
	days_to_convert INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS intake (
	id                 INTEGER PRIMARY KEY CHECK (id = 1),
	has_email_list     BOOLEAN,
	email_list_size    INTEGER,
	pricing_confidence INTEGER,
	nps                REAL,
	has_website        BOOLEAN,
	has_case_studies   BOOLEAN,
	has_testimonials   BOOLEAN,
	social_followers   INTEGER,
	has_sops           BOOLEAN,
	content_frequency  TEXT,
	testimonial_count  INTEGER,
	team_size          INTEGER,
	hours_per_client   REAL
);

CREATE INDEX IF NOT EXISTS idx_clients_status ON clients(status);
CREATE INDEX IF NOT EXISTS idx_clients_lead_source ON clients(lead_source);
`

func (s *SQLiteSource) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

func (s *SQLiteSource) Load(ctx context.Context) (*model.Snapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, phone, status, product, amount, lead_source,
		        created, payment_date, call_date, days_to_convert
		 FROM clients ORDER BY created, id`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query clients")
	}
	defer rows.Close()

	var clients []model.Client
	for rows.Next() {
		var c model.Client
		var payment, call sql.NullTime
		err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Status,
			&c.Product, &c.Amount, &c.LeadSource, &c.Created,
			&payment, &call, &c.DaysToConvert)
		if err != nil {
			return nil, eris.Wrap(err, "sqlite: scan client")
		}
		if payment.Valid {
			t := payment.Time
			c.PaymentDate = &t
		}
		if call.Valid {
			t := call.Time
			c.CallDate = &t
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate clients")
	}

	intake, err := s.loadIntake(ctx)
	if err != nil {
		return nil, err
	}

	return &model.Snapshot{Clients: normalize(clients), Intake: intake}, nil
}

func (s *SQLiteSource) loadIntake(ctx context.Context) (*model.IntakeData, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT has_email_list, email_list_size, pricing_confidence, nps,
		        has_website, has_case_studies, has_testimonials,
		        social_followers, has_sops, content_frequency,
		        testimonial_count, team_size, hours_per_client
		 FROM intake WHERE id = 1`,
	)

	var in model.IntakeData
	var freq sql.NullString
	err := row.Scan(&in.HasEmailList, &in.EmailListSize, &in.PricingConfidence,
		&in.NPS, &in.HasWebsite, &in.HasCaseStudies, &in.HasTestimonials,
		&in.SocialFollowers, &in.HasSOPs, &freq,
		&in.TestimonialCount, &in.TeamSize, &in.HoursPerClient)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan intake")
	}
	if freq.Valid {
		f := model.ContentFrequency(freq.String)
		in.ContentFrequency = &f
	}
	return &in, nil
}

// SaveSnapshot replaces the database contents with the given snapshot.
func (s *SQLiteSource) SaveSnapshot(ctx context.Context, snap model.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM clients`); err != nil {
		return eris.Wrap(err, "sqlite: clear clients")
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM intake`); err != nil {
		return eris.Wrap(err, "sqlite: clear intake")
	}

	for _, c := range normalize(snap.Clients) {
		var payment, call any
		if c.PaymentDate != nil {
			payment = c.PaymentDate.UTC()
		}
		if c.CallDate != nil {
			call = c.CallDate.UTC()
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO clients (id, name, email, phone, status, product, amount,
			                      lead_source, created, payment_date, call_date, days_to_convert)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.Name, c.Email, c.Phone, string(c.Status), string(c.Product),
			c.Amount, string(c.LeadSource), c.Created.UTC(), payment, call,
			c.DaysToConvert,
		)
		if err != nil {
			return eris.Wrapf(err, "sqlite: insert client %s", c.ID)
		}
	}

	if snap.Intake != nil {
		in := snap.Intake
		var freq any
		if in.ContentFrequency != nil {
			freq = string(*in.ContentFrequency)
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO intake (id, has_email_list, email_list_size,
			                     pricing_confidence, nps, has_website,
			                     has_case_studies, has_testimonials,
			                     social_followers, has_sops, content_frequency,
			                     testimonial_count, team_size, hours_per_client)
			 VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			in.HasEmailList, in.EmailListSize, in.PricingConfidence, in.NPS,
			in.HasWebsite, in.HasCaseStudies, in.HasTestimonials,
			in.SocialFollowers, in.HasSOPs, freq,
			in.TestimonialCount, in.TeamSize, in.HoursPerClient,
		)
		if err != nil {
			return eris.Wrap(err, "sqlite: insert intake")
		}
	}

	if err := tx.Commit(); err != nil {
		return eris.Wrap(err, "sqlite: commit")
	}
	return nil
}
