// Package source loads client snapshots from the supported backends: the
// built-in demo dataset, JSON/CSV/XLSX exports, a SQLite file or a Postgres
// database. Sources are read paths only; the engine never writes client
// records back.
package source

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/soscreative/hotline-intel/internal/model"
)

// Source loads one snapshot of the client list.
type Source interface {
	Load(ctx context.Context) (*model.Snapshot, error)
}

// dateLayout is the day-granularity format used by file exports.
const dateLayout = "2006-01-02"

// normalize fills in the fields exports commonly omit: records without an
// ID get a generated one, and emails are lowercased so duplicate detection
// is case-insensitive.
func normalize(clients []model.Client) []model.Client {
	for i := range clients {
		if clients[i].ID == "" {
			clients[i].ID = uuid.New().String()
		}
		clients[i].Email = strings.ToLower(strings.TrimSpace(clients[i].Email))
	}
	return clients
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, eris.Wrapf(err, "source: parse date %q", s)
	}
	return t, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
