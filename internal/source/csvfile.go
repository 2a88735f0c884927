package source

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/soscreative/hotline-intel/internal/model"
)

// csvColumns is the expected header set. Column order in the file does not
// matter; unknown columns are ignored.
var csvColumns = []string{
	"id", "name", "email", "phone", "status", "product", "amount",
	"lead_source", "created", "payment_date", "call_date", "days_to_convert",
}

// CSVSource reads a snapshot from a CSV export. The first row must be a
// header naming the columns; "name", "status" and "created" are required.
type CSVSource struct {
	Path string
}

func (s CSVSource) Load(ctx context.Context) (*model.Snapshot, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, eris.Wrapf(err, "source: open csv %s", s.Path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, eris.Wrapf(err, "source: read csv header %s", s.Path)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"name", "status", "created"} {
		if _, ok := col[required]; !ok {
			return nil, eris.Errorf("source: csv %s missing column %q", s.Path, required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var clients []model.Client
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrapf(err, "source: read csv %s line %d", s.Path, line)
		}

		c := model.Client{
			ID:         field(row, "id"),
			Name:       field(row, "name"),
			Email:      field(row, "email"),
			Phone:      field(row, "phone"),
			Status:     model.Status(field(row, "status")),
			Product:    model.Product(field(row, "product")),
			LeadSource: model.LeadSource(field(row, "lead_source")),
		}

		if v := field(row, "amount"); v != "" {
			c.Amount, err = strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, eris.Wrapf(err, "source: csv %s line %d amount", s.Path, line)
			}
		}
		if v := field(row, "days_to_convert"); v != "" {
			c.DaysToConvert, err = strconv.Atoi(v)
			if err != nil {
				return nil, eris.Wrapf(err, "source: csv %s line %d days_to_convert", s.Path, line)
			}
		}

		c.Created, err = parseDate(field(row, "created"))
		if err != nil {
			return nil, eris.Wrapf(err, "source: csv %s line %d", s.Path, line)
		}
		c.PaymentDate, err = parseOptionalDate(field(row, "payment_date"))
		if err != nil {
			return nil, eris.Wrapf(err, "source: csv %s line %d", s.Path, line)
		}
		c.CallDate, err = parseOptionalDate(field(row, "call_date"))
		if err != nil {
			return nil, eris.Wrapf(err, "source: csv %s line %d", s.Path, line)
		}

		clients = append(clients, c)
	}

	return &model.Snapshot{Clients: normalize(clients)}, nil
}
