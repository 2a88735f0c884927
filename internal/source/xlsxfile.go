package source

import (
	"context"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/soscreative/hotline-intel/internal/model"
)

// XLSXSource reads a snapshot from an Excel workbook. The first sheet is
// used unless SheetName is set; the first row must be a header using the
// same column names as the CSV format.
type XLSXSource struct {
	Path      string
	SheetName string
}

func (s XLSXSource) Load(ctx context.Context) (*model.Snapshot, error) {
	f, err := xlsx.OpenFile(s.Path)
	if err != nil {
		return nil, eris.Wrapf(err, "source: open xlsx %s", s.Path)
	}

	sheet, err := s.sheet(f)
	if err != nil {
		return nil, err
	}
	if len(sheet.Rows) == 0 {
		return &model.Snapshot{}, nil
	}

	col := make(map[string]int)
	for i, cell := range sheet.Rows[0].Cells {
		col[strings.ToLower(strings.TrimSpace(cell.String()))] = i
	}

	field := func(row *xlsx.Row, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row.Cells) {
			return ""
		}
		return strings.TrimSpace(row.Cells[i].String())
	}

	var clients []model.Client
	for n, row := range sheet.Rows[1:] {
		line := n + 2
		if field(row, "name") == "" && field(row, "status") == "" {
			continue
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
				return nil, eris.Wrapf(err, "source: xlsx %s row %d amount", s.Path, line)
			}
		}
		if v := field(row, "days_to_convert"); v != "" {
			c.DaysToConvert, err = strconv.Atoi(v)
			if err != nil {
				return nil, eris.Wrapf(err, "source: xlsx %s row %d days_to_convert", s.Path, line)
			}
		}

		c.Created, err = parseDate(field(row, "created"))
		if err != nil {
			return nil, eris.Wrapf(err, "source: xlsx %s row %d", s.Path, line)
		}
		c.PaymentDate, err = parseOptionalDate(field(row, "payment_date"))
		if err != nil {
			return nil, eris.Wrapf(err, "source: xlsx %s row %d", s.Path, line)
		}
		c.CallDate, err = parseOptionalDate(field(row, "call_date"))
		if err != nil {
			return nil, eris.Wrapf(err, "source: xlsx %s row %d", s.Path, line)
		}

		clients = append(clients, c)
	}

	return &model.Snapshot{Clients: normalize(clients)}, nil
}

func (s XLSXSource) sheet(f *xlsx.File) (*xlsx.Sheet, error) {
	if s.SheetName != "" {
		sheet, ok := f.Sheet[s.SheetName]
		if !ok {
			return nil, eris.Errorf("source: xlsx sheet %q not found", s.SheetName)
		}
		return sheet, nil
	}
	if len(f.Sheets) == 0 {
		return nil, eris.Errorf("source: xlsx %s has no sheets", s.Path)
	}
	return f.Sheets[0], nil
}
