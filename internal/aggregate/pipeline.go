package aggregate

import "github.com/soscreative/hotline-intel/internal/model"

// Pipeline returns one row per pipeline status in the declared canonical
// order, each listing its matching clients and summed paid value. Clients
// with unknown statuses are omitted; statuses with no clients still get a row.
func Pipeline(clients []model.Client) []model.PipelineRow {
	rows := make([]model.PipelineRow, len(model.PipelineOrder))
	index := make(map[model.Status]int, len(model.PipelineOrder))
	for i, s := range model.PipelineOrder {
		rows[i] = model.PipelineRow{Status: s}
		index[s] = i
	}

	for _, c := range clients {
		i, ok := index[c.Status]
		if !ok {
			continue
		}
		rows[i].Clients = append(rows[i].Clients, c)
		rows[i].Count++
		rows[i].Value += c.Amount
	}
	return rows
}
