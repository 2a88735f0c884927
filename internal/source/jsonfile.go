package source

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"

	"github.com/soscreative/hotline-intel/internal/model"
)

// JSONSource reads a snapshot from a JSON file. The file is either a full
// snapshot object ({"clients": [...], "intake": {...}}) or a bare client
// array.
type JSONSource struct {
	Path string
}

func (s JSONSource) Load(ctx context.Context) (*model.Snapshot, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, eris.Wrapf(err, "source: read json %s", s.Path)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		var clients []model.Client
		if arrErr := json.Unmarshal(data, &clients); arrErr != nil {
			return nil, eris.Wrapf(err, "source: parse json %s", s.Path)
		}
		snap = model.Snapshot{Clients: clients}
	}

	snap.Clients = normalize(snap.Clients)
	return &snap, nil
}
