package source

import (
	"context"
	"time"

	"github.com/soscreative/hotline-intel/internal/fixture"
	"github.com/soscreative/hotline-intel/internal/model"
)

// DemoSource serves the built-in sample dataset. Useful for first runs and
// for demos where no CRM export is wired up yet.
type DemoSource struct {
	// Now anchors the relative fixture dates. Zero means time.Now().
	Now time.Time
}

func (d DemoSource) Load(ctx context.Context) (*model.Snapshot, error) {
	now := d.Now
	if now.IsZero() {
		now = time.Now()
	}
	snap := fixture.Snapshot(now)
	return &snap, nil
}
