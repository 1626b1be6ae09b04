package export

import (
	"context"

	"hearth/internal/storage"
)

// Ports for outbound adapters.
type (
	// SnapshotWriter exports a computed summary snapshot to an external
	// destination.
	SnapshotWriter interface {
		Append(ctx context.Context, snap storage.Snapshot) (rowRef string, err error)
	}
)
