package worker

import (
	"context"
	"fmt"
	"log/slog"

	"hearth/internal/amqp"
	"hearth/internal/core"
	"hearth/internal/export"
	"hearth/internal/services"
	"hearth/internal/storage"
)

// SnapshotWorker recomputes household summaries on demand and persists the
// result as a snapshot. An optional exporter mirrors each snapshot to an
// external destination.
type SnapshotWorker struct {
	storage   *storage.SQLiteRepository
	summaries *services.SummaryService
	exporter  export.SnapshotWriter
	reporting core.Currency
}

func NewSnapshotWorker(store *storage.SQLiteRepository, summaries *services.SummaryService, exporter export.SnapshotWriter, reporting core.Currency) *SnapshotWorker {
	return &SnapshotWorker{
		storage:   store,
		summaries: summaries,
		exporter:  exporter,
		reporting: reporting.OrDefault(),
	}
}

// HandleRefreshMessage processes a single summary refresh message from AMQP.
// Returning an error requeues the message.
func (w *SnapshotWorker) HandleRefreshMessage(ctx context.Context, msg *amqp.SummaryRefreshMessage) error {
	slog.InfoContext(ctx, "Processing refresh message",
		"household_id", msg.HouseholdID,
		"reason", msg.Reason)

	if _, err := w.Snapshot(ctx, msg.HouseholdID); err != nil {
		return fmt.Errorf("snapshot household %d: %w", msg.HouseholdID, err)
	}
	return nil
}

// Snapshot recomputes the household summary and stores it. Export failures
// are logged but do not fail the snapshot: the local copy is the source of
// truth.
func (w *SnapshotWorker) Snapshot(ctx context.Context, householdID int64) (storage.Snapshot, error) {
	summary, err := w.summaries.BuildSummary(ctx, householdID, w.reporting)
	if err != nil {
		return storage.Snapshot{}, fmt.Errorf("build summary: %w", err)
	}

	snap, err := w.storage.InsertSnapshot(ctx, householdID, w.reporting, summary)
	if err != nil {
		return storage.Snapshot{}, fmt.Errorf("store snapshot: %w", err)
	}

	slog.InfoContext(ctx, "Stored summary snapshot",
		"snapshot_id", snap.ID,
		"household_id", householdID,
		"net_worth", summary.NetWorth)

	if w.exporter != nil {
		ref, err := w.exporter.Append(ctx, snap)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to export snapshot",
				"snapshot_id", snap.ID,
				"household_id", householdID,
				"error", err)
		} else {
			slog.InfoContext(ctx, "Exported snapshot", "snapshot_id", snap.ID, "row_ref", ref)
		}
	}

	return snap, nil
}

// SnapshotAll captures a snapshot for every household. Used by the periodic
// sweep as a backup in case refresh messages are lost. Failures on one
// household do not stop the sweep.
func (w *SnapshotWorker) SnapshotAll(ctx context.Context) error {
	ids, err := w.storage.ListHouseholdIDs(ctx)
	if err != nil {
		return fmt.Errorf("list households: %w", err)
	}

	var failed int
	for _, id := range ids {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if _, err := w.Snapshot(ctx, id); err != nil {
			failed++
			slog.ErrorContext(ctx, "Failed to snapshot household", "household_id", id, "error", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("snapshot sweep: %d of %d households failed", failed, len(ids))
	}
	return nil
}
