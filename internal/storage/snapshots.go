package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hearth/internal/core"
)

// Snapshot is a point-in-time summary persisted by the background worker.
type Snapshot struct {
	ID          int64
	HouseholdID int64
	Currency    core.Currency
	Summary     core.FinancialSummary
	CapturedAt  time.Time
}

func (r *SQLiteRepository) InsertSnapshot(ctx context.Context, householdID int64, currency core.Currency, summary core.FinancialSummary) (Snapshot, error) {
	payload, err := json.Marshal(summary)
	if err != nil {
		return Snapshot{}, fmt.Errorf("marshal snapshot: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `
INSERT INTO summary_snapshots (household_id, currency, payload) VALUES (?, ?, ?)`,
		householdID, currency, string(payload))
	if err != nil {
		return Snapshot{}, fmt.Errorf("insert snapshot: %w", err)
	}
	id, _ := res.LastInsertId()

	var snap Snapshot
	err = r.db.QueryRowContext(ctx, `
SELECT id, household_id, currency, captured_at FROM summary_snapshots WHERE id = ?`, id).
		Scan(&snap.ID, &snap.HouseholdID, &snap.Currency, &snap.CapturedAt)
	if err != nil {
		return Snapshot{}, fmt.Errorf("get snapshot: %w", err)
	}
	snap.Summary = summary
	return snap, nil
}

// ListSnapshots returns the most recent snapshots first, capped at limit.
func (r *SQLiteRepository) ListSnapshots(ctx context.Context, householdID int64, limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT id, household_id, currency, payload, captured_at
FROM summary_snapshots WHERE household_id = ?
ORDER BY captured_at DESC, id DESC LIMIT ?`, householdID, limit)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var (
			snap    Snapshot
			payload string
		)
		if err := rows.Scan(&snap.ID, &snap.HouseholdID, &snap.Currency, &payload, &snap.CapturedAt); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		if err := json.Unmarshal([]byte(payload), &snap.Summary); err != nil {
			return nil, fmt.Errorf("decode snapshot %d: %w", snap.ID, err)
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}
