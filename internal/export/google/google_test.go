package google

import (
	"context"
	"testing"
	"time"

	"hearth/internal/core"
	"hearth/internal/storage"
)

func TestSnapshotRow(t *testing.T) {
	snap := storage.Snapshot{
		ID:          3,
		HouseholdID: 7,
		Currency:    core.EUR,
		Summary: core.FinancialSummary{
			NetWorth:                  120500.25,
			TotalAssets:               150000,
			TotalLiabilities:          29499.75,
			TotalMonthlyExpenses:      1830.50,
			TotalMonthlyPassiveIncome: 410,
		},
		CapturedAt: time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC),
	}

	row := snapshotRow(snap)
	if len(row) != 8 {
		t.Fatalf("expected 8 cells, got %d", len(row))
	}
	if row[0] != "2024-06-01 08:30:00" {
		t.Errorf("timestamp cell = %v", row[0])
	}
	if row[1] != int64(7) || row[2] != "EUR" {
		t.Errorf("identity cells = %v %v", row[1], row[2])
	}
	if row[3] != 120500.25 {
		t.Errorf("net worth cell = %v", row[3])
	}
}

func TestAppendWithoutService(t *testing.T) {
	c := &Client{spreadsheetID: "sheet", sheetName: "Snapshots"}
	if _, err := c.Append(context.Background(), storage.Snapshot{}); err == nil {
		t.Error("expected error when service not initialized")
	}
}

func TestNewRequiresSpreadsheetID(t *testing.T) {
	if _, err := New(context.Background(), "  ", "Snapshots"); err == nil {
		t.Error("expected error for missing spreadsheet id")
	}
}
