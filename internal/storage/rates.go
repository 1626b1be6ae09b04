package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hearth/internal/core"
)

func (r *SQLiteRepository) UpsertRate(ctx context.Context, rate core.CurrencyRate) error {
	if err := rate.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO currency_rates (from_currency, to_currency, rate, updated_at)
VALUES (?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (from_currency, to_currency) DO UPDATE SET rate = excluded.rate, updated_at = CURRENT_TIMESTAMP`,
		rate.From, rate.To, rate.Rate)
	if err != nil {
		return fmt.Errorf("upsert rate %s/%s: %w", rate.From, rate.To, err)
	}
	return nil
}

func (r *SQLiteRepository) GetRate(ctx context.Context, from, to core.Currency) (core.CurrencyRate, error) {
	var rate core.CurrencyRate
	err := r.db.QueryRowContext(ctx, `
SELECT from_currency, to_currency, rate, updated_at
FROM currency_rates WHERE from_currency = ? AND to_currency = ?`, from, to).
		Scan(&rate.From, &rate.To, &rate.Rate, &rate.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return core.CurrencyRate{}, ErrNotFound
	}
	if err != nil {
		return core.CurrencyRate{}, fmt.Errorf("get rate %s/%s: %w", from, to, err)
	}
	return rate, nil
}

func (r *SQLiteRepository) ListRates(ctx context.Context) ([]core.CurrencyRate, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT from_currency, to_currency, rate, updated_at
FROM currency_rates ORDER BY from_currency, to_currency`)
	if err != nil {
		return nil, fmt.Errorf("list rates: %w", err)
	}
	defer rows.Close()

	var out []core.CurrencyRate
	for rows.Next() {
		var rate core.CurrencyRate
		if err := rows.Scan(&rate.From, &rate.To, &rate.Rate, &rate.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan rate: %w", err)
		}
		out = append(out, rate)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) DeleteRate(ctx context.Context, from, to core.Currency) error {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM currency_rates WHERE from_currency = ? AND to_currency = ?`, from, to)
	if err != nil {
		return fmt.Errorf("delete rate %s/%s: %w", from, to, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Rate implements core.RateProvider on top of the currency_rates table.
// A missing pair reports ok=false rather than an error so the aggregator
// can fall back to the raw amount.
func (r *SQLiteRepository) Rate(ctx context.Context, from, to core.Currency) (float64, bool, error) {
	rate, err := r.GetRate(ctx, from, to)
	if errors.Is(err, ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return rate.Rate, true, nil
}
