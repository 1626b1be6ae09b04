package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hearth/internal/core"
)

// Stock

func (r *SQLiteRepository) CreateStock(ctx context.Context, s core.Stock) (core.Stock, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO stocks (household_id, symbol, company_name, shares, current_price, purchase_price, purchase_date, dividend_yield, dividend_frequency, notes, currency, created_by)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.HouseholdID, s.Symbol, s.CompanyName, s.Shares,
		nullFloat(s.CurrentPrice), nullFloat(s.PurchasePrice), nullTime(s.PurchaseDate), nullFloat(s.DividendYield),
		s.DividendFrequency, s.Notes, s.Currency.OrDefault(), s.CreatedBy)
	if err != nil {
		return core.Stock{}, fmt.Errorf("insert stock: %w", err)
	}
	s.ID, _ = res.LastInsertId()
	return r.GetStock(ctx, s.ID)
}

func scanStock(row interface{ Scan(...any) error }) (core.Stock, error) {
	var (
		s                   core.Stock
		current, purch, div sql.NullFloat64
		date                sql.NullTime
	)
	err := row.Scan(&s.ID, &s.HouseholdID, &s.Symbol, &s.CompanyName, &s.Shares,
		&current, &purch, &date, &div,
		&s.DividendFrequency, &s.Notes, &s.Currency, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return core.Stock{}, err
	}
	s.CurrentPrice = floatPtr(current)
	s.PurchasePrice = floatPtr(purch)
	s.PurchaseDate = timePtr(date)
	s.DividendYield = floatPtr(div)
	return s, nil
}

const stockColumns = `id, household_id, symbol, company_name, shares, current_price, purchase_price, purchase_date, dividend_yield, dividend_frequency, notes, currency, created_by, created_at, updated_at`

func (r *SQLiteRepository) GetStock(ctx context.Context, id int64) (core.Stock, error) {
	s, err := scanStock(r.db.QueryRowContext(ctx, `SELECT `+stockColumns+` FROM stocks WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return core.Stock{}, ErrNotFound
	}
	if err != nil {
		return core.Stock{}, fmt.Errorf("get stock: %w", err)
	}
	return s, nil
}

func (r *SQLiteRepository) ListStocks(ctx context.Context, householdID int64) ([]core.Stock, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+stockColumns+` FROM stocks WHERE household_id = ? ORDER BY symbol ASC`, householdID)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()

	var out []core.Stock
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) UpdateStock(ctx context.Context, s core.Stock) (core.Stock, error) {
	res, err := r.db.ExecContext(ctx, `
UPDATE stocks
SET symbol = ?, company_name = ?, shares = ?, current_price = ?, purchase_price = ?, purchase_date = ?, dividend_yield = ?, dividend_frequency = ?, notes = ?, currency = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?`,
		s.Symbol, s.CompanyName, s.Shares,
		nullFloat(s.CurrentPrice), nullFloat(s.PurchasePrice), nullTime(s.PurchaseDate), nullFloat(s.DividendYield),
		s.DividendFrequency, s.Notes, s.Currency.OrDefault(), s.ID)
	if err != nil {
		return core.Stock{}, fmt.Errorf("update stock: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.Stock{}, ErrNotFound
	}
	return r.GetStock(ctx, s.ID)
}

func (r *SQLiteRepository) DeleteStock(ctx context.Context, id int64) error {
	return r.deleteRow(ctx, "stocks", id)
}

// PassiveIncome

const incomeColumns = `id, household_id, name, description, amount, frequency, currency, category, is_taxable, start_date, end_date, created_by, created_at, updated_at`

func (r *SQLiteRepository) CreatePassiveIncome(ctx context.Context, p core.PassiveIncome) (core.PassiveIncome, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO passive_income (household_id, name, description, amount, frequency, currency, category, is_taxable, start_date, end_date, created_by)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.HouseholdID, p.Name, p.Description, p.Amount, p.Frequency, p.Currency.OrDefault(), p.Category,
		p.Taxable, nullTime(p.StartDate), nullTime(p.EndDate), p.CreatedBy)
	if err != nil {
		return core.PassiveIncome{}, fmt.Errorf("insert passive income: %w", err)
	}
	p.ID, _ = res.LastInsertId()
	return r.GetPassiveIncome(ctx, p.ID)
}

func scanPassiveIncome(row interface{ Scan(...any) error }) (core.PassiveIncome, error) {
	var (
		p          core.PassiveIncome
		start, end sql.NullTime
	)
	err := row.Scan(&p.ID, &p.HouseholdID, &p.Name, &p.Description, &p.Amount, &p.Frequency, &p.Currency, &p.Category,
		&p.Taxable, &start, &end, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return core.PassiveIncome{}, err
	}
	p.StartDate = timePtr(start)
	p.EndDate = timePtr(end)
	return p, nil
}

func (r *SQLiteRepository) GetPassiveIncome(ctx context.Context, id int64) (core.PassiveIncome, error) {
	p, err := scanPassiveIncome(r.db.QueryRowContext(ctx, `SELECT `+incomeColumns+` FROM passive_income WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return core.PassiveIncome{}, ErrNotFound
	}
	if err != nil {
		return core.PassiveIncome{}, fmt.Errorf("get passive income: %w", err)
	}
	return p, nil
}

func (r *SQLiteRepository) ListPassiveIncome(ctx context.Context, householdID int64) ([]core.PassiveIncome, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+incomeColumns+` FROM passive_income WHERE household_id = ? ORDER BY created_at DESC`, householdID)
	if err != nil {
		return nil, fmt.Errorf("list passive income: %w", err)
	}
	defer rows.Close()

	var out []core.PassiveIncome
	for rows.Next() {
		p, err := scanPassiveIncome(rows)
		if err != nil {
			return nil, fmt.Errorf("scan passive income: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) UpdatePassiveIncome(ctx context.Context, p core.PassiveIncome) (core.PassiveIncome, error) {
	res, err := r.db.ExecContext(ctx, `
UPDATE passive_income
SET name = ?, description = ?, amount = ?, frequency = ?, currency = ?, category = ?, is_taxable = ?, start_date = ?, end_date = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?`,
		p.Name, p.Description, p.Amount, p.Frequency, p.Currency.OrDefault(), p.Category,
		p.Taxable, nullTime(p.StartDate), nullTime(p.EndDate), p.ID)
	if err != nil {
		return core.PassiveIncome{}, fmt.Errorf("update passive income: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.PassiveIncome{}, ErrNotFound
	}
	return r.GetPassiveIncome(ctx, p.ID)
}

func (r *SQLiteRepository) DeletePassiveIncome(ctx context.Context, id int64) error {
	return r.deleteRow(ctx, "passive_income", id)
}

// Investment

const investmentColumns = `id, household_id, type, name, description, amount, currency, purchase_date, current_value, metadata, created_by, created_at, updated_at`

func (r *SQLiteRepository) CreateInvestment(ctx context.Context, i core.Investment) (core.Investment, error) {
	meta, err := core.EncodeMetadata(i.Type, i.Metadata)
	if err != nil {
		return core.Investment{}, fmt.Errorf("encode investment metadata: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `
INSERT INTO investments (household_id, type, name, description, amount, currency, purchase_date, current_value, metadata, created_by)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		i.HouseholdID, i.Type, i.Name, i.Description, i.Amount, i.Currency.OrDefault(),
		nullTime(i.PurchaseDate), nullFloat(i.CurrentValue), string(meta), i.CreatedBy)
	if err != nil {
		return core.Investment{}, fmt.Errorf("insert investment: %w", err)
	}
	i.ID, _ = res.LastInsertId()
	return r.GetInvestment(ctx, i.ID)
}

func scanInvestment(row interface{ Scan(...any) error }) (core.Investment, error) {
	var (
		i       core.Investment
		date    sql.NullTime
		current sql.NullFloat64
		meta    string
	)
	err := row.Scan(&i.ID, &i.HouseholdID, &i.Type, &i.Name, &i.Description, &i.Amount, &i.Currency,
		&date, &current, &meta, &i.CreatedBy, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return core.Investment{}, err
	}
	i.PurchaseDate = timePtr(date)
	i.CurrentValue = floatPtr(current)
	i.Metadata, err = core.DecodeMetadata(i.Type, []byte(meta))
	if err != nil {
		return core.Investment{}, fmt.Errorf("decode investment metadata: %w", err)
	}
	return i, nil
}

func (r *SQLiteRepository) GetInvestment(ctx context.Context, id int64) (core.Investment, error) {
	i, err := scanInvestment(r.db.QueryRowContext(ctx, `SELECT `+investmentColumns+` FROM investments WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return core.Investment{}, ErrNotFound
	}
	if err != nil {
		return core.Investment{}, fmt.Errorf("get investment: %w", err)
	}
	return i, nil
}

func (r *SQLiteRepository) ListInvestments(ctx context.Context, householdID int64) ([]core.Investment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+investmentColumns+` FROM investments WHERE household_id = ? ORDER BY created_at DESC`, householdID)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	defer rows.Close()

	var out []core.Investment
	for rows.Next() {
		i, err := scanInvestment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan investment: %w", err)
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) UpdateInvestment(ctx context.Context, i core.Investment) (core.Investment, error) {
	meta, err := core.EncodeMetadata(i.Type, i.Metadata)
	if err != nil {
		return core.Investment{}, fmt.Errorf("encode investment metadata: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `
UPDATE investments
SET type = ?, name = ?, description = ?, amount = ?, currency = ?, purchase_date = ?, current_value = ?, metadata = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?`,
		i.Type, i.Name, i.Description, i.Amount, i.Currency.OrDefault(),
		nullTime(i.PurchaseDate), nullFloat(i.CurrentValue), string(meta), i.ID)
	if err != nil {
		return core.Investment{}, fmt.Errorf("update investment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.Investment{}, ErrNotFound
	}
	return r.GetInvestment(ctx, i.ID)
}

func (r *SQLiteRepository) DeleteInvestment(ctx context.Context, id int64) error {
	return r.deleteRow(ctx, "investments", id)
}
