package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hearth/internal/core"
)

func nullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func floatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

func nullTime(p *time.Time) sql.NullTime {
	if p == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *p, Valid: true}
}

func timePtr(n sql.NullTime) *time.Time {
	if !n.Valid {
		return nil
	}
	t := n.Time
	return &t
}

// Property

func (r *SQLiteRepository) CreateProperty(ctx context.Context, p core.Property) (core.Property, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO properties (household_id, name, address, price, currency, maintenance_amount, yearly_tax, created_by)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.HouseholdID, p.Name, p.Address, p.Price, p.Currency.OrDefault(), p.MaintenanceAmount, p.YearlyTax, p.CreatedBy)
	if err != nil {
		return core.Property{}, fmt.Errorf("insert property: %w", err)
	}
	p.ID, _ = res.LastInsertId()
	return r.GetProperty(ctx, p.ID)
}

func (r *SQLiteRepository) GetProperty(ctx context.Context, id int64) (core.Property, error) {
	var p core.Property
	err := r.db.QueryRowContext(ctx, `
SELECT id, household_id, name, address, price, currency, maintenance_amount, yearly_tax, created_by, created_at, updated_at
FROM properties WHERE id = ?`, id).
		Scan(&p.ID, &p.HouseholdID, &p.Name, &p.Address, &p.Price, &p.Currency, &p.MaintenanceAmount, &p.YearlyTax, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Property{}, ErrNotFound
	}
	if err != nil {
		return core.Property{}, fmt.Errorf("get property: %w", err)
	}
	return p, nil
}

func (r *SQLiteRepository) ListProperties(ctx context.Context, householdID int64) ([]core.Property, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, household_id, name, address, price, currency, maintenance_amount, yearly_tax, created_by, created_at, updated_at
FROM properties WHERE household_id = ? ORDER BY created_at DESC`, householdID)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	var out []core.Property
	for rows.Next() {
		var p core.Property
		if err := rows.Scan(&p.ID, &p.HouseholdID, &p.Name, &p.Address, &p.Price, &p.Currency, &p.MaintenanceAmount, &p.YearlyTax, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) UpdateProperty(ctx context.Context, p core.Property) (core.Property, error) {
	res, err := r.db.ExecContext(ctx, `
UPDATE properties
SET name = ?, address = ?, price = ?, currency = ?, maintenance_amount = ?, yearly_tax = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?`,
		p.Name, p.Address, p.Price, p.Currency.OrDefault(), p.MaintenanceAmount, p.YearlyTax, p.ID)
	if err != nil {
		return core.Property{}, fmt.Errorf("update property: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.Property{}, ErrNotFound
	}
	return r.GetProperty(ctx, p.ID)
}

func (r *SQLiteRepository) DeleteProperty(ctx context.Context, id int64) error {
	return r.deleteRow(ctx, "properties", id)
}

// BankAccount

func (r *SQLiteRepository) CreateBankAccount(ctx context.Context, b core.BankAccount) (core.BankAccount, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO bank_accounts (household_id, name, bank_name, amount, currency, interest_rate, created_by)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		b.HouseholdID, b.Name, b.BankName, b.Amount, b.Currency.OrDefault(), b.InterestRate, b.CreatedBy)
	if err != nil {
		return core.BankAccount{}, fmt.Errorf("insert bank account: %w", err)
	}
	b.ID, _ = res.LastInsertId()
	return r.GetBankAccount(ctx, b.ID)
}

func (r *SQLiteRepository) GetBankAccount(ctx context.Context, id int64) (core.BankAccount, error) {
	var b core.BankAccount
	err := r.db.QueryRowContext(ctx, `
SELECT id, household_id, name, bank_name, amount, currency, interest_rate, created_by, created_at, updated_at
FROM bank_accounts WHERE id = ?`, id).
		Scan(&b.ID, &b.HouseholdID, &b.Name, &b.BankName, &b.Amount, &b.Currency, &b.InterestRate, &b.CreatedBy, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return core.BankAccount{}, ErrNotFound
	}
	if err != nil {
		return core.BankAccount{}, fmt.Errorf("get bank account: %w", err)
	}
	return b, nil
}

func (r *SQLiteRepository) ListBankAccounts(ctx context.Context, householdID int64) ([]core.BankAccount, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, household_id, name, bank_name, amount, currency, interest_rate, created_by, created_at, updated_at
FROM bank_accounts WHERE household_id = ? ORDER BY created_at DESC`, householdID)
	if err != nil {
		return nil, fmt.Errorf("list bank accounts: %w", err)
	}
	defer rows.Close()

	var out []core.BankAccount
	for rows.Next() {
		var b core.BankAccount
		if err := rows.Scan(&b.ID, &b.HouseholdID, &b.Name, &b.BankName, &b.Amount, &b.Currency, &b.InterestRate, &b.CreatedBy, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bank account: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) UpdateBankAccount(ctx context.Context, b core.BankAccount) (core.BankAccount, error) {
	res, err := r.db.ExecContext(ctx, `
UPDATE bank_accounts
SET name = ?, bank_name = ?, amount = ?, currency = ?, interest_rate = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?`,
		b.Name, b.BankName, b.Amount, b.Currency.OrDefault(), b.InterestRate, b.ID)
	if err != nil {
		return core.BankAccount{}, fmt.Errorf("update bank account: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.BankAccount{}, ErrNotFound
	}
	return r.GetBankAccount(ctx, b.ID)
}

func (r *SQLiteRepository) DeleteBankAccount(ctx context.Context, id int64) error {
	return r.deleteRow(ctx, "bank_accounts", id)
}

// Vehicle

func (r *SQLiteRepository) CreateVehicle(ctx context.Context, v core.Vehicle) (core.Vehicle, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO vehicles (household_id, model, year, sale_price, maintenance_costs, currency, created_by)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		v.HouseholdID, v.Model, v.Year, v.SalePrice, v.MaintenanceCosts, v.Currency.OrDefault(), v.CreatedBy)
	if err != nil {
		return core.Vehicle{}, fmt.Errorf("insert vehicle: %w", err)
	}
	v.ID, _ = res.LastInsertId()
	return r.GetVehicle(ctx, v.ID)
}

func (r *SQLiteRepository) GetVehicle(ctx context.Context, id int64) (core.Vehicle, error) {
	var v core.Vehicle
	err := r.db.QueryRowContext(ctx, `
SELECT id, household_id, model, year, sale_price, maintenance_costs, currency, created_by, created_at, updated_at
FROM vehicles WHERE id = ?`, id).
		Scan(&v.ID, &v.HouseholdID, &v.Model, &v.Year, &v.SalePrice, &v.MaintenanceCosts, &v.Currency, &v.CreatedBy, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Vehicle{}, ErrNotFound
	}
	if err != nil {
		return core.Vehicle{}, fmt.Errorf("get vehicle: %w", err)
	}
	return v, nil
}

func (r *SQLiteRepository) ListVehicles(ctx context.Context, householdID int64) ([]core.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, household_id, model, year, sale_price, maintenance_costs, currency, created_by, created_at, updated_at
FROM vehicles WHERE household_id = ? ORDER BY created_at DESC`, householdID)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var out []core.Vehicle
	for rows.Next() {
		var v core.Vehicle
		if err := rows.Scan(&v.ID, &v.HouseholdID, &v.Model, &v.Year, &v.SalePrice, &v.MaintenanceCosts, &v.Currency, &v.CreatedBy, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) UpdateVehicle(ctx context.Context, v core.Vehicle) (core.Vehicle, error) {
	res, err := r.db.ExecContext(ctx, `
UPDATE vehicles
SET model = ?, year = ?, sale_price = ?, maintenance_costs = ?, currency = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?`,
		v.Model, v.Year, v.SalePrice, v.MaintenanceCosts, v.Currency.OrDefault(), v.ID)
	if err != nil {
		return core.Vehicle{}, fmt.Errorf("update vehicle: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.Vehicle{}, ErrNotFound
	}
	return r.GetVehicle(ctx, v.ID)
}

func (r *SQLiteRepository) DeleteVehicle(ctx context.Context, id int64) error {
	return r.deleteRow(ctx, "vehicles", id)
}

// Credit

func (r *SQLiteRepository) CreateCredit(ctx context.Context, c core.Credit) (core.Credit, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO credits (household_id, name, description, total_amount, remaining_amount, monthly_payment, currency, created_by)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.HouseholdID, c.Name, c.Description, c.TotalAmount, c.RemainingAmount, c.MonthlyPayment, c.Currency.OrDefault(), c.CreatedBy)
	if err != nil {
		return core.Credit{}, fmt.Errorf("insert credit: %w", err)
	}
	c.ID, _ = res.LastInsertId()
	return r.GetCredit(ctx, c.ID)
}

func (r *SQLiteRepository) GetCredit(ctx context.Context, id int64) (core.Credit, error) {
	var c core.Credit
	err := r.db.QueryRowContext(ctx, `
SELECT id, household_id, name, description, total_amount, remaining_amount, monthly_payment, currency, created_by, created_at, updated_at
FROM credits WHERE id = ?`, id).
		Scan(&c.ID, &c.HouseholdID, &c.Name, &c.Description, &c.TotalAmount, &c.RemainingAmount, &c.MonthlyPayment, &c.Currency, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Credit{}, ErrNotFound
	}
	if err != nil {
		return core.Credit{}, fmt.Errorf("get credit: %w", err)
	}
	return c, nil
}

func (r *SQLiteRepository) ListCredits(ctx context.Context, householdID int64) ([]core.Credit, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, household_id, name, description, total_amount, remaining_amount, monthly_payment, currency, created_by, created_at, updated_at
FROM credits WHERE household_id = ? ORDER BY created_at DESC`, householdID)
	if err != nil {
		return nil, fmt.Errorf("list credits: %w", err)
	}
	defer rows.Close()

	var out []core.Credit
	for rows.Next() {
		var c core.Credit
		if err := rows.Scan(&c.ID, &c.HouseholdID, &c.Name, &c.Description, &c.TotalAmount, &c.RemainingAmount, &c.MonthlyPayment, &c.Currency, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan credit: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) UpdateCredit(ctx context.Context, c core.Credit) (core.Credit, error) {
	res, err := r.db.ExecContext(ctx, `
UPDATE credits
SET name = ?, description = ?, total_amount = ?, remaining_amount = ?, monthly_payment = ?, currency = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?`,
		c.Name, c.Description, c.TotalAmount, c.RemainingAmount, c.MonthlyPayment, c.Currency.OrDefault(), c.ID)
	if err != nil {
		return core.Credit{}, fmt.Errorf("update credit: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.Credit{}, ErrNotFound
	}
	return r.GetCredit(ctx, c.ID)
}

func (r *SQLiteRepository) DeleteCredit(ctx context.Context, id int64) error {
	return r.deleteRow(ctx, "credits", id)
}

// Subscription

func (r *SQLiteRepository) CreateSubscription(ctx context.Context, s core.Subscription) (core.Subscription, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO subscriptions (household_id, name, description, price, currency, billing_cycle, priority, created_by)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.HouseholdID, s.Name, s.Description, s.Price, s.Currency.OrDefault(), s.BillingCycle, s.Priority, s.CreatedBy)
	if err != nil {
		return core.Subscription{}, fmt.Errorf("insert subscription: %w", err)
	}
	s.ID, _ = res.LastInsertId()
	return r.GetSubscription(ctx, s.ID)
}

func (r *SQLiteRepository) GetSubscription(ctx context.Context, id int64) (core.Subscription, error) {
	var s core.Subscription
	err := r.db.QueryRowContext(ctx, `
SELECT id, household_id, name, description, price, currency, billing_cycle, priority, created_by, created_at, updated_at
FROM subscriptions WHERE id = ?`, id).
		Scan(&s.ID, &s.HouseholdID, &s.Name, &s.Description, &s.Price, &s.Currency, &s.BillingCycle, &s.Priority, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Subscription{}, ErrNotFound
	}
	if err != nil {
		return core.Subscription{}, fmt.Errorf("get subscription: %w", err)
	}
	return s, nil
}

func (r *SQLiteRepository) ListSubscriptions(ctx context.Context, householdID int64) ([]core.Subscription, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, household_id, name, description, price, currency, billing_cycle, priority, created_by, created_at, updated_at
FROM subscriptions WHERE household_id = ?
ORDER BY CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END, name ASC`, householdID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	var out []core.Subscription
	for rows.Next() {
		var s core.Subscription
		if err := rows.Scan(&s.ID, &s.HouseholdID, &s.Name, &s.Description, &s.Price, &s.Currency, &s.BillingCycle, &s.Priority, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) UpdateSubscription(ctx context.Context, s core.Subscription) (core.Subscription, error) {
	res, err := r.db.ExecContext(ctx, `
UPDATE subscriptions
SET name = ?, description = ?, price = ?, currency = ?, billing_cycle = ?, priority = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?`,
		s.Name, s.Description, s.Price, s.Currency.OrDefault(), s.BillingCycle, s.Priority, s.ID)
	if err != nil {
		return core.Subscription{}, fmt.Errorf("update subscription: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.Subscription{}, ErrNotFound
	}
	return r.GetSubscription(ctx, s.ID)
}

func (r *SQLiteRepository) DeleteSubscription(ctx context.Context, id int64) error {
	return r.deleteRow(ctx, "subscriptions", id)
}

// deleteRow removes a single record by id from one of the per-category
// tables. The table name is always a compile-time constant.
func (r *SQLiteRepository) deleteRow(ctx context.Context, table string, id int64) error {
	res, err := r.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
