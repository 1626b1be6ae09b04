package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hearth/internal/core"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// SQLiteRepository persists every household record category plus the
// currency-rate table and summary snapshots.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Ping verifies the database connection is alive.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// CreateHousehold inserts a household and enrolls the creator as its owner.
func (r *SQLiteRepository) CreateHousehold(ctx context.Context, name string, createdBy int64) (core.Household, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return core.Household{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO households (name, created_by) VALUES (?, ?)`, name, createdBy)
	if err != nil {
		return core.Household{}, fmt.Errorf("insert household: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Household{}, fmt.Errorf("household id: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO household_members (household_id, user_id, role) VALUES (?, ?, ?)`,
		id, createdBy, core.RoleOwner); err != nil {
		return core.Household{}, fmt.Errorf("insert owner membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return core.Household{}, fmt.Errorf("commit: %w", err)
	}

	return r.GetHousehold(ctx, id)
}

func (r *SQLiteRepository) GetHousehold(ctx context.Context, id int64) (core.Household, error) {
	var h core.Household
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_by, created_at FROM households WHERE id = ?`, id).
		Scan(&h.ID, &h.Name, &h.CreatedBy, &h.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Household{}, ErrNotFound
	}
	if err != nil {
		return core.Household{}, fmt.Errorf("get household: %w", err)
	}
	return h, nil
}

func (r *SQLiteRepository) ListHouseholdsByUser(ctx context.Context, userID int64) ([]core.Household, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT h.id, h.name, h.created_by, h.created_at
FROM households h
JOIN household_members hm ON h.id = hm.household_id
WHERE hm.user_id = ?
ORDER BY h.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list households: %w", err)
	}
	defer rows.Close()

	var out []core.Household
	for rows.Next() {
		var h core.Household
		if err := rows.Scan(&h.ID, &h.Name, &h.CreatedBy, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan household: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// ListHouseholdIDs returns every household id, oldest first. Used by the
// periodic snapshot sweep.
func (r *SQLiteRepository) ListHouseholdIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM households ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list household ids: %w", err)
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan household id: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) ListMembers(ctx context.Context, householdID int64) ([]core.Member, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT household_id, user_id, role, joined_at
FROM household_members
WHERE household_id = ?
ORDER BY role, user_id`, householdID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var out []core.Member
	for rows.Next() {
		var m core.Member
		if err := rows.Scan(&m.HouseholdID, &m.UserID, &m.Role, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// AddMember enrolls a user; adding an existing member is a no-op.
func (r *SQLiteRepository) AddMember(ctx context.Context, householdID, userID int64, role core.Role) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO household_members (household_id, user_id, role) VALUES (?, ?, ?)
ON CONFLICT (household_id, user_id) DO NOTHING`, householdID, userID, role)
	if err != nil {
		return fmt.Errorf("add member: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) RemoveMember(ctx context.Context, householdID, userID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM household_members WHERE household_id = ? AND user_id = ?`, householdID, userID)
	if err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) CreateInvitation(ctx context.Context, inv core.Invitation) (core.Invitation, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO invitations (email, household_id, invited_by, token, status, expires_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		inv.Email, inv.HouseholdID, inv.InvitedBy, inv.Token, core.InvitationPending, inv.ExpiresAt)
	if err != nil {
		return core.Invitation{}, fmt.Errorf("insert invitation: %w", err)
	}
	inv.ID, _ = res.LastInsertId()
	inv.Status = core.InvitationPending
	return inv, nil
}

// GetInvitationByToken returns a pending, unexpired invitation.
func (r *SQLiteRepository) GetInvitationByToken(ctx context.Context, token string, now time.Time) (core.Invitation, error) {
	var inv core.Invitation
	err := r.db.QueryRowContext(ctx, `
SELECT id, email, household_id, invited_by, token, status, expires_at, created_at
FROM invitations
WHERE token = ? AND status = ? AND expires_at > ?
LIMIT 1`, token, core.InvitationPending, now).
		Scan(&inv.ID, &inv.Email, &inv.HouseholdID, &inv.InvitedBy, &inv.Token, &inv.Status, &inv.ExpiresAt, &inv.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Invitation{}, ErrNotFound
	}
	if err != nil {
		return core.Invitation{}, fmt.Errorf("get invitation: %w", err)
	}
	return inv, nil
}

func (r *SQLiteRepository) ListInvitationsByEmail(ctx context.Context, email string, now time.Time) ([]core.Invitation, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, email, household_id, invited_by, token, status, expires_at, created_at
FROM invitations
WHERE email = ? AND status = ? AND expires_at > ?
ORDER BY created_at DESC`, email, core.InvitationPending, now)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	defer rows.Close()

	var out []core.Invitation
	for rows.Next() {
		var inv core.Invitation
		if err := rows.Scan(&inv.ID, &inv.Email, &inv.HouseholdID, &inv.InvitedBy, &inv.Token, &inv.Status, &inv.ExpiresAt, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invitation: %w", err)
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) UpdateInvitationStatus(ctx context.Context, id int64, status core.InvitationStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invitations SET status = ? WHERE id = ? AND status = ?`,
		status, id, core.InvitationPending)
	if err != nil {
		return fmt.Errorf("update invitation: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
