package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/prasetyo/kasrt/internal/database"
	"github.com/prasetyo/kasrt/internal/group"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectGroupColumns = `g.id, g.type, g.name, g.parent_id, g.created_at`

func scanGroup(s scanner) (*group.Group, error) {
	var g group.Group

	var typeStr string

	if err := s.Scan(&g.ID, &typeStr, &g.Name, &g.ParentID, &g.CreatedAt); err != nil {
		return nil, err
	}

	g.Type = group.Type(typeStr)

	return &g, nil
}

const selectUserColumns = `u.id, u.group_id, u.name, u.email, u.password_hash, u.role, u.last_paid_period, u.created_at`

func scanUser(s scanner) (*group.User, error) {
	var u group.User

	var roleStr string

	if err := s.Scan(&u.ID, &u.GroupID, &u.Name, &u.Email, &u.PasswordHash, &roleStr, &u.LastPaidPeriod, &u.CreatedAt); err != nil {
		return nil, err
	}

	u.Role = group.Role(roleStr)

	return &u, nil
}

func (s *Store) Group(ctx context.Context, id uuid.UUID) (*group.Group, error) {
	return getGroup(ctx, s.db, id)
}

func getGroup(ctx context.Context, q database.DBTX, id uuid.UUID) (*group.Group, error) {
	query := `SELECT ` + selectGroupColumns + ` FROM groups g WHERE g.id = $1`

	g, err := scanGroup(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, group.ErrNotFound
		}

		return nil, fmt.Errorf("getting group: %w", err)
	}

	return g, nil
}

func (s *Store) Children(ctx context.Context, id uuid.UUID) ([]*group.Group, error) {
	query := `SELECT ` + selectGroupColumns + ` FROM groups g WHERE g.parent_id = $1 ORDER BY g.name`

	return listGroups(ctx, s.db, query, id)
}

func (s *Store) ListGroups(ctx context.Context) ([]*group.Group, error) {
	query := `SELECT ` + selectGroupColumns + ` FROM groups g ORDER BY g.type DESC, g.name`

	return listGroups(ctx, s.db, query)
}

func listGroups(ctx context.Context, q database.DBTX, query string, args ...any) ([]*group.Group, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}
	defer rows.Close()

	var groups []*group.Group

	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning group: %w", err)
		}

		groups = append(groups, g)
	}

	return groups, rows.Err()
}

func (s *Store) User(ctx context.Context, id uuid.UUID) (*group.User, error) {
	return getUser(ctx, s.db, `SELECT `+selectUserColumns+` FROM users u WHERE u.id = $1`, id)
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*group.User, error) {
	return getUser(ctx, s.db, `SELECT `+selectUserColumns+` FROM users u WHERE u.email = $1`, email)
}

func (s *Store) ActiveTreasurer(ctx context.Context, groupID uuid.UUID) (*group.User, error) {
	return activeTreasurer(ctx, s.db, groupID)
}

func activeTreasurer(ctx context.Context, q database.DBTX, groupID uuid.UUID) (*group.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users u
		WHERE u.group_id = $1 AND u.role = $2
		ORDER BY u.created_at
		LIMIT 1`

	return getUser(ctx, q, query, groupID, group.RoleTreasurer)
}

func getUser(ctx context.Context, q database.DBTX, query string, args ...any) (*group.User, error) {
	u, err := scanUser(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, group.ErrNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	return u, nil
}

func (s *Store) ActiveDuesRule(ctx context.Context, groupID uuid.UUID) (*group.DuesRule, error) {
	return ActiveDuesRule(ctx, s.db, groupID)
}

// ActiveDuesRule loads the group's dues rule if one exists and is active. It
// is shared with the dues store, which reads rules inside its own queries.
func ActiveDuesRule(ctx context.Context, q database.DBTX, groupID uuid.UUID) (*group.DuesRule, error) {
	query := `SELECT d.id, d.group_id, d.amount, d.due_day, d.is_active, d.updated_at
		FROM dues_rules d
		WHERE d.group_id = $1 AND d.is_active`

	var rule group.DuesRule
	if err := q.QueryRowContext(ctx, query, groupID).Scan(
		&rule.ID, &rule.GroupID, &rule.Amount, &rule.DueDay, &rule.IsActive, &rule.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, group.ErrNotFound
		}

		return nil, fmt.Errorf("getting dues rule: %w", err)
	}

	return &rule, nil
}

type storeTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (group.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning tx: %w", err)
	}

	return &storeTx{tx: tx}, nil
}

func (t *storeTx) Commit() error   { return t.tx.Commit() }
func (t *storeTx) Rollback() error { return t.tx.Rollback() }

func (t *storeTx) InsertGroup(ctx context.Context, g *group.Group) error {
	query := `INSERT INTO groups (id, type, name, parent_id) VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	if err := t.tx.QueryRowContext(ctx, query, g.ID, g.Type, g.Name, g.ParentID).Scan(&g.CreatedAt); err != nil {
		return fmt.Errorf("inserting group: %w", err)
	}

	return nil
}

func (t *storeTx) InsertWallet(ctx context.Context, groupID uuid.UUID) error {
	query := `INSERT INTO wallets (group_id) VALUES ($1)`

	if _, err := t.tx.ExecContext(ctx, query, groupID); err != nil {
		return fmt.Errorf("inserting wallet: %w", err)
	}

	return nil
}

func (t *storeTx) InsertUser(ctx context.Context, u *group.User) error {
	query := `INSERT INTO users (id, group_id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	if err := t.tx.QueryRowContext(ctx, query,
		u.ID, u.GroupID, u.Name, u.Email, u.PasswordHash, u.Role,
	).Scan(&u.CreatedAt); err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}

	return nil
}

func (t *storeTx) ActiveTreasurer(ctx context.Context, groupID uuid.UUID) (*group.User, error) {
	return activeTreasurer(ctx, t.tx, groupID)
}

func (t *storeTx) UpdateUserRole(ctx context.Context, userID uuid.UUID, role group.Role) error {
	query := `UPDATE users SET role = $1 WHERE id = $2`

	if _, err := t.tx.ExecContext(ctx, query, role, userID); err != nil {
		return fmt.Errorf("updating role: %w", err)
	}

	return nil
}

func (t *storeTx) UpsertDuesRule(ctx context.Context, rule *group.DuesRule) error {
	query := `INSERT INTO dues_rules (id, group_id, amount, due_day, is_active, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (group_id) DO UPDATE
		SET amount = EXCLUDED.amount, due_day = EXCLUDED.due_day,
		    is_active = EXCLUDED.is_active, updated_at = NOW()
		RETURNING id, updated_at`

	if err := t.tx.QueryRowContext(ctx, query,
		rule.ID, rule.GroupID, rule.Amount, rule.DueDay, rule.IsActive,
	).Scan(&rule.ID, &rule.UpdatedAt); err != nil {
		return fmt.Errorf("upserting dues rule: %w", err)
	}

	return nil
}
