package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/prasetyo/kasrt/internal/database"
	"github.com/prasetyo/kasrt/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanWallet(s scanner) (*ledger.Wallet, error) {
	var w ledger.Wallet
	if err := s.Scan(&w.ID, &w.GroupID, &w.Balance, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}

	return &w, nil
}

const selectWalletColumns = `w.id, w.group_id, w.balance, w.created_at, w.updated_at`

func (s *Store) WalletByGroup(ctx context.Context, groupID uuid.UUID) (*ledger.Wallet, error) {
	query := `SELECT ` + selectWalletColumns + ` FROM wallets w WHERE w.group_id = $1`

	w, err := scanWallet(s.db.QueryRowContext(ctx, query, groupID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting wallet: %w", err)
	}

	return w, nil
}

// WalletForUpdate locks the wallet row of a group for the rest of the
// surrounding SQL transaction. Every money-moving path goes through this
// before checking or changing the balance.
func WalletForUpdate(ctx context.Context, q database.DBTX, groupID uuid.UUID) (*ledger.Wallet, error) {
	query := `SELECT ` + selectWalletColumns + ` FROM wallets w WHERE w.group_id = $1 FOR UPDATE`

	w, err := scanWallet(q.QueryRowContext(ctx, query, groupID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("locking wallet: %w", err)
	}

	return w, nil
}

// ApplyEntry mutates the wallet balance and appends the matching log entry on
// the same DBTX. This is the only write path for balances, so the two can
// never diverge.
func ApplyEntry(ctx context.Context, q database.DBTX, walletID uuid.UUID, e *ledger.Entry) error {
	delta := e.Amount
	if e.Type == ledger.TypeDebit {
		delta = -delta
	}

	res, err := q.ExecContext(ctx,
		`UPDATE wallets SET balance = balance + $1, updated_at = NOW() WHERE id = $2`,
		delta, walletID,
	)
	if err != nil {
		return fmt.Errorf("updating balance: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ledger.ErrNotFound
	}

	query := `INSERT INTO ledger_entries (id, wallet_id, amount, type, description, event_id, contribution_ref, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	if err := q.QueryRowContext(ctx, query,
		e.ID, walletID, e.Amount, e.Type, e.Description, e.EventID, e.ContributionRef, e.CreatedBy,
	).Scan(&e.CreatedAt); err != nil {
		return fmt.Errorf("inserting ledger entry: %w", err)
	}

	e.WalletID = walletID

	return nil
}

func (s *Store) ListEntries(ctx context.Context, walletID uuid.UUID, filter ledger.ListFilter) ([]*ledger.Entry, error) {
	query := `SELECT e.id, e.wallet_id, e.amount, e.type, e.description, e.event_id, e.contribution_ref, e.created_by, e.created_at
		FROM ledger_entries e
		WHERE e.wallet_id = $1`

	args := []any{walletID}
	argIdx := 2

	if filter.Type != nil {
		query += fmt.Sprintf(" AND e.type = $%d", argIdx)

		args = append(args, *filter.Type)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND e.created_at >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND e.created_at <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY e.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	var entries []*ledger.Entry

	for rows.Next() {
		var e ledger.Entry

		var typeStr string

		if err := rows.Scan(
			&e.ID, &e.WalletID, &e.Amount, &typeStr, &e.Description,
			&e.EventID, &e.ContributionRef, &e.CreatedBy, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}

		e.Type = ledger.EntryType(typeStr)
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}

type storeTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (ledger.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning tx: %w", err)
	}

	return &storeTx{tx: tx}, nil
}

func (t *storeTx) Commit() error   { return t.tx.Commit() }
func (t *storeTx) Rollback() error { return t.tx.Rollback() }

func (t *storeTx) WalletForUpdate(ctx context.Context, groupID uuid.UUID) (*ledger.Wallet, error) {
	return WalletForUpdate(ctx, t.tx, groupID)
}

func (t *storeTx) Apply(ctx context.Context, walletID uuid.UUID, e *ledger.Entry) error {
	return ApplyEntry(ctx, t.tx, walletID, e)
}
