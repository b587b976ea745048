package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/prasetyo/kasrt/internal/dues"
	"github.com/prasetyo/kasrt/internal/group"
	groupstore "github.com/prasetyo/kasrt/internal/group/store"
	"github.com/prasetyo/kasrt/internal/ledger"
	ledgerstore "github.com/prasetyo/kasrt/internal/ledger/store"
)

type Store struct {
	db     *sql.DB
	groups *groupstore.Store
}

func New(db *sql.DB) *Store {
	return &Store{db: db, groups: groupstore.New(db)}
}

func (s *Store) User(ctx context.Context, id uuid.UUID) (*group.User, error) {
	return s.groups.User(ctx, id)
}

func (s *Store) Group(ctx context.Context, id uuid.UUID) (*group.Group, error) {
	return s.groups.Group(ctx, id)
}

func (s *Store) ActiveRule(ctx context.Context, groupID uuid.UUID) (*group.DuesRule, error) {
	return groupstore.ActiveDuesRule(ctx, s.db, groupID)
}

type storeTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (dues.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning tx: %w", err)
	}

	return &storeTx{tx: tx}, nil
}

func (t *storeTx) Commit() error   { return t.tx.Commit() }
func (t *storeTx) Rollback() error { return t.tx.Rollback() }

func (t *storeTx) CreditWallet(ctx context.Context, groupID uuid.UUID, e *ledger.Entry) error {
	w, err := ledgerstore.WalletForUpdate(ctx, t.tx, groupID)
	if err != nil {
		return err
	}

	return ledgerstore.ApplyEntry(ctx, t.tx, w.ID, e)
}

func (t *storeTx) SetLastPaidPeriod(ctx context.Context, userID uuid.UUID, until time.Time) error {
	if _, err := t.tx.ExecContext(ctx,
		`UPDATE users SET last_paid_period = $1 WHERE id = $2`,
		until, userID,
	); err != nil {
		return fmt.Errorf("updating last paid period: %w", err)
	}

	return nil
}
