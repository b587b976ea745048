package store

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/prasetyo/kasrt/internal/event"
	eventstore "github.com/prasetyo/kasrt/internal/event/store"
	"github.com/prasetyo/kasrt/internal/fundreq"
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

type scanner interface {
	Scan(dest ...any) error
}

const selectRequestColumns = `f.id, f.requester_group_id, f.target_group_id, f.event_id,
	f.amount, f.description, f.status, f.created_by, f.approved_by, f.approved_amount,
	f.notes, f.created_at, f.updated_at`

func scanRequest(s scanner) (*fundreq.FundRequest, error) {
	var fr fundreq.FundRequest

	var statusStr string

	if err := s.Scan(
		&fr.ID, &fr.RequesterGroupID, &fr.TargetGroupID, &fr.EventID,
		&fr.Amount, &fr.Description, &statusStr, &fr.CreatedBy, &fr.ApprovedBy, &fr.ApprovedAmount,
		&fr.Notes, &fr.CreatedAt, &fr.UpdatedAt,
	); err != nil {
		return nil, err
	}

	fr.Status = fundreq.Status(statusStr)

	return &fr, nil
}

func (s *Store) Request(ctx context.Context, id uuid.UUID) (*fundreq.FundRequest, error) {
	query := `SELECT ` + selectRequestColumns + ` FROM fund_requests f WHERE f.id = $1`

	fr, err := scanRequest(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fundreq.ErrNotFound
		}

		return nil, fmt.Errorf("getting fund request: %w", err)
	}

	return fr, nil
}

func (s *Store) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*fundreq.FundRequest, error) {
	query := `SELECT ` + selectRequestColumns + ` FROM fund_requests f
		WHERE f.requester_group_id = $1 OR f.target_group_id = $1
		ORDER BY f.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("listing fund requests: %w", err)
	}
	defer rows.Close()

	var requests []*fundreq.FundRequest

	for rows.Next() {
		fr, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning fund request: %w", err)
		}

		requests = append(requests, fr)
	}

	return requests, rows.Err()
}

func (s *Store) Group(ctx context.Context, id uuid.UUID) (*group.Group, error) {
	return s.groups.Group(ctx, id)
}

type storeTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (fundreq.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning tx: %w", err)
	}

	return &storeTx{tx: tx}, nil
}

func (t *storeTx) Commit() error   { return t.tx.Commit() }
func (t *storeTx) Rollback() error { return t.tx.Rollback() }

func (t *storeTx) InsertRequest(ctx context.Context, fr *fundreq.FundRequest) error {
	query := `INSERT INTO fund_requests (id, requester_group_id, target_group_id, event_id, amount, description, status, created_by, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	if err := t.tx.QueryRowContext(ctx, query,
		fr.ID, fr.RequesterGroupID, fr.TargetGroupID, fr.EventID,
		fr.Amount, fr.Description, fr.Status, fr.CreatedBy, fr.Notes,
	).Scan(&fr.CreatedAt, &fr.UpdatedAt); err != nil {
		return fmt.Errorf("inserting fund request: %w", err)
	}

	return nil
}

func (t *storeTx) RequestForUpdate(ctx context.Context, id uuid.UUID) (*fundreq.FundRequest, error) {
	query := `SELECT ` + selectRequestColumns + ` FROM fund_requests f WHERE f.id = $1 FOR UPDATE`

	fr, err := scanRequest(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fundreq.ErrNotFound
		}

		return nil, fmt.Errorf("locking fund request: %w", err)
	}

	return fr, nil
}

func (t *storeTx) PendingByEvent(ctx context.Context, eventID uuid.UUID) (*fundreq.FundRequest, error) {
	query := `SELECT ` + selectRequestColumns + ` FROM fund_requests f
		WHERE f.event_id = $1 AND f.status = $2
		LIMIT 1
		FOR UPDATE`

	fr, err := scanRequest(t.tx.QueryRowContext(ctx, query, eventID, fundreq.StatusPending))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fundreq.ErrNotFound
		}

		return nil, fmt.Errorf("getting pending fund request: %w", err)
	}

	return fr, nil
}

func (t *storeTx) Resolve(ctx context.Context, id uuid.UUID, status fundreq.Status, resolvedBy uuid.UUID, approvedAmount *int64, notes string) error {
	query := `UPDATE fund_requests
		SET status = $1, approved_by = $2, approved_amount = $3, notes = $4, updated_at = NOW()
		WHERE id = $5`

	if _, err := t.tx.ExecContext(ctx, query, status, resolvedBy, approvedAmount, notes, id); err != nil {
		return fmt.Errorf("resolving fund request: %w", err)
	}

	return nil
}

func (t *storeTx) EventForUpdate(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	return eventstore.EventForUpdate(ctx, t.tx, id)
}

func (t *storeTx) SetEventStatus(ctx context.Context, id uuid.UUID, status event.Status) error {
	return eventstore.SetStatus(ctx, t.tx, id, status)
}

func (t *storeTx) UpdateEventBudget(ctx context.Context, id uuid.UUID, budget int64) error {
	if _, err := t.tx.ExecContext(ctx,
		`UPDATE events SET budget_estimated = $1, updated_at = NOW() WHERE id = $2`,
		budget, id,
	); err != nil {
		return fmt.Errorf("updating event budget: %w", err)
	}

	return nil
}

func (t *storeTx) InsertEventHistory(ctx context.Context, h *event.StatusHistory) error {
	return eventstore.InsertHistory(ctx, t.tx, h)
}

// Transfer locks the two wallets in group-ID order, matching
// ledger.TransferLegs, so concurrent opposite-direction transfers cannot
// deadlock.
func (t *storeTx) Transfer(ctx context.Context, params ledger.TransferParams) error {
	var source, target *ledger.Wallet

	var err error

	if bytes.Compare(params.SourceGroupID[:], params.TargetGroupID[:]) <= 0 {
		source, err = ledgerstore.WalletForUpdate(ctx, t.tx, params.SourceGroupID)
		if err != nil {
			return fmt.Errorf("locking source wallet: %w", err)
		}

		target, err = ledgerstore.WalletForUpdate(ctx, t.tx, params.TargetGroupID)
		if err != nil {
			return fmt.Errorf("locking target wallet: %w", err)
		}
	} else {
		target, err = ledgerstore.WalletForUpdate(ctx, t.tx, params.TargetGroupID)
		if err != nil {
			return fmt.Errorf("locking target wallet: %w", err)
		}

		source, err = ledgerstore.WalletForUpdate(ctx, t.tx, params.SourceGroupID)
		if err != nil {
			return fmt.Errorf("locking source wallet: %w", err)
		}
	}

	if source.Balance < params.Amount {
		return ledger.ErrInsufficientFunds
	}

	debit := &ledger.Entry{
		ID:          uuid.New(),
		Amount:      params.Amount,
		Type:        ledger.TypeDebit,
		Description: params.Description,
		EventID:     params.EventID,
		CreatedBy:   params.CreatedBy,
	}
	if err := ledgerstore.ApplyEntry(ctx, t.tx, source.ID, debit); err != nil {
		return fmt.Errorf("applying debit leg: %w", err)
	}

	credit := &ledger.Entry{
		ID:          uuid.New(),
		Amount:      params.Amount,
		Type:        ledger.TypeCredit,
		Description: params.Description,
		EventID:     params.EventID,
		CreatedBy:   params.CreatedBy,
	}
	if err := ledgerstore.ApplyEntry(ctx, t.tx, target.ID, credit); err != nil {
		return fmt.Errorf("applying credit leg: %w", err)
	}

	return nil
}

func (t *storeTx) CreditWallet(ctx context.Context, groupID uuid.UUID, e *ledger.Entry) error {
	w, err := ledgerstore.WalletForUpdate(ctx, t.tx, groupID)
	if err != nil {
		return err
	}

	return ledgerstore.ApplyEntry(ctx, t.tx, w.ID, e)
}

func (t *storeTx) ApprovedExtraTotal(ctx context.Context, eventID uuid.UUID) (int64, error) {
	return eventstore.ApprovedExtraTotal(ctx, t.tx, eventID)
}
