package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/prasetyo/kasrt/internal/database"
	"github.com/prasetyo/kasrt/internal/event"
	"github.com/prasetyo/kasrt/internal/fundreq"
	"github.com/prasetyo/kasrt/internal/ledger"
	ledgerstore "github.com/prasetyo/kasrt/internal/ledger/store"
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

const selectEventColumns = `e.id, e.group_id, e.created_by, e.title, e.description,
	e.budget_estimated, e.budget_actual, e.start_date, e.end_date, e.status,
	e.result_description, e.created_at, e.updated_at`

func scanEvent(s scanner) (*event.Event, error) {
	var e event.Event

	var statusStr string

	if err := s.Scan(
		&e.ID, &e.GroupID, &e.CreatedBy, &e.Title, &e.Description,
		&e.BudgetEstimated, &e.BudgetActual, &e.StartDate, &e.EndDate, &statusStr,
		&e.ResultDescription, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	e.Status = event.Status(statusStr)

	return &e, nil
}

func (s *Store) Event(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	query := `SELECT ` + selectEventColumns + ` FROM events e WHERE e.id = $1`

	return getEvent(ctx, s.db, query, id)
}

// EventForUpdate locks the event row for the surrounding transaction so
// status guards and mutations see one consistent state. It is shared with the
// fund request store, which transitions events too.
func EventForUpdate(ctx context.Context, q database.DBTX, id uuid.UUID) (*event.Event, error) {
	query := `SELECT ` + selectEventColumns + ` FROM events e WHERE e.id = $1 FOR UPDATE`

	return getEvent(ctx, q, query, id)
}

func getEvent(ctx context.Context, q database.DBTX, query string, id uuid.UUID) (*event.Event, error) {
	e, err := scanEvent(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, event.ErrNotFound
		}

		return nil, fmt.Errorf("getting event: %w", err)
	}

	return e, nil
}

func (s *Store) List(ctx context.Context, filter event.ListFilter) ([]*event.Event, error) {
	query := `SELECT ` + selectEventColumns + ` FROM events e WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.GroupID != nil {
		query += fmt.Sprintf(" AND e.group_id = $%d", argIdx)

		args = append(args, *filter.GroupID)
		argIdx++
	}

	if len(filter.Statuses) > 0 {
		query += fmt.Sprintf(" AND e.status = ANY($%d)", argIdx)

		statuses := make([]string, len(filter.Statuses))
		for i, st := range filter.Statuses {
			statuses[i] = string(st)
		}

		args = append(args, statuses)
		argIdx++
	}

	query += " ORDER BY e.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var events []*event.Event

	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}

		events = append(events, e)
	}

	return events, rows.Err()
}

func (s *Store) Expenses(ctx context.Context, eventID uuid.UUID) ([]*event.Expense, error) {
	query := `SELECT x.id, x.event_id, x.title, x.amount, x.proof_image, x.is_valid, x.verified_by, x.created_at
		FROM event_expenses x WHERE x.event_id = $1 ORDER BY x.created_at`

	rows, err := s.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*event.Expense

	for rows.Next() {
		var x event.Expense
		if err := rows.Scan(&x.ID, &x.EventID, &x.Title, &x.Amount, &x.ProofImage, &x.IsValid, &x.VerifiedBy, &x.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		expenses = append(expenses, &x)
	}

	return expenses, rows.Err()
}

func (s *Store) Approvals(ctx context.Context, eventID uuid.UUID) ([]*event.Approval, error) {
	query := `SELECT a.id, a.event_id, a.approver_id, a.role_snapshot, a.step_order, a.status, a.notes, a.approved_at, a.created_at
		FROM event_approvals a WHERE a.event_id = $1 ORDER BY a.step_order`

	rows, err := s.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("listing approvals: %w", err)
	}
	defer rows.Close()

	var approvals []*event.Approval

	for rows.Next() {
		a, err := scanApproval(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning approval: %w", err)
		}

		approvals = append(approvals, a)
	}

	return approvals, rows.Err()
}

func scanApproval(s scanner) (*event.Approval, error) {
	var a event.Approval

	var statusStr string

	if err := s.Scan(&a.ID, &a.EventID, &a.ApproverID, &a.RoleSnapshot, &a.StepOrder, &statusStr, &a.Notes, &a.ApprovedAt, &a.CreatedAt); err != nil {
		return nil, err
	}

	a.Status = event.ApprovalStatus(statusStr)

	return &a, nil
}

func (s *Store) History(ctx context.Context, eventID uuid.UUID) ([]*event.StatusHistory, error) {
	query := `SELECT h.id, h.event_id, h.changed_by, h.previous_status, h.new_status, h.reason, h.created_at
		FROM event_status_history h WHERE h.event_id = $1 ORDER BY h.created_at`

	rows, err := s.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	var history []*event.StatusHistory

	for rows.Next() {
		var h event.StatusHistory

		var prev, next string

		if err := rows.Scan(&h.ID, &h.EventID, &h.ChangedBy, &prev, &next, &h.Reason, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning history: %w", err)
		}

		h.PreviousStatus = event.Status(prev)
		h.NewStatus = event.Status(next)
		history = append(history, &h)
	}

	return history, rows.Err()
}

func (s *Store) Attachments(ctx context.Context, eventID uuid.UUID) ([]*event.Attachment, error) {
	query := `SELECT a.id, a.event_id, a.kind, a.url, a.created_at
		FROM event_attachments a WHERE a.event_id = $1 ORDER BY a.created_at`

	rows, err := s.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("listing attachments: %w", err)
	}
	defer rows.Close()

	var attachments []*event.Attachment

	for rows.Next() {
		var a event.Attachment

		var kind string

		if err := rows.Scan(&a.ID, &a.EventID, &kind, &a.URL, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning attachment: %w", err)
		}

		a.Kind = event.AttachmentKind(kind)
		attachments = append(attachments, &a)
	}

	return attachments, rows.Err()
}

func (s *Store) ParentGroupID(ctx context.Context, groupID uuid.UUID) (*uuid.UUID, error) {
	var parentID *uuid.UUID
	if err := s.db.QueryRowContext(ctx,
		`SELECT parent_id FROM groups WHERE id = $1`, groupID,
	).Scan(&parentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, event.ErrNotFound
		}

		return nil, fmt.Errorf("getting parent group: %w", err)
	}

	return parentID, nil
}

func (s *Store) DueForSweep(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	query := `SELECT e.id FROM events e
		WHERE e.end_date IS NOT NULL AND e.end_date <= $1
		  AND e.status IN ('DRAFT', 'SUBMITTED', 'UNDER_REVIEW', 'APPROVED', 'FUNDED', 'ONGOING')
		ORDER BY e.end_date`

	rows, err := s.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("listing due events: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning event id: %w", err)
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

type storeTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (event.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning tx: %w", err)
	}

	return &storeTx{tx: tx}, nil
}

func (t *storeTx) Commit() error   { return t.tx.Commit() }
func (t *storeTx) Rollback() error { return t.tx.Rollback() }

func (t *storeTx) EventForUpdate(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	return EventForUpdate(ctx, t.tx, id)
}

func (t *storeTx) InsertEvent(ctx context.Context, e *event.Event) error {
	query := `INSERT INTO events (id, group_id, created_by, title, description, budget_estimated, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	if err := t.tx.QueryRowContext(ctx, query,
		e.ID, e.GroupID, e.CreatedBy, e.Title, e.Description, e.BudgetEstimated, e.StartDate, e.EndDate, e.Status,
	).Scan(&e.CreatedAt, &e.UpdatedAt); err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}

	return nil
}

func (t *storeTx) UpdateEvent(ctx context.Context, e *event.Event) error {
	query := `UPDATE events
		SET title = $1, description = $2, budget_estimated = $3, budget_actual = $4,
		    start_date = $5, end_date = $6, result_description = $7, updated_at = NOW()
		WHERE id = $8`

	if _, err := t.tx.ExecContext(ctx, query,
		e.Title, e.Description, e.BudgetEstimated, e.BudgetActual,
		e.StartDate, e.EndDate, e.ResultDescription, e.ID,
	); err != nil {
		return fmt.Errorf("updating event: %w", err)
	}

	return nil
}

func (t *storeTx) SetStatus(ctx context.Context, id uuid.UUID, status event.Status) error {
	return SetStatus(ctx, t.tx, id, status)
}

// SetStatus writes the status column; shared with the fund request store.
func SetStatus(ctx context.Context, q database.DBTX, id uuid.UUID, status event.Status) error {
	if _, err := q.ExecContext(ctx,
		`UPDATE events SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	); err != nil {
		return fmt.Errorf("setting status: %w", err)
	}

	return nil
}

func (t *storeTx) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}

	return nil
}

func (t *storeTx) InsertHistory(ctx context.Context, h *event.StatusHistory) error {
	return InsertHistory(ctx, t.tx, h)
}

// InsertHistory appends one audit row; shared with the fund request store.
func InsertHistory(ctx context.Context, q database.DBTX, h *event.StatusHistory) error {
	query := `INSERT INTO event_status_history (id, event_id, changed_by, previous_status, new_status, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	if err := q.QueryRowContext(ctx, query,
		h.ID, h.EventID, h.ChangedBy, h.PreviousStatus, h.NewStatus, h.Reason,
	).Scan(&h.CreatedAt); err != nil {
		return fmt.Errorf("inserting history: %w", err)
	}

	return nil
}

func (t *storeTx) DeleteApprovals(ctx context.Context, eventID uuid.UUID) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM event_approvals WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("deleting approvals: %w", err)
	}

	return nil
}

func (t *storeTx) InsertApproval(ctx context.Context, a *event.Approval) error {
	query := `INSERT INTO event_approvals (id, event_id, approver_id, role_snapshot, step_order, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	if err := t.tx.QueryRowContext(ctx, query,
		a.ID, a.EventID, a.ApproverID, a.RoleSnapshot, a.StepOrder, a.Status, a.Notes,
	).Scan(&a.CreatedAt); err != nil {
		return fmt.Errorf("inserting approval: %w", err)
	}

	return nil
}

func (t *storeTx) PendingApproval(ctx context.Context, eventID uuid.UUID) (*event.Approval, error) {
	query := `SELECT a.id, a.event_id, a.approver_id, a.role_snapshot, a.step_order, a.status, a.notes, a.approved_at, a.created_at
		FROM event_approvals a
		WHERE a.event_id = $1 AND a.status = $2
		ORDER BY a.step_order
		LIMIT 1
		FOR UPDATE`

	a, err := scanApproval(t.tx.QueryRowContext(ctx, query, eventID, event.ApprovalPending))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, event.ErrNotFound
		}

		return nil, fmt.Errorf("getting pending approval: %w", err)
	}

	return a, nil
}

func (t *storeTx) ResolveApproval(ctx context.Context, id uuid.UUID, status event.ApprovalStatus, notes string) error {
	query := `UPDATE event_approvals SET status = $1, notes = $2, approved_at = NOW() WHERE id = $3`

	if _, err := t.tx.ExecContext(ctx, query, status, notes, id); err != nil {
		return fmt.Errorf("resolving approval: %w", err)
	}

	return nil
}

func (t *storeTx) InsertExpense(ctx context.Context, x *event.Expense) error {
	query := `INSERT INTO event_expenses (id, event_id, title, amount, proof_image, is_valid, verified_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	if err := t.tx.QueryRowContext(ctx, query,
		x.ID, x.EventID, x.Title, x.Amount, x.ProofImage, x.IsValid, x.VerifiedBy,
	).Scan(&x.CreatedAt); err != nil {
		return fmt.Errorf("inserting expense: %w", err)
	}

	return nil
}

func (t *storeTx) ExpenseTotal(ctx context.Context, eventID uuid.UUID) (int64, error) {
	var total int64
	if err := t.tx.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM event_expenses WHERE event_id = $1 AND is_valid`,
		eventID,
	).Scan(&total); err != nil {
		return 0, fmt.Errorf("totaling expenses: %w", err)
	}

	return total, nil
}

func (t *storeTx) InsertAttachment(ctx context.Context, a *event.Attachment) error {
	query := `INSERT INTO event_attachments (id, event_id, kind, url)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	if err := t.tx.QueryRowContext(ctx, query, a.ID, a.EventID, a.Kind, a.URL).Scan(&a.CreatedAt); err != nil {
		return fmt.Errorf("inserting attachment: %w", err)
	}

	return nil
}

func (t *storeTx) DebitWallet(ctx context.Context, groupID uuid.UUID, e *ledger.Entry) error {
	w, err := ledgerstore.WalletForUpdate(ctx, t.tx, groupID)
	if err != nil {
		return err
	}

	if w.Balance < e.Amount {
		return ledger.ErrInsufficientFunds
	}

	return ledgerstore.ApplyEntry(ctx, t.tx, w.ID, e)
}

func (t *storeTx) CreditWallet(ctx context.Context, groupID uuid.UUID, e *ledger.Entry) error {
	w, err := ledgerstore.WalletForUpdate(ctx, t.tx, groupID)
	if err != nil {
		return err
	}

	return ledgerstore.ApplyEntry(ctx, t.tx, w.ID, e)
}

func (t *storeTx) ApprovedExtraTotal(ctx context.Context, eventID uuid.UUID) (int64, error) {
	return ApprovedExtraTotal(ctx, t.tx, eventID)
}

// ApprovedExtraTotal sums the money an event received through approved fund
// requests; shared with the fund request store.
func ApprovedExtraTotal(ctx context.Context, q database.DBTX, eventID uuid.UUID) (int64, error) {
	var total int64
	if err := q.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(COALESCE(approved_amount, amount)), 0)
		 FROM fund_requests WHERE event_id = $1 AND status = $2`,
		eventID, fundreq.StatusApproved,
	).Scan(&total); err != nil {
		return 0, fmt.Errorf("totaling fund requests: %w", err)
	}

	return total, nil
}

func (t *storeTx) RejectPendingFundRequests(ctx context.Context, eventID uuid.UUID, note string) error {
	query := `UPDATE fund_requests
		SET status = $1, notes = $2, updated_at = NOW()
		WHERE event_id = $3 AND status = $4`

	if _, err := t.tx.ExecContext(ctx, query,
		fundreq.StatusRejected, note, eventID, fundreq.StatusPending,
	); err != nil {
		return fmt.Errorf("rejecting pending fund requests: %w", err)
	}

	return nil
}
