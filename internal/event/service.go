package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/prasetyo/kasrt/internal/group"
	"github.com/prasetyo/kasrt/internal/ledger"
)

// reconcileTolerance is the rounding slack allowed when checking that an
// expense report adds up to the funded amount.
const reconcileTolerance = 1

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=event
type Repository interface {
	Begin(ctx context.Context) (Tx, error)

	Event(ctx context.Context, id uuid.UUID) (*Event, error)
	List(ctx context.Context, filter ListFilter) ([]*Event, error)
	Expenses(ctx context.Context, eventID uuid.UUID) ([]*Expense, error)
	Approvals(ctx context.Context, eventID uuid.UUID) ([]*Approval, error)
	History(ctx context.Context, eventID uuid.UUID) ([]*StatusHistory, error)
	Attachments(ctx context.Context, eventID uuid.UUID) ([]*Attachment, error)

	// ParentGroupID resolves a group's parent. Parents are immutable, so this
	// read is safe outside the unit of work.
	ParentGroupID(ctx context.Context, groupID uuid.UUID) (*uuid.UUID, error)

	// DueForSweep lists events whose end date has passed and whose status the
	// expiry sweep still acts on.
	DueForSweep(ctx context.Context, now time.Time) ([]uuid.UUID, error)
}

// Tx is the event workflow's unit of work. Guards are evaluated on the row
// returned by EventForUpdate so two concurrent requests cannot both pass the
// same status check.
type Tx interface {
	EventForUpdate(ctx context.Context, id uuid.UUID) (*Event, error)
	InsertEvent(ctx context.Context, e *Event) error
	UpdateEvent(ctx context.Context, e *Event) error
	SetStatus(ctx context.Context, id uuid.UUID, status Status) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error

	InsertHistory(ctx context.Context, h *StatusHistory) error

	DeleteApprovals(ctx context.Context, eventID uuid.UUID) error
	InsertApproval(ctx context.Context, a *Approval) error
	PendingApproval(ctx context.Context, eventID uuid.UUID) (*Approval, error)
	ResolveApproval(ctx context.Context, id uuid.UUID, status ApprovalStatus, notes string) error

	InsertExpense(ctx context.Context, e *Expense) error
	ExpenseTotal(ctx context.Context, eventID uuid.UUID) (int64, error)
	InsertAttachment(ctx context.Context, a *Attachment) error

	DebitWallet(ctx context.Context, groupID uuid.UUID, e *ledger.Entry) error
	CreditWallet(ctx context.Context, groupID uuid.UUID, e *ledger.Entry) error

	ApprovedExtraTotal(ctx context.Context, eventID uuid.UUID) (int64, error)
	RejectPendingFundRequests(ctx context.Context, eventID uuid.UUID, note string) error

	Commit() error
	Rollback() error
}

// TreasurerResolver locates the acting treasurer for a group, falling back to
// the parent group. Satisfied by *group.Service.
type TreasurerResolver interface {
	FindActingTreasurer(ctx context.Context, groupID uuid.UUID) (group.TreasurerLookup, error)
}

type ListFilter struct {
	GroupID  *uuid.UUID
	Statuses []Status
}

type Service struct {
	repo       Repository
	treasurers TreasurerResolver
}

func NewService(repo Repository, treasurers TreasurerResolver) *Service {
	return &Service{repo: repo, treasurers: treasurers}
}

type CreateParams struct {
	Title           string
	Description     string
	BudgetEstimated int64
	StartDate       *time.Time
	EndDate         *time.Time
}

// Create opens a new DRAFT event in the caller's group. Plain residents may
// not create events.
func (s *Service) Create(ctx context.Context, actor group.Actor, params CreateParams) (*Event, error) {
	if !actor.Role.IsOfficer() {
		return nil, fmt.Errorf("only group officers may create events: %w", ErrForbidden)
	}

	if params.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	if params.BudgetEstimated < 0 {
		return nil, fmt.Errorf("estimated budget must not be negative")
	}

	e := &Event{
		ID:              uuid.New(),
		GroupID:         actor.GroupID,
		CreatedBy:       actor.ID,
		Title:           params.Title,
		Description:     params.Description,
		BudgetEstimated: params.BudgetEstimated,
		StartDate:       params.StartDate,
		EndDate:         params.EndDate,
		Status:          StatusDraft,
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if err := tx.InsertEvent(ctx, e); err != nil {
		return nil, fmt.Errorf("creating event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return e, nil
}

type UpdateParams struct {
	Title           *string
	Description     *string
	BudgetEstimated *int64
	StartDate       *time.Time
	EndDate         *time.Time
}

// Update edits an event while it is still DRAFT or REJECTED.
func (s *Service) Update(ctx context.Context, actor group.Actor, id uuid.UUID, params UpdateParams) (*Event, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	e, err := tx.EventForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := guardOwnership(actor, e); err != nil {
		return nil, err
	}

	if e.Status != StatusDraft && e.Status != StatusRejected {
		return nil, &InvalidTransitionError{Action: ActionEdit, Status: e.Status}
	}

	if params.Title != nil {
		e.Title = *params.Title
	}

	if params.Description != nil {
		e.Description = *params.Description
	}

	if params.BudgetEstimated != nil {
		if *params.BudgetEstimated < 0 {
			return nil, fmt.Errorf("estimated budget must not be negative")
		}

		e.BudgetEstimated = *params.BudgetEstimated
	}

	if params.StartDate != nil {
		e.StartDate = params.StartDate
	}

	if params.EndDate != nil {
		e.EndDate = params.EndDate
	}

	if err := tx.UpdateEvent(ctx, e); err != nil {
		return nil, fmt.Errorf("updating event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return e, nil
}

// Delete removes an event permanently. Only DRAFT events may be deleted.
func (s *Service) Delete(ctx context.Context, actor group.Actor, id uuid.UUID) error {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	e, err := tx.EventForUpdate(ctx, id)
	if err != nil {
		return err
	}

	if err := guardOwnership(actor, e); err != nil {
		return err
	}

	if e.Status != StatusDraft {
		return &InvalidTransitionError{Action: ActionDelete, Status: e.Status}
	}

	if err := tx.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// Submit moves a DRAFT or REJECTED event to SUBMITTED and regenerates the
// approval workflow: a single pending gate scoped to the acting treasurer.
// The ownership guard and the treasurer snapshot are taken on the locked row
// so a concurrent role change cannot produce a stale approver.
func (s *Service) Submit(ctx context.Context, actor group.Actor, id uuid.UUID) (*Event, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	e, err := tx.EventForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := guardOwnership(actor, e); err != nil {
		return nil, err
	}

	next, err := Next(e.Status, ActionSubmit)
	if err != nil {
		return nil, err
	}

	lookup, err := s.treasurers.FindActingTreasurer(ctx, e.GroupID)
	if err != nil {
		return nil, fmt.Errorf("resolving treasurer: %w", err)
	}

	if lookup.Source == group.TreasurerNone {
		return nil, group.ErrNoTreasurer
	}

	if err := tx.DeleteApprovals(ctx, e.ID); err != nil {
		return nil, fmt.Errorf("clearing approvals: %w", err)
	}

	approval := &Approval{
		ID:           uuid.New(),
		EventID:      e.ID,
		ApproverID:   lookup.Treasurer.ID,
		RoleSnapshot: string(lookup.Treasurer.Role),
		StepOrder:    1,
		Status:       ApprovalPending,
	}
	if err := tx.InsertApproval(ctx, approval); err != nil {
		return nil, fmt.Errorf("creating approval: %w", err)
	}

	if err := s.applyTransition(ctx, tx, e, next, &actor.ID, "submitted for treasurer approval"); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return e, nil
}

type ApprovalDecision struct {
	Approve bool
	Notes   string
}

// ResolveApproval is the only way out of SUBMITTED. Approval debits the
// group's wallet for the estimated budget and moves the event to FUNDED;
// rejection requires notes and moves it to REJECTED. If the wallet cannot
// cover the budget, nothing changes.
func (s *Service) ResolveApproval(ctx context.Context, actor group.Actor, id uuid.UUID, decision ApprovalDecision) (*Event, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	e, err := tx.EventForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	action := ActionReject
	if decision.Approve {
		action = ActionApprove
	}

	next, err := Next(e.Status, action)
	if err != nil {
		return nil, err
	}

	approval, err := tx.PendingApproval(ctx, e.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNoPendingApproval
		}

		return nil, fmt.Errorf("loading approval: %w", err)
	}

	if approval.ApproverID != actor.ID {
		return nil, fmt.Errorf("only the assigned treasurer may resolve this approval: %w", ErrForbidden)
	}

	if decision.Approve {
		debit := &ledger.Entry{
			ID:          uuid.New(),
			Amount:      e.BudgetEstimated,
			Type:        ledger.TypeDebit,
			Description: fmt.Sprintf("funding for event %q", e.Title),
			EventID:     &e.ID,
			CreatedBy:   &actor.ID,
		}
		if err := tx.DebitWallet(ctx, e.GroupID, debit); err != nil {
			return nil, fmt.Errorf("disbursing budget: %w", err)
		}

		if err := tx.ResolveApproval(ctx, approval.ID, ApprovalApproved, decision.Notes); err != nil {
			return nil, fmt.Errorf("resolving approval: %w", err)
		}

		if err := s.applyTransition(ctx, tx, e, next, &actor.ID, "approved and funded"); err != nil {
			return nil, err
		}
	} else {
		if decision.Notes == "" {
			return nil, ErrNoticeRequired
		}

		if err := tx.ResolveApproval(ctx, approval.ID, ApprovalRejected, decision.Notes); err != nil {
			return nil, fmt.Errorf("resolving approval: %w", err)
		}

		if err := s.applyTransition(ctx, tx, e, next, &actor.ID, decision.Notes); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return e, nil
}

type ExpenseItem struct {
	Title      string
	Amount     int64
	ProofImage string
}

type ExpenseReportParams struct {
	Items       []ExpenseItem
	Leftover    int64
	ReceiptURLs []string
}

// SubmitExpenseReport itemizes how the funded budget was spent. The items
// plus the declared leftover must reconcile with the funded amount within one
// unit; any leftover is refunded to the group wallet and the event moves to
// ONGOING.
func (s *Service) SubmitExpenseReport(ctx context.Context, actor group.Actor, id uuid.UUID, params ExpenseReportParams) (*Event, error) {
	if len(params.Items) == 0 {
		return nil, fmt.Errorf("expense report requires at least one item")
	}

	if params.Leftover < 0 {
		return nil, fmt.Errorf("leftover must not be negative")
	}

	var itemTotal int64

	for _, item := range params.Items {
		if item.Amount <= 0 {
			return nil, fmt.Errorf("expense amounts must be positive")
		}

		itemTotal += item.Amount
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	e, err := tx.EventForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.guardActingTreasurer(ctx, actor, e.GroupID); err != nil {
		return nil, err
	}

	next, err := Next(e.Status, ActionReportExpenses)
	if err != nil {
		return nil, err
	}

	diff := itemTotal + params.Leftover - e.BudgetEstimated
	if diff < -reconcileTolerance || diff > reconcileTolerance {
		return nil, ErrBudgetMismatch
	}

	for _, item := range params.Items {
		expense := &Expense{
			ID:         uuid.New(),
			EventID:    e.ID,
			Title:      item.Title,
			Amount:     item.Amount,
			ProofImage: item.ProofImage,
			IsValid:    true,
			VerifiedBy: &actor.ID,
		}
		if err := tx.InsertExpense(ctx, expense); err != nil {
			return nil, fmt.Errorf("saving expense: %w", err)
		}
	}

	for _, url := range params.ReceiptURLs {
		a := &Attachment{ID: uuid.New(), EventID: e.ID, Kind: AttachmentReceipt, URL: url}
		if err := tx.InsertAttachment(ctx, a); err != nil {
			return nil, fmt.Errorf("saving receipt: %w", err)
		}
	}

	if params.Leftover > 0 {
		refund := &ledger.Entry{
			ID:          uuid.New(),
			Amount:      params.Leftover,
			Type:        ledger.TypeCredit,
			Description: fmt.Sprintf("leftover returned from event %q", e.Title),
			EventID:     &e.ID,
			CreatedBy:   &actor.ID,
		}
		if err := tx.CreditWallet(ctx, e.GroupID, refund); err != nil {
			return nil, fmt.Errorf("refunding leftover: %w", err)
		}
	}

	if err := s.applyTransition(ctx, tx, e, next, &actor.ID, "expense report accepted"); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return e, nil
}

// ExtendDate pushes the end date of an ONGOING event further out. The new end
// must be strictly later than the current one.
func (s *Service) ExtendDate(ctx context.Context, actor group.Actor, id uuid.UUID, newEnd time.Time) (*Event, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	e, err := tx.EventForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := guardOwnership(actor, e); err != nil {
		return nil, err
	}

	if e.Status != StatusOngoing {
		return nil, &InvalidTransitionError{Action: ActionExtendDate, Status: e.Status}
	}

	if e.EndDate != nil && !newEnd.After(*e.EndDate) {
		return nil, fmt.Errorf("new end date must be later than the current one")
	}

	e.EndDate = &newEnd
	if err := tx.UpdateEvent(ctx, e); err != nil {
		return nil, fmt.Errorf("updating event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return e, nil
}

// Complete explicitly closes an ONGOING event.
func (s *Service) Complete(ctx context.Context, actor group.Actor, id uuid.UUID) (*Event, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	e, err := tx.EventForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := guardOwnership(actor, e); err != nil {
		return nil, err
	}

	next, err := Next(e.Status, ActionComplete)
	if err != nil {
		return nil, err
	}

	if err := s.applyTransition(ctx, tx, e, next, &actor.ID, "marked completed"); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return e, nil
}

type SettleParams struct {
	ResultDescription string
	PhotoURLs         []string
}

// Settle records the event's outcome. Only the creator settles; the actual
// budget becomes the sum of verified expenses.
func (s *Service) Settle(ctx context.Context, actor group.Actor, id uuid.UUID, params SettleParams) (*Event, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	e, err := tx.EventForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	if e.CreatedBy != actor.ID {
		return nil, fmt.Errorf("only the event creator may settle: %w", ErrForbidden)
	}

	next, err := Next(e.Status, ActionSettle)
	if err != nil {
		return nil, err
	}

	spent, err := tx.ExpenseTotal(ctx, e.ID)
	if err != nil {
		return nil, fmt.Errorf("totaling expenses: %w", err)
	}

	e.BudgetActual = &spent
	e.ResultDescription = &params.ResultDescription

	if err := tx.UpdateEvent(ctx, e); err != nil {
		return nil, fmt.Errorf("updating event: %w", err)
	}

	for _, url := range params.PhotoURLs {
		a := &Attachment{ID: uuid.New(), EventID: e.ID, Kind: AttachmentResult, URL: url}
		if err := tx.InsertAttachment(ctx, a); err != nil {
			return nil, fmt.Errorf("saving result photo: %w", err)
		}
	}

	if err := s.applyTransition(ctx, tx, e, next, &actor.ID, "settled"); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return e, nil
}

// Cancel withdraws an event. If the event already held disbursed money, the
// full estimated budget is refunded to the originating wallet first.
func (s *Service) Cancel(ctx context.Context, actor group.Actor, id uuid.UUID, reason string) (*Event, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	e, err := tx.EventForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := guardOwnership(actor, e); err != nil {
		return nil, err
	}

	next, err := Next(e.Status, ActionCancel)
	if err != nil {
		return nil, err
	}

	if e.HoldsFunds() && e.BudgetEstimated > 0 {
		refund := &ledger.Entry{
			ID:          uuid.New(),
			Amount:      e.BudgetEstimated,
			Type:        ledger.TypeCredit,
			Description: fmt.Sprintf("refund for cancelled event %q", e.Title),
			EventID:     &e.ID,
			CreatedBy:   &actor.ID,
		}
		if err := tx.CreditWallet(ctx, e.GroupID, refund); err != nil {
			return nil, fmt.Errorf("refunding budget: %w", err)
		}
	}

	if reason == "" {
		reason = "cancelled"
	}

	if err := s.applyTransition(ctx, tx, e, next, &actor.ID, reason); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return e, nil
}

// applyTransition records the status change and its audit row together. All
// status mutations funnel through here.
func (s *Service) applyTransition(ctx context.Context, tx Tx, e *Event, next Status, changedBy *uuid.UUID, reason string) error {
	prev := e.Status

	if err := tx.SetStatus(ctx, e.ID, next); err != nil {
		return fmt.Errorf("setting status: %w", err)
	}

	h := &StatusHistory{
		ID:             uuid.New(),
		EventID:        e.ID,
		ChangedBy:      changedBy,
		PreviousStatus: prev,
		NewStatus:      next,
		Reason:         reason,
	}
	if err := tx.InsertHistory(ctx, h); err != nil {
		return fmt.Errorf("recording history: %w", err)
	}

	e.Status = next

	return nil
}

func guardOwnership(actor group.Actor, e *Event) error {
	if e.CreatedBy == actor.ID {
		return nil
	}

	if actor.Role.IsOfficer() && actor.GroupID == e.GroupID {
		return nil
	}

	return fmt.Errorf("not the creator or an officer of the event's group: %w", ErrForbidden)
}

func (s *Service) guardActingTreasurer(ctx context.Context, actor group.Actor, groupID uuid.UUID) error {
	lookup, err := s.treasurers.FindActingTreasurer(ctx, groupID)
	if err != nil {
		return fmt.Errorf("resolving treasurer: %w", err)
	}

	if lookup.Source == group.TreasurerNone || lookup.Treasurer.ID != actor.ID {
		return fmt.Errorf("only the acting treasurer may do this: %w", ErrForbidden)
	}

	return nil
}

// residentVisible are the statuses plain residents may see.
var residentVisible = []Status{StatusFunded, StatusOngoing, StatusCompleted, StatusSettled, StatusCancelled}

func visibleToResident(status Status) bool {
	for _, s := range residentVisible {
		if s == status {
			return true
		}
	}

	return false
}

// List returns events filtered by group, hiding pre-funding statuses from
// residents.
func (s *Service) List(ctx context.Context, actor group.Actor, filter ListFilter) ([]*Event, error) {
	if actor.Role == group.RoleResident {
		filter.Statuses = residentVisible
	}

	return s.repo.List(ctx, filter)
}

// Detail is an event with its related records.
type Detail struct {
	Event       *Event
	Expenses    []*Expense
	Approvals   []*Approval
	History     []*StatusHistory
	Attachments []*Attachment
}

func (s *Service) Get(ctx context.Context, actor group.Actor, id uuid.UUID) (*Detail, error) {
	e, err := s.repo.Event(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor.Role == group.RoleResident && !visibleToResident(e.Status) {
		return nil, ErrNotFound
	}

	expenses, err := s.repo.Expenses(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading expenses: %w", err)
	}

	approvals, err := s.repo.Approvals(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading approvals: %w", err)
	}

	history, err := s.repo.History(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}

	attachments, err := s.repo.Attachments(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading attachments: %w", err)
	}

	return &Detail{Event: e, Expenses: expenses, Approvals: approvals, History: history, Attachments: attachments}, nil
}

// SweepResult summarizes one expiry sweep run.
type SweepResult struct {
	Completed int
	Cancelled int
	Failed    int
}

// RunExpirySweep force-transitions events whose end date has passed:
// ONGOING events complete, earlier statuses cancel with refunds reconciled
// per money source. Each event is processed independently; one failure does
// not stop the rest.
func (s *Service) RunExpirySweep(ctx context.Context) (SweepResult, error) {
	now := time.Now()

	ids, err := s.repo.DueForSweep(ctx, now)
	if err != nil {
		return SweepResult{}, fmt.Errorf("listing due events: %w", err)
	}

	var result SweepResult

	for _, id := range ids {
		outcome, err := s.expireOne(ctx, id, now)
		if err != nil {
			result.Failed++

			slog.Error("expiry sweep: event failed", "event_id", id, "error", err)

			continue
		}

		switch outcome {
		case StatusCompleted:
			result.Completed++
		case StatusCancelled:
			result.Cancelled++
		}
	}

	return result, nil
}

// expireOne re-checks the event under lock, so a sweep racing a user action
// or another sweep settles on one outcome.
func (s *Service) expireOne(ctx context.Context, id uuid.UUID, now time.Time) (Status, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	e, err := tx.EventForUpdate(ctx, id)
	if err != nil {
		return "", err
	}

	if e.EndDate == nil {
		return "", nil
	}

	var outcome Status

	switch {
	case e.Status == StatusOngoing && !e.EndDate.After(now):
		next, err := Next(e.Status, ActionAutoComplete)
		if err != nil {
			return "", err
		}

		if err := s.applyTransition(ctx, tx, e, next, nil, "event end date passed"); err != nil {
			return "", err
		}

		outcome = StatusCompleted

	case AutoCancellable(e.Status) && e.EndDate.Before(now):
		if err := s.autoCancel(ctx, tx, e); err != nil {
			return "", err
		}

		outcome = StatusCancelled

	default:
		// Status changed since the sweep listed this event.
		return "", nil
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	return outcome, nil
}

// autoCancel refunds held money split at its source: the portion that came
// from approved fund requests goes back to the parent's wallet, the rest to
// the event group's own wallet.
func (s *Service) autoCancel(ctx context.Context, tx Tx, e *Event) error {
	next, err := Next(e.Status, ActionAutoCancel)
	if err != nil {
		return err
	}

	if e.Status == StatusFunded || e.Status == StatusUnderReview {
		extra, err := tx.ApprovedExtraTotal(ctx, e.ID)
		if err != nil {
			return fmt.Errorf("totaling approved fund requests: %w", err)
		}

		if extra > e.BudgetEstimated {
			extra = e.BudgetEstimated
		}

		if extra > 0 {
			parentID, err := s.repo.ParentGroupID(ctx, e.GroupID)
			if err != nil {
				return fmt.Errorf("resolving parent group: %w", err)
			}

			if parentID == nil {
				// No parent to return escalated funds to; keep everything in
				// the originating wallet.
				extra = 0
			} else {
				refund := &ledger.Entry{
					ID:          uuid.New(),
					Amount:      extra,
					Type:        ledger.TypeCredit,
					Description: fmt.Sprintf("escalated funds returned from expired event %q", e.Title),
					EventID:     &e.ID,
				}
				if err := tx.CreditWallet(ctx, *parentID, refund); err != nil {
					return fmt.Errorf("refunding parent: %w", err)
				}
			}
		}

		if remainder := e.BudgetEstimated - extra; remainder > 0 {
			refund := &ledger.Entry{
				ID:          uuid.New(),
				Amount:      remainder,
				Type:        ledger.TypeCredit,
				Description: fmt.Sprintf("refund for expired event %q", e.Title),
				EventID:     &e.ID,
			}
			if err := tx.CreditWallet(ctx, e.GroupID, refund); err != nil {
				return fmt.Errorf("refunding group: %w", err)
			}
		}
	}

	if e.Status == StatusUnderReview {
		if err := tx.RejectPendingFundRequests(ctx, e.ID, "event expired before the request was resolved"); err != nil {
			return fmt.Errorf("rejecting pending fund requests: %w", err)
		}
	}

	return s.applyTransition(ctx, tx, e, next, nil, "event expired before completion")
}
