package fundreq

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/prasetyo/kasrt/internal/event"
	"github.com/prasetyo/kasrt/internal/group"
	"github.com/prasetyo/kasrt/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=fundreq
type Repository interface {
	Begin(ctx context.Context) (Tx, error)
	Request(ctx context.Context, id uuid.UUID) (*FundRequest, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*FundRequest, error)
	Group(ctx context.Context, id uuid.UUID) (*group.Group, error)
}

// Tx is the escalation workflow's unit of work. Resolving a request, moving
// the money, and transitioning the linked event all share one transaction.
type Tx interface {
	InsertRequest(ctx context.Context, fr *FundRequest) error
	RequestForUpdate(ctx context.Context, id uuid.UUID) (*FundRequest, error)
	PendingByEvent(ctx context.Context, eventID uuid.UUID) (*FundRequest, error)
	Resolve(ctx context.Context, id uuid.UUID, status Status, resolvedBy uuid.UUID, approvedAmount *int64, notes string) error

	EventForUpdate(ctx context.Context, id uuid.UUID) (*event.Event, error)
	SetEventStatus(ctx context.Context, id uuid.UUID, status event.Status) error
	UpdateEventBudget(ctx context.Context, id uuid.UUID, budget int64) error
	InsertEventHistory(ctx context.Context, h *event.StatusHistory) error

	Transfer(ctx context.Context, params ledger.TransferParams) error
	CreditWallet(ctx context.Context, groupID uuid.UUID, e *ledger.Entry) error
	ApprovedExtraTotal(ctx context.Context, eventID uuid.UUID) (int64, error)

	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository

	// minEventBudget gates event-tied escalations: only events at least this
	// large may ask the parent for more money.
	minEventBudget int64
}

func NewService(repo Repository, minEventBudget int64) *Service {
	return &Service{repo: repo, minEventBudget: minEventBudget}
}

type CreateParams struct {
	Amount      int64
	Description string
	EventID     *uuid.UUID
}

// CreateRequest opens an escalation toward the caller's parent group. When
// tied to an event, the event must be FUNDED, meet the budget threshold, and
// have no other pending request; it then moves to UNDER_REVIEW.
func (s *Service) CreateRequest(ctx context.Context, actor group.Actor, params CreateParams) (*FundRequest, error) {
	if !actor.Role.IsOfficer() {
		return nil, fmt.Errorf("only group officers may request funds: %w", ErrForbidden)
	}

	if params.Amount <= 0 {
		return nil, ledger.ErrNonPositiveAmount
	}

	g, err := s.repo.Group(ctx, actor.GroupID)
	if err != nil {
		return nil, fmt.Errorf("looking up group: %w", err)
	}

	if g.ParentID == nil {
		return nil, ErrNoParentGroup
	}

	fr := &FundRequest{
		ID:               uuid.New(),
		RequesterGroupID: actor.GroupID,
		TargetGroupID:    *g.ParentID,
		EventID:          params.EventID,
		Amount:           params.Amount,
		Description:      params.Description,
		Status:           StatusPending,
		CreatedBy:        actor.ID,
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if params.EventID != nil {
		ev, err := tx.EventForUpdate(ctx, *params.EventID)
		if err != nil {
			return nil, err
		}

		if ev.GroupID != actor.GroupID {
			return nil, fmt.Errorf("event belongs to another group: %w", ErrForbidden)
		}

		// The duplicate check runs before the transition gate: an event with a
		// PENDING request sits in UNDER_REVIEW, where a second request would
		// otherwise surface as an invalid transition instead.
		if _, err := tx.PendingByEvent(ctx, ev.ID); err == nil {
			return nil, ErrDuplicatePending
		} else if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("checking pending requests: %w", err)
		}

		next, err := event.Next(ev.Status, event.ActionRequestFunds)
		if err != nil {
			return nil, err
		}

		if ev.BudgetEstimated < s.minEventBudget {
			return nil, ErrBelowThreshold
		}

		if err := s.transitionEvent(ctx, tx, ev, next, &actor.ID, "additional funds requested from parent group"); err != nil {
			return nil, err
		}
	}

	if err := tx.InsertRequest(ctx, fr); err != nil {
		return nil, fmt.Errorf("creating fund request: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return fr, nil
}

type ApproveParams struct {
	// ApprovedAmount overrides the requested amount; adjusting requires a
	// justification note.
	ApprovedAmount *int64
	Notes          string
}

// Approve transfers money from the parent to the requester and, for
// event-tied requests, raises the event budget and returns it to FUNDED. If
// the parent wallet cannot cover the amount, nothing changes.
func (s *Service) Approve(ctx context.Context, actor group.Actor, id uuid.UUID, params ApproveParams) (*FundRequest, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	fr, err := tx.RequestForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := guardTargetTreasurer(actor, fr); err != nil {
		return nil, err
	}

	if fr.Status != StatusPending {
		return nil, ErrAlreadyResolved
	}

	amount := fr.Amount

	if params.ApprovedAmount != nil {
		if *params.ApprovedAmount <= 0 {
			return nil, ledger.ErrNonPositiveAmount
		}

		if *params.ApprovedAmount != fr.Amount && params.Notes == "" {
			return nil, fmt.Errorf("adjusting the amount requires a justification note")
		}

		amount = *params.ApprovedAmount
	}

	if err := tx.Transfer(ctx, ledger.TransferParams{
		SourceGroupID: fr.TargetGroupID,
		TargetGroupID: fr.RequesterGroupID,
		Amount:        amount,
		Description:   fmt.Sprintf("fund escalation approved: %s", fr.Description),
		EventID:       fr.EventID,
		CreatedBy:     &actor.ID,
	}); err != nil {
		return nil, fmt.Errorf("transferring funds: %w", err)
	}

	if fr.EventID != nil {
		ev, err := tx.EventForUpdate(ctx, *fr.EventID)
		if err != nil {
			return nil, err
		}

		next, err := event.Next(ev.Status, event.ActionResolveFunds)
		if err != nil {
			return nil, err
		}

		if err := tx.UpdateEventBudget(ctx, ev.ID, ev.BudgetEstimated+amount); err != nil {
			return nil, fmt.Errorf("raising event budget: %w", err)
		}

		if err := s.transitionEvent(ctx, tx, ev, next, &actor.ID, "additional funds approved by parent group"); err != nil {
			return nil, err
		}
	}

	if err := tx.Resolve(ctx, fr.ID, StatusApproved, actor.ID, &amount, params.Notes); err != nil {
		return nil, fmt.Errorf("resolving request: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	fr.Status = StatusApproved
	fr.ApprovedBy = &actor.ID
	fr.ApprovedAmount = &amount
	fr.Notes = params.Notes

	return fr, nil
}

type RejectParams struct {
	Reason   string
	Takeover *TakeoverDecision
}

// Reject declines the escalation. An event under review returns to FUNDED
// with its original budget. A takeover decision lets the parent force-cancel
// the linked event (with refunds split at the money source) or order it to
// continue on the original budget.
func (s *Service) Reject(ctx context.Context, actor group.Actor, id uuid.UUID, params RejectParams) (*FundRequest, error) {
	if params.Reason == "" {
		return nil, ErrReasonRequired
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	fr, err := tx.RequestForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := guardTargetTreasurer(actor, fr); err != nil {
		return nil, err
	}

	if fr.Status != StatusPending {
		return nil, ErrAlreadyResolved
	}

	if err := tx.Resolve(ctx, fr.ID, StatusRejected, actor.ID, nil, params.Reason); err != nil {
		return nil, fmt.Errorf("resolving request: %w", err)
	}

	if fr.EventID != nil {
		if err := s.settleRejectedEvent(ctx, tx, actor, fr, params); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	fr.Status = StatusRejected
	fr.ApprovedBy = &actor.ID
	fr.Notes = params.Reason

	return fr, nil
}

// settleRejectedEvent returns an under-review event to FUNDED and then
// applies the parent's takeover decision, if any.
func (s *Service) settleRejectedEvent(ctx context.Context, tx Tx, actor group.Actor, fr *FundRequest, params RejectParams) error {
	ev, err := tx.EventForUpdate(ctx, *fr.EventID)
	if err != nil {
		return err
	}

	if ev.Status == event.StatusUnderReview {
		next, err := event.Next(ev.Status, event.ActionResolveFunds)
		if err != nil {
			return err
		}

		reason := fmt.Sprintf("additional funds rejected: %s", params.Reason)
		if err := s.transitionEvent(ctx, tx, ev, next, &actor.ID, reason); err != nil {
			return err
		}
	}

	if params.Takeover == nil {
		return nil
	}

	switch *params.Takeover {
	case TakeoverCancelEvent:
		return s.takeoverCancel(ctx, tx, actor, ev, params.Reason)

	case TakeoverContinueWithOriginal:
		h := &event.StatusHistory{
			ID:             uuid.New(),
			EventID:        ev.ID,
			ChangedBy:      &actor.ID,
			PreviousStatus: ev.Status,
			NewStatus:      ev.Status,
			Reason:         fmt.Sprintf("parent group ordered continuation with the original budget: %s", params.Reason),
		}

		return tx.InsertEventHistory(ctx, h)

	default:
		return fmt.Errorf("unknown takeover decision %q", *params.Takeover)
	}
}

// takeoverCancel force-cancels the event on the parent's authority. Held
// money is refunded split at its source, like the expiry sweep does.
func (s *Service) takeoverCancel(ctx context.Context, tx Tx, actor group.Actor, ev *event.Event, reason string) error {
	next, err := event.Next(ev.Status, event.ActionCancel)
	if err != nil {
		return err
	}

	if ev.HoldsFunds() && ev.BudgetEstimated > 0 {
		extra, err := tx.ApprovedExtraTotal(ctx, ev.ID)
		if err != nil {
			return fmt.Errorf("totaling approved fund requests: %w", err)
		}

		if extra > ev.BudgetEstimated {
			extra = ev.BudgetEstimated
		}

		if extra > 0 {
			refund := &ledger.Entry{
				ID:          uuid.New(),
				Amount:      extra,
				Type:        ledger.TypeCredit,
				Description: fmt.Sprintf("escalated funds returned from cancelled event %q", ev.Title),
				EventID:     &ev.ID,
				CreatedBy:   &actor.ID,
			}
			if err := tx.CreditWallet(ctx, actor.GroupID, refund); err != nil {
				return fmt.Errorf("refunding parent: %w", err)
			}
		}

		if remainder := ev.BudgetEstimated - extra; remainder > 0 {
			refund := &ledger.Entry{
				ID:          uuid.New(),
				Amount:      remainder,
				Type:        ledger.TypeCredit,
				Description: fmt.Sprintf("refund for cancelled event %q", ev.Title),
				EventID:     &ev.ID,
				CreatedBy:   &actor.ID,
			}
			if err := tx.CreditWallet(ctx, ev.GroupID, refund); err != nil {
				return fmt.Errorf("refunding group: %w", err)
			}
		}
	}

	reason = fmt.Sprintf("cancelled by parent group: %s", reason)

	return s.transitionEvent(ctx, tx, ev, next, &actor.ID, reason)
}

func (s *Service) transitionEvent(ctx context.Context, tx Tx, ev *event.Event, next event.Status, changedBy *uuid.UUID, reason string) error {
	prev := ev.Status

	if err := tx.SetEventStatus(ctx, ev.ID, next); err != nil {
		return fmt.Errorf("setting event status: %w", err)
	}

	h := &event.StatusHistory{
		ID:             uuid.New(),
		EventID:        ev.ID,
		ChangedBy:      changedBy,
		PreviousStatus: prev,
		NewStatus:      next,
		Reason:         reason,
	}
	if err := tx.InsertEventHistory(ctx, h); err != nil {
		return fmt.Errorf("recording history: %w", err)
	}

	ev.Status = next

	return nil
}

func guardTargetTreasurer(actor group.Actor, fr *FundRequest) error {
	if actor.Role != group.RoleTreasurer || actor.GroupID != fr.TargetGroupID {
		return fmt.Errorf("only the parent group's treasurer may resolve this request: %w", ErrForbidden)
	}

	return nil
}

// ListByGroup returns requests sent or received by the caller's group.
func (s *Service) ListByGroup(ctx context.Context, actor group.Actor, groupID uuid.UUID) ([]*FundRequest, error) {
	if actor.GroupID != groupID {
		return nil, fmt.Errorf("may only list own group's requests: %w", ErrForbidden)
	}

	return s.repo.ListByGroup(ctx, groupID)
}

func (s *Service) Get(ctx context.Context, actor group.Actor, id uuid.UUID) (*FundRequest, error) {
	fr, err := s.repo.Request(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor.GroupID != fr.RequesterGroupID && actor.GroupID != fr.TargetGroupID {
		return nil, fmt.Errorf("request belongs to other groups: %w", ErrForbidden)
	}

	return fr, nil
}
