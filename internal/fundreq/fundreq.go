package fundreq

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound         = errors.New("fund request not found")
	ErrForbidden        = errors.New("forbidden")
	ErrDuplicatePending = errors.New("event already has a pending fund request")
	ErrAlreadyResolved  = errors.New("fund request already resolved")
	ErrBelowThreshold   = errors.New("event budget is below the escalation threshold")
	ErrNoParentGroup    = errors.New("group has no parent to escalate to")
	ErrReasonRequired   = errors.New("rejection requires a reason")
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// TakeoverDecision is the parent's authority, when rejecting an escalation,
// to decide the fate of the linked event.
type TakeoverDecision string

const (
	TakeoverCancelEvent          TakeoverDecision = "CANCEL_EVENT"
	TakeoverContinueWithOriginal TakeoverDecision = "CONTINUE_WITH_ORIGINAL"
)

// FundRequest asks the parent group for money beyond the requester's own
// wallet. A request is resolved exactly once: PENDING to APPROVED or
// REJECTED, never back.
type FundRequest struct {
	ID               uuid.UUID
	RequesterGroupID uuid.UUID
	TargetGroupID    uuid.UUID
	EventID          *uuid.UUID
	Amount           int64
	Description      string
	Status           Status
	CreatedBy        uuid.UUID
	ApprovedBy       *uuid.UUID
	ApprovedAmount   *int64
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
