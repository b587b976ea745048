package event

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("event not found")
	ErrForbidden         = errors.New("forbidden")
	ErrBudgetMismatch    = errors.New("expense report does not reconcile with funded amount")
	ErrNoticeRequired    = errors.New("rejection requires notes")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrNoPendingApproval = errors.New("no pending approval")
)

// Status represents the lifecycle state of an event.
type Status string

const (
	StatusDraft       Status = "DRAFT"
	StatusSubmitted   Status = "SUBMITTED"
	StatusRejected    Status = "REJECTED"
	StatusApproved    Status = "APPROVED"
	StatusFunded      Status = "FUNDED"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusOngoing     Status = "ONGOING"
	StatusCompleted   Status = "COMPLETED"
	StatusSettled     Status = "SETTLED"
	StatusCancelled   Status = "CANCELLED"
)

// Event is a group activity with a budget that moves through the lifecycle
// above. BudgetActual stays nil until settlement.
type Event struct {
	ID                uuid.UUID
	GroupID           uuid.UUID
	CreatedBy         uuid.UUID
	Title             string
	Description       string
	BudgetEstimated   int64
	BudgetActual      *int64
	StartDate         *time.Time
	EndDate           *time.Time
	Status            Status
	ResultDescription *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HoldsFunds reports whether the event currently holds disbursed money that a
// cancellation would have to refund.
func (e *Event) HoldsFunds() bool {
	return e.Status == StatusFunded || e.Status == StatusUnderReview || e.Status == StatusOngoing
}

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// Approval is the single treasurer gate generated for one submission cycle.
// RoleSnapshot freezes the approver's role name at submission time. The rows
// of an event are wiped and regenerated on every (re-)submit.
type Approval struct {
	ID           uuid.UUID
	EventID      uuid.UUID
	ApproverID   uuid.UUID
	RoleSnapshot string
	StepOrder    int
	Status       ApprovalStatus
	Notes        string
	ApprovedAt   *time.Time
	CreatedAt    time.Time
}

// StatusHistory is the append-only audit trail of status changes. ChangedBy
// is nil for system-generated transitions.
type StatusHistory struct {
	ID             uuid.UUID
	EventID        uuid.UUID
	ChangedBy      *uuid.UUID
	PreviousStatus Status
	NewStatus      Status
	Reason         string
	CreatedAt      time.Time
}

// Expense is one itemized spending line reported by the treasurer.
type Expense struct {
	ID         uuid.UUID
	EventID    uuid.UUID
	Title      string
	Amount     int64
	ProofImage string
	IsValid    bool
	VerifiedBy *uuid.UUID
	CreatedAt  time.Time
}

type AttachmentKind string

const (
	AttachmentReceipt AttachmentKind = "receipt"
	AttachmentResult  AttachmentKind = "result"
)

// Attachment references an externally stored image by URL.
type Attachment struct {
	ID        uuid.UUID
	EventID   uuid.UUID
	Kind      AttachmentKind
	URL       string
	CreatedAt time.Time
}

// InvalidTransitionError reports an action attempted in a status that does
// not allow it.
type InvalidTransitionError struct {
	Action Action
	Status Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s event in status %s", e.Action, e.Status)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
