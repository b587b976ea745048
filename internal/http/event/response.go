package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/prasetyo/kasrt/internal/event"
)

type eventResponse struct {
	ID                uuid.UUID    `json:"id"`
	GroupID           uuid.UUID    `json:"group_id"`
	CreatedBy         uuid.UUID    `json:"created_by"`
	Title             string       `json:"title"`
	Description       string       `json:"description,omitempty"`
	BudgetEstimated   int64        `json:"budget_estimated"`
	BudgetActual      *int64       `json:"budget_actual,omitempty"`
	StartDate         *time.Time   `json:"start_date,omitempty"`
	EndDate           *time.Time   `json:"end_date,omitempty"`
	Status            event.Status `json:"status"`
	ResultDescription *string      `json:"result_description,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

func toResponse(e *event.Event) eventResponse {
	return eventResponse{
		ID:                e.ID,
		GroupID:           e.GroupID,
		CreatedBy:         e.CreatedBy,
		Title:             e.Title,
		Description:       e.Description,
		BudgetEstimated:   e.BudgetEstimated,
		BudgetActual:      e.BudgetActual,
		StartDate:         e.StartDate,
		EndDate:           e.EndDate,
		Status:            e.Status,
		ResultDescription: e.ResultDescription,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func toResponseList(events []*event.Event) []eventResponse {
	resp := make([]eventResponse, len(events))
	for i, e := range events {
		resp[i] = toResponse(e)
	}

	return resp
}

type expenseResponse struct {
	ID         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	Amount     int64      `json:"amount"`
	ProofImage string     `json:"proof_image,omitempty"`
	IsValid    bool       `json:"is_valid"`
	VerifiedBy *uuid.UUID `json:"verified_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type approvalResponse struct {
	ID           uuid.UUID            `json:"id"`
	ApproverID   uuid.UUID            `json:"approver_id"`
	RoleSnapshot string               `json:"role_snapshot"`
	StepOrder    int                  `json:"step_order"`
	Status       event.ApprovalStatus `json:"status"`
	Notes        string               `json:"notes,omitempty"`
	ApprovedAt   *time.Time           `json:"approved_at,omitempty"`
}

type historyResponse struct {
	ID             uuid.UUID    `json:"id"`
	ChangedBy      *uuid.UUID   `json:"changed_by,omitempty"`
	PreviousStatus event.Status `json:"previous_status"`
	NewStatus      event.Status `json:"new_status"`
	Reason         string       `json:"reason,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
}

type attachmentResponse struct {
	ID   uuid.UUID            `json:"id"`
	Kind event.AttachmentKind `json:"kind"`
	URL  string               `json:"url"`
}

type detailResponse struct {
	eventResponse
	Expenses    []expenseResponse    `json:"expenses"`
	Approvals   []approvalResponse   `json:"approvals"`
	History     []historyResponse    `json:"history"`
	Attachments []attachmentResponse `json:"attachments"`
}

func toDetailResponse(d *event.Detail) detailResponse {
	resp := detailResponse{
		eventResponse: toResponse(d.Event),
		Expenses:      make([]expenseResponse, len(d.Expenses)),
		Approvals:     make([]approvalResponse, len(d.Approvals)),
		History:       make([]historyResponse, len(d.History)),
		Attachments:   make([]attachmentResponse, len(d.Attachments)),
	}

	for i, e := range d.Expenses {
		resp.Expenses[i] = expenseResponse{
			ID:         e.ID,
			Title:      e.Title,
			Amount:     e.Amount,
			ProofImage: e.ProofImage,
			IsValid:    e.IsValid,
			VerifiedBy: e.VerifiedBy,
			CreatedAt:  e.CreatedAt,
		}
	}

	for i, a := range d.Approvals {
		resp.Approvals[i] = approvalResponse{
			ID:           a.ID,
			ApproverID:   a.ApproverID,
			RoleSnapshot: a.RoleSnapshot,
			StepOrder:    a.StepOrder,
			Status:       a.Status,
			Notes:        a.Notes,
			ApprovedAt:   a.ApprovedAt,
		}
	}

	for i, h := range d.History {
		resp.History[i] = historyResponse{
			ID:             h.ID,
			ChangedBy:      h.ChangedBy,
			PreviousStatus: h.PreviousStatus,
			NewStatus:      h.NewStatus,
			Reason:         h.Reason,
			CreatedAt:      h.CreatedAt,
		}
	}

	for i, a := range d.Attachments {
		resp.Attachments[i] = attachmentResponse{ID: a.ID, Kind: a.Kind, URL: a.URL}
	}

	return resp
}
