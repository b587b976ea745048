package fundrequest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/prasetyo/kasrt/internal/fundreq"
	"github.com/prasetyo/kasrt/internal/http/respond"
	"github.com/prasetyo/kasrt/internal/http/session"
)

type Handler struct {
	svc *fundreq.Service
}

func NewHandler(svc *fundreq.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/approve", h.approve)
	r.Post("/{id}/reject", h.reject)
}

type requestResponse struct {
	ID               uuid.UUID      `json:"id"`
	RequesterGroupID uuid.UUID      `json:"requester_group_id"`
	TargetGroupID    uuid.UUID      `json:"target_group_id"`
	EventID          *uuid.UUID     `json:"event_id,omitempty"`
	Amount           int64          `json:"amount"`
	Description      string         `json:"description"`
	Status           fundreq.Status `json:"status"`
	CreatedBy        uuid.UUID      `json:"created_by"`
	ApprovedBy       *uuid.UUID     `json:"approved_by,omitempty"`
	ApprovedAmount   *int64         `json:"approved_amount,omitempty"`
	Notes            string         `json:"notes,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func toResponse(fr *fundreq.FundRequest) requestResponse {
	return requestResponse{
		ID:               fr.ID,
		RequesterGroupID: fr.RequesterGroupID,
		TargetGroupID:    fr.TargetGroupID,
		EventID:          fr.EventID,
		Amount:           fr.Amount,
		Description:      fr.Description,
		Status:           fr.Status,
		CreatedBy:        fr.CreatedBy,
		ApprovedBy:       fr.ApprovedBy,
		ApprovedAmount:   fr.ApprovedAmount,
		Notes:            fr.Notes,
		CreatedAt:        fr.CreatedAt,
		UpdatedAt:        fr.UpdatedAt,
	}
}

type createRequest struct {
	Amount      int64      `json:"amount"`
	Description string     `json:"description"`
	EventID     *uuid.UUID `json:"event_id,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	actor, _ := session.Actor(r.Context())

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fr, err := h.svc.CreateRequest(r.Context(), actor, fundreq.CreateParams{
		Amount:      req.Amount,
		Description: req.Description,
		EventID:     req.EventID,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(fr))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	actor, _ := session.Actor(r.Context())

	groupID := actor.GroupID

	if s := r.URL.Query().Get("group_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid group_id", http.StatusBadRequest)
			return
		}

		groupID = id
	}

	requests, err := h.svc.ListByGroup(r.Context(), actor, groupID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]requestResponse, len(requests))
	for i, fr := range requests {
		resp[i] = toResponse(fr)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	actor, _ := session.Actor(r.Context())

	fr, err := h.svc.Get(r.Context(), actor, id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(fr))
}

type approveRequest struct {
	ApprovedAmount *int64 `json:"approved_amount,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

func (h *Handler) approve(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	actor, _ := session.Actor(r.Context())

	var req approveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fr, err := h.svc.Approve(r.Context(), actor, id, fundreq.ApproveParams{
		ApprovedAmount: req.ApprovedAmount,
		Notes:          req.Notes,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(fr))
}

type rejectRequest struct {
	Reason   string                    `json:"reason"`
	Takeover *fundreq.TakeoverDecision `json:"takeover,omitempty"`
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	actor, _ := session.Actor(r.Context())

	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fr, err := h.svc.Reject(r.Context(), actor, id, fundreq.RejectParams{
		Reason:   req.Reason,
		Takeover: req.Takeover,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(fr))
}
