package event

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/prasetyo/kasrt/internal/event"
	"github.com/prasetyo/kasrt/internal/http/respond"
	"github.com/prasetyo/kasrt/internal/http/session"
)

type Handler struct {
	svc *event.Service
}

func NewHandler(svc *event.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/submit", h.submit)
	r.Post("/{id}/approval", h.resolveApproval)
	r.Post("/{id}/expenses", h.reportExpenses)
	r.Post("/{id}/extend", h.extend)
	r.Post("/{id}/complete", h.complete)
	r.Post("/{id}/settle", h.settle)
	r.Post("/{id}/cancel", h.cancel)
}

type createEventRequest struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	BudgetEstimated int64      `json:"budget_estimated"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	actor, _ := session.Actor(r.Context())

	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Create(r.Context(), actor, event.CreateParams{
		Title:           req.Title,
		Description:     req.Description,
		BudgetEstimated: req.BudgetEstimated,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(e))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	actor, _ := session.Actor(r.Context())

	filter := event.ListFilter{}

	if s := r.URL.Query().Get("group_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid group_id", http.StatusBadRequest)
			return
		}

		filter.GroupID = &id
	}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Statuses = []event.Status{event.Status(s)}
	}

	events, err := h.svc.List(r.Context(), actor, filter)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(events))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	actor, _ := session.Actor(r.Context())

	detail, err := h.svc.Get(r.Context(), actor, id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDetailResponse(detail))
}

type updateEventRequest struct {
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	BudgetEstimated *int64     `json:"budget_estimated,omitempty"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	actor, _ := session.Actor(r.Context())

	var req updateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Update(r.Context(), actor, id, event.UpdateParams{
		Title:           req.Title,
		Description:     req.Description,
		BudgetEstimated: req.BudgetEstimated,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	actor, _ := session.Actor(r.Context())

	if err := h.svc.Delete(r.Context(), actor, id); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	actor, _ := session.Actor(r.Context())

	e, err := h.svc.Submit(r.Context(), actor, id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}

type approvalRequest struct {
	Approve bool   `json:"approve"`
	Notes   string `json:"notes,omitempty"`
}

func (h *Handler) resolveApproval(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	actor, _ := session.Actor(r.Context())

	var req approvalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.ResolveApproval(r.Context(), actor, id, event.ApprovalDecision{
		Approve: req.Approve,
		Notes:   req.Notes,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}

type expenseItemRequest struct {
	Title      string `json:"title"`
	Amount     int64  `json:"amount"`
	ProofImage string `json:"proof_image,omitempty"`
}

type expenseReportRequest struct {
	Items       []expenseItemRequest `json:"items"`
	Leftover    int64                `json:"leftover"`
	ReceiptURLs []string             `json:"receipt_urls,omitempty"`
}

func (h *Handler) reportExpenses(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	actor, _ := session.Actor(r.Context())

	var req expenseReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	items := make([]event.ExpenseItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = event.ExpenseItem{Title: item.Title, Amount: item.Amount, ProofImage: item.ProofImage}
	}

	e, err := h.svc.SubmitExpenseReport(r.Context(), actor, id, event.ExpenseReportParams{
		Items:       items,
		Leftover:    req.Leftover,
		ReceiptURLs: req.ReceiptURLs,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}

type extendRequest struct {
	EndDate time.Time `json:"end_date"`
}

func (h *Handler) extend(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	actor, _ := session.Actor(r.Context())

	var req extendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.ExtendDate(r.Context(), actor, id, req.EndDate)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}

func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	actor, _ := session.Actor(r.Context())

	e, err := h.svc.Complete(r.Context(), actor, id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}

type settleRequest struct {
	ResultDescription string   `json:"result_description"`
	PhotoURLs         []string `json:"photo_urls,omitempty"`
}

func (h *Handler) settle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	actor, _ := session.Actor(r.Context())

	var req settleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Settle(r.Context(), actor, id, event.SettleParams{
		ResultDescription: req.ResultDescription,
		PhotoURLs:         req.PhotoURLs,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}

type cancelRequest struct {
	Reason string `json:"reason,omitempty"`
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	actor, _ := session.Actor(r.Context())

	// Empty body means cancel without a reason.
	var req cancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Cancel(r.Context(), actor, id, req.Reason)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}
