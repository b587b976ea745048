package finance

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/prasetyo/kasrt/internal/dues"
	"github.com/prasetyo/kasrt/internal/group"
	"github.com/prasetyo/kasrt/internal/http/respond"
	"github.com/prasetyo/kasrt/internal/http/session"
	"github.com/prasetyo/kasrt/internal/ledger"
)

// Handler exposes wallet balances, ledger history, and the dues engine.
type Handler struct {
	ledger *ledger.Service
	dues   *dues.Service
}

func NewHandler(ledgerSvc *ledger.Service, duesSvc *dues.Service) *Handler {
	return &Handler{ledger: ledgerSvc, dues: duesSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/groups/{id}/wallet", h.wallet)
	r.Get("/groups/{id}/entries", h.entries)
	r.Post("/groups/{id}/credit", h.credit)
	r.Post("/groups/{id}/debit", h.debit)
	r.Post("/transfers", h.transfer)
	r.Get("/dues/bill/{userID}", h.bill)
	r.Post("/dues/contributions", h.contribute)
}

type walletResponse struct {
	ID        uuid.UUID `json:"id"`
	GroupID   uuid.UUID `json:"group_id"`
	Balance   int64     `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *Handler) wallet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	actor, _ := session.Actor(r.Context())
	if err := guardGroupMember(actor, id); err != nil {
		respond.Error(w, err)
		return
	}

	wallet, err := h.ledger.Wallet(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, walletResponse{
		ID:        wallet.ID,
		GroupID:   wallet.GroupID,
		Balance:   wallet.Balance,
		UpdatedAt: wallet.UpdatedAt,
	})
}

type entryResponse struct {
	ID              uuid.UUID        `json:"id"`
	Amount          int64            `json:"amount"`
	Type            ledger.EntryType `json:"type"`
	Description     string           `json:"description"`
	EventID         *uuid.UUID       `json:"event_id,omitempty"`
	ContributionRef *string          `json:"contribution_ref,omitempty"`
	CreatedBy       *uuid.UUID       `json:"created_by,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

func toEntryResponse(e *ledger.Entry) entryResponse {
	return entryResponse{
		ID:              e.ID,
		Amount:          e.Amount,
		Type:            e.Type,
		Description:     e.Description,
		EventID:         e.EventID,
		ContributionRef: e.ContributionRef,
		CreatedBy:       e.CreatedBy,
		CreatedAt:       e.CreatedAt,
	}
}

func (h *Handler) entries(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	actor, _ := session.Actor(r.Context())
	if err := guardGroupMember(actor, id); err != nil {
		respond.Error(w, err)
		return
	}

	filter := ledger.ListFilter{}

	if s := r.URL.Query().Get("type"); s != "" {
		t := ledger.EntryType(s)
		filter.Type = &t
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = &t
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = &t
		}
	}

	entries, err := h.ledger.Entries(r.Context(), id, filter)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toEntryResponse(e)
	}

	respond.JSON(w, http.StatusOK, resp)
}

type postEntryRequest struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

// guardGroupTreasurer limits manual wallet postings to the treasurer of the
// wallet's own group.
func guardGroupTreasurer(actor group.Actor, groupID uuid.UUID) error {
	if actor.Role != group.RoleTreasurer || actor.GroupID != groupID {
		return group.ErrForbidden
	}

	return nil
}

// guardGroupMember limits wallet reads to members of the group.
func guardGroupMember(actor group.Actor, groupID uuid.UUID) error {
	if actor.GroupID != groupID {
		return group.ErrForbidden
	}

	return nil
}

func (h *Handler) credit(w http.ResponseWriter, r *http.Request) {
	h.post(w, r, false)
}

func (h *Handler) debit(w http.ResponseWriter, r *http.Request) {
	h.post(w, r, true)
}

func (h *Handler) post(w http.ResponseWriter, r *http.Request, debit bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	actor, _ := session.Actor(r.Context())
	if err := guardGroupTreasurer(actor, id); err != nil {
		respond.Error(w, err)
		return
	}

	var req postEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := ledger.EntryParams{
		GroupID:     id,
		Amount:      req.Amount,
		Description: req.Description,
		CreatedBy:   &actor.ID,
	}

	var entry *ledger.Entry
	if debit {
		entry, err = h.ledger.Debit(r.Context(), params)
	} else {
		entry, err = h.ledger.Credit(r.Context(), params)
	}

	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toEntryResponse(entry))
}

type transferRequest struct {
	SourceGroupID uuid.UUID `json:"source_group_id"`
	TargetGroupID uuid.UUID `json:"target_group_id"`
	Amount        int64     `json:"amount"`
	Description   string    `json:"description"`
}

func (h *Handler) transfer(w http.ResponseWriter, r *http.Request) {
	actor, _ := session.Actor(r.Context())

	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := guardGroupTreasurer(actor, req.SourceGroupID); err != nil {
		respond.Error(w, err)
		return
	}

	if err := h.ledger.Transfer(r.Context(), ledger.TransferParams{
		SourceGroupID: req.SourceGroupID,
		TargetGroupID: req.TargetGroupID,
		Amount:        req.Amount,
		Description:   req.Description,
		CreatedBy:     &actor.ID,
	}); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type billLineResponse struct {
	Tier      group.Type `json:"tier"`
	GroupID   uuid.UUID  `json:"group_id"`
	GroupName string     `json:"group_name"`
	Amount    int64      `json:"amount"`
}

type billResponse struct {
	Total   int64              `json:"total"`
	Lines   []billLineResponse `json:"lines"`
	DueNote string             `json:"due_note"`
}

func (h *Handler) bill(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	bill, err := h.dues.ComputeBill(r.Context(), userID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := billResponse{Total: bill.Total, DueNote: bill.DueNote, Lines: make([]billLineResponse, len(bill.Lines))}
	for i, line := range bill.Lines {
		resp.Lines[i] = billLineResponse{
			Tier:      line.Tier,
			GroupID:   line.GroupID,
			GroupName: line.GroupName,
			Amount:    line.Amount,
		}
	}

	respond.JSON(w, http.StatusOK, resp)
}

type contributeRequest struct {
	UserID          uuid.UUID `json:"user_id"`
	AmountPaid      int64     `json:"amount_paid"`
	ContributionRef string    `json:"contribution_ref,omitempty"`
}

type contributeResponse struct {
	MonthsPaid       int        `json:"months_paid"`
	SubordinateShare int64      `json:"subordinate_share"`
	ParentShare      int64      `json:"parent_share"`
	Donation         int64      `json:"donation"`
	PaidUntil        *time.Time `json:"paid_until,omitempty"`
}

func (h *Handler) contribute(w http.ResponseWriter, r *http.Request) {
	actor, _ := session.Actor(r.Context())
	if !actor.Role.IsOfficer() {
		respond.Error(w, group.ErrForbidden)
		return
	}

	var req contributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dist, err := h.dues.DistributeContribution(r.Context(), dues.DistributeParams{
		UserID:          req.UserID,
		AmountPaid:      req.AmountPaid,
		ContributionRef: req.ContributionRef,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, contributeResponse{
		MonthsPaid:       dist.MonthsPaid,
		SubordinateShare: dist.SubordinateShare,
		ParentShare:      dist.ParentShare,
		Donation:         dist.Donation,
		PaidUntil:        dist.PaidUntil,
	})
}
