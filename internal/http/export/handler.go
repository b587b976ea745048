package export

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/prasetyo/kasrt/internal/export"
	"github.com/prasetyo/kasrt/internal/http/respond"
	"github.com/prasetyo/kasrt/internal/http/session"
	"github.com/prasetyo/kasrt/internal/ledger"
)

// Handler serves ledger statements as JSON or as a downloadable CSV.
type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.statement)
	r.Post("/download", h.download)
}

type statementRequest struct {
	GroupID   uuid.UUID  `json:"group_id"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

type entryResponse struct {
	ID              uuid.UUID        `json:"id"`
	Amount          int64            `json:"amount"`
	Type            ledger.EntryType `json:"type"`
	Description     string           `json:"description"`
	ContributionRef *string          `json:"contribution_ref,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

type statementResponse struct {
	GroupID     uuid.UUID       `json:"group_id"`
	GroupName   string          `json:"group_name"`
	Entries     []entryResponse `json:"entries"`
	TotalCredit int64           `json:"total_credit"`
	TotalDebit  int64           `json:"total_debit"`
	Balance     int64           `json:"balance"`
	Summary     string          `json:"summary"`
	GeneratedAt time.Time       `json:"generated_at"`
}

func (h *Handler) build(w http.ResponseWriter, r *http.Request) (*export.Statement, bool) {
	actor, _ := session.Actor(r.Context())

	var req statementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	st, err := h.svc.Statement(r.Context(), actor, req.GroupID, ledger.ListFilter{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		respond.Error(w, err)
		return nil, false
	}

	return st, true
}

func (h *Handler) statement(w http.ResponseWriter, r *http.Request) {
	st, ok := h.build(w, r)
	if !ok {
		return
	}

	entries := make([]entryResponse, len(st.Entries))
	for i, e := range st.Entries {
		entries[i] = entryResponse{
			ID:              e.ID,
			Amount:          e.Amount,
			Type:            e.Type,
			Description:     e.Description,
			ContributionRef: e.ContributionRef,
			CreatedAt:       e.CreatedAt,
		}
	}

	respond.JSON(w, http.StatusOK, statementResponse{
		GroupID:     st.Group.ID,
		GroupName:   st.Group.Name,
		Entries:     entries,
		TotalCredit: st.TotalCredit,
		TotalDebit:  st.TotalDebit,
		Balance:     st.Balance,
		Summary:     h.svc.Summary(st),
		GeneratedAt: st.GeneratedAt,
	})
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	st, ok := h.build(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"kas_%s.csv\"", st.GeneratedAt.Format("20060102")))

	if err := h.svc.WriteCSV(w, st); err != nil {
		slog.Error("failed to write statement csv", "error", err)
	}
}
