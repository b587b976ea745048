package group

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/prasetyo/kasrt/internal/group"
	"github.com/prasetyo/kasrt/internal/http/respond"
	"github.com/prasetyo/kasrt/internal/http/session"
)

type Handler struct {
	svc *group.Service
}

func NewHandler(svc *group.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Get("/{id}/children", h.children)
	r.Get("/{id}/treasurer", h.treasurer)
	r.Put("/{id}/dues-rule", h.setDuesRule)
	r.Patch("/users/{userID}/role", h.changeRole)
}

type createGroupRequest struct {
	Type     group.Type `json:"type"`
	Name     string     `json:"name"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}

type groupResponse struct {
	ID        uuid.UUID  `json:"id"`
	Type      group.Type `json:"type"`
	Name      string     `json:"name"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func toResponse(g *group.Group) groupResponse {
	return groupResponse{
		ID:        g.ID,
		Type:      g.Type,
		Name:      g.Name,
		ParentID:  g.ParentID,
		CreatedAt: g.CreatedAt,
	}
}

func toResponseList(groups []*group.Group) []groupResponse {
	resp := make([]groupResponse, len(groups))
	for i, g := range groups {
		resp[i] = toResponse(g)
	}

	return resp
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g, err := h.svc.CreateGroup(r.Context(), group.CreateGroupParams{
		Type:     req.Type,
		Name:     req.Name,
		ParentID: req.ParentID,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(g))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(groups))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	g, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(g))
}

func (h *Handler) children(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	groups, err := h.svc.Children(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(groups))
}

type treasurerResponse struct {
	Source      group.TreasurerSource `json:"source"`
	TreasurerID *uuid.UUID            `json:"treasurer_id,omitempty"`
	Name        string                `json:"name,omitempty"`
}

func (h *Handler) treasurer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	lookup, err := h.svc.FindActingTreasurer(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := treasurerResponse{Source: lookup.Source}
	if lookup.Treasurer != nil {
		resp.TreasurerID = &lookup.Treasurer.ID
		resp.Name = lookup.Treasurer.Name
	}

	respond.JSON(w, http.StatusOK, resp)
}

type setDuesRuleRequest struct {
	Amount   int64 `json:"amount"`
	DueDay   int   `json:"due_day"`
	IsActive bool  `json:"is_active"`
}

type duesRuleResponse struct {
	ID       uuid.UUID `json:"id"`
	GroupID  uuid.UUID `json:"group_id"`
	Amount   int64     `json:"amount"`
	DueDay   int       `json:"due_day"`
	IsActive bool      `json:"is_active"`
}

func (h *Handler) setDuesRule(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	actor, _ := session.Actor(r.Context())

	var req setDuesRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rule, err := h.svc.SetDuesRule(r.Context(), actor, group.SetDuesRuleParams{
		GroupID:  id,
		Amount:   req.Amount,
		DueDay:   req.DueDay,
		IsActive: req.IsActive,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, duesRuleResponse{
		ID:       rule.ID,
		GroupID:  rule.GroupID,
		Amount:   rule.Amount,
		DueDay:   rule.DueDay,
		IsActive: rule.IsActive,
	})
}

type changeRoleRequest struct {
	Role group.Role `json:"role"`
}

func (h *Handler) changeRole(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	actor, _ := session.Actor(r.Context())
	if !actor.Role.IsOfficer() {
		respond.Error(w, group.ErrForbidden)
		return
	}

	var req changeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.ChangeUserRole(r.Context(), userID, req.Role); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
