package account

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/prasetyo/kasrt/internal/auth"
	"github.com/prasetyo/kasrt/internal/group"
	"github.com/prasetyo/kasrt/internal/http/respond"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

type registerRequest struct {
	GroupID  uuid.UUID  `json:"group_id"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     group.Role `json:"role,omitempty"`
}

type userResponse struct {
	ID             uuid.UUID  `json:"id"`
	GroupID        uuid.UUID  `json:"group_id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Role           group.Role `json:"role"`
	LastPaidPeriod *time.Time `json:"last_paid_period,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func toUserResponse(u *group.User) userResponse {
	return userResponse{
		ID:             u.ID,
		GroupID:        u.GroupID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		LastPaidPeriod: u.LastPaidPeriod,
		CreatedAt:      u.CreatedAt,
	}
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	role := req.Role
	if role == "" {
		role = group.RoleResident
	}

	u, err := h.svc.Register(r.Context(), group.RegisterUserParams{
		GroupID: req.GroupID,
		Name:    req.Name,
		Email:   req.Email,
		Role:    role,
	}, req.Password)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toUserResponse(u))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, loginResponse{Token: token, User: toUserResponse(u)})
}
