// Package respond centralizes JSON writing and the mapping from domain
// sentinel errors to HTTP status codes, so handlers stay thin.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prasetyo/kasrt/internal/auth"
	"github.com/prasetyo/kasrt/internal/dues"
	"github.com/prasetyo/kasrt/internal/event"
	"github.com/prasetyo/kasrt/internal/fundreq"
	"github.com/prasetyo/kasrt/internal/group"
	"github.com/prasetyo/kasrt/internal/ledger"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// Error translates a domain error into an HTTP status. Unknown errors become
// a generic 500 so internals do not leak.
func Error(w http.ResponseWriter, err error) {
	status := statusFor(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err)

		msg = "internal error"
	}

	JSON(w, status, errorResponse{Error: msg})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, group.ErrNotFound),
		errors.Is(err, event.ErrNotFound),
		errors.Is(err, ledger.ErrNotFound),
		errors.Is(err, fundreq.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, group.ErrForbidden),
		errors.Is(err, event.ErrForbidden),
		errors.Is(err, fundreq.ErrForbidden):
		return http.StatusForbidden

	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	case errors.Is(err, event.ErrInvalidTransition),
		errors.Is(err, event.ErrNoPendingApproval),
		errors.Is(err, group.ErrTreasurerExists),
		errors.Is(err, group.ErrNoTreasurer),
		errors.Is(err, fundreq.ErrDuplicatePending),
		errors.Is(err, fundreq.ErrAlreadyResolved),
		errors.Is(err, auth.ErrEmailExists):
		return http.StatusConflict

	case errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, ledger.ErrNonPositiveAmount),
		errors.Is(err, dues.ErrNonPositiveAmount),
		errors.Is(err, event.ErrBudgetMismatch),
		errors.Is(err, event.ErrNoticeRequired),
		errors.Is(err, fundreq.ErrBelowThreshold),
		errors.Is(err, fundreq.ErrNoParentGroup),
		errors.Is(err, fundreq.ErrReasonRequired),
		errors.Is(err, auth.ErrWeakPassword):
		return http.StatusUnprocessableEntity

	default:
		return http.StatusInternalServerError
	}
}
