package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/prasetyo/kasrt/internal/auth"
	"github.com/prasetyo/kasrt/internal/group"
	"github.com/prasetyo/kasrt/internal/http/account"
	eventhttp "github.com/prasetyo/kasrt/internal/http/event"
	exporthttp "github.com/prasetyo/kasrt/internal/http/export"
	"github.com/prasetyo/kasrt/internal/http/finance"
	"github.com/prasetyo/kasrt/internal/http/fundrequest"
	grouphttp "github.com/prasetyo/kasrt/internal/http/group"
	"github.com/prasetyo/kasrt/internal/http/respond"
	"github.com/prasetyo/kasrt/internal/http/session"
	"github.com/prasetyo/kasrt/internal/scheduler"
)

func New(
	accountV1 *account.Handler,
	groupsV1 *grouphttp.Handler,
	eventsV1 *eventhttp.Handler,
	financeV1 *finance.Handler,
	fundRequestsV1 *fundrequest.Handler,
	reportsV1 *exporthttp.Handler,
	sweeper *scheduler.Scheduler,
	tokens *auth.JWTManager,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(instrument)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			accountV1.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(session.RequireAuth(tokens))

			r.Route("/groups", groupsV1.Routes)
			r.Route("/events", eventsV1.Routes)
			r.Route("/finance", financeV1.Routes)
			r.Route("/fund-requests", fundRequestsV1.Routes)
			r.Route("/reports", reportsV1.Routes)

			// Manual trigger for the expiry sweep, restricted to officers.
			r.Post("/admin/sweep", func(w http.ResponseWriter, r *http.Request) {
				actor, _ := session.Actor(r.Context())
				if !actor.Role.IsOfficer() {
					respond.Error(w, group.ErrForbidden)
					return
				}

				result, err := sweeper.Trigger(r.Context())
				if err != nil {
					respond.Error(w, err)
					return
				}

				respond.JSON(w, http.StatusOK, map[string]int{
					"completed": result.Completed,
					"cancelled": result.Cancelled,
					"failed":    result.Failed,
				})
			})
		})
	})

	return router
}
