package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/prasetyo/kasrt/internal/auth"
	"github.com/prasetyo/kasrt/internal/config"
	"github.com/prasetyo/kasrt/internal/database"
	"github.com/prasetyo/kasrt/internal/dues"
	duesStore "github.com/prasetyo/kasrt/internal/dues/store"
	"github.com/prasetyo/kasrt/internal/event"
	eventStore "github.com/prasetyo/kasrt/internal/event/store"
	"github.com/prasetyo/kasrt/internal/export"
	"github.com/prasetyo/kasrt/internal/fundreq"
	fundreqStore "github.com/prasetyo/kasrt/internal/fundreq/store"
	"github.com/prasetyo/kasrt/internal/group"
	groupStore "github.com/prasetyo/kasrt/internal/group/store"
	kasrtHttp "github.com/prasetyo/kasrt/internal/http"
	accountHandler "github.com/prasetyo/kasrt/internal/http/account"
	eventHandler "github.com/prasetyo/kasrt/internal/http/event"
	exportHandler "github.com/prasetyo/kasrt/internal/http/export"
	financeHandler "github.com/prasetyo/kasrt/internal/http/finance"
	fundreqHandler "github.com/prasetyo/kasrt/internal/http/fundrequest"
	groupHandler "github.com/prasetyo/kasrt/internal/http/group"
	"github.com/prasetyo/kasrt/internal/ledger"
	ledgerStore "github.com/prasetyo/kasrt/internal/ledger/store"
	"github.com/prasetyo/kasrt/internal/logging"
	"github.com/prasetyo/kasrt/internal/scheduler"
)

func main() {
	_ = godotenv.Load()

	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var (
		groupService   = group.NewService(groupStore.New(db))
		ledgerService  = ledger.NewService(ledgerStore.New(db))
		duesService    = dues.NewService(duesStore.New(db))
		eventService   = event.NewService(eventStore.New(db), groupService)
		fundreqService = fundreq.NewService(fundreqStore.New(db), cfg.Escalation.MinEventBudget)
		exportService  = export.NewService(groupService, ledgerService)
	)

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenDuration)
	authService := auth.NewService(groupService, tokens)

	sweeper := scheduler.New(eventService, cfg.Scheduler.SweepInterval)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go sweeper.Run(ctx)

	var (
		accountH = accountHandler.NewHandler(authService)
		groupH   = groupHandler.NewHandler(groupService)
		eventH   = eventHandler.NewHandler(eventService)
		financeH = financeHandler.NewHandler(ledgerService, duesService)
		fundreqH = fundreqHandler.NewHandler(fundreqService)
		reportsH = exportHandler.NewHandler(exportService)
	)

	router := kasrtHttp.New(accountH, groupH, eventH, financeH, fundreqH, reportsH, sweeper, tokens)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
