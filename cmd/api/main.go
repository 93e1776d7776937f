package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/fundraise/internal/config"
	"github.com/MrJamesThe3rd/fundraise/internal/database"
	"github.com/MrJamesThe3rd/fundraise/internal/donation"
	donationStore "github.com/MrJamesThe3rd/fundraise/internal/donation/store"
	"github.com/MrJamesThe3rd/fundraise/internal/fund"
	fundStore "github.com/MrJamesThe3rd/fundraise/internal/fund/store"
	fundraiseHttp "github.com/MrJamesThe3rd/fundraise/internal/http"
	donationHandler "github.com/MrJamesThe3rd/fundraise/internal/http/donation"
	fundHandler "github.com/MrJamesThe3rd/fundraise/internal/http/fund"
	"github.com/MrJamesThe3rd/fundraise/internal/ledger"
	ledgerStore "github.com/MrJamesThe3rd/fundraise/internal/ledger/store"
	"github.com/MrJamesThe3rd/fundraise/internal/query"
)

func main() {
	_ = godotenv.Load()

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

	var (
		fundService     = fund.NewService(fundStore.New(db))
		donationService = donation.NewService(donationStore.New(db))
		ledgerService   = ledger.NewService(ledgerStore.New(db))
		queryService    = query.NewService(fundService, donationService)
	)

	var (
		fundH     = fundHandler.NewHandler(fundService, ledgerService, queryService)
		donationH = donationHandler.NewHandler(ledgerService, queryService)
	)

	router := fundraiseHttp.New(fundH, donationH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
