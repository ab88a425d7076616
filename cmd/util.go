package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"portfoliodash/api"
	"portfoliodash/internal"
	"portfoliodash/internal/repository"
	"portfoliodash/internal/service"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	snapshotRepository := repository.NewSnapshotRepository(dbConn)
	benchmarkRepository := repository.NewBenchmarkRepository(dbConn)
	tradeCandidateRepository := repository.NewTradeCandidateRepository(dbConn)
	liveQuoteRepository := repository.NewLiveQuoteRepository()
	alpacaRepository := repository.NewAlpacaRepository(secrets.Alpaca.ApiKey, secrets.Alpaca.ApiSecret, secrets.Alpaca.BaseUrl)

	notificationService := service.NewNotificationService()
	chartService := service.NewChartService(snapshotRepository, alpacaRepository, notificationService)
	benchmarkService := service.NewBenchmarkService(benchmarkRepository, liveQuoteRepository, notificationService)
	tradePreviewService := service.NewTradePreviewService(tradeCandidateRepository, snapshotRepository)

	return &api.ApiHandler{
		Db:                   dbConn,
		ChartService:         chartService,
		BenchmarkService:     benchmarkService,
		TradePreviewService:  tradePreviewService,
		AlpacaRepository:     alpacaRepository,
		ApiRequestRepository: repository.ApiRequestRepositoryHandler{},
	}, nil
}
