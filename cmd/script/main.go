package main

import (
	"context"
	"fmt"
	"log"

	"portfoliodash/cmd"
	"portfoliodash/internal/calculator"
	"portfoliodash/internal/domain"
	"portfoliodash/internal/logger"
	"portfoliodash/internal/service"

	_ "github.com/lib/pq"
)

// one-shot summary printout for checking numbers against the dashboard
func main() {
	handler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(handler)

	ctx := logger.AddToContext(context.Background(), logger.New())

	metrics, err := handler.ChartService.GetSummary(ctx, service.GetChartInput{
		Mode:   domain.ChartMode_Twr,
		Period: domain.ChartPeriod_All,
	}, calculator.WinRatePolicy_AllDays)
	if err != nil {
		log.Fatal(err)
	}

	for _, key := range domain.AllMetricKeys() {
		formatted, err := key.Format(*metrics)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%-22s %s\n", key, formatted)
	}
}
