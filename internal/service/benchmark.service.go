package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"portfoliodash/internal/calculator"
	"portfoliodash/internal/domain"
	"portfoliodash/internal/logger"
	"portfoliodash/internal/repository"
	"portfoliodash/internal/util"
)

type GetOverlaysInput struct {
	Symbols []string
	// the primary window the chart is showing - overlays align to these dates
	Primary []domain.DailySnapshot
	// extend each benchmark with an intraday estimate from its live quote
	IncludeLive bool
}

type BenchmarkService interface {
	GetOverlays(ctx context.Context, in GetOverlaysInput) ([]domain.OverlaySeries, error)
}

func NewBenchmarkService(
	benchmarkRepository repository.BenchmarkRepository,
	liveQuoteRepository repository.LiveQuoteRepository,
	notificationService NotificationService,
) BenchmarkService {
	return benchmarkServiceHandler{
		BenchmarkRepository: benchmarkRepository,
		LiveQuoteRepository: liveQuoteRepository,
		NotificationService: notificationService,
	}
}

type benchmarkServiceHandler struct {
	BenchmarkRepository repository.BenchmarkRepository
	LiveQuoteRepository repository.LiveQuoteRepository
	// optional - nil means nobody is listening
	NotificationService NotificationService
}

// GetOverlays fetches and rebases each requested benchmark concurrently.
// one benchmark failing drops that one overlay - the rest of the batch
// still comes back.
func (h benchmarkServiceHandler) GetOverlays(ctx context.Context, in GetOverlaysInput) ([]domain.OverlaySeries, error) {
	log := logger.FromContext(ctx)

	type workResult struct {
		symbol  string
		overlay *domain.OverlaySeries
		err     error
	}

	inputCh := make(chan string, len(in.Symbols))
	resultCh := make(chan workResult, len(in.Symbols))
	numGoroutines := 4
	var wg sync.WaitGroup
	for _, symbol := range in.Symbols {
		wg.Add(1)
		inputCh <- symbol
	}
	close(inputCh)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					// drain so wg.Wait can release the collector below
					for range inputCh {
						wg.Done()
					}
					return
				case symbol, ok := <-inputCh:
					if !ok {
						return
					}
					overlay, err := h.loadOverlay(symbol, in)
					resultCh <- workResult{
						symbol:  symbol,
						overlay: overlay,
						err:     err,
					}
					wg.Done()
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	overlaysBySymbol := map[string]domain.OverlaySeries{}
	for res := range resultCh {
		if res.err != nil {
			// isolated - drop this overlay, keep its siblings
			log.Warnf("dropping benchmark %s from overlay set: %v", res.symbol, res.err)
			if h.NotificationService != nil {
				h.NotificationService.Publish(NotificationLevel_Warn,
					fmt.Sprintf("benchmark %s unavailable", res.symbol))
			}
			continue
		}
		overlaysBySymbol[res.symbol] = *res.overlay
	}

	out := []domain.OverlaySeries{}
	for _, symbol := range in.Symbols {
		if overlay, ok := overlaysBySymbol[symbol]; ok {
			out = append(out, overlay)
		}
	}

	return out, nil
}

func (h benchmarkServiceHandler) loadOverlay(symbol string, in GetOverlaysInput) (*domain.OverlaySeries, error) {
	var start, end *time.Time
	if len(in.Primary) > 0 {
		start = &in.Primary[0].Date
		end = &in.Primary[len(in.Primary)-1].Date
	}

	points, err := h.BenchmarkRepository.List(symbol, start, end)
	if err != nil {
		return nil, err
	}
	points = calculator.FilterBenchmarkTradingDays(points)

	if in.IncludeLive && len(points) > 0 {
		points = h.appendLivePoint(symbol, points)
	}

	overlay := calculator.Rebase(points, in.Primary, symbol)
	return &overlay, nil
}

// appendLivePoint extends a stored benchmark series with today's estimate,
// compounding the last close's cumulative return with the quote's intraday
// change. quote failures are non-fatal - the stored series stands alone.
func (h benchmarkServiceHandler) appendLivePoint(symbol string, points []domain.BenchmarkPoint) []domain.BenchmarkPoint {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	last := points[len(points)-1]
	if util.SameDay(last.Date, today) || isWeekendDay(today) {
		return points
	}

	q, err := h.LiveQuoteRepository.Get(symbol)
	if err != nil {
		return points
	}

	liveReturn := ((1+last.ReturnPct/100)*(1+q.DayChangePct/100) - 1) * 100
	return append(points, domain.BenchmarkPoint{
		Date:      today,
		ReturnPct: liveReturn,
		MwrPct:    last.MwrPct,
	})
}

func isWeekendDay(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}
