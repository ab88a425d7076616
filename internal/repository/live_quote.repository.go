package repository

import (
	"fmt"

	"github.com/piquette/finance-go/quote"
)

type LiveQuote struct {
	Symbol string
	Price  float64
	// percent change vs the prior close, used to extend a stored benchmark
	// series with an intraday estimate
	DayChangePct float64
}

type LiveQuoteRepository interface {
	Get(symbol string) (*LiveQuote, error)
}

func NewLiveQuoteRepository() LiveQuoteRepository {
	return liveQuoteRepositoryHandler{}
}

type liveQuoteRepositoryHandler struct{}

func (h liveQuoteRepositoryHandler) Get(symbol string) (*LiveQuote, error) {
	q, err := quote.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}
	if q == nil {
		return nil, fmt.Errorf("failed to get quote for %s: empty response", symbol)
	}

	return &LiveQuote{
		Symbol:       symbol,
		Price:        q.RegularMarketPrice,
		DayChangePct: q.RegularMarketChangePercent,
	}, nil
}
