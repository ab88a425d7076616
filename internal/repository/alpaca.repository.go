package repository

import (
	"fmt"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
)

// AlpacaRepository is the source of the live aggregate account value used
// to estimate today's not-yet-closed point. read-only - no orders are ever
// placed from this app.
type AlpacaRepository interface {
	GetLiveEquity() (float64, error)
	IsMarketOpen() (bool, error)
}

func NewAlpacaRepository(apiKey, apiSecret string, endpoint string) AlpacaRepository {
	client := alpaca.NewClient(alpaca.ClientOpts{
		APIKey:     apiKey,
		APISecret:  apiSecret,
		BaseURL:    endpoint,
		RetryLimit: 3,
	})

	return &alpacaRepositoryHandler{
		Client: client,
	}
}

type alpacaRepositoryHandler struct {
	Client *alpaca.Client
}

func (h alpacaRepositoryHandler) GetLiveEquity() (float64, error) {
	acct, err := h.Client.GetAccount()
	if err != nil {
		return 0, fmt.Errorf("failed to get account: %w", err)
	}
	return acct.Equity.InexactFloat64(), nil
}

func (h alpacaRepositoryHandler) IsMarketOpen() (bool, error) {
	clock, err := h.Client.GetClock()
	if err != nil {
		return false, err
	}
	return clock.IsOpen, nil
}
