package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/npatil9/expense_tracker_app/internal/core/domain"
	portssvc "github.com/npatil9/expense_tracker_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ratesService holds the session rate table. It starts in the loading state,
// performs a single fetch, and then serves either the live table or the
// static fallback for the rest of the process lifetime.
type ratesService struct {
	BaseService
	client  *http.Client
	baseURL string
	base    string

	mu     sync.RWMutex
	table  domain.RateTable
	source domain.RateSource
}

// RatesServiceOption is a functional option for configuring the rates service
type RatesServiceOption func(*ratesService)

// WithRatesHTTPClient overrides the HTTP client used for the rate fetch.
func WithRatesHTTPClient(client *http.Client) RatesServiceOption {
	return func(s *ratesService) {
		s.client = client
	}
}

// NewRatesService creates a new rates service fetching from baseURL with
// rates expressed relative to the base currency code.
func NewRatesService(baseURL, base string, fetchTimeout time.Duration, options ...RatesServiceOption) portssvc.RatesSvcFacade {
	svc := &ratesService{
		client:  &http.Client{Timeout: fetchTimeout},
		baseURL: baseURL,
		base:    base,
		table:   domain.FallbackRates(),
		source:  domain.RateSourceLoading,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RatesSvcFacade = (*ratesService)(nil)

// latestRatesPayload mirrors the provider's /latest response shape.
type latestRatesPayload struct {
	Rates map[string]decimal.Decimal `json:"rates"`
}

// Refresh performs the one-shot rate fetch. Until it completes, conversions
// run against the fallback table in the loading state.
func (s *ratesService) Refresh(ctx context.Context) {
	table, err := s.fetch(ctx)
	if err != nil {
		s.LogInfo(ctx, "Rate fetch failed, using fallback rates", slog.String("error", err.Error()))
		s.install(domain.FallbackRates(), domain.RateSourceFallback)
		return
	}

	s.LogInfo(ctx, "Live exchange rates loaded", slog.Int("count", len(table)))
	s.install(table, domain.RateSourceLive)
}

func (s *ratesService) fetch(ctx context.Context) (domain.RateTable, error) {
	endpoint := fmt.Sprintf("%s/latest?base=%s", s.baseURL, url.QueryEscape(s.base))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rates request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rates request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates request returned status %d", resp.StatusCode)
	}

	var payload latestRatesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode rates response: %w", err)
	}
	if len(payload.Rates) == 0 {
		return nil, fmt.Errorf("rates response contained no rates")
	}

	// Every supported code must be present with a positive rate, otherwise
	// conversions through the table would silently corrupt amounts.
	table := make(domain.RateTable, len(payload.Rates))
	for code, rate := range payload.Rates {
		table[code] = rate
	}
	table[s.base] = decimal.NewFromInt(1)
	for _, currency := range domain.SupportedCurrencies() {
		rate, ok := table[currency.Code]
		if !ok || !rate.IsPositive() {
			return nil, fmt.Errorf("rates response missing usable rate for %s", currency.Code)
		}
	}
	return table, nil
}

func (s *ratesService) install(table domain.RateTable, source domain.RateSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = table
	s.source = source
}

// Convert converts an amount between two currency codes by routing through
// the base currency, rounding the result to two decimal places. A code
// absent from the table leaves the amount unchanged.
func (s *ratesService) Convert(amount decimal.Decimal, fromCode, toCode string) decimal.Decimal {
	if fromCode == toCode {
		return amount
	}

	s.mu.RLock()
	fromRate, fromOK := s.table[fromCode]
	toRate, toOK := s.table[toCode]
	s.mu.RUnlock()

	if !fromOK || !toOK || fromRate.IsZero() {
		return amount
	}
	return amount.Div(fromRate).Mul(toRate).Round(2)
}

// Snapshot returns a copy of the current table with its base and source.
func (s *ratesService) Snapshot() (domain.RateTable, string, domain.RateSource) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Clone(), s.base, s.source
}
