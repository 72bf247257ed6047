package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/npatil9/expense_tracker_app/internal/core/domain"
	portssvc "github.com/npatil9/expense_tracker_app/internal/core/ports/services"
	"github.com/npatil9/expense_tracker_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RatesServiceTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (suite *RatesServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
}

func (suite *RatesServiceTestSuite) newService(handler http.HandlerFunc) (portssvc.RatesSvcFacade, *httptest.Server) {
	server := httptest.NewServer(handler)
	suite.T().Cleanup(server.Close)
	return services.NewRatesService(server.URL, "USD", 2*time.Second), server
}

func (suite *RatesServiceTestSuite) TestStartsInLoadingStateWithFallbackTable() {
	service, _ := suite.newService(func(w http.ResponseWriter, r *http.Request) {})

	table, base, source := service.Snapshot()
	suite.Equal(domain.RateSourceLoading, source)
	suite.Equal("USD", base)
	suite.True(table["EUR"].Equal(decimal.RequireFromString("0.85")))
}

func (suite *RatesServiceTestSuite) TestRefresh_LiveRates() {
	service, _ := suite.newService(func(w http.ResponseWriter, r *http.Request) {
		suite.Equal("/latest", r.URL.Path)
		suite.Equal("USD", r.URL.Query().Get("base"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"rates":{"USD":1,"EUR":0.92,"GBP":0.79,"JPY":148.5,"INR":83.1}}`))
	})

	service.Refresh(suite.ctx)

	table, _, source := service.Snapshot()
	suite.Equal(domain.RateSourceLive, source)
	suite.True(table["EUR"].Equal(decimal.RequireFromString("0.92")))

	// 100 USD at the live rate.
	result := service.Convert(decimal.NewFromInt(100), "USD", "EUR")
	suite.True(result.Equal(decimal.NewFromInt(92)), "got %s", result)
}

func (suite *RatesServiceTestSuite) TestRefresh_ServerErrorFallsBack() {
	service, _ := suite.newService(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	service.Refresh(suite.ctx)

	_, _, source := service.Snapshot()
	suite.Equal(domain.RateSourceFallback, source)

	result := service.Convert(decimal.NewFromInt(100), "USD", "EUR")
	suite.True(result.Equal(decimal.NewFromInt(85)), "got %s", result)
}

func (suite *RatesServiceTestSuite) TestRefresh_MalformedBodyFallsBack() {
	service, _ := suite.newService(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rates":`))
	})

	service.Refresh(suite.ctx)

	_, _, source := service.Snapshot()
	suite.Equal(domain.RateSourceFallback, source)
}

func (suite *RatesServiceTestSuite) TestRefresh_MissingSupportedCodeFallsBack() {
	service, _ := suite.newService(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rates":{"EUR":0.92,"GBP":0.79}}`))
	})

	service.Refresh(suite.ctx)

	_, _, source := service.Snapshot()
	suite.Equal(domain.RateSourceFallback, source)
}

func (suite *RatesServiceTestSuite) TestRefresh_NonPositiveRateFallsBack() {
	service, _ := suite.newService(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rates":{"EUR":0,"GBP":0.79,"JPY":148.5,"INR":83.1}}`))
	})

	service.Refresh(suite.ctx)

	_, _, source := service.Snapshot()
	suite.Equal(domain.RateSourceFallback, source)
}

func (suite *RatesServiceTestSuite) TestConvert_SameCodeIsIdentity() {
	service, _ := suite.newService(func(w http.ResponseWriter, r *http.Request) {})

	amount := decimal.RequireFromString("123.456")
	result := service.Convert(amount, "USD", "USD")
	suite.True(result.Equal(amount))
}

func (suite *RatesServiceTestSuite) TestConvert_UnknownCodeLeavesAmountUnchanged() {
	service, _ := suite.newService(func(w http.ResponseWriter, r *http.Request) {})

	amount := decimal.NewFromInt(50)
	suite.True(service.Convert(amount, "USD", "CHF").Equal(amount))
	suite.True(service.Convert(amount, "CHF", "USD").Equal(amount))
}

func (suite *RatesServiceTestSuite) TestConvert_CrossRateRounding() {
	service, _ := suite.newService(func(w http.ResponseWriter, r *http.Request) {})

	// Via the fallback table: 100 EUR -> USD -> GBP = 100 / 0.85 * 0.73.
	result := service.Convert(decimal.NewFromInt(100), "EUR", "GBP")
	suite.True(result.Equal(decimal.RequireFromString("85.88")), "got %s", result)
}

func TestRatesServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RatesServiceTestSuite))
}
