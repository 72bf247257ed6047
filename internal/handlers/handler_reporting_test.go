package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/npatil9/expense_tracker_app/internal/apperrors"
	"github.com/npatil9/expense_tracker_app/internal/core/domain"
	portssvc "github.com/npatil9/expense_tracker_app/internal/core/ports/services"
	"github.com/npatil9/expense_tracker_app/internal/dto"
	"github.com/npatil9/expense_tracker_app/internal/handlers"
	"github.com/npatil9/expense_tracker_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockExpenseService   *MockExpenseService
	mockReportingService *MockReportingService
	mockCurrencyService  *MockCurrencyService
	mockRatesService     *MockRatesService
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockExpenseService = new(MockExpenseService)
	suite.mockReportingService = new(MockReportingService)
	suite.mockCurrencyService = new(MockCurrencyService)
	suite.mockRatesService = new(MockRatesService)

	cfg := &config.Config{
		FrontendBaseURL: "http://localhost:3000",
		APIRateLimit:    "1000-S",
	}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Expense:   suite.mockExpenseService,
		Reporting: suite.mockReportingService,
		Currency:  suite.mockCurrencyService,
		Rates:     suite.mockRatesService,
	})
}

func (suite *ReportingHandlerTestSuite) perform(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReportingHandlerTestSuite) expectUSDActive() {
	usd, _ := domain.CurrencyByCode("USD")
	suite.mockCurrencyService.On("ActiveCurrency", mock.Anything).Return(&usd, nil)
}

// --- Report endpoints ---

func (suite *ReportingHandlerTestSuite) TestGetStats_EmptyStoreSentinels() {
	suite.expectUSDActive()
	suite.mockReportingService.On("Stats", mock.Anything).Return(&domain.Stats{
		MonthlyTotals:  map[string]decimal.Decimal{},
		CategoryTotals: map[string]decimal.Decimal{},
	}, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/reports/stats", nil)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.StatsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("N/A", body.HighestExpense.Description)
	suite.Equal("$0.00", body.HighestExpense.Formatted)
	suite.Equal("N/A", body.LowestExpense.Description)
	suite.Nil(body.TopCategory)
}

func (suite *ReportingHandlerTestSuite) TestGetStats_FormatsExtremes() {
	suite.expectUSDActive()
	highest := &domain.Expense{ID: 1, Description: "Rent", Amount: decimal.RequireFromString("1200.5"), Category: "bills", Date: domain.NewDate(2024, time.January, 1)}
	suite.mockReportingService.On("Stats", mock.Anything).Return(&domain.Stats{
		MonthlyTotals:  map[string]decimal.Decimal{"2024-01": decimal.RequireFromString("1200.5")},
		CategoryTotals: map[string]decimal.Decimal{"bills": decimal.RequireFromString("1200.5")},
		Highest:        highest,
		Lowest:         highest,
	}, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/reports/stats", nil)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.StatsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Rent", body.HighestExpense.Description)
	suite.Equal("$1200.50", body.HighestExpense.Formatted)
}

func (suite *ReportingHandlerTestSuite) TestGetTrend() {
	suite.mockReportingService.On("Trend", mock.Anything).Return([]domain.TrendPoint{
		{Month: "2024-01", Label: "Jan 2024", Amount: decimal.NewFromInt(100), RunningTotal: decimal.NewFromInt(100), Growth: decimal.Zero},
		{Month: "2024-02", Label: "Feb 2024", Amount: decimal.NewFromInt(150), RunningTotal: decimal.NewFromInt(250), Growth: decimal.NewFromInt(50)},
	}, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/reports/trend", nil)

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.TrendPointResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 2)
	suite.Equal("Feb 2024", body[1].Label)
	suite.True(body[1].RunningTotal.Equal(decimal.NewFromInt(250)))
}

func (suite *ReportingHandlerTestSuite) TestGetSummary() {
	suite.expectUSDActive()
	suite.mockReportingService.On("Stats", mock.Anything).Return(&domain.Stats{
		MonthlyTotals: map[string]decimal.Decimal{
			"2024-01": decimal.NewFromInt(100),
			"2024-02": decimal.NewFromInt(200),
		},
		CategoryTotals: map[string]decimal.Decimal{},
	}, nil).Once()
	suite.mockExpenseService.On("ListExpenses", mock.Anything, portssvc.ExpenseFilter{
		Category: "food",
		Range:    domain.RangeAll,
	}).Return([]domain.Expense{
		{ID: 1, Description: "A", Amount: decimal.NewFromInt(30), Category: "food", Date: domain.NewDate(2024, time.February, 1)},
		{ID: 2, Description: "B", Amount: decimal.NewFromInt(10), Category: "food", Date: domain.NewDate(2024, time.February, 2)},
	}, decimal.NewFromInt(40), nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/reports/summary?category=food", nil)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.SummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(2, body.ExpenseCount)
	suite.True(body.AverageExpense.Equal(decimal.NewFromInt(20)))

	// Newest month first.
	suite.Require().Len(body.MonthlyOverview, 2)
	suite.Equal("2024-02", body.MonthlyOverview[0].Month)
	suite.Equal("2024-01", body.MonthlyOverview[1].Month)
}

func (suite *ReportingHandlerTestSuite) TestGetTopExpenses() {
	suite.mockReportingService.On("TopExpenses", mock.Anything, portssvc.ExpenseFilter{Range: domain.RangeAll}, 3).
		Return([]domain.Expense{
			{ID: 2, Description: "Big", Amount: decimal.NewFromInt(500), Category: "bills", Date: domain.NewDate(2024, time.February, 2)},
		}, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/reports/top?limit=3", nil)

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.ExpenseResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal("Big", body[0].Description)
}

func (suite *ReportingHandlerTestSuite) TestGetTopExpenses_InvalidLimit() {
	w := suite.perform(http.MethodGet, "/api/v1/reports/top?limit=0", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "TopExpenses")
}

// --- Currency endpoints ---

func (suite *ReportingHandlerTestSuite) TestSwitchCurrency_Success() {
	eur, _ := domain.CurrencyByCode("EUR")
	suite.mockCurrencyService.On("SwitchCurrency", mock.Anything, "EUR").Return(&eur, 4, nil).Once()

	w := suite.perform(http.MethodPut, "/api/v1/currency", gin.H{"code": "EUR"})

	suite.Equal(http.StatusOK, w.Code)

	var body dto.SwitchCurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("EUR", body.Currency.Code)
	suite.Equal(4, body.ConvertedCount)
}

func (suite *ReportingHandlerTestSuite) TestSwitchCurrency_LowercaseCodeRejectedAtBinding() {
	w := suite.perform(http.MethodPut, "/api/v1/currency", gin.H{"code": "eur"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCurrencyService.AssertNotCalled(suite.T(), "SwitchCurrency")
}

func (suite *ReportingHandlerTestSuite) TestSwitchCurrency_UnsupportedCode() {
	suite.mockCurrencyService.On("SwitchCurrency", mock.Anything, "CHF").
		Return(nil, 0, apperrors.ErrValidation).Once()

	w := suite.perform(http.MethodPut, "/api/v1/currency", gin.H{"code": "CHF"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ReportingHandlerTestSuite) TestGetActiveCurrency() {
	suite.expectUSDActive()

	w := suite.perform(http.MethodGet, "/api/v1/currency", nil)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("USD", body.Code)
}

// --- Rates endpoints ---

func (suite *ReportingHandlerTestSuite) TestGetRates() {
	suite.mockRatesService.On("Snapshot").Return(domain.FallbackRates(), "USD", domain.RateSourceFallback).Once()

	w := suite.perform(http.MethodGet, "/api/v1/rates", nil)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.RatesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("fallback", body.Source)
	suite.Equal("USD", body.Base)
	suite.True(body.Rates["JPY"].Equal(decimal.NewFromInt(110)))
}

func (suite *ReportingHandlerTestSuite) TestConvert() {
	suite.mockRatesService.On("Convert", decimal.NewFromInt(100), "USD", "EUR").
		Return(decimal.NewFromInt(85)).Once()

	w := suite.perform(http.MethodGet, "/api/v1/rates/convert?amount=100&from=USD&to=EUR", nil)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ConvertResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.Result.Equal(decimal.NewFromInt(85)))
}

func (suite *ReportingHandlerTestSuite) TestConvert_BadAmount() {
	w := suite.perform(http.MethodGet, "/api/v1/rates/convert?amount=abc&from=USD&to=EUR", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRatesService.AssertNotCalled(suite.T(), "Convert")
}

func TestReportingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
