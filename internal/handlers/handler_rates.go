package handlers

import (
	"net/http"

	portssvc "github.com/npatil9/expense_tracker_app/internal/core/ports/services"
	"github.com/npatil9/expense_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ratesHandler handles HTTP requests related to exchange rates.
type ratesHandler struct {
	ratesService portssvc.RatesSvcFacade
}

// newRatesHandler creates a new ratesHandler.
func newRatesHandler(rs portssvc.RatesSvcFacade) *ratesHandler {
	return &ratesHandler{
		ratesService: rs,
	}
}

// registerRatesRoutes registers routes related to exchange rates.
func registerRatesRoutes(rg *gin.RouterGroup, ratesService portssvc.RatesSvcFacade) {
	h := newRatesHandler(ratesService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.getRates)
		rates.GET("/convert", h.convert)
	}
}

// getRates godoc
// @Summary Current exchange-rate table
// @Description Retrieves the session rate table with its base currency and source state (loading, live or fallback)
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RatesResponse
// @Router /rates [get]
func (h *ratesHandler) getRates(c *gin.Context) {
	table, base, source := h.ratesService.Snapshot()
	c.JSON(http.StatusOK, dto.ToRatesResponse(table, base, source))
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts an amount between two currency codes using the session rate table; unknown codes leave the amount unchanged
// @Tags rates
// @Produce  json
// @Param   amount query number true "Amount to convert"
// @Param   from query string true "Source currency code"
// @Param   to query string true "Target currency code"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Router /rates/convert [get]
func (h *ratesHandler) convert(c *gin.Context) {
	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be a number"})
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	result := h.ratesService.Convert(amount, from, to)

	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount: amount,
		From:   from,
		To:     to,
		Result: result,
	})
}
