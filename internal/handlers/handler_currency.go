package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/npatil9/expense_tracker_app/internal/apperrors"
	portssvc "github.com/npatil9/expense_tracker_app/internal/core/ports/services"
	"github.com/npatil9/expense_tracker_app/internal/dto"
	"github.com/npatil9/expense_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to the display currency.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	rg.GET("/currencies", h.listCurrencies)

	currency := rg.Group("/currency")
	{
		currency.GET("", h.getActiveCurrency)
		currency.PUT("", h.switchCurrency)
	}
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Retrieves the fixed list of selectable currencies
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies := h.currencyService.ListCurrencies(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getActiveCurrency godoc
// @Summary Get the active display currency
// @Description Retrieves the persisted active currency, defaulting to the first configured one
// @Tags currencies
// @Produce  json
// @Success 200 {object} dto.CurrencyResponse
// @Failure 500 {object} map[string]string "Failed to load active currency"
// @Router /currency [get]
func (h *currencyHandler) getActiveCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currency, err := h.currencyService.ActiveCurrency(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load active currency", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load active currency"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// switchCurrency godoc
// @Summary Switch the active display currency
// @Description Changes the active currency and re-denominates every stored expense amount into it
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.SwitchCurrencyRequest true "New currency code"
// @Success 200 {object} dto.SwitchCurrencyResponse
// @Failure 400 {object} map[string]string "Invalid or unsupported currency code"
// @Failure 500 {object} map[string]string "Failed to switch currency"
// @Router /currency [put]
func (h *currencyHandler) switchCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SwitchCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SwitchCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	currency, converted, err := h.currencyService.SwitchCurrency(c.Request.Context(), req.Code)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Unsupported currency code", slog.String("code", req.Code))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to switch currency in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to switch currency"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.SwitchCurrencyResponse{
		Currency:       dto.ToCurrencyResponse(currency),
		ConvertedCount: converted,
	})
}
