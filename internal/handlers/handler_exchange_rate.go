package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/finance_engine/internal/core/ports/services"
	"github.com/SscSPs/finance_engine/internal/dto"
	"github.com/SscSPs/finance_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
	currencyService     portssvc.CurrencyReaderSvc
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade, cs portssvc.CurrencyReaderSvc) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
		currencyService:     cs,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade, currencyService portssvc.CurrencyReaderSvc) {
	h := newExchangeRateHandler(exchangeRateService, currencyService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.GET("", h.getRateTable)
		exchangeRates.PUT("", h.replaceRateTable)
		exchangeRates.POST("/refresh", h.refreshRates)
		exchangeRates.GET("/convert", h.convertAmount)
	}
}

// getRateTable godoc
// @Summary Get the active rate table
// @Description Returns the base currency and the rate of every currency against it
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.RateTableResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) getRateTable(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToRateTableResponse(h.exchangeRateService.GetRateTable(c.Request.Context())))
}

// replaceRateTable godoc
// @Summary Replace the rate table
// @Description Installs a full rate table quoted against the given base currency
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   table body dto.ReplaceRateTableRequest true "Rate table"
// @Success 200 {object} dto.RateTableResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to replace rate table"
// @Security BearerAuth
// @Router /exchange-rates [put]
func (h *exchangeRateHandler) replaceRateTable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReplaceRateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReplaceRateTable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rates := make(map[string]float64, len(req.Rates))
	for code, rate := range req.Rates {
		rates[strings.ToUpper(code)] = rate
	}
	logger.Info("Received request to replace rate table", slog.String("base", req.Base), slog.Int("rates", len(rates)))

	table, err := h.exchangeRateService.ReplaceRateTable(c.Request.Context(), strings.ToUpper(req.Base), rates)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to replace rate table")
		return
	}
	c.JSON(http.StatusOK, dto.ToRateTableResponse(table))
}

// refreshRates godoc
// @Summary Refresh rates from the provider
// @Description Fetches a fresh rate table. On failure the previous table stays active.
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.RateTableResponse
// @Failure 502 {object} map[string]string "Rate provider failed"
// @Security BearerAuth
// @Router /exchange-rates/refresh [post]
func (h *exchangeRateHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	table, err := h.exchangeRateService.RefreshRates(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to refresh rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToRateTableResponse(table))
}

// convertAmount godoc
// @Summary Convert a single amount
// @Description Converts an amount between two currencies with the active rate table. Missing rates count as 1 unless strict is set.
// @Tags exchange rates
// @Produce  json
// @Param   amount query number true "Amount"
// @Param   from query string true "From Currency Code (3 letters)"
// @Param   to query string true "To Currency Code (3 letters)"
// @Param   strict query bool false "Fail when a rate is missing"
// @Success 200 {object} dto.ConvertAmountResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 409 {object} map[string]string "Exchange rate unavailable"
// @Security BearerAuth
// @Router /exchange-rates/convert [get]
func (h *exchangeRateHandler) convertAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.ConvertAmountQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind query for ConvertAmount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	from, to := strings.ToUpper(q.From), strings.ToUpper(q.To)

	result, err := h.exchangeRateService.ConvertAmount(c.Request.Context(), q.Amount, from, to, q.Strict)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("from", from), slog.String("to", to)), err, "Failed to convert amount")
		return
	}

	c.JSON(http.StatusOK, dto.ConvertAmountResponse{
		Amount:    q.Amount,
		From:      from,
		To:        to,
		Result:    result,
		Formatted: h.currencyService.FormatAmount(c.Request.Context(), result, to),
	})
}
