package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	portssvc "github.com/SscSPs/finance_engine/internal/core/ports/services"
	"github.com/SscSPs/finance_engine/internal/dto"
	"github.com/SscSPs/finance_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
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

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.POST("/refresh", h.refreshCatalog)
		currencies.GET("/:currencyCode", h.getCurrency)
		currencies.GET("/:currencyCode/format", h.formatAmount)
	}
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Retrieves the installed currency catalog
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies := h.currencyService.ListCurrencies(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getCurrency godoc
// @Summary Get a currency by code
// @Description Retrieves details for a specific currency by its 3-letter code
// @Tags currencies
// @Produce  json
// @Param   currencyCode path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid currency code format"
// @Failure 404 {object} map[string]string "Currency not found"
// @Security BearerAuth
// @Router /currencies/{currencyCode} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := strings.ToUpper(c.Param("currencyCode"))
	if len(code) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), code)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("currency_code", code)), err, "Failed to retrieve currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(*currency))
}

// formatAmount godoc
// @Summary Format an amount for display
// @Description Renders an amount with the currency's symbol, grouping and decimal places
// @Tags currencies
// @Produce  json
// @Param   currencyCode path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   amount query number true "Amount to format"
// @Success 200 {object} dto.FormatAmountResponse
// @Failure 400 {object} map[string]string "Invalid amount or currency code"
// @Security BearerAuth
// @Router /currencies/{currencyCode}/format [get]
func (h *currencyHandler) formatAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := strings.ToUpper(c.Param("currencyCode"))
	if len(code) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}
	var q dto.FormatAmountQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind query for FormatAmount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FormatAmountResponse{
		CurrencyCode: code,
		Amount:       q.Amount,
		Formatted:    h.currencyService.FormatAmount(c.Request.Context(), q.Amount, code),
	})
}

// refreshCatalog godoc
// @Summary Reload the currency catalog
// @Description Fetches the catalog from its source. When the source fails the built-in catalog is installed and a warning is returned.
// @Tags currencies
// @Produce  json
// @Success 200 {object} dto.CatalogRefreshResponse
// @Failure 500 {object} map[string]string "Failed to refresh catalog"
// @Security BearerAuth
// @Router /currencies/refresh [post]
func (h *currencyHandler) refreshCatalog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.RefreshCatalog(c.Request.Context())
	resp := dto.CatalogRefreshResponse{Currencies: dto.ToListCurrencyResponse(currencies)}
	if err != nil {
		if !errors.Is(err, apperrors.ErrCatalogFetchFailed) {
			respondServiceError(c, logger, err, "Failed to refresh catalog")
			return
		}
		logger.Warn("Catalog refresh fell back to built-in currencies", slog.String("error", err.Error()))
		resp.Warning = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}
