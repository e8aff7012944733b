package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/finance_engine/internal/core/domain"
	portssvc "github.com/SscSPs/finance_engine/internal/core/ports/services"
	"github.com/SscSPs/finance_engine/internal/dto"
	"github.com/SscSPs/finance_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

func newConversionHandler(cs portssvc.ConversionSvcFacade) *conversionHandler {
	return &conversionHandler{conversionService: cs}
}

func registerConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade) {
	h := newConversionHandler(conversionService)

	conversions := rg.Group("/conversions")
	{
		conversions.POST("", h.convertDataset)
		conversions.POST("/authoritative", h.convertDatasetAuthoritative)
		conversions.GET("/history", h.listHistory)
		conversions.GET("/status", h.getStatus)
	}
}

// convertDataset godoc
// @Summary Convert a dataset between currencies
// @Description Re-expresses the monetary fields of every record using the local rate table. Nothing is converted when from equals to or no rates are loaded.
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   request body dto.ConvertDatasetRequest true "Dataset and currencies"
// @Success 200 {object} dto.ConvertDatasetResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 500 {object} map[string]string "Failed to convert dataset"
// @Security BearerAuth
// @Router /conversions [post]
func (h *conversionHandler) convertDataset(c *gin.Context) {
	h.handleConversion(c, h.conversionService.OnCurrencyChange)
}

// convertDatasetAuthoritative godoc
// @Summary Convert a dataset through the pricing provider
// @Description Like POST /conversions, but each amount is priced by the authoritative provider with a per-amount fallback to local rates.
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   request body dto.ConvertDatasetRequest true "Dataset and currencies"
// @Success 200 {object} dto.ConvertDatasetResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 500 {object} map[string]string "Failed to convert dataset"
// @Security BearerAuth
// @Router /conversions/authoritative [post]
func (h *conversionHandler) convertDatasetAuthoritative(c *gin.Context) {
	h.handleConversion(c, h.conversionService.ConvertWithAuthoritative)
}

type convertFunc func(ctx context.Context, previous, next string, dataset []domain.Record, shape domain.RecordShape) (portssvc.ConversionResult, error)

func (h *conversionHandler) handleConversion(c *gin.Context, convert convertFunc) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertDatasetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ConvertDataset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	from, to := strings.ToUpper(req.From), strings.ToUpper(req.To)
	shape := domain.ResolveShape(req.Schema)

	logger = logger.With(
		slog.String("from", from),
		slog.String("to", to),
		slog.String("schema", string(shape)),
		slog.Int("records", len(req.Records)),
	)
	logger.Info("Received request to convert dataset")

	result, err := convert(c.Request.Context(), from, to, req.ToDomainRecords(), shape)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to convert dataset")
		return
	}

	c.JSON(http.StatusOK, dto.ConvertDatasetResponse{
		Records:   result.Records,
		Performed: result.Performed,
		Stats:     result.Stats,
		Entry:     result.Entry,
	})
}

// listHistory godoc
// @Summary List conversion history
// @Description Returns the most recent conversions, oldest first
// @Tags conversions
// @Produce  json
// @Param   limit query int false "Maximum number of entries" minimum(1) maximum(1000)
// @Success 200 {object} dto.ConversionHistoryResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Security BearerAuth
// @Router /conversions/history [get]
func (h *conversionHandler) listHistory(c *gin.Context) {
	var q dto.HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	entries := h.conversionService.RecentHistory(q.Limit)
	if entries == nil {
		entries = []domain.ConversionHistoryEntry{}
	}
	c.JSON(http.StatusOK, dto.ConversionHistoryResponse{Entries: entries})
}

// getStatus godoc
// @Summary Get conversion status
// @Description Reports whether a conversion is running and which currency is active
// @Tags conversions
// @Produce  json
// @Success 200 {object} dto.ConversionStatusResponse
// @Security BearerAuth
// @Router /conversions/status [get]
func (h *conversionHandler) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ConversionStatusResponse{
		IsConverting:   h.conversionService.IsConverting(),
		ActiveCurrency: h.conversionService.ActiveCurrency(),
	})
}
