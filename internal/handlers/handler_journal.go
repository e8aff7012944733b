package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	portssvc "github.com/SscSPs/finance_engine/internal/core/ports/services"
	"github.com/SscSPs/finance_engine/internal/dto"
	"github.com/SscSPs/finance_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journals.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: js,
	}
}

// registerJournalRoutes registers routes related to journals.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.POST("/validate", h.validateJournal)
		journals.POST("", h.saveJournal)
		journals.GET("/:journalID", h.getJournal)
	}
}

// validateJournal godoc
// @Summary Validate a journal entry
// @Description Reports totals, balance state and every validation issue of an entry under edit. Validation findings are data, so this always returns 200 for a well-formed request.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journal body dto.JournalEntryRequest true "Journal entry and referenced accounts"
// @Success 200 {object} domain.EntryValidation
// @Failure 400 {object} map[string]string "Invalid input format"
// @Security BearerAuth
// @Router /journals/validate [post]
func (h *journalHandler) validateJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.JournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ValidateJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	validation := h.journalService.ValidateJournal(c.Request.Context(), req.ToDomainEntry(), dto.ToDomainAccounts(req.Accounts))
	c.JSON(http.StatusOK, validation)
}

// saveJournal godoc
// @Summary Save a journal entry
// @Description Validates and persists a journal entry. Entries with blocking issues or unequal totals are rejected with the validation result.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journal body dto.JournalEntryRequest true "Journal entry and referenced accounts"
// @Success 201 {object} dto.SaveJournalResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} dto.SaveJournalResponse "Journal entry cannot be saved"
// @Failure 503 {object} map[string]string "Journal storage disabled"
// @Failure 500 {object} map[string]string "Failed to save journal"
// @Security BearerAuth
// @Router /journals [post]
func (h *journalHandler) saveJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.JournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to save journal", slog.Int("lines", len(req.Lines)))

	saved, validation, err := h.journalService.SaveJournal(c.Request.Context(), req.ToDomainEntry(), dto.ToDomainAccounts(req.Accounts), creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrJournalNotSavable):
			logger.Warn("Journal rejected by validation", slog.Int("issues", len(validation.Issues)))
			c.JSON(http.StatusUnprocessableEntity, dto.SaveJournalResponse{Validation: validation, Error: err.Error()})
		default:
			respondServiceError(c, logger, err, "Failed to save journal")
		}
		return
	}

	logger.Info("Journal saved successfully", slog.String("journal_id", saved.ID))
	resp := dto.ToJournalResponse(saved)
	c.JSON(http.StatusCreated, dto.SaveJournalResponse{Journal: &resp, Validation: validation})
}

// getJournal godoc
// @Summary Get a journal by ID
// @Description Retrieves a saved journal entry and its lines
// @Tags journals
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 503 {object} map[string]string "Journal storage disabled"
// @Security BearerAuth
// @Router /journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	journalID := c.Param("journalID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("journal_id", journalID))

	journal, err := h.journalService.GetJournalByID(c.Request.Context(), journalID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}
