package handlers

import (
	"net/http"

	"github.com/SscSPs/finance_engine/internal/core/domain"
	portssvc "github.com/SscSPs/finance_engine/internal/core/ports/services"
	"github.com/SscSPs/finance_engine/internal/dto"
	"github.com/gin-gonic/gin"
)

// accountHandler exposes account category behavior used by journal editors.
type accountHandler struct {
	journalValidator portssvc.JournalValidatorSvc
}

func newAccountHandler(jv portssvc.JournalValidatorSvc) *accountHandler {
	return &accountHandler{journalValidator: jv}
}

func registerAccountRoutes(rg *gin.RouterGroup, journalValidator portssvc.JournalValidatorSvc) {
	h := newAccountHandler(journalValidator)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("/behavior/:category", h.getBehavior)
	}
}

// getBehavior godoc
// @Summary Get journal line behavior for an account category
// @Description Returns which amount columns are enabled, the normal balance side and display labels. Unrecognised categories get the permissive unknown behavior.
// @Tags accounts
// @Produce  json
// @Param   category path string true "Account category (asset, liability, equity, revenue, income, expense)"
// @Success 200 {object} dto.AccountBehaviorResponse
// @Security BearerAuth
// @Router /accounts/behavior/{category} [get]
func (h *accountHandler) getBehavior(c *gin.Context) {
	category := domain.ParseAccountCategory(c.Param("category"))
	c.JSON(http.StatusOK, dto.AccountBehaviorResponse{
		Category:        category,
		AccountBehavior: h.journalValidator.ResolveAccountBehavior(category),
	})
}
