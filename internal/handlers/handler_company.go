package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tallyhq/tally_pro_app/internal/core/ports/services"
)

// companyHandler handles HTTP requests for the caller's company.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

func newCompanyHandler(cs portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{companyService: cs}
}

// registerCompanyRoutes registers company routes.
func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade) {
	h := newCompanyHandler(companyService)
	rg.GET("/company", h.getMyCompany)
}

// getMyCompany godoc
// @Summary Get own company
// @Description Returns the company the authenticated user belongs to.
// @Tags company
// @Produce json
// @Success 200 {object} domain.Company
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /company [get]
func (h *companyHandler) getMyCompany(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	company, err := h.companyService.GetMyCompany(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to get company")
		return
	}

	c.JSON(http.StatusOK, company)
}
