package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tallyhq/tally_pro_app/internal/core/ports/services"
	"github.com/tallyhq/tally_pro_app/internal/dto"
)

// extraHandler handles HTTP requests related to monthly extra expenditures.
type extraHandler struct {
	extraService portssvc.ExtraExpenditureSvcFacade
}

func newExtraHandler(es portssvc.ExtraExpenditureSvcFacade) *extraHandler {
	return &extraHandler{extraService: es}
}

// registerExtraRoutes registers all extra expenditure routes.
func registerExtraRoutes(rg *gin.RouterGroup, extraService portssvc.ExtraExpenditureSvcFacade) {
	h := newExtraHandler(extraService)

	extras := rg.Group("/extras")
	{
		extras.POST("", h.createExtra)
		extras.GET("", h.listExtras)
	}
}

// createExtra godoc
// @Summary Record extra expenditure
// @Description Records a monthly deduction for the caller's company. Admin only.
// @Tags extras
// @Accept json
// @Produce json
// @Param extra body dto.CreateExtraRequest true "Extra Expenditure Data"
// @Success 201 {object} dto.ExtraResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /extras [post]
func (h *extraHandler) createExtra(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateExtraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	extra, err := h.extraService.CreateExtra(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create extra expenditure")
		return
	}

	c.JSON(http.StatusCreated, dto.ToExtraResponse(extra))
}

// listExtras godoc
// @Summary List extra expenditures
// @Description Lists the caller's company extra expenditures in a date range.
// @Tags extras
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.ListExtrasResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /extras [get]
func (h *extraHandler) listExtras(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	extras, err := h.extraService.ListExtras(c.Request.Context(), userID, params.Start, params.End)
	if err != nil {
		respondServiceError(c, err, "Failed to list extra expenditures")
		return
	}

	c.JSON(http.StatusOK, dto.ToListExtrasResponse(extras))
}
