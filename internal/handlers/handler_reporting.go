package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tallyhq/tally_pro_app/internal/core/ports/services"
	"github.com/tallyhq/tally_pro_app/internal/dto"
)

// reportingHandler handles HTTP requests related to derived reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers routes related to derived reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/summary", h.getSummary)
		reportingGroup.GET("/by-employee", h.getByEmployee)
		reportingGroup.GET("/by-category", h.getByCategory)
		reportingGroup.GET("/traffic", h.getTraffic)
	}
}

// getSummary godoc
// @Summary Generate bucketed summary report
// @Description Buckets the range's entries daily, weekly or monthly; monthly buckets are reduced by extra expenditures.
// @Tags reports
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Param period query string false "Bucket period: daily, weekly or monthly" default(daily)
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} ErrorResponse "Invalid period or range"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}
	period := c.Query("period")

	report, err := h.reportingService.Summary(c.Request.Context(), userID, params.Start, params.End, period)
	if err != nil {
		respondServiceError(c, err, "Failed to generate summary report")
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(report))
}

// getByEmployee godoc
// @Summary Generate by-employee breakdown
// @Description Aggregates the range's entries per recording employee.
// @Tags reports
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.BreakdownResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/by-employee [get]
func (h *reportingHandler) getByEmployee(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	report, err := h.reportingService.ByEmployee(c.Request.Context(), userID, params.Start, params.End)
	if err != nil {
		respondServiceError(c, err, "Failed to generate by-employee report")
		return
	}

	c.JSON(http.StatusOK, dto.ToBreakdownResponse(report))
}

// getByCategory godoc
// @Summary Generate by-category breakdown
// @Description Aggregates the range's entries per category; uncategorized entries group under "Uncategorized".
// @Tags reports
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.BreakdownResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/by-category [get]
func (h *reportingHandler) getByCategory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	report, err := h.reportingService.ByCategory(c.Request.Context(), userID, params.Start, params.End)
	if err != nil {
		respondServiceError(c, err, "Failed to generate by-category report")
		return
	}

	c.JSON(http.StatusOK, dto.ToBreakdownResponse(report))
}

// getTraffic godoc
// @Summary Generate shift traffic report
// @Description Returns per-day shift counts and worked hours for the range; open shifts count but contribute no hours.
// @Tags reports
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.TrafficResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/traffic [get]
func (h *reportingHandler) getTraffic(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	rng, rows, err := h.reportingService.Traffic(c.Request.Context(), userID, params.Start, params.End)
	if err != nil {
		respondServiceError(c, err, "Failed to generate traffic report")
		return
	}

	c.JSON(http.StatusOK, dto.ToTrafficResponse(rng, rows))
}
