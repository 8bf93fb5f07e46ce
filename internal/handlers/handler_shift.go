package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tallyhq/tally_pro_app/internal/core/ports/services"
	"github.com/tallyhq/tally_pro_app/internal/dto"
)

// shiftHandler handles HTTP requests related to employee shifts.
type shiftHandler struct {
	shiftService portssvc.ShiftSvcFacade
}

func newShiftHandler(ss portssvc.ShiftSvcFacade) *shiftHandler {
	return &shiftHandler{shiftService: ss}
}

// registerShiftRoutes registers all shift-related routes.
func registerShiftRoutes(rg *gin.RouterGroup, shiftService portssvc.ShiftSvcFacade) {
	h := newShiftHandler(shiftService)

	shifts := rg.Group("/shifts")
	{
		shifts.POST("/clock-in", h.clockIn)
		shifts.POST("/clock-out", h.clockOut)
		shifts.GET("", h.listShifts)
	}
}

// clockIn godoc
// @Summary Clock in
// @Description Opens a shift for the authenticated user. Fails if one is already open.
// @Tags shifts
// @Produce json
// @Success 201 {object} dto.ShiftResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Shift already open"
// @Security BearerAuth
// @Router /shifts/clock-in [post]
func (h *shiftHandler) clockIn(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	shift, err := h.shiftService.ClockIn(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to clock in")
		return
	}

	c.JSON(http.StatusCreated, dto.ToShiftResponse(shift))
}

// clockOut godoc
// @Summary Clock out
// @Description Closes the authenticated user's open shift. Fails if none is open.
// @Tags shifts
// @Produce json
// @Success 200 {object} dto.ShiftResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "No open shift"
// @Security BearerAuth
// @Router /shifts/clock-out [post]
func (h *shiftHandler) clockOut(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	shift, err := h.shiftService.ClockOut(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to clock out")
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// listShifts godoc
// @Summary List shifts
// @Description Lists the caller's company shifts in a date range, newest clock-in first.
// @Tags shifts
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.ListShiftsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /shifts [get]
func (h *shiftHandler) listShifts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	shifts, err := h.shiftService.ListShifts(c.Request.Context(), userID, params.Start, params.End)
	if err != nil {
		respondServiceError(c, err, "Failed to list shifts")
		return
	}

	c.JSON(http.StatusOK, dto.ToListShiftsResponse(shifts))
}
