package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tallyhq/tally_pro_app/internal/core/ports/services"
	"github.com/tallyhq/tally_pro_app/internal/dto"
)

// entryHandler handles HTTP requests related to cash entries.
type entryHandler struct {
	entryService portssvc.EntrySvcFacade
}

func newEntryHandler(es portssvc.EntrySvcFacade) *entryHandler {
	return &entryHandler{entryService: es}
}

// registerEntryRoutes registers all entry-related routes.
func registerEntryRoutes(rg *gin.RouterGroup, entryService portssvc.EntrySvcFacade) {
	h := newEntryHandler(entryService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
	}
}

// createEntry godoc
// @Summary Record cash entry
// @Description Records an IN or OUT cash movement for the caller's company.
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateEntryRequest true "Entry Data"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List cash entries
// @Description Lists the caller's company entries in a date range, newest first.
// @Tags entries
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	entries, err := h.entryService.ListEntries(c.Request.Context(), userID, params.Start, params.End)
	if err != nil {
		respondServiceError(c, err, "Failed to list entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToListEntriesResponse(entries))
}
