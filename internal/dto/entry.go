package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally_pro_app/internal/core/domain"
)

// CreateEntryRequest records one cash movement. Date tolerates timestamp
// values; only its first 10 characters (YYYY-MM-DD) are used.
type CreateEntryRequest struct {
	Kind        string          `json:"kind" binding:"required,entrykind"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date" binding:"required"`
	Category    *string         `json:"category"`
	Description string          `json:"description"`
}

// DateRangeParams are the shared start/end query parameters for listings
// and reports. Empty bounds fall back to the open defaults.
type DateRangeParams struct {
	Start string `form:"start"`
	End   string `form:"end"`
}

// EntryResponse is the public shape of an entry.
type EntryResponse struct {
	EntryID      string          `json:"entryID"`
	RecorderID   string          `json:"recorderID"`
	RecorderName string          `json:"recorderName"`
	Kind         string          `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	Category     *string         `json:"category"`
	Description  string          `json:"description"`
	Date         string          `json:"date"`
	RecordedAt   time.Time       `json:"recordedAt"`
}

// ListEntriesResponse wraps the entries of a range.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToEntryResponse converts a domain.Entry to its response DTO.
func ToEntryResponse(entry *domain.Entry) EntryResponse {
	return EntryResponse{
		EntryID:      entry.EntryID,
		RecorderID:   entry.RecorderID,
		RecorderName: entry.RecorderName,
		Kind:         string(entry.Kind),
		Amount:       entry.Amount,
		Category:     entry.Category,
		Description:  entry.Description,
		Date:         domain.DateKey(entry.Date),
		RecordedAt:   entry.RecordedAt,
	}
}

// ToListEntriesResponse converts a slice of domain.Entry to its response DTO.
func ToListEntriesResponse(entries []domain.Entry) ListEntriesResponse {
	entryResponses := make([]EntryResponse, len(entries))
	for i := range entries {
		entryResponses[i] = ToEntryResponse(&entries[i])
	}
	return ListEntriesResponse{Entries: entryResponses}
}
