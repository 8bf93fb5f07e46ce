package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally_pro_app/internal/core/domain"
)

// CreateExtraRequest records a monthly extra expenditure.
type CreateExtraRequest struct {
	Date        string          `json:"date" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

// ExtraResponse is the public shape of an extra expenditure.
type ExtraResponse struct {
	ExtraID     string          `json:"extraID"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// ListExtrasResponse wraps the extras of a range.
type ListExtrasResponse struct {
	Extras []ExtraResponse `json:"extras"`
}

// ToExtraResponse converts a domain.ExtraExpenditure to its response DTO.
func ToExtraResponse(extra *domain.ExtraExpenditure) ExtraResponse {
	return ExtraResponse{
		ExtraID:     extra.ExtraID,
		Date:        domain.DateKey(extra.Date),
		Amount:      extra.Amount,
		Description: extra.Description,
	}
}

// ToListExtrasResponse converts a slice of domain.ExtraExpenditure to its response DTO.
func ToListExtrasResponse(extras []domain.ExtraExpenditure) ListExtrasResponse {
	extraResponses := make([]ExtraResponse, len(extras))
	for i := range extras {
		extraResponses[i] = ToExtraResponse(&extras[i])
	}
	return ListExtrasResponse{Extras: extraResponses}
}
