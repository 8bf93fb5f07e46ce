package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally_pro_app/internal/core/domain"
)

// BucketResponse is one time bucket in the summary report. Extra is only
// present for monthly buckets.
type BucketResponse struct {
	Key    string           `json:"key"`
	In     decimal.Decimal  `json:"in"`
	Out    decimal.Decimal  `json:"out"`
	Extra  *decimal.Decimal `json:"extra,omitempty"`
	Profit decimal.Decimal  `json:"profit"`
}

// TotalsResponse are the unfiltered IN/OUT sums of a range.
type TotalsResponse struct {
	In  decimal.Decimal `json:"in"`
	Out decimal.Decimal `json:"out"`
}

// SummaryResponse is the bucketed summary report response.
type SummaryResponse struct {
	Start    string           `json:"start"`
	End      string           `json:"end"`
	Period   string           `json:"period"`
	Totals   TotalsResponse   `json:"totals"`
	Holdings decimal.Decimal  `json:"holdings"`
	Buckets  []BucketResponse `json:"buckets"`
}

// BreakdownRowResponse is one by-employee or by-category row.
type BreakdownRowResponse struct {
	Label    string          `json:"label"`
	TotalIn  decimal.Decimal `json:"totalIn"`
	TotalOut decimal.Decimal `json:"totalOut"`
	Profit   decimal.Decimal `json:"profit"`
}

// BreakdownResponse is the by-employee / by-category report response.
type BreakdownResponse struct {
	Start    string                 `json:"start"`
	End      string                 `json:"end"`
	Totals   TotalsResponse         `json:"totals"`
	Holdings decimal.Decimal        `json:"holdings"`
	Rows     []BreakdownRowResponse `json:"rows"`
}

// TrafficRowResponse is one per-day traffic row.
type TrafficRowResponse struct {
	Day        string  `json:"day"`
	ShiftCount int     `json:"shiftCount"`
	Hours      float64 `json:"hours"`
}

// TrafficResponse is the traffic report response.
type TrafficResponse struct {
	Start string               `json:"start"`
	End   string               `json:"end"`
	Rows  []TrafficRowResponse `json:"rows"`
}

// ToSummaryResponse converts a domain summary report to its response DTO.
func ToSummaryResponse(report *domain.SummaryReport) SummaryResponse {
	buckets := make([]BucketResponse, len(report.Buckets))
	for i, b := range report.Buckets {
		buckets[i] = BucketResponse{
			Key:    b.Key,
			In:     b.In,
			Out:    b.Out,
			Extra:  b.Extra,
			Profit: b.Profit,
		}
	}
	return SummaryResponse{
		Start:    report.Range.Start,
		End:      report.Range.End,
		Period:   string(report.Period),
		Totals:   TotalsResponse{In: report.Totals.In, Out: report.Totals.Out},
		Holdings: report.Holdings,
		Buckets:  buckets,
	}
}

// ToBreakdownResponse converts a domain breakdown report to its response DTO.
func ToBreakdownResponse(report *domain.BreakdownReport) BreakdownResponse {
	rows := make([]BreakdownRowResponse, len(report.Rows))
	for i, row := range report.Rows {
		rows[i] = BreakdownRowResponse{
			Label:    row.Label,
			TotalIn:  row.TotalIn,
			TotalOut: row.TotalOut,
			Profit:   row.Profit,
		}
	}
	return BreakdownResponse{
		Start:    report.Range.Start,
		End:      report.Range.End,
		Totals:   TotalsResponse{In: report.Totals.In, Out: report.Totals.Out},
		Holdings: report.Holdings,
		Rows:     rows,
	}
}

// ToTrafficResponse converts domain traffic rows to the report response.
func ToTrafficResponse(rng domain.DateRange, rows []domain.TrafficRow) TrafficResponse {
	rowResponses := make([]TrafficRowResponse, len(rows))
	for i, row := range rows {
		rowResponses[i] = TrafficRowResponse{
			Day:        row.Day,
			ShiftCount: row.ShiftCount,
			Hours:      row.Hours,
		}
	}
	return TrafficResponse{Start: rng.Start, End: rng.End, Rows: rowResponses}
}
