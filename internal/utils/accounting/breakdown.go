package accounting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally_pro_app/internal/core/domain"
)

// ByEmployee groups a range's entries under their recorder display names.
// Rows are sorted ascending by name; each recorder with at least one entry
// in range gets exactly one row.
func ByEmployee(entries []domain.Entry, rng domain.DateRange) *domain.BreakdownReport {
	return breakdown(entries, rng, func(e domain.Entry) string { return e.RecorderName })
}

// ByCategory groups a range's entries under their category labels, with
// absent categories normalized to "Uncategorized". Rows are sorted
// ascending by label.
func ByCategory(entries []domain.Entry, rng domain.DateRange) *domain.BreakdownReport {
	return breakdown(entries, rng, domain.Entry.CategoryLabel)
}

func breakdown(entries []domain.Entry, rng domain.DateRange, label func(domain.Entry) string) *domain.BreakdownReport {
	groups := make(map[string]*bucketAcc)
	for _, e := range entries {
		key := label(e)
		acc, ok := groups[key]
		if !ok {
			acc = &bucketAcc{in: decimal.Zero, out: decimal.Zero}
			groups[key] = acc
		}
		switch e.Kind {
		case domain.KindIn:
			acc.in = acc.in.Add(e.Amount)
		case domain.KindOut:
			acc.out = acc.out.Add(e.Amount)
		}
	}

	labels := make([]string, 0, len(groups))
	for l := range groups {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	rows := make([]domain.BreakdownRow, 0, len(labels))
	for _, l := range labels {
		acc := groups[l]
		rows = append(rows, domain.BreakdownRow{
			Label:    l,
			TotalIn:  acc.in,
			TotalOut: acc.out,
			Profit:   acc.in.Sub(acc.out),
		})
	}

	// Totals come from the full entry set, not from re-summing rows. The two
	// must agree since rows partition the entries exactly once.
	totals := Totals(entries)
	return &domain.BreakdownReport{
		Range:    rng,
		Totals:   totals,
		Holdings: totals.In.Sub(totals.Out),
		Rows:     rows,
	}
}
