package accounting

import (
	"sort"

	"github.com/tallyhq/tally_pro_app/internal/core/domain"
)

// TrafficByDay groups shifts by the calendar date of their clock-in and
// returns one row per day, ascending. ShiftCount counts every shift
// starting that day; Hours sums only closed shifts, so a still-open shift
// contributes to the count but adds 0 hours.
func TrafficByDay(shifts []domain.Shift) []domain.TrafficRow {
	type acc struct {
		count int
		hours float64
	}
	byDay := make(map[string]*acc)
	for _, s := range shifts {
		day := domain.DateKey(s.ClockIn)
		a, ok := byDay[day]
		if !ok {
			a = &acc{}
			byDay[day] = a
		}
		a.count++
		a.hours += s.Hours()
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	rows := make([]domain.TrafficRow, 0, len(days))
	for _, day := range days {
		a := byDay[day]
		rows = append(rows, domain.TrafficRow{Day: day, ShiftCount: a.count, Hours: a.hours})
	}
	return rows
}
