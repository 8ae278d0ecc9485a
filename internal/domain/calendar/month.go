package calendar

import (
	"time"

	"staybook/internal/domain/shared/daterange"
)

// MonthCursor is the currently viewed month. It moves only on explicit
// prev/next actions, is unbounded in both directions, and is independent
// of the selection state.
type MonthCursor struct {
	Year  int
	Month time.Month
}

// MonthOf positions the cursor on t's month.
func MonthOf(t time.Time) MonthCursor {
	y, m, _ := t.UTC().Date()
	return MonthCursor{Year: y, Month: m}
}

func (c MonthCursor) Prev() MonthCursor {
	return MonthOf(c.First().AddDate(0, -1, 0))
}

func (c MonthCursor) Next() MonthCursor {
	return MonthOf(c.First().AddDate(0, 1, 0))
}

// First returns midnight UTC on the first day of the month.
func (c MonthCursor) First() time.Time {
	return time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether t falls inside the viewed month.
func (c MonthCursor) Contains(t time.Time) bool {
	y, m, _ := daterange.Day(t).Date()
	return y == c.Year && m == c.Month
}

// Days lists every day of the viewed month in order.
func (c MonthCursor) Days() []time.Time {
	first := c.First()
	n := first.AddDate(0, 1, -1).Day()
	days := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, first.AddDate(0, 0, i))
	}
	return days
}
