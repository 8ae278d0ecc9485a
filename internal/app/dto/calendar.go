package dto

import (
	"fmt"

	"staybook/internal/domain/calendar"
	"staybook/internal/domain/shared/daterange"
)

type CalendarDay struct {
	Date  string `json:"date"`
	Class string `json:"class"`
}

type CalendarMonth struct {
	VenueID string        `json:"venueId"`
	Month   string        `json:"month"`
	Days    []CalendarDay `json:"days"`
}

// MapCalendarMonth classifies every day of the viewed month against the
// current selection and rules.
func MapCalendarMonth(venueID string, cursor calendar.MonthCursor, sel calendar.Selection, rules calendar.Rules) CalendarMonth {
	days := cursor.Days()
	out := CalendarMonth{
		VenueID: venueID,
		Month:   fmt.Sprintf("%04d-%02d", cursor.Year, int(cursor.Month)),
		Days:    make([]CalendarDay, 0, len(days)),
	}
	for _, d := range days {
		out.Days = append(out.Days, CalendarDay{
			Date:  daterange.FormatISO(d),
			Class: string(calendar.Classify(sel, d, rules)),
		})
	}
	return out
}
