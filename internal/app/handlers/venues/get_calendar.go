package venues

import (
	"context"
	"time"

	"staybook/internal/app/dto"
	"staybook/internal/domain/calendar"
	"staybook/internal/domain/venue"
)

const getCalendarKey = "venues.calendar"

// GetCalendarQuery renders one month of a venue's calendar grid with each
// day classified against the supplied selection. Zero Month defaults to
// the month of Today; zero CheckIn/CheckOut means nothing selected.
type GetCalendarQuery struct {
	VenueID  string
	Year     int
	Month    time.Month
	CheckIn  time.Time
	CheckOut time.Time
}

func (q GetCalendarQuery) Key() string { return getCalendarKey }

type GetCalendarHandler struct {
	Venues venue.Repository

	// Now is overridable in tests; nil means time.Now.
	Now func() time.Time
}

func (h *GetCalendarHandler) Handle(ctx context.Context, q GetCalendarQuery) (dto.CalendarMonth, error) {
	v, err := h.Venues.ByID(ctx, q.VenueID, true)
	if err != nil {
		return dto.CalendarMonth{}, err
	}

	today := time.Now().UTC()
	if h.Now != nil {
		today = h.Now().UTC()
	}

	cursor := calendar.MonthOf(today)
	if q.Year != 0 && q.Month != 0 {
		cursor = calendar.MonthCursor{Year: q.Year, Month: q.Month}
	}

	sel := calendar.Seeded(q.CheckIn, q.CheckOut)
	rules := calendar.Rules{Floor: today, Bookings: v.Bookings}
	return dto.MapCalendarMonth(v.ID, cursor, sel, rules), nil
}
