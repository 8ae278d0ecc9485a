package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"staybook/internal/app/dto"
	venueapp "staybook/internal/app/handlers/venues"
	"staybook/internal/app/queries"
	"staybook/internal/domain/discovery"
	"staybook/internal/domain/venue"
)

// VenueHandler wires venue queries to HTTP. The query-string translation
// into discovery.Criteria happens here: the engine itself never reads
// request state.
type VenueHandler struct {
	Queries queries.Bus
}

// Catalog responds with the filtered, ordered venue collection.
// The guests parameter is the number of guests the caller needs room for,
// which discovery treats as a minimum required capacity.
func (h VenueHandler) Catalog(c *gin.Context) {
	checkIn, ok := parseISODate(c.Query("check_in"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check_in date"})
		return
	}
	checkOut, ok := parseISODate(c.Query("check_out"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check_out date"})
		return
	}

	query := venueapp.SearchVenuesQuery{
		Term: c.Query("q"),
		Criteria: discovery.Criteria{
			MinPrice:  parseFloat(c.Query("min_price")),
			MaxPrice:  parseFloat(c.Query("max_price")),
			MaxGuests: parseInt(c.Query("guests")),
			MinRating: parseFloat(c.Query("min_rating")),
			Wifi:      parseBool(c.Query("wifi")),
			Parking:   parseBool(c.Query("parking")),
			Breakfast: parseBool(c.Query("breakfast")),
			Pets:      parseBool(c.Query("pets")),
			CheckIn:   checkIn,
			CheckOut:  checkOut,
		},
		Sort: discovery.SortKey(c.Query("sort")),
	}
	result, err := queries.Ask[venueapp.SearchVenuesQuery, dto.VenueList](c.Request.Context(), h.Queries, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get responds with one venue; ?with_bookings=true expands its committed
// bookings.
func (h VenueHandler) Get(c *gin.Context) {
	query := venueapp.GetVenueQuery{
		VenueID:      c.Param("id"),
		WithBookings: parseBool(c.Query("with_bookings")),
	}
	result, err := queries.Ask[venueapp.GetVenueQuery, dto.VenueDetail](c.Request.Context(), h.Queries, query)
	if err != nil {
		if errors.Is(err, venue.ErrVenueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Calendar responds with one month of classified days; month comes as
// yyyy-mm, check_in/check_out seed the selection being edited.
func (h VenueHandler) Calendar(c *gin.Context) {
	year, month, ok := parseYearMonth(c.Query("month"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month, expected yyyy-mm"})
		return
	}
	checkIn, ok := parseISODate(c.Query("check_in"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check_in date"})
		return
	}
	checkOut, ok := parseISODate(c.Query("check_out"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check_out date"})
		return
	}

	query := venueapp.GetCalendarQuery{
		VenueID:  c.Param("id"),
		Year:     year,
		Month:    month,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
	result, err := queries.Ask[venueapp.GetCalendarQuery, dto.CalendarMonth](c.Request.Context(), h.Queries, query)
	if err != nil {
		if errors.Is(err, venue.ErrVenueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ VenueHTTP = VenueHandler{}
