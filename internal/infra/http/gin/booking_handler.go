package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"staybook/internal/app/dto"
	bookingapp "staybook/internal/app/handlers/booking"
	"staybook/internal/app/queries"
	"staybook/internal/domain/availability"
	"staybook/internal/domain/venue"
)

// BookingHandler wires the booking pre-validation to HTTP.
type BookingHandler struct {
	Queries queries.Bus
}

type validateBookingBody struct {
	VenueID  string `json:"venueId" binding:"required"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Guests   int    `json:"guests"`
}

// Validate pre-validates and prices a candidate booking request.
// Failures come back as 422 with the typed failure kind; unparseable
// dates map onto the missing-dates failure so hosts see one vocabulary.
func (h BookingHandler) Validate(c *gin.Context) {
	var body validateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dateFrom, okFrom := parseISODate(body.DateFrom)
	dateTo, okTo := parseISODate(body.DateTo)
	if !okFrom || !okTo {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationFailure{
			Kind:    string(availability.KindMissingDates),
			Message: "dates must be yyyy-mm-dd",
		})
		return
	}

	query := bookingapp.ValidateBookingQuery{
		Request: venue.BookingRequest{
			VenueID:  body.VenueID,
			DateFrom: dateFrom,
			DateTo:   dateTo,
			Guests:   body.Guests,
		},
	}
	result, err := queries.Ask[bookingapp.ValidateBookingQuery, dto.BookingQuote](c.Request.Context(), h.Queries, query)
	if err != nil {
		if failure, ok := dto.MapValidationFailure(err); ok {
			c.JSON(http.StatusUnprocessableEntity, failure)
			return
		}
		if errors.Is(err, venue.ErrVenueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ BookingHTTP = BookingHandler{}
