package dto

import (
	"staybook/internal/domain/availability"
	"staybook/internal/domain/shared/daterange"
)

// BookingQuote is the success shape of a pre-validation: the validated,
// priced request a host hands to the external booking service.
type BookingQuote struct {
	VenueID  string  `json:"venueId"`
	DateFrom string  `json:"dateFrom"`
	DateTo   string  `json:"dateTo"`
	Guests   int     `json:"guests"`
	Nights   int     `json:"nights"`
	Total    float64 `json:"total"`
}

// ValidationFailure is the typed failure shape hosts branch on.
type ValidationFailure struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func MapBookingQuote(res availability.ValidatedRequest) BookingQuote {
	return BookingQuote{
		VenueID:  res.Request.VenueID,
		DateFrom: daterange.FormatISO(res.Request.DateFrom),
		DateTo:   daterange.FormatISO(res.Request.DateTo),
		Guests:   res.Request.Guests,
		Nights:   res.Quote.Nights,
		Total:    res.Quote.Total,
	}
}

// MapValidationFailure renders a validation error, or ok=false when err
// is not part of the validation vocabulary.
func MapValidationFailure(err error) (ValidationFailure, bool) {
	kind := availability.KindOf(err)
	if kind == "" {
		return ValidationFailure{}, false
	}
	return ValidationFailure{Kind: string(kind), Message: err.Error()}, true
}
