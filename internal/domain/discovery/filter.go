package discovery

import (
	"strings"

	"staybook/internal/domain/availability"
	"staybook/internal/domain/shared/daterange"
	"staybook/internal/domain/venue"
)

// FilterVenues applies every criterion as an independent AND-combined
// predicate and returns the survivors in their original relative order.
// term takes precedence over c.SearchTerm when both are set, so a live
// search box can drive the call directly. Sparse records (empty name,
// location and so on) never match the criteria they are missing.
func FilterVenues(venues []venue.Venue, term string, c Criteria) []venue.Venue {
	if strings.TrimSpace(term) != "" {
		c.SearchTerm = term
	}
	c = c.Normalized()

	out := make([]venue.Venue, 0, len(venues))
	for _, v := range venues {
		if matches(v, c) {
			out = append(out, v)
		}
	}
	return out
}

func matches(v venue.Venue, c Criteria) bool {
	if c.SearchTerm != "" && !matchesTerm(v, c.SearchTerm) {
		return false
	}
	if c.MinPrice > 0 && v.Price < c.MinPrice {
		return false
	}
	if c.MaxPrice > 0 && v.Price > c.MaxPrice {
		return false
	}
	if c.MaxGuests > 0 && v.MaxGuests < c.MaxGuests {
		return false
	}
	if c.MinRating > 0 && v.Rating < c.MinRating {
		return false
	}
	if c.Wifi && !v.Meta.Wifi {
		return false
	}
	if c.Parking && !v.Meta.Parking {
		return false
	}
	if c.Breakfast && !v.Meta.Breakfast {
		return false
	}
	if c.Pets && !v.Meta.Pets {
		return false
	}
	if !c.CheckIn.IsZero() && !c.CheckOut.IsZero() {
		candidate := daterange.DateRange{CheckIn: c.CheckIn, CheckOut: c.CheckOut}
		if !availability.IsAvailable(v.Bookings, candidate) {
			return false
		}
	}
	return true
}

// matchesTerm looks for the lowercased term as a substring of name,
// description, city or country.
func matchesTerm(v venue.Venue, term string) bool {
	for _, field := range []string{v.Name, v.Description, v.Location.City, v.Location.Country} {
		if field != "" && strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
