// Package discovery filters and orders a venue collection by free-text
// and faceted criteria. Every call is independent and side-effect free;
// repeated invocation (e.g. per keystroke) is the host's concern.
package discovery

import (
	"strings"
	"time"

	"staybook/internal/domain/shared/daterange"
)

// Criteria is an ephemeral query object. The zero value of every field
// means "no constraint", never "match nothing".
//
// MaxGuests is a MINIMUM required capacity: a venue matches when its own
// MaxGuests is at least this value. The field shares its name with the
// venue capacity it is compared against, so keep the direction straight
// when mapping host input.
type Criteria struct {
	SearchTerm string
	MinPrice   float64
	MaxPrice   float64
	MaxGuests  int
	MinRating  float64
	Wifi       bool
	Parking    bool
	Breakfast  bool
	Pets       bool
	CheckIn    time.Time
	CheckOut   time.Time
}

// Normalized returns a sanitized copy: trimmed lowercase search term,
// negative bounds zeroed, inverted price bounds and unordered date pairs
// dropped back to "no constraint".
func (c Criteria) Normalized() Criteria {
	n := c
	n.SearchTerm = strings.TrimSpace(strings.ToLower(n.SearchTerm))
	if n.MinPrice < 0 {
		n.MinPrice = 0
	}
	if n.MaxPrice < 0 {
		n.MaxPrice = 0
	}
	if n.MaxPrice > 0 && n.MaxPrice < n.MinPrice {
		n.MaxPrice = 0
	}
	if n.MaxGuests < 0 {
		n.MaxGuests = 0
	}
	if n.MinRating < 0 {
		n.MinRating = 0
	}
	n.CheckIn = daterange.Day(n.CheckIn)
	n.CheckOut = daterange.Day(n.CheckOut)
	if n.CheckIn.IsZero() || n.CheckOut.IsZero() || !n.CheckOut.After(n.CheckIn) {
		n.CheckIn = time.Time{}
		n.CheckOut = time.Time{}
	}
	return n
}
