package discovery

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"staybook/internal/domain/venue"
)

// SortKey defines a supported ordering. Anything outside the closed set,
// the empty string included, means "no reordering".
type SortKey string

const (
	SortPriceLow   SortKey = "price-low"
	SortPriceHigh  SortKey = "price-high"
	SortRatingHigh SortKey = "rating-high"
	SortRatingLow  SortKey = "rating-low"
	SortNameAsc    SortKey = "name-asc"
	SortNameDesc   SortKey = "name-desc"
	SortGuestsHigh SortKey = "guests-high"
	SortGuestsLow  SortKey = "guests-low"
)

// SortVenues orders a copy of venues by key, never mutating the input.
// An unknown or empty key returns the copy in original order. Name keys
// compare case-insensitively with locale-aware collation.
func SortVenues(venues []venue.Venue, key SortKey) []venue.Venue {
	out := make([]venue.Venue, len(venues))
	copy(out, venues)

	var less func(i, j int) bool
	switch key {
	case SortPriceLow:
		less = func(i, j int) bool { return out[i].Price < out[j].Price }
	case SortPriceHigh:
		less = func(i, j int) bool { return out[i].Price > out[j].Price }
	case SortRatingHigh:
		less = func(i, j int) bool { return out[i].Rating > out[j].Rating }
	case SortRatingLow:
		less = func(i, j int) bool { return out[i].Rating < out[j].Rating }
	case SortGuestsHigh:
		less = func(i, j int) bool { return out[i].MaxGuests > out[j].MaxGuests }
	case SortGuestsLow:
		less = func(i, j int) bool { return out[i].MaxGuests < out[j].MaxGuests }
	case SortNameAsc:
		coll := nameCollator()
		less = func(i, j int) bool { return coll.CompareString(out[i].Name, out[j].Name) < 0 }
	case SortNameDesc:
		coll := nameCollator()
		less = func(i, j int) bool { return coll.CompareString(out[i].Name, out[j].Name) > 0 }
	default:
		return out
	}

	sort.SliceStable(out, less)
	return out
}

// nameCollator is created per call: a collator keeps internal buffers and
// is not safe for concurrent use.
func nameCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}
