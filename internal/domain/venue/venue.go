package venue

import (
	"context"
	"errors"
	"time"
)

var ErrVenueNotFound = errors.New("venue: not found")

// Venue is the read-mostly record owned by the external venue service.
// The engine only reads it; zero values stand in for fields the service
// left out, so a sparse or malformed record degrades to "does not match"
// instead of breaking a listing or calendar render.
type Venue struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	MaxGuests   int       `json:"maxGuests"`
	Rating      float64   `json:"rating"`
	Location    Location  `json:"location"`
	Meta        Meta      `json:"meta"`
	Bookings    []Booking `json:"bookings,omitempty"`
}

type Location struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Zip       string  `json:"zip"`
	Country   string  `json:"country"`
	Continent string  `json:"continent"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

// Meta holds the closed set of amenity flags. Consumers match on these by
// name, so they stay named booleans rather than an open map.
type Meta struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

// Booking is an already-committed reservation against one venue. Created
// by the external service on successful submission and never mutated here;
// Customer is a weak back-reference used for lookup only.
type Booking struct {
	ID       string    `json:"id"`
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	Customer string    `json:"customer,omitempty"`
}

// BookingRequest is the ephemeral candidate produced by the calendar
// selection machine. It is validated and priced locally, handed to the
// external service, and discarded.
type BookingRequest struct {
	VenueID  string    `json:"venueId"`
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
}

// Repository is the collaborator port behind which the external venue
// service sits. withBookings controls the bookings expansion.
type Repository interface {
	ByID(ctx context.Context, id string, withBookings bool) (Venue, error)
	All(ctx context.Context) ([]Venue, error)
}
