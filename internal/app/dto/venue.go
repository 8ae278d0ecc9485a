package dto

import (
	"staybook/internal/domain/shared/daterange"
	"staybook/internal/domain/venue"
)

type Location struct {
	Address   string  `json:"address,omitempty"`
	City      string  `json:"city,omitempty"`
	Zip       string  `json:"zip,omitempty"`
	Country   string  `json:"country,omitempty"`
	Continent string  `json:"continent,omitempty"`
	Lat       float64 `json:"lat,omitempty"`
	Lng       float64 `json:"lng,omitempty"`
}

type Meta struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

type VenueSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	MaxGuests   int      `json:"maxGuests"`
	Rating      float64  `json:"rating,omitempty"`
	Location    Location `json:"location"`
	Meta        Meta     `json:"meta"`
}

type VenueList struct {
	Items []VenueSummary `json:"items"`
	Total int            `json:"total"`
}

type BookingView struct {
	ID       string `json:"id"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Guests   int    `json:"guests"`
}

type VenueDetail struct {
	VenueSummary
	Bookings []BookingView `json:"bookings,omitempty"`
}

func MapVenueSummary(v venue.Venue) VenueSummary {
	return VenueSummary{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Price:       v.Price,
		MaxGuests:   v.MaxGuests,
		Rating:      v.Rating,
		Location: Location{
			Address:   v.Location.Address,
			City:      v.Location.City,
			Zip:       v.Location.Zip,
			Country:   v.Location.Country,
			Continent: v.Location.Continent,
			Lat:       v.Location.Lat,
			Lng:       v.Location.Lng,
		},
		Meta: Meta{
			Wifi:      v.Meta.Wifi,
			Parking:   v.Meta.Parking,
			Breakfast: v.Meta.Breakfast,
			Pets:      v.Meta.Pets,
		},
	}
}

func MapVenueList(venues []venue.Venue) VenueList {
	items := make([]VenueSummary, 0, len(venues))
	for _, v := range venues {
		items = append(items, MapVenueSummary(v))
	}
	return VenueList{Items: items, Total: len(items)}
}

func MapVenueDetail(v venue.Venue, withBookings bool) VenueDetail {
	detail := VenueDetail{VenueSummary: MapVenueSummary(v)}
	if !withBookings {
		return detail
	}
	bookings := make([]BookingView, 0, len(v.Bookings))
	for _, b := range v.Bookings {
		bookings = append(bookings, BookingView{
			ID:       b.ID,
			DateFrom: daterange.FormatISO(b.DateFrom),
			DateTo:   daterange.FormatISO(b.DateTo),
			Guests:   b.Guests,
		})
	}
	detail.Bookings = bookings
	return detail
}
