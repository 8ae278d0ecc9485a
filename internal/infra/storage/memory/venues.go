package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"staybook/internal/domain/shared/daterange"
	"staybook/internal/domain/venue"
)

// VenueRepository is an in-memory stand-in for the external venue
// service. It keeps insertion order so repeated reads render the
// collection the same way.
type VenueRepository struct {
	mu    sync.RWMutex
	items map[string]venue.Venue
	order []string
}

func NewVenueRepository() *VenueRepository {
	return &VenueRepository{items: make(map[string]venue.Venue)}
}

// Put stores or replaces a venue.
func (r *VenueRepository) Put(v venue.Venue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[v.ID]; !exists {
		r.order = append(r.order, v.ID)
	}
	r.items[v.ID] = cloneVenue(v)
}

// ByID returns a venue or venue.ErrVenueNotFound. The bookings expansion
// mirrors the external service: callers only see bookings when they asked
// for them.
func (r *VenueRepository) ByID(ctx context.Context, id string, withBookings bool) (venue.Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[id]
	if !ok {
		return venue.Venue{}, venue.ErrVenueNotFound
	}
	v = cloneVenue(v)
	if !withBookings {
		v.Bookings = nil
	}
	return v, nil
}

// All returns every venue, bookings expanded, in insertion order.
func (r *VenueRepository) All(ctx context.Context) ([]venue.Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]venue.Venue, 0, len(r.order))
	for _, id := range r.order {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}
		out = append(out, cloneVenue(r.items[id]))
	}
	return out, nil
}

// RemoveBooking drops one booking from a venue, mirroring the optimistic
// removal a host performs after a confirmed cancellation.
func (r *VenueRepository) RemoveBooking(venueID, bookingID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.items[venueID]
	if !ok {
		return false
	}
	for i, b := range v.Bookings {
		if b.ID == bookingID {
			v.Bookings = append(v.Bookings[:i], v.Bookings[i+1:]...)
			r.items[venueID] = v
			return true
		}
	}
	return false
}

func cloneVenue(v venue.Venue) venue.Venue {
	clone := v
	clone.Bookings = append([]venue.Booking(nil), v.Bookings...)
	return clone
}

type venueFixture struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	MaxGuests   int            `json:"maxGuests"`
	Rating      float64        `json:"rating"`
	Location    venue.Location `json:"location"`
	Meta        venue.Meta     `json:"meta"`
	Bookings    []struct {
		ID       string `json:"id"`
		DateFrom string `json:"dateFrom"`
		DateTo   string `json:"dateTo"`
		Guests   int    `json:"guests"`
	} `json:"bookings"`
}

// LoadFixtures seeds the repository from a JSON fixtures file. A missing
// file is not an error; a fixture with unparseable dates is skipped as a
// whole rather than half-loaded.
func (r *VenueRepository) LoadFixtures(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read fixtures: %w", err)
	}

	var fixtures []venueFixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return 0, fmt.Errorf("decode fixtures: %w", err)
	}

	loaded := 0
	for _, fx := range fixtures {
		v := venue.Venue{
			ID:          fx.ID,
			Name:        fx.Name,
			Description: fx.Description,
			Price:       fx.Price,
			MaxGuests:   fx.MaxGuests,
			Rating:      fx.Rating,
			Location:    fx.Location,
			Meta:        fx.Meta,
		}
		ok := true
		for _, b := range fx.Bookings {
			from, err := daterange.ParseISO(b.DateFrom)
			if err != nil {
				ok = false
				break
			}
			to, err := daterange.ParseISO(b.DateTo)
			if err != nil {
				ok = false
				break
			}
			v.Bookings = append(v.Bookings, venue.Booking{
				ID:       b.ID,
				DateFrom: from,
				DateTo:   to,
				Guests:   b.Guests,
			})
		}
		if !ok || v.ID == "" {
			continue
		}
		r.Put(v)
		loaded++
	}
	return loaded, nil
}

var _ venue.Repository = (*VenueRepository)(nil)
