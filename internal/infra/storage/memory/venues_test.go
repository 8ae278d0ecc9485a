package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/domain/venue"
)

func TestVenueRepository(t *testing.T) {
	t.Parallel()

	repo := NewVenueRepository()
	repo.Put(venue.Venue{ID: "v-1", Name: "First", Bookings: []venue.Booking{{ID: "b-1", Guests: 2}}})
	repo.Put(venue.Venue{ID: "v-2", Name: "Second"})

	t.Run("by id without expansion hides bookings", func(t *testing.T) {
		v, err := repo.ByID(context.Background(), "v-1", false)
		require.NoError(t, err)
		assert.Empty(t, v.Bookings)
	})

	t.Run("by id with expansion includes bookings", func(t *testing.T) {
		v, err := repo.ByID(context.Background(), "v-1", true)
		require.NoError(t, err)
		assert.Len(t, v.Bookings, 1)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.ByID(context.Background(), "nope", true)
		assert.ErrorIs(t, err, venue.ErrVenueNotFound)
	})

	t.Run("all keeps insertion order", func(t *testing.T) {
		all, err := repo.All(context.Background())
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "v-1", all[0].ID)
		assert.Equal(t, "v-2", all[1].ID)
	})

	t.Run("returned venues are detached copies", func(t *testing.T) {
		v, err := repo.ByID(context.Background(), "v-1", true)
		require.NoError(t, err)
		v.Bookings[0].Guests = 99

		again, err := repo.ByID(context.Background(), "v-1", true)
		require.NoError(t, err)
		assert.Equal(t, 2, again.Bookings[0].Guests)
	})

	t.Run("remove booking", func(t *testing.T) {
		assert.True(t, repo.RemoveBooking("v-1", "b-1"))
		assert.False(t, repo.RemoveBooking("v-1", "b-1"))

		v, err := repo.ByID(context.Background(), "v-1", true)
		require.NoError(t, err)
		assert.Empty(t, v.Bookings)
	})

	t.Run("cancelled context stops all", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := repo.All(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLoadFixtures(t *testing.T) {
	t.Parallel()

	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "venues.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("loads venues with bookings", func(t *testing.T) {
		repo := NewVenueRepository()
		n, err := repo.LoadFixtures(write(t, `[
			{
				"id": "v-1",
				"name": "Fjord Lodge",
				"price": 250,
				"maxGuests": 6,
				"location": {"city": "Bergen", "country": "Norway"},
				"meta": {"wifi": true},
				"bookings": [
					{"id": "b-1", "dateFrom": "2024-01-15", "dateTo": "2024-01-18", "guests": 2}
				]
			}
		]`))
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		v, err := repo.ByID(context.Background(), "v-1", true)
		require.NoError(t, err)
		require.Len(t, v.Bookings, 1)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), v.Bookings[0].DateFrom)
		assert.True(t, v.Meta.Wifi)
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		repo := NewVenueRepository()
		n, err := repo.LoadFixtures(filepath.Join(t.TempDir(), "absent.json"))
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("invalid json fails", func(t *testing.T) {
		repo := NewVenueRepository()
		_, err := repo.LoadFixtures(write(t, `{not json`))
		assert.Error(t, err)
	})

	t.Run("fixture with bad dates is skipped", func(t *testing.T) {
		repo := NewVenueRepository()
		n, err := repo.LoadFixtures(write(t, `[
			{"id": "ok", "name": "Fine", "price": 10, "maxGuests": 1},
			{"id": "bad", "bookings": [{"id": "b", "dateFrom": "15.01.2024", "dateTo": "2024-01-18"}]}
		]`))
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}
