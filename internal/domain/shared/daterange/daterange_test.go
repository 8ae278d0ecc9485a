package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(ISO, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("valid range", func(t *testing.T) {
		dr, err := New(day("2024-01-15"), day("2024-01-18"))
		require.NoError(t, err)
		assert.Equal(t, day("2024-01-15"), dr.CheckIn)
		assert.Equal(t, day("2024-01-18"), dr.CheckOut)
	})

	t.Run("reversed range rejected", func(t *testing.T) {
		_, err := New(day("2024-01-18"), day("2024-01-15"))
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("zero-length range rejected", func(t *testing.T) {
		_, err := New(day("2024-01-15"), day("2024-01-15"))
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("missing endpoint rejected", func(t *testing.T) {
		_, err := New(time.Time{}, day("2024-01-15"))
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestOverlaps(t *testing.T) {
	t.Parallel()

	base := FromDays(day("2024-01-15"), day("2024-01-18"))

	cases := []struct {
		name     string
		other    DateRange
		overlaps bool
	}{
		{"identical", FromDays(day("2024-01-15"), day("2024-01-18")), true},
		{"strictly inside", FromDays(day("2024-01-16"), day("2024-01-17")), true},
		{"straddles start", FromDays(day("2024-01-14"), day("2024-01-16")), true},
		{"straddles end", FromDays(day("2024-01-17"), day("2024-01-20")), true},
		{"touches checkout", FromDays(day("2024-01-18"), day("2024-01-20")), false},
		{"touches checkin", FromDays(day("2024-01-12"), day("2024-01-15")), false},
		{"fully before", FromDays(day("2024-01-10"), day("2024-01-12")), false},
		{"fully after", FromDays(day("2024-01-20"), day("2024-01-22")), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, base.Overlaps(tc.other))
			assert.Equal(t, tc.overlaps, tc.other.Overlaps(base), "overlap must be symmetric")
		})
	}

	t.Run("degenerate range never overlaps itself", func(t *testing.T) {
		empty := FromDays(day("2024-01-15"), day("2024-01-15"))
		assert.False(t, empty.Overlaps(empty))

		reversed := FromDays(day("2024-01-18"), day("2024-01-15"))
		assert.False(t, reversed.Overlaps(reversed))
	})
}

func TestDayTruncation(t *testing.T) {
	t.Parallel()

	t.Run("time of day is dropped before comparing", func(t *testing.T) {
		lateCheckout := time.Date(2024, 1, 18, 23, 30, 0, 0, time.UTC)
		earlyCheckin := time.Date(2024, 1, 18, 0, 15, 0, 0, time.UTC)

		a := FromDays(day("2024-01-15"), lateCheckout)
		b := FromDays(earlyCheckin, day("2024-01-20"))
		assert.False(t, a.Overlaps(b), "sub-day precision must not break back-to-back stays")
	})

	t.Run("zone offset normalized to UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+5", 5*3600)
		local := time.Date(2024, 1, 15, 2, 0, 0, 0, loc)
		assert.Equal(t, day("2024-01-14"), Day(local))
	})

	t.Run("zero time stays zero", func(t *testing.T) {
		assert.True(t, Day(time.Time{}).IsZero())
	})
}

func TestNights(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, FromDays(day("2024-01-20"), day("2024-01-25")).Nights())
	assert.Equal(t, 1, FromDays(day("2024-01-20"), day("2024-01-21")).Nights())
	assert.Equal(t, 1, FromDays(day("2024-01-20"), day("2024-01-20")).Nights(), "floored at one night")
	assert.Equal(t, 1, FromDays(day("2024-01-25"), day("2024-01-20")).Nights(), "reversed floored at one night")
}

func TestContainsDay(t *testing.T) {
	t.Parallel()

	dr := FromDays(day("2024-01-15"), day("2024-01-18"))
	assert.True(t, dr.ContainsDay(day("2024-01-15")))
	assert.True(t, dr.ContainsDay(day("2024-01-17")))
	assert.False(t, dr.ContainsDay(day("2024-01-18")), "checkout day is not occupied")
	assert.False(t, dr.ContainsDay(day("2024-01-14")))
}

func TestISORoundTrip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-01-05", FormatISO(day("2024-01-05")))
	assert.Equal(t, "", FormatISO(time.Time{}))

	parsed, err := ParseISO("2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, day("2024-01-05"), parsed)

	parsed, err = ParseISO("")
	require.NoError(t, err)
	assert.True(t, parsed.IsZero())

	_, err = ParseISO("05.01.2024")
	assert.Error(t, err)
}
