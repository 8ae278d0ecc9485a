package ginserver

import (
	"strconv"
	"strings"
	"time"

	"staybook/internal/domain/shared/daterange"
)

func parseInt(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return v
}

func parseFloat(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseBool(raw string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return v
}

// parseISODate parses yyyy-mm-dd; "" is valid and means unset. The bool
// is false only for a present but malformed value.
func parseISODate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	t, err := daterange.ParseISO(raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseYearMonth parses yyyy-mm; "" is valid and means the current month.
func parseYearMonth(raw string) (int, time.Month, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, 0, true
	}
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		return 0, 0, false
	}
	return t.Year(), t.Month(), true
}
