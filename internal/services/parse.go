package services

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order; values without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-1-2",
}

// logEpoch is the default lower bound of a log query.
var logEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}

func parseDuration(value string) (float64, error) {
	d, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, strconv.ErrSyntax
	}
	return d, nil
}

// parseLimit returns 0 (unbounded) for an empty or non-positive limit.
func parseLimit(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, nil
	}
	return n, nil
}
