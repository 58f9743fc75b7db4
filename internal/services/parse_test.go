package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in        string
		expected  time.Time
		expectErr bool
	}{
		{in: "2023-01-01", expected: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{in: "1900-1-1", expected: time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)},
		{in: " 2023-12-31 ", expected: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)},
		{in: "2023-06-01T10:30:00", expected: time.Date(2023, 6, 1, 10, 30, 0, 0, time.UTC)},
		{in: "2023-06-01T10:30", expected: time.Date(2023, 6, 1, 10, 30, 0, 0, time.UTC)},
		{in: "2023-06-01T10:30:00+02:00", expected: time.Date(2023, 6, 1, 8, 30, 0, 0, time.UTC)},
		{in: "2023-06-01T10:30:00.250Z", expected: time.Date(2023, 6, 1, 10, 30, 0, 250000000, time.UTC)},
		{in: "yesterday", expectErr: true},
		{in: "2023-13-01", expectErr: true},
		{in: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDate(tt.in)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in        string
		expected  float64
		expectErr bool
	}{
		{in: "30", expected: 30},
		{in: " 45 ", expected: 45},
		{in: "12.5", expected: 12.5},
		{in: "0", expected: 0},
		{in: "abc", expectErr: true},
		{in: "NaN", expectErr: true},
		{in: "Inf", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDuration(tt.in)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		in        string
		expected  int64
		expectErr bool
	}{
		{in: "", expected: 0},
		{in: "5", expected: 5},
		{in: "0", expected: 0},
		{in: "-3", expected: 0},
		{in: "ten", expectErr: true},
		{in: "2.5", expectErr: true},
	}

	for _, tt := range tests {
		t.Run("limit="+tt.in, func(t *testing.T) {
			got, err := parseLimit(tt.in)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
