package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogEntry_MarshalJSON(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)

	tests := []struct {
		name     string
		entry    LogEntry
		expected string
	}{
		{
			name: "utc midnight",
			entry: LogEntry{
				Description: "run",
				Duration:    30,
				Date:        time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			expected: `{"description":"run","duration":30,"date":"2023-01-01T00:00:00.000Z"}`,
		},
		{
			name: "offset converted to utc with millis",
			entry: LogEntry{
				Description: "swim",
				Duration:    12.5,
				Date:        time.Date(2023, 6, 1, 2, 30, 15, 123456789, loc),
			},
			expected: `{"description":"swim","duration":12.5,"date":"2023-05-31T23:30:15.123Z"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.entry)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestExerciseLogResponse_EmptyLog(t *testing.T) {
	data, err := json.Marshal(ExerciseLogResponse{Username: "alice", Count: 0, Log: []LogEntry{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"alice","count":0,"log":[]}`, string(data))
}

func TestHumanDateLayout(t *testing.T) {
	d := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Sun Jan 01 2023", d.Format(HumanDateLayout))
}
