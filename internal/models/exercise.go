package models

import (
	"encoding/json"
	"time"
)

// Date layouts used on the wire.
const (
	// HumanDateLayout renders dates like "Sun Jan 01 2023".
	HumanDateLayout = "Mon Jan 02 2006"
	// StoreDateLayout is the ISO 8601 form with millisecond precision emitted for stored dates.
	StoreDateLayout = "2006-01-02T15:04:05.000Z"
)

// Exercise represents a single logged exercise record.
type Exercise struct {
	ID          string    `db:"id"`          // Opaque store identifier
	UserID      string    `db:"user_id"`     // Id of the owning user, not enforced as a foreign key
	Description string    `db:"description"` // What was done
	Duration    float64   `db:"duration"`    // Minutes
	Date        time.Time `db:"date"`        // When it was done
}

// ExerciseFilter selects a user's exercises with from <= date < to.
// Limit <= 0 means unbounded.
type ExerciseFilter struct {
	UserID string
	From   time.Time
	To     time.Time
	Limit  int64
}

// LogEntry is a single exercise as returned by the log endpoint.
type LogEntry struct {
	Description string    `json:"description" db:"description" bson:"description"`
	Duration    float64   `json:"duration" db:"duration" bson:"duration"`
	Date        time.Time `json:"date" db:"date" bson:"date"`
}

// MarshalJSON renders Date in StoreDateLayout (UTC).
func (e LogEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Description string  `json:"description"`
		Duration    float64 `json:"duration"`
		Date        string  `json:"date"`
	}{
		Description: e.Description,
		Duration:    e.Duration,
		Date:        e.Date.UTC().Format(StoreDateLayout),
	})
}

// ExerciseLog is a user's filtered exercise history.
type ExerciseLog struct {
	Username string
	Log      []LogEntry
}

// AddExerciseResponse is the denormalized payload returned after logging an exercise.
// ID is the user's id, not the exercise's.
// swagger:model AddExerciseResponse
type AddExerciseResponse struct {
	// example: alice
	Username string `json:"username"`
	// example: run
	Description string `json:"description"`
	// example: 30
	Duration float64 `json:"duration"`
	// example: 5f1d7f3e2c9a4b0017a1b2c3
	ID string `json:"_id"`
	// example: Sun Jan 01 2023
	Date string `json:"date"`
}

// ExerciseLogResponse is the body of the log endpoint.
// swagger:model ExerciseLogResponse
type ExerciseLogResponse struct {
	// example: alice
	Username string `json:"username"`
	// example: 1
	Count int        `json:"count"`
	Log   []LogEntry `json:"log"`
}
