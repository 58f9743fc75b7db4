package models

// ExerciseLoggedEvent is published to Kafka after an exercise is saved.
type ExerciseLoggedEvent struct {
	EventID     string  `json:"event_id"`    // EventID is a unique identifier for the event.
	ExerciseID  string  `json:"exercise_id"` // ExerciseID is the store id of the saved exercise.
	UserID      string  `json:"user_id"`     // UserID is the id of the user the exercise belongs to.
	Username    string  `json:"username"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`      // Date in StoreDateLayout.
	Timestamp   int64   `json:"timestamp"` // Timestamp is the Unix time (seconds) the event was produced.
}
