package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fccJashCoda/exerciseTracker/internal/logger"
	"github.com/fccJashCoda/exerciseTracker/internal/metrics"
	"github.com/fccJashCoda/exerciseTracker/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=exercise.go -destination=exercise_mock.go -package=services

var (
	// ErrMissingData is returned when userId, description or duration is empty.
	ErrMissingData = errors.New("missing data")
	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrMissingUserID is returned when a log is requested without a user id.
	ErrMissingUserID = errors.New("missing user id")
	// ErrInvalidDuration is returned when duration is not a number.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrInvalidDate is returned when a date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidLimit is returned when limit is not an integer.
	ErrInvalidLimit = errors.New("invalid limit")
)

// UserFinder resolves users by id.
type UserFinder interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// ExerciseWriter persists exercises.
type ExerciseWriter interface {
	Save(ctx context.Context, exercise *models.Exercise) error
}

// ExerciseReader queries exercises.
type ExerciseReader interface {
	Find(ctx context.Context, filter models.ExerciseFilter) ([]models.LogEntry, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ExerciseService logs exercises and reads exercise history.
type ExerciseService struct {
	users       UserFinder
	writer      ExerciseWriter
	reader      ExerciseReader
	kafkaWriter KafkaWriter // optional
	now         func() time.Time
}

// NewExerciseService creates a new ExerciseService. kafkaWriter may be nil.
func NewExerciseService(
	users UserFinder,
	writer ExerciseWriter,
	reader ExerciseReader,
	kafkaWriter KafkaWriter,
) *ExerciseService {
	return &ExerciseService{
		users:       users,
		writer:      writer,
		reader:      reader,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// AddExercise logs an exercise for the user and returns the user and the saved record.
// An empty date means now.
func (s *ExerciseService) AddExercise(ctx context.Context, userID, description, duration, date string) (*models.User, *models.Exercise, error) {
	if userID == "" || description == "" || duration == "" {
		return nil, nil, ErrMissingData
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		logger.Log.Infow("exercise for unknown user", "userID", userID)
		return nil, nil, ErrUserNotFound
	}

	minutes, err := parseDuration(duration)
	if err != nil {
		logger.Log.Errorw("failed to cast duration", "duration", duration, "err", err)
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidDuration, duration)
	}

	when := s.now().UTC()
	if date != "" {
		if when, err = parseDate(date); err != nil {
			logger.Log.Errorw("failed to cast date", "date", date, "err", err)
			return nil, nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
		}
	}

	exercise := &models.Exercise{
		UserID:      user.ID,
		Description: description,
		Duration:    minutes,
		Date:        when,
	}
	if err := s.writer.Save(ctx, exercise); err != nil {
		logger.Log.Errorw("failed to save exercise", "userID", userID, "err", err)
		return nil, nil, err
	}

	metrics.ExercisesLogged.Inc()
	s.publishExercise(ctx, user, exercise)

	return user, exercise, nil
}

// GetLog returns the user's exercises dated within [from, to), at most limit entries.
// from defaults to 1900-01-01, to to now, and an empty or non-positive limit means unbounded.
// An unknown user is reported as ErrUserNotFound, which callers treat as a generic failure.
func (s *ExerciseService) GetLog(ctx context.Context, userID, from, to, limit string) (*models.ExerciseLog, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	filter := models.ExerciseFilter{
		UserID: userID,
		From:   logEpoch,
		To:     s.now().UTC(),
	}

	var err error
	if from != "" {
		if filter.From, err = parseDate(from); err != nil {
			logger.Log.Errorw("failed to cast from date", "from", from, "err", err)
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, from)
		}
	}
	if to != "" {
		if filter.To, err = parseDate(to); err != nil {
			logger.Log.Errorw("failed to cast to date", "to", to, "err", err)
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, to)
		}
	}
	if filter.Limit, err = parseLimit(limit); err != nil {
		logger.Log.Errorw("failed to cast limit", "limit", limit, "err", err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidLimit, limit)
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("log requested for unknown user", "userID", userID)
		return nil, ErrUserNotFound
	}

	entries, err := s.reader.Find(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to find exercises", "userID", userID, "err", err)
		return nil, err
	}
	if entries == nil {
		entries = []models.LogEntry{}
	}

	return &models.ExerciseLog{Username: user.Username, Log: entries}, nil
}

// publishExercise publishes an exercise.logged event to Kafka.
// Failures are logged and never reach the caller.
func (s *ExerciseService) publishExercise(ctx context.Context, user *models.User, exercise *models.Exercise) {
	if s.kafkaWriter == nil {
		metrics.EventsPublished.WithLabelValues("skipped").Inc()
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "exercise_id", exercise.ID)
		return
	}

	event := models.ExerciseLoggedEvent{
		EventID:     uuid.NewString(),
		ExerciseID:  exercise.ID,
		UserID:      user.ID,
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date.UTC().Format(models.StoreDateLayout),
		Timestamp:   s.now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		metrics.EventsPublished.WithLabelValues("error").Inc()
		logger.Log.Errorw("Failed to marshal exercise event for Kafka", "exercise_id", exercise.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(user.ID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		metrics.EventsPublished.WithLabelValues("error").Inc()
		logger.Log.Errorw("Failed to publish exercise event to Kafka", "exercise_id", exercise.ID, "error", err)
		return
	}

	metrics.EventsPublished.WithLabelValues("ok").Inc()
	logger.Log.Infow("Exercise event published to Kafka", "event_id", event.EventID, "exercise_id", exercise.ID)
}
