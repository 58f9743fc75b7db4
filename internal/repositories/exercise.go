package repositories

import (
	"context"

	"github.com/fccJashCoda/exerciseTracker/internal/logger"
	"github.com/fccJashCoda/exerciseTracker/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ExerciseWriteRepository writes exercises to Postgres.
type ExerciseWriteRepository struct {
	db *sqlx.DB
}

func NewExerciseWriteRepository(db *sqlx.DB) *ExerciseWriteRepository {
	return &ExerciseWriteRepository{db: db}
}

// Save inserts the exercise and sets its ID.
func (r *ExerciseWriteRepository) Save(ctx context.Context, exercise *models.Exercise) error {
	const query = `
		INSERT INTO exercises (id, user_id, description, duration, date)
		VALUES ($1, $2, $3, $4, $5)
	`
	id := uuid.New().String()
	args := []any{id, exercise.UserID, exercise.Description, exercise.Duration, exercise.Date}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Debugw("query",
		"sql", compact(query),
		"args", args,
		"error", err,
	)

	if err != nil {
		return err
	}
	exercise.ID = id
	return nil
}

// ExerciseReadRepository reads exercises from Postgres.
type ExerciseReadRepository struct {
	db *sqlx.DB
}

func NewExerciseReadRepository(db *sqlx.DB) *ExerciseReadRepository {
	return &ExerciseReadRepository{db: db}
}

// Find returns the user's exercises dated within [From, To), oldest first.
// A NULL limit means no limit to Postgres.
func (r *ExerciseReadRepository) Find(ctx context.Context, filter models.ExerciseFilter) ([]models.LogEntry, error) {
	const query = `
		SELECT description, duration, date
		FROM exercises
		WHERE user_id = $1
		  AND date >= $2
		  AND date < $3
		ORDER BY date, id
		LIMIT $4
	`
	var limit *int64
	if filter.Limit > 0 {
		limit = &filter.Limit
	}
	args := []any{filter.UserID, filter.From, filter.To, limit}

	entries := []models.LogEntry{}
	err := r.db.SelectContext(ctx, &entries, query, args...)

	logger.Log.Debugw("query",
		"sql", compact(query),
		"args", []any{filter.UserID, filter.From, filter.To, filter.Limit},
		"result", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}
