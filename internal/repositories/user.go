package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fccJashCoda/exerciseTracker/internal/logger"
	"github.com/fccJashCoda/exerciseTracker/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

// uniqueViolation is the Postgres SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

// UserReadRepository reads users from Postgres.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// List returns every user projected to id and username, in table order.
func (r *UserReadRepository) List(ctx context.Context) ([]models.User, error) {
	const query = `SELECT id, username FROM users`

	users := []models.User{}
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Debugw("query",
		"sql", compact(query),
		"result", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID returns the user with the given id, or nil if none exists.
func (r *UserReadRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	const query = `SELECT id, username FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByUsername returns the user with the given username, or nil if none exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `SELECT id, username FROM users WHERE username = $1`
	return r.getOne(ctx, query, username)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, query, arg)

	logger.Log.Debugw("query",
		"sql", compact(query),
		"args", []any{arg},
		"result", user,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository writes users to Postgres.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user with a fresh id.
// A unique index violation on username is reported as ErrDuplicateUsername.
func (r *UserWriteRepository) Save(ctx context.Context, username string) (*models.User, error) {
	const query = `
		INSERT INTO users (id, username)
		VALUES ($1, $2)
	`
	user := models.User{ID: uuid.New().String(), Username: username}
	args := []any{user.ID, user.Username}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("query",
		"sql", compact(query),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return nil, ErrDuplicateUsername
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
