package repositories

import (
	"context"
	"time"

	"github.com/fccJashCoda/exerciseTracker/internal/logger"
	"github.com/fccJashCoda/exerciseTracker/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// exerciseDocument is the stored shape of an exercise.
type exerciseDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"userId"`
	Description string             `bson:"description"`
	Duration    float64            `bson:"duration"`
	Date        time.Time          `bson:"date"`
}

// MongoExerciseRepository reads and writes exercises in a Mongo collection.
type MongoExerciseRepository struct {
	coll *mongo.Collection
}

func NewMongoExerciseRepository(db *mongo.Database) *MongoExerciseRepository {
	return &MongoExerciseRepository{coll: db.Collection(ExercisesCollection)}
}

// Save inserts the exercise and sets its ID.
func (r *MongoExerciseRepository) Save(ctx context.Context, exercise *models.Exercise) error {
	doc := exerciseDocument{
		ID:          primitive.NewObjectID(),
		UserID:      exercise.UserID,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date,
	}

	_, err := r.coll.InsertOne(ctx, doc)

	logger.Log.Debugw("insertOne",
		"collection", ExercisesCollection,
		"document", doc,
		"error", err,
	)

	if err != nil {
		return err
	}
	exercise.ID = doc.ID.Hex()
	return nil
}

// Find returns the user's exercises dated within [From, To) in natural order.
func (r *MongoExerciseRepository) Find(ctx context.Context, filter models.ExerciseFilter) ([]models.LogEntry, error) {
	query := bson.D{
		{Key: "userId", Value: filter.UserID},
		{Key: "date", Value: bson.D{
			{Key: "$gte", Value: filter.From},
			{Key: "$lt", Value: filter.To},
		}},
	}
	opts := options.Find().SetProjection(bson.D{
		{Key: "_id", Value: 0},
		{Key: "description", Value: 1},
		{Key: "duration", Value: 1},
		{Key: "date", Value: 1},
	})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		logger.Log.Debugw("find", "collection", ExercisesCollection, "filter", query, "error", err)
		return nil, err
	}

	entries := []models.LogEntry{}
	err = cur.All(ctx, &entries)

	logger.Log.Debugw("find",
		"collection", ExercisesCollection,
		"filter", query,
		"limit", filter.Limit,
		"result", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}
