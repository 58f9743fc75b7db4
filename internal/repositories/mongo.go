package repositories

import (
	"context"

	"github.com/fccJashCoda/exerciseTracker/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used by the Mongo repositories.
const (
	UsersCollection     = "users"
	ExercisesCollection = "exercises"
)

// EnsureMongoIndexes creates the unique username index and the exercise lookup index.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	name, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	logger.Log.Debugw("index", "collection", UsersCollection, "result", name, "error", err)
	if err != nil {
		return err
	}

	name, err = db.Collection(ExercisesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
	})
	logger.Log.Debugw("index", "collection", ExercisesCollection, "result", name, "error", err)
	return err
}
