package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/fccJashCoda/exerciseTracker/internal/logger"
	"github.com/fccJashCoda/exerciseTracker/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userDocument is the stored shape of a user.
type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
}

func (d userDocument) toModel() models.User {
	return models.User{ID: d.ID.Hex(), Username: d.Username}
}

// MongoUserRepository reads and writes users in a Mongo collection.
type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(UsersCollection)}
}

// List returns every user projected to id and username, in natural order.
func (r *MongoUserRepository) List(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "username", Value: 1}})

	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		logger.Log.Debugw("find", "collection", UsersCollection, "error", err)
		return nil, err
	}

	var docs []userDocument
	err = cur.All(ctx, &docs)

	logger.Log.Debugw("find",
		"collection", UsersCollection,
		"result", len(docs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toModel())
	}
	return users, nil
}

// GetByID returns the user with the given hex id, or nil if none exists.
// An id that is not a valid ObjectID is an error, as the store cannot cast it.
func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("cast %q to ObjectId: %w", id, err)
	}
	return r.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

// GetByUsername returns the user with the given username, or nil if none exists.
func (r *MongoUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, bson.D{{Key: "username", Value: username}})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.D) (*models.User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, filter).Decode(&doc)

	logger.Log.Debugw("findOne",
		"collection", UsersCollection,
		"filter", filter,
		"result", doc,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	user := doc.toModel()
	return &user, nil
}

// Save inserts a new user document.
// A unique index violation on username is reported as ErrDuplicateUsername.
func (r *MongoUserRepository) Save(ctx context.Context, username string) (*models.User, error) {
	doc := userDocument{ID: primitive.NewObjectID(), Username: username}

	_, err := r.coll.InsertOne(ctx, doc)

	logger.Log.Debugw("insertOne",
		"collection", UsersCollection,
		"document", doc,
		"error", err,
	)

	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateUsername
	}
	if err != nil {
		return nil, err
	}
	user := doc.toModel()
	return &user, nil
}
