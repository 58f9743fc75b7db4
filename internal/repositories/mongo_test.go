package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/fccJashCoda/exerciseTracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	ns := "test." + UsersCollection

	mt.Run("List", func(mt *mtest.T) {
		id1, id2 := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id1}, {Key: "username", Value: "alice"}},
			bson.D{{Key: "_id", Value: id2}, {Key: "username", Value: "bob"}},
		))

		users, err := NewMongoUserRepository(mt.DB).List(ctx)
		require.NoError(mt, err)
		assert.Equal(mt, []models.User{
			{ID: id1.Hex(), Username: "alice"},
			{ID: id2.Hex(), Username: "bob"},
		}, users)
	})

	mt.Run("List error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 13, Name: "Unauthorized", Message: "not authorized"}))

		users, err := NewMongoUserRepository(mt.DB).List(ctx)
		assert.Error(mt, err)
		assert.Nil(mt, users)
	})

	mt.Run("GetByID found", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "username", Value: "alice"}},
		))

		user, err := NewMongoUserRepository(mt.DB).GetByID(ctx, id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, &models.User{ID: id.Hex(), Username: "alice"}, user)
	})

	mt.Run("GetByID not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		user, err := NewMongoUserRepository(mt.DB).GetByID(ctx, primitive.NewObjectID().Hex())
		assert.NoError(mt, err)
		assert.Nil(mt, user)
	})

	mt.Run("GetByID invalid hex", func(mt *mtest.T) {
		user, err := NewMongoUserRepository(mt.DB).GetByID(ctx, "not-an-object-id")
		assert.ErrorIs(mt, err, primitive.ErrInvalidHex)
		assert.Nil(mt, user)
	})

	mt.Run("GetByUsername", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "username", Value: "alice"}},
		))

		user, err := NewMongoUserRepository(mt.DB).GetByUsername(ctx, "alice")
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), user.ID)
	})

	mt.Run("Save", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user, err := NewMongoUserRepository(mt.DB).Save(ctx, "alice")
		require.NoError(mt, err)
		assert.Equal(mt, "alice", user.Username)
		assert.True(mt, primitive.IsValidObjectID(user.ID))
	})

	mt.Run("Save duplicate", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: test.users index: username_1",
		}))

		user, err := NewMongoUserRepository(mt.DB).Save(ctx, "alice")
		assert.ErrorIs(mt, err, ErrDuplicateUsername)
		assert.Nil(mt, user)
	})
}

func TestMongoExerciseRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	ns := "test." + ExercisesCollection

	mt.Run("Save", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		ex := &models.Exercise{UserID: "user-1", Description: "run", Duration: 30, Date: time.Now()}
		require.NoError(mt, NewMongoExerciseRepository(mt.DB).Save(ctx, ex))
		assert.True(mt, primitive.IsValidObjectID(ex.ID))
	})

	mt.Run("Save error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 8000, Name: "AtlasError", Message: "quota exceeded"}))

		ex := &models.Exercise{UserID: "user-1", Description: "run", Duration: 30, Date: time.Now()}
		assert.Error(mt, NewMongoExerciseRepository(mt.DB).Save(ctx, ex))
		assert.Empty(mt, ex.ID)
	})

	mt.Run("Find", func(mt *mtest.T) {
		d1 := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "description", Value: "run"}, {Key: "duration", Value: 30.0}, {Key: "date", Value: d1}},
		))

		entries, err := NewMongoExerciseRepository(mt.DB).Find(ctx, models.ExerciseFilter{
			UserID: "user-1",
			From:   time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC),
			To:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Limit:  1,
		})
		require.NoError(mt, err)
		require.Len(mt, entries, 1)
		assert.Equal(mt, "run", entries[0].Description)
		assert.Equal(mt, 30.0, entries[0].Duration)
		assert.True(mt, d1.Equal(entries[0].Date))
	})

	mt.Run("Find empty", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		entries, err := NewMongoExerciseRepository(mt.DB).Find(ctx, models.ExerciseFilter{UserID: "user-1"})
		require.NoError(mt, err)
		assert.NotNil(mt, entries)
		assert.Empty(mt, entries)
	})
}

func TestEnsureMongoIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())
		assert.NoError(mt, EnsureMongoIndexes(context.Background(), mt.DB))
	})

	mt.Run("error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 85, Name: "IndexOptionsConflict", Message: "conflict"}))
		assert.Error(mt, EnsureMongoIndexes(context.Background(), mt.DB))
	})
}
