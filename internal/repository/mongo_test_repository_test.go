package repository

import (
	"context"
	"quiz_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoRevisionFilter(t *testing.T) {
	id := model.GenerateObjectID()

	current := revisionFilter(&model.Test{ID: id, Revision: 3})
	assert.Equal(t, bson.M{"_id": id, "revision": int64(3)}, current)

	legacy := revisionFilter(&model.Test{ID: id})
	assert.Equal(t, bson.M{"_id": id, "revision": bson.M{"$in": bson.A{int64(0), nil}}}, legacy)
}

func TestMongoTestRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create assigns identity", func(mt *mtest.T) {
		repo := NewMongoTestRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		test := &model.Test{Title: "Quiz"}
		require.NoError(mt, repo.Create(context.Background(), test))
		assert.False(mt, test.ID.IsZero())
		assert.Equal(mt, int64(1), test.Revision)
	})

	mt.Run("document written without revision can be saved", func(mt *mtest.T) {
		ctx := context.Background()
		repo := NewMongoTestRepository(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		id := model.GenerateObjectID()
		started := Now()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "title", Value: "Quiz"},
			{Key: "instructions", Value: bson.A{"Answer honestly"}},
			{Key: "questions", Value: bson.A{
				bson.D{
					{Key: "questionText", Value: "q"},
					{Key: "maxTime", Value: 30},
					{Key: "answer", Value: bson.D{
						{Key: "text", Value: ""},
						{Key: "startTime", Value: started},
					}},
				},
			}},
		}))

		found, err := repo.FindByID(ctx, id)
		require.NoError(mt, err)
		assert.Equal(mt, int64(0), found.Revision)
		require.Len(mt, found.Questions, 1)
		require.NotNil(mt, found.Questions[0].Answer.StartTime)
		assert.True(mt, started.Equal(*found.Questions[0].Answer.StartTime))
		assert.Nil(mt, found.Questions[0].Answer.EndTime)

		mt.ClearEvents()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))
		found.Questions[0].Answer.Text = "42"
		require.NoError(mt, repo.Save(ctx, found))
		assert.Equal(mt, int64(1), found.Revision)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "update", evt.CommandName)
	})

	mt.Run("unmatched save on existing document is a conflict", func(mt *mtest.T) {
		repo := NewMongoTestRepository(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}),
		)

		test := &model.Test{ID: model.GenerateObjectID(), Revision: 2}
		assert.ErrorIs(mt, repo.Save(context.Background(), test), ErrRevisionConflict)
		assert.Equal(mt, int64(2), test.Revision)
	})

	mt.Run("unmatched save on missing document is not found", func(mt *mtest.T) {
		repo := NewMongoTestRepository(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch),
		)

		test := &model.Test{ID: model.GenerateObjectID(), Revision: 2}
		assert.ErrorIs(mt, repo.Save(context.Background(), test), ErrNotFound)
	})

	mt.Run("find missing document", func(mt *mtest.T) {
		repo := NewMongoTestRepository(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.FindByID(context.Background(), model.GenerateObjectID())
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}
