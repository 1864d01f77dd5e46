package repository

import (
	"context"
	"errors"
	"quiz_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoTestRepository struct {
	Collection *mongo.Collection
}

func NewMongoTestRepository(coll *mongo.Collection) *MongoTestRepository {
	return &MongoTestRepository{Collection: coll}
}

func (r *MongoTestRepository) Create(ctx context.Context, test *model.Test) error {
	prepareCreate(test)
	_, err := r.Collection.InsertOne(ctx, test)
	return err
}

func (r *MongoTestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Test, error) {
	var t model.Test
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Save 整文档替换，过滤条件带上读取时的 revision
func (r *MongoTestRepository) Save(ctx context.Context, test *model.Test) error {
	next := test.Clone()
	next.Revision = test.Revision + 1
	next.UpdatedAt = Now()

	res, err := r.Collection.ReplaceOne(ctx, revisionFilter(test), next)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		n, err := r.Collection.CountDocuments(ctx, bson.M{"_id": test.ID})
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return ErrRevisionConflict
	}

	test.Revision = next.Revision
	test.UpdatedAt = next.UpdatedAt
	return nil
}

// revisionFilter 早期写入的文档没有 revision 字段，读取后为 0，此时匹配缺失或为 0 的文档
func revisionFilter(test *model.Test) bson.M {
	if test.Revision == 0 {
		return bson.M{"_id": test.ID, "revision": bson.M{"$in": bson.A{int64(0), nil}}}
	}
	return bson.M{"_id": test.ID, "revision": test.Revision}
}

func (r *MongoTestRepository) Ping(ctx context.Context) error {
	return r.Collection.Database().Client().Ping(ctx, nil)
}
