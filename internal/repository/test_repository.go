package repository

import (
	"context"
	"errors"
	"quiz_backend/internal/model"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound         = errors.New("document not found")
	ErrRevisionConflict = errors.New("document revision conflict")
)

// TestRepository 以整个 Test 文档为单位读写。Save 按读取时的 Revision 做比较并交换，
// 成功后 Revision 自增；存储中的版本已变化时返回 ErrRevisionConflict
type TestRepository interface {
	Create(ctx context.Context, test *model.Test) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Test, error)
	Save(ctx context.Context, test *model.Test) error
	Ping(ctx context.Context) error
}

// Now 与 MongoDB 的毫秒精度保持一致
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func prepareCreate(test *model.Test) {
	if test.ID.IsZero() {
		test.ID = model.GenerateObjectID()
	}
	ts := Now()
	test.Revision = 1
	test.CreatedAt = ts
	test.UpdatedAt = ts
	if test.Instructions == nil {
		test.Instructions = []string{}
	}
	if test.Questions == nil {
		test.Questions = []model.Question{}
	}
}
