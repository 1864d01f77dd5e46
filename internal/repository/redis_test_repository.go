package repository

import (
	"context"
	"encoding/json"
	"errors"
	"quiz_backend/internal/model"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RedisTestRepository 每个测试以 JSON 文档保存在 <prefix><hex id> 键下
type RedisTestRepository struct {
	Client    *redis.Client
	KeyPrefix string
}

func NewRedisTestRepository(rdb *redis.Client, keyPrefix string) *RedisTestRepository {
	return &RedisTestRepository{Client: rdb, KeyPrefix: keyPrefix}
}

func (r *RedisTestRepository) key(id primitive.ObjectID) string {
	return r.KeyPrefix + id.Hex()
}

func (r *RedisTestRepository) Create(ctx context.Context, test *model.Test) error {
	prepareCreate(test)
	data, err := json.Marshal(test)
	if err != nil {
		return err
	}

	ok, err := r.Client.SetNX(ctx, r.key(test.ID), data, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("test id already exists")
	}
	return nil
}

func (r *RedisTestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Test, error) {
	data, err := r.Client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeTest(data)
}

// Save 通过 WATCH 实现比较并交换，事务执行期间键被改写时同样视为版本冲突
func (r *RedisTestRepository) Save(ctx context.Context, test *model.Test) error {
	key := r.key(test.ID)
	next := test.Clone()
	next.Revision = test.Revision + 1
	next.UpdatedAt = Now()

	data, err := json.Marshal(next)
	if err != nil {
		return err
	}

	err = r.Client.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		stored, err := decodeTest(raw)
		if err != nil {
			return err
		}
		if stored.Revision != test.Revision {
			return ErrRevisionConflict
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		return ErrRevisionConflict
	}
	if err != nil {
		return err
	}

	test.Revision = next.Revision
	test.UpdatedAt = next.UpdatedAt
	return nil
}

func (r *RedisTestRepository) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

func decodeTest(data []byte) (*model.Test, error) {
	var t model.Test
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}
