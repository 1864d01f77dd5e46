package repository

import (
	"context"
	"quiz_backend/internal/model"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisRepository(t *testing.T) (*RedisTestRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisTestRepository(rdb, "quiz:test:"), mr
}

func TestRedisRepositoryContract(t *testing.T) {
	repo, _ := newRedisRepository(t)
	runRepositoryContract(t, repo)
}

func TestRedisKeysUsePrefix(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRedisRepository(t)
	test := &model.Test{Title: "Quiz"}
	require.NoError(t, repo.Create(ctx, test))

	assert.True(t, mr.Exists("quiz:test:"+test.ID.Hex()))

	dup := &model.Test{ID: test.ID, Title: "again"}
	assert.Error(t, repo.Create(ctx, dup))
}

func TestRedisSaveAfterExternalWriteConflicts(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRedisRepository(t)
	test := &model.Test{Title: "Quiz"}
	require.NoError(t, repo.Create(ctx, test))

	stale, err := repo.FindByID(ctx, test.ID)
	require.NoError(t, err)

	fresh, err := repo.FindByID(ctx, test.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, fresh))

	stale.Title = "stale"
	assert.ErrorIs(t, repo.Save(ctx, stale), ErrRevisionConflict)

	mr.Del(repo.key(test.ID))
	assert.ErrorIs(t, repo.Save(ctx, fresh), ErrNotFound)
}
