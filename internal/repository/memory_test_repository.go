package repository

import (
	"context"
	"quiz_backend/internal/model"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryTestRepository 进程内存储，保存的是副本，调用方修改返回值不会影响存储
type MemoryTestRepository struct {
	mu    sync.RWMutex
	tests map[primitive.ObjectID]*model.Test
}

func NewMemoryTestRepository() *MemoryTestRepository {
	return &MemoryTestRepository{tests: make(map[primitive.ObjectID]*model.Test)}
}

func (r *MemoryTestRepository) Create(ctx context.Context, test *model.Test) error {
	prepareCreate(test)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tests[test.ID] = test.Clone()
	return nil
}

func (r *MemoryTestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Test, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tests[id]
	if !ok {
		return nil, ErrNotFound
	}
	return t.Clone(), nil
}

func (r *MemoryTestRepository) Save(ctx context.Context, test *model.Test) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.tests[test.ID]
	if !ok {
		return ErrNotFound
	}
	if stored.Revision != test.Revision {
		return ErrRevisionConflict
	}

	test.Revision++
	test.UpdatedAt = Now()
	r.tests[test.ID] = test.Clone()
	return nil
}

func (r *MemoryTestRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}
