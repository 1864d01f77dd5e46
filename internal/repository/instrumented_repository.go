package repository

import (
	"context"
	"errors"
	"quiz_backend/internal/model"
	"quiz_backend/pkg/monitoring"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InstrumentedTestRepository 为任意后端记录 Prometheus 指标
type InstrumentedTestRepository struct {
	Next    TestRepository
	Backend string
}

func NewInstrumentedTestRepository(next TestRepository, backend string) *InstrumentedTestRepository {
	return &InstrumentedTestRepository{Next: next, Backend: backend}
}

func (r *InstrumentedTestRepository) Create(ctx context.Context, test *model.Test) error {
	start := time.Now()
	err := r.Next.Create(ctx, test)
	monitoring.ObserveStore(r.Backend, "create", start, err)
	return err
}

func (r *InstrumentedTestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Test, error) {
	start := time.Now()
	t, err := r.Next.FindByID(ctx, id)
	monitoring.ObserveStore(r.Backend, "find", start, ignoreNotFound(err))
	return t, err
}

func (r *InstrumentedTestRepository) Save(ctx context.Context, test *model.Test) error {
	start := time.Now()
	err := r.Next.Save(ctx, test)
	monitoring.ObserveStore(r.Backend, "save", start, err)
	return err
}

func (r *InstrumentedTestRepository) Ping(ctx context.Context) error {
	return r.Next.Ping(ctx)
}

func ignoreNotFound(err error) error {
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}
