package app

import (
	"context"
	"fmt"
	"quiz_backend/internal/config"
	"quiz_backend/internal/repository"
	"quiz_backend/internal/util"
	"quiz_backend/pkg/database"
)

// OpenRepository 按 storage.type 连接对应的存储后端，返回的 close 用于释放连接
func OpenRepository(ctx context.Context, cfg *config.Config) (repository.TestRepository, func(context.Context) error, error) {
	var (
		repo      repository.TestRepository
		closeRepo = func(context.Context) error { return nil }
	)

	switch cfg.Storage.Type {
	case util.StorageMongo:
		client, err := database.InitMongo(ctx, &cfg.Mongo)
		if err != nil {
			return nil, nil, fmt.Errorf("init mongo: %w", err)
		}
		closeRepo = client.Disconnect
		repo = repository.NewMongoTestRepository(client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection))
	case util.StorageMySQL:
		db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == "debug")
		if err != nil {
			return nil, nil, fmt.Errorf("init database: %w", err)
		}
		closeRepo = func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		repo = repository.NewGormTestRepository(db)
	case util.StorageRedis:
		rdb, err := database.InitRedis(ctx, &cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("init redis: %w", err)
		}
		closeRepo = func(context.Context) error { return rdb.Close() }
		repo = repository.NewRedisTestRepository(rdb, cfg.Redis.KeyPrefix)
	case util.StorageMemory:
		repo = repository.NewMemoryTestRepository()
	default:
		return nil, nil, fmt.Errorf("unsupported storage type %q", cfg.Storage.Type)
	}

	return repository.NewInstrumentedTestRepository(repo, cfg.Storage.Type), closeRepo, nil
}
