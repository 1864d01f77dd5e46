package repository

import (
	"context"
	"encoding/json"
	"errors"
	"quiz_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

type GormTestRepository struct {
	DB *gorm.DB
}

func NewGormTestRepository(db *gorm.DB) *GormTestRepository {
	return &GormTestRepository{DB: db}
}

func (r *GormTestRepository) Create(ctx context.Context, test *model.Test) error {
	prepareCreate(test)
	return r.DB.WithContext(ctx).Create(model.NewTestDocument(test)).Error
}

func (r *GormTestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Test, error) {
	var doc model.TestDocument
	err := r.DB.WithContext(ctx).First(&doc, "id = ?", id.Hex()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.ToTest()
}

func (r *GormTestRepository) Save(ctx context.Context, test *model.Test) error {
	doc := model.NewTestDocument(test)
	now := Now()

	// Updates(map) 不经过 serializer，JSON 列需要手动编码
	instructions, err := json.Marshal(doc.Instructions)
	if err != nil {
		return err
	}
	questions, err := json.Marshal(doc.Questions)
	if err != nil {
		return err
	}

	res := r.DB.WithContext(ctx).
		Model(&model.TestDocument{}).
		Where("id = ? AND revision = ?", doc.ID, test.Revision).
		Updates(map[string]interface{}{
			"title":        doc.Title,
			"instructions": string(instructions),
			"questions":    string(questions),
			"revision":     test.Revision + 1,
			"updated_at":   now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var n int64
		if err := r.DB.WithContext(ctx).Model(&model.TestDocument{}).Where("id = ?", doc.ID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return ErrRevisionConflict
	}

	test.Revision++
	test.UpdatedAt = now
	return nil
}

func (r *GormTestRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
