package repositories

import (
	"context"

	"gorm.io/gorm"

	"wanderly/internal/models/db_models"
)

type GenerationLogRepositoryInterface interface {
	CreateGenerationLog(ctx context.Context, entry *db_models.GenerationLog) error
}

type GenerationLogRepository struct {
	db *gorm.DB
}

// NewGenerationLogRepository falls back to a repository that discards every
// entry when db is nil.
func NewGenerationLogRepository(db *gorm.DB) GenerationLogRepositoryInterface {
	if db == nil {
		return noopGenerationLogRepository{}
	}
	return &GenerationLogRepository{db: db}
}

func (r *GenerationLogRepository) CreateGenerationLog(ctx context.Context, entry *db_models.GenerationLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

type noopGenerationLogRepository struct{}

func (noopGenerationLogRepository) CreateGenerationLog(context.Context, *db_models.GenerationLog) error {
	return nil
}
