package implementation

import (
	"context"

	"mindwell-be/internal/entity"
	"mindwell-be/internal/mapper"
	"mindwell-be/internal/model"
	"mindwell-be/internal/repository/contract"
	"mindwell-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AISummaryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AISummaryMapper
}

func NewAISummaryRepository(db *gorm.DB) contract.AISummaryRepository {
	return &AISummaryRepositoryImpl{
		db:     db,
		mapper: mapper.NewAISummaryMapper(),
	}
}

func (r *AISummaryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AISummaryRepositoryImpl) Create(ctx context.Context, summary *entity.AISummary) error {
	m := r.mapper.ToModel(summary)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*summary = *r.mapper.ToEntity(m)
	return nil
}

func (r *AISummaryRepositoryImpl) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.AISummary{}).Error
}

func (r *AISummaryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AISummary, error) {
	var models []*model.AISummary
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
