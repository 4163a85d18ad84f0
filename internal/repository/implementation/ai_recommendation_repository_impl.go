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

type AIRecommendationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AIRecommendationMapper
}

func NewAIRecommendationRepository(db *gorm.DB) contract.AIRecommendationRepository {
	return &AIRecommendationRepositoryImpl{
		db:     db,
		mapper: mapper.NewAIRecommendationMapper(),
	}
}

func (r *AIRecommendationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AIRecommendationRepositoryImpl) Create(ctx context.Context, rec *entity.AIRecommendation) error {
	m := r.mapper.ToModel(rec)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*rec = *r.mapper.ToEntity(m)
	return nil
}

func (r *AIRecommendationRepositoryImpl) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.AIRecommendation{}).Error
}

func (r *AIRecommendationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AIRecommendation, error) {
	var models []*model.AIRecommendation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
