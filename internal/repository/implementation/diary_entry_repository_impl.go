package implementation

import (
	"context"
	"errors"

	"mindwell-be/internal/entity"
	"mindwell-be/internal/mapper"
	"mindwell-be/internal/model"
	"mindwell-be/internal/repository/contract"
	"mindwell-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DiaryEntryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DiaryEntryMapper
}

func NewDiaryEntryRepository(db *gorm.DB) contract.DiaryEntryRepository {
	return &DiaryEntryRepositoryImpl{
		db:     db,
		mapper: mapper.NewDiaryEntryMapper(),
	}
}

func (r *DiaryEntryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DiaryEntryRepositoryImpl) Create(ctx context.Context, entry *entity.DiaryEntry) error {
	m := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(m)
	return nil
}

func (r *DiaryEntryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.DiaryEntry{}, id).Error
}

func (r *DiaryEntryRepositoryImpl) DeleteAllByUserIdUnscoped(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Where("user_id = ?", userId).Delete(&model.DiaryEntry{}).Error
}

func (r *DiaryEntryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DiaryEntry, error) {
	var m model.DiaryEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DiaryEntryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DiaryEntry, error) {
	var models []*model.DiaryEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *DiaryEntryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.DiaryEntry{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
