package implementation

import (
	"context"
	"errors"
	"time"

	"mindwell-be/internal/entity"
	"mindwell-be/internal/mapper"
	"mindwell-be/internal/model"
	"mindwell-be/internal/repository/contract"
	"mindwell-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrDuplicateMoodLog signals the (user_id, date) unique index fired.
var ErrDuplicateMoodLog = errors.New("mood already logged for this date")

type MoodLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MoodLogMapper
}

func NewMoodLogRepository(db *gorm.DB) contract.MoodLogRepository {
	return &MoodLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewMoodLogMapper(),
	}
}

func (r *MoodLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MoodLogRepositoryImpl) Create(ctx context.Context, log *entity.MoodLog) error {
	m := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateMoodLog
		}
		return err
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

func (r *MoodLogRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MoodLog{}, id).Error
}

func (r *MoodLogRepositoryImpl) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.MoodLog{}).Error
}

func (r *MoodLogRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MoodLog, error) {
	var m model.MoodLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MoodLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MoodLog, error) {
	var models []*model.MoodLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MoodLogRepositoryImpl) FindActiveUserIds(ctx context.Context, since time.Time) ([]uuid.UUID, error) {
	var userIds []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.MoodLog{}).
		Distinct("user_id").
		Where("date >= ?", since.Format("2006-01-02")).
		Pluck("user_id", &userIds).Error
	if err != nil {
		return nil, err
	}
	return userIds, nil
}

func (r *MoodLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.MoodLog{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
