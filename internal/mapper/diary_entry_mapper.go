package mapper

import (
	"time"

	"mindwell-be/internal/entity"
	"mindwell-be/internal/model"

	"gorm.io/gorm"
)

type DiaryEntryMapper struct{}

func NewDiaryEntryMapper() *DiaryEntryMapper {
	return &DiaryEntryMapper{}
}

func (m *DiaryEntryMapper) ToEntity(e *model.DiaryEntry) *entity.DiaryEntry {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	return &entity.DiaryEntry{
		Id:        e.Id,
		UserId:    e.UserId,
		Title:     e.Title,
		Content:   e.Content,
		Mood:      e.Mood,
		WordCount: e.WordCount,
		CreatedAt: e.CreatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *DiaryEntryMapper) ToModel(e *entity.DiaryEntry) *model.DiaryEntry {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	}

	return &model.DiaryEntry{
		Id:        e.Id,
		UserId:    e.UserId,
		Title:     e.Title,
		Content:   e.Content,
		Mood:      e.Mood,
		WordCount: e.WordCount,
		CreatedAt: e.CreatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *DiaryEntryMapper) ToEntities(entries []*model.DiaryEntry) []*entity.DiaryEntry {
	entities := make([]*entity.DiaryEntry, len(entries))
	for i, e := range entries {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
