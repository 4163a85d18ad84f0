package mapper

import (
	"mindwell-be/internal/entity"
	"mindwell-be/internal/model"
)

type MoodLogMapper struct{}

func NewMoodLogMapper() *MoodLogMapper {
	return &MoodLogMapper{}
}

func (m *MoodLogMapper) ToEntity(l *model.MoodLog) *entity.MoodLog {
	if l == nil {
		return nil
	}

	return &entity.MoodLog{
		Id:        l.Id,
		UserId:    l.UserId,
		Emoji:     l.Emoji,
		Note:      l.Note,
		Date:      l.Date,
		CreatedAt: l.CreatedAt,
	}
}

func (m *MoodLogMapper) ToModel(l *entity.MoodLog) *model.MoodLog {
	if l == nil {
		return nil
	}

	return &model.MoodLog{
		Id:        l.Id,
		UserId:    l.UserId,
		Emoji:     l.Emoji,
		Note:      l.Note,
		Date:      l.Date,
		CreatedAt: l.CreatedAt,
	}
}

func (m *MoodLogMapper) ToEntities(logs []*model.MoodLog) []*entity.MoodLog {
	entities := make([]*entity.MoodLog, len(logs))
	for i, l := range logs {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
