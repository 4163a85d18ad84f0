package mapper

import (
	"mindwell-be/internal/entity"
	"mindwell-be/internal/model"
)

type AISummaryMapper struct{}

func NewAISummaryMapper() *AISummaryMapper {
	return &AISummaryMapper{}
}

func (m *AISummaryMapper) ToEntity(s *model.AISummary) *entity.AISummary {
	if s == nil {
		return nil
	}

	return &entity.AISummary{
		Id:        s.Id,
		UserId:    s.UserId,
		Period:    s.Period,
		Summary:   s.Summary,
		Fallback:  s.Fallback,
		CreatedAt: s.CreatedAt,
	}
}

func (m *AISummaryMapper) ToModel(s *entity.AISummary) *model.AISummary {
	if s == nil {
		return nil
	}

	return &model.AISummary{
		Id:        s.Id,
		UserId:    s.UserId,
		Period:    s.Period,
		Summary:   s.Summary,
		Fallback:  s.Fallback,
		CreatedAt: s.CreatedAt,
	}
}

func (m *AISummaryMapper) ToEntities(summaries []*model.AISummary) []*entity.AISummary {
	entities := make([]*entity.AISummary, len(summaries))
	for i, s := range summaries {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
