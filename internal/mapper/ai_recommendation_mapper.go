package mapper

import (
	"mindwell-be/internal/entity"
	"mindwell-be/internal/model"

	"gorm.io/datatypes"
)

type AIRecommendationMapper struct{}

func NewAIRecommendationMapper() *AIRecommendationMapper {
	return &AIRecommendationMapper{}
}

func (m *AIRecommendationMapper) ToEntity(r *model.AIRecommendation) *entity.AIRecommendation {
	if r == nil {
		return nil
	}

	return &entity.AIRecommendation{
		Id:              r.Id,
		UserId:          r.UserId,
		Source:          r.Source,
		Context:         r.Context,
		Recommendations: []string(r.Recommendations),
		Fallback:        r.Fallback,
		CreatedAt:       r.CreatedAt,
	}
}

func (m *AIRecommendationMapper) ToModel(r *entity.AIRecommendation) *model.AIRecommendation {
	if r == nil {
		return nil
	}

	return &model.AIRecommendation{
		Id:              r.Id,
		UserId:          r.UserId,
		Source:          r.Source,
		Context:         r.Context,
		Recommendations: datatypes.NewJSONSlice(r.Recommendations),
		Fallback:        r.Fallback,
		CreatedAt:       r.CreatedAt,
	}
}

func (m *AIRecommendationMapper) ToEntities(recs []*model.AIRecommendation) []*entity.AIRecommendation {
	entities := make([]*entity.AIRecommendation, len(recs))
	for i, r := range recs {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
