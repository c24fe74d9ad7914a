package mapper

import (
	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/model"
)

type ServiceMapper struct{}

func NewServiceMapper() *ServiceMapper {
	return &ServiceMapper{}
}

func (m *ServiceMapper) ToEntity(s *model.Service) *entity.Service {
	if s == nil {
		return nil
	}
	return &entity.Service{
		Id:            s.Id,
		Name:          s.Name,
		BasePrice:     s.BasePrice,
		EstimatedTime: s.EstimatedTime,
		Description:   s.Description,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (m *ServiceMapper) ToModel(s *entity.Service) *model.Service {
	if s == nil {
		return nil
	}
	return &model.Service{
		Id:            s.Id,
		Name:          s.Name,
		BasePrice:     s.BasePrice,
		EstimatedTime: s.EstimatedTime,
		Description:   s.Description,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (m *ServiceMapper) ToEntities(services []*model.Service) []*entity.Service {
	entities := make([]*entity.Service, len(services))
	for i, s := range services {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
