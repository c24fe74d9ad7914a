package mapper

import (
	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/model"

	"github.com/google/uuid"
)

type ReviewMapper struct{}

func NewReviewMapper() *ReviewMapper {
	return &ReviewMapper{}
}

func (m *ReviewMapper) ToEntity(r *model.Review) *entity.Review {
	if r == nil {
		return nil
	}
	e := &entity.Review{
		Id:               r.Id,
		ServiceRequestId: r.ServiceRequestId,
		CustomerId:       r.CustomerId,
		ProfessionalId:   r.ProfessionalId,
		Rating:           r.Rating,
		Comment:          r.Comment,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	if r.ServiceRequest.Customer.User.Id != uuid.Nil {
		e.CustomerName = r.ServiceRequest.Customer.User.FullName
	}
	if r.ServiceRequest.Service.Id != uuid.Nil {
		e.ServiceName = r.ServiceRequest.Service.Name
	}
	return e
}

func (m *ReviewMapper) ToModel(r *entity.Review) *model.Review {
	if r == nil {
		return nil
	}
	return &model.Review{
		Id:               r.Id,
		ServiceRequestId: r.ServiceRequestId,
		CustomerId:       r.CustomerId,
		ProfessionalId:   r.ProfessionalId,
		Rating:           r.Rating,
		Comment:          r.Comment,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func (m *ReviewMapper) ToEntities(reviews []*model.Review) []*entity.Review {
	entities := make([]*entity.Review, len(reviews))
	for i, r := range reviews {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
