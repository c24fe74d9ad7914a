package mapper

import (
	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/model"

	"github.com/google/uuid"
)

type RequestMapper struct{}

func NewRequestMapper() *RequestMapper {
	return &RequestMapper{}
}

func (m *RequestMapper) ToEntity(r *model.ServiceRequest) *entity.ServiceRequest {
	if r == nil {
		return nil
	}
	e := &entity.ServiceRequest{
		Id:             r.Id,
		ServiceId:      r.ServiceId,
		CustomerId:     r.CustomerId,
		ProfessionalId: r.ProfessionalId,
		Status:         entity.RequestStatus(r.Status),
		RequestDate:    r.RequestDate,
		ScheduledDate:  r.ScheduledDate,
		CompletionDate: r.CompletionDate,
		Remarks:        r.Remarks,
		LastUpdated:    r.LastUpdated,
	}
	if r.Service.Id != uuid.Nil {
		e.ServiceName = r.Service.Name
	}
	if r.Customer.User.Id != uuid.Nil {
		e.CustomerName = r.Customer.User.FullName
	}
	if r.Professional.User.Id != uuid.Nil {
		e.ProfessionalName = r.Professional.User.FullName
	}
	return e
}

func (m *RequestMapper) ToModel(r *entity.ServiceRequest) *model.ServiceRequest {
	if r == nil {
		return nil
	}
	return &model.ServiceRequest{
		Id:             r.Id,
		ServiceId:      r.ServiceId,
		CustomerId:     r.CustomerId,
		ProfessionalId: r.ProfessionalId,
		Status:         string(r.Status),
		RequestDate:    r.RequestDate,
		ScheduledDate:  r.ScheduledDate,
		CompletionDate: r.CompletionDate,
		Remarks:        r.Remarks,
		LastUpdated:    r.LastUpdated,
	}
}

func (m *RequestMapper) ToEntities(requests []*model.ServiceRequest) []*entity.ServiceRequest {
	entities := make([]*entity.ServiceRequest, len(requests))
	for i, r := range requests {
		entities[i] = m.ToEntity(r)
	}
	return entities
}

func (m *RequestMapper) RejectionToEntity(r *model.RejectedServiceRequest) *entity.RejectedServiceRequest {
	if r == nil {
		return nil
	}
	e := &entity.RejectedServiceRequest{
		Id:               r.Id,
		ServiceRequestId: r.ServiceRequestId,
		ProfessionalId:   r.ProfessionalId,
		Reason:           r.Reason,
		CreatedAt:        r.CreatedAt,
	}
	if r.ServiceRequest.Service.Id != uuid.Nil {
		e.ServiceName = r.ServiceRequest.Service.Name
	}
	if r.ServiceRequest.Customer.User.Id != uuid.Nil {
		e.CustomerName = r.ServiceRequest.Customer.User.FullName
	}
	return e
}

func (m *RequestMapper) RejectionToModel(r *entity.RejectedServiceRequest) *model.RejectedServiceRequest {
	if r == nil {
		return nil
	}
	return &model.RejectedServiceRequest{
		Id:               r.Id,
		ServiceRequestId: r.ServiceRequestId,
		ProfessionalId:   r.ProfessionalId,
		Reason:           r.Reason,
		CreatedAt:        r.CreatedAt,
	}
}

func (m *RequestMapper) RejectionsToEntities(rejections []*model.RejectedServiceRequest) []*entity.RejectedServiceRequest {
	entities := make([]*entity.RejectedServiceRequest, len(rejections))
	for i, r := range rejections {
		entities[i] = m.RejectionToEntity(r)
	}
	return entities
}
