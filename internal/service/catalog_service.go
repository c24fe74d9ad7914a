// FILE: internal/service/catalog_service.go
package service

import (
	"context"
	"time"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/dto"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/apperrors"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/specification"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICatalogService interface {
	Create(ctx context.Context, req dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	Update(ctx context.Context, req dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Show(ctx context.Context, id uuid.UUID) (*dto.ServiceResponse, error)
	List(ctx context.Context, includeInactive bool) ([]dto.ServiceResponse, error)
	Search(ctx context.Context, query string, limit, offset int) ([]dto.ServiceResponse, error)
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory) ICatalogService {
	return &catalogService{uowFactory: uowFactory}
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		Id:            s.Id,
		Name:          s.Name,
		BasePrice:     s.BasePrice,
		EstimatedTime: s.EstimatedTime,
		Description:   s.Description,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
	}
}

func toServiceResponses(services []*entity.Service) []dto.ServiceResponse {
	out := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, *toServiceResponse(s))
	}
	return out
}

func (s *catalogService) Create(ctx context.Context, req dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ServiceRepository().FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Validation("a service with this name already exists")
	}

	svc := entity.Service{
		Id:            uuid.New(),
		Name:          req.Name,
		BasePrice:     req.BasePrice,
		EstimatedTime: req.EstimatedTime,
		Description:   req.Description,
		IsActive:      true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := uow.ServiceRepository().Create(ctx, &svc); err != nil {
		return nil, err
	}
	return toServiceResponse(&svc), nil
}

func (s *catalogService) Update(ctx context.Context, req dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	svc, err := uow.ServiceRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperrors.NotFound("service not found")
	}

	if req.Name != nil && *req.Name != svc.Name {
		dup, derr := uow.ServiceRepository().FindByName(ctx, *req.Name)
		if derr != nil {
			return nil, derr
		}
		if dup != nil {
			return nil, apperrors.Validation("a service with this name already exists")
		}
		svc.Name = *req.Name
	}
	if req.BasePrice != nil {
		svc.BasePrice = *req.BasePrice
	}
	if req.EstimatedTime != nil {
		svc.EstimatedTime = *req.EstimatedTime
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}
	svc.UpdatedAt = time.Now()

	if err := uow.ServiceRepository().Update(ctx, svc); err != nil {
		return nil, err
	}
	return toServiceResponse(svc), nil
}

func (s *catalogService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	svc, err := uow.ServiceRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if svc == nil {
		return apperrors.NotFound("service not found")
	}

	// A service a professional still offers can only be deactivated.
	refs, err := uow.ProfessionalRepository().CountReferencingService(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return apperrors.InvalidState("service has registered professionals, deactivate it instead")
	}

	openRequests, err := uow.ServiceRequestRepository().Count(ctx,
		specification.ByService{ServiceID: id},
		specification.ByStatus{Status: string(entity.RequestStatusRequested)},
	)
	if err != nil {
		return err
	}
	if openRequests > 0 {
		return apperrors.InvalidState("service has open requests, deactivate it instead")
	}

	return uow.ServiceRepository().Delete(ctx, id)
}

func (s *catalogService) Show(ctx context.Context, id uuid.UUID) (*dto.ServiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	svc, err := uow.ServiceRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperrors.NotFound("service not found")
	}
	return toServiceResponse(svc), nil
}

func (s *catalogService) List(ctx context.Context, includeInactive bool) ([]dto.ServiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "name", Desc: false},
	}
	if !includeInactive {
		specs = append(specs, specification.Filter("is_active", true))
	}

	services, err := uow.ServiceRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return toServiceResponses(services), nil
}

func (s *catalogService) Search(ctx context.Context, query string, limit, offset int) ([]dto.ServiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	services, err := uow.ServiceRepository().Search(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	return toServiceResponses(services), nil
}
