// FILE: internal/service/profile_service.go
package service

import (
	"context"
	"time"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/dto"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/apperrors"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/memory"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/specification"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IProfileService interface {
	ShowCustomer(ctx context.Context, userId uuid.UUID) (*dto.CustomerProfileResponse, error)
	UpdateCustomer(ctx context.Context, userId uuid.UUID, req dto.UpdateCustomerProfileRequest) (*dto.CustomerProfileResponse, error)

	ShowProfessional(ctx context.Context, userId uuid.UUID) (*dto.ProfessionalProfileResponse, error)
	UpdateProfessional(ctx context.Context, userId uuid.UUID, req dto.UpdateProfessionalProfileRequest) (*dto.ProfessionalProfileResponse, error)

	// Directory lists approved professionals, optionally narrowed to a
	// service. Single profiles are served through the in-memory cache.
	Directory(ctx context.Context, serviceId *uuid.UUID) ([]dto.ProfessionalProfileResponse, error)
	DirectoryEntry(ctx context.Context, professionalId uuid.UUID) (*dto.ProfessionalProfileResponse, error)
}

type profileService struct {
	uowFactory unitofwork.RepositoryFactory
	directory  *memory.DirectoryCache
}

func NewProfileService(uowFactory unitofwork.RepositoryFactory, directory *memory.DirectoryCache) IProfileService {
	return &profileService{
		uowFactory: uowFactory,
		directory:  directory,
	}
}

func toCustomerProfile(c *entity.Customer) *dto.CustomerProfileResponse {
	return &dto.CustomerProfileResponse{
		Id:        c.Id,
		UserId:    c.UserId,
		FullName:  c.FullName,
		Email:     c.Email,
		Address:   c.Address,
		Pincode:   c.Pincode,
		CreatedAt: c.CreatedAt,
	}
}

func (s *profileService) toProfessionalProfile(ctx context.Context, uow unitofwork.UnitOfWork, p *entity.Professional) (*dto.ProfessionalProfileResponse, error) {
	avg, count, err := uow.ProfessionalRepository().RatingSummary(ctx, p.Id)
	if err != nil {
		return nil, err
	}
	return &dto.ProfessionalProfileResponse{
		Id:              p.Id,
		UserId:          p.UserId,
		FullName:        p.FullName,
		Email:           p.Email,
		ServiceId:       p.ServiceId,
		ServiceName:     p.ServiceName,
		Description:     p.Description,
		YearsExperience: p.YearsExperience,
		Verification:    string(p.Verification),
		AverageRating:   avg,
		ReviewCount:     count,
		CreatedAt:       p.CreatedAt,
	}, nil
}

func (s *profileService) ShowCustomer(ctx context.Context, userId uuid.UUID) (*dto.CustomerProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperrors.NotFound("no customer profile for this account")
	}
	return toCustomerProfile(customer), nil
}

func (s *profileService) UpdateCustomer(ctx context.Context, userId uuid.UUID, req dto.UpdateCustomerProfileRequest) (*dto.CustomerProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperrors.NotFound("no customer profile for this account")
	}

	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.Pincode != nil {
		customer.Pincode = *req.Pincode
	}
	customer.UpdatedAt = time.Now()
	if err := uow.CustomerRepository().Update(ctx, customer); err != nil {
		return nil, err
	}

	if req.FullName != nil {
		if err := uow.UserRepository().UpdateFullName(ctx, userId, *req.FullName); err != nil {
			return nil, err
		}
		customer.FullName = *req.FullName
	}

	return toCustomerProfile(customer), nil
}

func (s *profileService) ShowProfessional(ctx context.Context, userId uuid.UUID) (*dto.ProfessionalProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pro, err := uow.ProfessionalRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if pro == nil {
		return nil, apperrors.NotFound("no professional profile for this account")
	}
	return s.toProfessionalProfile(ctx, uow, pro)
}

func (s *profileService) UpdateProfessional(ctx context.Context, userId uuid.UUID, req dto.UpdateProfessionalProfileRequest) (*dto.ProfessionalProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pro, err := uow.ProfessionalRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if pro == nil {
		return nil, apperrors.NotFound("no professional profile for this account")
	}

	if req.Description != nil {
		pro.Description = *req.Description
	}
	if req.YearsExperience != nil {
		pro.YearsExperience = *req.YearsExperience
	}
	pro.UpdatedAt = time.Now()
	if err := uow.ProfessionalRepository().Update(ctx, pro); err != nil {
		return nil, err
	}

	if req.FullName != nil {
		if err := uow.UserRepository().UpdateFullName(ctx, userId, *req.FullName); err != nil {
			return nil, err
		}
		pro.FullName = *req.FullName
	}

	if s.directory != nil {
		s.directory.Invalidate(pro.Id)
	}

	return s.toProfessionalProfile(ctx, uow, pro)
}

func (s *profileService) Directory(ctx context.Context, serviceId *uuid.UUID) ([]dto.ProfessionalProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ByVerification{Status: string(entity.VerificationApproved)},
	}
	if serviceId != nil {
		specs = append(specs, specification.Filter("service_id", *serviceId))
	}

	pros, err := uow.ProfessionalRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProfessionalProfileResponse, 0, len(pros))
	for _, pro := range pros {
		profile, perr := s.toProfessionalProfile(ctx, uow, pro)
		if perr != nil {
			return nil, perr
		}
		out = append(out, *profile)
	}
	return out, nil
}

func (s *profileService) DirectoryEntry(ctx context.Context, professionalId uuid.UUID) (*dto.ProfessionalProfileResponse, error) {
	if s.directory != nil {
		if cached, found := s.directory.Get(professionalId); found {
			return cached, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	pro, err := uow.ProfessionalRepository().FindOne(ctx,
		specification.ByID{ID: professionalId},
		specification.ByVerification{Status: string(entity.VerificationApproved)},
	)
	if err != nil {
		return nil, err
	}
	if pro == nil {
		return nil, apperrors.NotFound("professional not found")
	}

	profile, err := s.toProfessionalProfile(ctx, uow, pro)
	if err != nil {
		return nil, err
	}
	if s.directory != nil {
		s.directory.Save(profile)
	}
	return profile, nil
}
