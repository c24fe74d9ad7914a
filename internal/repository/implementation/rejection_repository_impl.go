package implementation

import (
	"context"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/mapper"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/model"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/contract"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RejectionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RequestMapper
}

func NewRejectionRepository(db *gorm.DB) contract.RejectionRepository {
	return &RejectionRepositoryImpl{
		db:     db,
		mapper: mapper.NewRequestMapper(),
	}
}

func (r *RejectionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RejectionRepositoryImpl) Insert(ctx context.Context, rejection *entity.RejectedServiceRequest) (bool, error) {
	m := r.mapper.RejectionToModel(rejection)
	// ON CONFLICT DO NOTHING against the unique (request, professional)
	// index. RowsAffected 0 means the pair was already recorded.
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(m)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *RejectionRepositoryImpl) Exists(ctx context.Context, requestId, professionalId uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.RejectedServiceRequest{}).
		Where("service_request_id = ? AND professional_id = ?", requestId, professionalId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *RejectionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RejectedServiceRequest, error) {
	var ms []*model.RejectedServiceRequest
	query := r.applySpecifications(
		r.db.WithContext(ctx).
			Preload("ServiceRequest.Service").
			Preload("ServiceRequest.Customer.User"),
		specs...,
	)

	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	return r.mapper.RejectionsToEntities(ms), nil
}

func (r *RejectionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.RejectedServiceRequest{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *RejectionRepositoryImpl) CountApprovedRejectors(ctx context.Context, requestId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.RejectedServiceRequest{}).
		Joins("JOIN professionals ON professionals.id = rejected_service_requests.professional_id").
		Where("rejected_service_requests.service_request_id = ?", requestId).
		Where("professionals.verification = ?", "approved").
		Distinct("rejected_service_requests.professional_id").
		Count(&count).Error
	return count, err
}
