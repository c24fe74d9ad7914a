package implementation

import (
	"context"
	"errors"
	"time"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/mapper"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/model"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/contract"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RequestMapper
}

func NewServiceRequestRepository(db *gorm.DB) contract.ServiceRequestRepository {
	return &ServiceRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewRequestMapper(),
	}
}

func (r *ServiceRequestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ServiceRequestRepositoryImpl) withJoins(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Service").
		Preload("Customer.User").
		Preload("Professional.User")
}

func (r *ServiceRequestRepositoryImpl) Create(ctx context.Context, request *entity.ServiceRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *ServiceRequestRepositoryImpl) Update(ctx context.Context, request *entity.ServiceRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *ServiceRequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceRequest, error) {
	var m model.ServiceRequest
	query := r.applySpecifications(r.withJoins(r.db.WithContext(ctx)), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *ServiceRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceRequest, error) {
	var ms []*model.ServiceRequest
	query := r.applySpecifications(r.withJoins(r.db.WithContext(ctx)), specs...)

	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(ms), nil
}

func (r *ServiceRequestRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ServiceRequest{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ServiceRequestRepositoryImpl) AssignProfessional(ctx context.Context, requestId, professionalId uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.ServiceRequest{}).
		Where("id = ? AND status = ? AND professional_id IS NULL", requestId, string(entity.RequestStatusRequested)).
		Updates(map[string]interface{}{
			"status":          string(entity.RequestStatusAssigned),
			"professional_id": professionalId,
			"last_updated":    time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ServiceRequestRepositoryImpl) ClearAssignment(ctx context.Context, requestId, professionalId uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.ServiceRequest{}).
		Where("id = ? AND status = ? AND professional_id = ?", requestId, string(entity.RequestStatusAssigned), professionalId).
		Updates(map[string]interface{}{
			"status":          string(entity.RequestStatusRequested),
			"professional_id": nil,
			"last_updated":    time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ServiceRequestRepositoryImpl) MarkCancelled(ctx context.Context, requestId uuid.UUID, fromStatuses ...string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.ServiceRequest{}).
		Where("id = ? AND status IN ?", requestId, fromStatuses).
		Updates(map[string]interface{}{
			"status":       string(entity.RequestStatusCancelled),
			"last_updated": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ServiceRequestRepositoryImpl) MarkCompleted(ctx context.Context, requestId uuid.UUID, completedAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.ServiceRequest{}).
		Where("id = ? AND status = ?", requestId, string(entity.RequestStatusAssigned)).
		Updates(map[string]interface{}{
			"status":          string(entity.RequestStatusCompleted),
			"completion_date": completedAt,
			"last_updated":    time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ServiceRequestRepositoryImpl) MarkClosed(ctx context.Context, requestId uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.ServiceRequest{}).
		Where("id = ? AND status = ?", requestId, string(entity.RequestStatusCompleted)).
		Updates(map[string]interface{}{
			"status":       string(entity.RequestStatusClosed),
			"last_updated": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ServiceRequestRepositoryImpl) CountByStatus(ctx context.Context, specs ...specification.Specification) ([]contract.StatusCount, error) {
	var results []contract.StatusCount
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ServiceRequest{}), specs...)
	err := query.
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ServiceRequestRepositoryImpl) TotalClosedSpend(ctx context.Context, customerId uuid.UUID, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.ServiceRequest{}).
		Select("COALESCE(SUM(services.base_price), 0)").
		Joins("JOIN services ON services.id = service_requests.service_id").
		Where("service_requests.customer_id = ?", customerId).
		Where("service_requests.status = ?", string(entity.RequestStatusClosed)).
		Where("service_requests.request_date >= ? AND service_requests.request_date < ?", from, to).
		Scan(&total).Error
	return total, err
}
