package implementation

import (
	"context"
	"errors"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/mapper"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/model"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/contract"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfessionalRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewProfessionalRepository(db *gorm.DB) contract.ProfessionalRepository {
	return &ProfessionalRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *ProfessionalRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProfessionalRepositoryImpl) Create(ctx context.Context, professional *entity.Professional) error {
	m := r.mapper.ProfessionalToModel(professional)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*professional = *r.mapper.ProfessionalToEntity(m)
	return nil
}

func (r *ProfessionalRepositoryImpl) Update(ctx context.Context, professional *entity.Professional) error {
	m := r.mapper.ProfessionalToModel(professional)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*professional = *r.mapper.ProfessionalToEntity(m)
	return nil
}

func (r *ProfessionalRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Professional, error) {
	var m model.Professional
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("User").Preload("Service"), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ProfessionalToEntity(&m), nil
}

func (r *ProfessionalRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Professional, error) {
	var ms []*model.Professional
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("User").Preload("Service"), specs...)

	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	return r.mapper.ProfessionalsToEntities(ms), nil
}

func (r *ProfessionalRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Professional{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProfessionalRepositoryImpl) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.Professional, error) {
	return r.FindOne(ctx, specification.ByUserId{UserID: userId})
}

func (r *ProfessionalRepositoryImpl) UpdateVerification(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.Professional{}).
		Where("id = ?", id).
		Update("verification", status).Error
}

func (r *ProfessionalRepositoryImpl) CountReferencingService(ctx context.Context, serviceId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Professional{}).
		Where("service_id = ?", serviceId).
		Count(&count).Error
	return count, err
}

func (r *ProfessionalRepositoryImpl) RatingSummary(ctx context.Context, id uuid.UUID) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Where("professional_id = ?", id).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return result.Avg, result.Count, nil
}
