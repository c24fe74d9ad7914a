package contract

import (
	"context"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/specification"

	"github.com/google/uuid"
)

type ProfessionalRepository interface {
	Create(ctx context.Context, professional *entity.Professional) error
	Update(ctx context.Context, professional *entity.Professional) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Professional, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Professional, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.Professional, error)

	// UpdateVerification moves the professional through the verification
	// workflow (pending -> approved/rejected).
	UpdateVerification(ctx context.Context, id uuid.UUID, status string) error

	// CountReferencingService reports how many professionals are bound to a
	// service. A service with references cannot be deleted.
	CountReferencingService(ctx context.Context, serviceId uuid.UUID) (int64, error)

	// RatingSummary aggregates the professional's review ratings.
	RatingSummary(ctx context.Context, id uuid.UUID) (avg float64, count int64, err error)
}
