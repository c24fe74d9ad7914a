package contract

import (
	"context"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/specification"

	"github.com/google/uuid"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Customer, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Customer, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindByUserId resolves the profile for an authenticated user.
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.Customer, error)

	// IDsWithRequests returns customer ids that own at least one request
	// in the given window. Used by the monthly report sweep.
	IDsWithRequests(ctx context.Context, specs ...specification.Specification) ([]uuid.UUID, error)
}
