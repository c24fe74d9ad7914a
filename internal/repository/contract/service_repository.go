package contract

import (
	"context"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/specification"

	"github.com/google/uuid"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Service, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Service, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	FindByName(ctx context.Context, name string) (*entity.Service, error)

	// Search lists active services whose name or description contains the
	// query, case-insensitively.
	Search(ctx context.Context, query string, limit, offset int) ([]*entity.Service, error)
}
