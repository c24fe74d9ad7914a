package contract

import (
	"context"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/specification"

	"github.com/google/uuid"
)

type RejectionRepository interface {
	// Insert records a rejection. The unique index on
	// (service_request_id, professional_id) makes retries and races safe:
	// false is returned when the pair already exists.
	Insert(ctx context.Context, rejection *entity.RejectedServiceRequest) (bool, error)

	Exists(ctx context.Context, requestId, professionalId uuid.UUID) (bool, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RejectedServiceRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// CountApprovedRejectors counts how many currently approved
	// professionals rejected the request. Rejections from professionals
	// who since lost approval do not shrink the pool. Drives the
	// exhaustion rule.
	CountApprovedRejectors(ctx context.Context, requestId uuid.UUID) (int64, error)
}
