package contract

import (
	"context"
	"time"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/specification"

	"github.com/google/uuid"
)

// StatusCount is a per-status tally used by reports and the dashboard.
type StatusCount struct {
	Status string
	Count  int64
}

type ServiceRequestRepository interface {
	Create(ctx context.Context, request *entity.ServiceRequest) error
	Update(ctx context.Context, request *entity.ServiceRequest) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// AssignProfessional claims an open request for a professional. The
	// update is guarded on status/assignment so a concurrent accept loses
	// cleanly: false is returned when no row matched.
	AssignProfessional(ctx context.Context, requestId, professionalId uuid.UUID) (bool, error)

	// ClearAssignment releases an assignment back to requested. Guarded on
	// the request currently being assigned to that professional.
	ClearAssignment(ctx context.Context, requestId, professionalId uuid.UUID) (bool, error)

	// MarkCancelled cancels the request if its current status is in
	// fromStatuses. Returns false when the guard did not match.
	MarkCancelled(ctx context.Context, requestId uuid.UUID, fromStatuses ...string) (bool, error)

	// MarkCompleted moves an assigned request to completed with the given
	// completion timestamp. Guarded on status=assigned.
	MarkCompleted(ctx context.Context, requestId uuid.UUID, completedAt time.Time) (bool, error)

	// MarkClosed moves a completed request to closed. Guarded on
	// status=completed.
	MarkClosed(ctx context.Context, requestId uuid.UUID) (bool, error)

	// CountByStatus tallies requests grouped by status.
	CountByStatus(ctx context.Context, specs ...specification.Specification) ([]StatusCount, error)

	// TotalClosedSpend sums the base price of the services behind the
	// customer's closed requests in the window.
	TotalClosedSpend(ctx context.Context, customerId uuid.UUID, from, to time.Time) (float64, error)
}
