package unitofwork

import (
	"context"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CustomerRepository() contract.CustomerRepository
	ProfessionalRepository() contract.ProfessionalRepository
	ServiceRepository() contract.ServiceRepository
	ServiceRequestRepository() contract.ServiceRequestRepository
	RejectionRepository() contract.RejectionRepository
	ReviewRepository() contract.ReviewRepository
}
