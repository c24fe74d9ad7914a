// FILE: internal/service/admin_service.go
package service

import (
	"context"
	"time"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/dto"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/apperrors"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/logger"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/memory"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/specification"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	NotifVerification  = "verification"
	NotifAccountStatus = "account_status"
)

type IAdminService interface {
	VerifyProfessional(ctx context.Context, professionalId uuid.UUID, req dto.VerifyProfessionalRequest) error
	SetAccountStatus(ctx context.Context, userId uuid.UUID, req dto.SetAccountStatusRequest) error
	ListUsers(ctx context.Context, role string, limit, offset int) ([]dto.UserDTO, int64, error)
	ListPendingProfessionals(ctx context.Context) ([]dto.ProfessionalProfileResponse, error)
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
	ListLogs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error)
	ShowLog(ctx context.Context, id string) (*logger.LogEntry, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	sink       NotificationSink
	directory  *memory.DirectoryCache
	logs       logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, sink NotificationSink, directory *memory.DirectoryCache, logs logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		sink:       sink,
		directory:  directory,
		logs:       logs,
	}
}

// ListLogs pages through the backend log file for the dashboard's log
// browser, optionally narrowed to one level.
func (s *adminService) ListLogs(_ context.Context, level string, limit, offset int) ([]logger.LogEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.logs.GetLogs(level, limit, offset)
}

func (s *adminService) ShowLog(_ context.Context, id string) (*logger.LogEntry, error) {
	entry, err := s.logs.GetLogById(id)
	if err != nil {
		return nil, apperrors.NotFound("log entry not found")
	}
	return entry, nil
}

func (s *adminService) VerifyProfessional(ctx context.Context, professionalId uuid.UUID, req dto.VerifyProfessionalRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pro, err := uow.ProfessionalRepository().FindOne(ctx, specification.ByID{ID: professionalId})
	if err != nil {
		return err
	}
	if pro == nil {
		return apperrors.NotFound("professional not found")
	}
	if pro.Verification != entity.VerificationPending {
		return apperrors.InvalidState("professional has already been verified")
	}

	status := entity.VerificationRejected
	message := "Your professional profile was not approved."
	if req.Approve {
		status = entity.VerificationApproved
		message = "Your professional profile was approved. You can now accept requests!"
	}
	if req.Message != "" {
		message = message + " " + req.Message
	}

	if err := uow.ProfessionalRepository().UpdateVerification(ctx, professionalId, string(status)); err != nil {
		return err
	}

	if s.directory != nil {
		s.directory.Invalidate(professionalId)
	}
	if s.sink != nil {
		s.sink.Notify(ctx, pro.UserId, NotifVerification, message, map[string]interface{}{
			"professional_id": professionalId,
			"verification":    string(status),
		})
	}
	return nil
}

func (s *adminService) SetAccountStatus(ctx context.Context, userId uuid.UUID, req dto.SetAccountStatusRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NotFound("user not found")
	}
	if user.Role == entity.UserRoleAdmin {
		return apperrors.Authorization("admin accounts cannot be toggled")
	}
	if user.Active == req.Active {
		return nil
	}

	if err := uow.UserRepository().UpdateActive(ctx, userId, req.Active); err != nil {
		return err
	}

	// A deactivated professional disappears from the public directory.
	if user.Role == entity.UserRoleProfessional && s.directory != nil {
		if pro, perr := uow.ProfessionalRepository().FindByUserId(ctx, userId); perr == nil && pro != nil {
			s.directory.Invalidate(pro.Id)
		}
	}

	message := "Your account was deactivated by an administrator."
	if req.Active {
		message = "Your account was reactivated. Welcome back!"
	}
	if s.sink != nil {
		s.sink.Notify(ctx, userId, NotifAccountStatus, message, map[string]interface{}{
			"active": req.Active,
		})
	}
	return nil
}

func (s *adminService) ListUsers(ctx context.Context, role string, limit, offset int) ([]dto.UserDTO, int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var specs []specification.Specification
	if role != "" {
		specs = append(specs, specification.ByRole{Role: role})
	}

	total, err := uow.UserRepository().Count(ctx, specs...)
	if err != nil {
		return nil, 0, err
	}

	listSpecs := append(specs, specification.OrderBy{Field: "created_at", Desc: true})
	if limit > 0 {
		listSpecs = append(listSpecs, specification.Pagination{Limit: limit, Offset: offset})
	}

	users, err := uow.UserRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserDTO{
			Id:       u.Id,
			Email:    u.Email,
			FullName: u.FullName,
			Role:     string(u.Role),
			Active:   u.Active,
		})
	}
	return out, total, nil
}

func (s *adminService) ListPendingProfessionals(ctx context.Context) ([]dto.ProfessionalProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pros, err := uow.ProfessionalRepository().FindAll(ctx,
		specification.ByVerification{Status: string(entity.VerificationPending)},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProfessionalProfileResponse, 0, len(pros))
	for _, p := range pros {
		out = append(out, dto.ProfessionalProfileResponse{
			Id:              p.Id,
			UserId:          p.UserId,
			FullName:        p.FullName,
			Email:           p.Email,
			ServiceId:       p.ServiceId,
			ServiceName:     p.ServiceName,
			Description:     p.Description,
			YearsExperience: p.YearsExperience,
			Verification:    string(p.Verification),
			CreatedAt:       p.CreatedAt,
		})
	}
	return out, nil
}

func (s *adminService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	totalCustomers, err := uow.CustomerRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	totalProfessionals, err := uow.ProfessionalRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	totalServices, err := uow.ServiceRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	totalRequests, err := uow.ServiceRequestRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	pendingVerifications, err := uow.ProfessionalRepository().Count(ctx,
		specification.ByVerification{Status: string(entity.VerificationPending)})
	if err != nil {
		return nil, err
	}

	byStatus, err := uow.ServiceRequestRepository().CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	statusMap := make(map[string]int64, len(byStatus))
	for _, sc := range byStatus {
		statusMap[sc.Status] = sc.Count
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	requestsLast7, err := uow.ServiceRequestRepository().Count(ctx,
		specification.RequestedBetween{From: weekAgo, To: time.Now()})
	if err != nil {
		return nil, err
	}
	reviewsLast7, err := uow.ReviewRepository().Count(ctx,
		specification.CreatedBetween{From: weekAgo, To: time.Now()})
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalCustomers:       totalCustomers,
		TotalProfessionals:   totalProfessionals,
		TotalServices:        totalServices,
		TotalRequests:        totalRequests,
		PendingVerifications: pendingVerifications,
		RequestsByStatus:     statusMap,
		RequestsLast7Days:    requestsLast7,
		ReviewsLast7Days:     reviewsLast7,
	}, nil
}
