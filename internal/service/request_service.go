// FILE: internal/service/request_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/dto"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/apperrors"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/specification"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/unitofwork"
	"github.com/SudeepMalipeddi/Service-Sphere/pkg/events"
	pktNats "github.com/SudeepMalipeddi/Service-Sphere/pkg/nats"

	"github.com/google/uuid"
)

// Notification type codes for the request lifecycle.
const (
	NotifNewRequest       = "new_request"
	NotifRequestAccepted  = "request_accepted"
	NotifRequestRejected  = "request_rejected"
	NotifRequestCompleted = "request_completed"
	NotifRequestClosed    = "request_closed"
	NotifAutoCancelled    = "request_auto_cancelled"
)

type IRequestService interface {
	// Customer operations.
	Create(ctx context.Context, userId uuid.UUID, req dto.CreateServiceRequestRequest) (*dto.ServiceRequestResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req dto.UpdateServiceRequestRequest) (*dto.ServiceRequestResponse, error)
	Cancel(ctx context.Context, userId uuid.UUID, requestId uuid.UUID) error
	Close(ctx context.Context, userId uuid.UUID, requestId uuid.UUID) error
	ListMine(ctx context.Context, userId uuid.UUID, status string) ([]dto.ServiceRequestResponse, error)

	// Professional operations.
	ListAvailable(ctx context.Context, userId uuid.UUID, includeRejected bool) ([]dto.ServiceRequestResponse, error)
	ListAssigned(ctx context.Context, userId uuid.UUID, status string) ([]dto.ServiceRequestResponse, error)
	Accept(ctx context.Context, userId uuid.UUID, requestId uuid.UUID) (*dto.ServiceRequestResponse, error)
	Reject(ctx context.Context, userId uuid.UUID, requestId uuid.UUID, reason string) error
	Complete(ctx context.Context, userId uuid.UUID, requestId uuid.UUID) (*dto.ServiceRequestResponse, error)

	// Rejection history. Professionals see their own rejections, admins
	// see everything.
	ListRejections(ctx context.Context, userId uuid.UUID, role string, filter dto.RejectionFilter) ([]dto.RejectionResponse, error)
	ListRequestRejections(ctx context.Context, userId uuid.UUID, role string, requestId uuid.UUID) ([]dto.RejectionResponse, error)

	// Shared read.
	Show(ctx context.Context, requestId uuid.UUID) (*dto.ServiceRequestResponse, error)

	// Admin listing.
	ListAll(ctx context.Context, filter dto.AdminRequestFilter) ([]dto.ServiceRequestResponse, int64, error)
}

type requestService struct {
	uowFactory     unitofwork.RepositoryFactory
	sink           NotificationSink
	eventPublisher *pktNats.Publisher
}

func NewRequestService(
	uowFactory unitofwork.RepositoryFactory,
	sink NotificationSink,
	eventPublisher *pktNats.Publisher,
) IRequestService {
	return &requestService{
		uowFactory:     uowFactory,
		sink:           sink,
		eventPublisher: eventPublisher,
	}
}

// publishEvent is fire-and-forget. The event bus is auxiliary to the state
// change that already happened.
func (s *requestService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}

func (s *requestService) notify(ctx context.Context, userID uuid.UUID, typeCode, message string, metadata map[string]interface{}) {
	if s.sink == nil {
		return
	}
	s.sink.Notify(ctx, userID, typeCode, message, metadata)
}

func toRequestResponse(r *entity.ServiceRequest) *dto.ServiceRequestResponse {
	return &dto.ServiceRequestResponse{
		Id:               r.Id,
		ServiceId:        r.ServiceId,
		ServiceName:      r.ServiceName,
		CustomerId:       r.CustomerId,
		CustomerName:     r.CustomerName,
		ProfessionalId:   r.ProfessionalId,
		ProfessionalName: r.ProfessionalName,
		Status:           string(r.Status),
		RequestDate:      r.RequestDate,
		ScheduledDate:    r.ScheduledDate,
		CompletionDate:   r.CompletionDate,
		Remarks:          r.Remarks,
		LastUpdated:      r.LastUpdated,
	}
}

func toRequestResponses(rs []*entity.ServiceRequest) []dto.ServiceRequestResponse {
	out := make([]dto.ServiceRequestResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, *toRequestResponse(r))
	}
	return out
}

// --- Customer side ---

func (s *requestService) Create(ctx context.Context, userId uuid.UUID, req dto.CreateServiceRequestRequest) (*dto.ServiceRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperrors.Authorization("no customer profile for this account")
	}

	svc, err := uow.ServiceRepository().FindOne(ctx, specification.ByID{ID: req.ServiceId})
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperrors.NotFound("service not found")
	}
	if !svc.IsActive {
		return nil, apperrors.Validation("service is not currently offered")
	}
	if !req.ScheduledDate.After(time.Now()) {
		return nil, apperrors.Validation("scheduled date must be in the future")
	}

	request := entity.ServiceRequest{
		Id:            uuid.New(),
		ServiceId:     svc.Id,
		CustomerId:    customer.Id,
		Status:        entity.RequestStatusRequested,
		RequestDate:   time.Now(),
		ScheduledDate: req.ScheduledDate,
		Remarks:       req.Remarks,
		LastUpdated:   time.Now(),
	}

	if err := uow.ServiceRequestRepository().Create(ctx, &request); err != nil {
		return nil, err
	}

	// Fan out to every approved professional offering this service.
	pros, err := uow.ProfessionalRepository().FindAll(ctx,
		specification.Filter("service_id", svc.Id),
		specification.ByVerification{Status: string(entity.VerificationApproved)},
	)
	if err == nil {
		msg := fmt.Sprintf("New %s request scheduled for %s", svc.Name, request.ScheduledDate.Format("02 Jan 2006"))
		for _, pro := range pros {
			s.notify(ctx, pro.UserId, NotifNewRequest, msg, map[string]interface{}{
				"request_id": request.Id,
				"service_id": svc.Id,
			})
		}
	}

	s.publishEvent(ctx, "REQUEST_CREATED", map[string]interface{}{
		"request_id": request.Id,
		"service":    svc.Name,
		"user_id":    userId,
	})

	request.ServiceName = svc.Name
	request.CustomerName = customer.FullName
	return toRequestResponse(&request), nil
}

func (s *requestService) Update(ctx context.Context, userId uuid.UUID, req dto.UpdateServiceRequestRequest) (*dto.ServiceRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperrors.Authorization("no customer profile for this account")
	}

	request, err := uow.ServiceRequestRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperrors.NotFound("service request not found")
	}
	if request.CustomerId != customer.Id {
		return nil, apperrors.Authorization("request belongs to another customer")
	}
	if request.Status != entity.RequestStatusRequested {
		return nil, apperrors.InvalidState(fmt.Sprintf("request in status '%s' can no longer be edited", request.Status))
	}

	if req.ScheduledDate != nil {
		if !req.ScheduledDate.After(time.Now()) {
			return nil, apperrors.Validation("scheduled date must be in the future")
		}
		request.ScheduledDate = *req.ScheduledDate
	}
	if req.Remarks != nil {
		request.Remarks = *req.Remarks
	}
	request.LastUpdated = time.Now()

	if err := uow.ServiceRequestRepository().Update(ctx, request); err != nil {
		return nil, err
	}

	return toRequestResponse(request), nil
}

func (s *requestService) Cancel(ctx context.Context, userId uuid.UUID, requestId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindByUserId(ctx, userId)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperrors.Authorization("no customer profile for this account")
	}

	request, err := uow.ServiceRequestRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return err
	}
	if request == nil {
		return apperrors.NotFound("service request not found")
	}
	if request.CustomerId != customer.Id {
		return apperrors.Authorization("request belongs to another customer")
	}

	if request.ProfessionalId != nil {
		return apperrors.InvalidState("cannot cancel a request with an assigned professional")
	}

	ok, err := uow.ServiceRequestRepository().MarkCancelled(ctx, requestId,
		string(entity.RequestStatusRequested))
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.InvalidState(fmt.Sprintf("request in status '%s' cannot be cancelled", request.Status))
	}

	s.publishEvent(ctx, "REQUEST_CANCELLED", map[string]interface{}{
		"request_id": requestId,
		"user_id":    userId,
	})
	return nil
}

func (s *requestService) Close(ctx context.Context, userId uuid.UUID, requestId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindByUserId(ctx, userId)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperrors.Authorization("no customer profile for this account")
	}

	request, err := uow.ServiceRequestRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return err
	}
	if request == nil {
		return apperrors.NotFound("service request not found")
	}
	if request.CustomerId != customer.Id {
		return apperrors.Authorization("request belongs to another customer")
	}

	ok, err := uow.ServiceRequestRepository().MarkClosed(ctx, requestId)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.InvalidState(fmt.Sprintf("only completed requests can be closed, current status is '%s'", request.Status))
	}

	if request.ProfessionalId != nil {
		if pro, perr := uow.ProfessionalRepository().FindOne(ctx, specification.ByID{ID: *request.ProfessionalId}); perr == nil && pro != nil {
			s.notify(ctx, pro.UserId, NotifRequestClosed,
				fmt.Sprintf("The customer closed the %s request. Feel free to ask for a review!", request.ServiceName),
				map[string]interface{}{"request_id": request.Id})
		}
	}

	return nil
}

func (s *requestService) ListMine(ctx context.Context, userId uuid.UUID, status string) ([]dto.ServiceRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperrors.Authorization("no customer profile for this account")
	}

	specs := []specification.Specification{
		specification.ByCustomer{CustomerID: customer.Id},
		specification.OrderBy{Field: "request_date", Desc: true},
	}
	if status != "" {
		specs = append(specs, specification.ByStatus{Status: status})
	}

	requests, err := uow.ServiceRequestRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return toRequestResponses(requests), nil
}

// --- Professional side ---

// approvedProfessional loads the caller's profile and enforces that only
// verified professionals act on requests.
func (s *requestService) approvedProfessional(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.Professional, error) {
	pro, err := uow.ProfessionalRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if pro == nil {
		return nil, apperrors.Authorization("no professional profile for this account")
	}
	if pro.Verification != entity.VerificationApproved {
		return nil, apperrors.Authorization("professional profile is not approved yet")
	}
	return pro, nil
}

func (s *requestService) ListAvailable(ctx context.Context, userId uuid.UUID, includeRejected bool) ([]dto.ServiceRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pro, err := s.approvedProfessional(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	specs := []specification.Specification{
		specification.ByStatus{Status: string(entity.RequestStatusRequested)},
		specification.ByService{ServiceID: pro.ServiceId},
		specification.Unassigned{},
	}
	if !includeRejected {
		specs = append(specs, specification.NotRejectedBy{ProfessionalID: pro.Id})
	}
	specs = append(specs, specification.OrderBy{Field: "scheduled_date", Desc: false})

	requests, err := uow.ServiceRequestRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return toRequestResponses(requests), nil
}

func (s *requestService) ListAssigned(ctx context.Context, userId uuid.UUID, status string) ([]dto.ServiceRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pro, err := uow.ProfessionalRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if pro == nil {
		return nil, apperrors.Authorization("no professional profile for this account")
	}

	specs := []specification.Specification{
		specification.ByProfessional{ProfessionalID: pro.Id},
		specification.OrderBy{Field: "scheduled_date", Desc: false},
	}
	if status != "" {
		specs = append(specs, specification.ByStatus{Status: status})
	}

	requests, err := uow.ServiceRequestRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return toRequestResponses(requests), nil
}

func (s *requestService) Accept(ctx context.Context, userId uuid.UUID, requestId uuid.UUID) (*dto.ServiceRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.ServiceRequestRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperrors.NotFound("service request not found")
	}
	if request.Status != entity.RequestStatusRequested {
		return nil, apperrors.InvalidState(fmt.Sprintf("request is '%s', only open requests can be accepted", request.Status))
	}

	pro, err := uow.ProfessionalRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if pro == nil {
		return nil, apperrors.Authorization("no professional profile for this account")
	}
	if pro.ServiceId != request.ServiceId {
		return nil, apperrors.Validation("request is for a different service than yours")
	}
	if pro.Verification != entity.VerificationApproved {
		return nil, apperrors.Authorization("professional profile is not approved yet")
	}

	rejected, err := uow.RejectionRepository().Exists(ctx, requestId, pro.Id)
	if err != nil {
		return nil, err
	}
	if rejected {
		return nil, apperrors.InvalidState("you already rejected this request")
	}

	// Guarded claim. A concurrent accept makes the second one lose here.
	ok, err := uow.ServiceRequestRepository().AssignProfessional(ctx, requestId, pro.Id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.InvalidState("request was just taken by another professional")
	}

	if customer, cerr := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: request.CustomerId}); cerr == nil && customer != nil {
		s.notify(ctx, customer.UserId, NotifRequestAccepted,
			fmt.Sprintf("%s accepted your %s request scheduled for %s", pro.FullName, request.ServiceName, request.ScheduledDate.Format("02 Jan 2006")),
			map[string]interface{}{"request_id": request.Id, "professional_id": pro.Id})
	}

	s.publishEvent(ctx, "REQUEST_ACCEPTED", map[string]interface{}{
		"request_id": requestId,
		"user_id":    userId,
	})

	return s.Show(ctx, requestId)
}

func (s *requestService) Reject(ctx context.Context, userId uuid.UUID, requestId uuid.UUID, reason string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.ServiceRequestRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return err
	}
	if request == nil {
		return apperrors.NotFound("service request not found")
	}

	// Any professional of the matching service may opt out, approval only
	// gates accepting. Exhaustion counts approved rejectors alone.
	pro, err := uow.ProfessionalRepository().FindByUserId(ctx, userId)
	if err != nil {
		return err
	}
	if pro == nil {
		return apperrors.Authorization("no professional profile for this account")
	}
	if pro.ServiceId != request.ServiceId {
		return apperrors.Validation("request is for a different service than yours")
	}

	switch request.Status {
	case entity.RequestStatusRequested, entity.RequestStatusAssigned:
	default:
		return apperrors.InvalidState(fmt.Sprintf("request in status '%s' can no longer be rejected", request.Status))
	}

	rejection := entity.RejectedServiceRequest{
		Id:               uuid.New(),
		ServiceRequestId: requestId,
		ProfessionalId:   pro.Id,
		Reason:           reason,
		CreatedAt:        time.Now(),
	}
	inserted, err := uow.RejectionRepository().Insert(ctx, &rejection)
	if err != nil {
		return err
	}
	if !inserted {
		return apperrors.InvalidState("you already rejected this request")
	}

	// Opting out of an accepted request puts it back in the pool.
	released, err := uow.ServiceRequestRepository().ClearAssignment(ctx, requestId, pro.Id)
	if err != nil {
		return err
	}
	if released {
		if customer, cerr := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: request.CustomerId}); cerr == nil && customer != nil {
			s.notify(ctx, customer.UserId, NotifRequestRejected,
				fmt.Sprintf("%s withdrew from your %s request, it is open for other professionals again", pro.FullName, request.ServiceName),
				map[string]interface{}{"request_id": request.Id})
		}
	}

	if err := s.autoCancelIfExhausted(ctx, uow, request); err != nil {
		// The rejection itself stands. The next rejection re-runs the check.
		fmt.Printf("[WARN] exhaustion check failed for request %s: %v\n", requestId, err)
	}

	s.publishEvent(ctx, "REQUEST_REJECTED", map[string]interface{}{
		"request_id": requestId,
		"user_id":    userId,
	})
	return nil
}

// autoCancelIfExhausted cancels an open request once every approved
// professional of its service has rejected it. Only rejections from
// professionals still in the approved pool count.
func (s *requestService) autoCancelIfExhausted(ctx context.Context, uow unitofwork.UnitOfWork, request *entity.ServiceRequest) error {
	rejections, err := uow.RejectionRepository().CountApprovedRejectors(ctx, request.Id)
	if err != nil {
		return err
	}
	approved, err := uow.ProfessionalRepository().Count(ctx,
		specification.Filter("service_id", request.ServiceId),
		specification.ByVerification{Status: string(entity.VerificationApproved)},
	)
	if err != nil {
		return err
	}
	if approved == 0 || rejections < approved {
		return nil
	}

	ok, err := uow.ServiceRequestRepository().MarkCancelled(ctx, request.Id, string(entity.RequestStatusRequested))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if customer, cerr := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: request.CustomerId}); cerr == nil && customer != nil {
		s.notify(ctx, customer.UserId, NotifAutoCancelled,
			fmt.Sprintf("Your %s request was cancelled because no professional is available for it", request.ServiceName),
			map[string]interface{}{"request_id": request.Id})
	}
	return nil
}

func (s *requestService) Complete(ctx context.Context, userId uuid.UUID, requestId uuid.UUID) (*dto.ServiceRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pro, err := uow.ProfessionalRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if pro == nil {
		return nil, apperrors.Authorization("no professional profile for this account")
	}

	request, err := uow.ServiceRequestRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperrors.NotFound("service request not found")
	}
	if request.ProfessionalId == nil || *request.ProfessionalId != pro.Id {
		return nil, apperrors.Authorization("request is not assigned to you")
	}

	ok, err := uow.ServiceRequestRepository().MarkCompleted(ctx, requestId, time.Now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.InvalidState(fmt.Sprintf("only assigned requests can be completed, current status is '%s'", request.Status))
	}

	if customer, cerr := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: request.CustomerId}); cerr == nil && customer != nil {
		s.notify(ctx, customer.UserId, NotifRequestCompleted,
			fmt.Sprintf("%s marked your %s request as completed. Close it to confirm and leave a review.", pro.FullName, request.ServiceName),
			map[string]interface{}{"request_id": request.Id})
	}

	s.publishEvent(ctx, "REQUEST_COMPLETED", map[string]interface{}{
		"request_id": requestId,
		"user_id":    userId,
	})

	return s.Show(ctx, requestId)
}

// toRejectionResponses marks rejections belonging to ownId, pass uuid.Nil
// for no marking.
func toRejectionResponses(rejections []*entity.RejectedServiceRequest, ownId uuid.UUID) []dto.RejectionResponse {
	out := make([]dto.RejectionResponse, 0, len(rejections))
	for _, r := range rejections {
		out = append(out, dto.RejectionResponse{
			Id:               r.Id,
			ServiceRequestId: r.ServiceRequestId,
			ProfessionalId:   r.ProfessionalId,
			Reason:           r.Reason,
			ServiceName:      r.ServiceName,
			CustomerName:     r.CustomerName,
			CreatedAt:        r.CreatedAt,
			OwnRejection:     ownId != uuid.Nil && r.ProfessionalId == ownId,
		})
	}
	return out
}

func (s *requestService) ListRejections(ctx context.Context, userId uuid.UUID, role string, filter dto.RejectionFilter) ([]dto.RejectionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var specs []specification.Specification
	ownId := uuid.Nil

	switch entity.UserRole(role) {
	case entity.UserRoleProfessional:
		pro, err := uow.ProfessionalRepository().FindByUserId(ctx, userId)
		if err != nil {
			return nil, err
		}
		if pro == nil {
			return nil, apperrors.Authorization("no professional profile for this account")
		}
		ownId = pro.Id
		specs = append(specs, specification.ByProfessional{ProfessionalID: pro.Id})
	case entity.UserRoleAdmin:
		if filter.ProfessionalId != nil {
			specs = append(specs, specification.ByProfessional{ProfessionalID: *filter.ProfessionalId})
		}
	default:
		return nil, apperrors.Authorization("rejection history is not available for this role")
	}

	if filter.ServiceRequestId != nil {
		specs = append(specs, specification.ByServiceRequest{ServiceRequestID: *filter.ServiceRequestId})
	}
	specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})
	if filter.Limit > 0 {
		specs = append(specs, specification.Pagination{Limit: filter.Limit, Offset: filter.Offset})
	}

	rejections, err := uow.RejectionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return toRejectionResponses(rejections, ownId), nil
}

func (s *requestService) ListRequestRejections(ctx context.Context, userId uuid.UUID, role string, requestId uuid.UUID) ([]dto.RejectionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.ServiceRequestRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperrors.NotFound("service request not found")
	}

	ownId := uuid.Nil
	switch entity.UserRole(role) {
	case entity.UserRoleProfessional:
		pro, perr := uow.ProfessionalRepository().FindByUserId(ctx, userId)
		if perr != nil {
			return nil, perr
		}
		if pro == nil {
			return nil, apperrors.Authorization("no professional profile for this account")
		}
		ownId = pro.Id
	case entity.UserRoleAdmin:
	default:
		return nil, apperrors.Authorization("rejection history is not available for this role")
	}

	rejections, err := uow.RejectionRepository().FindAll(ctx,
		specification.ByServiceRequest{ServiceRequestID: requestId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	return toRejectionResponses(rejections, ownId), nil
}

// --- Shared / admin ---

func (s *requestService) Show(ctx context.Context, requestId uuid.UUID) (*dto.ServiceRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.ServiceRequestRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperrors.NotFound("service request not found")
	}
	return toRequestResponse(request), nil
}

func (s *requestService) ListAll(ctx context.Context, filter dto.AdminRequestFilter) ([]dto.ServiceRequestResponse, int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var specs []specification.Specification
	if filter.ServiceId != nil {
		specs = append(specs, specification.ByService{ServiceID: *filter.ServiceId})
	}
	if filter.CustomerId != nil {
		specs = append(specs, specification.ByCustomer{CustomerID: *filter.CustomerId})
	}
	if filter.ProfessionalId != nil {
		specs = append(specs, specification.ByProfessional{ProfessionalID: *filter.ProfessionalId})
	}
	if filter.Status != "" {
		specs = append(specs, specification.ByStatus{Status: filter.Status})
	}
	if filter.From != nil && filter.To != nil {
		specs = append(specs, specification.RequestedBetween{From: *filter.From, To: *filter.To})
	}

	total, err := uow.ServiceRequestRepository().Count(ctx, specs...)
	if err != nil {
		return nil, 0, err
	}

	listSpecs := append(specs, specification.OrderBy{Field: "request_date", Desc: true})
	if filter.Limit > 0 {
		listSpecs = append(listSpecs, specification.Pagination{Limit: filter.Limit, Offset: filter.Offset})
	}

	requests, err := uow.ServiceRequestRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, 0, err
	}
	return toRequestResponses(requests), total, nil
}
