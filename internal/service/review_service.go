// FILE: internal/service/review_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/dto"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/apperrors"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/memory"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/specification"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	NotifNewReview     = "new_review"
	NotifReviewUpdated = "review_updated"
)

type IReviewService interface {
	Create(ctx context.Context, userId uuid.UUID, req dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, reviewId uuid.UUID) error
	ShowForRequest(ctx context.Context, requestId uuid.UUID) (*dto.ReviewResponse, error)
	ListForProfessional(ctx context.Context, professionalId uuid.UUID) ([]dto.ReviewResponse, error)
}

type reviewService struct {
	uowFactory unitofwork.RepositoryFactory
	sink       NotificationSink
	directory  *memory.DirectoryCache
}

func NewReviewService(uowFactory unitofwork.RepositoryFactory, sink NotificationSink, directory *memory.DirectoryCache) IReviewService {
	return &reviewService{
		uowFactory: uowFactory,
		sink:       sink,
		directory:  directory,
	}
}

func toReviewResponse(r *entity.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		Id:               r.Id,
		ServiceRequestId: r.ServiceRequestId,
		CustomerId:       r.CustomerId,
		CustomerName:     r.CustomerName,
		ProfessionalId:   r.ProfessionalId,
		ServiceName:      r.ServiceName,
		Rating:           r.Rating,
		Comment:          r.Comment,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func (s *reviewService) invalidateDirectory(professionalId uuid.UUID) {
	if s.directory != nil {
		s.directory.Invalidate(professionalId)
	}
}

func (s *reviewService) Create(ctx context.Context, userId uuid.UUID, req dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperrors.Authorization("no customer profile for this account")
	}

	request, err := uow.ServiceRequestRepository().FindOne(ctx, specification.ByID{ID: req.ServiceRequestId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperrors.NotFound("service request not found")
	}
	if request.CustomerId != customer.Id {
		return nil, apperrors.Authorization("request belongs to another customer")
	}
	if request.Status != entity.RequestStatusClosed {
		return nil, apperrors.InvalidState("only closed requests can be reviewed")
	}
	if request.ProfessionalId == nil {
		return nil, apperrors.InvalidState("request has no professional to review")
	}

	existing, err := uow.ReviewRepository().FindByRequestId(ctx, req.ServiceRequestId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.InvalidState("request already has a review, edit it instead")
	}

	review := entity.Review{
		Id:               uuid.New(),
		ServiceRequestId: request.Id,
		CustomerId:       customer.Id,
		ProfessionalId:   *request.ProfessionalId,
		Rating:           req.Rating,
		Comment:          req.Comment,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	if err := uow.ReviewRepository().Create(ctx, &review); err != nil {
		return nil, err
	}

	s.invalidateDirectory(review.ProfessionalId)

	if pro, perr := uow.ProfessionalRepository().FindOne(ctx, specification.ByID{ID: review.ProfessionalId}); perr == nil && pro != nil && s.sink != nil {
		s.sink.Notify(ctx, pro.UserId, NotifNewReview,
			fmt.Sprintf("You received a %d-star review for %s", review.Rating, request.ServiceName),
			map[string]interface{}{"review_id": review.Id, "request_id": request.Id})
	}

	review.ServiceName = request.ServiceName
	return toReviewResponse(&review), nil
}

func (s *reviewService) Update(ctx context.Context, userId uuid.UUID, req dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperrors.Authorization("no customer profile for this account")
	}

	review, err := uow.ReviewRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, apperrors.NotFound("review not found")
	}
	if review.CustomerId != customer.Id {
		return nil, apperrors.Authorization("review belongs to another customer")
	}

	review.Rating = req.Rating
	review.Comment = req.Comment
	review.UpdatedAt = time.Now()
	if err := uow.ReviewRepository().Update(ctx, review); err != nil {
		return nil, err
	}

	s.invalidateDirectory(review.ProfessionalId)

	if pro, perr := uow.ProfessionalRepository().FindOne(ctx, specification.ByID{ID: review.ProfessionalId}); perr == nil && pro != nil && s.sink != nil {
		s.sink.Notify(ctx, pro.UserId, NotifReviewUpdated,
			fmt.Sprintf("A review of yours was updated to %d stars", review.Rating),
			map[string]interface{}{"review_id": review.Id})
	}

	return toReviewResponse(review), nil
}

func (s *reviewService) Delete(ctx context.Context, userId uuid.UUID, reviewId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindByUserId(ctx, userId)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperrors.Authorization("no customer profile for this account")
	}

	review, err := uow.ReviewRepository().FindOne(ctx, specification.ByID{ID: reviewId})
	if err != nil {
		return err
	}
	if review == nil {
		return apperrors.NotFound("review not found")
	}
	if review.CustomerId != customer.Id {
		return apperrors.Authorization("review belongs to another customer")
	}

	if err := uow.ReviewRepository().Delete(ctx, reviewId); err != nil {
		return err
	}
	s.invalidateDirectory(review.ProfessionalId)
	return nil
}

func (s *reviewService) ShowForRequest(ctx context.Context, requestId uuid.UUID) (*dto.ReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	review, err := uow.ReviewRepository().FindByRequestId(ctx, requestId)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, apperrors.NotFound("no review for this request")
	}
	return toReviewResponse(review), nil
}

func (s *reviewService) ListForProfessional(ctx context.Context, professionalId uuid.UUID) ([]dto.ReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reviews, err := uow.ReviewRepository().FindAll(ctx,
		specification.Filter("professional_id", professionalId),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, *toReviewResponse(r))
	}
	return out, nil
}
