// FILE: internal/service/review_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/dto"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/model"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/apperrors"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewCreate(t *testing.T) {
	factory, db := newTestFactory(t)
	sink := &recordingSink{}
	svc := NewReviewService(factory, sink, memory.NewDirectoryCache())
	ctx := context.Background()

	custUser, customer := seedCustomer(t, db)
	catalog := seedService(t, db, "Plumbing", true)
	proUser, pro := seedProfessional(t, db, catalog.Id, "approved")

	newClosedRequest := func() *model.ServiceRequest {
		r := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(time.Hour))
		assignRequest(t, db, r.Id, pro.Id)
		err := db.Model(&model.ServiceRequest{}).Where("id = ?", r.Id).Update("status", "closed").Error
		require.NoError(t, err)
		return r
	}

	t.Run("reviews a closed request", func(t *testing.T) {
		request := newClosedRequest()

		resp, err := svc.Create(ctx, custUser.Id, dto.CreateReviewRequest{
			ServiceRequestId: request.Id,
			Rating:           5,
			Comment:          "quick and clean work",
		})
		require.NoError(t, err)
		assert.Equal(t, 5, resp.Rating)
		assert.Equal(t, pro.Id, resp.ProfessionalId)

		notified := sink.byType(NotifNewReview)
		require.Len(t, notified, 1)
		assert.Equal(t, proUser.Id, notified[0].UserID)
	})

	t.Run("refuses a second review of the same request", func(t *testing.T) {
		request := newClosedRequest()
		_, err := svc.Create(ctx, custUser.Id, dto.CreateReviewRequest{ServiceRequestId: request.Id, Rating: 4})
		require.NoError(t, err)

		_, err = svc.Create(ctx, custUser.Id, dto.CreateReviewRequest{ServiceRequestId: request.Id, Rating: 2})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})

	t.Run("refuses requests that are not closed", func(t *testing.T) {
		request := seedRequest(t, db, catalog.Id, customer.Id, "completed", time.Now())
		_, err := svc.Create(ctx, custUser.Id, dto.CreateReviewRequest{ServiceRequestId: request.Id, Rating: 3})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})

	t.Run("refuses other customers", func(t *testing.T) {
		request := newClosedRequest()
		otherUser, _ := seedCustomer(t, db)
		_, err := svc.Create(ctx, otherUser.Id, dto.CreateReviewRequest{ServiceRequestId: request.Id, Rating: 1})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
	})
}

func TestReviewUpdateAndDelete(t *testing.T) {
	factory, db := newTestFactory(t)
	svc := NewReviewService(factory, &recordingSink{}, memory.NewDirectoryCache())
	ctx := context.Background()

	custUser, customer := seedCustomer(t, db)
	catalog := seedService(t, db, "Electrical", true)
	_, pro := seedProfessional(t, db, catalog.Id, "approved")

	request := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(time.Hour))
	assignRequest(t, db, request.Id, pro.Id)
	require.NoError(t, db.Model(&model.ServiceRequest{}).Where("id = ?", request.Id).Update("status", "closed").Error)

	created, err := svc.Create(ctx, custUser.Id, dto.CreateReviewRequest{ServiceRequestId: request.Id, Rating: 4, Comment: "good"})
	require.NoError(t, err)

	t.Run("owner edits the review", func(t *testing.T) {
		updated, err := svc.Update(ctx, custUser.Id, dto.UpdateReviewRequest{Id: created.Id, Rating: 2, Comment: "changed my mind"})
		require.NoError(t, err)
		assert.Equal(t, 2, updated.Rating)
		assert.Equal(t, "changed my mind", updated.Comment)
	})

	t.Run("someone else cannot edit it", func(t *testing.T) {
		otherUser, _ := seedCustomer(t, db)
		_, err := svc.Update(ctx, otherUser.Id, dto.UpdateReviewRequest{Id: created.Id, Rating: 5})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
	})

	t.Run("listing reflects the professional's reviews", func(t *testing.T) {
		reviews, err := svc.ListForProfessional(ctx, pro.Id)
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, 2, reviews[0].Rating)
	})

	t.Run("owner deletes the review", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, custUser.Id, created.Id))

		_, err := svc.ShowForRequest(ctx, request.Id)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}
