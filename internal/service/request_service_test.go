// FILE: internal/service/request_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/dto"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/model"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestCreate(t *testing.T) {
	factory, db := newTestFactory(t)
	sink := &recordingSink{}
	svc := NewRequestService(factory, sink, nil)
	ctx := context.Background()

	custUser, _ := seedCustomer(t, db)
	catalog := seedService(t, db, "Plumbing", true)
	proUser, _ := seedProfessional(t, db, catalog.Id, "approved")
	seedProfessional(t, db, catalog.Id, "pending") // must not be notified

	t.Run("creates an open request and notifies approved professionals", func(t *testing.T) {
		resp, err := svc.Create(ctx, custUser.Id, dto.CreateServiceRequestRequest{
			ServiceId:     catalog.Id,
			ScheduledDate: time.Now().Add(48 * time.Hour),
			Remarks:       "leaking kitchen sink",
		})
		require.NoError(t, err)
		assert.Equal(t, string(entity.RequestStatusRequested), resp.Status)
		assert.Nil(t, resp.ProfessionalId)

		notified := sink.byType(NotifNewRequest)
		require.Len(t, notified, 1)
		assert.Equal(t, proUser.Id, notified[0].UserID)
	})

	t.Run("rejects a scheduled date in the past", func(t *testing.T) {
		_, err := svc.Create(ctx, custUser.Id, dto.CreateServiceRequestRequest{
			ServiceId:     catalog.Id,
			ScheduledDate: time.Now().Add(-time.Hour),
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("rejects an inactive service", func(t *testing.T) {
		inactive := seedService(t, db, "Retired", false)
		_, err := svc.Create(ctx, custUser.Id, dto.CreateServiceRequestRequest{
			ServiceId:     inactive.Id,
			ScheduledDate: time.Now().Add(48 * time.Hour),
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("requires a customer profile", func(t *testing.T) {
		stranger := seedUser(t, db, "customer")
		_, err := svc.Create(ctx, stranger.Id, dto.CreateServiceRequestRequest{
			ServiceId:     catalog.Id,
			ScheduledDate: time.Now().Add(48 * time.Hour),
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
	})
}

func TestRequestAccept(t *testing.T) {
	factory, db := newTestFactory(t)
	sink := &recordingSink{}
	svc := NewRequestService(factory, sink, nil)
	ctx := context.Background()

	custUser, customer := seedCustomer(t, db)
	catalog := seedService(t, db, "Electrical", true)
	proUser, pro := seedProfessional(t, db, catalog.Id, "approved")

	t.Run("assigns the request to the accepting professional", func(t *testing.T) {
		request := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))

		resp, err := svc.Accept(ctx, proUser.Id, request.Id)
		require.NoError(t, err)
		assert.Equal(t, string(entity.RequestStatusAssigned), resp.Status)
		require.NotNil(t, resp.ProfessionalId)
		assert.Equal(t, pro.Id, *resp.ProfessionalId)

		accepted := sink.byType(NotifRequestAccepted)
		require.Len(t, accepted, 1)
		assert.Equal(t, custUser.Id, accepted[0].UserID)
	})

	t.Run("second accept loses the race", func(t *testing.T) {
		request := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))
		rivalUser, _ := seedProfessional(t, db, catalog.Id, "approved")

		_, err := svc.Accept(ctx, proUser.Id, request.Id)
		require.NoError(t, err)

		_, err = svc.Accept(ctx, rivalUser.Id, request.Id)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})

	t.Run("rejects professionals of a different service", func(t *testing.T) {
		other := seedService(t, db, "Cleaning", true)
		otherUser, _ := seedProfessional(t, db, other.Id, "approved")
		request := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))

		_, err := svc.Accept(ctx, otherUser.Id, request.Id)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("service mismatch is reported before a missing approval", func(t *testing.T) {
		other := seedService(t, db, "Gardening", true)
		pendingOtherUser, _ := seedProfessional(t, db, other.Id, "pending")
		request := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))

		_, err := svc.Accept(ctx, pendingOtherUser.Id, request.Id)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("rejects unapproved professionals", func(t *testing.T) {
		pendingUser, _ := seedProfessional(t, db, catalog.Id, "pending")
		request := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))

		_, err := svc.Accept(ctx, pendingUser.Id, request.Id)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
	})

	t.Run("cannot accept after own rejection", func(t *testing.T) {
		request := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))

		require.NoError(t, svc.Reject(ctx, proUser.Id, request.Id, "too far away"))

		_, err := svc.Accept(ctx, proUser.Id, request.Id)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})

	t.Run("unknown request is not found", func(t *testing.T) {
		_, err := svc.Accept(ctx, proUser.Id, uuid.New())
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}

func TestRequestReject(t *testing.T) {
	ctx := context.Background()

	t.Run("recording a rejection keeps the request open while others remain", func(t *testing.T) {
		factory, db := newTestFactory(t)
		sink := &recordingSink{}
		svc := NewRequestService(factory, sink, nil)

		_, customer := seedCustomer(t, db)
		catalog := seedService(t, db, "Carpentry", true)
		proUser, pro := seedProfessional(t, db, catalog.Id, "approved")
		seedProfessional(t, db, catalog.Id, "approved") // keeps the pool from exhausting
		request := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))

		require.NoError(t, svc.Reject(ctx, proUser.Id, request.Id, "fully booked"))
		assert.Equal(t, "requested", requestStatus(t, db, request.Id))

		// The rejecting professional no longer sees it.
		available, err := svc.ListAvailable(ctx, proUser.Id, false)
		require.NoError(t, err)
		for _, r := range available {
			assert.NotEqual(t, request.Id, r.Id)
		}

		// Unless they ask for rejected ones too.
		all, err := svc.ListAvailable(ctx, proUser.Id, true)
		require.NoError(t, err)
		found := false
		for _, r := range all {
			if r.Id == request.Id {
				found = true
			}
		}
		assert.True(t, found)
		_ = pro
	})

	t.Run("duplicate rejection is refused", func(t *testing.T) {
		factory, db := newTestFactory(t)
		svc := NewRequestService(factory, &recordingSink{}, nil)

		_, customer := seedCustomer(t, db)
		catalog := seedService(t, db, "Carpentry", true)
		proUser, _ := seedProfessional(t, db, catalog.Id, "approved")
		seedProfessional(t, db, catalog.Id, "approved")
		request := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))

		require.NoError(t, svc.Reject(ctx, proUser.Id, request.Id, "first"))
		err := svc.Reject(ctx, proUser.Id, request.Id, "second")
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})

	t.Run("opting out of an accepted request reopens it", func(t *testing.T) {
		factory, db := newTestFactory(t)
		sink := &recordingSink{}
		svc := NewRequestService(factory, sink, nil)

		custUser, customer := seedCustomer(t, db)
		catalog := seedService(t, db, "Pest Control", true)
		proUser, pro := seedProfessional(t, db, catalog.Id, "approved")
		seedProfessional(t, db, catalog.Id, "approved")
		request := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))
		assignRequest(t, db, request.Id, pro.Id)

		require.NoError(t, svc.Reject(ctx, proUser.Id, request.Id, "emergency elsewhere"))
		assert.Equal(t, "requested", requestStatus(t, db, request.Id))

		released := sink.byType(NotifRequestRejected)
		require.Len(t, released, 1)
		assert.Equal(t, custUser.Id, released[0].UserID)
	})

	t.Run("last rejection auto-cancels the request", func(t *testing.T) {
		factory, db := newTestFactory(t)
		sink := &recordingSink{}
		svc := NewRequestService(factory, sink, nil)

		custUser, customer := seedCustomer(t, db)
		catalog := seedService(t, db, "Gardening", true)
		firstUser, _ := seedProfessional(t, db, catalog.Id, "approved")
		secondUser, _ := seedProfessional(t, db, catalog.Id, "approved")
		request := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))

		require.NoError(t, svc.Reject(ctx, firstUser.Id, request.Id, "no"))
		assert.Equal(t, "requested", requestStatus(t, db, request.Id))

		require.NoError(t, svc.Reject(ctx, secondUser.Id, request.Id, "also no"))
		assert.Equal(t, "cancelled", requestStatus(t, db, request.Id))

		auto := sink.byType(NotifAutoCancelled)
		require.Len(t, auto, 1)
		assert.Equal(t, custUser.Id, auto[0].UserID)
	})

	t.Run("completed requests can no longer be rejected", func(t *testing.T) {
		factory, db := newTestFactory(t)
		svc := NewRequestService(factory, &recordingSink{}, nil)

		_, customer := seedCustomer(t, db)
		catalog := seedService(t, db, "Masonry", true)
		proUser, _ := seedProfessional(t, db, catalog.Id, "approved")
		request := seedRequest(t, db, catalog.Id, customer.Id, "completed", time.Now().Add(-24*time.Hour))

		err := svc.Reject(ctx, proUser.Id, request.Id, "too late")
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})

	t.Run("unapproved professionals of the service may still opt out", func(t *testing.T) {
		factory, db := newTestFactory(t)
		svc := NewRequestService(factory, &recordingSink{}, nil)

		_, customer := seedCustomer(t, db)
		catalog := seedService(t, db, "Painting", true)
		seedProfessional(t, db, catalog.Id, "approved")
		pendingUser, _ := seedProfessional(t, db, catalog.Id, "pending")
		request := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))

		require.NoError(t, svc.Reject(ctx, pendingUser.Id, request.Id, "not taking work yet"))
		// A pending rejection never counts against the approved pool.
		assert.Equal(t, "requested", requestStatus(t, db, request.Id))
	})

	t.Run("a rejector who lost approval no longer shrinks the pool", func(t *testing.T) {
		factory, db := newTestFactory(t)
		svc := NewRequestService(factory, &recordingSink{}, nil)

		_, customer := seedCustomer(t, db)
		catalog := seedService(t, db, "Roofing", true)
		firstUser, first := seedProfessional(t, db, catalog.Id, "approved")
		secondUser, second := seedProfessional(t, db, catalog.Id, "approved")
		thirdUser, _ := seedProfessional(t, db, catalog.Id, "approved")
		request := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))

		require.NoError(t, svc.Reject(ctx, firstUser.Id, request.Id, "no"))
		require.NoError(t, db.Model(&model.Professional{}).
			Where("id = ?", first.Id).Update("verification", "rejected").Error)

		// Pool is now {second, third}, approved rejectors only {second}.
		require.NoError(t, svc.Reject(ctx, secondUser.Id, request.Id, "also no"))
		assert.Equal(t, "requested", requestStatus(t, db, request.Id))

		require.NoError(t, svc.Reject(ctx, thirdUser.Id, request.Id, "final no"))
		assert.Equal(t, "cancelled", requestStatus(t, db, request.Id))
		_ = second
	})
}

func TestRequestUpdate(t *testing.T) {
	factory, db := newTestFactory(t)
	svc := NewRequestService(factory, &recordingSink{}, nil)
	ctx := context.Background()

	custUser, customer := seedCustomer(t, db)
	catalog := seedService(t, db, "Plumbing", true)
	_, pro := seedProfessional(t, db, catalog.Id, "approved")

	t.Run("owner reschedules an open request", func(t *testing.T) {
		request := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))
		newDate := time.Now().Add(72 * time.Hour)
		remarks := "please come after lunch"

		resp, err := svc.Update(ctx, custUser.Id, dto.UpdateServiceRequestRequest{
			Id:            request.Id,
			ScheduledDate: &newDate,
			Remarks:       &remarks,
		})
		require.NoError(t, err)
		assert.WithinDuration(t, newDate, resp.ScheduledDate, time.Second)
		assert.Equal(t, remarks, resp.Remarks)
	})

	t.Run("assigned requests are frozen for the customer", func(t *testing.T) {
		request := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))
		assignRequest(t, db, request.Id, pro.Id)
		newDate := time.Now().Add(72 * time.Hour)

		_, err := svc.Update(ctx, custUser.Id, dto.UpdateServiceRequestRequest{
			Id:            request.Id,
			ScheduledDate: &newDate,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})

	t.Run("cancelled requests cannot be edited", func(t *testing.T) {
		request := seedRequest(t, db, catalog.Id, customer.Id, "cancelled", time.Now().Add(24*time.Hour))
		remarks := "never mind"

		_, err := svc.Update(ctx, custUser.Id, dto.UpdateServiceRequestRequest{
			Id:      request.Id,
			Remarks: &remarks,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})

	t.Run("rescheduling into the past is refused", func(t *testing.T) {
		request := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))
		past := time.Now().Add(-time.Hour)

		_, err := svc.Update(ctx, custUser.Id, dto.UpdateServiceRequestRequest{
			Id:            request.Id,
			ScheduledDate: &past,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})
}

func TestRequestCancelAndClose(t *testing.T) {
	factory, db := newTestFactory(t)
	sink := &recordingSink{}
	svc := NewRequestService(factory, sink, nil)
	ctx := context.Background()

	custUser, customer := seedCustomer(t, db)
	catalog := seedService(t, db, "Plumbing", true)
	proUser, pro := seedProfessional(t, db, catalog.Id, "approved")
	_ = proUser

	t.Run("customer cancels an open request", func(t *testing.T) {
		request := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))
		require.NoError(t, svc.Cancel(ctx, custUser.Id, request.Id))
		assert.Equal(t, "cancelled", requestStatus(t, db, request.Id))
	})

	t.Run("assigned requests cannot be cancelled", func(t *testing.T) {
		request := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))
		assignRequest(t, db, request.Id, pro.Id)

		err := svc.Cancel(ctx, custUser.Id, request.Id)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
		assert.Equal(t, "assigned", requestStatus(t, db, request.Id))
	})

	t.Run("completed requests cannot be cancelled", func(t *testing.T) {
		request := seedRequest(t, db, catalog.Id, customer.Id, "completed", time.Now().Add(-time.Hour))
		err := svc.Cancel(ctx, custUser.Id, request.Id)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})

	t.Run("only the owner can cancel", func(t *testing.T) {
		otherUser, _ := seedCustomer(t, db)
		request := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))
		err := svc.Cancel(ctx, otherUser.Id, request.Id)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
	})

	t.Run("close confirms a completed request", func(t *testing.T) {
		request := seedRequest(t, db, catalog.Id, customer.Id, "completed", time.Now().Add(-time.Hour))
		require.NoError(t, svc.Close(ctx, custUser.Id, request.Id))
		assert.Equal(t, "closed", requestStatus(t, db, request.Id))
	})

	t.Run("close requires completed status", func(t *testing.T) {
		request := seedRequest(t, db, catalog.Id, customer.Id, "assigned", time.Now().Add(24*time.Hour))
		err := svc.Close(ctx, custUser.Id, request.Id)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})
}

func TestRequestComplete(t *testing.T) {
	factory, db := newTestFactory(t)
	sink := &recordingSink{}
	svc := NewRequestService(factory, sink, nil)
	ctx := context.Background()

	custUser, customer := seedCustomer(t, db)
	catalog := seedService(t, db, "Electrical", true)
	proUser, pro := seedProfessional(t, db, catalog.Id, "approved")

	t.Run("assigned professional completes the work", func(t *testing.T) {
		request := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))
		assignRequest(t, db, request.Id, pro.Id)

		resp, err := svc.Complete(ctx, proUser.Id, request.Id)
		require.NoError(t, err)
		assert.Equal(t, string(entity.RequestStatusCompleted), resp.Status)
		assert.NotNil(t, resp.CompletionDate)

		done := sink.byType(NotifRequestCompleted)
		require.Len(t, done, 1)
		assert.Equal(t, custUser.Id, done[0].UserID)
	})

	t.Run("only the assignee can complete", func(t *testing.T) {
		otherUser, _ := seedProfessional(t, db, catalog.Id, "approved")
		request := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))
		assignRequest(t, db, request.Id, pro.Id)

		_, err := svc.Complete(ctx, otherUser.Id, request.Id)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
	})
}

func TestRequestListings(t *testing.T) {
	factory, db := newTestFactory(t)
	svc := NewRequestService(factory, &recordingSink{}, nil)
	ctx := context.Background()

	custUser, customer := seedCustomer(t, db)
	catalog := seedService(t, db, "Cleaning", true)
	otherCatalog := seedService(t, db, "Painting", true)
	proUser, pro := seedProfessional(t, db, catalog.Id, "approved")

	open := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))
	seedRequest(t, db, otherCatalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))
	taken := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))
	assignRequest(t, db, taken.Id, pro.Id)

	t.Run("available listing is scoped to the professional's open pool", func(t *testing.T) {
		available, err := svc.ListAvailable(ctx, proUser.Id, false)
		require.NoError(t, err)
		require.Len(t, available, 1)
		assert.Equal(t, open.Id, available[0].Id)
	})

	t.Run("customer sees all their requests", func(t *testing.T) {
		mine, err := svc.ListMine(ctx, custUser.Id, "")
		require.NoError(t, err)
		assert.Len(t, mine, 3)
	})

	t.Run("customer listing filters by status", func(t *testing.T) {
		mine, err := svc.ListMine(ctx, custUser.Id, "assigned")
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, taken.Id, mine[0].Id)
	})

	t.Run("assigned listing is scoped to the professional", func(t *testing.T) {
		assigned, err := svc.ListAssigned(ctx, proUser.Id, "")
		require.NoError(t, err)
		require.Len(t, assigned, 1)
		assert.Equal(t, taken.Id, assigned[0].Id)
	})

	t.Run("admin listing filters and counts", func(t *testing.T) {
		all, total, err := svc.ListAll(ctx, dto.AdminRequestFilter{Status: "requested"})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, all, 2)
	})
}

func TestRejectionListing(t *testing.T) {
	factory, db := newTestFactory(t)
	svc := NewRequestService(factory, &recordingSink{}, nil)
	ctx := context.Background()

	catalog := seedService(t, db, "Plumbing", true)
	custUser, customer := seedCustomer(t, db)
	proUser, pro := seedProfessional(t, db, catalog.Id, "approved")
	otherProUser, otherPro := seedProfessional(t, db, catalog.Id, "approved")

	first := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))
	second := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(48*time.Hour))

	require.NoError(t, svc.Reject(ctx, proUser.Id, first.Id, "fully booked"))
	require.NoError(t, svc.Reject(ctx, otherProUser.Id, second.Id, ""))

	t.Run("professional sees only their own rejections", func(t *testing.T) {
		rejections, err := svc.ListRejections(ctx, proUser.Id, "professional", dto.RejectionFilter{})
		require.NoError(t, err)
		require.Len(t, rejections, 1)
		assert.Equal(t, first.Id, rejections[0].ServiceRequestId)
		assert.Equal(t, "fully booked", rejections[0].Reason)
		assert.True(t, rejections[0].OwnRejection)
	})

	t.Run("admin sees all and can filter by professional", func(t *testing.T) {
		all, err := svc.ListRejections(ctx, uuid.New(), "admin", dto.RejectionFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 2)

		scoped, err := svc.ListRejections(ctx, uuid.New(), "admin", dto.RejectionFilter{ProfessionalId: &otherPro.Id})
		require.NoError(t, err)
		require.Len(t, scoped, 1)
		assert.Equal(t, second.Id, scoped[0].ServiceRequestId)
	})

	t.Run("customers have no rejection history", func(t *testing.T) {
		_, err := svc.ListRejections(ctx, custUser.Id, "customer", dto.RejectionFilter{})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
	})

	t.Run("per-request listing flags the caller's own rejection", func(t *testing.T) {
		require.NoError(t, svc.Reject(ctx, otherProUser.Id, first.Id, "too far away"))

		rejections, err := svc.ListRequestRejections(ctx, proUser.Id, "professional", first.Id)
		require.NoError(t, err)
		require.Len(t, rejections, 2)

		own := 0
		for _, r := range rejections {
			if r.OwnRejection {
				own++
				assert.Equal(t, pro.Id, r.ProfessionalId)
			}
		}
		assert.Equal(t, 1, own)
	})

	t.Run("per-request listing on an unknown request is not found", func(t *testing.T) {
		_, err := svc.ListRequestRejections(ctx, proUser.Id, "professional", uuid.New())
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}
