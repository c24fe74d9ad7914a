// FILE: internal/service/profile_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/dto"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/model"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/apperrors"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerProfile(t *testing.T) {
	factory, db := newTestFactory(t)
	svc := NewProfileService(factory, memory.NewDirectoryCache())
	ctx := context.Background()

	user, _ := seedCustomer(t, db)

	t.Run("show resolves the profile by account", func(t *testing.T) {
		profile, err := svc.ShowCustomer(ctx, user.Id)
		require.NoError(t, err)
		assert.Equal(t, user.Id, profile.UserId)
		assert.Equal(t, user.FullName, profile.FullName)
	})

	t.Run("update touches profile and account name", func(t *testing.T) {
		name := "Renamed Customer"
		address := "99 New Street"
		profile, err := svc.UpdateCustomer(ctx, user.Id, dto.UpdateCustomerProfileRequest{
			FullName: &name,
			Address:  &address,
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed Customer", profile.FullName)
		assert.Equal(t, "99 New Street", profile.Address)

		var reloaded model.User
		require.NoError(t, db.First(&reloaded, "id = ?", user.Id).Error)
		assert.Equal(t, "Renamed Customer", reloaded.FullName)
	})

	t.Run("accounts without a profile are not found", func(t *testing.T) {
		_, err := svc.ShowCustomer(ctx, uuid.New())
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}

func TestProfessionalDirectory(t *testing.T) {
	factory, db := newTestFactory(t)
	cache := memory.NewDirectoryCache()
	svc := NewProfileService(factory, cache)
	ctx := context.Background()

	catalog := seedService(t, db, "Plumbing", true)
	otherCatalog := seedService(t, db, "Painting", true)
	_, approved := seedProfessional(t, db, catalog.Id, "approved")
	seedProfessional(t, db, catalog.Id, "pending")
	seedProfessional(t, db, otherCatalog.Id, "approved")

	t.Run("directory lists only approved professionals", func(t *testing.T) {
		all, err := svc.Directory(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("directory narrows by service", func(t *testing.T) {
		scoped, err := svc.Directory(ctx, &catalog.Id)
		require.NoError(t, err)
		require.Len(t, scoped, 1)
		assert.Equal(t, approved.Id, scoped[0].Id)
	})

	t.Run("entry includes the rating summary", func(t *testing.T) {
		// Give the professional a couple of reviews first.
		_, customer := seedCustomer(t, db)
		for _, rating := range []int{4, 5} {
			request := seedRequest(t, db, catalog.Id, customer.Id, "closed", time.Now())
			review := model.Review{
				Id:               uuid.New(),
				ServiceRequestId: request.Id,
				CustomerId:       customer.Id,
				ProfessionalId:   approved.Id,
				Rating:           rating,
			}
			require.NoError(t, db.Create(&review).Error)
		}

		entry, err := svc.DirectoryEntry(ctx, approved.Id)
		require.NoError(t, err)
		assert.InDelta(t, 4.5, entry.AverageRating, 0.001)
		assert.EqualValues(t, 2, entry.ReviewCount)
	})

	t.Run("entry is cached until invalidated", func(t *testing.T) {
		_, found := cache.Get(approved.Id)
		assert.True(t, found)

		cache.Invalidate(approved.Id)
		_, found = cache.Get(approved.Id)
		assert.False(t, found)
	})

	t.Run("pending professionals are not exposed", func(t *testing.T) {
		var pending model.Professional
		require.NoError(t, db.First(&pending, "verification = ?", "pending").Error)

		_, err := svc.DirectoryEntry(ctx, pending.Id)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}
