// FILE: internal/service/catalog_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/dto"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCreateAndUpdate(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := NewCatalogService(factory)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateServiceRequest{
		Name:          "Deep Cleaning",
		BasePrice:     1299,
		EstimatedTime: 240,
		Description:   "Full home deep clean",
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	t.Run("duplicate name is refused", func(t *testing.T) {
		_, err := svc.Create(ctx, dto.CreateServiceRequest{
			Name:          "Deep Cleaning",
			BasePrice:     999,
			EstimatedTime: 120,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("partial update touches only the given fields", func(t *testing.T) {
		price := 1499.0
		active := false
		updated, err := svc.Update(ctx, dto.UpdateServiceRequest{
			Id:        created.Id,
			BasePrice: &price,
			IsActive:  &active,
		})
		require.NoError(t, err)
		assert.Equal(t, 1499.0, updated.BasePrice)
		assert.False(t, updated.IsActive)
		assert.Equal(t, "Deep Cleaning", updated.Name)
	})
}

func TestCatalogDeleteGuards(t *testing.T) {
	factory, db := newTestFactory(t)
	svc := NewCatalogService(factory)
	ctx := context.Background()

	t.Run("a service with professionals cannot be deleted", func(t *testing.T) {
		catalog := seedService(t, db, "Plumbing", true)
		seedProfessional(t, db, catalog.Id, "approved")

		err := svc.Delete(ctx, catalog.Id)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})

	t.Run("a service with open requests cannot be deleted", func(t *testing.T) {
		catalog := seedService(t, db, "Electrical", true)
		_, customer := seedCustomer(t, db)
		seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))

		err := svc.Delete(ctx, catalog.Id)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})

	t.Run("an unreferenced service deletes cleanly", func(t *testing.T) {
		catalog := seedService(t, db, "Gardening", true)
		require.NoError(t, svc.Delete(ctx, catalog.Id))

		_, err := svc.Show(ctx, catalog.Id)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}

func TestCatalogListAndSearch(t *testing.T) {
	factory, db := newTestFactory(t)
	svc := NewCatalogService(factory)
	ctx := context.Background()

	seedService(t, db, "Plumbing", true)
	seedService(t, db, "Painting", false)

	t.Run("default listing hides inactive services", func(t *testing.T) {
		services, err := svc.List(ctx, false)
		require.NoError(t, err)
		require.Len(t, services, 1)
		assert.Contains(t, services[0].Name, "Plumbing")
	})

	t.Run("admin listing includes inactive services", func(t *testing.T) {
		services, err := svc.List(ctx, true)
		require.NoError(t, err)
		assert.Len(t, services, 2)
	})

	t.Run("search matches case-insensitively on active services", func(t *testing.T) {
		services, err := svc.Search(ctx, "plumb", 0, 0)
		require.NoError(t, err)
		require.Len(t, services, 1)

		services, err = svc.Search(ctx, "paint", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, services)
	})
}
