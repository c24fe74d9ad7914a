// FILE: internal/service/admin_service_test.go
package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/dto"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/model"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/apperrors"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/logger"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyProfessional(t *testing.T) {
	factory, db := newTestFactory(t)
	sink := &recordingSink{}
	svc := NewAdminService(factory, sink, memory.NewDirectoryCache(), nopLogger{})
	ctx := context.Background()

	catalog := seedService(t, db, "Plumbing", true)

	t.Run("approval moves the profile to approved and notifies", func(t *testing.T) {
		proUser, pro := seedProfessional(t, db, catalog.Id, "pending")

		require.NoError(t, svc.VerifyProfessional(ctx, pro.Id, dto.VerifyProfessionalRequest{Approve: true}))

		var reloaded model.Professional
		require.NoError(t, db.First(&reloaded, "id = ?", pro.Id).Error)
		assert.Equal(t, "approved", reloaded.Verification)

		notified := sink.byType(NotifVerification)
		require.NotEmpty(t, notified)
		assert.Equal(t, proUser.Id, notified[len(notified)-1].UserID)
	})

	t.Run("rejection moves the profile to rejected", func(t *testing.T) {
		_, pro := seedProfessional(t, db, catalog.Id, "pending")

		require.NoError(t, svc.VerifyProfessional(ctx, pro.Id, dto.VerifyProfessionalRequest{Approve: false, Message: "documents incomplete"}))

		var reloaded model.Professional
		require.NoError(t, db.First(&reloaded, "id = ?", pro.Id).Error)
		assert.Equal(t, "rejected", reloaded.Verification)
	})

	t.Run("an already verified profile cannot be re-verified", func(t *testing.T) {
		_, pro := seedProfessional(t, db, catalog.Id, "approved")

		err := svc.VerifyProfessional(ctx, pro.Id, dto.VerifyProfessionalRequest{Approve: true})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})
}

func TestSetAccountStatus(t *testing.T) {
	factory, db := newTestFactory(t)
	sink := &recordingSink{}
	svc := NewAdminService(factory, sink, memory.NewDirectoryCache(), nopLogger{})
	ctx := context.Background()

	t.Run("deactivation flips the flag and notifies", func(t *testing.T) {
		user, _ := seedCustomer(t, db)

		require.NoError(t, svc.SetAccountStatus(ctx, user.Id, dto.SetAccountStatusRequest{Active: false}))

		var reloaded model.User
		require.NoError(t, db.First(&reloaded, "id = ?", user.Id).Error)
		assert.False(t, reloaded.Active)
		assert.NotEmpty(t, sink.byType(NotifAccountStatus))
	})

	t.Run("setting the current status is a no-op", func(t *testing.T) {
		user, _ := seedCustomer(t, db)
		before := len(sink.calls)

		require.NoError(t, svc.SetAccountStatus(ctx, user.Id, dto.SetAccountStatusRequest{Active: true}))
		assert.Equal(t, before, len(sink.calls))
	})

	t.Run("admin accounts are off limits", func(t *testing.T) {
		admin := seedUser(t, db, "admin")

		err := svc.SetAccountStatus(ctx, admin.Id, dto.SetAccountStatusRequest{Active: false})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
	})
}

func TestDashboard(t *testing.T) {
	factory, db := newTestFactory(t)
	svc := NewAdminService(factory, &recordingSink{}, memory.NewDirectoryCache(), nopLogger{})
	ctx := context.Background()

	_, customer := seedCustomer(t, db)
	catalog := seedService(t, db, "Electrical", true)
	seedProfessional(t, db, catalog.Id, "pending")
	seedProfessional(t, db, catalog.Id, "approved")
	seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))
	seedRequest(t, db, catalog.Id, customer.Id, "closed", time.Now().Add(-time.Hour))

	dash, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 1, dash.TotalCustomers)
	assert.EqualValues(t, 2, dash.TotalProfessionals)
	assert.EqualValues(t, 1, dash.TotalServices)
	assert.EqualValues(t, 2, dash.TotalRequests)
	assert.EqualValues(t, 1, dash.PendingVerifications)
	assert.EqualValues(t, 1, dash.RequestsByStatus["requested"])
	assert.EqualValues(t, 1, dash.RequestsByStatus["closed"])
	assert.EqualValues(t, 2, dash.RequestsLast7Days)
}

func TestAdminLogBrowser(t *testing.T) {
	factory, _ := newTestFactory(t)
	logFile := filepath.Join(t.TempDir(), "backend.log")
	zl := logger.NewIsolatedLogger(logFile)
	svc := NewAdminService(factory, &recordingSink{}, memory.NewDirectoryCache(), zl)
	ctx := context.Background()

	zl.Info("Scheduler", "Sweep loops started", map[string]interface{}{"jobs": 4})
	zl.Error("Mailer", "SMTP dial failed", map[string]interface{}{"host": "localhost"})
	require.NoError(t, zl.Sync())

	t.Run("lists newest first with levels and ids", func(t *testing.T) {
		entries, err := svc.ListLogs(ctx, "", 50, 0)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "ERROR", entries[0].Level)
		assert.Equal(t, "SMTP dial failed", entries[0].Message)
		assert.NotEmpty(t, entries[0].Id)
	})

	t.Run("filters by level", func(t *testing.T) {
		entries, err := svc.ListLogs(ctx, "INFO", 50, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Sweep loops started", entries[0].Message)
	})

	t.Run("fetches one entry by id", func(t *testing.T) {
		entries, err := svc.ListLogs(ctx, "", 50, 0)
		require.NoError(t, err)
		require.NotEmpty(t, entries)

		got, err := svc.ShowLog(ctx, entries[0].Id)
		require.NoError(t, err)
		assert.Equal(t, entries[0].Message, got.Message)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := svc.ShowLog(ctx, "no-such-entry")
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}
