// FILE: internal/service/notification_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/model"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/implementation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDelivery records hub pushes.
type fakeDelivery struct {
	sent      []model.Notification
	broadcast []model.Notification
}

func (d *fakeDelivery) Send(userID uuid.UUID, n model.Notification) { d.sent = append(d.sent, n) }
func (d *fakeDelivery) Broadcast(n model.Notification)              { d.broadcast = append(d.broadcast, n) }

func newNotificationService(t *testing.T) (*NotificationService, *fakeDelivery) {
	t.Helper()
	db := newTestDB(t)
	delivery := &fakeDelivery{}
	repo := implementation.NewNotificationRepository(db)
	return NewNotificationService(repo, nil, delivery, nil, nopLogger{}), delivery
}

func TestNotifyPersistsAndPushes(t *testing.T) {
	svc, delivery := newNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	svc.Notify(ctx, userID, NotifNewRequest, "a new request is waiting", map[string]interface{}{
		"request_id": uuid.New().String(),
	})

	list, total, err := svc.GetUserNotifications(ctx, userID, false, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, NotifNewRequest, list[0].TypeCode)
	assert.False(t, list[0].IsRead)
	assert.NotEmpty(t, list[0].Metadata)

	require.Len(t, delivery.sent, 1)
	assert.Equal(t, userID, delivery.sent[0].UserID)
}

func TestInboxLifecycle(t *testing.T) {
	svc, _ := newNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()
	stranger := uuid.New()

	svc.Notify(ctx, userID, NotifReminder, "first", nil)
	svc.Notify(ctx, userID, NotifReminder, "second", nil)
	svc.Notify(ctx, stranger, NotifReminder, "not yours", nil)

	t.Run("unread count tracks only the owner's notifications", func(t *testing.T) {
		count, err := svc.GetUnreadCount(ctx, userID)
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)
	})

	t.Run("mark one read", func(t *testing.T) {
		list, _, err := svc.GetUserNotifications(ctx, userID, true, 10, 0)
		require.NoError(t, err)
		require.NotEmpty(t, list)

		require.NoError(t, svc.MarkAsRead(ctx, userID, list[0].ID))

		count, err := svc.GetUnreadCount(ctx, userID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("cannot mark someone else's notification", func(t *testing.T) {
		list, _, err := svc.GetUserNotifications(ctx, stranger, false, 10, 0)
		require.NoError(t, err)
		require.NotEmpty(t, list)

		assert.Error(t, svc.MarkAsRead(ctx, userID, list[0].ID))
	})

	t.Run("mark all read", func(t *testing.T) {
		require.NoError(t, svc.MarkAllAsRead(ctx, userID))
		count, err := svc.GetUnreadCount(ctx, userID)
		require.NoError(t, err)
		assert.EqualValues(t, 0, count)
	})

	t.Run("delete", func(t *testing.T) {
		list, _, err := svc.GetUserNotifications(ctx, userID, false, 10, 0)
		require.NoError(t, err)
		require.NotEmpty(t, list)

		require.NoError(t, svc.DeleteNotification(ctx, userID, list[0].ID))

		_, total, err := svc.GetUserNotifications(ctx, userID, false, 10, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
	})
}
