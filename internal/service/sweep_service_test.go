// FILE: internal/service/sweep_service_test.go
package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoCancelExpired(t *testing.T) {
	factory, db := newTestFactory(t)
	sink := &recordingSink{}
	svc := NewSweepService(factory, sink, nil, nopLogger{})
	ctx := context.Background()

	custUser, customer := seedCustomer(t, db)
	catalog := seedService(t, db, "Plumbing", true)
	_, pro := seedProfessional(t, db, catalog.Id, "approved")

	expired := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(-2*time.Hour))
	future := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))
	expiredButAssigned := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(-2*time.Hour))
	assignRequest(t, db, expiredButAssigned.Id, pro.Id)

	cancelled, err := svc.AutoCancelExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cancelled)

	assert.Equal(t, "cancelled", requestStatus(t, db, expired.Id))
	assert.Equal(t, "requested", requestStatus(t, db, future.Id))
	assert.Equal(t, "assigned", requestStatus(t, db, expiredButAssigned.Id))

	notified := sink.byType(NotifAutoCancelled)
	require.Len(t, notified, 1)
	assert.Equal(t, custUser.Id, notified[0].UserID)
}

func TestNotifyOverdue(t *testing.T) {
	factory, db := newTestFactory(t)
	sink := &recordingSink{}
	svc := NewSweepService(factory, sink, nil, nopLogger{})
	ctx := context.Background()

	custUser, customer := seedCustomer(t, db)
	catalog := seedService(t, db, "Electrical", true)
	proUser, pro := seedProfessional(t, db, catalog.Id, "approved")

	overdue := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(-time.Hour))
	assignRequest(t, db, overdue.Id, pro.Id)
	onTime := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))
	assignRequest(t, db, onTime.Id, pro.Id)

	notified, err := svc.NotifyOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, notified)

	// Advisory only, the status must not move.
	assert.Equal(t, "assigned", requestStatus(t, db, overdue.Id))

	reminders := sink.byType(NotifReminder)
	require.Len(t, reminders, 2)
	recipients := map[string]bool{}
	for _, r := range reminders {
		recipients[r.UserID.String()] = true
	}
	assert.True(t, recipients[custUser.Id.String()])
	assert.True(t, recipients[proUser.Id.String()])
}

func TestSendDailyReminders(t *testing.T) {
	factory, db := newTestFactory(t)
	sink := &recordingSink{}
	svc := NewSweepService(factory, sink, nil, nopLogger{})
	ctx := context.Background()

	_, customer := seedCustomer(t, db)
	catalog := seedService(t, db, "Cleaning", true)
	busyUser, busy := seedProfessional(t, db, catalog.Id, "approved")
	idleCatalog := seedService(t, db, "Masonry", true)
	idleUser, _ := seedProfessional(t, db, idleCatalog.Id, "approved")

	assigned := seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(24*time.Hour))
	assignRequest(t, db, assigned.Id, busy.Id)
	seedRequest(t, db, catalog.Id, customer.Id, "requested", time.Now().Add(48*time.Hour))

	sent, err := svc.SendDailyReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	reminders := sink.byType(NotifReminder)
	require.Len(t, reminders, 1)
	assert.Equal(t, busyUser.Id, reminders[0].UserID)
	assert.EqualValues(t, int64(1), reminders[0].Metadata["assigned"])
	assert.EqualValues(t, int64(1), reminders[0].Metadata["open"])

	// Nothing waiting for the idle professional, no noise.
	for _, r := range reminders {
		assert.NotEqual(t, idleUser.Id, r.UserID)
	}
}

func TestQueueMonthlyReports(t *testing.T) {
	factory, db := newTestFactory(t)
	publisher := &capturePublisher{}
	svc := NewSweepService(factory, &recordingSink{}, publisher, nopLogger{})
	ctx := context.Background()

	_, active := seedCustomer(t, db)
	seedCustomer(t, db) // no activity, no report
	catalog := seedService(t, db, "Painting", true)

	now := time.Now().UTC()
	seedRequest(t, db, catalog.Id, active.Id, "closed", now)
	seedRequest(t, db, catalog.Id, active.Id, "cancelled", now)

	queued, err := svc.QueueMonthlyReports(ctx, now.Year(), now.Month())
	require.NoError(t, err)
	assert.Equal(t, 1, queued)

	require.Len(t, publisher.payloads, 1)
	var msg dto.PublishMonthlyReportMessage
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &msg))
	assert.Equal(t, active.Id, msg.CustomerId)
	assert.Equal(t, now.Year(), msg.Year)
	assert.Equal(t, int(now.Month()), msg.Month)
}
