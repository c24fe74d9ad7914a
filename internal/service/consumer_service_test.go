// FILE: internal/service/consumer_service_test.go
package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingMailer captures outgoing mail.
type recordingMailer struct {
	mu      sync.Mutex
	reports []sentReport
}

type sentReport struct {
	To   string
	Name string
	HTML string
}

func (m *recordingMailer) SendNotification(toEmail, subject, message string) error {
	return nil
}

func (m *recordingMailer) SendMonthlyReport(toEmail, customerName, reportHTML string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = append(m.reports, sentReport{To: toEmail, Name: customerName, HTML: reportHTML})
	return nil
}

func (m *recordingMailer) sent() []sentReport {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]sentReport, len(m.reports))
	copy(out, m.reports)
	return out
}

func TestMonthlyReportPipeline(t *testing.T) {
	factory, db := newTestFactory(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	const topic = "monthly-reports"
	mailerStub := &recordingMailer{}
	consumer := NewConsumerService(pubSub, topic, factory, mailerStub)
	require.NoError(t, consumer.Consume(ctx))

	custUser, customer := seedCustomer(t, db)
	catalog := seedService(t, db, "Plumbing", true)
	now := time.Now().UTC()
	seedRequest(t, db, catalog.Id, customer.Id, "closed", now)
	seedRequest(t, db, catalog.Id, customer.Id, "cancelled", now)

	publisher := NewPublisherService(topic, pubSub)
	sweeps := NewSweepService(factory, &recordingSink{}, publisher, nopLogger{})

	queued, err := sweeps.QueueMonthlyReports(ctx, now.Year(), now.Month())
	require.NoError(t, err)
	require.Equal(t, 1, queued)

	// The consumer works off a channel, give it a moment.
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if len(mailerStub.sent()) > 0 {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	reports := mailerStub.sent()
	require.Len(t, reports, 1)
	assert.Equal(t, custUser.Email, reports[0].To)
	assert.Equal(t, custUser.FullName, reports[0].Name)
	assert.Contains(t, reports[0].HTML, "closed")
	assert.Contains(t, reports[0].HTML, "cancelled")
}
