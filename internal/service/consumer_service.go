// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/dto"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/mailer"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/contract"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/specification"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the monthly report topic: for every queued
// customer it aggregates the month's requests and mails the summary.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		uowFactory:   uowFactory,
		emailService: emailService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishMonthlyReportMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal report message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Building monthly report for customer %s (%d-%02d)", payload.CustomerId, payload.Year, payload.Month)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: payload.CustomerId})
	if err != nil {
		log.Printf("[ERROR] Failed to load customer %s: %v", payload.CustomerId, err)
		msg.Nack() // Retriable
		return
	}
	if customer == nil {
		log.Printf("[WARN] Customer %s gone, skipping report", payload.CustomerId)
		msg.Ack()
		return
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: customer.UserId})
	if err != nil {
		log.Printf("[ERROR] Failed to load user for customer %s: %v", customer.Id, err)
		msg.Nack() // Retriable
		return
	}
	if user == nil || user.Email == "" {
		log.Printf("[WARN] Customer %s has no email, skipping report", customer.Id)
		msg.Ack()
		return
	}

	from := time.Date(payload.Year, time.Month(payload.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	counts, err := uow.ServiceRequestRepository().CountByStatus(ctx,
		specification.ByCustomer{CustomerID: customer.Id},
		specification.RequestedBetween{From: from, To: to},
	)
	if err != nil {
		log.Printf("[ERROR] Failed to count requests for %s: %v", customer.Id, err)
		msg.Nack()
		return
	}

	var total int64
	for _, c := range counts {
		total += c.Count
	}
	if total == 0 {
		// Queued by mistake or the data moved. Nothing to report.
		msg.Ack()
		return
	}

	spend, err := uow.ServiceRequestRepository().TotalClosedSpend(ctx, customer.Id, from, to)
	if err != nil {
		log.Printf("[ERROR] Failed to sum spend for %s: %v", customer.Id, err)
		msg.Nack()
		return
	}

	reportHTML := buildMonthlyReportHTML(from, counts, total, spend)

	if err := cs.emailService.SendMonthlyReport(user.Email, user.FullName, reportHTML); err != nil {
		log.Printf("[ERROR] Failed to send report to %s: %v", user.Email, err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Monthly report sent to %s (%d requests)", user.Email, total)
	msg.Ack()
}

func buildMonthlyReportHTML(month time.Time, counts []contract.StatusCount, total int64, spend float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Your activity for %s</h2>", month.Format("January 2006"))
	fmt.Fprintf(&b, "<p>You made <b>%d</b> service request(s) this month.</p>", total)
	b.WriteString("<table border=\"1\" cellpadding=\"6\"><tr><th>Status</th><th>Count</th></tr>")
	for _, c := range counts {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%d</td></tr>", c.Status, c.Count)
	}
	b.WriteString("</table>")
	fmt.Fprintf(&b, "<p>Total spent on closed requests: <b>%.2f</b></p>", spend)
	return b.String()
}
