// FILE: internal/service/notification_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/model"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/logger"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/mailer"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository"
	"github.com/SudeepMalipeddi/Service-Sphere/pkg/events"
	pktNats "github.com/SudeepMalipeddi/Service-Sphere/pkg/nats" // Renamed to avoid collision

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
	Broadcast(notification model.Notification)
}

// NotificationSink records a notification for a user. Implementations must
// never propagate failures to the caller: a request that completed its state
// change stays completed even when the notification could not be written.
type NotificationSink interface {
	Notify(ctx context.Context, userID uuid.UUID, typeCode string, message string, metadata map[string]interface{})
}

type NotificationService struct {
	repo       repository.NotificationRepository
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	mailer     mailer.IEmailService
	logger     logger.ILogger
}

func NewNotificationService(
	repo repository.NotificationRepository,
	sub *pktNats.Subscriber,
	delivery NotificationDelivery,
	email mailer.IEmailService,
	log logger.ILogger,
) *NotificationService {
	return &NotificationService{
		repo:       repo,
		subscriber: sub,
		delivery:   delivery,
		mailer:     email,
		logger:     log,
	}
}

// Notify persists an in-app notification and pushes it over the hub.
// Errors are logged and swallowed.
func (s *NotificationService) Notify(ctx context.Context, userID uuid.UUID, typeCode string, message string, metadata map[string]interface{}) {
	notif := model.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		TypeCode:  typeCode,
		Message:   message,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	if metadata != nil {
		metaJSON, err := json.Marshal(metadata)
		if err == nil {
			notif.Metadata = datatypes.JSON(metaJSON)
		}
	}

	if err := s.repo.CreateNotification(ctx, &notif); err != nil {
		s.logger.Error("NotificationService", fmt.Sprintf("Error saving notification for user %s", userID), map[string]interface{}{"error": err.Error(), "type": typeCode})
		return
	}

	if s.delivery != nil {
		s.delivery.Send(userID, notif)
	}
}

// Start begins listening to the event bus. Events carrying recipient email
// details are forwarded to the mailer off the request path.
func (s *NotificationService) Start() {
	if s.subscriber == nil {
		s.logger.Info("NotificationService", "No event subscriber configured, email fan-out disabled", nil)
		return
	}

	// Subscribe to all events with a durable consumer
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	s.logger.Info("NotificationService", fmt.Sprintf("Processing event: %s", event.EventType()), map[string]interface{}{"type": event.EventType()})

	payload := event.Payload()

	email, _ := payload["email"].(string)
	subject, _ := payload["subject"].(string)
	message, _ := payload["message"].(string)
	if email == "" || message == "" {
		// Nothing to mail for this event. Ack so it is not redelivered.
		return nil
	}
	if subject == "" {
		subject = "Service Sphere Update"
	}

	if s.mailer == nil {
		return nil
	}
	if err := s.mailer.SendNotification(email, subject, message); err != nil {
		s.logger.Warn("NotificationService", fmt.Sprintf("Failed to email %s", email), map[string]interface{}{"error": err.Error()})
		// Mail failures are not worth a redelivery storm. Ack.
	}
	return nil
}

// --- Inbox API ---

func (s *NotificationService) GetUserNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]model.Notification, int64, error) {
	return s.repo.GetNotificationsByUserID(ctx, userID, unreadOnly, limit, offset)
}

func (s *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.GetUnreadCount(ctx, userID)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID uuid.UUID, notificationID uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, userID, notificationID)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *NotificationService) DeleteNotification(ctx context.Context, userID uuid.UUID, notificationID uuid.UUID) error {
	return s.repo.DeleteNotification(ctx, userID, notificationID)
}
