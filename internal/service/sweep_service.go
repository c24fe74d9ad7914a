// FILE: internal/service/sweep_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/dto"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/logger"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/specification"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/unitofwork"
)

const NotifReminder = "reminder"

// ISweepService bundles the periodic reconciliation jobs. Each job reports
// how many items it processed successfully; a single bad item is logged and
// skipped, never aborting the batch.
type ISweepService interface {
	AutoCancelExpired(ctx context.Context) (int, error)
	NotifyOverdue(ctx context.Context) (int, error)
	SendDailyReminders(ctx context.Context) (int, error)
	QueueMonthlyReports(ctx context.Context, year int, month time.Month) (int, error)
}

type sweepService struct {
	uowFactory unitofwork.RepositoryFactory
	sink       NotificationSink
	reports    IPublisherService
	logger     logger.ILogger
}

func NewSweepService(
	uowFactory unitofwork.RepositoryFactory,
	sink NotificationSink,
	reports IPublisherService,
	log logger.ILogger,
) ISweepService {
	return &sweepService{
		uowFactory: uowFactory,
		sink:       sink,
		reports:    reports,
		logger:     log,
	}
}

// AutoCancelExpired cancels open requests whose scheduled date has passed
// without anyone accepting them.
func (s *sweepService) AutoCancelExpired(ctx context.Context) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	expired, err := uow.ServiceRequestRepository().FindAll(ctx,
		specification.ByStatus{Status: string(entity.RequestStatusRequested)},
		specification.Unassigned{},
		specification.ScheduledBefore{Cutoff: time.Now()},
	)
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, request := range expired {
		ok, cerr := uow.ServiceRequestRepository().MarkCancelled(ctx, request.Id, string(entity.RequestStatusRequested))
		if cerr != nil {
			s.logger.Error("SweepService", "Auto-cancel failed", map[string]interface{}{"request_id": request.Id, "error": cerr.Error()})
			continue
		}
		if !ok {
			// Someone accepted or cancelled it between the read and the
			// guarded update. Nothing to do.
			continue
		}
		cancelled++

		if customer, ferr := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: request.CustomerId}); ferr == nil && customer != nil && s.sink != nil {
			s.sink.Notify(ctx, customer.UserId, NotifAutoCancelled,
				fmt.Sprintf("Your %s request scheduled for %s expired without a professional accepting it", request.ServiceName, request.ScheduledDate.Format("02 Jan 2006")),
				map[string]interface{}{"request_id": request.Id})
		}
	}

	if cancelled > 0 {
		s.logger.Info("SweepService", "Auto-cancel sweep finished", map[string]interface{}{"cancelled": cancelled, "scanned": len(expired)})
	}
	return cancelled, nil
}

// NotifyOverdue nudges both parties of assigned requests whose scheduled
// date has passed. Overdue is advisory, the status does not change.
func (s *sweepService) NotifyOverdue(ctx context.Context) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	overdue, err := uow.ServiceRequestRepository().FindAll(ctx,
		specification.ByStatus{Status: string(entity.RequestStatusAssigned)},
		specification.ScheduledBefore{Cutoff: time.Now()},
	)
	if err != nil {
		return 0, err
	}

	notified := 0
	for _, request := range overdue {
		msg := fmt.Sprintf("The %s request scheduled for %s is overdue", request.ServiceName, request.ScheduledDate.Format("02 Jan 2006"))
		meta := map[string]interface{}{"request_id": request.Id}

		if customer, ferr := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: request.CustomerId}); ferr == nil && customer != nil && s.sink != nil {
			s.sink.Notify(ctx, customer.UserId, NotifReminder, msg, meta)
		} else if ferr != nil {
			s.logger.Error("SweepService", "Overdue customer lookup failed", map[string]interface{}{"request_id": request.Id, "error": ferr.Error()})
			continue
		}
		if request.ProfessionalId != nil {
			if pro, ferr := uow.ProfessionalRepository().FindOne(ctx, specification.ByID{ID: *request.ProfessionalId}); ferr == nil && pro != nil && s.sink != nil {
				s.sink.Notify(ctx, pro.UserId, NotifReminder, msg, meta)
			}
		}
		notified++
	}
	return notified, nil
}

// SendDailyReminders sends each professional one aggregated note about the
// work waiting on them: requests assigned to them plus open requests for
// their service they have not rejected.
func (s *sweepService) SendDailyReminders(ctx context.Context) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pros, err := uow.ProfessionalRepository().FindAll(ctx,
		specification.ByVerification{Status: string(entity.VerificationApproved)},
	)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, pro := range pros {
		assigned, aerr := uow.ServiceRequestRepository().Count(ctx,
			specification.ByProfessional{ProfessionalID: pro.Id},
			specification.ByStatus{Status: string(entity.RequestStatusAssigned)},
		)
		if aerr != nil {
			s.logger.Error("SweepService", "Reminder count failed", map[string]interface{}{"professional_id": pro.Id, "error": aerr.Error()})
			continue
		}
		open, oerr := uow.ServiceRequestRepository().Count(ctx,
			specification.ByStatus{Status: string(entity.RequestStatusRequested)},
			specification.ByService{ServiceID: pro.ServiceId},
			specification.Unassigned{},
			specification.NotRejectedBy{ProfessionalID: pro.Id},
		)
		if oerr != nil {
			s.logger.Error("SweepService", "Reminder count failed", map[string]interface{}{"professional_id": pro.Id, "error": oerr.Error()})
			continue
		}

		total := assigned + open
		if total == 0 {
			continue
		}

		if s.sink != nil {
			s.sink.Notify(ctx, pro.UserId, NotifReminder,
				fmt.Sprintf("You have %d request(s) waiting: %d assigned to you and %d open for your service", total, assigned, open),
				map[string]interface{}{"assigned": assigned, "open": open})
		}
		sent++
	}
	return sent, nil
}

// QueueMonthlyReports publishes one report job per customer that had
// activity in the given month. The consumer assembles and mails the report.
func (s *sweepService) QueueMonthlyReports(ctx context.Context, year int, month time.Month) (int, error) {
	if s.reports == nil {
		return 0, nil
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	ids, err := uow.CustomerRepository().IDsWithRequests(ctx,
		specification.RequestedBetween{From: from, To: to},
	)
	if err != nil {
		return 0, err
	}

	queued := 0
	for _, id := range ids {
		payload := dto.PublishMonthlyReportMessage{
			CustomerId: id,
			Year:       year,
			Month:      int(month),
		}
		msgJson, merr := json.Marshal(payload)
		if merr != nil {
			continue
		}
		if perr := s.reports.Publish(ctx, msgJson); perr != nil {
			s.logger.Error("SweepService", "Failed to queue monthly report", map[string]interface{}{"customer_id": id, "error": perr.Error()})
			continue
		}
		queued++
	}

	s.logger.Info("SweepService", "Monthly reports queued", map[string]interface{}{"year": year, "month": int(month), "queued": queued})
	return queued, nil
}
