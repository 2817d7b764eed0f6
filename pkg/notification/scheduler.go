package notification

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// The daily trigger fires at 09:00 server-local time, matching the original
// notification schedule. The duplicate-send guard, not the scheduler, is what
// keeps an extra manual run on the same day from re-sending.
const dailySchedule = "0 9 * * *"

type Scheduler struct {
	cron    *cron.Cron
	service NotificationService
}

func NewScheduler(service NotificationService) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		service: service,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(dailySchedule, func() {
		log.Println("Running scheduled notification check...")

		summary, err := s.service.CheckAndNotify(context.Background())
		if err != nil {
			log.Printf("notification run failed: %v", err)
			return
		}

		log.Printf("notification run complete: checked=%d sent=%d skipped=%d failed=%d",
			summary.UsersChecked, summary.EmailsSent, summary.Skipped, summary.Failed)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
