package services

import (
	"context"
	"errors"
	"log"
	"time"

	"donorly/internal/config"

	"github.com/robfig/cron/v3"
)

// CronService runs the daily camp-reminder job: every camp happening
// tomorrow gets a reminder fanned out to its registered donors.
type CronService struct {
	campService         *CampService
	notificationService *NotificationService
	cfg                 *config.Config
	cron                *cron.Cron
}

// NewCronService creates a new cron service
func NewCronService(
	campService *CampService,
	notificationService *NotificationService,
	cfg *config.Config,
) *CronService {
	return &CronService{
		campService:         campService,
		notificationService: notificationService,
		cfg:                 cfg,
		cron:                cron.New(),
	}
}

// Start schedules the reminder job. No-op when reminders are disabled.
func (s *CronService) Start() {
	if !s.cfg.Reminder.Enabled {
		log.Println("⏭️ Camp reminder cron disabled")
		return
	}

	_, err := s.cron.AddFunc(s.cfg.Reminder.Schedule, s.runCampReminders)
	if err != nil {
		log.Printf("❌ Failed to schedule camp reminder cron: %v", err)
		return
	}

	s.cron.Start()
	log.Printf("🚀 Camp reminder cron started [schedule: %s]", s.cfg.Reminder.Schedule)
}

// Stop stops the cron scheduler
func (s *CronService) Stop() {
	s.cron.Stop()
	log.Println("🛑 Camp reminder cron stopped")
}

// runCampReminders sends a reminder for every camp dated tomorrow
func (s *CronService) runCampReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	from := time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour)
	to := from.AddDate(0, 0, 1)

	camps, err := s.campService.campRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		log.Printf("❌ Camp reminder cron: failed to list camps: %v", err)
		return
	}

	for _, camp := range camps {
		count, err := s.notificationService.SendCampAlert(ctx, camp.ID, "", "")
		if err != nil {
			if errors.Is(err, ErrNoRecipients) {
				continue
			}
			log.Printf("⚠️ Camp reminder cron: camp %d: %v", camp.ID, err)
			continue
		}
		log.Printf("✅ Camp reminder cron: notified %d donors for camp %d", count, camp.ID)
	}
}
