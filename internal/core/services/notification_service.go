package services

import (
	"context"
	"errors"
	"fmt"

	"donorly/internal/adapters/persistence/models"
	"donorly/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Notification errors
var (
	ErrNoRecipients         = errors.New("no donors registered for this camp")
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationService fans out camp alerts and manages donor notifications
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	campRepo         repositories.CampRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	campRepo repositories.CampRepository,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		campRepo:         campRepo,
	}
}

// SendCampAlert creates one notification per registered donor of the camp
// and returns the recipient count. Repeated calls duplicate notifications;
// there is no idempotency key.
func (s *NotificationService) SendCampAlert(ctx context.Context, campID uint, message, notificationType string) (int, error) {
	camp, err := s.campRepo.GetDetail(ctx, campID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCampNotFound
		}
		return 0, err
	}

	if len(camp.Registrations) == 0 {
		return 0, ErrNoRecipients
	}

	if message == "" {
		message = fmt.Sprintf("Reminder: The blood drive '%s' is starting soon!", camp.CampName)
	}
	if notificationType == "" {
		notificationType = models.NotificationTypeReminder
	}

	notifications := make([]*models.Notification, 0, len(camp.Registrations))
	for _, reg := range camp.Registrations {
		notifications = append(notifications, &models.Notification{
			RecipientID: reg.DonorID,
			Message:     message,
			Type:        notificationType,
		})
	}

	if err := s.notificationRepo.CreateBatch(ctx, notifications); err != nil {
		return 0, err
	}

	return len(notifications), nil
}

// ListForDonor returns a donor's notifications, newest first
func (s *NotificationService) ListForDonor(ctx context.Context, donorID uint) ([]*models.Notification, error) {
	return s.notificationRepo.ListByRecipient(ctx, donorID)
}

// MarkRead flips a notification's read flag. The calling principal is not
// checked against the recipient; that matches the historical behavior.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID uint) error {
	affected, err := s.notificationRepo.MarkRead(ctx, notificationID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
