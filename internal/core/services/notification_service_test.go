package services

import (
	"context"
	"testing"
	"time"

	"donorly/internal/adapters/persistence/models"
	"donorly/internal/adapters/persistence/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newNotificationService(db *gorm.DB) *NotificationService {
	return NewNotificationService(
		repositories.NewNotificationRepository(db),
		repositories.NewCampRepository(db),
	)
}

func TestNotificationService_SendCampAlert(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	campSvc := newCampService(db, testConfig())
	ctx := context.Background()

	org := seedOrg(t, db, "blood@cityhospital.org", "LIC-1001")
	camp := seedCamp(t, db, org, "Summer Drive", time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC))
	first := seedDonor(t, db, "first@example.com", "O+")
	second := seedDonor(t, db, "second@example.com", "A-")

	require.NoError(t, campSvc.RegisterDonor(ctx, camp.ID, first.ID))
	require.NoError(t, campSvc.RegisterDonor(ctx, camp.ID, second.ID))

	count, err := svc.SendCampAlert(ctx, camp.ID, "Bring your donor card", models.NotificationTypeAlert)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	notifications, err := svc.ListForDonor(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Bring your donor card", notifications[0].Message)
	assert.Equal(t, models.NotificationTypeAlert, notifications[0].Type)
	assert.False(t, notifications[0].IsRead)
}

func TestNotificationService_SendCampAlert_Defaults(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	campSvc := newCampService(db, testConfig())
	ctx := context.Background()

	org := seedOrg(t, db, "blood@cityhospital.org", "LIC-1001")
	camp := seedCamp(t, db, org, "Summer Drive", time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC))
	donor := seedDonor(t, db, "asha@example.com", "O+")
	require.NoError(t, campSvc.RegisterDonor(ctx, camp.ID, donor.ID))

	_, err := svc.SendCampAlert(ctx, camp.ID, "", "")
	require.NoError(t, err)

	notifications, err := svc.ListForDonor(ctx, donor.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Reminder: The blood drive 'Summer Drive' is starting soon!", notifications[0].Message)
	assert.Equal(t, models.NotificationTypeReminder, notifications[0].Type)
}

func TestNotificationService_SendCampAlert_NoRecipients(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	ctx := context.Background()

	org := seedOrg(t, db, "blood@cityhospital.org", "LIC-1001")
	camp := seedCamp(t, db, org, "Empty Drive", time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC))

	_, err := svc.SendCampAlert(ctx, camp.ID, "", "")
	assert.ErrorIs(t, err, ErrNoRecipients)

	_, err = svc.SendCampAlert(ctx, 9999, "", "")
	assert.ErrorIs(t, err, ErrCampNotFound)
}

func TestNotificationService_MarkRead(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	ctx := context.Background()

	donor := seedDonor(t, db, "asha@example.com", "O+")
	notification := &models.Notification{RecipientID: donor.ID, Message: "hello"}
	require.NoError(t, db.Create(notification).Error)

	require.NoError(t, svc.MarkRead(ctx, notification.ID))

	var stored models.Notification
	require.NoError(t, db.First(&stored, notification.ID).Error)
	assert.True(t, stored.IsRead)

	assert.ErrorIs(t, svc.MarkRead(ctx, 9999), ErrNotificationNotFound)
}
