package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCronService_RunCampReminders(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	campSvc := newCampService(db, cfg)
	notifSvc := newNotificationService(db)
	svc := NewCronService(campSvc, notifSvc, cfg)
	ctx := context.Background()

	org := seedOrg(t, db, "blood@cityhospital.org", "LIC-1001")
	donor := seedDonor(t, db, "asha@example.com", "O+")

	tomorrow := time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour).Add(2 * time.Hour)
	nextWeek := tomorrow.AddDate(0, 0, 6)

	soon := seedCamp(t, db, org, "Tomorrow Drive", tomorrow)
	later := seedCamp(t, db, org, "Next Week Drive", nextWeek)
	seedCamp(t, db, org, "Empty Tomorrow Drive", tomorrow)

	require.NoError(t, campSvc.RegisterDonor(ctx, soon.ID, donor.ID))
	require.NoError(t, campSvc.RegisterDonor(ctx, later.ID, donor.ID))

	svc.runCampReminders()

	notifications, err := notifSvc.ListForDonor(ctx, donor.ID)
	require.NoError(t, err)

	// Only the camp happening tomorrow triggers a reminder; camps with no
	// registrations are skipped without error
	require.Len(t, notifications, 1)
	assert.Equal(t, "Reminder: The blood drive 'Tomorrow Drive' is starting soon!", notifications[0].Message)
}
