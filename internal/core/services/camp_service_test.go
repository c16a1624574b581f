package services

import (
	"context"
	"testing"
	"time"

	"donorly/internal/adapters/persistence/models"
	"donorly/internal/adapters/persistence/repositories"
	"donorly/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCampService(db *gorm.DB, cfg *config.Config) *CampService {
	return NewCampService(
		repositories.NewCampRepository(db),
		repositories.NewDonorRepository(db),
		repositories.NewDonationRepository(db),
		cfg,
	)
}

func TestCampService_CreateCamp_DefaultsOrganizer(t *testing.T) {
	db := newTestDB(t)
	svc := newCampService(db, testConfig())
	ctx := context.Background()

	org := seedOrg(t, db, "blood@cityhospital.org", "LIC-1001")

	camp, err := svc.CreateCamp(ctx, org, &CreateCampInput{
		CampName:  "Summer Drive",
		Location:  "Community Hall",
		Date:      time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	require.NoError(t, err)
	assert.Equal(t, org.OrgName, camp.OrganizerName)
	require.NotNil(t, camp.OrganizationID)
	assert.Equal(t, org.ID, *camp.OrganizationID)
}

func TestCampService_ListCamps_OrderedByDate(t *testing.T) {
	db := newTestDB(t)
	svc := newCampService(db, testConfig())
	ctx := context.Background()

	org := seedOrg(t, db, "blood@cityhospital.org", "LIC-1001")
	seedCamp(t, db, org, "Later", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	seedCamp(t, db, org, "Sooner", time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC))

	camps, err := svc.ListCamps(ctx)
	require.NoError(t, err)
	require.Len(t, camps, 2)
	assert.Equal(t, "Sooner", camps[0].CampName)
	assert.Equal(t, "Later", camps[1].CampName)
}

func TestCampService_RegisterDonor(t *testing.T) {
	db := newTestDB(t)
	svc := newCampService(db, testConfig())
	ctx := context.Background()

	org := seedOrg(t, db, "blood@cityhospital.org", "LIC-1001")
	camp := seedCamp(t, db, org, "Summer Drive", time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC))
	donor := seedDonor(t, db, "asha@example.com", "O+")

	require.NoError(t, svc.RegisterDonor(ctx, camp.ID, donor.ID))

	// Second registration for the same camp fails and adds nothing
	err := svc.RegisterDonor(ctx, camp.ID, donor.ID)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	var count int64
	require.NoError(t, db.Model(&models.CampRegistration{}).Where("camp_id = ?", camp.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Unknown camp
	err = svc.RegisterDonor(ctx, 9999, donor.ID)
	assert.ErrorIs(t, err, ErrCampNotFound)
}

func TestCampService_GetCampDetail_StatusDerivation(t *testing.T) {
	db := newTestDB(t)
	svc := newCampService(db, testConfig())
	ctx := context.Background()

	org := seedOrg(t, db, "blood@cityhospital.org", "LIC-1001")
	camp := seedCamp(t, db, org, "Summer Drive", time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC))
	registered := seedDonor(t, db, "registered@example.com", "O+")
	donated := seedDonor(t, db, "donated@example.com", "A-")

	require.NoError(t, svc.RegisterDonor(ctx, camp.ID, registered.ID))
	require.NoError(t, svc.RegisterDonor(ctx, camp.ID, donated.ID))

	donation, err := svc.CheckIn(ctx, org.ID, camp.ID, donated.ID)
	require.NoError(t, err)

	detail, err := svc.GetCampDetail(ctx, camp.ID)
	require.NoError(t, err)
	assert.Equal(t, org.OrgName, detail.OrganizationName)
	require.Len(t, detail.RegisteredDonors, 2)

	byID := make(map[uint]CampDonorEntry, 2)
	for _, entry := range detail.RegisteredDonors {
		byID[entry.ID] = entry
	}

	assert.Equal(t, models.CampDonorStatusRegistered, byID[registered.ID].Status)
	assert.Nil(t, byID[registered.ID].DonationID)

	assert.Equal(t, models.CampDonorStatusDonated, byID[donated.ID].Status)
	require.NotNil(t, byID[donated.ID].DonationID)
	assert.Equal(t, donation.ID, *byID[donated.ID].DonationID)
}

func TestCampService_CheckIn(t *testing.T) {
	db := newTestDB(t)
	svc := newCampService(db, testConfig())
	ctx := context.Background()

	org := seedOrg(t, db, "blood@cityhospital.org", "LIC-1001")
	camp := seedCamp(t, db, org, "Summer Drive", time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC))
	donor := seedDonor(t, db, "asha@example.com", "O+")

	donation, err := svc.CheckIn(ctx, org.ID, camp.ID, donor.ID)
	require.NoError(t, err)
	assert.Equal(t, "O+", donation.BloodGroup)
	assert.Equal(t, 1, donation.Units)
	assert.True(t, donation.CertificateIssued)

	// At most one donation per (donor, camp)
	_, err = svc.CheckIn(ctx, org.ID, camp.ID, donor.ID)
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)

	var count int64
	require.NoError(t, db.Model(&models.Donation{}).Where("camp_id = ?", camp.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	_, err = svc.CheckIn(ctx, org.ID, 9999, donor.ID)
	assert.ErrorIs(t, err, ErrCampNotFound)

	_, err = svc.CheckIn(ctx, org.ID, camp.ID, 9999)
	assert.ErrorIs(t, err, ErrDonorNotFound)
}

func TestCampService_CheckIn_SnapshotsBloodGroup(t *testing.T) {
	db := newTestDB(t)
	svc := newCampService(db, testConfig())
	ctx := context.Background()

	org := seedOrg(t, db, "blood@cityhospital.org", "LIC-1001")
	camp := seedCamp(t, db, org, "Summer Drive", time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC))
	donor := seedDonor(t, db, "asha@example.com", "O+")

	donation, err := svc.CheckIn(ctx, org.ID, camp.ID, donor.ID)
	require.NoError(t, err)

	// A later profile correction does not rewrite the ledger
	require.NoError(t, db.Model(donor).Update("blood_group", "B+").Error)

	var stored models.Donation
	require.NoError(t, db.First(&stored, donation.ID).Error)
	assert.Equal(t, "O+", stored.BloodGroup)
}

func TestCampService_CheckIn_OwnershipEnforcement(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	cfg.Policy.EnforceCampOwnership = true
	svc := newCampService(db, cfg)
	ctx := context.Background()

	owner := seedOrg(t, db, "owner@cityhospital.org", "LIC-1001")
	other := seedOrg(t, db, "other@ngoblood.org", "LIC-2002")
	camp := seedCamp(t, db, owner, "Summer Drive", time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC))
	donor := seedDonor(t, db, "asha@example.com", "O+")

	_, err := svc.CheckIn(ctx, other.ID, camp.ID, donor.ID)
	assert.ErrorIs(t, err, ErrNotCampOwner)

	_, err = svc.CheckIn(ctx, owner.ID, camp.ID, donor.ID)
	assert.NoError(t, err)
}

func TestCampService_CheckIn_OwnershipPermissiveByDefault(t *testing.T) {
	db := newTestDB(t)
	svc := newCampService(db, testConfig())
	ctx := context.Background()

	owner := seedOrg(t, db, "owner@cityhospital.org", "LIC-1001")
	other := seedOrg(t, db, "other@ngoblood.org", "LIC-2002")
	camp := seedCamp(t, db, owner, "Summer Drive", time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC))
	donor := seedDonor(t, db, "asha@example.com", "O+")

	_, err := svc.CheckIn(ctx, other.ID, camp.ID, donor.ID)
	assert.NoError(t, err)
}
