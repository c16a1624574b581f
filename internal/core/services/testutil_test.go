package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"donorly/internal/adapters/persistence/models"
	"donorly/internal/config"
	"donorly/internal/pkg/password"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a per-test in-memory database with the full schema.
// TranslateError matches production so unique-index violations surface as
// gorm.ErrDuplicatedKey.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, models.AutoMigrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:         "test-secret",
			DonorTokenDays: 7,
			OrgTokenDays:   30,
		},
		Policy: config.PolicyConfig{
			LivesSavedPerDonation:  3,
			EligibilityWindowDays:  90,
			InventoryCriticalBelow: 5,
			InventoryLowBelow:      15,
		},
	}
}

func seedDonor(t *testing.T, db *gorm.DB, email, bloodGroup string) *models.Donor {
	t.Helper()

	hash, err := password.Hash("secret123")
	require.NoError(t, err)

	donor := &models.Donor{
		FullName:     "Test Donor",
		Email:        email,
		BloodGroup:   bloodGroup,
		Password:     hash,
		AuthProvider: models.AuthProviderLocal,
	}
	require.NoError(t, db.Create(donor).Error)
	return donor
}

func seedOrg(t *testing.T, db *gorm.DB, email, license string) *models.Organization {
	t.Helper()

	hash, err := password.Hash("secret123")
	require.NoError(t, err)

	org := &models.Organization{
		OrgName:       "City Hospital",
		Email:         email,
		Phone:         "9999999999",
		OrgType:       "Hospital",
		LicenseNumber: license,
		Address:       "12 Main St",
		Password:      hash,
		Role:          "organization",
	}
	require.NoError(t, db.Create(org).Error)
	return org
}

func seedCamp(t *testing.T, db *gorm.DB, org *models.Organization, name string, date time.Time) *models.Camp {
	t.Helper()

	camp := &models.Camp{
		CampName:  name,
		Location:  "Community Hall",
		Date:      date,
		StartTime: "09:00",
		EndTime:   "17:00",
	}
	if org != nil {
		camp.OrganizerName = org.OrgName
		camp.OrganizationID = &org.ID
	}
	require.NoError(t, db.Create(camp).Error)
	return camp
}
