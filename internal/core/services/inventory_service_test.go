package services

import (
	"context"
	"testing"

	"donorly/internal/adapters/persistence/models"
	"donorly/internal/adapters/persistence/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryService_GetOrCreate_SeedsAllGroups(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(repositories.NewInventoryRepository(db), testConfig())
	ctx := context.Background()

	org := seedOrg(t, db, "blood@cityhospital.org", "LIC-1001")

	inventory, err := svc.GetOrCreate(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, org.ID, inventory.OrganizationID)
	require.Len(t, inventory.Stock, len(models.BloodGroups))

	for _, stock := range inventory.Stock {
		assert.Zero(t, stock.Units)
		assert.Equal(t, models.StockStatusCritical, stock.Status)
	}

	// Second read returns the same record, not a new one
	again, err := svc.GetOrCreate(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, inventory.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&models.Inventory{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestInventoryService_SetQuantity_StatusTiers(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(repositories.NewInventoryRepository(db), testConfig())
	ctx := context.Background()

	org := seedOrg(t, db, "blood@cityhospital.org", "LIC-1001")
	_, err := svc.GetOrCreate(ctx, org.ID)
	require.NoError(t, err)

	cases := []struct {
		units  int
		status string
	}{
		{0, models.StockStatusCritical},
		{4, models.StockStatusCritical},
		{5, models.StockStatusLow},
		{14, models.StockStatusLow},
		{15, models.StockStatusStable},
		{1000, models.StockStatusStable},
	}

	for _, tc := range cases {
		inventory, err := svc.SetQuantity(ctx, org.ID, "O+", tc.units)
		require.NoError(t, err)

		found := false
		for _, stock := range inventory.Stock {
			if stock.BloodGroup == "O+" {
				found = true
				assert.Equal(t, tc.units, stock.Units, "units=%d", tc.units)
				assert.Equal(t, tc.status, stock.Status, "units=%d", tc.units)
			}
		}
		require.True(t, found)
	}
}

func TestInventoryService_SetQuantity_UnknownGroupLeavesStockUnchanged(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(repositories.NewInventoryRepository(db), testConfig())
	ctx := context.Background()

	org := seedOrg(t, db, "blood@cityhospital.org", "LIC-1001")
	_, err := svc.GetOrCreate(ctx, org.ID)
	require.NoError(t, err)

	_, err = svc.SetQuantity(ctx, org.ID, "XZ", 50)
	require.NoError(t, err)

	inventory, err := svc.GetOrCreate(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, inventory.Stock, len(models.BloodGroups))
	for _, stock := range inventory.Stock {
		assert.Zero(t, stock.Units)
	}
}

func TestInventoryService_SetQuantity_NoInventory(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(repositories.NewInventoryRepository(db), testConfig())
	ctx := context.Background()

	_, err := svc.SetQuantity(ctx, 9999, "O+", 10)
	assert.ErrorIs(t, err, ErrInventoryNotFound)
}
