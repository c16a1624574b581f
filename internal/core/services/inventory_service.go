package services

import (
	"context"
	"errors"

	"donorly/internal/adapters/persistence/models"
	"donorly/internal/adapters/persistence/repositories"
	"donorly/internal/config"

	"gorm.io/gorm"
)

// Inventory errors
var (
	ErrInventoryNotFound = errors.New("inventory not found")
)

// InventoryService tracks per-organization blood stock
type InventoryService struct {
	inventoryRepo repositories.InventoryRepository
	cfg           *config.Config
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inventoryRepo repositories.InventoryRepository, cfg *config.Config) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		cfg:           cfg,
	}
}

// GetOrCreate returns the organization's inventory, creating it on first
// read with every canonical blood group at zero units. Not a pure read.
func (s *InventoryService) GetOrCreate(ctx context.Context, orgID uint) (*models.Inventory, error) {
	inventory, err := s.inventoryRepo.GetByOrganization(ctx, orgID)
	if err == nil {
		return inventory, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	inventory = &models.Inventory{OrganizationID: orgID}
	for _, bloodGroup := range models.BloodGroups {
		inventory.Stock = append(inventory.Stock, models.InventoryStock{
			BloodGroup: bloodGroup,
			Units:      0,
			Status:     models.StockStatusCritical,
		})
	}

	if err := s.inventoryRepo.Create(ctx, inventory); err != nil {
		// Lost the creation race; the other writer's record wins
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.inventoryRepo.GetByOrganization(ctx, orgID)
		}
		return nil, err
	}

	return inventory, nil
}

// SetQuantity sets a blood group's stock to an absolute unit count and
// recomputes its status tier. An unknown blood group leaves the stock
// unchanged but still persists the inventory record.
func (s *InventoryService) SetQuantity(ctx context.Context, orgID uint, bloodGroup string, units int) (*models.Inventory, error) {
	inventory, err := s.inventoryRepo.GetByOrganization(ctx, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInventoryNotFound
		}
		return nil, err
	}

	for i := range inventory.Stock {
		if inventory.Stock[i].BloodGroup == bloodGroup {
			inventory.Stock[i].Units = units
			inventory.Stock[i].Status = s.deriveStatus(units)
			if err := s.inventoryRepo.UpdateStock(ctx, &inventory.Stock[i]); err != nil {
				return nil, err
			}
			return inventory, nil
		}
	}

	if err := s.inventoryRepo.Save(ctx, inventory); err != nil {
		return nil, err
	}
	return inventory, nil
}

// deriveStatus maps a unit count to its status tier. "High" is never
// derived here; it is reachable only through data written elsewhere.
func (s *InventoryService) deriveStatus(units int) string {
	switch {
	case units < s.cfg.Policy.InventoryCriticalBelow:
		return models.StockStatusCritical
	case units < s.cfg.Policy.InventoryLowBelow:
		return models.StockStatusLow
	default:
		return models.StockStatusStable
	}
}
