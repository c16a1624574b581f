package repositories

import (
	"context"

	"donorly/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// inventoryRepository implements InventoryRepository interface
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

// Create creates a new inventory with its stock entries
func (r *inventoryRepository) Create(ctx context.Context, inventory *models.Inventory) error {
	return r.db.WithContext(ctx).Create(inventory).Error
}

// GetByOrganization gets an organization's inventory with stock loaded
func (r *inventoryRepository) GetByOrganization(ctx context.Context, orgID uint) (*models.Inventory, error) {
	var inventory models.Inventory
	err := r.db.WithContext(ctx).
		Preload("Stock").
		Where("organization_id = ?", orgID).
		First(&inventory).Error
	if err != nil {
		return nil, err
	}
	return &inventory, nil
}

// UpdateStock updates a single stock entry
func (r *inventoryRepository) UpdateStock(ctx context.Context, stock *models.InventoryStock) error {
	return r.db.WithContext(ctx).Save(stock).Error
}

// Save persists the inventory record as-is
func (r *inventoryRepository) Save(ctx context.Context, inventory *models.Inventory) error {
	return r.db.WithContext(ctx).Omit("Stock").Save(inventory).Error
}
