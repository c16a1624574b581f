package repositories

import (
	"context"
	"time"

	"donorly/internal/adapters/persistence/models"
)

// DonorRepository defines donor repository interface
type DonorRepository interface {
	Create(ctx context.Context, donor *models.Donor) error
	GetByID(ctx context.Context, id uint) (*models.Donor, error)
	GetByEmail(ctx context.Context, email string) (*models.Donor, error)
	Update(ctx context.Context, donor *models.Donor) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// OrganizationRepository defines organization repository interface
type OrganizationRepository interface {
	Create(ctx context.Context, org *models.Organization) error
	GetByID(ctx context.Context, id uint) (*models.Organization, error)
	GetByEmail(ctx context.Context, email string) (*models.Organization, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByLicenseNumber(ctx context.Context, licenseNumber string) (bool, error)
}

// CampRepository defines camp repository interface
type CampRepository interface {
	Create(ctx context.Context, camp *models.Camp) error
	GetByID(ctx context.Context, id uint) (*models.Camp, error)
	// GetDetail loads a camp with its registration set (donor profiles
	// included) and owning organization
	GetDetail(ctx context.Context, id uint) (*models.Camp, error)
	// List returns all camps ordered by ascending date
	List(ctx context.Context) ([]*models.Camp, error)
	// ListByDateRange returns camps whose date falls within [from, to)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*models.Camp, error)
	AddRegistration(ctx context.Context, reg *models.CampRegistration) error
	IsRegistered(ctx context.Context, campID, donorID uint) (bool, error)
}

// DonationRepository defines donation ledger repository interface
type DonationRepository interface {
	Create(ctx context.Context, donation *models.Donation) error
	GetByID(ctx context.Context, id uint) (*models.Donation, error)
	// ListByDonor returns a donor's donations ordered by descending date
	// with camps populated
	ListByDonor(ctx context.Context, donorID uint) ([]*models.Donation, error)
	ListByCamp(ctx context.Context, campID uint) ([]*models.Donation, error)
	ExistsByDonorAndCamp(ctx context.Context, donorID, campID uint) (bool, error)
	Update(ctx context.Context, donation *models.Donation) error
}

// InventoryRepository defines inventory repository interface
type InventoryRepository interface {
	Create(ctx context.Context, inventory *models.Inventory) error
	GetByOrganization(ctx context.Context, orgID uint) (*models.Inventory, error)
	UpdateStock(ctx context.Context, stock *models.InventoryStock) error
	// Save persists the inventory document as-is (bumps updated_at)
	Save(ctx context.Context, inventory *models.Inventory) error
}

// NotificationRepository defines notification repository interface
type NotificationRepository interface {
	CreateBatch(ctx context.Context, notifications []*models.Notification) error
	GetByID(ctx context.Context, id uint) (*models.Notification, error)
	// ListByRecipient returns a donor's notifications, newest first
	ListByRecipient(ctx context.Context, donorID uint) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id uint) (int64, error)
}
