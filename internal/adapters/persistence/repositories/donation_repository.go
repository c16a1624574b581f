package repositories

import (
	"context"

	"donorly/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// donationRepository implements DonationRepository interface
type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository creates a new donation repository
func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

// Create creates a new donation. The (donor, camp) unique index rejects a
// second receipt for the same pair with gorm.ErrDuplicatedKey.
func (r *donationRepository) Create(ctx context.Context, donation *models.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

// GetByID gets a donation by ID
func (r *donationRepository) GetByID(ctx context.Context, id uint) (*models.Donation, error) {
	var donation models.Donation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&donation).Error
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

// ListByDonor lists a donor's donations, newest first, with camps populated
func (r *donationRepository) ListByDonor(ctx context.Context, donorID uint) ([]*models.Donation, error) {
	var donations []*models.Donation
	err := r.db.WithContext(ctx).
		Preload("Camp").
		Where("donor_id = ?", donorID).
		Order("date DESC").
		Find(&donations).Error
	return donations, err
}

// ListByCamp lists all donations recorded for a camp
func (r *donationRepository) ListByCamp(ctx context.Context, campID uint) ([]*models.Donation, error) {
	var donations []*models.Donation
	err := r.db.WithContext(ctx).Where("camp_id = ?", campID).Find(&donations).Error
	return donations, err
}

// ExistsByDonorAndCamp checks whether a donation exists for the pair
func (r *donationRepository) ExistsByDonorAndCamp(ctx context.Context, donorID, campID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Donation{}).
		Where("donor_id = ? AND camp_id = ?", donorID, campID).
		Count(&count).Error
	return count > 0, err
}

// Update updates a donation
func (r *donationRepository) Update(ctx context.Context, donation *models.Donation) error {
	return r.db.WithContext(ctx).Save(donation).Error
}
