package repositories

import (
	"context"
	"time"

	"donorly/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// campRepository implements CampRepository interface
type campRepository struct {
	db *gorm.DB
}

// NewCampRepository creates a new camp repository
func NewCampRepository(db *gorm.DB) CampRepository {
	return &campRepository{db: db}
}

// Create creates a new camp
func (r *campRepository) Create(ctx context.Context, camp *models.Camp) error {
	return r.db.WithContext(ctx).Create(camp).Error
}

// GetByID gets a camp by ID
func (r *campRepository) GetByID(ctx context.Context, id uint) (*models.Camp, error) {
	var camp models.Camp
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&camp).Error
	if err != nil {
		return nil, err
	}
	return &camp, nil
}

// GetDetail gets a camp with registrations (donors included) and organization
func (r *campRepository) GetDetail(ctx context.Context, id uint) (*models.Camp, error) {
	var camp models.Camp
	err := r.db.WithContext(ctx).
		Preload("Registrations.Donor").
		Preload("Organization").
		Where("id = ?", id).
		First(&camp).Error
	if err != nil {
		return nil, err
	}
	return &camp, nil
}

// List lists all camps ordered by ascending date
func (r *campRepository) List(ctx context.Context) ([]*models.Camp, error) {
	var camps []*models.Camp
	err := r.db.WithContext(ctx).Order("date ASC").Find(&camps).Error
	return camps, err
}

// ListByDateRange lists camps whose date falls within [from, to)
func (r *campRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*models.Camp, error) {
	var camps []*models.Camp
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC").
		Find(&camps).Error
	return camps, err
}

// AddRegistration appends a donor to a camp's registration set. The
// composite unique index rejects duplicates with gorm.ErrDuplicatedKey.
func (r *campRepository) AddRegistration(ctx context.Context, reg *models.CampRegistration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

// IsRegistered checks registration set membership
func (r *campRepository) IsRegistered(ctx context.Context, campID, donorID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CampRegistration{}).
		Where("camp_id = ? AND donor_id = ?", campID, donorID).
		Count(&count).Error
	return count > 0, err
}
