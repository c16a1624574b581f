package services

import (
	"context"
	"errors"
	"time"

	"donorly/internal/adapters/persistence/models"
	"donorly/internal/adapters/persistence/repositories"
	"donorly/internal/config"

	"gorm.io/gorm"
)

// Donation errors
var (
	ErrDonationNotFound      = errors.New("donation not found")
	ErrReportAlreadyAttached = errors.New("medical report already attached")
)

// RecentActivityLimit caps the recent donations shown on donor stats
const RecentActivityLimit = 3

// DonationService handles the donation ledger: derived donor stats,
// donation history and report attachment
type DonationService struct {
	donationRepo repositories.DonationRepository
	cfg          *config.Config
}

// NewDonationService creates a new donation service
func NewDonationService(donationRepo repositories.DonationRepository, cfg *config.Config) *DonationService {
	return &DonationService{
		donationRepo: donationRepo,
		cfg:          cfg,
	}
}

// RecentDonation projects one ledger entry for the stats view
type RecentDonation struct {
	ID       uint      `json:"id"`
	CampName string    `json:"camp_name"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`
}

// DonorStats is computed from the ledger on every read; nothing here is
// cached or persisted.
type DonorStats struct {
	TotalDonations   int              `json:"total_donations"`
	LivesSaved       int              `json:"lives_saved"`
	LastDonationDate *time.Time       `json:"last_donation_date"`
	NextEligibleDate time.Time        `json:"next_eligible_date"`
	RecentActivity   []RecentDonation `json:"recent_activity"`
}

// GetDonorStats derives donation stats for a donor. A donor with no
// donations is immediately eligible; otherwise eligibility opens one
// policy window after the most recent donation.
func (s *DonationService) GetDonorStats(ctx context.Context, donorID uint) (*DonorStats, error) {
	donations, err := s.donationRepo.ListByDonor(ctx, donorID)
	if err != nil {
		return nil, err
	}

	stats := &DonorStats{
		TotalDonations:   len(donations),
		LivesSaved:       len(donations) * s.cfg.Policy.LivesSavedPerDonation,
		NextEligibleDate: time.Now(),
		RecentActivity:   []RecentDonation{},
	}

	if len(donations) > 0 {
		last := donations[0].Date
		stats.LastDonationDate = &last
		stats.NextEligibleDate = last.AddDate(0, 0, s.cfg.Policy.EligibilityWindowDays)
	}

	for i, d := range donations {
		if i == RecentActivityLimit {
			break
		}
		campName := models.UnknownCampName
		if d.Camp != nil {
			campName = d.Camp.CampName
		}
		stats.RecentActivity = append(stats.RecentActivity, RecentDonation{
			ID:       d.ID,
			CampName: campName,
			Date:     d.Date,
			Status:   "Completed",
		})
	}

	return stats, nil
}

// GetDonorDonations returns a donor's full donation history with camps
// populated
func (s *DonationService) GetDonorDonations(ctx context.Context, donorID uint) ([]*models.DonationResponse, error) {
	donations, err := s.donationRepo.ListByDonor(ctx, donorID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.DonationResponse, 0, len(donations))
	for _, d := range donations {
		responses = append(responses, d.ToResponse())
	}
	return responses, nil
}

// AttachReport records a medical report path on a donation. The attachment
// fields are settable exactly once.
func (s *DonationService) AttachReport(ctx context.Context, donationID uint, path string) (*models.Donation, error) {
	donation, err := s.donationRepo.GetByID(ctx, donationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonationNotFound
		}
		return nil, err
	}

	if donation.MedicalReport != nil {
		return nil, ErrReportAlreadyAttached
	}

	now := time.Now()
	donation.MedicalReport = &path
	donation.ReportUploadedAt = &now

	if err := s.donationRepo.Update(ctx, donation); err != nil {
		return nil, err
	}

	return donation, nil
}
