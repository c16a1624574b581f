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

// Camp errors
var (
	ErrCampNotFound      = errors.New("camp not found")
	ErrAlreadyRegistered = errors.New("already registered for this camp")
	ErrAlreadyCheckedIn  = errors.New("donor already checked in for this camp")
	ErrNotCampOwner      = errors.New("camp belongs to another organization")
)

// CampService handles camp lifecycle business logic
type CampService struct {
	campRepo     repositories.CampRepository
	donorRepo    repositories.DonorRepository
	donationRepo repositories.DonationRepository
	cfg          *config.Config
}

// NewCampService creates a new camp service
func NewCampService(
	campRepo repositories.CampRepository,
	donorRepo repositories.DonorRepository,
	donationRepo repositories.DonationRepository,
	cfg *config.Config,
) *CampService {
	return &CampService{
		campRepo:     campRepo,
		donorRepo:    donorRepo,
		donationRepo: donationRepo,
		cfg:          cfg,
	}
}

// CreateCampInput represents camp creation input
type CreateCampInput struct {
	CampName      string    `json:"camp_name"`
	Location      string    `json:"location"`
	Date          time.Time `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	TargetDonors  *int      `json:"target_donors"`
	Description   string    `json:"description"`
	OrganizerName string    `json:"organizer_name"`
}

// CampDonorEntry projects one registered donor with their derived status
type CampDonorEntry struct {
	ID         uint   `json:"id"`
	FullName   string `json:"full_name"`
	BloodGroup string `json:"blood_group"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Status     string `json:"status"`
	DonationID *uint  `json:"donation_id,omitempty"`
}

// CampDetail is the computed read-time view of a camp joined against the
// donation ledger. It is never persisted.
type CampDetail struct {
	Camp             *models.Camp     `json:"camp"`
	OrganizationName string           `json:"organization_name,omitempty"`
	RegisteredDonors []CampDonorEntry `json:"registered_donors"`
}

// CreateCamp creates a camp attributed to the owning organization.
// Duplicate names/dates are allowed.
func (s *CampService) CreateCamp(ctx context.Context, org *models.Organization, input *CreateCampInput) (*models.Camp, error) {
	organizerName := input.OrganizerName
	if organizerName == "" {
		organizerName = org.OrgName
	}

	camp := &models.Camp{
		CampName:       input.CampName,
		Location:       input.Location,
		Date:           input.Date,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		TargetDonors:   input.TargetDonors,
		Description:    input.Description,
		OrganizerName:  organizerName,
		OrganizationID: &org.ID,
	}

	if err := s.campRepo.Create(ctx, camp); err != nil {
		return nil, err
	}

	return camp, nil
}

// ListCamps returns all camps ordered by ascending date
func (s *CampService) ListCamps(ctx context.Context) ([]*models.Camp, error) {
	return s.campRepo.List(ctx)
}

// RegisterDonor appends a donor to a camp's registration set. Registering
// twice fails; the unique index backs the membership check under
// concurrency.
func (s *CampService) RegisterDonor(ctx context.Context, campID, donorID uint) error {
	if _, err := s.campRepo.GetByID(ctx, campID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCampNotFound
		}
		return err
	}

	registered, err := s.campRepo.IsRegistered(ctx, campID, donorID)
	if err != nil {
		return err
	}
	if registered {
		return ErrAlreadyRegistered
	}

	reg := &models.CampRegistration{CampID: campID, DonorID: donorID}
	if err := s.campRepo.AddRegistration(ctx, reg); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyRegistered
		}
		return err
	}

	return nil
}

// GetCampDetail dereferences the registration set into donor projections
// and derives each donor's status from the camp's donation ledger: a donor
// with a donation receipt is "Donated" (with the receipt id attached for
// certificate links), otherwise "Registered".
func (s *CampService) GetCampDetail(ctx context.Context, campID uint) (*CampDetail, error) {
	camp, err := s.campRepo.GetDetail(ctx, campID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampNotFound
		}
		return nil, err
	}

	donations, err := s.donationRepo.ListByCamp(ctx, campID)
	if err != nil {
		return nil, err
	}

	donationByDonor := make(map[uint]uint, len(donations))
	for _, d := range donations {
		donationByDonor[d.DonorID] = d.ID
	}

	entries := make([]CampDonorEntry, 0, len(camp.Registrations))
	for _, reg := range camp.Registrations {
		if reg.Donor == nil {
			continue
		}
		entry := CampDonorEntry{
			ID:         reg.Donor.ID,
			FullName:   reg.Donor.FullName,
			BloodGroup: reg.Donor.BloodGroup,
			Phone:      reg.Donor.Phone,
			Email:      reg.Donor.Email,
			Status:     models.CampDonorStatusRegistered,
		}
		if donationID, ok := donationByDonor[reg.Donor.ID]; ok {
			entry.Status = models.CampDonorStatusDonated
			id := donationID
			entry.DonationID = &id
		}
		entries = append(entries, entry)
	}

	detail := &CampDetail{
		Camp:             camp,
		RegisteredDonors: entries,
	}
	if camp.Organization != nil {
		detail.OrganizationName = camp.Organization.OrgName
	}

	return detail, nil
}

// CheckIn records a donation for a registered donor, snapshotting the
// donor's current blood group. At most one donation exists per
// (donor, camp) pair.
func (s *CampService) CheckIn(ctx context.Context, orgID, campID, donorID uint) (*models.Donation, error) {
	camp, err := s.campRepo.GetByID(ctx, campID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampNotFound
		}
		return nil, err
	}

	if s.cfg.Policy.EnforceCampOwnership {
		if camp.OrganizationID == nil || *camp.OrganizationID != orgID {
			return nil, ErrNotCampOwner
		}
	}

	donor, err := s.donorRepo.GetByID(ctx, donorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonorNotFound
		}
		return nil, err
	}

	exists, err := s.donationRepo.ExistsByDonorAndCamp(ctx, donorID, campID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyCheckedIn
	}

	donation := &models.Donation{
		DonorID:           donor.ID,
		CampID:            camp.ID,
		BloodGroup:        donor.BloodGroup,
		Units:             1,
		Date:              time.Now(),
		CertificateIssued: true,
	}

	if err := s.donationRepo.Create(ctx, donation); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, err
	}

	return donation, nil
}
