package services

import (
	"context"
	"errors"
	"strings"

	"donorly/internal/adapters/persistence/models"
	"donorly/internal/adapters/persistence/repositories"
	"donorly/internal/config"
	"donorly/internal/pkg/jwt"
	"donorly/internal/pkg/password"

	"gorm.io/gorm"
)

// Organization auth errors
var (
	ErrOrgAlreadyRegistered     = errors.New("organization already registered")
	ErrLicenseAlreadyRegistered = errors.New("license number already registered")
)

// OrgService handles organization registration and login
type OrgService struct {
	orgRepo repositories.OrganizationRepository
	cfg     *config.Config
}

// NewOrgService creates a new organization service
func NewOrgService(orgRepo repositories.OrganizationRepository, cfg *config.Config) *OrgService {
	return &OrgService{
		orgRepo: orgRepo,
		cfg:     cfg,
	}
}

// RegisterOrgInput represents organization registration input
type RegisterOrgInput struct {
	OrgName       string `json:"org_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	OrgType       string `json:"org_type"`
	LicenseNumber string `json:"license_number"`
	Address       string `json:"address"`
	Password      string `json:"password"`
}

// OrgAuthResponse represents organization authentication response
type OrgAuthResponse struct {
	Organization *models.OrganizationResponse `json:"organization"`
	Token        string                       `json:"token"`
}

// Register registers a new organization and issues a token
func (s *OrgService) Register(ctx context.Context, input *RegisterOrgInput) (*OrgAuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := s.orgRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrOrgAlreadyRegistered
	}

	exists, err = s.orgRepo.ExistsByLicenseNumber(ctx, input.LicenseNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrLicenseAlreadyRegistered
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	org := &models.Organization{
		OrgName:       strings.TrimSpace(input.OrgName),
		Email:         email,
		Phone:         input.Phone,
		OrgType:       input.OrgType,
		LicenseNumber: strings.TrimSpace(input.LicenseNumber),
		Address:       input.Address,
		Password:      hashedPassword,
	}

	if err := s.orgRepo.Create(ctx, org); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrOrgAlreadyRegistered
		}
		return nil, err
	}

	token, err := jwt.GenerateToken(org.ID, s.cfg.JWT.Secret, s.cfg.JWT.OrgTokenDays)
	if err != nil {
		return nil, err
	}

	return &OrgAuthResponse{Organization: org.ToResponse(), Token: token}, nil
}

// Login authenticates an organization and issues a token
func (s *OrgService) Login(ctx context.Context, email, plaintext string) (*OrgAuthResponse, error) {
	org, err := s.orgRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(plaintext, org.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(org.ID, s.cfg.JWT.Secret, s.cfg.JWT.OrgTokenDays)
	if err != nil {
		return nil, err
	}

	return &OrgAuthResponse{Organization: org.ToResponse(), Token: token}, nil
}
