package services

import (
	"context"
	"errors"

	"donorly/internal/adapters/persistence/models"
	"donorly/internal/adapters/persistence/repositories"
	"donorly/internal/config"
	"donorly/internal/pkg/jwt"

	"gorm.io/gorm"
)

// Identity errors
var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenExpired      = errors.New("token expired")
	ErrPrincipalNotFound = errors.New("principal not found")
)

// PrincipalKind discriminates the two principal variants
type PrincipalKind string

const (
	PrincipalKindDonor        PrincipalKind = "donor"
	PrincipalKindOrganization PrincipalKind = "organization"
)

// Principal is the resolved identity behind a bearer token: either a donor
// or an organization, never both.
type Principal struct {
	Kind         PrincipalKind
	Donor        *models.Donor
	Organization *models.Organization
}

// ID returns the principal's store identifier
func (p *Principal) ID() uint {
	if p.Kind == PrincipalKindDonor {
		return p.Donor.ID
	}
	return p.Organization.ID
}

// IsDonor reports whether the principal is a donor
func (p *Principal) IsDonor() bool {
	return p.Kind == PrincipalKindDonor
}

// IsOrganization reports whether the principal is an organization
func (p *Principal) IsOrganization() bool {
	return p.Kind == PrincipalKindOrganization
}

// IdentityService resolves bearer tokens to principals
type IdentityService struct {
	donorRepo repositories.DonorRepository
	orgRepo   repositories.OrganizationRepository
	cfg       *config.Config
}

// NewIdentityService creates a new identity service
func NewIdentityService(
	donorRepo repositories.DonorRepository,
	orgRepo repositories.OrganizationRepository,
	cfg *config.Config,
) *IdentityService {
	return &IdentityService{
		donorRepo: donorRepo,
		orgRepo:   orgRepo,
		cfg:       cfg,
	}
}

// ResolvePrincipal verifies the token, then disambiguates the subject id by
// store membership. Donor and organization tokens share one claim shape and
// signing secret, so the kind cannot be read off the token; the donor store
// is probed first, and that ordering is the tie-break if an id ever exists
// in both stores.
func (s *IdentityService) ResolvePrincipal(ctx context.Context, token string) (*Principal, error) {
	claims, err := jwt.ValidateToken(token, s.cfg.JWT.Secret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	donor, err := s.donorRepo.GetByID(ctx, claims.SubjectID)
	if err == nil {
		return &Principal{Kind: PrincipalKindDonor, Donor: donor}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	org, err := s.orgRepo.GetByID(ctx, claims.SubjectID)
	if err == nil {
		return &Principal{Kind: PrincipalKindOrganization, Organization: org}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, ErrPrincipalNotFound
}
