package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"donorly/internal/adapters/persistence/models"
	"donorly/internal/adapters/persistence/repositories"
	"donorly/internal/config"
	"donorly/internal/pkg/jwt"
	"donorly/internal/pkg/password"

	"gorm.io/gorm"
)

// Auth errors
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrDonorNotFound          = errors.New("donor not found")
)

// AuthService handles donor authentication and profile business logic
type AuthService struct {
	donorRepo repositories.DonorRepository
	cfg       *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(donorRepo repositories.DonorRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		donorRepo: donorRepo,
		cfg:       cfg,
	}
}

// RegisterInput represents donor registration input
type RegisterInput struct {
	FullName   string     `json:"full_name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	DOB        *time.Time `json:"dob"`
	BloodGroup string     `json:"blood_group"`
	Password   string     `json:"password"`
}

// UpdateProfileInput represents a partial profile update. Nil fields are
// left untouched. Only the donor-editable subset is present; email, blood
// group and credentials are not donor-editable.
type UpdateProfileInput struct {
	FullName *string    `json:"full_name"`
	Phone    *string    `json:"phone"`
	DOB      *time.Time `json:"dob"`
	Gender   *string    `json:"gender"`
	Address  *string    `json:"address"`
	City     *string    `json:"city"`
	Pincode  *string    `json:"pincode"`
}

// AuthResponse represents donor authentication response
type AuthResponse struct {
	Donor *models.DonorResponse `json:"donor"`
	Token string                `json:"token"`
}

// Register registers a new donor and logs them in
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := s.donorRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyRegistered
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	donor := &models.Donor{
		FullName:     strings.TrimSpace(input.FullName),
		Email:        email,
		Phone:        input.Phone,
		DOB:          input.DOB,
		BloodGroup:   input.BloodGroup,
		Password:     hashedPassword,
		AuthProvider: models.AuthProviderLocal,
	}

	if err := s.donorRepo.Create(ctx, donor); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, err
	}

	token, err := jwt.GenerateToken(donor.ID, s.cfg.JWT.Secret, s.cfg.JWT.DonorTokenDays)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Donor: donor.ToResponse(), Token: token}, nil
}

// Login authenticates a donor and issues a token
func (s *AuthService) Login(ctx context.Context, email, plaintext string) (*AuthResponse, error) {
	donor, err := s.donorRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// External-provider donors carry no local credential
	if donor.Password == "" || !password.Verify(plaintext, donor.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(donor.ID, s.cfg.JWT.Secret, s.cfg.JWT.DonorTokenDays)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Donor: donor.ToResponse(), Token: token}, nil
}

// GetProfile returns a donor's profile sans credential
func (s *AuthService) GetProfile(ctx context.Context, donorID uint) (*models.DonorResponse, error) {
	donor, err := s.donorRepo.GetByID(ctx, donorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonorNotFound
		}
		return nil, err
	}
	return donor.ToResponse(), nil
}

// UpdateProfile applies a partial update to the donor-editable fields
func (s *AuthService) UpdateProfile(ctx context.Context, donorID uint, input *UpdateProfileInput) (*models.DonorResponse, error) {
	donor, err := s.donorRepo.GetByID(ctx, donorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonorNotFound
		}
		return nil, err
	}

	if input.FullName != nil {
		donor.FullName = *input.FullName
	}
	if input.Phone != nil {
		donor.Phone = *input.Phone
	}
	if input.DOB != nil {
		donor.DOB = input.DOB
	}
	if input.Gender != nil {
		donor.Gender = *input.Gender
	}
	if input.Address != nil {
		donor.Address = *input.Address
	}
	if input.City != nil {
		donor.City = *input.City
	}
	if input.Pincode != nil {
		donor.Pincode = *input.Pincode
	}

	if err := s.donorRepo.Update(ctx, donor); err != nil {
		return nil, err
	}

	return donor.ToResponse(), nil
}
