package handlers

import (
	"errors"
	"strings"

	"donorly/internal/adapters/http/middleware"
	"donorly/internal/core/services"
	"donorly/internal/pkg/password"
	"donorly/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles donor authentication and profile endpoints
type AuthHandler struct {
	authService     *services.AuthService
	donationService *services.DonationService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, donationService *services.DonationService) *AuthHandler {
	return &AuthHandler{
		authService:     authService,
		donationService: donationService,
	}
}

// RegisterRequest represents donor registration request body
type RegisterRequest struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	DOB        string `json:"dob"`
	BloodGroup string `json:"blood_group"`
	Password   string `json:"password"`
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest represents a partial profile update request body
type UpdateProfileRequest struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	DOB      *string `json:"dob"`
	Gender   *string `json:"gender"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	Pincode  *string `json:"pincode"`
}

// Register handles donor registration (auto login)
// @Summary Register new donor
// @Description Register a new donor and return an auth token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.FullName) == "" {
		return response.BadRequest(c, "Full name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}
	if !password.Validate(req.Password) {
		return response.BadRequest(c, "Password must be at least 6 characters")
	}

	input := &services.RegisterInput{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		BloodGroup: req.BloodGroup,
		Password:   req.Password,
	}

	if req.DOB != "" {
		dob, err := parseDate(req.DOB)
		if err != nil {
			return response.BadRequest(c, "Invalid date of birth")
		}
		input.DOB = &dob
	}

	result, err := h.authService.Register(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailAlreadyRegistered):
			return response.Conflict(c, "Email already registered")
		default:
			return response.InternalServerError(c, "Failed to register donor")
		}
	}

	return response.Created(c, "Registration successful", fiber.Map{
		"token": result.Token,
		"donor": result.Donor,
	})
}

// Login handles donor login
// @Summary Login donor
// @Description Authenticate a donor and return an auth token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}

	result, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return response.Unauthorized(c, "Invalid email or password")
		default:
			return response.InternalServerError(c, "Failed to login")
		}
	}

	return response.Success(c, "Login successful", fiber.Map{
		"token": result.Token,
		"donor": result.Donor,
	})
}

// Me returns the logged-in donor's profile
// @Summary Get donor profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal := middleware.GetPrincipal(c)

	profile, err := h.authService.GetProfile(c.Context(), principal.ID())
	if err != nil {
		if errors.Is(err, services.ErrDonorNotFound) {
			return response.NotFound(c, "Donor not found")
		}
		return response.InternalServerError(c, "Failed to load profile")
	}

	return response.Success(c, "", profile)
}

// UpdateProfile applies a partial update to the donor-editable fields
// @Summary Update donor profile
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.UpdateProfileInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		Gender:   req.Gender,
		Address:  req.Address,
		City:     req.City,
		Pincode:  req.Pincode,
	}

	if req.DOB != nil {
		dob, err := parseDate(*req.DOB)
		if err != nil {
			return response.BadRequest(c, "Invalid date of birth")
		}
		input.DOB = &dob
	}

	principal := middleware.GetPrincipal(c)

	profile, err := h.authService.UpdateProfile(c.Context(), principal.ID(), input)
	if err != nil {
		if errors.Is(err, services.ErrDonorNotFound) {
			return response.NotFound(c, "Donor not found")
		}
		return response.InternalServerError(c, "Profile update failed")
	}

	return response.Success(c, "Profile updated", profile)
}

// Stats returns derived donation stats for the logged-in donor
// @Summary Get donor stats
// @Description Donation count, lives saved, last donation and next eligible date
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /auth/stats [get]
func (h *AuthHandler) Stats(c *fiber.Ctx) error {
	principal := middleware.GetPrincipal(c)

	stats, err := h.donationService.GetDonorStats(c.Context(), principal.ID())
	if err != nil {
		return response.InternalServerError(c, "Failed to load stats")
	}

	return response.Success(c, "", stats)
}

// Donations returns the logged-in donor's donation history
// @Summary Get donation history
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /auth/donations [get]
func (h *AuthHandler) Donations(c *fiber.Ctx) error {
	principal := middleware.GetPrincipal(c)

	donations, err := h.donationService.GetDonorDonations(c.Context(), principal.ID())
	if err != nil {
		return response.InternalServerError(c, "Failed to load donations")
	}

	return response.Success(c, "", donations)
}
