package handlers

import (
	"errors"
	"strings"

	"donorly/internal/core/services"
	"donorly/internal/pkg/password"
	"donorly/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// OrgHandler handles organization authentication endpoints
type OrgHandler struct {
	orgService *services.OrgService
}

// NewOrgHandler creates a new organization handler
func NewOrgHandler(orgService *services.OrgService) *OrgHandler {
	return &OrgHandler{orgService: orgService}
}

// RegisterOrgRequest represents organization registration request body
type RegisterOrgRequest struct {
	OrgName       string `json:"org_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	OrgType       string `json:"org_type"`
	LicenseNumber string `json:"license_number"`
	Address       string `json:"address"`
	Password      string `json:"password"`
}

// Register handles organization registration
// @Summary Register new organization
// @Description Register a hospital or NGO partner and return an auth token
// @Tags Organization
// @Accept json
// @Produce json
// @Param body body RegisterOrgRequest true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /org/register [post]
func (h *OrgHandler) Register(c *fiber.Ctx) error {
	var req RegisterOrgRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.OrgName) == "" {
		return response.BadRequest(c, "Organization name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return response.BadRequest(c, "Email is required")
	}
	if strings.TrimSpace(req.Phone) == "" {
		return response.BadRequest(c, "Phone is required")
	}
	if strings.TrimSpace(req.OrgType) == "" {
		return response.BadRequest(c, "Organization type is required")
	}
	if strings.TrimSpace(req.LicenseNumber) == "" {
		return response.BadRequest(c, "License number is required")
	}
	if strings.TrimSpace(req.Address) == "" {
		return response.BadRequest(c, "Address is required")
	}
	if !password.Validate(req.Password) {
		return response.BadRequest(c, "Password must be at least 6 characters")
	}

	input := &services.RegisterOrgInput{
		OrgName:       req.OrgName,
		Email:         req.Email,
		Phone:         req.Phone,
		OrgType:       req.OrgType,
		LicenseNumber: req.LicenseNumber,
		Address:       req.Address,
		Password:      req.Password,
	}

	result, err := h.orgService.Register(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrgAlreadyRegistered):
			return response.Conflict(c, "Organization already registered")
		case errors.Is(err, services.ErrLicenseAlreadyRegistered):
			return response.Conflict(c, "License number already registered")
		default:
			return response.InternalServerError(c, "Failed to register organization")
		}
	}

	return response.Created(c, "Organization registered", fiber.Map{
		"token":        result.Token,
		"organization": result.Organization,
	})
}

// Login handles organization login
// @Summary Login organization
// @Tags Organization
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /org/auth/login [post]
func (h *OrgHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}

	result, err := h.orgService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return response.Unauthorized(c, "Invalid email or password")
		default:
			return response.InternalServerError(c, "Failed to login")
		}
	}

	return response.Success(c, "Login successful", fiber.Map{
		"token":        result.Token,
		"organization": result.Organization,
	})
}
