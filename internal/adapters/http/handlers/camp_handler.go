package handlers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"donorly/internal/adapters/http/middleware"
	"donorly/internal/config"
	"donorly/internal/core/services"
	"donorly/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// reportFileTypes are the accepted medical report extensions
var reportFileTypes = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// CampHandler handles camp lifecycle endpoints
type CampHandler struct {
	campService        *services.CampService
	donationService    *services.DonationService
	certificateService *services.CertificateService
	cfg                *config.Config
}

// NewCampHandler creates a new camp handler
func NewCampHandler(
	campService *services.CampService,
	donationService *services.DonationService,
	certificateService *services.CertificateService,
	cfg *config.Config,
) *CampHandler {
	return &CampHandler{
		campService:        campService,
		donationService:    donationService,
		certificateService: certificateService,
		cfg:                cfg,
	}
}

// CreateCampRequest represents camp creation request body
type CreateCampRequest struct {
	CampName      string `json:"camp_name"`
	Location      string `json:"location"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	TargetDonors  *int   `json:"target_donors"`
	Description   string `json:"description"`
	OrganizerName string `json:"organizer_name"`
}

// CheckInRequest represents check-in request body
type CheckInRequest struct {
	DonorID uint `json:"donor_id"`
}

// Create handles camp creation
// @Summary Create camp
// @Description Create a blood donation camp owned by the calling organization
// @Tags Camps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateCampRequest true "Camp data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /camps [post]
func (h *CampHandler) Create(c *fiber.Ctx) error {
	var req CreateCampRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.CampName) == "" {
		return response.BadRequest(c, "Camp name is required")
	}
	if strings.TrimSpace(req.Location) == "" {
		return response.BadRequest(c, "Location is required")
	}
	if req.Date == "" {
		return response.BadRequest(c, "Date is required")
	}
	if req.StartTime == "" || req.EndTime == "" {
		return response.BadRequest(c, "Start and end time are required")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return response.BadRequest(c, "Invalid date")
	}

	principal := middleware.GetPrincipal(c)

	input := &services.CreateCampInput{
		CampName:      req.CampName,
		Location:      req.Location,
		Date:          date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		TargetDonors:  req.TargetDonors,
		Description:   req.Description,
		OrganizerName: req.OrganizerName,
	}

	camp, err := h.campService.CreateCamp(c.Context(), principal.Organization, input)
	if err != nil {
		return response.InternalServerError(c, "Failed to create camp")
	}

	return response.Created(c, "Camp created", camp)
}

// List handles camp listing
// @Summary List camps
// @Description All camps ordered by ascending date
// @Tags Camps
// @Produce json
// @Success 200 {object} response.Response
// @Router /camps [get]
func (h *CampHandler) List(c *fiber.Ctx) error {
	camps, err := h.campService.ListCamps(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list camps")
	}
	return response.Success(c, "", camps)
}

// Detail handles camp detail with per-donor derived status
// @Summary Get camp detail
// @Description Camp with registered donors and their Registered/Donated status
// @Tags Camps
// @Produce json
// @Param id path int true "Camp ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /camps/{id} [get]
func (h *CampHandler) Detail(c *fiber.Ctx) error {
	campID, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid camp id")
	}

	detail, err := h.campService.GetCampDetail(c.Context(), uint(campID))
	if err != nil {
		if errors.Is(err, services.ErrCampNotFound) {
			return response.NotFound(c, "Camp not found")
		}
		return response.InternalServerError(c, "Failed to load camp")
	}

	return response.Success(c, "", detail)
}

// Register handles donor self-registration for a camp
// @Summary Register for camp
// @Tags Camps
// @Produce json
// @Security BearerAuth
// @Param id path int true "Camp ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /camps/{id}/register [post]
func (h *CampHandler) Register(c *fiber.Ctx) error {
	campID, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid camp id")
	}

	principal := middleware.GetPrincipal(c)

	if err := h.campService.RegisterDonor(c.Context(), uint(campID), principal.ID()); err != nil {
		switch {
		case errors.Is(err, services.ErrCampNotFound):
			return response.NotFound(c, "Camp not found")
		case errors.Is(err, services.ErrAlreadyRegistered):
			return response.Conflict(c, "You are already registered for this camp")
		default:
			return response.InternalServerError(c, "Failed to register for camp")
		}
	}

	return response.Success(c, "Registration successful", fiber.Map{"camp_id": campID})
}

// CheckIn records a donation for a registered donor
// @Summary Check in donor
// @Description Record a donation receipt for the donor at this camp
// @Tags Camps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Camp ID"
// @Param body body CheckInRequest true "Donor to check in"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /camps/{id}/checkin [put]
func (h *CampHandler) CheckIn(c *fiber.Ctx) error {
	campID, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid camp id")
	}

	var req CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.DonorID == 0 {
		return response.BadRequest(c, "Donor id is required")
	}

	principal := middleware.GetPrincipal(c)

	donation, err := h.campService.CheckIn(c.Context(), principal.ID(), uint(campID), req.DonorID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCampNotFound):
			return response.NotFound(c, "Camp not found")
		case errors.Is(err, services.ErrDonorNotFound):
			return response.NotFound(c, "Donor not found")
		case errors.Is(err, services.ErrNotCampOwner):
			return response.Forbidden(c, "Camp belongs to another organization")
		case errors.Is(err, services.ErrAlreadyCheckedIn):
			return response.Conflict(c, "Donor already checked in for this camp")
		default:
			return response.InternalServerError(c, "Failed to check in donor")
		}
	}

	return response.Created(c, "Donation recorded", donation)
}

// UploadReport attaches a medical report file to a donation
// @Summary Upload medical report
// @Description Attach a medical report file to a donation by id
// @Tags Camps
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param donation_id formData int true "Donation ID"
// @Param report formData file true "Report file"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /camps/upload-report [post]
func (h *CampHandler) UploadReport(c *fiber.Ctx) error {
	donationID, err := strconv.ParseUint(c.FormValue("donation_id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid donation id")
	}

	file, err := c.FormFile("report")
	if err != nil {
		return response.BadRequest(c, "No file uploaded")
	}

	if file.Size > h.cfg.Upload.MaxSizeMB*1024*1024 {
		return response.BadRequest(c, fmt.Sprintf("File size exceeds %dMB limit", h.cfg.Upload.MaxSizeMB))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !reportFileTypes[ext] {
		return response.BadRequest(c, "File type not allowed")
	}

	filename := fmt.Sprintf("REPORT-%d%s", time.Now().UnixMilli(), ext)
	storedPath := filepath.Join(h.cfg.Upload.Dir, filename)

	if err := c.SaveFile(file, storedPath); err != nil {
		return response.InternalServerError(c, "Failed to store report")
	}

	donation, err := h.donationService.AttachReport(c.Context(), uint(donationID), storedPath)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDonationNotFound):
			return response.NotFound(c, "Donation not found")
		case errors.Is(err, services.ErrReportAlreadyAttached):
			return response.Conflict(c, "Medical report already attached")
		default:
			return response.InternalServerError(c, "Failed to attach report")
		}
	}

	return response.Success(c, "Report uploaded", donation)
}

// Certificate streams the donation certificate PDF
// @Summary Download certificate
// @Description One-page landscape certificate for the donor's donation at this camp
// @Tags Camps
// @Produce application/pdf
// @Param campId path int true "Camp ID"
// @Param donorId path int true "Donor ID"
// @Success 200 {file} binary
// @Failure 404 {object} response.Response
// @Router /camps/{campId}/certificate/{donorId} [get]
func (h *CampHandler) Certificate(c *fiber.Ctx) error {
	campID, err := c.ParamsInt("campId")
	if err != nil {
		return response.BadRequest(c, "Invalid camp id")
	}
	donorID, err := c.ParamsInt("donorId")
	if err != nil {
		return response.BadRequest(c, "Invalid donor id")
	}

	pdfBytes, filename, err := h.certificateService.Render(c.Context(), uint(campID), uint(donorID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCampNotFound):
			return response.NotFound(c, "Camp not found")
		case errors.Is(err, services.ErrDonorNotFound):
			return response.NotFound(c, "Donor not found")
		default:
			return response.InternalServerError(c, "Error generating certificate")
		}
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}
