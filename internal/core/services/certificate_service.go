package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"donorly/internal/adapters/persistence/models"
	"donorly/internal/adapters/persistence/repositories"

	"github.com/google/uuid"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"gorm.io/gorm"
)

var (
	donorlyRed  = props.Color{Red: 204, Green: 0, Blue: 0}
	textDark    = props.Color{Red: 51, Green: 51, Blue: 51}
	textMuted   = props.Color{Red: 102, Green: 102, Blue: 102}
	footerColor = props.Color{Red: 153, Green: 153, Blue: 153}
)

// CertificateService renders donation appreciation certificates. Rendering
// is a pure function of the camp, the donor and the rendering time; nothing
// is persisted.
type CertificateService struct {
	campRepo  repositories.CampRepository
	donorRepo repositories.DonorRepository
}

// NewCertificateService creates a new certificate service
func NewCertificateService(
	campRepo repositories.CampRepository,
	donorRepo repositories.DonorRepository,
) *CertificateService {
	return &CertificateService{
		campRepo:  campRepo,
		donorRepo: donorRepo,
	}
}

// Render produces the one-page landscape certificate PDF and its download
// filename
func (s *CertificateService) Render(ctx context.Context, campID, donorID uint) ([]byte, string, error) {
	camp, err := s.campRepo.GetByID(ctx, campID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrCampNotFound
		}
		return nil, "", err
	}

	donor, err := s.donorRepo.GetByID(ctx, donorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrDonorNotFound
		}
		return nil, "", err
	}

	pdfBytes, err := s.draw(camp, donor)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("Certificate-%s.pdf", donor.FullName)
	return pdfBytes, filename, nil
}

func (s *CertificateService) draw(camp *models.Camp, donor *models.Donor) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(20).
		WithTopMargin(15).
		WithRightMargin(20).
		Build()

	m := maroto.New(cfg)

	borderLine := props.Line{
		Color:         &donorlyRed,
		Thickness:     1.2,
		SizePercent:   100,
		OffsetPercent: 50,
	}

	m.AddRow(6, line.NewCol(12, borderLine))

	m.AddRow(24, text.NewCol(12, "CERTIFICATE OF APPRECIATION", props.Text{
		Size:  32,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &textDark,
		Top:   6,
	}))

	m.AddRow(12, text.NewCol(12, "This certificate is proudly presented to", props.Text{
		Size:  14,
		Align: align.Center,
		Color: &textMuted,
	}))

	m.AddRow(22, text.NewCol(12, donor.FullName, props.Text{
		Size:  36,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &donorlyRed,
	}))

	m.AddRow(10, text.NewCol(12, "For their selfless blood donation at", props.Text{
		Size:  12,
		Align: align.Center,
		Color: &textDark,
	}))

	m.AddRow(14, text.NewCol(12, camp.CampName, props.Text{
		Size:  18,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &textDark,
	}))

	m.AddRow(16,
		col.New(6).Add(
			text.New("Date: "+camp.Date.Format("02 Jan 2006"), props.Text{
				Size:  11,
				Align: align.Left,
				Color: &textMuted,
				Top:   8,
			}),
		),
		col.New(6).Add(
			text.New("Organizer: "+camp.OrganizerName, props.Text{
				Size:  11,
				Align: align.Right,
				Color: &textMuted,
				Top:   8,
			}),
		),
	)

	serial := "Certificate No: CERT-" + uuid.New().String()
	m.AddRow(8, text.NewCol(12, serial, props.Text{
		Size:  8,
		Align: align.Center,
		Color: &footerColor,
		Top:   2,
	}))

	issued := "Issued " + time.Now().Format("02 Jan 2006")
	m.AddRow(6, text.NewCol(12, issued, props.Text{
		Size:  8,
		Align: align.Center,
		Color: &footerColor,
	}))

	m.AddRow(8, text.NewCol(12, "Generated digitally by Donorly - Every Donation Digitally Remembered.", props.Text{
		Size:  9,
		Align: align.Center,
		Color: &footerColor,
		Top:   2,
	}))

	m.AddRow(6, line.NewCol(12, borderLine))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to render certificate: %w", err)
	}

	return doc.GetBytes(), nil
}
