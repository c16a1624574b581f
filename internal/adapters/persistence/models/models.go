package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Constants
// ============================================================

// BloodGroups is the canonical ABO/Rh domain
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// Inventory stock status tiers. StockStatusHigh exists in the stored domain
// for data imported from elsewhere; the tracker itself never derives it.
const (
	StockStatusCritical = "Critical"
	StockStatusLow      = "Low"
	StockStatusStable   = "Stable"
	StockStatusHigh     = "High"
)

// Notification types
const (
	NotificationTypeReminder = "reminder"
	NotificationTypeAlert    = "alert"
	NotificationTypeInfo     = "info"
	NotificationTypeSuccess  = "success"
)

// Auth providers
const (
	AuthProviderLocal  = "local"
	AuthProviderGoogle = "google"
)

// Donor status within a camp, derived from the donation ledger at read time
const (
	CampDonorStatusRegistered = "Registered"
	CampDonorStatusDonated    = "Donated"
)

// ============================================================
// Donor
// ============================================================

// Donor represents donors table
type Donor struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	FullName     string     `gorm:"size:100;not null" json:"full_name"`
	Email        string     `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Phone        string     `gorm:"size:20" json:"phone"`
	DOB          *time.Time `json:"dob"`
	BloodGroup   string     `gorm:"size:5" json:"blood_group"`
	Gender       string     `gorm:"size:10" json:"gender"`
	Address      string     `gorm:"size:255" json:"address"`
	City         string     `gorm:"size:100" json:"city"`
	Pincode      string     `gorm:"size:10" json:"pincode"`
	Password     string     `gorm:"size:255" json:"-"`
	GoogleID     *string    `gorm:"size:100" json:"-"`
	AuthProvider string     `gorm:"size:10;default:'local'" json:"auth_provider"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Donor) TableName() string {
	return "donors"
}

// DonorResponse DTO
type DonorResponse struct {
	ID           uint       `json:"id"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	DOB          *time.Time `json:"dob"`
	BloodGroup   string     `json:"blood_group"`
	Gender       string     `json:"gender"`
	Address      string     `json:"address"`
	City         string     `json:"city"`
	Pincode      string     `json:"pincode"`
	AuthProvider string     `json:"auth_provider"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (d *Donor) ToResponse() *DonorResponse {
	return &DonorResponse{
		ID:           d.ID,
		FullName:     d.FullName,
		Email:        d.Email,
		Phone:        d.Phone,
		DOB:          d.DOB,
		BloodGroup:   d.BloodGroup,
		Gender:       d.Gender,
		Address:      d.Address,
		City:         d.City,
		Pincode:      d.Pincode,
		AuthProvider: d.AuthProvider,
		CreatedAt:    d.CreatedAt,
	}
}

// ============================================================
// Organization
// ============================================================

// Organization represents organizations table (hospitals, NGOs)
type Organization struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	OrgName       string    `gorm:"size:100;not null" json:"org_name"`
	Email         string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Phone         string    `gorm:"size:20;not null" json:"phone"`
	OrgType       string    `gorm:"size:50;not null" json:"org_type"`
	LicenseNumber string    `gorm:"uniqueIndex;size:50;not null" json:"license_number"`
	Address       string    `gorm:"size:255;not null" json:"address"`
	Password      string    `gorm:"size:255;not null" json:"-"`
	Role          string    `gorm:"size:20;default:'organization'" json:"role"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Organization) TableName() string {
	return "organizations"
}

// OrganizationResponse DTO
type OrganizationResponse struct {
	ID            uint      `json:"id"`
	OrgName       string    `json:"org_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	OrgType       string    `json:"org_type"`
	LicenseNumber string    `json:"license_number"`
	Address       string    `json:"address"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"created_at"`
}

func (o *Organization) ToResponse() *OrganizationResponse {
	return &OrganizationResponse{
		ID:            o.ID,
		OrgName:       o.OrgName,
		Email:         o.Email,
		Phone:         o.Phone,
		OrgType:       o.OrgType,
		LicenseNumber: o.LicenseNumber,
		Address:       o.Address,
		Role:          o.Role,
		CreatedAt:     o.CreatedAt,
	}
}

// ============================================================
// Camp
// ============================================================

// Camp represents camps table. OrganizationID is nullable for camps created
// before organization attribution existed.
type Camp struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CampName       string    `gorm:"size:100;not null" json:"camp_name"`
	Location       string    `gorm:"size:255;not null" json:"location"`
	Date           time.Time `gorm:"not null;index" json:"date"`
	StartTime      string    `gorm:"size:10;not null" json:"start_time"`
	EndTime        string    `gorm:"size:10;not null" json:"end_time"`
	TargetDonors   *int      `json:"target_donors"`
	Description    string    `gorm:"type:text" json:"description"`
	OrganizerName  string    `gorm:"size:100" json:"organizer_name"`
	OrganizationID *uint     `gorm:"index" json:"organization_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Organization  *Organization      `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Registrations []CampRegistration `gorm:"foreignKey:CampID" json:"registrations,omitempty"`
}

func (Camp) TableName() string {
	return "camps"
}

// CampRegistration represents one donor's membership in a camp's
// registration set. The composite unique index makes duplicate
// self-registration fail at insert instead of racing a read-check.
type CampRegistration struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CampID    uint      `gorm:"not null;uniqueIndex:idx_camp_donor" json:"camp_id"`
	DonorID   uint      `gorm:"not null;uniqueIndex:idx_camp_donor" json:"donor_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relations
	Camp  *Camp  `gorm:"foreignKey:CampID" json:"camp,omitempty"`
	Donor *Donor `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
}

func (CampRegistration) TableName() string {
	return "camp_registrations"
}

// ============================================================
// Donation
// ============================================================

// Donation is the ledger receipt for one check-in. At most one donation
// exists per (donor, camp) pair, backed by the composite unique index.
type Donation struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	DonorID           uint       `gorm:"not null;uniqueIndex:idx_donor_camp" json:"donor_id"`
	CampID            uint       `gorm:"not null;uniqueIndex:idx_donor_camp" json:"camp_id"`
	BloodGroup        string     `gorm:"size:5;not null" json:"blood_group"`
	Units             int        `gorm:"default:1" json:"units"`
	Date              time.Time  `gorm:"not null;index" json:"date"`
	MedicalReport     *string    `gorm:"size:255" json:"medical_report"`
	ReportUploadedAt  *time.Time `json:"report_uploaded_at"`
	CertificateIssued bool       `gorm:"default:true" json:"certificate_issued"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Donor *Donor `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
	Camp  *Camp  `gorm:"foreignKey:CampID" json:"camp,omitempty"`
}

func (Donation) TableName() string {
	return "donations"
}

// DonationResponse DTO for donation history
type DonationResponse struct {
	ID                uint       `json:"id"`
	CampID            uint       `json:"camp_id"`
	CampName          string     `json:"camp_name"`
	Location          string     `json:"location,omitempty"`
	BloodGroup        string     `json:"blood_group"`
	Units             int        `json:"units"`
	Date              time.Time  `json:"date"`
	MedicalReport     *string    `json:"medical_report"`
	ReportUploadedAt  *time.Time `json:"report_uploaded_at"`
	CertificateIssued bool       `json:"certificate_issued"`
}

// UnknownCampName is reported when a donation's camp reference dangles
const UnknownCampName = "Unknown Camp"

func (d *Donation) ToResponse() *DonationResponse {
	resp := &DonationResponse{
		ID:                d.ID,
		CampID:            d.CampID,
		CampName:          UnknownCampName,
		BloodGroup:        d.BloodGroup,
		Units:             d.Units,
		Date:              d.Date,
		MedicalReport:     d.MedicalReport,
		ReportUploadedAt:  d.ReportUploadedAt,
		CertificateIssued: d.CertificateIssued,
	}

	if d.Camp != nil {
		resp.CampName = d.Camp.CampName
		resp.Location = d.Camp.Location
	}

	return resp
}

// ============================================================
// Inventory
// ============================================================

// Inventory represents inventories table, exactly one per organization
type Inventory struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	OrganizationID uint      `gorm:"uniqueIndex;not null" json:"organization_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Organization *Organization    `gorm:"foreignKey:OrganizationID" json:"-"`
	Stock        []InventoryStock `gorm:"foreignKey:InventoryID" json:"stock"`
}

func (Inventory) TableName() string {
	return "inventories"
}

// InventoryStock represents one blood group's stock entry
type InventoryStock struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	InventoryID uint      `gorm:"not null;uniqueIndex:idx_inventory_blood_group" json:"-"`
	BloodGroup  string    `gorm:"size:5;not null;uniqueIndex:idx_inventory_blood_group" json:"blood_group"`
	Units       int       `gorm:"default:0" json:"units"`
	Status      string    `gorm:"size:10;default:'Critical'" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (InventoryStock) TableName() string {
	return "inventory_stocks"
}

// ============================================================
// Notification
// ============================================================

// Notification represents notifications table
type Notification struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RecipientID uint      `gorm:"not null;index" json:"recipient_id"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	Type        string    `gorm:"size:20;default:'info'" json:"type"`
	IsRead      bool      `gorm:"default:false" json:"is_read"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relations
	Recipient *Donor `gorm:"foreignKey:RecipientID" json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Donor{},
		&Organization{},
		&Camp{},
		&CampRegistration{},
		&Donation{},
		&Inventory{},
		&InventoryStock{},
		&Notification{},
	)
}
