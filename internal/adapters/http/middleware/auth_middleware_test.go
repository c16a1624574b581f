package middleware

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"donorly/internal/adapters/persistence/models"
	"donorly/internal/adapters/persistence/repositories"
	"donorly/internal/config"
	"donorly/internal/core/services"
	"donorly/internal/pkg/jwt"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	cfg := &config.Config{JWT: config.JWTConfig{Secret: testSecret, DonorTokenDays: 7, OrgTokenDays: 30}}
	identityService := services.NewIdentityService(
		repositories.NewDonorRepository(db),
		repositories.NewOrganizationRepository(db),
		cfg,
	)

	app := fiber.New()
	app.Get("/donor-only", Protect(identityService), RequireDonor(), func(c *fiber.Ctx) error {
		return c.SendString(GetPrincipal(c).Donor.Email)
	})
	app.Get("/org-only", Protect(identityService), RequireOrganization(), func(c *fiber.Ctx) error {
		return c.SendString(GetPrincipal(c).Organization.Email)
	})

	return app, db
}

func seedTestDonor(t *testing.T, db *gorm.DB) *models.Donor {
	t.Helper()
	donor := &models.Donor{FullName: "Asha Rao", Email: "asha@example.com", AuthProvider: models.AuthProviderLocal}
	require.NoError(t, db.Create(donor).Error)
	return donor
}

func TestProtect_MissingToken(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest("GET", "/donor-only", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtect_BadToken(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest("GET", "/donor-only", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtect_UnknownSubject(t *testing.T) {
	app, _ := setupApp(t)

	token, err := jwt.GenerateToken(9999, testSecret, 7)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/donor-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtect_DonorToken(t *testing.T) {
	app, db := setupApp(t)
	donor := seedTestDonor(t, db)

	token, err := jwt.GenerateToken(donor.ID, testSecret, 7)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/donor-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// A donor token cannot reach organization surfaces
	req = httptest.NewRequest("GET", "/org-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestProtect_OrganizationToken(t *testing.T) {
	app, db := setupApp(t)

	org := &models.Organization{
		OrgName:       "City Hospital",
		Email:         "blood@cityhospital.org",
		Phone:         "9999999999",
		OrgType:       "Hospital",
		LicenseNumber: "LIC-1001",
		Address:       "12 Main St",
		Password:      "x",
	}
	require.NoError(t, db.Create(org).Error)

	token, err := jwt.GenerateToken(org.ID, testSecret, 30)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/org-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/donor-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
