package services

import (
	"context"
	"testing"

	"donorly/internal/adapters/persistence/repositories"
	"donorly/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrgService_Register(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrgService(repositories.NewOrganizationRepository(db), testConfig())
	ctx := context.Background()

	result, err := svc.Register(ctx, &RegisterOrgInput{
		OrgName:       "City Hospital",
		Email:         "Blood@CityHospital.org",
		Phone:         "9999999999",
		OrgType:       "Hospital",
		LicenseNumber: "LIC-1001",
		Address:       "12 Main St",
		Password:      "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "blood@cityhospital.org", result.Organization.Email)
	assert.NotZero(t, result.Organization.ID)

	claims, err := jwt.ValidateToken(result.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, result.Organization.ID, claims.SubjectID)
}

func TestOrgService_Register_Conflicts(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrgService(repositories.NewOrganizationRepository(db), testConfig())
	ctx := context.Background()

	seedOrg(t, db, "blood@cityhospital.org", "LIC-1001")

	_, err := svc.Register(ctx, &RegisterOrgInput{
		OrgName:       "Clone",
		Email:         "blood@cityhospital.org",
		LicenseNumber: "LIC-2002",
		Password:      "secret123",
	})
	assert.ErrorIs(t, err, ErrOrgAlreadyRegistered)

	_, err = svc.Register(ctx, &RegisterOrgInput{
		OrgName:       "Clone",
		Email:         "other@cityhospital.org",
		LicenseNumber: "LIC-1001",
		Password:      "secret123",
	})
	assert.ErrorIs(t, err, ErrLicenseAlreadyRegistered)
}

func TestOrgService_Login(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrgService(repositories.NewOrganizationRepository(db), testConfig())
	ctx := context.Background()

	seedOrg(t, db, "blood@cityhospital.org", "LIC-1001")

	result, err := svc.Login(ctx, "blood@cityhospital.org", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)

	_, err = svc.Login(ctx, "blood@cityhospital.org", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
