package services

import (
	"context"
	"testing"

	"donorly/internal/adapters/persistence/repositories"
	"donorly/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newIdentityService(db *gorm.DB) *IdentityService {
	return NewIdentityService(
		repositories.NewDonorRepository(db),
		repositories.NewOrganizationRepository(db),
		testConfig(),
	)
}

func TestIdentityService_ResolveDonor(t *testing.T) {
	db := newTestDB(t)
	svc := newIdentityService(db)
	ctx := context.Background()

	donor := seedDonor(t, db, "asha@example.com", "O+")

	token, err := jwt.GenerateToken(donor.ID, "test-secret", 7)
	require.NoError(t, err)

	principal, err := svc.ResolvePrincipal(ctx, token)
	require.NoError(t, err)
	assert.True(t, principal.IsDonor())
	assert.False(t, principal.IsOrganization())
	assert.Equal(t, donor.ID, principal.ID())
	assert.Equal(t, "asha@example.com", principal.Donor.Email)
}

func TestIdentityService_ResolveOrganization(t *testing.T) {
	db := newTestDB(t)
	svc := newIdentityService(db)
	ctx := context.Background()

	// A donor occupies id 1, so push the org past any donor id
	seedDonor(t, db, "asha@example.com", "O+")
	org := seedOrg(t, db, "blood@cityhospital.org", "LIC-1001")
	require.NoError(t, db.Model(org).Update("id", 500).Error)

	token, err := jwt.GenerateToken(500, "test-secret", 30)
	require.NoError(t, err)

	principal, err := svc.ResolvePrincipal(ctx, token)
	require.NoError(t, err)
	assert.True(t, principal.IsOrganization())
	assert.Equal(t, uint(500), principal.ID())
}

func TestIdentityService_DonorWinsIDCollision(t *testing.T) {
	db := newTestDB(t)
	svc := newIdentityService(db)
	ctx := context.Background()

	donor := seedDonor(t, db, "asha@example.com", "O+")
	org := seedOrg(t, db, "blood@cityhospital.org", "LIC-1001")
	require.NoError(t, db.Model(org).Update("id", donor.ID).Error)

	token, err := jwt.GenerateToken(donor.ID, "test-secret", 7)
	require.NoError(t, err)

	// Donor store is probed first, so the donor interpretation wins
	principal, err := svc.ResolvePrincipal(ctx, token)
	require.NoError(t, err)
	assert.True(t, principal.IsDonor())
}

func TestIdentityService_BadToken(t *testing.T) {
	db := newTestDB(t)
	svc := newIdentityService(db)
	ctx := context.Background()

	_, err := svc.ResolvePrincipal(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIdentityService_UnknownSubject(t *testing.T) {
	db := newTestDB(t)
	svc := newIdentityService(db)
	ctx := context.Background()

	token, err := jwt.GenerateToken(9999, "test-secret", 7)
	require.NoError(t, err)

	_, err = svc.ResolvePrincipal(ctx, token)
	assert.ErrorIs(t, err, ErrPrincipalNotFound)
}
