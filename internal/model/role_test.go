package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessMapCoversEveryFeature(t *testing.T) {
	for _, f := range Features {
		assert.NotEmptyf(t, accessMap[f], "feature %q has no granted roles", f)
	}
}

func TestAdminHasEveryFeature(t *testing.T) {
	assert.Equal(t, Features, RoleAdmin.AccessibleFeatures())
}

func TestKasirAccess(t *testing.T) {
	granted := RoleKasir.AccessibleFeatures()
	assert.Equal(t, []Feature{
		FeatureDashboard,
		FeatureCustomers,
		FeatureLaundryItems,
		FeatureTransactions,
		FeatureReports,
	}, granted)

	assert.False(t, RoleKasir.HasAccess(FeatureOutlets))
	assert.False(t, RoleKasir.HasAccess(FeatureProducts))
	assert.False(t, RoleKasir.HasAccess(FeatureUsers))
}

func TestOwnerIsReadOnlyReporting(t *testing.T) {
	assert.Equal(t, []Feature{FeatureDashboard, FeatureReports}, RoleOwner.AccessibleFeatures())
	assert.False(t, RoleOwner.HasAccess(FeatureUsers))
	assert.False(t, RoleOwner.HasAccess(FeatureLaundryItems))
}

func TestUnknownRoleHasNoAccess(t *testing.T) {
	stranger := Role("petugas")
	for _, f := range Features {
		assert.Falsef(t, stranger.HasAccess(f), "unknown role granted %q", f)
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole("admin"))
	assert.True(t, ValidRole("kasir"))
	assert.True(t, ValidRole("owner"))
	assert.False(t, ValidRole("petugas"))
	assert.False(t, ValidRole(""))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	u := &User{Username: "admin"}
	assert.NoError(t, u.SetPassword("admin123"))
	assert.NotEqual(t, "admin123", u.Password)
	assert.True(t, u.CheckPassword("admin123"))
	assert.False(t, u.CheckPassword("admin124"))
}
