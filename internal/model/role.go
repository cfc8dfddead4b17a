package model

// Role is the closed set of console roles.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleKasir Role = "kasir"
	RoleOwner Role = "owner"
)

// Roles lists every valid role.
var Roles = []Role{RoleAdmin, RoleKasir, RoleOwner}

// Feature is the closed set of gated console features.
type Feature string

const (
	FeatureDashboard    Feature = "dashboard"
	FeatureCustomers    Feature = "customers"
	FeatureOutlets      Feature = "outlets"
	FeatureProducts     Feature = "products"
	FeatureUsers        Feature = "users"
	FeatureLaundryItems Feature = "laundryItems"
	FeatureTransactions Feature = "transactions"
	FeatureReports      Feature = "reports"
)

// Features lists every gated feature.
var Features = []Feature{
	FeatureDashboard,
	FeatureCustomers,
	FeatureOutlets,
	FeatureProducts,
	FeatureUsers,
	FeatureLaundryItems,
	FeatureTransactions,
	FeatureReports,
}

// accessMap is the exhaustive role-to-feature grant table. Every Feature has
// an entry; a feature missing here is a bug, not an implicit deny.
var accessMap = map[Feature][]Role{
	FeatureDashboard:    {RoleAdmin, RoleKasir, RoleOwner},
	FeatureCustomers:    {RoleAdmin, RoleKasir},
	FeatureOutlets:      {RoleAdmin},
	FeatureProducts:     {RoleAdmin},
	FeatureUsers:        {RoleAdmin},
	FeatureLaundryItems: {RoleAdmin, RoleKasir},
	FeatureTransactions: {RoleAdmin, RoleKasir},
	FeatureReports:      {RoleAdmin, RoleKasir, RoleOwner},
}

// HasAccess reports whether the role may use the feature.
func (r Role) HasAccess(feature Feature) bool {
	for _, allowed := range accessMap[feature] {
		if allowed == r {
			return true
		}
	}
	return false
}

// AccessibleFeatures returns the features granted to the role, in the fixed
// Features order.
func (r Role) AccessibleFeatures() []Feature {
	granted := []Feature{}
	for _, f := range Features {
		if r.HasAccess(f) {
			granted = append(granted, f)
		}
	}
	return granted
}

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	for _, r := range Roles {
		if Role(s) == r {
			return true
		}
	}
	return false
}
