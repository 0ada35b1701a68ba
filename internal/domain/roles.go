package domain

import "strings"

type Role string

const (
	// Customer accounts get a customers profile row on registration.
	RoleCustomer Role = "customer"
	// Vendor accounts get a vendors profile row plus a vendor_contacts row.
	RoleVendor Role = "vendor"
)

// NormalizeRole lower-cases the requested role and defaults to customer
// when unspecified. Unrecognized roles pass through: they get a user row
// but no profile record.
func NormalizeRole(role string) string {
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		return string(RoleCustomer)
	}
	return role
}

func IsVendor(role string) bool   { return role == string(RoleVendor) }
func IsCustomer(role string) bool { return role == string(RoleCustomer) }
