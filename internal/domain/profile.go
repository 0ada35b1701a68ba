package domain

// Dependent profile records. Each is keyed 1:1 by the user's id: the
// identity generated by the store for the user row is reused verbatim as
// the primary key of the dependent row.

type CustomerProfile struct {
	ID         string
	FirstName  string
	MiddleName string
	LastName   string
	Suffix     string
	Phone      string
	CreatedAt  string
}

type VendorProfile struct {
	ID           string
	BusinessName string
	Description  string
	Category     string
	CreatedAt    string
}

// VendorContact is a secondary vendor record, written after the vendor
// profile and sharing its id.
type VendorContact struct {
	ID         string
	FirstName  string
	MiddleName string
	LastName   string
	Suffix     string
	Phone      string
	Email      string
	Position   string
	CreatedAt  string
}

const (
	DefaultBusinessName    = "New Business"
	DefaultContactPosition = "Owner"
)
