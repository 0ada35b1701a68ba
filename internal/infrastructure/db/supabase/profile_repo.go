package supabase

import (
	"context"

	"github.com/aishki/bazario/internal/domain"
)

const (
	customerTable      = "customers"
	vendorTable        = "vendors"
	vendorContactTable = "vendor_contacts"
)

// ProfileRepo writes the role-specific dependent records. All failures are
// reported as typed profile-write errors; the caller decides whether they
// are fatal.
type ProfileRepo struct {
	gw Gateway
}

func NewProfileRepo(gw Gateway) *ProfileRepo {
	return &ProfileRepo{gw: gw}
}

type customerProfileRow struct {
	ID         ID      `json:"id"`
	FirstName  string  `json:"first_name"`
	MiddleName *string `json:"middle_name"`
	LastName   string  `json:"last_name"`
	Suffix     *string `json:"suffix"`
	Phone      *string `json:"phone_number"`
	CreatedAt  string  `json:"created_at"`
}

type vendorProfileRow struct {
	ID           ID      `json:"id"`
	BusinessName string  `json:"business_name"`
	Description  *string `json:"description"`
	Category     *string `json:"business_category"`
	CreatedAt    string  `json:"created_at"`
}

type vendorContactRow struct {
	ID         ID      `json:"id"`
	FirstName  string  `json:"first_name"`
	MiddleName *string `json:"middle_name"`
	LastName   string  `json:"last_name"`
	Suffix     *string `json:"suffix"`
	Phone      *string `json:"phone_number"`
	Email      string  `json:"email"`
	Position   string  `json:"position"`
	CreatedAt  string  `json:"created_at"`
}

func (r *ProfileRepo) CreateCustomer(ctx context.Context, p domain.CustomerProfile) error {
	row := customerProfileRow{
		ID:         IDFrom(p.ID),
		FirstName:  p.FirstName,
		MiddleName: nullable(p.MiddleName),
		LastName:   p.LastName,
		Suffix:     nullable(p.Suffix),
		Phone:      nullable(p.Phone),
		CreatedAt:  p.CreatedAt,
	}
	if err := r.gw.Insert(ctx, customerTable, row, nil); err != nil {
		return domain.ErrProfileWrite(customerTable, p.ID, err)
	}
	return nil
}

func (r *ProfileRepo) CreateVendor(ctx context.Context, p domain.VendorProfile) error {
	row := vendorProfileRow{
		ID:           IDFrom(p.ID),
		BusinessName: p.BusinessName,
		Description:  nullable(p.Description),
		Category:     nullable(p.Category),
		CreatedAt:    p.CreatedAt,
	}
	if err := r.gw.Insert(ctx, vendorTable, row, nil); err != nil {
		return domain.ErrProfileWrite(vendorTable, p.ID, err)
	}
	return nil
}

func (r *ProfileRepo) CreateVendorContact(ctx context.Context, c domain.VendorContact) error {
	row := vendorContactRow{
		ID:         IDFrom(c.ID),
		FirstName:  c.FirstName,
		MiddleName: nullable(c.MiddleName),
		LastName:   c.LastName,
		Suffix:     nullable(c.Suffix),
		Phone:      nullable(c.Phone),
		Email:      c.Email,
		Position:   c.Position,
		CreatedAt:  c.CreatedAt,
	}
	if err := r.gw.Insert(ctx, vendorContactTable, row, nil); err != nil {
		return domain.ErrProfileWrite(vendorContactTable, c.ID, err)
	}
	return nil
}

// nullable maps an unset optional field to SQL NULL instead of an empty
// string.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
