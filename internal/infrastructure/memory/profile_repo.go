package memory

import (
	"context"
	"errors"

	"github.com/aishki/bazario/internal/domain"
)

type ProfileRepo struct {
	store *Store
}

func (r *ProfileRepo) CreateCustomer(ctx context.Context, p domain.CustomerProfile) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.customers[p.ID]; exists {
		return domain.ErrProfileWrite("customers", p.ID, errors.New("duplicate profile"))
	}
	s.customers[p.ID] = p
	return nil
}

func (r *ProfileRepo) CreateVendor(ctx context.Context, p domain.VendorProfile) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.vendors[p.ID]; exists {
		return domain.ErrProfileWrite("vendors", p.ID, errors.New("duplicate profile"))
	}
	s.vendors[p.ID] = p
	return nil
}

func (r *ProfileRepo) CreateVendorContact(ctx context.Context, c domain.VendorContact) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.contacts[c.ID]; exists {
		return domain.ErrProfileWrite("vendor_contacts", c.ID, errors.New("duplicate contact"))
	}
	s.contacts[c.ID] = c
	return nil
}
