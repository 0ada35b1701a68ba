package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aishki/bazario/internal/domain"
)

/*
Fakes for ports
*/

type fakeUserRepo struct {
	byEmail    map[string]domain.User
	identities []domain.UserIdentity

	findErr   error
	lookupErr error
	createErr error

	lookupEmail    string
	lookupUsername string
	created        []domain.NewUser

	nextID string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]domain.User{},
		nextID:  "u1",
	}
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	if f.findErr != nil {
		return domain.User{}, f.findErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmailOrUsername(ctx context.Context, email, username string) ([]domain.UserIdentity, error) {
	f.lookupEmail, f.lookupUsername = email, username
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return f.identities, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, nu domain.NewUser) (domain.User, error) {
	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	f.created = append(f.created, nu)
	return domain.User{
		ID:           f.nextID,
		Email:        nu.Email,
		Username:     nu.Username,
		PasswordHash: nu.PasswordHash,
		Role:         nu.Role,
		CreatedAt:    nu.CreatedAt,
	}, nil
}

type fakeProfileRepo struct {
	customers []domain.CustomerProfile
	vendors   []domain.VendorProfile
	contacts  []domain.VendorContact

	customerErr error
	vendorErr   error
	contactErr  error
}

func (f *fakeProfileRepo) CreateCustomer(ctx context.Context, p domain.CustomerProfile) error {
	if f.customerErr != nil {
		return f.customerErr
	}
	f.customers = append(f.customers, p)
	return nil
}

func (f *fakeProfileRepo) CreateVendor(ctx context.Context, p domain.VendorProfile) error {
	if f.vendorErr != nil {
		return f.vendorErr
	}
	f.vendors = append(f.vendors, p)
	return nil
}

func (f *fakeProfileRepo) CreateVendorContact(ctx context.Context, c domain.VendorContact) error {
	if f.contactErr != nil {
		return f.contactErr
	}
	f.contacts = append(f.contacts, c)
	return nil
}

type fakeHasher struct {
	hashFn    func(pw string) (string, error)
	compareFn func(hash, pw string) error
}

func (f *fakeHasher) Hash(pw string) (string, error) {
	if f.hashFn != nil {
		return f.hashFn(pw)
	}
	return "hash:" + pw, nil
}

func (f *fakeHasher) Compare(hash, pw string) error {
	if f.compareFn != nil {
		return f.compareFn(hash, pw)
	}
	if hash != "hash:"+pw {
		return errors.New("mismatch")
	}
	return nil
}

var testClock = time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

func newSvcForTest(t *testing.T) (*Service, *fakeUserRepo, *fakeProfileRepo, *fakeHasher) {
	t.Helper()

	users := newFakeUserRepo()
	profiles := &fakeProfileRepo{}
	hasher := &fakeHasher{}

	svc := NewService(users, profiles, hasher).WithClock(func() time.Time { return testClock })
	return svc, users, profiles, hasher
}

func requireDomainCode(t *testing.T, err error, code string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error with code %q, got nil", code)
	}
	if !domain.Is(err, code) {
		t.Fatalf("expected code %q, got %v", code, err)
	}
}
