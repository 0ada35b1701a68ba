package auth

import (
	"context"

	"github.com/aishki/bazario/internal/domain"
)

/*
UserRepo
--------
Persistence port for the user root record.
Only describes WHAT the auth service needs, not HOW it's stored.
*/
type UserRepo interface {
	// FindByEmail loads a user with any linked vendor rows embedded.
	FindByEmail(ctx context.Context, email string) (domain.User, error)

	// FindByEmailOrUsername runs the registration uniqueness pre-check as a
	// single disjunctive query against the store.
	FindByEmailOrUsername(ctx context.Context, email, username string) ([]domain.UserIdentity, error)

	// Create inserts the user row. The store assigns the identity and the
	// repo returns it on the created user.
	Create(ctx context.Context, nu domain.NewUser) (domain.User, error)
}

/*
ProfileRepo
-----------
Persistence port for the role-specific dependent records. All three writes
reuse the identity generated for the user row.
*/
type ProfileRepo interface {
	CreateCustomer(ctx context.Context, p domain.CustomerProfile) error
	CreateVendor(ctx context.Context, p domain.VendorProfile) error
	CreateVendorContact(ctx context.Context, c domain.VendorContact) error
}

/*
PasswordHasher
--------------
Abstracts bcrypt / argon2.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error // nil if match
}
