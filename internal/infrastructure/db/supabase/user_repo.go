package supabase

import (
	"context"
	"errors"
	"strings"

	"github.com/aishki/bazario/internal/domain"
)

const (
	userTable = "users"

	// loginSelect embeds any linked vendor rows alongside the user.
	loginSelect    = "id,email,password_hash,role,vendors(id,business_name)"
	identitySelect = "email,username"
	userSelect     = "id,email,username,role,created_at"
)

type UserRepo struct {
	gw Gateway
}

func NewUserRepo(gw Gateway) *UserRepo {
	return &UserRepo{gw: gw}
}

type userRow struct {
	ID           ID          `json:"id"`
	Email        string      `json:"email"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"password_hash"`
	Role         string      `json:"role"`
	CreatedAt    string      `json:"created_at"`
	Vendors      []vendorRow `json:"vendors"`
}

type vendorRow struct {
	ID           ID     `json:"id"`
	BusinessName string `json:"business_name"`
}

type identityRow struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

type newUserRow struct {
	Email        string `json:"email"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
	CreatedAt    string `json:"created_at"`
}

func toUser(r userRow) domain.User {
	u := domain.User{
		ID:           r.ID.String(),
		Email:        r.Email,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Role:         r.Role,
		CreatedAt:    r.CreatedAt,
	}
	for _, v := range r.Vendors {
		u.Vendors = append(u.Vendors, domain.VendorRef{
			ID:           v.ID.String(),
			BusinessName: v.BusinessName,
		})
	}
	return u
}

// FindByEmail loads a user together with its linked vendor rows.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var rows []userRow
	if err := r.gw.Query(ctx, userTable, loginSelect, Eq("email", email), &rows); err != nil {
		return domain.User{}, domain.ErrStoreFailure(err)
	}
	if len(rows) == 0 {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return toUser(rows[0]), nil
}

// FindByEmailOrUsername runs the uniqueness pre-check as a single
// disjunctive query.
func (r *UserRepo) FindByEmailOrUsername(ctx context.Context, email, username string) ([]domain.UserIdentity, error) {
	filter := Or(EqPred("email", email), EqPred("username", username))

	var rows []identityRow
	if err := r.gw.Query(ctx, userTable, identitySelect, filter, &rows); err != nil {
		return nil, domain.ErrStoreFailure(err)
	}

	out := make([]domain.UserIdentity, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.UserIdentity{Email: row.Email, Username: row.Username})
	}
	return out, nil
}

// Create inserts the user row and returns it with the store-generated
// identity. A uniqueness violation raised by the store itself (a
// registration that lost the check-then-act race) maps to the same
// conflict errors as the pre-check.
func (r *UserRepo) Create(ctx context.Context, nu domain.NewUser) (domain.User, error) {
	payload := newUserRow{
		Email:        nu.Email,
		Username:     nu.Username,
		PasswordHash: nu.PasswordHash,
		Role:         nu.Role,
		CreatedAt:    nu.CreatedAt,
	}

	var rows []userRow
	if err := r.gw.Insert(ctx, userTable, payload, &rows); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.IsUniqueViolation() {
			return domain.User{}, conflictFromViolation(apiErr)
		}
		return domain.User{}, domain.ErrStoreFailure(err)
	}
	if len(rows) == 0 {
		return domain.User{}, domain.ErrRegistrationFailed(errors.New("insert returned no rows"))
	}
	return toUser(rows[0]), nil
}

func conflictFromViolation(apiErr *APIError) *domain.Error {
	detail := strings.ToLower(apiErr.Details + " " + apiErr.Message)
	switch {
	case strings.Contains(detail, "email"):
		return domain.ErrEmailExists()
	case strings.Contains(detail, "username"):
		return domain.ErrUsernameExists()
	default:
		return domain.ErrDuplicateUser(apiErr)
	}
}
