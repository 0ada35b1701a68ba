package auth

import (
	"context"

	"github.com/aishki/bazario/internal/domain"
)

type RegisterInput struct {
	Email    string
	Password string
	Username string

	FirstName  string
	MiddleName string
	LastName   string
	Suffix     string
	Phone      string

	Role string

	BusinessName        string
	BusinessDescription string
	BusinessCategory    string
	Position            string
}

// Register creates the user row and then, best-effort, the role-specific
// profile records. A failed profile write is returned on the result for
// the caller to log; it does not fail the registration.
func (s *Service) Register(ctx context.Context, in RegisterInput) (RegisterResult, error) {
	if in.Email == "" || in.Password == "" || in.FirstName == "" || in.LastName == "" || in.Username == "" {
		return RegisterResult{}, domain.ErrRegisterFieldsRequired()
	}

	// Fast-path uniqueness check. The store's own constraints remain the
	// authoritative guard against concurrent registrations; a violation on
	// insert below surfaces as the same conflict errors.
	existing, err := s.users.FindByEmailOrUsername(ctx, in.Email, in.Username)
	if err != nil {
		return RegisterResult{}, asDomainError(err)
	}
	for _, row := range existing {
		// Email collisions win when a row matches both conditions.
		if row.Email == in.Email {
			return RegisterResult{}, domain.ErrEmailExists()
		}
		if row.Username == in.Username {
			return RegisterResult{}, domain.ErrUsernameExists()
		}
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return RegisterResult{}, domain.ErrHashFailed(err)
	}

	role := domain.NormalizeRole(in.Role)
	now := s.now().Format(createdAtFormat)

	created, err := s.users.Create(ctx, domain.NewUser{
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
	})
	if err != nil {
		return RegisterResult{}, asDomainError(err)
	}

	res := RegisterResult{UserID: created.ID, Role: role}

	if domain.IsVendor(role) {
		businessName := in.BusinessName
		if businessName == "" {
			businessName = domain.DefaultBusinessName
		}
		// The vendor identity is the user identity; echo it whether or not
		// the secondary writes land.
		res.Vendor = &domain.VendorRef{ID: created.ID, BusinessName: businessName}
	}

	res.ProfileErr = s.createProfile(ctx, created.ID, role, now, in)
	return res, nil
}

// createProfile writes the role-specific dependent records, reusing the
// store-generated user identity. Any failure is returned as a typed error;
// the decision to swallow it belongs to the caller.
func (s *Service) createProfile(ctx context.Context, userID, role, createdAt string, in RegisterInput) error {
	switch role {
	case string(domain.RoleCustomer):
		return s.profiles.CreateCustomer(ctx, domain.CustomerProfile{
			ID:         userID,
			FirstName:  in.FirstName,
			MiddleName: in.MiddleName,
			LastName:   in.LastName,
			Suffix:     in.Suffix,
			Phone:      in.Phone,
			CreatedAt:  createdAt,
		})

	case string(domain.RoleVendor):
		businessName := in.BusinessName
		if businessName == "" {
			businessName = domain.DefaultBusinessName
		}
		if err := s.profiles.CreateVendor(ctx, domain.VendorProfile{
			ID:           userID,
			BusinessName: businessName,
			Description:  in.BusinessDescription,
			Category:     in.BusinessCategory,
			CreatedAt:    createdAt,
		}); err != nil {
			return err
		}

		position := in.Position
		if position == "" {
			position = domain.DefaultContactPosition
		}
		return s.profiles.CreateVendorContact(ctx, domain.VendorContact{
			ID:         userID,
			FirstName:  in.FirstName,
			MiddleName: in.MiddleName,
			LastName:   in.LastName,
			Suffix:     in.Suffix,
			Phone:      in.Phone,
			Email:      in.Email,
			Position:   position,
			CreatedAt:  createdAt,
		})

	default:
		// Unrecognized roles get a user row and nothing else.
		return nil
	}
}
