package auth

import (
	"context"
	"strings"

	"github.com/aishki/bazario/internal/domain"
)

type LoginInput struct {
	Email    string
	Password string
}

// Login verifies the password against the stored hash and issues a fresh
// opaque token. The token is generated per login; nothing is persisted.
func (s *Service) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	in.Email = strings.TrimSpace(in.Email)

	if in.Email == "" || in.Password == "" {
		return LoginResult{}, domain.ErrLoginFieldsRequired()
	}

	u, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return LoginResult{}, asDomainError(err)
	}

	if err := s.hasher.Compare(u.PasswordHash, in.Password); err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	token, err := newOpaqueToken(tokenBytes)
	if err != nil {
		return LoginResult{}, domain.ErrRandomFailed(err)
	}

	res := LoginResult{User: u, Token: token}
	if domain.IsVendor(u.Role) && len(u.Vendors) > 0 {
		vendor := u.Vendors[0]
		res.Vendor = &vendor
	}
	return res, nil
}
