package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/aishki/bazario/internal/domain"
)

type UserRepo struct {
	store *Store
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}

	u := s.users[id]
	if v, ok := s.vendors[id]; ok {
		u.Vendors = []domain.VendorRef{{ID: v.ID, BusinessName: v.BusinessName}}
	}
	return u, nil
}

func (r *UserRepo) FindByEmailOrUsername(ctx context.Context, email, username string) ([]domain.UserIdentity, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := map[string]bool{}
	var out []domain.UserIdentity
	if id, ok := s.byEmail[email]; ok {
		u := s.users[id]
		out = append(out, domain.UserIdentity{Email: u.Email, Username: u.Username})
		seen[id] = true
	}
	if id, ok := s.byUsername[username]; ok && !seen[id] {
		u := s.users[id]
		out = append(out, domain.UserIdentity{Email: u.Email, Username: u.Username})
	}
	return out, nil
}

func (r *UserRepo) Create(ctx context.Context, nu domain.NewUser) (domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	// Mirror the store's uniqueness constraints.
	if _, exists := s.byEmail[nu.Email]; exists {
		return domain.User{}, domain.ErrEmailExists()
	}
	if _, exists := s.byUsername[nu.Username]; exists {
		return domain.User{}, domain.ErrUsernameExists()
	}

	u := domain.User{
		ID:           uuid.NewString(),
		Email:        nu.Email,
		Username:     nu.Username,
		PasswordHash: nu.PasswordHash,
		Role:         nu.Role,
		CreatedAt:    nu.CreatedAt,
	}
	s.users[u.ID] = u
	s.byEmail[u.Email] = u.ID
	s.byUsername[u.Username] = u.ID
	return u, nil
}
