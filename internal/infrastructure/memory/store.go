package memory

import (
	"sync"

	"github.com/aishki/bazario/internal/domain"
)

// Store is an in-memory stand-in for the hosted data store. It backs the
// dev configuration (no SUPABASE_URL set) and transport-level tests. Like
// the real store it assigns identities and enforces the email/username
// uniqueness constraints.
type Store struct {
	mu sync.RWMutex

	users      map[string]domain.User // id -> user
	byEmail    map[string]string      // email -> id
	byUsername map[string]string      // username -> id

	customers map[string]domain.CustomerProfile
	vendors   map[string]domain.VendorProfile
	contacts  map[string]domain.VendorContact
}

func NewStore() *Store {
	return &Store{
		users:      make(map[string]domain.User),
		byEmail:    make(map[string]string),
		byUsername: make(map[string]string),
		customers:  make(map[string]domain.CustomerProfile),
		vendors:    make(map[string]domain.VendorProfile),
		contacts:   make(map[string]domain.VendorContact),
	}
}

func (s *Store) Users() *UserRepo       { return &UserRepo{store: s} }
func (s *Store) Profiles() *ProfileRepo { return &ProfileRepo{store: s} }

// Customer returns the stored customer profile for a user id, if any.
func (s *Store) Customer(id string) (domain.CustomerProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.customers[id]
	return p, ok
}

// Vendor returns the stored vendor profile for a user id, if any.
func (s *Store) Vendor(id string) (domain.VendorProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.vendors[id]
	return p, ok
}

// VendorContact returns the stored vendor contact for a user id, if any.
func (s *Store) VendorContact(id string) (domain.VendorContact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.contacts[id]
	return c, ok
}

// UserCount reports the number of stored users.
func (s *Store) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
