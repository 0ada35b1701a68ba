package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/aishki/bazario/internal/domain"
)

// createdAtFormat is the wall-clock timestamp format the store expects on
// every insert.
const createdAtFormat = "2006-01-02 15:04:05"

// tokenBytes is the size of the opaque login token before hex encoding.
const tokenBytes = 32

type Service struct {
	users    UserRepo
	profiles ProfileRepo
	hasher   PasswordHasher

	now func() time.Time
}

func NewService(users UserRepo, profiles ProfileRepo, hasher PasswordHasher) *Service {
	return &Service{
		users:    users,
		profiles: profiles,
		hasher:   hasher,
		now:      time.Now,
	}
}

// WithClock overrides the wall clock, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// LoginResult is the login output for handler/DTO mapping.
type LoginResult struct {
	User  domain.User
	Token string
	// Vendor is set only when the user is a vendor with a linked vendor row.
	Vendor *domain.VendorRef
}

// RegisterResult is the registration output for handler/DTO mapping.
type RegisterResult struct {
	UserID string
	Role   string
	// Vendor echoes the vendor identity and business name for vendor
	// registrations, regardless of the secondary-write outcome.
	Vendor *domain.VendorRef

	// ProfileErr records a failed secondary profile write. It is non-fatal:
	// the caller logs it and still reports the registration as successful.
	ProfileErr error
}

// newOpaqueToken returns a hex-encoded random token. It carries no claims
// and is never persisted or validated anywhere.
func newOpaqueToken(bytesLen int) (string, error) {
	if bytesLen <= 0 {
		return "", errors.New("invalid token length")
	}
	b := make([]byte, bytesLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// asDomainError passes structured errors through and wraps anything else
// as a store failure.
func asDomainError(err error) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	return domain.ErrStoreFailure(err)
}
