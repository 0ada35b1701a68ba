package domain

// User is the root account record. Email and username are each unique
// across all users; the store assigns the id.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    string

	// Vendors holds linked vendor rows when the user was loaded with its
	// vendor embed (login lookup). Empty otherwise.
	Vendors []VendorRef
}

// VendorRef is the slim vendor projection returned alongside a user.
type VendorRef struct {
	ID           string
	BusinessName string
}

// UserIdentity is the projection used by the uniqueness pre-check.
type UserIdentity struct {
	Email    string
	Username string
}

// NewUser is the payload for creating a user row. The store generates
// the id and echoes it back.
type NewUser struct {
	Email        string
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    string
}
