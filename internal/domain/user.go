package domain

import "github.com/google/uuid"

// Identity is what the identity provider knows about a user.
type Identity struct {
	UserID      uuid.UUID
	Email       string
	DisplayName string
}

// Snapshot returns the identity as an owner snapshot.
func (i Identity) Snapshot() OwnerSnapshot {
	return OwnerSnapshot{UserID: i.UserID, DisplayName: i.DisplayName}
}

// Actor is the administrator performing an action.
type Actor struct {
	ID          uuid.UUID
	DisplayName string
	Role        UserRole
}
