package auth

import (
	"context"

	"github.com/mmynk/splitlite/internal/models"
)

// Authenticator defines how a person enters a group.
// Joining is a shared-secret check: whoever knows the code (and PIN, when
// set) may add themselves as a member. There are no user accounts.
type Authenticator interface {
	// Join verifies the PIN of the group with the given code and adds a new
	// member with the given display name.
	Join(ctx context.Context, code, pin, displayName string) (*models.Group, *models.Member, error)

	// HashCredential prepares a PIN for storage. An empty PIN yields an empty hash.
	HashCredential(pin string) (string, error)

	// ValidateCredential checks if the PIN meets the implementation's requirements.
	ValidateCredential(pin string) error
}
