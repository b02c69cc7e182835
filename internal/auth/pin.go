package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/splitlite/internal/models"
)

// MaxPINLength bounds the PIN; bcrypt ignores input past 72 bytes.
const MaxPINLength = 72

var (
	ErrWrongPIN   = errors.New("wrong PIN")
	ErrInvalidPIN = errors.New("PIN must be at most 72 bytes")
	ErrEmptyName  = errors.New("display name is required")
)

// GroupStorage defines the persistence the authenticator needs.
// storage.Store satisfies it.
type GroupStorage interface {
	GetGroupByCode(ctx context.Context, code string) (*models.Group, error)
	AddMember(ctx context.Context, member *models.Member) error
}

// PINAuthenticator implements group entry guarded by an optional bcrypt-hashed PIN.
type PINAuthenticator struct {
	storage GroupStorage
	cost    int
}

// NewPINAuthenticator creates a new PIN-based authenticator.
func NewPINAuthenticator(storage GroupStorage) *PINAuthenticator {
	return &PINAuthenticator{
		storage: storage,
		cost:    bcrypt.DefaultCost,
	}
}

// ValidateCredential checks the PIN length. An empty PIN is valid and means
// the group is open to anyone with the code.
func (a *PINAuthenticator) ValidateCredential(pin string) error {
	if len(strings.TrimSpace(pin)) > MaxPINLength {
		return ErrInvalidPIN
	}
	return nil
}

// HashCredential hashes a trimmed PIN with bcrypt.
func (a *PINAuthenticator) HashCredential(pin string) (string, error) {
	pin = strings.TrimSpace(pin)
	if pin == "" {
		return "", nil
	}
	if err := a.ValidateCredential(pin); err != nil {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), a.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash PIN: %w", err)
	}
	return string(hashed), nil
}

// Join looks the group up by code, checks the PIN when the group has one and
// adds a new member. Lookup errors are returned wrapped so callers can tell a
// missing group from a wrong PIN.
func (a *PINAuthenticator) Join(ctx context.Context, code, pin, displayName string) (*models.Group, *models.Member, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, nil, ErrEmptyName
	}

	group, err := a.storage.GetGroupByCode(ctx, code)
	if err != nil {
		return nil, nil, err
	}

	if group.HasPIN() {
		if err := bcrypt.CompareHashAndPassword([]byte(group.PINHash), []byte(strings.TrimSpace(pin))); err != nil {
			return nil, nil, ErrWrongPIN
		}
	}

	member := &models.Member{GroupID: group.ID, DisplayName: displayName}
	if err := a.storage.AddMember(ctx, member); err != nil {
		return nil, nil, fmt.Errorf("failed to add member: %w", err)
	}

	return group, member, nil
}
