package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/splitlite/internal/models"
)

type memGroups struct {
	groups  map[string]*models.Group
	members []*models.Member
}

var errNoGroup = errors.New("no such group")

func (m *memGroups) GetGroupByCode(ctx context.Context, code string) (*models.Group, error) {
	g, ok := m.groups[strings.ToUpper(code)]
	if !ok {
		return nil, errNoGroup
	}
	return g, nil
}

func (m *memGroups) AddMember(ctx context.Context, member *models.Member) error {
	member.ID = "m" + string(rune('0'+len(m.members)))
	m.members = append(m.members, member)
	return nil
}

func newTestAuthenticator(t *testing.T) (*PINAuthenticator, *memGroups) {
	t.Helper()
	store := &memGroups{groups: map[string]*models.Group{}}
	a := NewPINAuthenticator(store)
	a.cost = bcrypt.MinCost

	hash, err := a.HashCredential(" 4321 ")
	if err != nil {
		t.Fatalf("HashCredential failed: %v", err)
	}
	store.groups["LOCKED"] = &models.Group{ID: "g1", Code: "LOCKED", Name: "Goa", PINHash: hash}
	store.groups["OPEN01"] = &models.Group{ID: "g2", Code: "OPEN01", Name: "Flat"}
	return a, store
}

func TestPINAuthenticatorJoin(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		code    string
		pin     string
		display string
		wantErr error
	}{
		{name: "correct PIN", code: "LOCKED", pin: "4321", display: "Ravi"},
		{name: "PIN is trimmed", code: "locked", pin: " 4321\n", display: "Asha"},
		{name: "wrong PIN", code: "LOCKED", pin: "1234", display: "Ravi", wantErr: ErrWrongPIN},
		{name: "missing PIN", code: "LOCKED", display: "Ravi", wantErr: ErrWrongPIN},
		{name: "open group ignores PIN", code: "OPEN01", pin: "anything", display: "Bilal"},
		{name: "blank name", code: "OPEN01", display: "   ", wantErr: ErrEmptyName},
		{name: "unknown code", code: "NOPE00", display: "Ravi", wantErr: errNoGroup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, store := newTestAuthenticator(t)
			group, member, err := a.Join(ctx, tt.code, tt.pin, tt.display)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Join() error = %v, want %v", err, tt.wantErr)
				}
				if len(store.members) != 0 {
					t.Errorf("member added despite error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Join() unexpected error: %v", err)
			}
			if member.GroupID != group.ID {
				t.Errorf("member group %q, want %q", member.GroupID, group.ID)
			}
			if member.DisplayName != strings.TrimSpace(tt.display) {
				t.Errorf("display name %q not trimmed", member.DisplayName)
			}
		})
	}
}

func TestHashCredential(t *testing.T) {
	a, _ := newTestAuthenticator(t)

	hash, err := a.HashCredential("   ")
	if err != nil || hash != "" {
		t.Errorf("blank PIN: got (%q, %v), want empty hash", hash, err)
	}

	if _, err := a.HashCredential(strings.Repeat("9", MaxPINLength+1)); !errors.Is(err, ErrInvalidPIN) {
		t.Errorf("long PIN: got %v, want ErrInvalidPIN", err)
	}

	hash, err = a.HashCredential("2580")
	if err != nil {
		t.Fatalf("HashCredential failed: %v", err)
	}
	if hash == "2580" || bcrypt.CompareHashAndPassword([]byte(hash), []byte("2580")) != nil {
		t.Errorf("hash %q does not verify", hash)
	}
}

func TestJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	member := &models.Member{ID: "m1", GroupID: "g1"}

	token, err := manager.Generate(member)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	t.Run("round trip", func(t *testing.T) {
		claims, err := manager.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if claims.MemberID != "m1" || claims.GroupID != "g1" {
			t.Errorf("unexpected claims: %+v", claims)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("got %v, want ErrInvalidToken", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Minute)
		old, err := expired.Generate(member)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := manager.Validate(old); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("got %v, want ErrInvalidToken", err)
		}
	})

	t.Run("missing group claim", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{MemberID: "m1"})
		signed, err := raw.SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("SignedString failed: %v", err)
		}
		if _, err := manager.Validate(signed); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("got %v, want ErrInvalidToken", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := manager.Validate("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("got %v, want ErrInvalidToken", err)
		}
	})
}
