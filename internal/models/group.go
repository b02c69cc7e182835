package models

// Group is a shared expense pool that members join by code.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Code is the short join code (6 characters, A-Z and 0-9), unique across groups.
	Code string

	// Name is the display name of the group (e.g., "Goa Oct 2025").
	Name string

	// PINHash is the bcrypt hash of the optional group PIN.
	// Empty when the group has no PIN.
	PINHash string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// HasPIN reports whether joining the group requires a PIN.
func (g *Group) HasPIN() bool {
	return g.PINHash != ""
}

// Member is a person who joined a group.
// Members are never mutated after creation.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string

	// GroupID is the group this member belongs to.
	GroupID string

	// DisplayName is the name the member entered on join.
	DisplayName string

	// CreatedAt is the Unix timestamp when the member joined.
	// Members are listed in join order.
	CreatedAt int64
}
