package models

import (
	"fmt"
	"strings"

	"github.com/mmynk/splitlite/internal/money"
)

// SplitKind tags how an expense was divided.
type SplitKind string

const (
	SplitKindEqual  SplitKind = "equal"
	SplitKindCustom SplitKind = "custom"
)

// ParseSplitKind accepts "equal" or "custom" in any case.
func ParseSplitKind(s string) (SplitKind, error) {
	switch SplitKind(strings.ToLower(strings.TrimSpace(s))) {
	case SplitKindEqual, "":
		return SplitKindEqual, nil
	case SplitKindCustom:
		return SplitKindCustom, nil
	default:
		return "", fmt.Errorf("unknown split kind: %q", s)
	}
}

// DateLayout is the storage and wire format of Expense.Date.
const DateLayout = "2006-01-02"

// Expense is one payment made by a member on behalf of the group.
// It is immutable once created; it can only be deleted together with its splits.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group this expense belongs to.
	GroupID string

	// PayerID is the member who paid.
	PayerID string

	// Description is a short label (e.g., "Dinner").
	Description string

	// Amount is the total paid, always positive.
	Amount money.Amount

	// SplitKind records whether shares were equal or weighted.
	SplitKind SplitKind

	// Date is the calendar date of the expense in DateLayout.
	Date string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// Split is one participant's share of an expense.
// For every expense the shares of its splits sum to Expense.Amount.
type Split struct {
	ExpenseID string
	MemberID  string
	Share     money.Amount
}

// Snapshot is an internally consistent read of one group's ledger.
type Snapshot struct {
	GroupID  string
	Members  []Member
	Expenses []Expense
	Splits   []Split
}

// MemberIDs returns member ids in join order.
func (s *Snapshot) MemberIDs() []string {
	ids := make([]string, len(s.Members))
	for i, m := range s.Members {
		ids[i] = m.ID
	}
	return ids
}

// MemberNames maps member id to display name.
func (s *Snapshot) MemberNames() map[string]string {
	names := make(map[string]string, len(s.Members))
	for _, m := range s.Members {
		names[m.ID] = m.DisplayName
	}
	return names
}

// SplitsByExpense groups splits by their expense id, preserving order.
func (s *Snapshot) SplitsByExpense() map[string][]Split {
	out := make(map[string][]Split, len(s.Expenses))
	for _, sp := range s.Splits {
		out[sp.ExpenseID] = append(out[sp.ExpenseID], sp)
	}
	return out
}
