// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/splitlite/internal/models"
)

var (
	// ErrNotFound is returned when a group, member or expense does not exist.
	ErrNotFound = errors.New("not found")

	// ErrMemberHasActivity is returned when removing a member that paid for or
	// shares in any expense. Past expenses keep their member references, so such
	// members stay.
	ErrMemberHasActivity = errors.New("member has recorded expenses")
)

// Store defines the collaborator interface the ledger core reads from and
// writes through. This abstraction allows swapping storage backends (SQLite,
// PostgreSQL) without changing the service layer.
type Store interface {
	// CreateGroup persists a new group. ID, Code and CreatedAt are assigned by
	// the store when empty; a fresh code is drawn until it is unique.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group by ID.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// GetGroupByCode retrieves a group by its join code.
	GetGroupByCode(ctx context.Context, code string) (*models.Group, error)

	// AddMember persists a new member. ID and CreatedAt are assigned when empty.
	AddMember(ctx context.Context, member *models.Member) error

	// GetMember retrieves a member by ID.
	GetMember(ctx context.Context, memberID string) (*models.Member, error)

	// RemoveMember deletes a member with no expense activity.
	RemoveMember(ctx context.Context, memberID string) error

	// LoadMembers returns a group's members in join order.
	LoadMembers(ctx context.Context, groupID string) ([]models.Member, error)

	// LoadExpenses returns a group's expenses, newest first.
	LoadExpenses(ctx context.Context, groupID string) ([]models.Expense, error)

	// LoadSplits returns the splits of all of a group's expenses.
	LoadSplits(ctx context.Context, groupID string) ([]models.Split, error)

	// LoadSnapshot reads members, expenses and splits of a group in one transaction.
	LoadSnapshot(ctx context.Context, groupID string) (*models.Snapshot, error)

	// CreateExpenseWithSplits stores an expense and all of its splits atomically
	// and returns the expense ID. The expense.ID field is populated by the store.
	CreateExpenseWithSplits(ctx context.Context, expense *models.Expense, splits []models.Split) (string, error)

	// GetExpense retrieves an expense by ID.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// DeleteExpenseCascade removes an expense together with its splits.
	DeleteExpenseCascade(ctx context.Context, expenseID string) error

	// Close releases any resources held by the store.
	Close() error
}
