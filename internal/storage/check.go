package storage

import (
	"errors"
	"fmt"

	"github.com/mmynk/splitlite/internal/models"
	"github.com/mmynk/splitlite/internal/money"
)

// ErrInvalidExpense is returned when an expense and its splits break the
// per-expense invariants and are refused before any write.
var ErrInvalidExpense = errors.New("invalid expense")

// CheckSplits verifies that an expense is positive and that its splits name
// each member once and sum exactly to the expense amount.
func CheckSplits(expense *models.Expense, splits []models.Split) error {
	if !expense.Amount.IsPositive() {
		return fmt.Errorf("%w: amount %d is not positive", ErrInvalidExpense, expense.Amount)
	}
	if len(splits) == 0 {
		return fmt.Errorf("%w: no splits", ErrInvalidExpense)
	}

	seen := make(map[string]bool, len(splits))
	var sum money.Amount
	for _, sp := range splits {
		if seen[sp.MemberID] {
			return fmt.Errorf("%w: member %s split twice", ErrInvalidExpense, sp.MemberID)
		}
		if sp.Share < 0 {
			return fmt.Errorf("%w: negative share for %s", ErrInvalidExpense, sp.MemberID)
		}
		seen[sp.MemberID] = true
		sum += sp.Share
	}
	if sum != expense.Amount {
		return fmt.Errorf("%w: splits sum to %d, amount is %d", ErrInvalidExpense, sum, expense.Amount)
	}
	return nil
}
