package calculator

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"

	"github.com/mmynk/splitlite/internal/models"
	"github.com/mmynk/splitlite/internal/money"
)

var (
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrInvalidWeight        = errors.New("weights cannot be negative")
	ErrNoParticipants       = errors.New("at least one participant is required")
	ErrWeightCountMismatch  = errors.New("weight count must match participant count")
	ErrDuplicateParticipant = errors.New("participant listed more than once")
)

// Share is one participant's allocated part of an expense.
type Share struct {
	MemberID string
	Amount   money.Amount
}

// AllocateEqual divides total into n parts that differ by at most one unit.
// The first total%n parts (in order) receive the extra unit.
func AllocateEqual(total money.Amount, n int) ([]money.Amount, error) {
	if total <= 0 {
		return nil, ErrInvalidAmount
	}
	if n <= 0 {
		return nil, ErrNoParticipants
	}

	base := total / money.Amount(n)
	remainder := int(total % money.Amount(n))

	shares := make([]money.Amount, n)
	for i := range shares {
		shares[i] = base
		if i < remainder {
			shares[i]++
		}
	}
	return shares, nil
}

// Allocate divides total proportionally to weights using the largest-remainder
// method. Each share starts at floor(total*w/sum(w)); the leftover units go one
// each to the largest fractional remainders, ties broken by input order.
// All-zero weights fall back to AllocateEqual.
func Allocate(total money.Amount, weights []int64) ([]money.Amount, error) {
	if total <= 0 {
		return nil, ErrInvalidAmount
	}
	if len(weights) == 0 {
		return nil, ErrNoParticipants
	}

	var weightSum uint64
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: weight %d is %d", ErrInvalidWeight, i, w)
		}
		var carry uint64
		weightSum, carry = bits.Add64(weightSum, uint64(w), 0)
		if carry != 0 || weightSum > 1<<63-1 {
			return nil, fmt.Errorf("%w: weight sum overflows", ErrInvalidWeight)
		}
	}
	if weightSum == 0 {
		return AllocateEqual(total, len(weights))
	}

	shares := make([]money.Amount, len(weights))
	remainders := make([]uint64, len(weights))
	allocated := money.Zero
	for i, w := range weights {
		// total*w fits in 128 bits and the quotient is <= total, so Div64 cannot overflow.
		hi, lo := bits.Mul64(uint64(total), uint64(w))
		quo, rem := bits.Div64(hi, lo, weightSum)
		shares[i] = money.Amount(quo)
		remainders[i] = rem
		allocated += shares[i]
	}

	leftover := int(total - allocated)
	if leftover == 0 {
		return shares, nil
	}

	order := make([]int, len(weights))
	for i := range order {
		order[i] = i
	}
	// All remainders share the denominator weightSum, so comparing numerators is exact.
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})
	for _, idx := range order[:leftover] {
		shares[idx]++
	}

	return shares, nil
}

// SplitExpense allocates total among participants according to kind.
// Equal splits ignore weights; custom splits need one weight per participant.
func SplitExpense(total money.Amount, kind models.SplitKind, participants []string, weights []int64) ([]Share, error) {
	if total <= 0 {
		return nil, ErrInvalidAmount
	}
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	seen := make(map[string]bool, len(participants))
	for _, p := range participants {
		if seen[p] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateParticipant, p)
		}
		seen[p] = true
	}

	var (
		amounts []money.Amount
		err     error
	)
	switch kind {
	case models.SplitKindEqual:
		amounts, err = AllocateEqual(total, len(participants))
	case models.SplitKindCustom:
		if len(weights) != len(participants) {
			return nil, fmt.Errorf("%w: %d participants, %d weights", ErrWeightCountMismatch, len(participants), len(weights))
		}
		amounts, err = Allocate(total, weights)
	default:
		return nil, fmt.Errorf("unknown split kind: %q", kind)
	}
	if err != nil {
		return nil, err
	}

	shares := make([]Share, len(participants))
	for i, p := range participants {
		shares[i] = Share{MemberID: p, Amount: amounts[i]}
	}
	return shares, nil
}
