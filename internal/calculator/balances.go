package calculator

import (
	"errors"
	"fmt"

	"github.com/mmynk/splitlite/internal/money"
)

// ErrDataIntegrity marks a ledger snapshot that references members or expenses
// it does not contain, or whose splits do not add up. It indicates a caller bug.
var ErrDataIntegrity = errors.New("ledger data integrity fault")

// ExpenseForBalance is an expense with the minimal information needed for balance calculations.
type ExpenseForBalance struct {
	ID      string
	PayerID string
	Amount  money.Amount
}

// SplitForBalance is a split with the minimal information needed for balance calculations.
type SplitForBalance struct {
	ExpenseID string
	MemberID  string
	Share     money.Amount
}

// Status describes which way a member's net position points.
type Status string

const (
	StatusToReceive Status = "to receive"
	StatusToPay     Status = "to pay"
	StatusSettled   Status = "settled"
)

// StatusOf classifies a net position.
func StatusOf(net money.Amount) Status {
	switch {
	case net > 0:
		return StatusToReceive
	case net < 0:
		return StatusToPay
	default:
		return StatusSettled
	}
}

// MemberBalance represents the balance information for one group member.
type MemberBalance struct {
	MemberID string
	Paid     money.Amount // Sum of expenses this member paid
	Owed     money.Amount // Sum of this member's shares
	Net      money.Amount // Paid - Owed; positive = to receive, negative = to pay
	Status   Status
}

// ComputeNetPositions returns paid minus owed for every member.
// Members with no activity are present with zero.
func ComputeNetPositions(memberIDs []string, expenses []ExpenseForBalance, splits []SplitForBalance) (map[string]money.Amount, error) {
	balances, err := CalculateMemberBalances(memberIDs, expenses, splits)
	if err != nil {
		return nil, err
	}
	nets := make(map[string]money.Amount, len(balances))
	for _, b := range balances {
		nets[b.MemberID] = b.Net
	}
	return nets, nil
}

// CalculateMemberBalances aggregates expenses and splits into per-member
// balances, returned in the order of memberIDs.
//
// Algorithm:
//   - every member starts at zero
//   - each expense adds its amount to the payer's paid total
//   - each split adds its share to that member's owed total
//   - net = paid - owed
//
// The input is checked for references to unknown members or expenses,
// duplicate splits and expenses whose shares do not sum to the amount.
func CalculateMemberBalances(memberIDs []string, expenses []ExpenseForBalance, splits []SplitForBalance) ([]MemberBalance, error) {
	index := make(map[string]int, len(memberIDs))
	balances := make([]MemberBalance, len(memberIDs))
	for i, id := range memberIDs {
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("%w: member %s listed twice", ErrDataIntegrity, id)
		}
		index[id] = i
		balances[i] = MemberBalance{MemberID: id}
	}

	amounts := make(map[string]money.Amount, len(expenses))
	for _, e := range expenses {
		if _, dup := amounts[e.ID]; dup {
			return nil, fmt.Errorf("%w: expense %s listed twice", ErrDataIntegrity, e.ID)
		}
		i, ok := index[e.PayerID]
		if !ok {
			return nil, fmt.Errorf("%w: expense %s paid by unknown member %s", ErrDataIntegrity, e.ID, e.PayerID)
		}
		amounts[e.ID] = e.Amount
		balances[i].Paid += e.Amount
	}

	shared := make(map[string]money.Amount, len(expenses))
	seen := make(map[[2]string]bool, len(splits))
	for _, s := range splits {
		if _, ok := amounts[s.ExpenseID]; !ok {
			return nil, fmt.Errorf("%w: split references unknown expense %s", ErrDataIntegrity, s.ExpenseID)
		}
		i, ok := index[s.MemberID]
		if !ok {
			return nil, fmt.Errorf("%w: expense %s split to unknown member %s", ErrDataIntegrity, s.ExpenseID, s.MemberID)
		}
		key := [2]string{s.ExpenseID, s.MemberID}
		if seen[key] {
			return nil, fmt.Errorf("%w: expense %s has two splits for member %s", ErrDataIntegrity, s.ExpenseID, s.MemberID)
		}
		seen[key] = true
		shared[s.ExpenseID] += s.Share
		balances[i].Owed += s.Share
	}

	for _, e := range expenses {
		if shared[e.ID] != e.Amount {
			return nil, fmt.Errorf("%w: expense %s shares sum to %d, amount is %d",
				ErrDataIntegrity, e.ID, shared[e.ID], e.Amount)
		}
	}

	for i := range balances {
		balances[i].Net = balances[i].Paid - balances[i].Owed
		balances[i].Status = StatusOf(balances[i].Net)
	}
	return balances, nil
}
