package calculator

import (
	"container/heap"

	"github.com/mmynk/splitlite/internal/money"
)

// Transfer is a single payment that moves both parties toward zero.
type Transfer struct {
	From   string // Debtor paying
	To     string // Creditor receiving
	Amount money.Amount
}

// party is a member with an outstanding magnitude still to settle.
type party struct {
	memberID  string
	remaining money.Amount // always positive
}

// partyHeap is a max-heap by remaining, ties by member id ascending.
type partyHeap []party

func (h partyHeap) Len() int { return len(h) }
func (h partyHeap) Less(i, j int) bool {
	if h[i].remaining != h[j].remaining {
		return h[i].remaining > h[j].remaining
	}
	return h[i].memberID < h[j].memberID
}
func (h partyHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *partyHeap) Push(x any)   { *h = append(*h, x.(party)) }
func (h *partyHeap) Pop() any {
	old := *h
	n := len(old)
	p := old[n-1]
	*h = old[:n-1]
	return p
}

// Settle computes a short list of transfers that brings every net position to
// zero. Nets must sum to zero, which ComputeNetPositions guarantees.
//
// Greedy: the largest creditor and the largest debtor are matched for the
// smaller of their two magnitudes and whoever is left non-zero goes back in.
// Each round clears at least one party, so the result has at most
// (non-zero members - 1) transfers. Equal magnitudes are taken in member id
// order so the output is reproducible. Transfers come out largest debtor
// first, so debts of 300 and 200 owed to one creditor list the 300 payment
// before the 200 one.
func Settle(nets map[string]money.Amount) []Transfer {
	creditors := &partyHeap{}
	debtors := &partyHeap{}
	for id, net := range nets {
		switch {
		case net > 0:
			*creditors = append(*creditors, party{memberID: id, remaining: net})
		case net < 0:
			*debtors = append(*debtors, party{memberID: id, remaining: -net})
		}
	}
	heap.Init(creditors)
	heap.Init(debtors)

	transfers := []Transfer{}
	for creditors.Len() > 0 && debtors.Len() > 0 {
		c := heap.Pop(creditors).(party)
		d := heap.Pop(debtors).(party)

		amount := min(c.remaining, d.remaining)
		transfers = append(transfers, Transfer{From: d.memberID, To: c.memberID, Amount: amount})

		c.remaining -= amount
		d.remaining -= amount
		if c.remaining > 0 {
			heap.Push(creditors, c)
		}
		if d.remaining > 0 {
			heap.Push(debtors, d)
		}
	}

	return transfers
}

// ApplyTransfers replays transfers against nets and returns the resulting positions.
// Paying moves the debtor up and the creditor down by the same amount.
func ApplyTransfers(nets map[string]money.Amount, transfers []Transfer) map[string]money.Amount {
	out := make(map[string]money.Amount, len(nets))
	for id, net := range nets {
		out[id] = net
	}
	for _, t := range transfers {
		out[t.From] += t.Amount
		out[t.To] -= t.Amount
	}
	return out
}
