package api

// Share is one member's portion of an expense, in minor units.
type Share struct {
	MemberID  string `json:"member_id"`
	Amount    int64  `json:"amount"`
	Formatted string `json:"formatted"`
}

type Expense struct {
	ID          string   `json:"id"`
	GroupID     string   `json:"group_id"`
	PayerID     string   `json:"payer_id"`
	PayerName   string   `json:"payer_name"`
	Description string   `json:"description"`
	Amount      int64    `json:"amount"`
	Formatted   string   `json:"formatted"`
	SplitKind   string   `json:"split_kind"`
	Date        string   `json:"date"`
	CreatedAt   int64    `json:"created_at"`
	Splits      []*Share `json:"splits"`
}

// PreviewSplitRequest asks for the shares of an amount without storing anything.
// Amount is a decimal string in major units, e.g. "900.50".
type PreviewSplitRequest struct {
	GroupID        string   `json:"group_id"`
	Amount         string   `json:"amount"`
	SplitKind      string   `json:"split_kind"`
	ParticipantIDs []string `json:"participant_ids"`
	Weights        []int64  `json:"weights,omitempty"`
}

type PreviewSplitResponse struct {
	Amount int64    `json:"amount"`
	Shares []*Share `json:"shares"`
}

type AddExpenseRequest struct {
	GroupID        string   `json:"group_id"`
	PayerID        string   `json:"payer_id"`
	Description    string   `json:"description"`
	Amount         string   `json:"amount"`
	Date           string   `json:"date,omitempty"`
	SplitKind      string   `json:"split_kind"`
	ParticipantIDs []string `json:"participant_ids"`
	Weights        []int64  `json:"weights,omitempty"`
}

type AddExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type ListExpensesRequest struct {
	GroupID string `json:"group_id"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type DeleteExpenseRequest struct {
	ExpenseID string `json:"expense_id"`
}

type DeleteExpenseResponse struct{}

// Balance is one member's standing in the group.
// Net is positive when the member is owed money.
type Balance struct {
	MemberID    string `json:"member_id"`
	DisplayName string `json:"display_name"`
	Paid        int64  `json:"paid"`
	Owed        int64  `json:"owed"`
	Net         int64  `json:"net"`
	Status      string `json:"status"`
	Formatted   string `json:"formatted"`
}

type GetBalancesRequest struct {
	GroupID string `json:"group_id"`
}

type GetBalancesResponse struct {
	Balances []*Balance `json:"balances"`
}

// Transfer is one payment of the settlement plan: From pays To.
type Transfer struct {
	FromID    string `json:"from_id"`
	FromName  string `json:"from_name"`
	ToID      string `json:"to_id"`
	ToName    string `json:"to_name"`
	Amount    int64  `json:"amount"`
	Formatted string `json:"formatted"`
}

type GetSettlementRequest struct {
	GroupID string `json:"group_id"`
}

type GetSettlementResponse struct {
	Transfers  []*Transfer `json:"transfers"`
	AllSettled bool        `json:"all_settled"`
}
