package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/splitlite/internal/calculator"
	"github.com/mmynk/splitlite/internal/models"
	"github.com/mmynk/splitlite/internal/money"
	"github.com/mmynk/splitlite/internal/storage"
	"github.com/mmynk/splitlite/pkg/api"
	"github.com/mmynk/splitlite/pkg/api/apiconnect"
)

// ExpenseService implements the Connect ExpenseService: recording expenses
// and reading balances and the settlement plan of a group.
type ExpenseService struct {
	apiconnect.UnimplementedExpenseServiceHandler
	store  storage.Store
	symbol string
	logger *slog.Logger
	now    func() time.Time
}

// NewExpenseService creates a new ExpenseService. symbol is the currency
// symbol used in formatted amounts; empty means money.DefaultSymbol.
func NewExpenseService(store storage.Store, symbol string, logger *slog.Logger) *ExpenseService {
	if symbol == "" {
		symbol = money.DefaultSymbol
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ExpenseService{store: store, symbol: symbol, logger: logger, now: time.Now}
}

// splitRequest holds the fields PreviewSplit and AddExpense share.
type splitRequest struct {
	amount       string
	kind         string
	participants []string
	weights      []int64
}

// computeShares validates a split request against the group's members and
// allocates it. Errors are connect errors.
func (s *ExpenseService) computeShares(members []models.Member, req splitRequest) (money.Amount, []calculator.Share, error) {
	total, err := money.Parse(req.amount)
	if err != nil {
		return 0, nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	kind, err := models.ParseSplitKind(req.kind)
	if err != nil {
		return 0, nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	known := make(map[string]bool, len(members))
	for _, m := range members {
		known[m.ID] = true
	}
	for _, p := range req.participants {
		if !known[p] {
			return 0, nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("participant %q is not a member of this group", p))
		}
	}

	shares, err := calculator.SplitExpense(total, kind, req.participants, req.weights)
	if err != nil {
		return 0, nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	return total, shares, nil
}

// PreviewSplit shows how an amount would be divided without storing anything.
func (s *ExpenseService) PreviewSplit(ctx context.Context, req *connect.Request[api.PreviewSplitRequest]) (*connect.Response[api.PreviewSplitResponse], error) {
	if err := authorizeGroup(ctx, s.store, req.Msg.GroupID); err != nil {
		return nil, err
	}

	members, err := s.store.LoadMembers(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, storeError(err)
	}

	total, shares, err := s.computeShares(members, splitRequest{
		amount:       req.Msg.Amount,
		kind:         req.Msg.SplitKind,
		participants: req.Msg.ParticipantIDs,
		weights:      req.Msg.Weights,
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.PreviewSplitResponse{
		Amount: total.Minor(),
		Shares: toAPIShares(shares, s.symbol),
	}), nil
}

// AddExpense records an expense and its splits.
func (s *ExpenseService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	s.logger.Info("AddExpense request received",
		"group_id", req.Msg.GroupID,
		"payer_id", req.Msg.PayerID,
		"amount", req.Msg.Amount,
		"split_kind", req.Msg.SplitKind,
		"participants_count", len(req.Msg.ParticipantIDs),
	)

	if err := authorizeGroup(ctx, s.store, req.Msg.GroupID); err != nil {
		return nil, err
	}

	description := strings.TrimSpace(req.Msg.Description)
	if description == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("description required"))
	}

	date := strings.TrimSpace(req.Msg.Date)
	if date == "" {
		date = s.now().Format(models.DateLayout)
	} else if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("date must be YYYY-MM-DD: %q", date))
	}

	members, err := s.store.LoadMembers(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, storeError(err)
	}

	payerKnown := false
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.DisplayName
		if m.ID == req.Msg.PayerID {
			payerKnown = true
		}
	}
	if !payerKnown {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("payer %q is not a member of this group", req.Msg.PayerID))
	}

	total, shares, err := s.computeShares(members, splitRequest{
		amount:       req.Msg.Amount,
		kind:         req.Msg.SplitKind,
		participants: req.Msg.ParticipantIDs,
		weights:      req.Msg.Weights,
	})
	if err != nil {
		s.logger.Warn("AddExpense rejected", "group_id", req.Msg.GroupID, "error", err)
		return nil, err
	}

	kind, _ := models.ParseSplitKind(req.Msg.SplitKind)
	expense := &models.Expense{
		GroupID:     req.Msg.GroupID,
		PayerID:     req.Msg.PayerID,
		Description: description,
		Amount:      total,
		SplitKind:   kind,
		Date:        date,
	}
	splits := make([]models.Split, len(shares))
	for i, share := range shares {
		splits[i] = models.Split{MemberID: share.MemberID, Share: share.Amount}
	}

	if _, err := s.store.CreateExpenseWithSplits(ctx, expense, splits); err != nil {
		s.logger.Error("AddExpense failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, storeError(err)
	}

	s.logger.Info("Expense added", "group_id", expense.GroupID, "expense_id", expense.ID, "amount", total.Minor())

	return connect.NewResponse(&api.AddExpenseResponse{
		Expense: toAPIExpense(expense, splits, names, s.symbol),
	}), nil
}

// ListExpenses returns the group's expenses with their splits, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	if err := authorizeGroup(ctx, s.store, req.Msg.GroupID); err != nil {
		return nil, err
	}

	snap, err := s.store.LoadSnapshot(ctx, req.Msg.GroupID)
	if err != nil {
		s.logger.Error("ListExpenses failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, storeError(err)
	}

	names := snap.MemberNames()
	byExpense := snap.SplitsByExpense()
	out := make([]*api.Expense, len(snap.Expenses))
	for i := range snap.Expenses {
		e := &snap.Expenses[i]
		out[i] = toAPIExpense(e, byExpense[e.ID], names, s.symbol)
	}

	return connect.NewResponse(&api.ListExpensesResponse{Expenses: out}), nil
}

// DeleteExpense removes an expense and its splits.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	s.logger.Info("DeleteExpense request received", "expense_id", req.Msg.ExpenseID)

	if req.Msg.ExpenseID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("expense_id required"))
	}

	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseID)
	if err != nil {
		return nil, storeError(err)
	}
	if err := authorizeGroup(ctx, s.store, expense.GroupID); err != nil {
		return nil, err
	}

	if err := s.store.DeleteExpenseCascade(ctx, expense.ID); err != nil {
		s.logger.Error("DeleteExpense failed", "expense_id", expense.ID, "error", err)
		return nil, storeError(err)
	}

	s.logger.Info("Expense deleted", "group_id", expense.GroupID, "expense_id", expense.ID)

	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}

// GetBalances returns paid, owed and net for every member in join order.
func (s *ExpenseService) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	if err := authorizeGroup(ctx, s.store, req.Msg.GroupID); err != nil {
		return nil, err
	}

	snap, err := s.store.LoadSnapshot(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, storeError(err)
	}

	memberIDs, expenses, splits := ledgerInputs(snap)
	balances, err := calculator.CalculateMemberBalances(memberIDs, expenses, splits)
	if err != nil {
		return nil, s.ledgerError(req.Msg.GroupID, err)
	}

	names := snap.MemberNames()
	out := make([]*api.Balance, len(balances))
	for i, b := range balances {
		out[i] = &api.Balance{
			MemberID:    b.MemberID,
			DisplayName: names[b.MemberID],
			Paid:        b.Paid.Minor(),
			Owed:        b.Owed.Minor(),
			Net:         b.Net.Minor(),
			Status:      string(b.Status),
			Formatted:   b.Net.Format(s.symbol),
		}
	}

	return connect.NewResponse(&api.GetBalancesResponse{Balances: out}), nil
}

// GetSettlement returns the transfers that bring every member to zero.
func (s *ExpenseService) GetSettlement(ctx context.Context, req *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error) {
	if err := authorizeGroup(ctx, s.store, req.Msg.GroupID); err != nil {
		return nil, err
	}

	snap, err := s.store.LoadSnapshot(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, storeError(err)
	}

	memberIDs, expenses, splits := ledgerInputs(snap)
	nets, err := calculator.ComputeNetPositions(memberIDs, expenses, splits)
	if err != nil {
		return nil, s.ledgerError(req.Msg.GroupID, err)
	}

	transfers := calculator.Settle(nets)
	for memberID, left := range calculator.ApplyTransfers(nets, transfers) {
		if left != 0 {
			err := fmt.Errorf("%w: plan leaves %s with %s", calculator.ErrDataIntegrity, memberID, left)
			return nil, s.ledgerError(req.Msg.GroupID, err)
		}
	}

	names := snap.MemberNames()
	out := make([]*api.Transfer, len(transfers))
	for i, t := range transfers {
		out[i] = &api.Transfer{
			FromID:    t.From,
			FromName:  names[t.From],
			ToID:      t.To,
			ToName:    names[t.To],
			Amount:    t.Amount.Minor(),
			Formatted: t.Amount.Format(s.symbol),
		}
	}

	return connect.NewResponse(&api.GetSettlementResponse{
		Transfers:  out,
		AllSettled: len(out) == 0,
	}), nil
}

func (s *ExpenseService) ledgerError(groupID string, err error) error {
	if errors.Is(err, calculator.ErrDataIntegrity) {
		s.logger.Error("Ledger data integrity fault", "group_id", groupID, "error", err)
	}
	return connect.NewError(connect.CodeInternal, err)
}
