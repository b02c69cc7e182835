package service

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/mmynk/splitlite/internal/calculator"
	"github.com/mmynk/splitlite/internal/middleware"
	"github.com/mmynk/splitlite/internal/models"
	"github.com/mmynk/splitlite/internal/storage"
	"github.com/mmynk/splitlite/pkg/api"
)

// authorizeGroup checks that the caller's session belongs to groupID and that
// the session's member has not been removed since the token was issued.
func authorizeGroup(ctx context.Context, store storage.Store, groupID string) error {
	sessionGroup := middleware.GetGroupID(ctx)
	if sessionGroup == "" {
		return connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("authentication required"))
	}
	if groupID == "" {
		return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("group_id required"))
	}
	if sessionGroup != groupID {
		return connect.NewError(connect.CodePermissionDenied, fmt.Errorf("you must be a member of this group"))
	}

	member, err := store.GetMember(ctx, middleware.GetMemberID(ctx))
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("member is no longer part of this group"))
	case err != nil:
		return storeError(err)
	case member.GroupID != groupID:
		return connect.NewError(connect.CodePermissionDenied, fmt.Errorf("you must be a member of this group"))
	}
	return nil
}

// storeError maps storage sentinels to connect codes.
func storeError(err error) *connect.Error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrMemberHasActivity):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, storage.ErrInvalidExpense):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func toAPIGroup(g *models.Group) *api.Group {
	return &api.Group{
		ID:        g.ID,
		Code:      g.Code,
		Name:      g.Name,
		HasPIN:    g.HasPIN(),
		CreatedAt: g.CreatedAt,
	}
}

func toAPIMember(m *models.Member) *api.Member {
	return &api.Member{
		ID:          m.ID,
		GroupID:     m.GroupID,
		DisplayName: m.DisplayName,
		CreatedAt:   m.CreatedAt,
	}
}

func toAPIShares(shares []calculator.Share, symbol string) []*api.Share {
	out := make([]*api.Share, len(shares))
	for i, s := range shares {
		out[i] = &api.Share{MemberID: s.MemberID, Amount: s.Amount.Minor(), Formatted: s.Amount.Format(symbol)}
	}
	return out
}

func toAPIExpense(e *models.Expense, splits []models.Split, names map[string]string, symbol string) *api.Expense {
	shares := make([]*api.Share, len(splits))
	for i, s := range splits {
		shares[i] = &api.Share{MemberID: s.MemberID, Amount: s.Share.Minor(), Formatted: s.Share.Format(symbol)}
	}
	return &api.Expense{
		ID:          e.ID,
		GroupID:     e.GroupID,
		PayerID:     e.PayerID,
		PayerName:   names[e.PayerID],
		Description: e.Description,
		Amount:      e.Amount.Minor(),
		Formatted:   e.Amount.Format(symbol),
		SplitKind:   string(e.SplitKind),
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
		Splits:      shares,
	}
}

// ledgerInputs projects a snapshot onto the balance aggregator's inputs.
func ledgerInputs(snap *models.Snapshot) ([]string, []calculator.ExpenseForBalance, []calculator.SplitForBalance) {
	expenses := make([]calculator.ExpenseForBalance, len(snap.Expenses))
	for i, e := range snap.Expenses {
		expenses[i] = calculator.ExpenseForBalance{ID: e.ID, PayerID: e.PayerID, Amount: e.Amount}
	}
	splits := make([]calculator.SplitForBalance, len(snap.Splits))
	for i, s := range snap.Splits {
		splits[i] = calculator.SplitForBalance{ExpenseID: s.ExpenseID, MemberID: s.MemberID, Share: s.Share}
	}
	return snap.MemberIDs(), expenses, splits
}
