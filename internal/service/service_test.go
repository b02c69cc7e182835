package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/splitlite/internal/auth"
	"github.com/mmynk/splitlite/internal/middleware"
	"github.com/mmynk/splitlite/internal/storage"
	"github.com/mmynk/splitlite/internal/storage/sqlite"
	"github.com/mmynk/splitlite/pkg/api"
	"github.com/mmynk/splitlite/pkg/api/apiconnect"
)

// setupTestServer serves both services over httptest with the same
// interceptor chain as the real server, backed by a temp SQLite file.
func setupTestServer(t *testing.T) (apiconnect.GroupServiceClient, apiconnect.ExpenseServiceClient) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "splitlite-service-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	backend, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	store := storage.NewCachedStore(backend, time.Minute)
	t.Cleanup(func() { store.Close() })

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	groupSvc := NewGroupService(store, auth.NewPINAuthenticator(store), jwtManager, nil)
	expenseSvc := NewExpenseService(store, "", nil)

	interceptors := connect.WithInterceptors(
		middleware.RequireAuth(jwtManager,
			apiconnect.GroupServiceCreateGroupProcedure,
			apiconnect.GroupServiceGetGroupProcedure,
			apiconnect.GroupServiceJoinGroupProcedure,
		),
		middleware.LoggingInterceptor(nil),
	)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewGroupServiceHandler(groupSvc, interceptors))
	mux.Handle(apiconnect.NewExpenseServiceHandler(expenseSvc, interceptors))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return apiconnect.NewGroupServiceClient(http.DefaultClient, server.URL),
		apiconnect.NewExpenseServiceClient(http.DefaultClient, server.URL)
}

// authed wraps msg in a request carrying the member's bearer token.
func authed[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

type session struct {
	memberID string
	token    string
}

// newGroup creates a group and joins it with each name.
func newGroup(t *testing.T, groups apiconnect.GroupServiceClient, names ...string) (*api.Group, []session) {
	t.Helper()
	ctx := context.Background()

	created, err := groups.CreateGroup(ctx, connect.NewRequest(&api.CreateGroupRequest{Name: "Goa Oct 2025"}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	var sessions []session
	for _, name := range names {
		joined, err := groups.JoinGroup(ctx, connect.NewRequest(&api.JoinGroupRequest{
			Code:        created.Msg.Group.Code,
			DisplayName: name,
		}))
		if err != nil {
			t.Fatalf("JoinGroup(%s) failed: %v", name, err)
		}
		sessions = append(sessions, session{memberID: joined.Msg.Member.ID, token: joined.Msg.Token})
	}
	return created.Msg.Group, sessions
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("expected %v, got %v (%v)", want, got, err)
	}
}

func TestGroupService(t *testing.T) {
	groups, _ := setupTestServer(t)
	ctx := context.Background()

	created, err := groups.CreateGroup(ctx, connect.NewRequest(&api.CreateGroupRequest{Name: "  Flat 4B ", PIN: "2580"}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	group := created.Msg.Group
	if group.Name != "Flat 4B" || !group.HasPIN || len(group.Code) != storage.CodeLength {
		t.Fatalf("unexpected group: %+v", group)
	}

	t.Run("CreateGroup requires a name", func(t *testing.T) {
		_, err := groups.CreateGroup(ctx, connect.NewRequest(&api.CreateGroupRequest{Name: "  "}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("GetGroup is case-insensitive", func(t *testing.T) {
		resp, err := groups.GetGroup(ctx, connect.NewRequest(&api.GetGroupRequest{Code: strings.ToLower(group.Code)}))
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if resp.Msg.Group.ID != group.ID {
			t.Errorf("expected group %s, got %s", group.ID, resp.Msg.Group.ID)
		}
	})

	t.Run("GetGroup unknown code", func(t *testing.T) {
		_, err := groups.GetGroup(ctx, connect.NewRequest(&api.GetGroupRequest{Code: "ZZZZZZZ"}))
		assertCode(t, err, connect.CodeNotFound)
	})

	t.Run("JoinGroup checks the PIN", func(t *testing.T) {
		_, err := groups.JoinGroup(ctx, connect.NewRequest(&api.JoinGroupRequest{Code: group.Code, PIN: "0000", DisplayName: "Ravi"}))
		assertCode(t, err, connect.CodePermissionDenied)

		_, err = groups.JoinGroup(ctx, connect.NewRequest(&api.JoinGroupRequest{Code: group.Code, PIN: "2580", DisplayName: " "}))
		assertCode(t, err, connect.CodeInvalidArgument)

		joined, err := groups.JoinGroup(ctx, connect.NewRequest(&api.JoinGroupRequest{Code: group.Code, PIN: "2580", DisplayName: "Ravi"}))
		if err != nil {
			t.Fatalf("JoinGroup failed: %v", err)
		}
		if joined.Msg.Token == "" || joined.Msg.Member.GroupID != group.ID {
			t.Errorf("unexpected join response: %+v", joined.Msg)
		}

		members, err := groups.ListMembers(ctx, authed(joined.Msg.Token, &api.ListMembersRequest{GroupID: group.ID}))
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		if len(members.Msg.Members) != 1 || members.Msg.Members[0].DisplayName != "Ravi" {
			t.Errorf("unexpected members: %+v", members.Msg.Members)
		}
	})

	t.Run("ListMembers requires a session", func(t *testing.T) {
		_, err := groups.ListMembers(ctx, connect.NewRequest(&api.ListMembersRequest{GroupID: group.ID}))
		assertCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("JoinGroup unknown code", func(t *testing.T) {
		_, err := groups.JoinGroup(ctx, connect.NewRequest(&api.JoinGroupRequest{Code: "NOPE00", DisplayName: "Ravi"}))
		assertCode(t, err, connect.CodeNotFound)
	})
}

func TestExpenseFlow(t *testing.T) {
	groups, expenses := setupTestServer(t)
	ctx := context.Background()

	group, s := newGroup(t, groups, "A", "B", "C", "D")
	a, b, c, d := s[0], s[1], s[2], s[3]

	// A pays 900.00 for A, B, C; B pays 100.01 for B, C.
	first, err := expenses.AddExpense(ctx, authed(a.token, &api.AddExpenseRequest{
		GroupID:        group.ID,
		PayerID:        a.memberID,
		Description:    "Dinner",
		Amount:         "900",
		Date:           "2025-10-03",
		SplitKind:      "equal",
		ParticipantIDs: []string{a.memberID, b.memberID, c.memberID},
	}))
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}
	if first.Msg.Expense.Amount != 90000 || first.Msg.Expense.PayerName != "A" || len(first.Msg.Expense.Splits) != 3 {
		t.Errorf("unexpected expense: %+v", first.Msg.Expense)
	}

	second, err := expenses.AddExpense(ctx, authed(b.token, &api.AddExpenseRequest{
		GroupID:        group.ID,
		PayerID:        b.memberID,
		Description:    "Taxi",
		Amount:         "100.01",
		ParticipantIDs: []string{b.memberID, c.memberID},
	}))
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}
	if got := second.Msg.Expense.Splits; got[0].Amount != 5001 || got[1].Amount != 5000 {
		t.Errorf("expected 50.01/50.00 split, got %d/%d", got[0].Amount, got[1].Amount)
	}
	if second.Msg.Expense.Date == "" || second.Msg.Expense.SplitKind != "equal" {
		t.Errorf("expected defaults for date and kind, got %+v", second.Msg.Expense)
	}

	t.Run("ListExpenses newest first", func(t *testing.T) {
		resp, err := expenses.ListExpenses(ctx, authed(c.token, &api.ListExpensesRequest{GroupID: group.ID}))
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		if len(resp.Msg.Expenses) != 2 || resp.Msg.Expenses[0].Description != "Taxi" {
			t.Fatalf("unexpected expenses: %+v", resp.Msg.Expenses)
		}
		if len(resp.Msg.Expenses[1].Splits) != 3 {
			t.Errorf("expected splits attached, got %d", len(resp.Msg.Expenses[1].Splits))
		}
	})

	t.Run("GetBalances", func(t *testing.T) {
		resp, err := expenses.GetBalances(ctx, authed(d.token, &api.GetBalancesRequest{GroupID: group.ID}))
		if err != nil {
			t.Fatalf("GetBalances failed: %v", err)
		}
		want := []struct {
			name   string
			net    int64
			status string
		}{
			{"A", 60000, "to receive"},
			{"B", -25000, "to pay"},
			{"C", -35000, "to pay"},
			{"D", 0, "settled"},
		}
		if len(resp.Msg.Balances) != len(want) {
			t.Fatalf("expected %d balances, got %d", len(want), len(resp.Msg.Balances))
		}
		for i, w := range want {
			got := resp.Msg.Balances[i]
			if got.DisplayName != w.name || got.Net != w.net || got.Status != w.status {
				t.Errorf("balance %d = %+v, want %+v", i, got, w)
			}
		}
		if resp.Msg.Balances[1].Formatted != "-₹250.00" {
			t.Errorf("unexpected formatted net: %s", resp.Msg.Balances[1].Formatted)
		}
	})

	t.Run("GetSettlement", func(t *testing.T) {
		resp, err := expenses.GetSettlement(ctx, authed(a.token, &api.GetSettlementRequest{GroupID: group.ID}))
		if err != nil {
			t.Fatalf("GetSettlement failed: %v", err)
		}
		if resp.Msg.AllSettled || len(resp.Msg.Transfers) != 2 {
			t.Fatalf("unexpected settlement: %+v", resp.Msg)
		}
		first, second := resp.Msg.Transfers[0], resp.Msg.Transfers[1]
		if first.FromName != "C" || first.ToName != "A" || first.Amount != 35000 || first.Formatted != "₹350.00" {
			t.Errorf("unexpected first transfer: %+v", first)
		}
		if second.FromName != "B" || second.ToName != "A" || second.Amount != 25000 {
			t.Errorf("unexpected second transfer: %+v", second)
		}
	})

	t.Run("PreviewSplit custom weights", func(t *testing.T) {
		resp, err := expenses.PreviewSplit(ctx, authed(a.token, &api.PreviewSplitRequest{
			GroupID:        group.ID,
			Amount:         "100",
			SplitKind:      "custom",
			ParticipantIDs: []string{a.memberID, b.memberID},
			Weights:        []int64{1, 2},
		}))
		if err != nil {
			t.Fatalf("PreviewSplit failed: %v", err)
		}
		if resp.Msg.Shares[0].Amount != 3333 || resp.Msg.Shares[1].Amount != 6667 {
			t.Errorf("unexpected shares: %d, %d", resp.Msg.Shares[0].Amount, resp.Msg.Shares[1].Amount)
		}
	})

	t.Run("AddExpense validation", func(t *testing.T) {
		base := api.AddExpenseRequest{
			GroupID:        group.ID,
			PayerID:        a.memberID,
			Description:    "Snacks",
			Amount:         "10",
			ParticipantIDs: []string{a.memberID},
		}
		tests := []struct {
			name   string
			modify func(r *api.AddExpenseRequest)
		}{
			{"empty description", func(r *api.AddExpenseRequest) { r.Description = " " }},
			{"bad amount", func(r *api.AddExpenseRequest) { r.Amount = "ten" }},
			{"zero amount", func(r *api.AddExpenseRequest) { r.Amount = "0" }},
			{"bad date", func(r *api.AddExpenseRequest) { r.Date = "03/10/2025" }},
			{"unknown kind", func(r *api.AddExpenseRequest) { r.SplitKind = "percent" }},
			{"outside payer", func(r *api.AddExpenseRequest) { r.PayerID = "stranger" }},
			{"outside participant", func(r *api.AddExpenseRequest) { r.ParticipantIDs = []string{"stranger"} }},
			{"no participants", func(r *api.AddExpenseRequest) { r.ParticipantIDs = nil }},
			{"weight mismatch", func(r *api.AddExpenseRequest) { r.SplitKind = "custom"; r.Weights = []int64{1, 1} }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := base
				tt.modify(&req)
				_, err := expenses.AddExpense(ctx, authed(a.token, &req))
				assertCode(t, err, connect.CodeInvalidArgument)
			})
		}
	})

	t.Run("other groups are off limits", func(t *testing.T) {
		_, outsiders := newGroup(t, groups, "E")
		_, err := expenses.GetBalances(ctx, authed(outsiders[0].token, &api.GetBalancesRequest{GroupID: group.ID}))
		assertCode(t, err, connect.CodePermissionDenied)

		_, err = expenses.DeleteExpense(ctx, authed(outsiders[0].token, &api.DeleteExpenseRequest{ExpenseID: first.Msg.Expense.ID}))
		assertCode(t, err, connect.CodePermissionDenied)

		_, err = expenses.GetSettlement(ctx, connect.NewRequest(&api.GetSettlementRequest{GroupID: group.ID}))
		assertCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("RemoveMember", func(t *testing.T) {
		_, err := groups.RemoveMember(ctx, authed(a.token, &api.RemoveMemberRequest{MemberID: c.memberID}))
		assertCode(t, err, connect.CodeFailedPrecondition)

		if _, err := groups.RemoveMember(ctx, authed(a.token, &api.RemoveMemberRequest{MemberID: d.memberID})); err != nil {
			t.Fatalf("RemoveMember failed: %v", err)
		}
		members, err := groups.ListMembers(ctx, authed(a.token, &api.ListMembersRequest{GroupID: group.ID}))
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		if len(members.Msg.Members) != 3 {
			t.Errorf("expected 3 members after removal, got %d", len(members.Msg.Members))
		}

		// d's token is still signed and unexpired, but the member is gone.
		_, err = expenses.GetBalances(ctx, authed(d.token, &api.GetBalancesRequest{GroupID: group.ID}))
		assertCode(t, err, connect.CodeUnauthenticated)
		_, err = groups.ListMembers(ctx, authed(d.token, &api.ListMembersRequest{GroupID: group.ID}))
		assertCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("deleting everything settles the group", func(t *testing.T) {
		for _, id := range []string{first.Msg.Expense.ID, second.Msg.Expense.ID} {
			if _, err := expenses.DeleteExpense(ctx, authed(b.token, &api.DeleteExpenseRequest{ExpenseID: id})); err != nil {
				t.Fatalf("DeleteExpense failed: %v", err)
			}
		}
		_, err := expenses.DeleteExpense(ctx, authed(b.token, &api.DeleteExpenseRequest{ExpenseID: first.Msg.Expense.ID}))
		assertCode(t, err, connect.CodeNotFound)

		resp, err := expenses.GetSettlement(ctx, authed(a.token, &api.GetSettlementRequest{GroupID: group.ID}))
		if err != nil {
			t.Fatalf("GetSettlement failed: %v", err)
		}
		if !resp.Msg.AllSettled || len(resp.Msg.Transfers) != 0 {
			t.Errorf("expected all settled, got %+v", resp.Msg)
		}
	})
}
