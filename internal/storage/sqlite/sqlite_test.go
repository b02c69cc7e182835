package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmynk/splitlite/internal/models"
	"github.com/mmynk/splitlite/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "splitlite-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// seedGroup creates a group with the named members and returns them in join order.
func seedGroup(t *testing.T, store *SQLiteStore, names ...string) (*models.Group, []models.Member) {
	t.Helper()
	ctx := context.Background()

	group := &models.Group{Name: "Goa Oct 2025"}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	var members []models.Member
	for _, name := range names {
		m := &models.Member{GroupID: group.ID, DisplayName: name}
		if err := store.AddMember(ctx, m); err != nil {
			t.Fatalf("AddMember failed: %v", err)
		}
		members = append(members, *m)
	}
	return group, members
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateGroup generates ID and code", func(t *testing.T) {
		group := &models.Group{Name: "Roommates", PINHash: "hash"}
		if err := store.CreateGroup(ctx, group); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
		if group.ID == "" {
			t.Error("Expected group ID to be generated")
		}
		if len(group.Code) != storage.CodeLength {
			t.Errorf("Expected %d-character code, got %q", storage.CodeLength, group.Code)
		}
		if group.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}

		byCode, err := store.GetGroupByCode(ctx, strings.ToLower(group.Code))
		if err != nil {
			t.Fatalf("GetGroupByCode failed: %v", err)
		}
		if byCode.ID != group.ID || byCode.PINHash != "hash" || !byCode.HasPIN() {
			t.Errorf("GetGroupByCode mismatch: got %+v", byCode)
		}
	})

	t.Run("GetGroup returns ErrNotFound for nonexistent group", func(t *testing.T) {
		_, err := store.GetGroup(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
		_, err = store.GetGroupByCode(ctx, "ZZZZZZZ")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("LoadMembers keeps join order", func(t *testing.T) {
		group, _ := seedGroup(t, store, "Ravi", "Asha", "Bilal")
		members, err := store.LoadMembers(ctx, group.ID)
		if err != nil {
			t.Fatalf("LoadMembers failed: %v", err)
		}
		var names []string
		for _, m := range members {
			names = append(names, m.DisplayName)
		}
		if got := strings.Join(names, ","); got != "Ravi,Asha,Bilal" {
			t.Errorf("Unexpected member order: %s", got)
		}
	})

	t.Run("CreateExpenseWithSplits round trip", func(t *testing.T) {
		group, m := seedGroup(t, store, "Ravi", "Asha")
		expense := &models.Expense{
			GroupID:     group.ID,
			PayerID:     m[0].ID,
			Description: "Dinner",
			Amount:      901,
			SplitKind:   models.SplitKindEqual,
			Date:        "2025-10-03",
		}
		splits := []models.Split{
			{MemberID: m[0].ID, Share: 451},
			{MemberID: m[1].ID, Share: 450},
		}

		id, err := store.CreateExpenseWithSplits(ctx, expense, splits)
		if err != nil {
			t.Fatalf("CreateExpenseWithSplits failed: %v", err)
		}
		if id == "" || id != expense.ID {
			t.Errorf("Expected generated ID, got %q (expense.ID %q)", id, expense.ID)
		}

		got, err := store.GetExpense(ctx, id)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if got.Amount != 901 || got.Description != "Dinner" || got.SplitKind != models.SplitKindEqual || got.Date != "2025-10-03" {
			t.Errorf("GetExpense mismatch: %+v", got)
		}

		loaded, err := store.LoadSplits(ctx, group.ID)
		if err != nil {
			t.Fatalf("LoadSplits failed: %v", err)
		}
		if len(loaded) != 2 {
			t.Fatalf("Expected 2 splits, got %d", len(loaded))
		}
		if loaded[0].Share+loaded[1].Share != 901 {
			t.Errorf("Splits do not sum to amount: %+v", loaded)
		}
	})

	t.Run("CreateExpenseWithSplits refuses inexact splits", func(t *testing.T) {
		group, m := seedGroup(t, store, "Ravi")
		expense := &models.Expense{GroupID: group.ID, PayerID: m[0].ID, Description: "Taxi", Amount: 500, SplitKind: models.SplitKindEqual}
		_, err := store.CreateExpenseWithSplits(ctx, expense, []models.Split{{MemberID: m[0].ID, Share: 499}})
		if !errors.Is(err, storage.ErrInvalidExpense) {
			t.Fatalf("Expected ErrInvalidExpense, got %v", err)
		}
		expenses, _ := store.LoadExpenses(ctx, group.ID)
		if len(expenses) != 0 {
			t.Errorf("Expected nothing written, got %d expenses", len(expenses))
		}
	})

	t.Run("CreateExpenseWithSplits is atomic", func(t *testing.T) {
		group, m := seedGroup(t, store, "Ravi")
		expense := &models.Expense{GroupID: group.ID, PayerID: m[0].ID, Description: "Taxi", Amount: 500, SplitKind: models.SplitKindEqual}
		// Unknown member violates the foreign key on the second insert.
		_, err := store.CreateExpenseWithSplits(ctx, expense, []models.Split{{MemberID: "ghost", Share: 500}})
		if err == nil {
			t.Fatal("Expected foreign key failure, got nil")
		}
		expenses, _ := store.LoadExpenses(ctx, group.ID)
		if len(expenses) != 0 {
			t.Errorf("Expected rollback, found %d expenses", len(expenses))
		}
	})

	t.Run("DeleteExpenseCascade removes splits", func(t *testing.T) {
		group, m := seedGroup(t, store, "Ravi", "Asha")
		expense := &models.Expense{GroupID: group.ID, PayerID: m[1].ID, Description: "Hotel", Amount: 1000, SplitKind: models.SplitKindCustom}
		id, err := store.CreateExpenseWithSplits(ctx, expense, []models.Split{
			{MemberID: m[0].ID, Share: 750},
			{MemberID: m[1].ID, Share: 250},
		})
		if err != nil {
			t.Fatalf("CreateExpenseWithSplits failed: %v", err)
		}

		if err := store.DeleteExpenseCascade(ctx, id); err != nil {
			t.Fatalf("DeleteExpenseCascade failed: %v", err)
		}
		splits, _ := store.LoadSplits(ctx, group.ID)
		if len(splits) != 0 {
			t.Errorf("Expected splits removed, got %d", len(splits))
		}
		if err := store.DeleteExpenseCascade(ctx, id); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound on second delete, got %v", err)
		}
	})

	t.Run("RemoveMember refuses members with activity", func(t *testing.T) {
		group, m := seedGroup(t, store, "Ravi", "Asha", "Idle")
		expense := &models.Expense{GroupID: group.ID, PayerID: m[0].ID, Description: "Snacks", Amount: 200, SplitKind: models.SplitKindEqual}
		if _, err := store.CreateExpenseWithSplits(ctx, expense, []models.Split{
			{MemberID: m[0].ID, Share: 100},
			{MemberID: m[1].ID, Share: 100},
		}); err != nil {
			t.Fatalf("CreateExpenseWithSplits failed: %v", err)
		}

		if err := store.RemoveMember(ctx, m[1].ID); !errors.Is(err, storage.ErrMemberHasActivity) {
			t.Errorf("Expected ErrMemberHasActivity, got %v", err)
		}
		if err := store.RemoveMember(ctx, m[2].ID); err != nil {
			t.Errorf("RemoveMember failed: %v", err)
		}
		if _, err := store.GetMember(ctx, m[2].ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected removed member to be gone, got %v", err)
		}
		if err := store.RemoveMember(ctx, "nobody"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("LoadSnapshot reads one consistent view", func(t *testing.T) {
		group, m := seedGroup(t, store, "Ravi", "Asha")
		for _, desc := range []string{"Breakfast", "Lunch"} {
			expense := &models.Expense{GroupID: group.ID, PayerID: m[0].ID, Description: desc, Amount: 300, SplitKind: models.SplitKindEqual}
			if _, err := store.CreateExpenseWithSplits(ctx, expense, []models.Split{
				{MemberID: m[0].ID, Share: 150},
				{MemberID: m[1].ID, Share: 150},
			}); err != nil {
				t.Fatalf("CreateExpenseWithSplits failed: %v", err)
			}
		}

		snap, err := store.LoadSnapshot(ctx, group.ID)
		if err != nil {
			t.Fatalf("LoadSnapshot failed: %v", err)
		}
		if len(snap.Members) != 2 || len(snap.Expenses) != 2 || len(snap.Splits) != 4 {
			t.Errorf("Unexpected snapshot sizes: %d members, %d expenses, %d splits",
				len(snap.Members), len(snap.Expenses), len(snap.Splits))
		}
		if snap.Expenses[0].Description != "Lunch" {
			t.Errorf("Expected newest expense first, got %s", snap.Expenses[0].Description)
		}

		if _, err := store.LoadSnapshot(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}
