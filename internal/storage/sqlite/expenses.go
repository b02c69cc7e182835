package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitlite/internal/models"
	"github.com/mmynk/splitlite/internal/money"
	"github.com/mmynk/splitlite/internal/storage"
)

// CreateExpenseWithSplits persists an expense and its splits in one transaction.
func (s *SQLiteStore) CreateExpenseWithSplits(ctx context.Context, expense *models.Expense, splits []models.Split) (string, error) {
	if err := storage.CheckSplits(expense, splits); err != nil {
		return "", err
	}

	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}
	if expense.Date == "" {
		expense.Date = time.Unix(expense.CreatedAt, 0).Format(models.DateLayout)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, group_id, payer_id, description, amount, split_kind, expense_date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.GroupID, expense.PayerID, expense.Description,
		expense.Amount.Minor(), string(expense.SplitKind), expense.Date, expense.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert expense: %w", err)
	}

	for i := range splits {
		splits[i].ExpenseID = expense.ID
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_splits (expense_id, member_id, share) VALUES (?, ?, ?)",
			expense.ID, splits[i].MemberID, splits[i].Share.Minor(),
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return expense.ID, nil
}

// GetExpense retrieves an expense by ID.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, group_id, payer_id, description, amount, split_kind, expense_date, created_at
		 FROM expenses WHERE id = ?`,
		expenseID,
	)
	expense, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

// DeleteExpenseCascade removes an expense and all of its splits.
func (s *SQLiteStore) DeleteExpenseCascade(ctx context.Context, expenseID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Splits first, so removal does not depend on ON DELETE CASCADE being active.
	if _, err := tx.ExecContext(ctx, "DELETE FROM expense_splits WHERE expense_id = ?", expenseID); err != nil {
		return fmt.Errorf("failed to delete splits: %w", err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LoadExpenses returns a group's expenses, newest first.
func (s *SQLiteStore) LoadExpenses(ctx context.Context, groupID string) ([]models.Expense, error) {
	return loadExpenses(ctx, s.db, groupID)
}

// LoadSplits returns the splits of every expense in a group.
func (s *SQLiteStore) LoadSplits(ctx context.Context, groupID string) ([]models.Split, error) {
	return loadSplits(ctx, s.db, groupID)
}

// LoadSnapshot reads members, expenses and splits inside one transaction so
// the three lists agree with each other.
func (s *SQLiteStore) LoadSnapshot(ctx context.Context, groupID string) (*models.Snapshot, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM groups WHERE id = ?", groupID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check group existence: %w", err)
	}

	snap := &models.Snapshot{GroupID: groupID}
	if snap.Members, err = loadMembers(ctx, tx, groupID); err != nil {
		return nil, err
	}
	if snap.Expenses, err = loadExpenses(ctx, tx, groupID); err != nil {
		return nil, err
	}
	if snap.Splits, err = loadSplits(ctx, tx, groupID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return snap, nil
}

func loadExpenses(ctx context.Context, q queryer, groupID string) ([]models.Expense, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, group_id, payer_id, description, amount, split_kind, expense_date, created_at
		 FROM expenses WHERE group_id = ? ORDER BY created_at DESC, rowid DESC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, *expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}

func loadSplits(ctx context.Context, q queryer, groupID string) ([]models.Split, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT s.expense_id, s.member_id, s.share
		 FROM expense_splits s JOIN expenses e ON e.id = s.expense_id
		 WHERE e.group_id = ? ORDER BY s.expense_id, s.rowid`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list splits: %w", err)
	}
	defer rows.Close()

	splits := []models.Split{}
	for rows.Next() {
		var sp models.Split
		var share int64
		if err := rows.Scan(&sp.ExpenseID, &sp.MemberID, &share); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		sp.Share = money.FromMinor(share)
		splits = append(splits, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}
	return splits, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanExpense(row scanner) (*models.Expense, error) {
	var (
		e      models.Expense
		amount int64
		kind   string
	)
	if err := row.Scan(&e.ID, &e.GroupID, &e.PayerID, &e.Description, &amount, &kind, &e.Date, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.Amount = money.FromMinor(amount)
	e.SplitKind = models.SplitKind(kind)
	return &e, nil
}
