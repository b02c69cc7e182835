// Package postgres provides a PostgreSQL-backed implementation of the storage.Store interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mmynk/splitlite/internal/models"
	"github.com/mmynk/splitlite/internal/money"
	"github.com/mmynk/splitlite/internal/storage"
)

// Ensure PostgresStore implements storage.Store
var _ storage.Store = (*PostgresStore)(nil)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// PostgresStore implements storage.Store using PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// New connects to databaseURL, verifies the connection and runs migrations.
func New(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// CreateGroup persists a new group. A generated code that collides with an
// existing group is redrawn.
func (s *PostgresStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	generated := group.Code == ""
	for attempt := 0; attempt < storage.MaxCodeAttempts; attempt++ {
		if generated {
			code, err := storage.NewGroupCode()
			if err != nil {
				return err
			}
			group.Code = code
		}

		_, err := s.db.ExecContext(ctx,
			"INSERT INTO groups (id, code, name, pin_hash, created_at) VALUES ($1, $2, $3, $4, $5)",
			group.ID, group.Code, group.Name, group.PINHash, group.CreatedAt,
		)
		if err == nil {
			return nil
		}

		var pqErr *pq.Error
		if generated && errors.As(err, &pqErr) && pqErr.Code == uniqueViolation && pqErr.Constraint == "groups_code_key" {
			continue
		}
		return fmt.Errorf("failed to insert group: %w", err)
	}
	return fmt.Errorf("no unused group code after %d attempts", storage.MaxCodeAttempts)
}

// GetGroup retrieves a group by ID.
func (s *PostgresStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return s.getGroup(ctx, "id", groupID)
}

// GetGroupByCode retrieves a group by join code (case-insensitive).
func (s *PostgresStore) GetGroupByCode(ctx context.Context, code string) (*models.Group, error) {
	return s.getGroup(ctx, "code", storage.NormalizeCode(code))
}

func (s *PostgresStore) getGroup(ctx context.Context, column, value string) (*models.Group, error) {
	group := &models.Group{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, code, name, pin_hash, created_at FROM groups WHERE "+column+" = $1",
		value,
	).Scan(&group.ID, &group.Code, &group.Name, &group.PINHash, &group.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("group %s: %w", value, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

// AddMember persists a new member of an existing group.
func (s *PostgresStore) AddMember(ctx context.Context, member *models.Member) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if member.CreatedAt == 0 {
		member.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO members (id, group_id, display_name, created_at) VALUES ($1, $2, $3, $4)",
		member.ID, member.GroupID, member.DisplayName, member.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}
	return nil
}

// GetMember retrieves a member by ID.
func (s *PostgresStore) GetMember(ctx context.Context, memberID string) (*models.Member, error) {
	member := &models.Member{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, group_id, display_name, created_at FROM members WHERE id = $1",
		memberID,
	).Scan(&member.ID, &member.GroupID, &member.DisplayName, &member.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("member %s: %w", memberID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

// RemoveMember deletes a member that neither paid for nor shares in any expense.
func (s *PostgresStore) RemoveMember(ctx context.Context, memberID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Lock the row so a concurrent expense cannot reference it mid-check.
	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM members WHERE id = $1 FOR UPDATE", memberID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("member %s: %w", memberID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check member existence: %w", err)
	}

	var active bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM expenses WHERE payer_id = $1)
		     OR EXISTS (SELECT 1 FROM expense_splits WHERE member_id = $1)`,
		memberID,
	).Scan(&active)
	if err != nil {
		return fmt.Errorf("failed to check member activity: %w", err)
	}
	if active {
		return fmt.Errorf("member %s: %w", memberID, storage.ErrMemberHasActivity)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM members WHERE id = $1", memberID); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LoadMembers returns a group's members in join order.
func (s *PostgresStore) LoadMembers(ctx context.Context, groupID string) ([]models.Member, error) {
	return loadMembers(ctx, s.db, groupID)
}

func loadMembers(ctx context.Context, q queryer, groupID string) ([]models.Member, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT id, group_id, display_name, created_at FROM members WHERE group_id = $1 ORDER BY seq",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.GroupID, &m.DisplayName, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}
	return members, nil
}

// CreateExpenseWithSplits persists an expense and its splits in one transaction.
func (s *PostgresStore) CreateExpenseWithSplits(ctx context.Context, expense *models.Expense, splits []models.Split) (string, error) {
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
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		expense.ID, expense.GroupID, expense.PayerID, expense.Description,
		expense.Amount.Minor(), string(expense.SplitKind), expense.Date, expense.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert expense: %w", err)
	}

	for i := range splits {
		splits[i].ExpenseID = expense.ID
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_splits (expense_id, member_id, share) VALUES ($1, $2, $3)",
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
func (s *PostgresStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, group_id, payer_id, description, amount, split_kind, expense_date, created_at
		 FROM expenses WHERE id = $1`,
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
func (s *PostgresStore) DeleteExpenseCascade(ctx context.Context, expenseID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM expense_splits WHERE expense_id = $1", expenseID); err != nil {
		return fmt.Errorf("failed to delete splits: %w", err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM expenses WHERE id = $1", expenseID)
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
func (s *PostgresStore) LoadExpenses(ctx context.Context, groupID string) ([]models.Expense, error) {
	return loadExpenses(ctx, s.db, groupID)
}

// LoadSplits returns the splits of every expense in a group.
func (s *PostgresStore) LoadSplits(ctx context.Context, groupID string) ([]models.Split, error) {
	return loadSplits(ctx, s.db, groupID)
}

// LoadSnapshot reads members, expenses and splits in a REPEATABLE READ
// transaction so all three lists come from the same database state.
func (s *PostgresStore) LoadSnapshot(ctx context.Context, groupID string) (*models.Snapshot, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM groups WHERE id = $1", groupID).Scan(&exists)
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
		 FROM expenses WHERE group_id = $1 ORDER BY created_at DESC, seq DESC`,
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
		 WHERE e.group_id = $1 ORDER BY s.expense_id, s.seq`,
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
